// Package notify turns successful mutations into change-notification emails.
// Events are rendered from typed payloads and delivered in the background,
// one message per enabled recipient, without ever failing the request that
// caused them.
package notify

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/studio-backend/internal/adapter/mail"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

type settingsSource interface {
	DeliverySettings(ctx context.Context) (domain.DeliverySettings, error)
}

type mailSender interface {
	Send(ctx context.Context, msg mail.Message) error
}

// Notifier accepts events and delivers them through the pool.
type Notifier struct {
	settings settingsSource
	sender   mailSender
	renderer *Renderer
	pool     *Pool
	metrics  *Metrics
	log      *slog.Logger
	enabled  bool
}

// NewNotifier creates a notifier. When enabled is false every event is
// discarded.
func NewNotifier(
	logger *slog.Logger,
	settings settingsSource,
	sender mailSender,
	renderer *Renderer,
	pool *Pool,
	metrics *Metrics,
	enabled bool,
) *Notifier {
	return &Notifier{
		settings: settings,
		sender:   sender,
		renderer: renderer,
		pool:     pool,
		metrics:  metrics,
		log:      logger.With("service", "notify"),
		enabled:  enabled,
	}
}

// Publish hands e to the background pool and returns immediately.
func (n *Notifier) Publish(e Event) {
	if !n.enabled {
		return
	}
	n.metrics.Events.WithLabelValues(string(e.Kind), string(e.Operation)).Inc()
	n.pool.Submit(string(e.Kind)+":"+string(e.Operation), func(ctx context.Context) {
		n.Deliver(ctx, e)
	})
}

// Deliver renders e and sends it to every enabled recipient. It returns the
// number of messages accepted by the transport. Failures are logged per
// recipient and never retried.
func (n *Notifier) Deliver(ctx context.Context, e Event) int {
	s, err := n.settings.DeliverySettings(ctx)
	if err != nil {
		n.log.ErrorContext(ctx, "read notification settings",
			slog.String("kind", string(e.Kind)),
			slog.String("error", err.Error()),
		)
		return 0
	}
	if !s.Enabled || len(s.Recipients) == 0 {
		n.log.DebugContext(ctx, "notification skipped",
			slog.String("kind", string(e.Kind)),
			slog.Bool("enabled", s.Enabled),
			slog.Int("recipients", len(s.Recipients)),
		)
		return 0
	}

	msg, err := n.renderer.Render(e)
	if err != nil {
		n.log.ErrorContext(ctx, "render notification",
			slog.String("kind", string(e.Kind)),
			slog.String("error", err.Error()),
		)
		return 0
	}

	sent := 0
	for _, to := range s.Recipients {
		m := msg
		m.To = to
		if err := n.sender.Send(ctx, m); err != nil {
			n.metrics.Emails.WithLabelValues("failed").Inc()
			n.log.ErrorContext(ctx, "send notification",
				slog.String("to", to),
				slog.String("kind", string(e.Kind)),
				slog.String("error", err.Error()),
			)
			continue
		}
		n.metrics.Emails.WithLabelValues("sent").Inc()
		sent++
	}

	n.log.InfoContext(ctx, "notification delivered",
		slog.String("kind", string(e.Kind)),
		slog.String("operation", string(e.Operation)),
		slog.Int("sent", sent),
		slog.Int("recipients", len(s.Recipients)),
	)
	return sent
}

// Wait blocks until every published event has been handled.
func (n *Notifier) Wait() {
	n.pool.Wait()
}
