package mail

import (
	"context"
	"log/slog"
)

// LogSender writes messages to the logger instead of delivering them.
// It is the default transport for local development.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a sender that only logs.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("component", "mail.log")}
}

// Send logs the message and never fails.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.InfoContext(ctx, "mail not delivered (log transport)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("text_bytes", len(msg.Text)),
	)
	return nil
}
