// Package mail delivers single-recipient messages over SMTP, Amazon SES, or
// the application log.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studio-backend/internal/config"
)

// Message is one email to one recipient. HTML is optional.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New builds the sender selected by cfg.Transport.
func New(ctx context.Context, cfg config.MailConfig, logger *slog.Logger) (Sender, error) {
	switch cfg.Transport {
	case config.MailTransportSMTP:
		return NewSMTPSender(cfg), nil
	case config.MailTransportSES:
		return NewSESSender(ctx, cfg)
	case config.MailTransportLog, "":
		return NewLogSender(logger), nil
	default:
		return nil, fmt.Errorf("mail: unknown transport %q", cfg.Transport)
	}
}
