package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// Overview is the full settings view returned by the settings API.
type Overview struct {
	Enabled bool
	// Emails lists enabled addresses only.
	Emails []string
	All    []domain.NotificationRecipient
}

// GetSettings returns the toggle, the enabled addresses and every recipient.
func (s *Service) GetSettings(ctx context.Context) (Overview, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("get settings: %w", err)
	}
	all, err := s.repo.ListRecipients(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("list recipients: %w", err)
	}

	ov := Overview{Enabled: settings.EmailEnabled, Emails: []string{}, All: all}
	for _, r := range all {
		if r.IsEnabled {
			ov.Emails = append(ov.Emails, r.Email)
		}
	}
	return ov, nil
}

// DeliverySettings is the per-event read used by the notification pipeline.
func (s *Service) DeliverySettings(ctx context.Context) (domain.DeliverySettings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return domain.DeliverySettings{}, fmt.Errorf("get settings: %w", err)
	}
	if !settings.EmailEnabled {
		return domain.DeliverySettings{Enabled: false}, nil
	}
	emails, err := s.repo.EnabledEmails(ctx)
	if err != nil {
		return domain.DeliverySettings{}, fmt.Errorf("enabled emails: %w", err)
	}
	return domain.DeliverySettings{Enabled: true, Recipients: emails}, nil
}

// UpdateSettings replaces the recipient list and/or flips the toggle in one
// transaction. Invalid recipient entries are dropped silently.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateInput) (Overview, error) {
	if err := input.Validate(); err != nil {
		return Overview{}, err
	}

	var accepted int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if input.Emails != nil {
			list := NormalizeRecipients(*input.Emails)
			accepted = len(list)
			if err := s.repo.ReplaceRecipients(ctx, list); err != nil {
				return fmt.Errorf("replace recipients: %w", err)
			}
		}
		if input.Enabled != nil {
			if _, err := s.repo.SetEnabled(ctx, *input.Enabled); err != nil {
				return fmt.Errorf("set enabled: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return Overview{}, err
	}

	attrs := []any{}
	if input.Emails != nil {
		attrs = append(attrs,
			slog.Int("submitted", len(*input.Emails)),
			slog.Int("accepted", accepted),
		)
	}
	if input.Enabled != nil {
		attrs = append(attrs, slog.Bool("enabled", *input.Enabled))
	}
	s.log.InfoContext(ctx, "notification settings updated", attrs...)

	return s.GetSettings(ctx)
}

// ToggleRecipient enables or disables one recipient and returns the full list.
func (s *Service) ToggleRecipient(ctx context.Context, id int64, enabled bool) ([]domain.NotificationRecipient, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("email_id", "缺少邮箱ID")
	}
	if _, err := s.repo.SetRecipientEnabled(ctx, id, enabled); err != nil {
		return nil, fmt.Errorf("toggle recipient %d: %w", id, err)
	}

	s.log.InfoContext(ctx, "notification recipient toggled",
		slog.Int64("recipient_id", id),
		slog.Bool("enabled", enabled),
	)

	all, err := s.repo.ListRecipients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	return all, nil
}
