package notification

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

type settingsRepo interface {
	GetSettings(ctx context.Context) (domain.NotificationSettings, error)
	SetEnabled(ctx context.Context, enabled bool) (domain.NotificationSettings, error)
	ListRecipients(ctx context.Context) ([]domain.NotificationRecipient, error)
	EnabledEmails(ctx context.Context) ([]string, error)
	ReplaceRecipients(ctx context.Context, in []domain.RecipientInput) error
	SetRecipientEnabled(ctx context.Context, id int64, enabled bool) (*domain.NotificationRecipient, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the notification toggle and recipient list.
type Service struct {
	repo settingsRepo
	tx   txManager
	log  *slog.Logger
}

// NewService creates a new notification settings service.
func NewService(log *slog.Logger, repo settingsRepo, tx txManager) *Service {
	return &Service{
		repo: repo,
		tx:   tx,
		log:  log.With("service", "notification"),
	}
}
