// Package notification implements persistence for notification settings and
// recipients.
package notification

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

// Repo provides notification settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Settings singleton
// ---------------------------------------------------------------------------

// GetSettings returns the settings row, creating it with defaults on first use.
func (r *Repo) GetSettings(ctx context.Context) (domain.NotificationSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `INSERT INTO notification_settings DEFAULT VALUES ON CONFLICT (singleton) DO NOTHING`); err != nil {
		return domain.NotificationSettings{}, fmt.Errorf("ensure notification settings: %w", err)
	}

	var s domain.NotificationSettings
	err := q.QueryRow(ctx, `SELECT email_notification_enabled, updated_at FROM notification_settings`).
		Scan(&s.EmailEnabled, &s.UpdatedAt)
	if err != nil {
		return domain.NotificationSettings{}, fmt.Errorf("get notification settings: %w", err)
	}
	return s, nil
}

// SetEnabled turns email notifications on or off.
func (r *Repo) SetEnabled(ctx context.Context, enabled bool) (domain.NotificationSettings, error) {
	var s domain.NotificationSettings
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO notification_settings (email_notification_enabled) VALUES ($1)
		 ON CONFLICT (singleton) DO UPDATE
		 SET email_notification_enabled = EXCLUDED.email_notification_enabled, updated_at = now()
		 RETURNING email_notification_enabled, updated_at`, enabled).
		Scan(&s.EmailEnabled, &s.UpdatedAt)
	if err != nil {
		return domain.NotificationSettings{}, fmt.Errorf("set notification enabled: %w", err)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Recipients
// ---------------------------------------------------------------------------

const recipientColumns = `id, email, is_enabled, description, created_at, updated_at`

// ListRecipients returns every recipient, newest first.
func (r *Repo) ListRecipients(ctx context.Context) ([]domain.NotificationRecipient, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT `+recipientColumns+` FROM notification_recipients ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	defer rows.Close()

	out := []domain.NotificationRecipient{}
	for rows.Next() {
		rec, err := scanRecipient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipient: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// EnabledEmails returns the addresses of enabled recipients, newest first.
func (r *Repo) EnabledEmails(ctx context.Context) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT email FROM notification_recipients WHERE is_enabled ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list enabled emails: %w", err)
	}
	emails, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list enabled emails: %w", err)
	}
	return emails, nil
}

// ReplaceRecipients deletes every recipient and inserts the given ones in
// order. Callers run it inside a transaction.
func (r *Repo) ReplaceRecipients(ctx context.Context, in []domain.RecipientInput) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, `DELETE FROM notification_recipients`); err != nil {
		return fmt.Errorf("clear recipients: %w", err)
	}
	for _, rec := range in {
		_, err := q.Exec(ctx,
			`INSERT INTO notification_recipients (email, is_enabled, description) VALUES ($1, $2, $3)`,
			rec.Email, rec.IsEnabled, rec.Description)
		if err != nil {
			return fmt.Errorf("insert recipient %q: %w", rec.Email, err)
		}
	}
	return nil
}

// SetRecipientEnabled flips one recipient.
func (r *Repo) SetRecipientEnabled(ctx context.Context, id int64, enabled bool) (*domain.NotificationRecipient, error) {
	rec, err := scanRecipient(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`UPDATE notification_recipients SET is_enabled = $2, updated_at = now()
		 WHERE id = $1 RETURNING `+recipientColumns, id, enabled))
	if err != nil {
		return nil, postgres.MapError(err, "notification recipient", id)
	}
	return rec, nil
}

func scanRecipient(row pgx.Row) (*domain.NotificationRecipient, error) {
	var rec domain.NotificationRecipient
	if err := row.Scan(&rec.ID, &rec.Email, &rec.IsEnabled, &rec.Description, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	return &rec, nil
}
