package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	if err := c.Notification.validate(); err != nil {
		return fmt.Errorf("notification: %w", err)
	}

	if c.Server.UploadRateLimit <= 0 {
		return fmt.Errorf("server.upload_rate_limit must be > 0 (got %d)", c.Server.UploadRateLimit)
	}

	if c.Storage.MaxUploadMB <= 0 {
		return fmt.Errorf("storage.max_upload_mb must be > 0 (got %d)", c.Storage.MaxUploadMB)
	}

	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	return nil
}

func (m *MailConfig) validate() error {
	switch m.Transport {
	case MailTransportLog:
	case MailTransportSMTP:
		if m.SMTPHost == "" {
			return fmt.Errorf("smtp_host is required for smtp transport")
		}
		if m.SMTPPort <= 0 || m.SMTPPort > 65535 {
			return fmt.Errorf("smtp_port must be between 1 and 65535 (got %d)", m.SMTPPort)
		}
	case MailTransportSES:
		if m.SESRegion == "" {
			return fmt.Errorf("ses_region is required for ses transport")
		}
	default:
		return fmt.Errorf("unknown transport %q (want smtp, ses or log)", m.Transport)
	}
	if m.From == "" {
		return fmt.Errorf("from is required")
	}
	if m.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

func (n *NotificationConfig) validate() error {
	if n.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", n.Workers)
	}
	if n.MaxPending < n.Workers {
		return fmt.Errorf("max_pending must be >= workers (got %d < %d)", n.MaxPending, n.Workers)
	}
	if n.TaskTimeout <= 0 {
		return fmt.Errorf("task_timeout must be positive")
	}
	return nil
}

func (s *SchedulerConfig) validate() error {
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(s.CheckExpiredCron); err != nil {
		return fmt.Errorf("check_expired_cron: %w", err)
	}
	if _, err := parser.Parse(s.PruneJobRunsCron); err != nil {
		return fmt.Errorf("prune_job_runs_cron: %w", err)
	}
	if s.JobRunRetention < time.Hour {
		return fmt.Errorf("job_run_retention must be at least 1h (got %s)", s.JobRunRetention)
	}
	if s.LockTTL <= 0 {
		return fmt.Errorf("lock_ttl must be positive")
	}
	return nil
}
