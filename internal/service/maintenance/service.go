// Package maintenance holds the periodic housekeeping jobs: the expired
// personnel sweep and job-run history pruning.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// DefaultRetention is how long job-run history is kept.
const DefaultRetention = 7 * 24 * time.Hour

type personnelRepo interface {
	ListExpired(ctx context.Context, today time.Time) ([]string, error)
	DeactivateExpired(ctx context.Context, today time.Time) ([]string, error)
}

type jobRunRepo interface {
	Start(ctx context.Context, jobName string) (int64, error)
	Finish(ctx context.Context, id int64, status domain.JobStatus, details map[string]any, errText string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service runs maintenance jobs.
type Service struct {
	personnel personnelRepo
	runs      jobRunRepo
	loc       *time.Location
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a maintenance service. "Today" is evaluated in loc.
func NewService(log *slog.Logger, personnel personnelRepo, runs jobRunRepo, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		personnel: personnel,
		runs:      runs,
		loc:       loc,
		now:       time.Now,
		log:       log.With("service", "maintenance"),
	}
}

func (s *Service) today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
