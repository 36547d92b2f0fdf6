package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// CheckResult is the outcome of an expired-personnel sweep.
type CheckResult struct {
	Names  []string
	DryRun bool
}

// Count is the number of members that were (or would be) deactivated.
func (r CheckResult) Count() int { return len(r.Names) }

// CheckExpired deactivates active members whose end date is today or earlier
// and returns their names. With dryRun nothing is written.
func (s *Service) CheckExpired(ctx context.Context, dryRun bool) (CheckResult, error) {
	today := s.today()

	var (
		names []string
		err   error
	)
	if dryRun {
		names, err = s.personnel.ListExpired(ctx, today)
	} else {
		names, err = s.personnel.DeactivateExpired(ctx, today)
	}
	if err != nil {
		return CheckResult{}, fmt.Errorf("check expired personnel: %w", err)
	}
	if names == nil {
		names = []string{}
	}

	if len(names) > 0 {
		s.log.InfoContext(ctx, "expired personnel",
			slog.Int("count", len(names)),
			slog.Bool("dry_run", dryRun),
			slog.Any("names", names),
		)
	}
	return CheckResult{Names: names, DryRun: dryRun}, nil
}

// PruneJobRuns deletes job-run history older than retention. A non-positive
// retention uses DefaultRetention.
func (s *Service) PruneJobRuns(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		retention = DefaultRetention
	}
	n, err := s.runs.DeleteOlderThan(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("prune job runs: %w", err)
	}
	s.log.InfoContext(ctx, "job runs pruned",
		slog.Int64("deleted", n),
		slog.Duration("retention", retention),
	)
	return n, nil
}

// Job is a unit of scheduled work. The returned details are stored with the
// run record.
type Job func(ctx context.Context) (map[string]any, error)

// Record runs job under name and stores the run in the job history. A
// failure to write the history is logged and does not mask the job result.
func (s *Service) Record(ctx context.Context, name string, job Job) error {
	id, err := s.runs.Start(ctx, name)
	if err != nil {
		s.log.ErrorContext(ctx, "start job run",
			slog.String("job", name),
			slog.String("error", err.Error()),
		)
	}

	details, jobErr := job(ctx)

	status, errText := domain.JobStatusSuccess, ""
	if jobErr != nil {
		status, errText = domain.JobStatusFailed, jobErr.Error()
	}
	if id != 0 {
		if err := s.runs.Finish(ctx, id, status, details, errText); err != nil {
			s.log.ErrorContext(ctx, "finish job run",
				slog.String("job", name),
				slog.Int64("run_id", id),
				slog.String("error", err.Error()),
			)
		}
	}
	return jobErr
}

// CheckExpiredJob is the scheduled form of CheckExpired.
func (s *Service) CheckExpiredJob(ctx context.Context) (map[string]any, error) {
	res, err := s.CheckExpired(ctx, false)
	if err != nil {
		return nil, err
	}
	return map[string]any{"count": res.Count(), "names": res.Names}, nil
}

// PruneJob returns the scheduled form of PruneJobRuns.
func (s *Service) PruneJob(retention time.Duration) Job {
	return func(ctx context.Context) (map[string]any, error) {
		n, err := s.PruneJobRuns(ctx, retention)
		if err != nil {
			return nil, err
		}
		return map[string]any{"deleted": n}, nil
	}
}
