package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/studio-backend/internal/adapter/redislock"
	"github.com/heartmarshall/studio-backend/internal/service/maintenance"
)

// Scheduled job names. They are also the lock names and the job_runs.job_name
// values.
const (
	JobCheckExpired = "check_expired"
	JobPruneJobRuns = "prune_job_runs"
)

type jobRecorder interface {
	Record(ctx context.Context, name string, job maintenance.Job) error
}

type jobLocker interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (*redislock.Lock, error)
}

// Scheduler fires maintenance jobs on cron specs. With a locker configured
// each tick runs on whichever replica takes the lock first.
type Scheduler struct {
	cron   *cron.Cron
	runner jobRecorder
	locks  jobLocker
	ttl    time.Duration
	base   context.Context
	log    *slog.Logger
}

// NewScheduler creates a scheduler evaluating specs in loc. locks may be nil.
func NewScheduler(logger *slog.Logger, runner jobRecorder, locks jobLocker, lockTTL time.Duration, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	log := logger.With("service", "scheduler")
	cronLog := cron.PrintfLogger(slog.NewLogLogger(log.Handler(), slog.LevelError))
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc), cron.WithChain(cron.Recover(cronLog))),
		runner: runner,
		locks:  locks,
		ttl:    lockTTL,
		base:   context.Background(),
		log:    log,
	}
}

// Add registers job under name at the standard 5-field spec.
func (s *Scheduler) Add(spec, name string, job maintenance.Job) error {
	if _, err := s.cron.AddFunc(spec, func() { s.runJob(s.base, name, job) }); err != nil {
		return fmt.Errorf("schedule %s %q: %w", name, spec, err)
	}
	s.log.Info("job scheduled", slog.String("job", name), slog.String("spec", spec))
	return nil
}

// Start begins firing jobs. Jobs run with ctx as their parent context.
func (s *Scheduler) Start(ctx context.Context) {
	s.base = ctx
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runJob runs one tick. It reports whether this replica ran the job.
func (s *Scheduler) runJob(ctx context.Context, name string, job maintenance.Job) bool {
	if s.locks != nil {
		lock, err := s.locks.Acquire(ctx, name, s.ttl)
		if errors.Is(err, redislock.ErrNotAcquired) {
			s.log.DebugContext(ctx, "job held by another replica", slog.String("job", name))
			return false
		}
		if err != nil {
			s.log.ErrorContext(ctx, "acquire job lock",
				slog.String("job", name),
				slog.String("error", err.Error()),
			)
			return false
		}
		defer func() {
			if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
				s.log.WarnContext(ctx, "release job lock",
					slog.String("job", name),
					slog.String("error", err.Error()),
				)
			}
		}()
	}

	start := time.Now()
	if err := s.runner.Record(ctx, name, job); err != nil {
		s.log.ErrorContext(ctx, "job failed",
			slog.String("job", name),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return true
	}
	s.log.InfoContext(ctx, "job finished",
		slog.String("job", name),
		slog.Duration("duration", time.Since(start)),
	)
	return true
}
