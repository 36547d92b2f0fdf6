// Package jobrun records executions of scheduled maintenance jobs.
package jobrun

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

// Repo provides job-run persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new job-run repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Start inserts a running job and returns its id.
func (r *Repo) Start(ctx context.Context, jobName string) (int64, error) {
	var id int64
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO job_runs (job_name) VALUES ($1) RETURNING id`, jobName).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("start job run %s: %w", jobName, err)
	}
	return id, nil
}

// Finish marks a run as finished with the given outcome.
func (r *Repo) Finish(ctx context.Context, id int64, status domain.JobStatus, details map[string]any, errText string) error {
	if details == nil {
		details = map[string]any{}
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("job run %d marshal details: %w", id, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE job_runs SET finished_at = now(), status = $2, details = $3, error = $4 WHERE id = $1`,
		id, string(status), detailsJSON, errText)
	if err != nil {
		return postgres.MapError(err, "job run", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job run %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Get returns one run.
func (r *Repo) Get(ctx context.Context, id int64) (*domain.JobRun, error) {
	var (
		run     domain.JobRun
		status  string
		details []byte
	)
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, job_name, started_at, finished_at, status, details, error FROM job_runs WHERE id = $1`, id).
		Scan(&run.ID, &run.JobName, &run.StartedAt, &run.FinishedAt, &status, &details, &run.Error)
	if err != nil {
		return nil, postgres.MapError(err, "job run", id)
	}
	run.Status = domain.JobStatus(status)
	if len(details) > 0 {
		if err := json.Unmarshal(details, &run.Details); err != nil {
			return nil, fmt.Errorf("job run %d unmarshal details: %w", id, err)
		}
	}
	return &run, nil
}

// DeleteOlderThan removes runs that started before the cutoff.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM job_runs WHERE started_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune job runs: %w", err)
	}
	return tag.RowsAffected(), nil
}
