package domain

import "time"

// JobRun records one execution of a maintenance job.
type JobRun struct {
	ID         int64
	JobName    string
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     JobStatus
	Details    map[string]any
	Error      string
}

// Names of scheduled maintenance jobs.
const (
	JobCheckExpiredPersonnel = "check_expired_personnel"
	JobPruneJobRuns          = "prune_job_runs"
)
