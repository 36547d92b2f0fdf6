package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/studio-backend/internal/app"
	"github.com/heartmarshall/studio-backend/internal/service/maintenance"
)

// CheckExpiredOptions holds flags for the check-expired command.
type CheckExpiredOptions struct {
	*RootOptions
	DryRun bool
}

// NewCheckExpiredCommand creates the check-expired command.
func NewCheckExpiredCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckExpiredOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check-expired",
		Short: "Deactivate personnel whose term has ended",
		Long: `Find active personnel whose end date is today or earlier and mark them
inactive. The run is recorded in the job history like a scheduled run.

Example:
  studioctl check-expired --dry-run
  studioctl check-expired --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context(), opts.RootOptions)
			if err != nil {
				return err
			}
			defer e.Close()

			svc := app.NewMaintenance(e.log, e.pool, e.cfg.Scheduler.Location())
			return runCheckExpired(cmd, opts, svc)
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "only list the personnel that would be deactivated")

	return cmd
}

func runCheckExpired(cmd *cobra.Command, opts *CheckExpiredOptions, svc *maintenance.Service) error {
	ctx := cmd.Context()

	var res maintenance.CheckResult
	if opts.DryRun {
		r, err := svc.CheckExpired(ctx, true)
		if err != nil {
			return WrapExitError(ExitFailure, "check expired", err)
		}
		res = r
	} else {
		err := svc.Record(ctx, app.JobCheckExpired, func(ctx context.Context) (map[string]any, error) {
			r, err := svc.CheckExpired(ctx, false)
			if err != nil {
				return nil, err
			}
			res = r
			return map[string]any{"count": r.Count(), "names": r.Names, "source": "cli"}, nil
		})
		if err != nil {
			return WrapExitError(ExitFailure, "check expired", err)
		}
	}

	return printerFor(cmd, opts.RootOptions).print(
		map[string]any{"dry_run": opts.DryRun, "count": res.Count(), "names": res.Names},
		checkExpiredLines(res, opts.DryRun)...,
	)
}

func checkExpiredLines(res maintenance.CheckResult, dryRun bool) []string {
	if res.Count() == 0 {
		return []string{"没有需要设置为已卸任状态的人员"}
	}
	lines := []string{fmt.Sprintf("发现 %d 名任职已到期的人员:", res.Count())}
	for _, n := range res.Names {
		lines = append(lines, "  - "+n)
	}
	if dryRun {
		return append(lines, "这是预览模式，未实际更新任何数据")
	}
	return append(lines, fmt.Sprintf("成功将 %d 名人员设置为已卸任状态", res.Count()))
}

// PruneJobRunsOptions holds flags for the prune-job-runs command.
type PruneJobRunsOptions struct {
	*RootOptions
	Retention time.Duration
}

// NewPruneJobRunsCommand creates the prune-job-runs command.
func NewPruneJobRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PruneJobRunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "prune-job-runs",
		Short: "Delete old job-run history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Retention <= 0 {
				return NewExitError(ExitCommandError, "--retention must be positive")
			}
			e, err := openEnv(cmd.Context(), opts.RootOptions)
			if err != nil {
				return err
			}
			defer e.Close()

			svc := app.NewMaintenance(e.log, e.pool, e.cfg.Scheduler.Location())
			var deleted int64
			err = svc.Record(cmd.Context(), app.JobPruneJobRuns, func(ctx context.Context) (map[string]any, error) {
				n, err := svc.PruneJobRuns(ctx, opts.Retention)
				if err != nil {
					return nil, err
				}
				deleted = n
				return map[string]any{"deleted": n, "source": "cli"}, nil
			})
			if err != nil {
				return WrapExitError(ExitFailure, "prune job runs", err)
			}

			return printerFor(cmd, opts.RootOptions).print(
				map[string]any{"deleted": deleted, "retention": opts.Retention.String()},
				fmt.Sprintf("deleted %d job runs older than %s", deleted, opts.Retention),
			)
		},
	}

	cmd.Flags().DurationVar(&opts.Retention, "retention", maintenance.DefaultRetention, "keep runs newer than this")

	return cmd
}
