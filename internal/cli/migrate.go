package cli

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/studio-backend/migrations"
)

// NewMigrateCommand creates the migrate command group.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProvider(cmd.Context(), rootOpts, func(p *goose.Provider) error {
				return runMigrateUp(cmd.Context(), p, printerFor(cmd, rootOpts))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProvider(cmd.Context(), rootOpts, func(p *goose.Provider) error {
				return runMigrateStatus(cmd.Context(), p, printerFor(cmd, rootOpts))
			})
		},
	})

	return cmd
}

// withProvider opens a database/sql handle for goose, which does not accept
// a pgx pool.
func withProvider(ctx context.Context, opts *RootOptions, fn func(p *goose.Provider) error) error {
	cfg, _, err := loadConfig(opts)
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return WrapExitError(ExitCommandError, "open database", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return WrapExitError(ExitCommandError, "ping database", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return WrapExitError(ExitCommandError, "load migrations", err)
	}

	return fn(provider)
}

type migrationRow struct {
	Version   int64  `json:"version"`
	Source    string `json:"source"`
	State     string `json:"state,omitempty"`
	AppliedAt string `json:"applied_at,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

func runMigrateUp(ctx context.Context, p *goose.Provider, out printer) error {
	results, err := p.Up(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "migrate up", err)
	}

	rows := make([]migrationRow, 0, len(results))
	lines := make([]string, 0, len(results)+1)
	for _, r := range results {
		rows = append(rows, migrationRow{
			Version:  r.Source.Version,
			Source:   r.Source.Path,
			Duration: r.Duration.Round(time.Millisecond).String(),
		})
		lines = append(lines, fmt.Sprintf("applied %05d %s (%s)", r.Source.Version, r.Source.Path, r.Duration.Round(time.Millisecond)))
	}
	if len(results) == 0 {
		lines = append(lines, "no pending migrations")
	}
	return out.print(map[string]any{"applied": rows}, lines...)
}

func runMigrateStatus(ctx context.Context, p *goose.Provider, out printer) error {
	statuses, err := p.Status(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "migrate status", err)
	}

	rows := make([]migrationRow, 0, len(statuses))
	lines := make([]string, 0, len(statuses))
	for _, s := range statuses {
		row := migrationRow{Version: s.Source.Version, Source: s.Source.Path, State: string(s.State)}
		applied := "-"
		if !s.AppliedAt.IsZero() {
			row.AppliedAt = s.AppliedAt.Format(time.RFC3339)
			applied = row.AppliedAt
		}
		rows = append(rows, row)
		lines = append(lines, fmt.Sprintf("%05d  %-8s  %-25s  %s", row.Version, row.State, applied, row.Source))
	}
	return out.print(map[string]any{"migrations": rows}, lines...)
}
