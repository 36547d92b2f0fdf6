package cli

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studio-backend/internal/app"
	"github.com/heartmarshall/studio-backend/internal/config"
)

// env is what a database command needs: config, logger and pool.
type env struct {
	cfg  *config.Config
	log  *slog.Logger
	pool *pgxpool.Pool
}

func (e *env) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

func loadConfig(opts *RootOptions) (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.Config != "" {
		cfg, err = config.LoadFile(opts.Config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "load config", err)
	}
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

func openEnv(ctx context.Context, opts *RootOptions) (*env, error) {
	cfg, logger, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "connect to database", err)
	}
	return &env{cfg: cfg, log: logger, pool: pool}, nil
}

func printerFor(cmd *cobra.Command, opts *RootOptions) printer {
	return printer{format: opts.Format, w: cmd.OutOrStdout()}
}
