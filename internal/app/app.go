package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studio-backend/internal/adapter/redislock"
	"github.com/heartmarshall/studio-backend/internal/auth"
	"github.com/heartmarshall/studio-backend/internal/config"
	"github.com/heartmarshall/studio-backend/internal/transport/middleware"
	"github.com/heartmarshall/studio-backend/internal/transport/rest"
)

// Run is the server entry point. It wires the application, serves HTTP and
// runs the maintenance scheduler until ctx is canceled, then shuts everything
// down within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	loc := cfg.Scheduler.Location()

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", loc.String()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c, err := build(ctx, cfg, logger, pool, reg, loc)
	if err != nil {
		return err
	}

	extra := map[string]rest.Pinger{}
	if rdb != nil {
		extra["redis"] = rest.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := newRootHandler(cfg, logger, routes{
		handlers:  c.handlers,
		health:    rest.NewHealthHandler(pool, BuildVersion(), extra),
		tokens:    auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		events:    c.notifier,
		snapshots: c.snapshots,
		limiter:   limiter,
		gatherer:  reg,
		mediaRoot: c.media.Root(),
	})
	srv := newHTTPServer(cfg.Server, handler)

	var sched *Scheduler
	if cfg.Scheduler.Enabled {
		var locks jobLocker
		if rdb != nil {
			locks = redislock.New(rdb, "studio:jobs")
		}
		sched = NewScheduler(logger, c.maintenance, locks, cfg.Scheduler.LockTTL, loc)
		if err := sched.Add(cfg.Scheduler.CheckExpiredCron, JobCheckExpired, c.maintenance.CheckExpiredJob); err != nil {
			return err
		}
		if err := sched.Add(cfg.Scheduler.PruneJobRunsCron, JobPruneJobRuns, c.maintenance.PruneJob(cfg.Scheduler.JobRunRetention)); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if sched != nil {
		sched.Start(gctx)
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown", slog.String("error", err.Error()))
		}
		if sched != nil {
			if err := sched.Stop(shutdownCtx); err != nil {
				logger.Error("scheduler shutdown", slog.String("error", err.Error()))
			}
		}
		if err := c.mailPool.Shutdown(shutdownCtx); err != nil {
			logger.Error("notification pool shutdown", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}
