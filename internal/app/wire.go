package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/studio-backend/internal/adapter/mail"
	"github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	evaluationrepo "github.com/heartmarshall/studio-backend/internal/adapter/postgres/evaluation"
	financerepo "github.com/heartmarshall/studio-backend/internal/adapter/postgres/finance"
	itemrepo "github.com/heartmarshall/studio-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/studio-backend/internal/adapter/postgres/jobrun"
	memorepo "github.com/heartmarshall/studio-backend/internal/adapter/postgres/memo"
	notificationrepo "github.com/heartmarshall/studio-backend/internal/adapter/postgres/notification"
	personnelrepo "github.com/heartmarshall/studio-backend/internal/adapter/postgres/personnel"
	"github.com/heartmarshall/studio-backend/internal/adapter/storage"
	"github.com/heartmarshall/studio-backend/internal/config"
	"github.com/heartmarshall/studio-backend/internal/notify"
	"github.com/heartmarshall/studio-backend/internal/service/evaluation"
	"github.com/heartmarshall/studio-backend/internal/service/finance"
	"github.com/heartmarshall/studio-backend/internal/service/item"
	"github.com/heartmarshall/studio-backend/internal/service/maintenance"
	"github.com/heartmarshall/studio-backend/internal/service/memo"
	"github.com/heartmarshall/studio-backend/internal/service/notification"
	"github.com/heartmarshall/studio-backend/internal/service/personnel"
	"github.com/heartmarshall/studio-backend/internal/transport/rest"
)

// container holds the wired application graph.
type container struct {
	media       *storage.Local
	mailPool    *notify.Pool
	notifier    *notify.Notifier
	maintenance *maintenance.Service
	handlers    rest.Handlers
	snapshots   notify.Snapshotters
}

// NewMaintenance wires the maintenance service on its own, for commands that
// do not serve HTTP.
func NewMaintenance(logger *slog.Logger, pool *pgxpool.Pool, loc *time.Location) *maintenance.Service {
	return maintenance.NewService(logger, personnelrepo.New(pool), jobrun.New(pool), loc)
}

func build(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	reg prometheus.Registerer,
	loc *time.Location,
) (*container, error) {
	// Infrastructure
	media, err := storage.NewLocal(cfg.Storage.MediaRoot)
	if err != nil {
		return nil, err
	}
	sender, err := mail.New(ctx, cfg.Mail, logger)
	if err != nil {
		return nil, fmt.Errorf("init mail: %w", err)
	}
	txm := postgres.NewTxManager(pool)

	// Repositories
	items := itemrepo.New(pool)
	fin := financerepo.New(pool)
	people := personnelrepo.New(pool)
	evals := evaluationrepo.New(pool)
	memos := memorepo.New(pool)
	settings := notificationrepo.New(pool)
	runs := jobrun.New(pool)

	// Notification pipeline
	metrics := notify.NewMetrics(reg)
	nc := cfg.Notification
	mailPool := notify.NewPool(nc.Workers, nc.MaxPending, nc.TaskTimeout, metrics, logger)
	settingsSvc := notification.NewService(logger, settings, txm)
	notifier := notify.NewNotifier(
		logger,
		settingsSvc,
		sender,
		notify.NewRenderer(nc.StudioName, loc),
		mailPool,
		metrics,
		nc.Enabled,
	)

	// Services
	itemSvc := item.NewService(logger, items, txm, loc)
	financeSvc := finance.NewService(logger, fin, media, notifier)
	maintenanceSvc := maintenance.NewService(logger, people, runs, loc)
	personnelSvc := personnel.NewService(logger, people, maintenanceSvc, notifier, loc)
	evaluationSvc := evaluation.NewService(logger, evals, fin, people, txm, notifier, loc)
	memoSvc := memo.NewService(logger, memos, media)

	maxUpload := cfg.Storage.MaxUploadMB << 20

	return &container{
		media:       media,
		mailPool:    mailPool,
		notifier:    notifier,
		maintenance: maintenanceSvc,
		handlers: rest.Handlers{
			Items:             rest.NewItemHandler(itemSvc, logger, loc, maxUpload),
			Usages:            rest.NewUsageHandler(itemSvc, logger, loc),
			ItemCategories:    rest.NewItemCategoryHandler(itemSvc, logger),
			Finance:           rest.NewFinanceHandler(financeSvc, logger, loc, maxUpload),
			FinanceCategories: rest.NewFinanceCategoryHandler(financeSvc, logger),
			Departments:       rest.NewDepartmentHandler(financeSvc, logger),
			Personnel:         rest.NewPersonnelHandler(personnelSvc, logger, loc),
			Evaluation:        rest.NewEvaluationHandler(evaluationSvc, logger, loc, maxUpload),
			Memos:             rest.NewMemoHandler(memoSvc, logger, loc, maxUpload),
			Settings:          rest.NewSettingsHandler(settingsSvc, logger),
		},
		snapshots: snapshotters(itemSvc, financeSvc, personnelSvc, memoSvc),
	}, nil
}

// snapshotters loads objects for the delete routes the notifier describes on
// its own.
func snapshotters(items *item.Service, fin *finance.Service, people *personnel.Service, memos *memo.Service) notify.Snapshotters {
	return notify.Snapshotters{
		notify.KindItem:            snap(items.Get, notify.ItemFrom),
		notify.KindItemCategory:    snap(items.GetCategory, notify.ItemCategoryFrom),
		notify.KindItemUsage:       snap(items.GetUsage, notify.ItemUsageFrom),
		notify.KindFinancialRecord: snap(fin.GetRecord, notify.FinancialRecordFrom),
		notify.KindFinanceCategory: snap(fin.GetCategory, notify.FinanceCategoryFrom),
		notify.KindDepartment:      snap(fin.GetDepartment, notify.DepartmentFrom),
		notify.KindPersonnel:       snap(people.Get, notify.PersonnelFrom),
		notify.KindProjectGroup:    snap(people.GetGroup, notify.ProjectGroupFrom),
		notify.KindMemo:            snap(memos.Get, notify.MemoFrom),
	}
}

func snap[T any, P notify.Payload](get func(context.Context, int64) (*T, error), conv func(*T) P) notify.Snapshotter {
	return func(ctx context.Context, id int64) (notify.Payload, error) {
		v, err := get(ctx, id)
		if err != nil {
			return nil, err
		}
		return conv(v), nil
	}
}
