// Package item manages the studio inventory: items, their categories and the
// borrow/return lifecycle recorded as usages.
package item

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// RecentUsageLimit is the number of usages shown on an item detail.
const RecentUsageLimit = 10

type itemRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	SetStatus(ctx context.Context, id int64, status domain.ItemStatus) error
	LockForUpdate(ctx context.Context, id int64) (domain.ItemStatus, error)
	Delete(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]domain.ItemCategory, error)
	GetCategory(ctx context.Context, id int64) (*domain.ItemCategory, error)
	GetCategoryByName(ctx context.Context, name string) (*domain.ItemCategory, error)
	CreateCategory(ctx context.Context, c *domain.ItemCategory) (*domain.ItemCategory, error)
	UpdateCategory(ctx context.Context, c *domain.ItemCategory) (*domain.ItemCategory, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListUsages(ctx context.Context, filter domain.ItemUsageFilter) ([]domain.ItemUsage, error)
	RecentUsages(ctx context.Context, itemID int64, limit int) ([]domain.ItemUsage, error)
	GetUsage(ctx context.Context, id int64) (*domain.ItemUsage, error)
	OpenUsage(ctx context.Context, itemID int64) (*domain.ItemUsage, error)
	CreateUsage(ctx context.Context, u *domain.ItemUsage) (*domain.ItemUsage, error)
	UpdateUsage(ctx context.Context, u *domain.ItemUsage) (*domain.ItemUsage, error)
	DeleteUsage(ctx context.Context, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides inventory operations.
type Service struct {
	repo itemRepo
	tx   txManager
	loc  *time.Location
	now  func() time.Time
	log  *slog.Logger
}

// NewService creates an item service. loc is used to read and write
// timestamps in imported and exported files.
func NewService(log *slog.Logger, repo itemRepo, tx txManager, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo: repo,
		tx:   tx,
		loc:  loc,
		now:  time.Now,
		log:  log.With("service", "item"),
	}
}
