// Package finance manages income and expense records, their proof images and
// the departments and categories they are filed under.
package finance

import (
	"context"
	"io"
	"log/slog"

	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/notify"
)

type financeRepo interface {
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	GetDepartment(ctx context.Context, id int64) (*domain.Department, error)
	CreateDepartment(ctx context.Context, d *domain.Department) (*domain.Department, error)
	UpdateDepartment(ctx context.Context, d *domain.Department) (*domain.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]domain.FinanceCategory, error)
	GetCategory(ctx context.Context, id int64) (*domain.FinanceCategory, error)
	CreateCategory(ctx context.Context, c *domain.FinanceCategory) (*domain.FinanceCategory, error)
	UpdateCategory(ctx context.Context, c *domain.FinanceCategory) (*domain.FinanceCategory, error)
	DeleteCategory(ctx context.Context, id int64) error

	GetRecord(ctx context.Context, id int64) (*domain.FinancialRecord, error)
	ListRecords(ctx context.Context, filter domain.FinancialRecordFilter) ([]domain.FinancialRecord, error)
	Summary(ctx context.Context, filter domain.FinancialRecordFilter) (domain.FinanceSummary, error)
	CreateRecord(ctx context.Context, rec *domain.FinancialRecord) (*domain.FinancialRecord, error)
	UpdateRecord(ctx context.Context, rec *domain.FinancialRecord) (*domain.FinancialRecord, error)
	DeleteRecord(ctx context.Context, id int64) ([]string, error)

	ListAllProofImages(ctx context.Context, recordID *int64) ([]domain.ProofImage, error)
	GetProofImage(ctx context.Context, id int64) (*domain.ProofImage, error)
	CreateProofImage(ctx context.Context, p *domain.ProofImage) (*domain.ProofImage, error)
	DeleteProofImage(ctx context.Context, id int64) (*domain.ProofImage, error)
}

type fileStore interface {
	Save(dir, name string, r io.Reader) (string, error)
	Remove(rel string) error
}

type eventPublisher interface {
	Publish(e notify.Event)
}

// Service provides finance operations.
type Service struct {
	repo   financeRepo
	files  fileStore
	events eventPublisher
	log    *slog.Logger
}

// NewService creates a finance service. Proof image changes are announced
// through events.
func NewService(log *slog.Logger, repo financeRepo, files fileStore, events eventPublisher) *Service {
	return &Service{
		repo:   repo,
		files:  files,
		events: events,
		log:    log.With("service", "finance"),
	}
}
