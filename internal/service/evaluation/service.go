// Package evaluation manages member evaluation scores and their bulk
// import and export. Every change here announces itself: the HTTP layer
// never dispatches evaluation notifications.
package evaluation

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/notify"
)

type evaluationRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.EvaluationRecord, error)
	List(ctx context.Context, f domain.EvaluationFilter) ([]domain.EvaluationRecord, error)
	Create(ctx context.Context, rec *domain.EvaluationRecord) (*domain.EvaluationRecord, error)
	Update(ctx context.Context, rec *domain.EvaluationRecord) (*domain.EvaluationRecord, error)
	Delete(ctx context.Context, id int64) error
	ReplaceAll(ctx context.Context, records []domain.EvaluationRecord) (int, error)
}

type departmentLookup interface {
	GetDepartment(ctx context.Context, id int64) (*domain.Department, error)
	GetDepartmentByName(ctx context.Context, name string) (*domain.Department, error)
}

type personnelLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Personnel, error)
	GetByName(ctx context.Context, name string) (*domain.Personnel, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(e notify.Event)
}

// Service provides evaluation operations.
type Service struct {
	repo        evaluationRepo
	departments departmentLookup
	personnel   personnelLookup
	tx          txManager
	events      eventPublisher
	loc         *time.Location
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates an evaluation service. loc is the zone of timestamps in
// imported and exported files.
func NewService(
	log *slog.Logger,
	repo evaluationRepo,
	departments departmentLookup,
	personnel personnelLookup,
	tx txManager,
	events eventPublisher,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo:        repo,
		departments: departments,
		personnel:   personnel,
		tx:          tx,
		events:      events,
		loc:         loc,
		now:         time.Now,
		log:         log.With("service", "evaluation"),
	}
}

func (s *Service) publish(ctx context.Context, op notify.Operation, p notify.Payload) {
	s.events.Publish(notify.NewEvent(ctx, op, p))
}
