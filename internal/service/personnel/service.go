// Package personnel manages the studio roster and its project groups.
package personnel

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/notify"
	"github.com/heartmarshall/studio-backend/internal/service/maintenance"
)

type personnelRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Personnel, error)
	List(ctx context.Context, f domain.PersonnelFilter) ([]domain.Personnel, error)
	Create(ctx context.Context, p *domain.Personnel) (*domain.Personnel, error)
	Update(ctx context.Context, p *domain.Personnel) (*domain.Personnel, error)
	Delete(ctx context.Context, id int64) error
	Statistics(ctx context.Context) (domain.PersonnelStatistics, error)

	ListGroups(ctx context.Context, departmentID *int64) ([]domain.ProjectGroup, error)
	GetGroup(ctx context.Context, id int64) (*domain.ProjectGroup, error)
	CreateGroup(ctx context.Context, g *domain.ProjectGroup) (*domain.ProjectGroup, error)
	UpdateGroup(ctx context.Context, g *domain.ProjectGroup) (*domain.ProjectGroup, error)
	DeleteGroup(ctx context.Context, id int64) error
}

type expiryChecker interface {
	CheckExpired(ctx context.Context, dryRun bool) (maintenance.CheckResult, error)
}

type eventPublisher interface {
	Publish(e notify.Event)
}

// Service provides roster operations.
type Service struct {
	repo   personnelRepo
	expiry expiryChecker
	events eventPublisher
	loc    *time.Location
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a personnel service. Tenure is evaluated against the
// calendar day in loc.
func NewService(log *slog.Logger, repo personnelRepo, expiry expiryChecker, events eventPublisher, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo:   repo,
		expiry: expiry,
		events: events,
		loc:    loc,
		now:    time.Now,
		log:    log.With("service", "personnel"),
	}
}

func (s *Service) today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
