package personnel

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// List returns members matching f.
func (s *Service) List(ctx context.Context, f domain.PersonnelFilter) ([]domain.Personnel, error) {
	members, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list personnel: %w", err)
	}
	return members, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Personnel, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new member.
func (s *Service) Create(ctx context.Context, in MemberInput) (*domain.Personnel, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	var p domain.Personnel
	in.apply(&p)
	p.ApplyTenure(s.today())

	created, err := s.repo.Create(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("create personnel: %w", err)
	}
	s.log.InfoContext(ctx, "personnel created",
		slog.Int64("personnel_id", created.ID),
		slog.Bool("active", created.IsActive),
	)
	return created, nil
}

// Update overwrites every writable field of a member.
func (s *Service) Update(ctx context.Context, id int64, in MemberInput) (*domain.Personnel, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get personnel: %w", err)
	}
	in.apply(p)
	return s.save(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete personnel: %w", err)
	}
	s.log.InfoContext(ctx, "personnel deleted", slog.Int64("personnel_id", id))
	return nil
}

// SetActive clears the end date and marks the member active.
func (s *Service) SetActive(ctx context.Context, id int64) (*domain.Personnel, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get personnel: %w", err)
	}
	p.EndDate = nil
	p.IsActive = true
	return s.save(ctx, p)
}

// SetInactive ends the member's tenure today. A member whose tenure starts
// today or later gets the day after the start date, since the end date must
// be after the start date.
func (s *Service) SetInactive(ctx context.Context, id int64) (*domain.Personnel, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get personnel: %w", err)
	}
	end := s.today()
	y, m, d := p.StartDate.Date()
	if start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC); !end.After(start) {
		end = start.AddDate(0, 0, 1)
	}
	p.EndDate = &end
	p.IsActive = false
	return s.save(ctx, p)
}

// Statistics summarises the roster.
func (s *Service) Statistics(ctx context.Context) (domain.PersonnelStatistics, error) {
	st, err := s.repo.Statistics(ctx)
	if err != nil {
		return domain.PersonnelStatistics{}, fmt.Errorf("personnel statistics: %w", err)
	}
	return st, nil
}

func (s *Service) save(ctx context.Context, p *domain.Personnel) (*domain.Personnel, error) {
	p.ApplyTenure(s.today())
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update personnel: %w", err)
	}
	s.log.InfoContext(ctx, "personnel updated",
		slog.Int64("personnel_id", p.ID),
		slog.Bool("active", updated.IsActive),
	)
	return updated, nil
}

// validate runs the field checks and then requires the project group, when
// given, to belong to the chosen department.
func (s *Service) validate(ctx context.Context, in MemberInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if in.ProjectGroupID == nil || in.DepartmentID == nil {
		return nil
	}
	g, err := s.repo.GetGroup(ctx, *in.ProjectGroupID)
	if err != nil {
		return fmt.Errorf("get project group: %w", err)
	}
	if g.DepartmentID != nil && *g.DepartmentID != *in.DepartmentID {
		return domain.NewValidationError("project_group", "项目组必须包含选定的部门")
	}
	return nil
}
