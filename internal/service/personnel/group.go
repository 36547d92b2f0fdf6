package personnel

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// ListGroups returns project groups, optionally of one department only.
func (s *Service) ListGroups(ctx context.Context, departmentID *int64) ([]domain.ProjectGroup, error) {
	groups, err := s.repo.ListGroups(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("list project groups: %w", err)
	}
	return groups, nil
}

func (s *Service) GetGroup(ctx context.Context, id int64) (*domain.ProjectGroup, error) {
	return s.repo.GetGroup(ctx, id)
}

func (s *Service) CreateGroup(ctx context.Context, in GroupInput) (*domain.ProjectGroup, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	g, err := s.repo.CreateGroup(ctx, &domain.ProjectGroup{
		Name:         strings.TrimSpace(in.Name),
		DepartmentID: in.DepartmentID,
		Description:  strings.TrimSpace(in.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create project group: %w", err)
	}
	s.log.InfoContext(ctx, "project group created", slog.Int64("group_id", g.ID))
	return g, nil
}

func (s *Service) UpdateGroup(ctx context.Context, id int64, in GroupInput) (*domain.ProjectGroup, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	g, err := s.repo.UpdateGroup(ctx, &domain.ProjectGroup{
		ID:           id,
		Name:         strings.TrimSpace(in.Name),
		DepartmentID: in.DepartmentID,
		Description:  strings.TrimSpace(in.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("update project group: %w", err)
	}
	return g, nil
}

// DeleteGroup removes a group; its members stay on the roster without one.
func (s *Service) DeleteGroup(ctx context.Context, id int64) error {
	if err := s.repo.DeleteGroup(ctx, id); err != nil {
		return fmt.Errorf("delete project group: %w", err)
	}
	s.log.InfoContext(ctx, "project group deleted", slog.Int64("group_id", id))
	return nil
}
