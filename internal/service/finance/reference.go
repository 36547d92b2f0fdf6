package finance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

func (s *Service) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.repo.ListDepartments(ctx)
}

func (s *Service) GetDepartment(ctx context.Context, id int64) (*domain.Department, error) {
	return s.repo.GetDepartment(ctx, id)
}

func (s *Service) CreateDepartment(ctx context.Context, in NamedInput) (*domain.Department, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	d, err := s.repo.CreateDepartment(ctx, &domain.Department{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	s.log.InfoContext(ctx, "department created", slog.Int64("department_id", d.ID))
	return d, nil
}

func (s *Service) UpdateDepartment(ctx context.Context, id int64, in NamedInput) (*domain.Department, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	d, err := s.repo.UpdateDepartment(ctx, &domain.Department{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("update department: %w", err)
	}
	return d, nil
}

// DeleteDepartment removes a department together with its evaluation
// records. Finance records and personnel keep existing without one.
func (s *Service) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.repo.DeleteDepartment(ctx, id); err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	s.log.InfoContext(ctx, "department deleted", slog.Int64("department_id", id))
	return nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.FinanceCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*domain.FinanceCategory, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) CreateCategory(ctx context.Context, in NamedInput) (*domain.FinanceCategory, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.repo.CreateCategory(ctx, &domain.FinanceCategory{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create finance category: %w", err)
	}
	s.log.InfoContext(ctx, "finance category created", slog.Int64("category_id", c.ID))
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, in NamedInput) (*domain.FinanceCategory, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.repo.UpdateCategory(ctx, &domain.FinanceCategory{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("update finance category: %w", err)
	}
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete finance category: %w", err)
	}
	s.log.InfoContext(ctx, "finance category deleted", slog.Int64("category_id", id))
	return nil
}
