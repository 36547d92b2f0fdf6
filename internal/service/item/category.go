package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

func (s *Service) ListCategories(ctx context.Context) ([]domain.ItemCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*domain.ItemCategory, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*domain.ItemCategory, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.repo.CreateCategory(ctx, &domain.ItemCategory{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create item category: %w", err)
	}
	s.log.InfoContext(ctx, "item category created", slog.Int64("category_id", c.ID))
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (*domain.ItemCategory, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.repo.UpdateCategory(ctx, &domain.ItemCategory{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("update item category: %w", err)
	}
	return c, nil
}

// DeleteCategory removes a category; its items keep existing uncategorized.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete item category: %w", err)
	}
	s.log.InfoContext(ctx, "item category deleted", slog.Int64("category_id", id))
	return nil
}
