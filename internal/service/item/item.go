package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// List returns items matching filter.
func (s *Service) List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// ListByStatus is List narrowed to one status, used by the available and
// in_use listings.
func (s *Service) ListByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.Item, error) {
	return s.List(ctx, domain.ItemFilter{Status: &status})
}

// Get returns an item with its most recent usages.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	usages, err := s.repo.RecentUsages(ctx, id, RecentUsageLimit)
	if err != nil {
		return nil, fmt.Errorf("recent usages: %w", err)
	}
	it.RecentUsages = usages
	return it, nil
}

// Find returns an item without its usage history.
func (s *Service) Find(ctx context.Context, id int64) (*domain.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new item.
func (s *Service) Create(ctx context.Context, in ItemInput) (*domain.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var it domain.Item
	in.apply(&it)

	created, err := s.repo.Create(ctx, &it)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.InfoContext(ctx, "item created",
		slog.Int64("item_id", created.ID),
		slog.String("serial_number", created.SerialNumber),
	)
	return created, nil
}

// Update overwrites every writable field of an item.
func (s *Service) Update(ctx context.Context, id int64, in ItemInput) (*domain.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	in.apply(it)

	updated, err := s.repo.Update(ctx, it)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.log.InfoContext(ctx, "item updated", slog.Int64("item_id", id))
	return updated, nil
}

// Delete removes an item and its usage history.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.log.InfoContext(ctx, "item deleted", slog.Int64("item_id", id))
	return nil
}

// InputOf returns the writable fields of an existing item, the starting
// point of a partial update.
func InputOf(it *domain.Item) ItemInput {
	return ItemInput{
		Name:         it.Name,
		Description:  it.Description,
		SerialNumber: it.SerialNumber,
		CategoryID:   it.CategoryID,
		Status:       it.Status,
		Location:     it.Location,
		Owner:        it.Owner,
		PurchaseDate: it.PurchaseDate,
		Value:        it.Value,
	}
}
