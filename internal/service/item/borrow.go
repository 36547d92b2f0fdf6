package item

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// Borrow lends an available item out: it opens a usage record and marks the
// item in use, both in one transaction.
func (s *Service) Borrow(ctx context.Context, itemID int64, in BorrowInput) (*domain.ItemUsage, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var usage *domain.ItemUsage
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		status, err := s.repo.LockForUpdate(ctx, itemID)
		if err != nil {
			return fmt.Errorf("lock item: %w", err)
		}
		if status != domain.ItemStatusAvailable {
			return domain.NewValidationError("status", "物品当前不可用")
		}

		usage, err = s.repo.CreateUsage(ctx, &domain.ItemUsage{
			ItemID:             itemID,
			User:               strings.TrimSpace(in.UserName),
			BorrowerContact:    contactOrDefault(in.UserContact),
			StartTime:          s.now(),
			ExpectedReturnTime: in.ExpectedReturnTime,
			Purpose:            strings.TrimSpace(in.Purpose),
			Notes:              strings.TrimSpace(in.Notes),
			ConditionBefore:    strings.TrimSpace(in.ConditionBefore),
		})
		if err != nil {
			return fmt.Errorf("create usage: %w", err)
		}
		return s.repo.SetStatus(ctx, itemID, domain.ItemStatusInUse)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item borrowed",
		slog.Int64("item_id", itemID),
		slog.Int64("usage_id", usage.ID),
		slog.String("user", usage.User),
	)
	return usage, nil
}

// Return closes the open usage of an item and makes it available again.
func (s *Service) Return(ctx context.Context, itemID int64, in ReturnInput) (*domain.ItemUsage, error) {
	var usage *domain.ItemUsage
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.LockForUpdate(ctx, itemID); err != nil {
			return fmt.Errorf("lock item: %w", err)
		}

		open, err := s.repo.OpenUsage(ctx, itemID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("item", "该物品未被借用")
		}
		if err != nil {
			return fmt.Errorf("open usage: %w", err)
		}

		end := s.now()
		open.EndTime = &end
		open.IsReturned = true
		open.ConditionAfter = strings.TrimSpace(in.ConditionAfter)
		if in.ReturnNotes != nil {
			open.Notes = strings.TrimSpace(*in.ReturnNotes)
		}

		usage, err = s.repo.UpdateUsage(ctx, open)
		if err != nil {
			return fmt.Errorf("close usage: %w", err)
		}
		return s.repo.SetStatus(ctx, itemID, domain.ItemStatusAvailable)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item returned",
		slog.Int64("item_id", itemID),
		slog.Int64("usage_id", usage.ID),
	)
	return usage, nil
}
