package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// ListUsages returns usage records matching filter.
func (s *Service) ListUsages(ctx context.Context, filter domain.ItemUsageFilter) ([]domain.ItemUsage, error) {
	usages, err := s.repo.ListUsages(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list usages: %w", err)
	}
	return usages, nil
}

// CurrentUsages returns every open loan.
func (s *Service) CurrentUsages(ctx context.Context) ([]domain.ItemUsage, error) {
	open := false
	return s.ListUsages(ctx, domain.ItemUsageFilter{IsReturned: &open})
}

// UsagesByUser returns the usages whose borrower name contains user.
func (s *Service) UsagesByUser(ctx context.Context, user string) ([]domain.ItemUsage, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, domain.NewValidationError("user_name", "请提供用户姓名")
	}
	return s.ListUsages(ctx, domain.ItemUsageFilter{User: user})
}

// GetUsage returns one usage record.
func (s *Service) GetUsage(ctx context.Context, id int64) (*domain.ItemUsage, error) {
	return s.repo.GetUsage(ctx, id)
}

// CreateUsage stores a usage record directly, outside the borrow flow.
func (s *Service) CreateUsage(ctx context.Context, in UsageInput) (*domain.ItemUsage, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var u domain.ItemUsage
	in.apply(&u, s.now())

	created, err := s.repo.CreateUsage(ctx, &u)
	if err != nil {
		return nil, fmt.Errorf("create usage: %w", err)
	}
	s.log.InfoContext(ctx, "usage created", slog.Int64("usage_id", created.ID))
	return created, nil
}

// UpdateUsage overwrites every writable field of a usage record.
func (s *Service) UpdateUsage(ctx context.Context, id int64, in UsageInput) (*domain.ItemUsage, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	u, err := s.repo.GetUsage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get usage: %w", err)
	}
	in.apply(u, s.now())

	updated, err := s.repo.UpdateUsage(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("update usage: %w", err)
	}
	s.log.InfoContext(ctx, "usage updated", slog.Int64("usage_id", id))
	return updated, nil
}

// DeleteUsage removes a usage record.
func (s *Service) DeleteUsage(ctx context.Context, id int64) error {
	if err := s.repo.DeleteUsage(ctx, id); err != nil {
		return fmt.Errorf("delete usage: %w", err)
	}
	s.log.InfoContext(ctx, "usage deleted", slog.Int64("usage_id", id))
	return nil
}

// UsageInputOf returns the writable fields of an existing usage.
func UsageInputOf(u *domain.ItemUsage) UsageInput {
	start := u.StartTime
	return UsageInput{
		ItemID:             u.ItemID,
		User:               u.User,
		BorrowerContact:    u.BorrowerContact,
		StartTime:          &start,
		ExpectedReturnTime: u.ExpectedReturnTime,
		EndTime:            u.EndTime,
		Purpose:            u.Purpose,
		Notes:              u.Notes,
		IsReturned:         u.IsReturned,
		ConditionBefore:    u.ConditionBefore,
		ConditionAfter:     u.ConditionAfter,
	}
}
