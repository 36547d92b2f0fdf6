package item

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

var usageColumns = []string{
	"u.id", "u.item_id", "i.name", "u.\"user\"", "u.borrower_contact", "u.start_time",
	"u.expected_return_time", "u.end_time", "u.purpose", "u.notes", "u.is_returned",
	"u.condition_before", "u.condition_after", "u.created_at",
}

func selectUsages() sq.SelectBuilder {
	return postgres.Psql.Select(usageColumns...).
		From("item_usages u").
		Join("items i ON i.id = u.item_id")
}

// ListUsages returns usage records matching the filter, newest first.
func (r *Repo) ListUsages(ctx context.Context, filter domain.ItemUsageFilter) ([]domain.ItemUsage, error) {
	b := selectUsages().OrderBy("u.start_time DESC", "u.id DESC")
	if filter.ItemID != nil {
		b = b.Where(sq.Eq{"u.item_id": *filter.ItemID})
	}
	if filter.User != "" {
		b = b.Where(sq.Eq{"u.\"user\"": filter.User})
	}
	if filter.IsReturned != nil {
		b = b.Where(sq.Eq{"u.is_returned": *filter.IsReturned})
	}
	return r.queryUsages(ctx, b)
}

// RecentUsages returns the latest usages of one item.
func (r *Repo) RecentUsages(ctx context.Context, itemID int64, limit int) ([]domain.ItemUsage, error) {
	b := selectUsages().
		Where(sq.Eq{"u.item_id": itemID}).
		OrderBy("u.start_time DESC", "u.id DESC").
		Limit(uint64(limit))
	return r.queryUsages(ctx, b)
}

// GetUsage returns one usage record.
func (r *Repo) GetUsage(ctx context.Context, id int64) (*domain.ItemUsage, error) {
	query, args, err := selectUsages().Where(sq.Eq{"u.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	u, err := scanUsage(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item usage", id)
	}
	return u, nil
}

// OpenUsage returns the unreturned usage of an item, or ErrNotFound.
func (r *Repo) OpenUsage(ctx context.Context, itemID int64) (*domain.ItemUsage, error) {
	query, args, err := selectUsages().
		Where(sq.Eq{"u.item_id": itemID, "u.is_returned": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	u, err := scanUsage(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "open usage for item", itemID)
	}
	return u, nil
}

// CreateUsage inserts a usage record. A second open usage for the same item
// violates uq_item_usages_open and surfaces as ErrAlreadyExists.
func (r *Repo) CreateUsage(ctx context.Context, u *domain.ItemUsage) (*domain.ItemUsage, error) {
	query, args, err := postgres.Psql.Insert("item_usages").
		Columns("item_id", "\"user\"", "borrower_contact", "start_time", "expected_return_time",
			"end_time", "purpose", "notes", "is_returned", "condition_before", "condition_after").
		Values(u.ItemID, u.User, u.BorrowerContact, u.StartTime, u.ExpectedReturnTime,
			u.EndTime, u.Purpose, u.Notes, u.IsReturned, u.ConditionBefore, u.ConditionAfter).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "item usage", 0)
	}
	return r.GetUsage(ctx, id)
}

// UpdateUsage overwrites every mutable column of the usage.
func (r *Repo) UpdateUsage(ctx context.Context, u *domain.ItemUsage) (*domain.ItemUsage, error) {
	query, args, err := postgres.Psql.Update("item_usages").
		SetMap(map[string]any{
			"\"user\"":             u.User,
			"borrower_contact":     u.BorrowerContact,
			"start_time":           u.StartTime,
			"expected_return_time": u.ExpectedReturnTime,
			"end_time":             u.EndTime,
			"purpose":              u.Purpose,
			"notes":                u.Notes,
			"is_returned":          u.IsReturned,
			"condition_before":     u.ConditionBefore,
			"condition_after":      u.ConditionAfter,
		}).
		Where(sq.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "item usage", u.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("item usage %d: %w", u.ID, domain.ErrNotFound)
	}
	return r.GetUsage(ctx, u.ID)
}

// DeleteUsage removes a usage record.
func (r *Repo) DeleteUsage(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM item_usages WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "item usage", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item usage %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) queryUsages(ctx context.Context, b sq.SelectBuilder) ([]domain.ItemUsage, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list item usages: %w", err)
	}
	defer rows.Close()

	out := []domain.ItemUsage{}
	for rows.Next() {
		u, err := scanUsage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item usage: %w", err)
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func scanUsage(row pgx.Row) (*domain.ItemUsage, error) {
	var u domain.ItemUsage
	err := row.Scan(
		&u.ID, &u.ItemID, &u.ItemName, &u.User, &u.BorrowerContact, &u.StartTime,
		&u.ExpectedReturnTime, &u.EndTime, &u.Purpose, &u.Notes, &u.IsReturned,
		&u.ConditionBefore, &u.ConditionAfter, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
