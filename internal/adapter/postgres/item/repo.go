// Package item implements persistence for items, item categories and item
// usage records.
package item

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var itemColumns = []string{
	"i.id", "i.name", "i.description", "i.serial_number", "i.category_id", "COALESCE(c.name, '')",
	"i.status", "i.location", "i.owner", "i.purchase_date", "i.value", "i.created_at", "i.updated_at",
	"u.id", "u.\"user\"", "u.borrower_contact",
}

func selectItems() sq.SelectBuilder {
	return postgres.Psql.Select(itemColumns...).
		From("items i").
		LeftJoin("item_categories c ON c.id = i.category_id").
		LeftJoin("item_usages u ON u.item_id = i.id AND NOT u.is_returned")
}

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

// GetByID returns an item with its category name and open usage.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	query, args, err := selectItems().Where(sq.Eq{"i.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	item, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}
	return item, nil
}

// List returns items matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	b := selectItems().OrderBy("i.created_at DESC", "i.id DESC")
	if filter.Status != nil {
		b = b.Where(sq.Eq{"i.status": string(*filter.Status)})
	}
	if filter.CategoryID != nil {
		b = b.Where(sq.Eq{"i.category_id": *filter.CategoryID})
	}
	if like := postgres.ILike(filter.Search, "i.name", "i.serial_number", "i.owner", "i.location"); like != nil {
		b = b.Where(like)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// Create inserts an item and returns the stored row.
func (r *Repo) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query, args, err := postgres.Psql.Insert("items").
		Columns("name", "description", "serial_number", "category_id", "status",
			"location", "owner", "purchase_date", "value").
		Values(item.Name, item.Description, item.SerialNumber, item.CategoryID, string(item.Status),
			item.Location, item.Owner, item.PurchaseDate, nullDecimal(item.Value)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "item", 0)
	}
	return r.GetByID(ctx, id)
}

// Update overwrites every mutable column of the item.
func (r *Repo) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query, args, err := postgres.Psql.Update("items").
		SetMap(map[string]any{
			"name":          item.Name,
			"description":   item.Description,
			"serial_number": item.SerialNumber,
			"category_id":   item.CategoryID,
			"status":        string(item.Status),
			"location":      item.Location,
			"owner":         item.Owner,
			"purchase_date": item.PurchaseDate,
			"value":         nullDecimal(item.Value),
			"updated_at":    sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "item", item.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("item %d: %w", item.ID, domain.ErrNotFound)
	}
	return r.GetByID(ctx, item.ID)
}

// SetStatus changes only the lifecycle status.
func (r *Repo) SetStatus(ctx context.Context, id int64, status domain.ItemStatus) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE items SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// LockForUpdate takes a row lock on the item for the current transaction.
func (r *Repo) LockForUpdate(ctx context.Context, id int64) (domain.ItemStatus, error) {
	var status string
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT status FROM items WHERE id = $1 FOR UPDATE`, id).Scan(&status)
	if err != nil {
		return "", postgres.MapError(err, "item", id)
	}
	return domain.ItemStatus(status), nil
}

// Delete removes an item; its usages cascade.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		it       domain.Item
		status   string
		value    decimal.NullDecimal
		usageID  *int64
		user     *string
		contact  *string
		purchase *time.Time
	)
	err := row.Scan(
		&it.ID, &it.Name, &it.Description, &it.SerialNumber, &it.CategoryID, &it.CategoryName,
		&status, &it.Location, &it.Owner, &purchase, &value, &it.CreatedAt, &it.UpdatedAt,
		&usageID, &user, &contact,
	)
	if err != nil {
		return nil, err
	}
	it.Status = domain.ItemStatus(status)
	it.PurchaseDate = purchase
	if value.Valid {
		v := value.Decimal
		it.Value = &v
	}
	if usageID != nil {
		it.CurrentUsage = &domain.ItemUsage{ID: *usageID, ItemID: it.ID, User: deref(user), BorrowerContact: deref(contact)}
	}
	return &it, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// ListCategories returns all item categories ordered by name.
func (r *Repo) ListCategories(ctx context.Context) ([]domain.ItemCategory, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, name, description FROM item_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list item categories: %w", err)
	}
	defer rows.Close()

	out := []domain.ItemCategory{}
	for rows.Next() {
		var c domain.ItemCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan item category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetCategory returns one category.
func (r *Repo) GetCategory(ctx context.Context, id int64) (*domain.ItemCategory, error) {
	var c domain.ItemCategory
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, description FROM item_categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		return nil, postgres.MapError(err, "item category", id)
	}
	return &c, nil
}

// GetCategoryByName returns a category by its unique name.
func (r *Repo) GetCategoryByName(ctx context.Context, name string) (*domain.ItemCategory, error) {
	var c domain.ItemCategory
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, description FROM item_categories WHERE name = $1`, name).
		Scan(&c.ID, &c.Name, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("item category %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get item category by name: %w", err)
	}
	return &c, nil
}

// CreateCategory inserts a category.
func (r *Repo) CreateCategory(ctx context.Context, c *domain.ItemCategory) (*domain.ItemCategory, error) {
	out := *c
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO item_categories (name, description) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Description).Scan(&out.ID)
	if err != nil {
		return nil, postgres.MapError(err, "item category", 0)
	}
	return &out, nil
}

// UpdateCategory overwrites name and description.
func (r *Repo) UpdateCategory(ctx context.Context, c *domain.ItemCategory) (*domain.ItemCategory, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE item_categories SET name = $2, description = $3 WHERE id = $1`, c.ID, c.Name, c.Description)
	if err != nil {
		return nil, postgres.MapError(err, "item category", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("item category %d: %w", c.ID, domain.ErrNotFound)
	}
	out := *c
	return &out, nil
}

// DeleteCategory removes a category; items keep a NULL category.
func (r *Repo) DeleteCategory(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM item_categories WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "item category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item category %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
