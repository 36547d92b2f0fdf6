package finance

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Departments
// ---------------------------------------------------------------------------

// ListDepartments returns every department ordered by name.
func (r *Repo) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, name, description, created_at FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	out := []domain.Department{}
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetDepartment returns one department.
func (r *Repo) GetDepartment(ctx context.Context, id int64) (*domain.Department, error) {
	var d domain.Department
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, description, created_at FROM departments WHERE id = $1`, id).
		Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "department", id)
	}
	return &d, nil
}

// GetDepartmentByName returns a department by its unique name.
func (r *Repo) GetDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	var d domain.Department
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, description, created_at FROM departments WHERE name = $1`, name).
		Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("department %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get department by name: %w", err)
	}
	return &d, nil
}

// CreateDepartment inserts a department.
func (r *Repo) CreateDepartment(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	out := *d
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO departments (name, description) VALUES ($1, $2) RETURNING id, created_at`,
		d.Name, d.Description).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "department", 0)
	}
	return &out, nil
}

// UpdateDepartment overwrites name and description.
func (r *Repo) UpdateDepartment(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	out := *d
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`UPDATE departments SET name = $2, description = $3 WHERE id = $1 RETURNING created_at`,
		d.ID, d.Name, d.Description).Scan(&out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "department", d.ID)
	}
	return &out, nil
}

// DeleteDepartment removes a department. Evaluation records cascade; other
// references are set to NULL.
func (r *Repo) DeleteDepartment(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "department", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("department %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Finance categories
// ---------------------------------------------------------------------------

// ListCategories returns every finance category ordered by name.
func (r *Repo) ListCategories(ctx context.Context) ([]domain.FinanceCategory, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, name, description FROM finance_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list finance categories: %w", err)
	}
	defer rows.Close()

	out := []domain.FinanceCategory{}
	for rows.Next() {
		var c domain.FinanceCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan finance category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetCategory returns one finance category.
func (r *Repo) GetCategory(ctx context.Context, id int64) (*domain.FinanceCategory, error) {
	var c domain.FinanceCategory
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, description FROM finance_categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		return nil, postgres.MapError(err, "finance category", id)
	}
	return &c, nil
}

// CreateCategory inserts a finance category.
func (r *Repo) CreateCategory(ctx context.Context, c *domain.FinanceCategory) (*domain.FinanceCategory, error) {
	out := *c
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO finance_categories (name, description) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Description).Scan(&out.ID)
	if err != nil {
		return nil, postgres.MapError(err, "finance category", 0)
	}
	return &out, nil
}

// UpdateCategory overwrites name and description.
func (r *Repo) UpdateCategory(ctx context.Context, c *domain.FinanceCategory) (*domain.FinanceCategory, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE finance_categories SET name = $2, description = $3 WHERE id = $1`, c.ID, c.Name, c.Description)
	if err != nil {
		return nil, postgres.MapError(err, "finance category", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("finance category %d: %w", c.ID, domain.ErrNotFound)
	}
	out := *c
	return &out, nil
}

// DeleteCategory removes a finance category.
func (r *Repo) DeleteCategory(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM finance_categories WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "finance category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("finance category %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
