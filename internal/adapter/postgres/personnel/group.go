package personnel

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

func selectGroups() sq.SelectBuilder {
	return postgres.Psql.Select("g.id", "g.name", "g.department_id", "COALESCE(d.name, '')", "g.description", "g.created_at").
		From("project_groups g").
		LeftJoin("departments d ON d.id = g.department_id")
}

// ListGroups returns project groups, optionally restricted to one department.
func (r *Repo) ListGroups(ctx context.Context, departmentID *int64) ([]domain.ProjectGroup, error) {
	b := selectGroups().OrderBy("g.name")
	if departmentID != nil {
		b = b.Where(sq.Eq{"g.department_id": *departmentID})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list project groups: %w", err)
	}
	defer rows.Close()

	out := []domain.ProjectGroup{}
	for rows.Next() {
		var g domain.ProjectGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.DepartmentID, &g.DepartmentName, &g.Description, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project group: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// GetGroup returns one project group.
func (r *Repo) GetGroup(ctx context.Context, id int64) (*domain.ProjectGroup, error) {
	query, args, err := selectGroups().Where(sq.Eq{"g.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var g domain.ProjectGroup
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&g.ID, &g.Name, &g.DepartmentID, &g.DepartmentName, &g.Description, &g.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "project group", id)
	}
	return &g, nil
}

// CreateGroup inserts a project group.
func (r *Repo) CreateGroup(ctx context.Context, g *domain.ProjectGroup) (*domain.ProjectGroup, error) {
	var id int64
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO project_groups (name, department_id, description) VALUES ($1, $2, $3) RETURNING id`,
		g.Name, g.DepartmentID, g.Description).Scan(&id)
	if err != nil {
		return nil, postgres.MapError(err, "project group", 0)
	}
	return r.GetGroup(ctx, id)
}

// UpdateGroup overwrites every mutable column.
func (r *Repo) UpdateGroup(ctx context.Context, g *domain.ProjectGroup) (*domain.ProjectGroup, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE project_groups SET name = $2, department_id = $3, description = $4 WHERE id = $1`,
		g.ID, g.Name, g.DepartmentID, g.Description)
	if err != nil {
		return nil, postgres.MapError(err, "project group", g.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("project group %d: %w", g.ID, domain.ErrNotFound)
	}
	return r.GetGroup(ctx, g.ID)
}

// DeleteGroup removes a project group; members keep a NULL group.
func (r *Repo) DeleteGroup(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM project_groups WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "project group", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project group %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
