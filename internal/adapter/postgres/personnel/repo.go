// Package personnel implements persistence for the studio roster and its
// project groups.
package personnel

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

// Repo provides personnel persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new personnel repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var personnelColumns = []string{
	"p.id", "p.name", "p.student_id", "p.gender", "p.grade_major",
	"p.department_id", "COALESCE(d.name, '')", "p.project_group_id", "COALESCE(g.name, '')",
	"p.position", "p.start_date", "p.end_date", "p.is_active", "p.phone", "p.qq", "p.email",
	"p.description", "p.created_at", "p.updated_at",
}

func selectPersonnel() sq.SelectBuilder {
	return postgres.Psql.Select(personnelColumns...).
		From("personnel p").
		LeftJoin("departments d ON d.id = p.department_id").
		LeftJoin("project_groups g ON g.id = p.project_group_id")
}

// GetByID returns one member.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Personnel, error) {
	query, args, err := selectPersonnel().Where(sq.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	p, err := scanPersonnel(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "personnel", id)
	}
	return p, nil
}

// GetByName returns the first member with exactly this name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Personnel, error) {
	query, args, err := selectPersonnel().Where(sq.Eq{"p.name": name}).OrderBy("p.id").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	p, err := scanPersonnel(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "personnel named "+name, 0)
	}
	return p, nil
}

// List returns members matching the filter, newest start date first.
func (r *Repo) List(ctx context.Context, f domain.PersonnelFilter) ([]domain.Personnel, error) {
	b := selectPersonnel().OrderBy("p.start_date DESC", "p.id DESC")
	if f.DepartmentID != nil {
		b = b.Where(sq.Eq{"p.department_id": *f.DepartmentID})
	}
	if f.ProjectGroupID != nil {
		b = b.Where(sq.Eq{"p.project_group_id": *f.ProjectGroupID})
	}
	if like := postgres.ILike(f.Position, "p.position"); like != nil {
		b = b.Where(like)
	}
	if f.Gender != nil {
		b = b.Where(sq.Eq{"p.gender": string(*f.Gender)})
	}
	if f.IsActive != nil {
		b = b.Where(sq.Eq{"p.is_active": *f.IsActive})
	}
	if f.StartFrom != nil {
		b = b.Where(sq.GtOrEq{"p.start_date": *f.StartFrom})
	}
	if f.StartTo != nil {
		b = b.Where(sq.LtOrEq{"p.start_date": *f.StartTo})
	}
	if f.EndFrom != nil {
		b = b.Where(sq.GtOrEq{"p.end_date": *f.EndFrom})
	}
	if f.EndTo != nil {
		b = b.Where(sq.LtOrEq{"p.end_date": *f.EndTo})
	}
	if like := postgres.ILike(f.Search, "p.name", "p.student_id", "p.phone", "p.email", "p.grade_major"); like != nil {
		b = b.Where(like)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list personnel: %w", err)
	}
	defer rows.Close()

	out := []domain.Personnel{}
	for rows.Next() {
		p, err := scanPersonnel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan personnel: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Create inserts a member.
func (r *Repo) Create(ctx context.Context, p *domain.Personnel) (*domain.Personnel, error) {
	query, args, err := postgres.Psql.Insert("personnel").
		Columns("name", "student_id", "gender", "grade_major", "department_id", "project_group_id",
			"position", "start_date", "end_date", "is_active", "phone", "qq", "email", "description").
		Values(p.Name, p.StudentID, string(p.Gender), p.GradeMajor, p.DepartmentID, p.ProjectGroupID,
			p.Position, p.StartDate, p.EndDate, p.IsActive, p.Phone, p.QQ, p.Email, p.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "personnel", 0)
	}
	return r.GetByID(ctx, id)
}

// Update overwrites every mutable column of the member.
func (r *Repo) Update(ctx context.Context, p *domain.Personnel) (*domain.Personnel, error) {
	query, args, err := postgres.Psql.Update("personnel").
		SetMap(map[string]any{
			"name":             p.Name,
			"student_id":       p.StudentID,
			"gender":           string(p.Gender),
			"grade_major":      p.GradeMajor,
			"department_id":    p.DepartmentID,
			"project_group_id": p.ProjectGroupID,
			"position":         p.Position,
			"start_date":       p.StartDate,
			"end_date":         p.EndDate,
			"is_active":        p.IsActive,
			"phone":            p.Phone,
			"qq":               p.QQ,
			"email":            p.Email,
			"description":      p.Description,
			"updated_at":       sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "personnel", p.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("personnel %d: %w", p.ID, domain.ErrNotFound)
	}
	return r.GetByID(ctx, p.ID)
}

// Delete removes a member.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM personnel WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "personnel", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("personnel %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListExpired returns active members whose end date is on or before today.
func (r *Repo) ListExpired(ctx context.Context, today time.Time) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT name FROM personnel
		 WHERE is_active AND end_date IS NOT NULL AND end_date <= $1
		 ORDER BY id`, today)
	if err != nil {
		return nil, fmt.Errorf("list expired personnel: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list expired personnel: %w", err)
	}
	return names, nil
}

// DeactivateExpired flips every expired active member in one statement and
// returns their names. Running it twice is a no-op the second time.
func (r *Repo) DeactivateExpired(ctx context.Context, today time.Time) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`UPDATE personnel SET is_active = false, updated_at = now()
		 WHERE is_active AND end_date IS NOT NULL AND end_date <= $1
		 RETURNING name`, today)
	if err != nil {
		return nil, fmt.Errorf("deactivate expired personnel: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("deactivate expired personnel: %w", err)
	}
	return names, nil
}

// Statistics returns roster totals grouped by department and position.
func (r *Repo) Statistics(ctx context.Context) (domain.PersonnelStatistics, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	var s domain.PersonnelStatistics

	err := q.QueryRow(ctx,
		`SELECT count(*), count(*) FILTER (WHERE is_active) FROM personnel`).
		Scan(&s.Total, &s.Active)
	if err != nil {
		return s, fmt.Errorf("personnel totals: %w", err)
	}
	s.Inactive = s.Total - s.Active

	s.ByDepartment, err = groupCounts(ctx, q,
		`SELECT COALESCE(d.name, ''), count(*), count(*) FILTER (WHERE p.is_active)
		 FROM personnel p LEFT JOIN departments d ON d.id = p.department_id
		 GROUP BY d.name ORDER BY count(*) DESC, d.name`)
	if err != nil {
		return s, fmt.Errorf("personnel by department: %w", err)
	}

	s.ByPosition, err = groupCounts(ctx, q,
		`SELECT position, count(*), count(*) FILTER (WHERE is_active)
		 FROM personnel GROUP BY position ORDER BY count(*) DESC, position`)
	if err != nil {
		return s, fmt.Errorf("personnel by position: %w", err)
	}
	return s, nil
}

func groupCounts(ctx context.Context, q postgres.Querier, sql string) ([]domain.GroupCount, error) {
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.GroupCount{}
	for rows.Next() {
		var g domain.GroupCount
		if err := rows.Scan(&g.Name, &g.Total, &g.Active); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func scanPersonnel(row pgx.Row) (*domain.Personnel, error) {
	var (
		p      domain.Personnel
		gender string
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.StudentID, &gender, &p.GradeMajor,
		&p.DepartmentID, &p.DepartmentName, &p.ProjectGroupID, &p.ProjectGroupName,
		&p.Position, &p.StartDate, &p.EndDate, &p.IsActive, &p.Phone, &p.QQ, &p.Email,
		&p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Gender = domain.Gender(gender)
	return &p, nil
}
