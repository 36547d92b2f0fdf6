// Package evaluation implements persistence for evaluation (score) records.
package evaluation

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

// Repo provides evaluation record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new evaluation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"e.id", "e.department_id", "d.name", "e.personnel_id", "e.personnel_name", "e.grade",
	"e.item_description", "e.bonus_score", "e.deduction_score", "e.total_score", "e.remarks",
	"e.evaluation_date", "e.created_at", "e.updated_at",
}

func selectRecords() sq.SelectBuilder {
	return postgres.Psql.Select(columns...).
		From("evaluation_records e").
		Join("departments d ON d.id = e.department_id")
}

// GetByID returns one record.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.EvaluationRecord, error) {
	query, args, err := selectRecords().Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rec, err := scanRecord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "evaluation record", id)
	}
	return rec, nil
}

// List returns records matching the filter, latest evaluation first.
func (r *Repo) List(ctx context.Context, f domain.EvaluationFilter) ([]domain.EvaluationRecord, error) {
	b := selectRecords().OrderBy("e.evaluation_date DESC", "e.id DESC")
	if f.DepartmentID != nil {
		b = b.Where(sq.Eq{"e.department_id": *f.DepartmentID})
	}
	if like := postgres.ILike(f.PersonnelName, "e.personnel_name"); like != nil {
		b = b.Where(like)
	}
	if f.DateFrom != nil {
		b = b.Where(sq.GtOrEq{"e.evaluation_date": *f.DateFrom})
	}
	if f.DateTo != nil {
		b = b.Where(sq.LtOrEq{"e.evaluation_date": *f.DateTo})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list evaluation records: %w", err)
	}
	defer rows.Close()

	out := []domain.EvaluationRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evaluation record: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// Create inserts a record. TotalScore must already be recomputed.
func (r *Repo) Create(ctx context.Context, rec *domain.EvaluationRecord) (*domain.EvaluationRecord, error) {
	var id int64
	if err := r.insert(ctx, rec).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "evaluation record", 0)
	}
	return r.GetByID(ctx, id)
}

// Update overwrites every mutable column of the record.
func (r *Repo) Update(ctx context.Context, rec *domain.EvaluationRecord) (*domain.EvaluationRecord, error) {
	query, args, err := postgres.Psql.Update("evaluation_records").
		SetMap(map[string]any{
			"department_id":    rec.DepartmentID,
			"personnel_id":     rec.PersonnelID,
			"personnel_name":   rec.PersonnelName,
			"grade":            rec.Grade,
			"item_description": rec.ItemDescription,
			"bonus_score":      rec.BonusScore,
			"deduction_score":  rec.DeductionScore,
			"total_score":      rec.TotalScore,
			"remarks":          rec.Remarks,
			"evaluation_date":  rec.EvaluationDate,
			"updated_at":       sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "evaluation record", rec.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("evaluation record %d: %w", rec.ID, domain.ErrNotFound)
	}
	return r.GetByID(ctx, rec.ID)
}

// Delete removes a record.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM evaluation_records WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "evaluation record", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("evaluation record %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ReplaceAll deletes every record and inserts the batch. Callers run it inside
// a transaction so a failed insert leaves the previous set untouched.
func (r *Repo) ReplaceAll(ctx context.Context, records []domain.EvaluationRecord) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, `DELETE FROM evaluation_records`); err != nil {
		return 0, fmt.Errorf("clear evaluation records: %w", err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i := range records {
		query, args, err := insertBuilder(&records[i]).ToSql()
		if err != nil {
			return 0, fmt.Errorf("build query: %w", err)
		}
		batch.Queue(query, args...)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()
	for i := range records {
		if _, err := br.Exec(); err != nil {
			return 0, postgres.MapError(err, "evaluation record row", int64(i+1))
		}
	}
	return len(records), nil
}

func insertBuilder(rec *domain.EvaluationRecord) sq.InsertBuilder {
	return postgres.Psql.Insert("evaluation_records").
		Columns("department_id", "personnel_id", "personnel_name", "grade", "item_description",
			"bonus_score", "deduction_score", "total_score", "remarks", "evaluation_date").
		Values(rec.DepartmentID, rec.PersonnelID, rec.PersonnelName, rec.Grade, rec.ItemDescription,
			rec.BonusScore, rec.DeductionScore, rec.TotalScore, rec.Remarks, rec.EvaluationDate)
}

func (r *Repo) insert(ctx context.Context, rec *domain.EvaluationRecord) pgx.Row {
	query, args, err := insertBuilder(rec).Suffix("RETURNING id").ToSql()
	if err != nil {
		return errRow{err: fmt.Errorf("build query: %w", err)}
	}
	return postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
}

type errRow struct{ err error }

func (e errRow) Scan(...any) error { return e.err }

func scanRecord(row pgx.Row) (*domain.EvaluationRecord, error) {
	var rec domain.EvaluationRecord
	err := row.Scan(
		&rec.ID, &rec.DepartmentID, &rec.DepartmentName, &rec.PersonnelID, &rec.PersonnelName, &rec.Grade,
		&rec.ItemDescription, &rec.BonusScore, &rec.DeductionScore, &rec.TotalScore, &rec.Remarks,
		&rec.EvaluationDate, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
