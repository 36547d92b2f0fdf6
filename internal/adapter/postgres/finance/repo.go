// Package finance implements persistence for financial records, their proof
// images, departments and finance categories.
package finance

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

// Repo provides finance persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new finance repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var recordColumns = []string{
	"r.id", "r.title", "r.description", "r.amount", "r.record_type", "r.transaction_date",
	"r.department_id", "COALESCE(d.name, '')", "r.category_id", "COALESCE(c.name, '')",
	"r.fund_manager", "r.created_by", "r.created_at", "r.updated_at",
}

func selectRecords() sq.SelectBuilder {
	return postgres.Psql.Select(recordColumns...).
		From("financial_records r").
		LeftJoin("departments d ON d.id = r.department_id").
		LeftJoin("finance_categories c ON c.id = r.category_id")
}

func applyFilter(b sq.SelectBuilder, f domain.FinancialRecordFilter) sq.SelectBuilder {
	if f.RecordType != nil {
		b = b.Where(sq.Eq{"r.record_type": string(*f.RecordType)})
	}
	if f.DepartmentID != nil {
		b = b.Where(sq.Eq{"r.department_id": *f.DepartmentID})
	}
	if f.CategoryID != nil {
		b = b.Where(sq.Eq{"r.category_id": *f.CategoryID})
	}
	if f.DateFrom != nil {
		b = b.Where(sq.GtOrEq{"r.transaction_date": *f.DateFrom})
	}
	if f.DateTo != nil {
		b = b.Where(sq.LtOrEq{"r.transaction_date": *f.DateTo})
	}
	if like := postgres.ILike(f.Search, "r.title", "r.description", "r.fund_manager"); like != nil {
		b = b.Where(like)
	}
	return b
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// GetRecord returns a record with its proof images.
func (r *Repo) GetRecord(ctx context.Context, id int64) (*domain.FinancialRecord, error) {
	query, args, err := selectRecords().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rec, err := scanRecord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "financial record", id)
	}

	images, err := r.ListProofImages(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.ProofImages = images
	return rec, nil
}

// ListRecords returns records matching the filter ordered by transaction date.
// Proof images are attached in one extra query.
func (r *Repo) ListRecords(ctx context.Context, filter domain.FinancialRecordFilter) ([]domain.FinancialRecord, error) {
	b := applyFilter(selectRecords(), filter).OrderBy("r.transaction_date DESC", "r.id DESC")
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list financial records: %w", err)
	}
	defer rows.Close()

	records := []domain.FinancialRecord{}
	ids := []int64{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan financial record: %w", err)
		}
		records = append(records, *rec)
		ids = append(ids, rec.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return records, nil
	}

	byRecord, err := r.proofImagesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].ProofImages = byRecord[records[i].ID]
	}
	return records, nil
}

// Summary aggregates amounts per record type over the filtered set.
func (r *Repo) Summary(ctx context.Context, filter domain.FinancialRecordFilter) (domain.FinanceSummary, error) {
	b := postgres.Psql.Select(
		"COALESCE(SUM(r.amount) FILTER (WHERE r.record_type = 'income'), 0)",
		"COALESCE(SUM(r.amount) FILTER (WHERE r.record_type = 'expense'), 0)",
		"COUNT(*)",
	).From("financial_records r")
	query, args, err := applyFilter(b, filter).ToSql()
	if err != nil {
		return domain.FinanceSummary{}, fmt.Errorf("build query: %w", err)
	}

	var s domain.FinanceSummary
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&s.Income, &s.Expense, &s.Count); err != nil {
		return domain.FinanceSummary{}, fmt.Errorf("finance summary: %w", err)
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s, nil
}

// CreateRecord inserts a record.
func (r *Repo) CreateRecord(ctx context.Context, rec *domain.FinancialRecord) (*domain.FinancialRecord, error) {
	query, args, err := postgres.Psql.Insert("financial_records").
		Columns("title", "description", "amount", "record_type", "transaction_date",
			"department_id", "category_id", "fund_manager", "created_by").
		Values(rec.Title, rec.Description, rec.Amount, string(rec.RecordType), rec.TransactionDate,
			rec.DepartmentID, rec.CategoryID, rec.FundManager, rec.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "financial record", 0)
	}
	return r.GetRecord(ctx, id)
}

// UpdateRecord overwrites every mutable column of the record.
func (r *Repo) UpdateRecord(ctx context.Context, rec *domain.FinancialRecord) (*domain.FinancialRecord, error) {
	query, args, err := postgres.Psql.Update("financial_records").
		SetMap(map[string]any{
			"title":            rec.Title,
			"description":      rec.Description,
			"amount":           rec.Amount,
			"record_type":      string(rec.RecordType),
			"transaction_date": rec.TransactionDate,
			"department_id":    rec.DepartmentID,
			"category_id":      rec.CategoryID,
			"fund_manager":     rec.FundManager,
			"created_by":       rec.CreatedBy,
			"updated_at":       sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "financial record", rec.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("financial record %d: %w", rec.ID, domain.ErrNotFound)
	}
	return r.GetRecord(ctx, rec.ID)
}

// DeleteRecord removes a record and returns the image paths its proof images
// referenced, so the caller can remove the files after the cascade.
func (r *Repo) DeleteRecord(ctx context.Context, id int64) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT image FROM proof_images WHERE record_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("collect proof images: %w", err)
	}
	paths, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect proof images: %w", err)
	}

	tag, err := q.Exec(ctx, `DELETE FROM financial_records WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "financial record", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("financial record %d: %w", id, domain.ErrNotFound)
	}
	return paths, nil
}

func scanRecord(row pgx.Row) (*domain.FinancialRecord, error) {
	var (
		rec    domain.FinancialRecord
		rtype  string
		amount decimal.Decimal
	)
	err := row.Scan(
		&rec.ID, &rec.Title, &rec.Description, &amount, &rtype, &rec.TransactionDate,
		&rec.DepartmentID, &rec.DepartmentName, &rec.CategoryID, &rec.CategoryName,
		&rec.FundManager, &rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Amount = amount
	rec.RecordType = domain.RecordType(rtype)
	rec.ProofImages = []domain.ProofImage{}
	return &rec, nil
}

// ---------------------------------------------------------------------------
// Proof images
// ---------------------------------------------------------------------------

// ListProofImages returns the images of one record, oldest first.
func (r *Repo) ListProofImages(ctx context.Context, recordID int64) ([]domain.ProofImage, error) {
	byRecord, err := r.proofImagesFor(ctx, []int64{recordID})
	if err != nil {
		return nil, err
	}
	if imgs, ok := byRecord[recordID]; ok {
		return imgs, nil
	}
	return []domain.ProofImage{}, nil
}

// GetProofImage returns one proof image.
func (r *Repo) GetProofImage(ctx context.Context, id int64) (*domain.ProofImage, error) {
	var p domain.ProofImage
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, record_id, image, description, uploaded_at FROM proof_images WHERE id = $1`, id).
		Scan(&p.ID, &p.RecordID, &p.Image, &p.Description, &p.UploadedAt)
	if err != nil {
		return nil, postgres.MapError(err, "proof image", id)
	}
	return &p, nil
}

// ListAllProofImages returns every proof image, newest first, optionally
// restricted to one record.
func (r *Repo) ListAllProofImages(ctx context.Context, recordID *int64) ([]domain.ProofImage, error) {
	b := postgres.Psql.Select("id", "record_id", "image", "description", "uploaded_at").
		From("proof_images").
		OrderBy("uploaded_at DESC", "id DESC")
	if recordID != nil {
		b = b.Where(sq.Eq{"record_id": *recordID})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list proof images: %w", err)
	}
	defer rows.Close()

	out := []domain.ProofImage{}
	for rows.Next() {
		var p domain.ProofImage
		if err := rows.Scan(&p.ID, &p.RecordID, &p.Image, &p.Description, &p.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan proof image: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CreateProofImage inserts an image row for a stored file.
func (r *Repo) CreateProofImage(ctx context.Context, p *domain.ProofImage) (*domain.ProofImage, error) {
	out := *p
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO proof_images (record_id, image, description) VALUES ($1, $2, $3)
		 RETURNING id, uploaded_at`,
		p.RecordID, p.Image, p.Description).Scan(&out.ID, &out.UploadedAt)
	if err != nil {
		return nil, postgres.MapError(err, "proof image for record", p.RecordID)
	}
	return &out, nil
}

// DeleteProofImage removes the row and returns it so the caller can remove the file.
func (r *Repo) DeleteProofImage(ctx context.Context, id int64) (*domain.ProofImage, error) {
	var p domain.ProofImage
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`DELETE FROM proof_images WHERE id = $1 RETURNING id, record_id, image, description, uploaded_at`, id).
		Scan(&p.ID, &p.RecordID, &p.Image, &p.Description, &p.UploadedAt)
	if err != nil {
		return nil, postgres.MapError(err, "proof image", id)
	}
	return &p, nil
}

func (r *Repo) proofImagesFor(ctx context.Context, recordIDs []int64) (map[int64][]domain.ProofImage, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, record_id, image, description, uploaded_at
		 FROM proof_images WHERE record_id = ANY($1) ORDER BY uploaded_at, id`, recordIDs)
	if err != nil {
		return nil, fmt.Errorf("list proof images: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]domain.ProofImage, len(recordIDs))
	for rows.Next() {
		var p domain.ProofImage
		if err := rows.Scan(&p.ID, &p.RecordID, &p.Image, &p.Description, &p.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan proof image: %w", err)
		}
		out[p.RecordID] = append(out[p.RecordID], p)
	}
	return out, rows.Err()
}
