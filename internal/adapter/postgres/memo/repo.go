// Package memo implements persistence for memos and their images.
package memo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

// Repo provides memo persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new memo repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectMemos() sq.SelectBuilder {
	return postgres.Psql.Select("id", "title", "content", "created_by", "is_active", "created_at", "updated_at").
		From("memos")
}

// GetByID returns a memo with its images.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Memo, error) {
	query, args, err := selectMemos().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	m, err := scanMemo(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "memo", id)
	}

	images, err := r.imagesFor(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	m.Images = append(m.Images, images[id]...)
	return m, nil
}

// List returns memos matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.MemoFilter) ([]domain.Memo, error) {
	b := selectMemos().OrderBy("created_at DESC", "id DESC")
	if f.IsActive != nil {
		b = b.Where(sq.Eq{"is_active": *f.IsActive})
	}
	if like := postgres.ILike(f.Search, "title", "content"); like != nil {
		b = b.Where(like)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list memos: %w", err)
	}
	defer rows.Close()

	memos := []domain.Memo{}
	ids := []int64{}
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan memo: %w", err)
		}
		memos = append(memos, *m)
		ids = append(ids, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return memos, nil
	}

	images, err := r.imagesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range memos {
		memos[i].Images = append(memos[i].Images, images[memos[i].ID]...)
	}
	return memos, nil
}

// Create inserts a memo.
func (r *Repo) Create(ctx context.Context, m *domain.Memo) (*domain.Memo, error) {
	var id int64
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO memos (title, content, created_by, is_active) VALUES ($1, $2, $3, $4) RETURNING id`,
		m.Title, m.Content, m.CreatedBy, m.IsActive).Scan(&id)
	if err != nil {
		return nil, postgres.MapError(err, "memo", 0)
	}
	return r.GetByID(ctx, id)
}

// Update overwrites every mutable column.
func (r *Repo) Update(ctx context.Context, m *domain.Memo) (*domain.Memo, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE memos SET title = $2, content = $3, created_by = $4, is_active = $5, updated_at = now()
		 WHERE id = $1`,
		m.ID, m.Title, m.Content, m.CreatedBy, m.IsActive)
	if err != nil {
		return nil, postgres.MapError(err, "memo", m.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("memo %d: %w", m.ID, domain.ErrNotFound)
	}
	return r.GetByID(ctx, m.ID)
}

// Delete removes a memo and returns the paths of its images.
func (r *Repo) Delete(ctx context.Context, id int64) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, `SELECT image FROM memo_images WHERE memo_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("collect memo images: %w", err)
	}
	paths, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect memo images: %w", err)
	}

	tag, err := q.Exec(ctx, `DELETE FROM memos WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "memo", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("memo %d: %w", id, domain.ErrNotFound)
	}
	return paths, nil
}

// AddImage attaches a stored file to a memo.
func (r *Repo) AddImage(ctx context.Context, memoID int64, path string) (*domain.MemoImage, error) {
	img := domain.MemoImage{MemoID: memoID, Image: path}
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO memo_images (memo_id, image) VALUES ($1, $2) RETURNING id, uploaded_at`,
		memoID, path).Scan(&img.ID, &img.UploadedAt)
	if err != nil {
		return nil, postgres.MapError(err, "image for memo", memoID)
	}
	return &img, nil
}

// DeleteImage removes an image of the given memo and returns it.
func (r *Repo) DeleteImage(ctx context.Context, memoID, imageID int64) (*domain.MemoImage, error) {
	var img domain.MemoImage
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`DELETE FROM memo_images WHERE id = $1 AND memo_id = $2 RETURNING id, memo_id, image, uploaded_at`,
		imageID, memoID).Scan(&img.ID, &img.MemoID, &img.Image, &img.UploadedAt)
	if err != nil {
		return nil, postgres.MapError(err, "memo image", imageID)
	}
	return &img, nil
}

func (r *Repo) imagesFor(ctx context.Context, memoIDs []int64) (map[int64][]domain.MemoImage, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, memo_id, image, uploaded_at FROM memo_images
		 WHERE memo_id = ANY($1) ORDER BY uploaded_at, id`, memoIDs)
	if err != nil {
		return nil, fmt.Errorf("list memo images: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]domain.MemoImage, len(memoIDs))
	for rows.Next() {
		var img domain.MemoImage
		if err := rows.Scan(&img.ID, &img.MemoID, &img.Image, &img.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan memo image: %w", err)
		}
		out[img.MemoID] = append(out[img.MemoID], img)
	}
	return out, rows.Err()
}

func scanMemo(row pgx.Row) (*domain.Memo, error) {
	m := domain.Memo{Images: []domain.MemoImage{}}
	if err := row.Scan(&m.ID, &m.Title, &m.Content, &m.CreatedBy, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
