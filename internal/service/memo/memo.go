package memo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studio-backend/internal/adapter/storage"
	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/pkg/ctxutil"
)

// List returns memos matching f, newest first.
func (s *Service) List(ctx context.Context, f domain.MemoFilter) ([]domain.Memo, error) {
	memos, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list memos: %w", err)
	}
	return memos, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Memo, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a memo. An empty author defaults to the caller.
func (s *Service) Create(ctx context.Context, in Input) (*domain.Memo, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var m domain.Memo
	in.apply(&m)
	if m.CreatedBy == "" {
		if id, ok := ctxutil.IdentityFromCtx(ctx); ok {
			m.CreatedBy = id.Username
		}
	}

	created, err := s.repo.Create(ctx, &m)
	if err != nil {
		return nil, fmt.Errorf("create memo: %w", err)
	}
	s.log.InfoContext(ctx, "memo created", slog.Int64("memo_id", created.ID))
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*domain.Memo, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get memo: %w", err)
	}
	in.apply(m)

	updated, err := s.repo.Update(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("update memo: %w", err)
	}
	s.log.InfoContext(ctx, "memo updated", slog.Int64("memo_id", id))
	return updated, nil
}

// Delete removes the memo and then its image files.
func (s *Service) Delete(ctx context.Context, id int64) error {
	paths, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete memo: %w", err)
	}
	for _, p := range paths {
		s.removeFile(ctx, p)
	}
	s.log.InfoContext(ctx, "memo deleted",
		slog.Int64("memo_id", id),
		slog.Int("images", len(paths)),
	)
	return nil
}

// AddImage stores a file under the memo's directory and attaches it.
func (s *Service) AddImage(ctx context.Context, memoID int64, file *domain.Upload) (*domain.MemoImage, error) {
	if file == nil || file.Body == nil {
		return nil, domain.NewValidationError("image", "没有接收到图片文件")
	}
	if _, err := s.repo.GetByID(ctx, memoID); err != nil {
		return nil, fmt.Errorf("get memo: %w", err)
	}

	path, err := s.files.Save(storage.MemoDir(memoID), file.Name, file.Body)
	if err != nil {
		return nil, fmt.Errorf("save memo image: %w", err)
	}
	img, err := s.repo.AddImage(ctx, memoID, path)
	if err != nil {
		s.removeFile(ctx, path)
		return nil, fmt.Errorf("add memo image: %w", err)
	}

	s.log.InfoContext(ctx, "memo image added",
		slog.Int64("memo_id", memoID),
		slog.String("path", path),
	)
	return img, nil
}

// DeleteImage detaches an image of the memo and removes its file.
func (s *Service) DeleteImage(ctx context.Context, memoID, imageID int64) error {
	if imageID <= 0 {
		return domain.NewValidationError("image_id", "请提供图片ID")
	}
	img, err := s.repo.DeleteImage(ctx, memoID, imageID)
	if err != nil {
		return fmt.Errorf("delete memo image: %w", err)
	}
	s.removeFile(ctx, img.Image)

	s.log.InfoContext(ctx, "memo image deleted",
		slog.Int64("memo_id", memoID),
		slog.Int64("image_id", imageID),
	)
	return nil
}
