// Package memo manages shared studio notes and their images.
package memo

import (
	"context"
	"io"
	"log/slog"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

type memoRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Memo, error)
	List(ctx context.Context, f domain.MemoFilter) ([]domain.Memo, error)
	Create(ctx context.Context, m *domain.Memo) (*domain.Memo, error)
	Update(ctx context.Context, m *domain.Memo) (*domain.Memo, error)
	Delete(ctx context.Context, id int64) ([]string, error)
	AddImage(ctx context.Context, memoID int64, path string) (*domain.MemoImage, error)
	DeleteImage(ctx context.Context, memoID, imageID int64) (*domain.MemoImage, error)
}

type fileStore interface {
	Save(dir, name string, r io.Reader) (string, error)
	Remove(rel string) error
}

// Service provides memo operations.
type Service struct {
	repo  memoRepo
	files fileStore
	log   *slog.Logger
}

func NewService(log *slog.Logger, repo memoRepo, files fileStore) *Service {
	return &Service{
		repo:  repo,
		files: files,
		log:   log.With("service", "memo"),
	}
}

func (s *Service) removeFile(ctx context.Context, path string) {
	if err := s.files.Remove(path); err != nil {
		s.log.WarnContext(ctx, "remove memo image file",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}
}
