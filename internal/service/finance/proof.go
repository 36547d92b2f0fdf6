package finance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studio-backend/internal/adapter/storage"
	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/notify"
)

// ListProofImages returns proof images, optionally of one record only.
func (s *Service) ListProofImages(ctx context.Context, recordID *int64) ([]domain.ProofImage, error) {
	return s.repo.ListAllProofImages(ctx, recordID)
}

func (s *Service) GetProofImage(ctx context.Context, id int64) (*domain.ProofImage, error) {
	return s.repo.GetProofImage(ctx, id)
}

// UploadImages stores every file as a proof image of the record and
// announces them in one event. Files land in the record's proof directory,
// named after the transaction date. The batch is all or nothing: when one
// file fails, the files and rows already stored are removed again.
func (s *Service) UploadImages(ctx context.Context, recordID int64, files []domain.Upload, description string) ([]domain.ProofImage, error) {
	if len(files) == 0 {
		return nil, domain.NewValidationError("images", "没有接收到图片文件")
	}
	rec, err := s.repo.GetRecord(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}

	dir := storage.ProofDir(rec.ID, rec.TransactionDate)
	description = strings.TrimSpace(description)

	images := make([]domain.ProofImage, 0, len(files))
	for _, f := range files {
		path, err := s.files.Save(dir, f.Name, f.Body)
		if err != nil {
			s.discardImages(ctx, images)
			return nil, fmt.Errorf("save proof image: %w", err)
		}
		img, err := s.repo.CreateProofImage(ctx, &domain.ProofImage{
			RecordID:    rec.ID,
			Image:       path,
			Description: description,
		})
		if err != nil {
			s.removeFile(ctx, path)
			s.discardImages(ctx, images)
			return nil, fmt.Errorf("create proof image: %w", err)
		}
		images = append(images, *img)
	}

	s.log.InfoContext(ctx, "proof images uploaded",
		slog.Int64("record_id", rec.ID),
		slog.Int("count", len(images)),
	)
	s.events.Publish(notify.NewEvent(ctx, notify.OpCreate, notify.ProofImagesFrom(rec, images)))
	return images, nil
}

// discardImages undoes a partially stored batch. Failures are logged.
func (s *Service) discardImages(ctx context.Context, images []domain.ProofImage) {
	for _, img := range images {
		if _, err := s.repo.DeleteProofImage(ctx, img.ID); err != nil {
			s.log.ErrorContext(ctx, "discard proof image",
				slog.Int64("image_id", img.ID),
				slog.String("error", err.Error()),
			)
		}
		s.removeFile(ctx, img.Image)
	}
}

// DeleteProofImage deletes the row, then the file, and announces the removal.
func (s *Service) DeleteProofImage(ctx context.Context, id int64) error {
	img, err := s.repo.DeleteProofImage(ctx, id)
	if err != nil {
		return fmt.Errorf("delete proof image: %w", err)
	}
	s.removeFile(ctx, img.Image)

	rec, err := s.repo.GetRecord(ctx, img.RecordID)
	if err != nil {
		rec = &domain.FinancialRecord{ID: img.RecordID}
	}

	s.log.InfoContext(ctx, "proof image deleted",
		slog.Int64("image_id", id),
		slog.Int64("record_id", img.RecordID),
	)
	s.events.Publish(notify.NewEvent(ctx, notify.OpDelete, notify.ProofImagesFrom(rec, []domain.ProofImage{*img})))
	return nil
}
