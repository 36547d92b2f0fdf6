package finance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/pkg/ctxutil"
)

// ListRecords returns records matching filter, newest transaction first.
func (s *Service) ListRecords(ctx context.Context, filter domain.FinancialRecordFilter) ([]domain.FinancialRecord, error) {
	recs, err := s.repo.ListRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return recs, nil
}

// Summary totals the filtered records per type.
func (s *Service) Summary(ctx context.Context, filter domain.FinancialRecordFilter) (domain.FinanceSummary, error) {
	sum, err := s.repo.Summary(ctx, filter)
	if err != nil {
		return domain.FinanceSummary{}, fmt.Errorf("finance summary: %w", err)
	}
	return sum, nil
}

// GetRecord returns a record with its proof images.
func (s *Service) GetRecord(ctx context.Context, id int64) (*domain.FinancialRecord, error) {
	return s.repo.GetRecord(ctx, id)
}

// CreateRecord stores a new record. CreatedBy defaults to the caller.
func (s *Service) CreateRecord(ctx context.Context, in RecordInput) (*domain.FinancialRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var rec domain.FinancialRecord
	in.apply(&rec)
	rec.CreatedBy = in.CreatedBy
	if rec.CreatedBy == "" {
		if id, ok := ctxutil.IdentityFromCtx(ctx); ok {
			rec.CreatedBy = id.Username
		}
	}

	created, err := s.repo.CreateRecord(ctx, &rec)
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	s.log.InfoContext(ctx, "financial record created",
		slog.Int64("record_id", created.ID),
		slog.String("type", string(created.RecordType)),
		slog.String("amount", created.Amount.StringFixed(2)),
	)
	return created, nil
}

// UpdateRecord overwrites every writable field of a record. The author is
// never changed.
func (s *Service) UpdateRecord(ctx context.Context, id int64, in RecordInput) (*domain.FinancialRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rec, err := s.repo.GetRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	in.apply(rec)

	updated, err := s.repo.UpdateRecord(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("update record: %w", err)
	}
	s.log.InfoContext(ctx, "financial record updated", slog.Int64("record_id", id))
	return updated, nil
}

// DeleteRecord removes a record. Its proof image rows cascade; the files are
// removed afterwards and failures there are only logged.
func (s *Service) DeleteRecord(ctx context.Context, id int64) error {
	paths, err := s.repo.DeleteRecord(ctx, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	for _, p := range paths {
		s.removeFile(ctx, p)
	}
	s.log.InfoContext(ctx, "financial record deleted",
		slog.Int64("record_id", id),
		slog.Int("files", len(paths)),
	)
	return nil
}

func (s *Service) removeFile(ctx context.Context, rel string) {
	if err := s.files.Remove(rel); err != nil {
		s.log.WarnContext(ctx, "remove file",
			slog.String("path", rel),
			slog.String("error", err.Error()),
		)
	}
}
