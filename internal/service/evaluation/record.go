package evaluation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/notify"
)

// List returns records matching f, newest evaluation first.
func (s *Service) List(ctx context.Context, f domain.EvaluationFilter) ([]domain.EvaluationRecord, error) {
	recs, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list evaluation records: %w", err)
	}
	return recs, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.EvaluationRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a record with a recomputed total.
func (s *Service) Create(ctx context.Context, in RecordInput) (*domain.EvaluationRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var rec domain.EvaluationRecord
	in.apply(&rec)
	if err := s.fillPersonnelName(ctx, &rec); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &rec)
	if err != nil {
		return nil, fmt.Errorf("create evaluation record: %w", err)
	}

	s.log.InfoContext(ctx, "evaluation record created",
		slog.Int64("record_id", created.ID),
		slog.String("total", created.TotalScore.StringFixed(2)),
	)
	s.publish(ctx, notify.OpCreate, notify.EvaluationRecordFrom(created))
	return created, nil
}

// Update overwrites every writable field and recomputes the total.
func (s *Service) Update(ctx context.Context, id int64, in RecordInput) (*domain.EvaluationRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get evaluation record: %w", err)
	}
	in.apply(rec)
	if err := s.fillPersonnelName(ctx, rec); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("update evaluation record: %w", err)
	}

	s.log.InfoContext(ctx, "evaluation record updated", slog.Int64("record_id", id))
	s.publish(ctx, notify.OpUpdate, notify.EvaluationRecordFrom(updated))
	return updated, nil
}

// Delete removes a record and announces what it held.
func (s *Service) Delete(ctx context.Context, id int64) error {
	var payload notify.Payload
	if rec, err := s.repo.GetByID(ctx, id); err == nil {
		payload = notify.EvaluationRecordFrom(rec)
	} else {
		payload = notify.Unknown(notify.KindEvaluationRecord, id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete evaluation record: %w", err)
	}

	s.log.InfoContext(ctx, "evaluation record deleted", slog.Int64("record_id", id))
	s.publish(ctx, notify.OpDelete, payload)
	return nil
}

// fillPersonnelName copies the member's name when only an id was given.
func (s *Service) fillPersonnelName(ctx context.Context, rec *domain.EvaluationRecord) error {
	if rec.PersonnelName != "" || rec.PersonnelID == nil {
		return nil
	}
	p, err := s.personnel.GetByID(ctx, *rec.PersonnelID)
	if err != nil {
		return fmt.Errorf("get personnel: %w", err)
	}
	rec.PersonnelName = p.Name
	return nil
}
