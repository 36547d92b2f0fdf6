package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/studio-backend/internal/adapter/tabular"
	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/service/evaluation"
)

type evaluationService interface {
	List(ctx context.Context, f domain.EvaluationFilter) ([]domain.EvaluationRecord, error)
	Get(ctx context.Context, id int64) (*domain.EvaluationRecord, error)
	Create(ctx context.Context, in evaluation.RecordInput) (*domain.EvaluationRecord, error)
	Update(ctx context.Context, id int64, in evaluation.RecordInput) (*domain.EvaluationRecord, error)
	Delete(ctx context.Context, id int64) error
	Export(ctx context.Context, f domain.EvaluationFilter, format tabular.Format) (evaluation.Export, error)
	Import(ctx context.Context, r io.Reader, filename string) (evaluation.ImportResult, error)
}

// EvaluationHandler serves /api/evaluation-records/.
type EvaluationHandler struct {
	svc       evaluationService
	log       *slog.Logger
	loc       *time.Location
	maxUpload int64
}

func NewEvaluationHandler(svc evaluationService, log *slog.Logger, loc *time.Location, maxUpload int64) *EvaluationHandler {
	return &EvaluationHandler{svc: svc, log: log, loc: loc, maxUpload: maxUpload}
}

type evaluationResponse struct {
	ID              int64     `json:"id"`
	Department      int64     `json:"department"`
	DepartmentName  string    `json:"department_name"`
	Personnel       *int64    `json:"personnel"`
	PersonnelName   string    `json:"personnel_name"`
	Grade           string    `json:"grade"`
	ItemDescription string    `json:"item_description"`
	BonusScore      string    `json:"bonus_score"`
	DeductionScore  string    `json:"deduction_score"`
	TotalScore      string    `json:"total_score"`
	Remarks         string    `json:"remarks"`
	EvaluationDate  time.Time `json:"evaluation_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func evaluationResponseOf(rec *domain.EvaluationRecord) evaluationResponse {
	return evaluationResponse{
		ID:              rec.ID,
		Department:      rec.DepartmentID,
		DepartmentName:  rec.DepartmentName,
		Personnel:       rec.PersonnelID,
		PersonnelName:   rec.PersonnelName,
		Grade:           rec.Grade,
		ItemDescription: rec.ItemDescription,
		BonusScore:      money(rec.BonusScore),
		DeductionScore:  money(rec.DeductionScore),
		TotalScore:      money(rec.TotalScore),
		Remarks:         rec.Remarks,
		EvaluationDate:  rec.EvaluationDate,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

type evaluationRequest struct {
	Department      int64           `json:"department"`
	Personnel       *int64          `json:"personnel"`
	PersonnelName   string          `json:"personnel_name"`
	Grade           string          `json:"grade"`
	ItemDescription string          `json:"item_description"`
	BonusScore      decimal.Decimal `json:"bonus_score"`
	DeductionScore  decimal.Decimal `json:"deduction_score"`
	Remarks         string          `json:"remarks"`
	EvaluationDate  *Timestamp      `json:"evaluation_date"`
}

func evaluationRequestOf(rec *domain.EvaluationRecord) evaluationRequest {
	return evaluationRequest{
		Department:      rec.DepartmentID,
		Personnel:       rec.PersonnelID,
		PersonnelName:   rec.PersonnelName,
		Grade:           rec.Grade,
		ItemDescription: rec.ItemDescription,
		BonusScore:      rec.BonusScore,
		DeductionScore:  rec.DeductionScore,
		Remarks:         rec.Remarks,
		EvaluationDate:  timestampOf(&rec.EvaluationDate),
	}
}

func (req evaluationRequest) input(loc *time.Location) (evaluation.RecordInput, error) {
	var errs []domain.FieldError
	in := evaluation.RecordInput{
		DepartmentID:    req.Department,
		PersonnelID:     req.Personnel,
		PersonnelName:   req.PersonnelName,
		Grade:           req.Grade,
		ItemDescription: req.ItemDescription,
		BonusScore:      req.BonusScore,
		DeductionScore:  req.DeductionScore,
		Remarks:         req.Remarks,
	}
	if at := resolvePtr(req.EvaluationDate, loc, "evaluation_date", &errs); at != nil {
		in.EvaluationDate = *at
	}
	if len(errs) > 0 {
		return in, &domain.ValidationError{Errors: errs}
	}
	return in, nil
}

func (h *EvaluationHandler) filter(q *query) domain.EvaluationFilter {
	name := q.str("personnel_name")
	if name == "" {
		name = q.str("personnel")
	}
	return domain.EvaluationFilter{
		DepartmentID:  q.int64("department"),
		PersonnelName: name,
		DateFrom:      q.date("start_date", false),
		DateTo:        q.date("end_date", true),
	}
}

func (h *EvaluationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r, h.loc)
	f := h.filter(q)
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	recs, err := h.svc.List(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]evaluationResponse, 0, len(recs))
	for i := range recs {
		out = append(out, evaluationResponseOf(&recs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *EvaluationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluationResponseOf(rec))
}

func (h *EvaluationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req evaluationRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	in, err := req.input(h.loc)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	rec, err := h.svc.Create(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, evaluationResponseOf(rec))
}

func (h *EvaluationHandler) Update(w http.ResponseWriter, r *http.Request) { h.update(w, r, false) }

func (h *EvaluationHandler) Patch(w http.ResponseWriter, r *http.Request) { h.update(w, r, true) }

func (h *EvaluationHandler) update(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req evaluationRequest
	if partial {
		cur, err := h.svc.Get(r.Context(), id)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		req = evaluationRequestOf(cur)
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	in, err := req.input(h.loc)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	rec, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluationResponseOf(rec))
}

func (h *EvaluationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EvaluationHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r, h.loc)
	f := h.filter(q)
	format := parseFormat(q)
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	exp, err := h.svc.Export(r.Context(), f, format)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := writeTable(w, exp.Table, exp.Format, exp.Filename); err != nil {
		h.log.ErrorContext(r.Context(), "write export", slog.String("error", err.Error()))
	}
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func (h *EvaluationHandler) Import(w http.ResponseWriter, r *http.Request) {
	file, done, err := formFile(w, r, "file", h.maxUpload, "请上传文件")
	defer done()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	res, err := h.svc.Import(r.Context(), file.Body, file.Name)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detailResponse{Detail: res.Message()})
}
