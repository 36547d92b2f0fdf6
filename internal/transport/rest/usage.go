package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/service/item"
)

type usageService interface {
	ListUsages(ctx context.Context, filter domain.ItemUsageFilter) ([]domain.ItemUsage, error)
	CurrentUsages(ctx context.Context) ([]domain.ItemUsage, error)
	UsagesByUser(ctx context.Context, user string) ([]domain.ItemUsage, error)
	GetUsage(ctx context.Context, id int64) (*domain.ItemUsage, error)
	CreateUsage(ctx context.Context, in item.UsageInput) (*domain.ItemUsage, error)
	UpdateUsage(ctx context.Context, id int64, in item.UsageInput) (*domain.ItemUsage, error)
	DeleteUsage(ctx context.Context, id int64) error
}

// UsageHandler serves /api/usages/.
type UsageHandler struct {
	svc usageService
	log *slog.Logger
	loc *time.Location
}

func NewUsageHandler(svc usageService, log *slog.Logger, loc *time.Location) *UsageHandler {
	return &UsageHandler{svc: svc, log: log, loc: loc}
}

type usageResponse struct {
	ID                 int64      `json:"id"`
	Item               int64      `json:"item"`
	ItemName           string     `json:"item_name"`
	User               string     `json:"user"`
	BorrowerContact    string     `json:"borrower_contact"`
	StartTime          time.Time  `json:"start_time"`
	ExpectedReturnTime *time.Time `json:"expected_return_time"`
	EndTime            *time.Time `json:"end_time"`
	IsReturned         bool       `json:"is_returned"`
	Purpose            string     `json:"purpose"`
	Notes              string     `json:"notes"`
	ConditionBefore    string     `json:"condition_before"`
	ConditionAfter     string     `json:"condition_after"`
	CreatedAt          time.Time  `json:"created_at"`
}

func usageResponseOf(u *domain.ItemUsage) usageResponse {
	return usageResponse{
		ID:                 u.ID,
		Item:               u.ItemID,
		ItemName:           u.ItemName,
		User:               u.User,
		BorrowerContact:    u.BorrowerContact,
		StartTime:          u.StartTime,
		ExpectedReturnTime: u.ExpectedReturnTime,
		EndTime:            u.EndTime,
		IsReturned:         u.IsReturned,
		Purpose:            u.Purpose,
		Notes:              u.Notes,
		ConditionBefore:    u.ConditionBefore,
		ConditionAfter:     u.ConditionAfter,
		CreatedAt:          u.CreatedAt,
	}
}

func usagesResponse(us []domain.ItemUsage) []usageResponse {
	out := make([]usageResponse, 0, len(us))
	for i := range us {
		out = append(out, usageResponseOf(&us[i]))
	}
	return out
}

type usageRequest struct {
	Item               int64      `json:"item"`
	User               string     `json:"user"`
	BorrowerContact    string     `json:"borrower_contact"`
	StartTime          *Timestamp `json:"start_time"`
	ExpectedReturnTime *Timestamp `json:"expected_return_time"`
	EndTime            *Timestamp `json:"end_time"`
	Purpose            string     `json:"purpose"`
	Notes              string     `json:"notes"`
	IsReturned         bool       `json:"is_returned"`
	ConditionBefore    string     `json:"condition_before"`
	ConditionAfter     string     `json:"condition_after"`
}

func usageRequestOf(in item.UsageInput) usageRequest {
	return usageRequest{
		Item:               in.ItemID,
		User:               in.User,
		BorrowerContact:    in.BorrowerContact,
		StartTime:          timestampOf(in.StartTime),
		ExpectedReturnTime: timestampOf(in.ExpectedReturnTime),
		EndTime:            timestampOf(in.EndTime),
		Purpose:            in.Purpose,
		Notes:              in.Notes,
		IsReturned:         in.IsReturned,
		ConditionBefore:    in.ConditionBefore,
		ConditionAfter:     in.ConditionAfter,
	}
}

func (req usageRequest) input(loc *time.Location) (item.UsageInput, error) {
	var errs []domain.FieldError
	in := item.UsageInput{
		ItemID:             req.Item,
		User:               req.User,
		BorrowerContact:    req.BorrowerContact,
		StartTime:          resolvePtr(req.StartTime, loc, "start_time", &errs),
		ExpectedReturnTime: resolvePtr(req.ExpectedReturnTime, loc, "expected_return_time", &errs),
		EndTime:            resolvePtr(req.EndTime, loc, "end_time", &errs),
		Purpose:            req.Purpose,
		Notes:              req.Notes,
		IsReturned:         req.IsReturned,
		ConditionBefore:    req.ConditionBefore,
		ConditionAfter:     req.ConditionAfter,
	}
	if len(errs) > 0 {
		return in, &domain.ValidationError{Errors: errs}
	}
	return in, nil
}

func (h *UsageHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r, h.loc)
	f := domain.ItemUsageFilter{
		ItemID:     q.int64("item"),
		User:       q.str("user"),
		IsReturned: q.bool("is_returned"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	us, err := h.svc.ListUsages(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, usagesResponse(us))
}

func (h *UsageHandler) Current(w http.ResponseWriter, r *http.Request) {
	us, err := h.svc.CurrentUsages(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, usagesResponse(us))
}

func (h *UsageHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r, h.loc)
	name := q.str("user_name")
	if name == "" {
		name = q.str("user")
	}
	us, err := h.svc.UsagesByUser(r.Context(), name)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, usagesResponse(us))
}

func (h *UsageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	u, err := h.svc.GetUsage(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, usageResponseOf(u))
}

func (h *UsageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req usageRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	in, err := req.input(h.loc)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	u, err := h.svc.CreateUsage(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, usageResponseOf(u))
}

func (h *UsageHandler) Update(w http.ResponseWriter, r *http.Request) { h.update(w, r, false) }

func (h *UsageHandler) Patch(w http.ResponseWriter, r *http.Request) { h.update(w, r, true) }

func (h *UsageHandler) update(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req usageRequest
	if partial {
		cur, err := h.svc.GetUsage(r.Context(), id)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		req = usageRequestOf(item.UsageInputOf(cur))
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
	u, err := h.svc.UpdateUsage(r.Context(), id, in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, usageResponseOf(u))
}

func (h *UsageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteUsage(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
