package rest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/studio-backend/internal/adapter/tabular"
	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/service/item"
)

type itemService interface {
	List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	ListByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.Item, error)
	Get(ctx context.Context, id int64) (*domain.Item, error)
	Find(ctx context.Context, id int64) (*domain.Item, error)
	Create(ctx context.Context, in item.ItemInput) (*domain.Item, error)
	Update(ctx context.Context, id int64, in item.ItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
	Borrow(ctx context.Context, itemID int64, in item.BorrowInput) (*domain.ItemUsage, error)
	Return(ctx context.Context, itemID int64, in item.ReturnInput) (*domain.ItemUsage, error)
	Export(ctx context.Context, filter domain.ItemFilter) (tabular.Table, error)
	Import(ctx context.Context, r io.Reader, filename string) (item.ImportResult, error)
}

// ItemHandler serves /api/items/.
type ItemHandler struct {
	svc       itemService
	log       *slog.Logger
	loc       *time.Location
	maxUpload int64
	now       func() time.Time
}

func NewItemHandler(svc itemService, log *slog.Logger, loc *time.Location, maxUpload int64) *ItemHandler {
	return &ItemHandler{svc: svc, log: log, loc: loc, maxUpload: maxUpload, now: time.Now}
}

type currentUserResponse struct {
	Username string `json:"username"`
	Contact  string `json:"contact"`
}

type itemResponse struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	SerialNumber string               `json:"serial_number"`
	Category     *int64               `json:"category"`
	CategoryName string               `json:"category_name"`
	Status       string               `json:"status"`
	Location     string               `json:"location"`
	Owner        string               `json:"owner"`
	PurchaseDate *Date                `json:"purchase_date"`
	Value        *string              `json:"value"`
	CurrentUser  *currentUserResponse `json:"current_user"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	UsageHistory []usageResponse      `json:"usage_history,omitempty"`
}

func itemResponseOf(it *domain.Item) itemResponse {
	resp := itemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		SerialNumber: it.SerialNumber,
		Category:     it.CategoryID,
		CategoryName: it.CategoryName,
		Status:       string(it.Status),
		Location:     it.Location,
		Owner:        it.Owner,
		PurchaseDate: dateOf(it.PurchaseDate),
		Value:        moneyPtr(it.Value),
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
	if u := it.CurrentUsage; u != nil {
		resp.CurrentUser = &currentUserResponse{Username: u.User, Contact: u.BorrowerContact}
	}
	for i := range it.RecentUsages {
		resp.UsageHistory = append(resp.UsageHistory, usageResponseOf(&it.RecentUsages[i]))
	}
	return resp
}

func itemsResponse(items []domain.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for i := range items {
		out = append(out, itemResponseOf(&items[i]))
	}
	return out
}

type itemRequest struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	SerialNumber string           `json:"serial_number"`
	Category     *int64           `json:"category"`
	Status       string           `json:"status"`
	Location     string           `json:"location"`
	Owner        string           `json:"owner"`
	PurchaseDate *Date            `json:"purchase_date"`
	Value        *decimal.Decimal `json:"value"`
}

func itemRequestOf(it *domain.Item) itemRequest {
	return itemRequest{
		Name:         it.Name,
		Description:  it.Description,
		SerialNumber: it.SerialNumber,
		Category:     it.CategoryID,
		Status:       string(it.Status),
		Location:     it.Location,
		Owner:        it.Owner,
		PurchaseDate: dateOf(it.PurchaseDate),
		Value:        it.Value,
	}
}

func (req itemRequest) input() item.ItemInput {
	return item.ItemInput{
		Name:         req.Name,
		Description:  req.Description,
		SerialNumber: req.SerialNumber,
		CategoryID:   req.Category,
		Status:       domain.ItemStatus(req.Status),
		Location:     req.Location,
		Owner:        req.Owner,
		PurchaseDate: req.PurchaseDate.ptr(),
		Value:        req.Value,
	}
}

func (h *ItemHandler) filter(r *http.Request) (domain.ItemFilter, error) {
	q := newQuery(r, h.loc)
	f := domain.ItemFilter{
		CategoryID: q.int64("category"),
		Search:     q.str("search"),
	}
	if s := q.str("status"); s != "" {
		st := domain.ItemStatus(s)
		if !st.IsValid() {
			q.fail("status", "无效的状态")
		}
		f.Status = &st
	}
	return f, q.err()
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := h.filter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	items, err := h.svc.List(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itemsResponse(items))
}

func (h *ItemHandler) Available(w http.ResponseWriter, r *http.Request) {
	h.byStatus(w, r, domain.ItemStatusAvailable)
}

func (h *ItemHandler) InUse(w http.ResponseWriter, r *http.Request) {
	h.byStatus(w, r, domain.ItemStatusInUse)
}

func (h *ItemHandler) byStatus(w http.ResponseWriter, r *http.Request, status domain.ItemStatus) {
	items, err := h.svc.ListByStatus(r.Context(), status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itemsResponse(items))
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	it, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itemResponseOf(it))
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	it, err := h.svc.Create(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, itemResponseOf(it))
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) { h.update(w, r, false) }

func (h *ItemHandler) Patch(w http.ResponseWriter, r *http.Request) { h.update(w, r, true) }

func (h *ItemHandler) update(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req itemRequest
	if partial {
		cur, err := h.svc.Find(r.Context(), id)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		req = itemRequestOf(cur)
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	it, err := h.svc.Update(r.Context(), id, req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itemResponseOf(it))
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

type borrowRequest struct {
	UserName           string     `json:"user_name"`
	UserContact        string     `json:"user_contact"`
	Purpose            string     `json:"purpose"`
	Notes              string     `json:"notes"`
	ConditionBefore    string     `json:"condition_before"`
	ExpectedReturnTime *Timestamp `json:"expected_return_time"`
}

func (h *ItemHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req borrowRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var errs []domain.FieldError
	in := item.BorrowInput{
		UserName:           req.UserName,
		UserContact:        req.UserContact,
		Purpose:            req.Purpose,
		Notes:              req.Notes,
		ConditionBefore:    req.ConditionBefore,
		ExpectedReturnTime: resolvePtr(req.ExpectedReturnTime, h.loc, "expected_return_time", &errs),
	}
	if len(errs) > 0 {
		handleError(h.log, w, r, &domain.ValidationError{Errors: errs})
		return
	}
	u, err := h.svc.Borrow(r.Context(), id, in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, usageResponseOf(u))
}

type returnRequest struct {
	ConditionAfter string  `json:"condition_after"`
	ReturnNotes    *string `json:"return_notes"`
}

func (h *ItemHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req returnRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	u, err := h.svc.Return(r.Context(), id, item.ReturnInput{
		ConditionAfter: req.ConditionAfter,
		ReturnNotes:    req.ReturnNotes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, usageResponseOf(u))
}

func (h *ItemHandler) Export(w http.ResponseWriter, r *http.Request) {
	f, err := h.filter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	q := newQuery(r, h.loc)
	format := parseFormat(q)
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	t, err := h.svc.Export(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	name := tabular.Filename("items", format, h.now().In(h.loc))
	if err := writeTable(w, t, format, name); err != nil {
		h.log.ErrorContext(r.Context(), "write export", slog.String("error", err.Error()))
	}
}

type importResponse struct {
	Detail   string `json:"detail"`
	Count    int    `json:"count"`
	Filename string `json:"filename,omitempty"`
}

func (h *ItemHandler) Import(w http.ResponseWriter, r *http.Request) {
	file, done, err := formFile(w, r, "file", h.maxUpload, "请选择要导入的文件")
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
	writeJSON(w, http.StatusOK, importResponse{
		Detail:   fmt.Sprintf("成功导入 %d 个物品", res.Count),
		Count:    res.Count,
		Filename: file.Name,
	})
}
