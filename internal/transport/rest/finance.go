package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/service/finance"
)

type financeService interface {
	ListRecords(ctx context.Context, filter domain.FinancialRecordFilter) ([]domain.FinancialRecord, error)
	Summary(ctx context.Context, filter domain.FinancialRecordFilter) (domain.FinanceSummary, error)
	GetRecord(ctx context.Context, id int64) (*domain.FinancialRecord, error)
	CreateRecord(ctx context.Context, in finance.RecordInput) (*domain.FinancialRecord, error)
	UpdateRecord(ctx context.Context, id int64, in finance.RecordInput) (*domain.FinancialRecord, error)
	DeleteRecord(ctx context.Context, id int64) error
	ListProofImages(ctx context.Context, recordID *int64) ([]domain.ProofImage, error)
	GetProofImage(ctx context.Context, id int64) (*domain.ProofImage, error)
	UploadImages(ctx context.Context, recordID int64, files []domain.Upload, description string) ([]domain.ProofImage, error)
	DeleteProofImage(ctx context.Context, id int64) error
}

// FinanceHandler serves /api/finance/ and /api/proof-images/.
type FinanceHandler struct {
	svc       financeService
	log       *slog.Logger
	loc       *time.Location
	maxUpload int64
}

func NewFinanceHandler(svc financeService, log *slog.Logger, loc *time.Location, maxUpload int64) *FinanceHandler {
	return &FinanceHandler{svc: svc, log: log, loc: loc, maxUpload: maxUpload}
}

type proofImageResponse struct {
	ID          int64     `json:"id"`
	Record      int64     `json:"record"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func proofImageResponseOf(img *domain.ProofImage) proofImageResponse {
	return proofImageResponse{
		ID:          img.ID,
		Record:      img.RecordID,
		Image:       mediaURL(img.Image),
		Description: img.Description,
		UploadedAt:  img.UploadedAt,
	}
}

func proofImagesResponse(imgs []domain.ProofImage) []proofImageResponse {
	out := make([]proofImageResponse, 0, len(imgs))
	for i := range imgs {
		out = append(out, proofImageResponseOf(&imgs[i]))
	}
	return out
}

type recordResponse struct {
	ID              int64                `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Amount          string               `json:"amount"`
	RecordType      string               `json:"record_type"`
	TransactionDate Date                 `json:"transaction_date"`
	Department      *int64               `json:"department"`
	DepartmentName  string               `json:"department_name"`
	Category        *int64               `json:"category"`
	CategoryName    string               `json:"category_name"`
	FundManager     string               `json:"fund_manager"`
	CreatedBy       string               `json:"created_by"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	ProofImages     []proofImageResponse `json:"proof_images"`
}

func recordResponseOf(rec *domain.FinancialRecord) recordResponse {
	return recordResponse{
		ID:              rec.ID,
		Title:           rec.Title,
		Description:     rec.Description,
		Amount:          money(rec.Amount),
		RecordType:      string(rec.RecordType),
		TransactionDate: Date{Time: rec.TransactionDate},
		Department:      rec.DepartmentID,
		DepartmentName:  rec.DepartmentName,
		Category:        rec.CategoryID,
		CategoryName:    rec.CategoryName,
		FundManager:     rec.FundManager,
		CreatedBy:       rec.CreatedBy,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
		ProofImages:     proofImagesResponse(rec.ProofImages),
	}
}

type recordRequest struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	RecordType      string          `json:"record_type"`
	TransactionDate *Date           `json:"transaction_date"`
	Department      *int64          `json:"department"`
	Category        *int64          `json:"category"`
	FundManager     string          `json:"fund_manager"`
	CreatedBy       string          `json:"created_by"`
}

func recordRequestOf(rec *domain.FinancialRecord) recordRequest {
	return recordRequest{
		Title:           rec.Title,
		Description:     rec.Description,
		Amount:          rec.Amount,
		RecordType:      string(rec.RecordType),
		TransactionDate: &Date{Time: rec.TransactionDate},
		Department:      rec.DepartmentID,
		Category:        rec.CategoryID,
		FundManager:     rec.FundManager,
		CreatedBy:       rec.CreatedBy,
	}
}

func (req recordRequest) input() finance.RecordInput {
	return finance.RecordInput{
		Title:           req.Title,
		Description:     req.Description,
		Amount:          req.Amount,
		RecordType:      domain.RecordType(req.RecordType),
		TransactionDate: req.TransactionDate.value(),
		DepartmentID:    req.Department,
		CategoryID:      req.Category,
		FundManager:     req.FundManager,
		CreatedBy:       req.CreatedBy,
	}
}

func (h *FinanceHandler) filter(r *http.Request) (domain.FinancialRecordFilter, error) {
	q := newQuery(r, h.loc)
	f := domain.FinancialRecordFilter{
		DepartmentID: q.int64("department"),
		CategoryID:   q.int64("category"),
		DateFrom:     q.date("start_date", false),
		DateTo:       q.date("end_date", true),
		Search:       q.str("search"),
	}
	if s := q.str("record_type"); s != "" {
		rt := domain.RecordType(s)
		if !rt.IsValid() {
			q.fail("record_type", "收支类型应为 income 或 expense")
		}
		f.RecordType = &rt
	}
	return f, q.err()
}

func (h *FinanceHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := h.filter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	recs, err := h.svc.ListRecords(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]recordResponse, 0, len(recs))
	for i := range recs {
		out = append(out, recordResponseOf(&recs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

type summaryResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
	Count   int    `json:"count"`
}

func (h *FinanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	f, err := h.filter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	s, err := h.svc.Summary(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{
		Income:  money(s.Income),
		Expense: money(s.Expense),
		Balance: money(s.Balance),
		Count:   s.Count,
	})
}

func (h *FinanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := h.svc.GetRecord(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recordResponseOf(rec))
}

func (h *FinanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	rec, err := h.svc.CreateRecord(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, recordResponseOf(rec))
}

func (h *FinanceHandler) Update(w http.ResponseWriter, r *http.Request) { h.update(w, r, false) }

func (h *FinanceHandler) Patch(w http.ResponseWriter, r *http.Request) { h.update(w, r, true) }

func (h *FinanceHandler) update(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req recordRequest
	if partial {
		cur, err := h.svc.GetRecord(r.Context(), id)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		req = recordRequestOf(cur)
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	rec, err := h.svc.UpdateRecord(r.Context(), id, req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recordResponseOf(rec))
}

func (h *FinanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteRecord(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type uploadImagesResponse struct {
	Message string               `json:"message"`
	Images  []proofImageResponse `json:"images"`
}

func (h *FinanceHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	files, done, err := formFiles(w, r, "images", h.maxUpload)
	defer done()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	imgs, err := h.svc.UploadImages(r.Context(), id, files, r.FormValue("description"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadImagesResponse{
		Message: fmt.Sprintf("成功上传 %d 张图片", len(imgs)),
		Images:  proofImagesResponse(imgs),
	})
}

func (h *FinanceHandler) ListProofImages(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r, h.loc)
	record := q.int64("record")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	imgs, err := h.svc.ListProofImages(r.Context(), record)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, proofImagesResponse(imgs))
}

func (h *FinanceHandler) GetProofImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	img, err := h.svc.GetProofImage(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, proofImageResponseOf(img))
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *FinanceHandler) DeleteProofImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteProofImage(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "图片删除成功"})
}
