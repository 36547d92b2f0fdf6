package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/service/memo"
)

type memoService interface {
	List(ctx context.Context, f domain.MemoFilter) ([]domain.Memo, error)
	Get(ctx context.Context, id int64) (*domain.Memo, error)
	Create(ctx context.Context, in memo.Input) (*domain.Memo, error)
	Update(ctx context.Context, id int64, in memo.Input) (*domain.Memo, error)
	Delete(ctx context.Context, id int64) error
	AddImage(ctx context.Context, memoID int64, file *domain.Upload) (*domain.MemoImage, error)
	DeleteImage(ctx context.Context, memoID, imageID int64) error
}

// MemoHandler serves /api/memos/.
type MemoHandler struct {
	svc       memoService
	log       *slog.Logger
	loc       *time.Location
	maxUpload int64
}

func NewMemoHandler(svc memoService, log *slog.Logger, loc *time.Location, maxUpload int64) *MemoHandler {
	return &MemoHandler{svc: svc, log: log, loc: loc, maxUpload: maxUpload}
}

type memoImageResponse struct {
	ID         int64     `json:"id"`
	Memo       int64     `json:"memo"`
	Image      string    `json:"image"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func memoImageResponseOf(img *domain.MemoImage) memoImageResponse {
	return memoImageResponse{ID: img.ID, Memo: img.MemoID, Image: mediaURL(img.Image), UploadedAt: img.UploadedAt}
}

type memoResponse struct {
	ID             int64               `json:"id"`
	Title          string              `json:"title"`
	Content        string              `json:"content,omitempty"`
	ContentPreview string              `json:"content_preview"`
	CreatedBy      string              `json:"created_by"`
	IsActive       bool                `json:"is_active"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Images         []memoImageResponse `json:"images"`
}

// memoResponseOf renders a memo. Listings leave out the full content.
func memoResponseOf(m *domain.Memo, full bool) memoResponse {
	resp := memoResponse{
		ID:             m.ID,
		Title:          m.Title,
		ContentPreview: m.Preview(),
		CreatedBy:      m.CreatedBy,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		Images:         make([]memoImageResponse, 0, len(m.Images)),
	}
	if full {
		resp.Content = m.Content
	}
	for i := range m.Images {
		resp.Images = append(resp.Images, memoImageResponseOf(&m.Images[i]))
	}
	return resp
}

type memoRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedBy string `json:"created_by"`
	IsActive  *bool  `json:"is_active"`
}

func (req memoRequest) input() memo.Input {
	return memo.Input{Title: req.Title, Content: req.Content, CreatedBy: req.CreatedBy, IsActive: req.IsActive}
}

// List shows active memos unless is_active says otherwise.
func (h *MemoHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r, h.loc)
	f := domain.MemoFilter{IsActive: q.bool("is_active"), Search: q.str("search")}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if f.IsActive == nil {
		active := true
		f.IsActive = &active
	}
	ms, err := h.svc.List(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]memoResponse, 0, len(ms))
	for i := range ms {
		out = append(out, memoResponseOf(&ms[i], false))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *MemoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, memoResponseOf(m, true))
}

func (h *MemoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req memoRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	m, err := h.svc.Create(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, memoResponseOf(m, true))
}

func (h *MemoHandler) Update(w http.ResponseWriter, r *http.Request) { h.update(w, r, false) }

func (h *MemoHandler) Patch(w http.ResponseWriter, r *http.Request) { h.update(w, r, true) }

func (h *MemoHandler) update(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req memoRequest
	if partial {
		cur, err := h.svc.Get(r.Context(), id)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		active := cur.IsActive
		req = memoRequest{Title: cur.Title, Content: cur.Content, CreatedBy: cur.CreatedBy, IsActive: &active}
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	m, err := h.svc.Update(r.Context(), id, req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, memoResponseOf(m, true))
}

func (h *MemoHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *MemoHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	file, done, err := formFile(w, r, "image", h.maxUpload, "请选择图片文件")
	defer done()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	img, err := h.svc.AddImage(r.Context(), id, file)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, memoImageResponseOf(img))
}

// DeleteImage reads image_id from the query string or the JSON body.
func (h *MemoHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body struct {
		ImageID any `json:"image_id"`
	}
	raw := r.URL.Query().Get("image_id")
	if raw == "" {
		if err := decodeJSON(r, &body); err != nil {
			handleError(h.log, w, r, err)
			return
		}
		raw = idText(body.ImageID)
	}
	imageID, _ := strconv.ParseInt(raw, 10, 64)
	if err := h.svc.DeleteImage(r.Context(), id, imageID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "图片删除成功"})
}

// idText accepts ids sent as JSON numbers or strings.
func idText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatInt(int64(x), 10)
	}
	return ""
}
