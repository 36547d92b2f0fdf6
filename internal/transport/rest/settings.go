package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/service/notification"
)

type settingsService interface {
	GetSettings(ctx context.Context) (notification.Overview, error)
	UpdateSettings(ctx context.Context, input notification.UpdateInput) (notification.Overview, error)
	ToggleRecipient(ctx context.Context, id int64, enabled bool) ([]domain.NotificationRecipient, error)
}

// SettingsHandler serves the notification settings API. Every response is
// wrapped in {success, ...}.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

func NewSettingsHandler(svc settingsService, log *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: log}
}

type recipientResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	IsEnabled   bool      `json:"is_enabled"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func recipientsResponse(rs []domain.NotificationRecipient) []recipientResponse {
	out := make([]recipientResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, recipientResponse{
			ID:          r.ID,
			Email:       r.Email,
			IsEnabled:   r.IsEnabled,
			Description: r.Description,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return out
}

type settingsData struct {
	EmailEnabled       bool                `json:"email_enabled"`
	NotificationEmails []string            `json:"notification_emails"`
	AllEmails          []recipientResponse `json:"all_emails"`
}

type settingsUpdateData struct {
	EmailEnabled bool                `json:"email_enabled"`
	AllEmails    []recipientResponse `json:"all_emails"`
}

type settingsEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *SettingsHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "notification settings",
			slog.String("method", r.Method),
			slog.String("error", err.Error()),
		)
		msg = "服务器内部错误"
	}
	writeJSON(w, status, settingsEnvelope{Success: false, Error: msg})
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.GetSettings(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	emails := ov.Emails
	if emails == nil {
		emails = []string{}
	}
	writeJSON(w, http.StatusOK, settingsEnvelope{Success: true, Data: settingsData{
		EmailEnabled:       ov.Enabled,
		NotificationEmails: emails,
		AllEmails:          recipientsResponse(ov.All),
	}})
}

// recipientEntry accepts either a bare address or an object.
type recipientEntry notification.RecipientEntry

func (e *recipientEntry) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*e = recipientEntry{Email: s}
		return nil
	}
	var obj struct {
		Email       string `json:"email"`
		IsEnabled   *bool  `json:"is_enabled"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		// Unusable entries are dropped like invalid addresses.
		*e = recipientEntry{}
		return nil
	}
	*e = recipientEntry{Email: obj.Email, IsEnabled: obj.IsEnabled, Description: obj.Description}
	return nil
}

type settingsRequest struct {
	NotificationEmails *[]recipientEntry `json:"notification_emails"`
	EmailEnabled       *bool             `json:"email_enabled"`
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	in := notification.UpdateInput{Enabled: req.EmailEnabled}
	if req.NotificationEmails != nil {
		entries := make([]notification.RecipientEntry, 0, len(*req.NotificationEmails))
		for _, e := range *req.NotificationEmails {
			entries = append(entries, notification.RecipientEntry(e))
		}
		in.Emails = &entries
	}
	ov, err := h.svc.UpdateSettings(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settingsEnvelope{
		Success: true,
		Message: "通知设置已更新",
		Data: settingsUpdateData{
			EmailEnabled: ov.Enabled,
			AllEmails:    recipientsResponse(ov.All),
		},
	})
}

type toggleRequest struct {
	EmailID   any   `json:"email_id"`
	IsEnabled *bool `json:"is_enabled"`
}

func (h *SettingsHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	id, _ := strconv.ParseInt(strings.TrimSpace(idText(req.EmailID)), 10, 64)
	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}
	all, err := h.svc.ToggleRecipient(r.Context(), id, enabled)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	state := "禁用"
	if enabled {
		state = "启用"
	}
	writeJSON(w, http.StatusOK, settingsEnvelope{
		Success: true,
		Message: "邮箱状态已更新为" + state,
		Data:    map[string]any{"all_emails": recipientsResponse(all)},
	})
}
