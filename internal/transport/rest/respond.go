package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/studio-backend/internal/adapter/tabular"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

type validationBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type importFailureBody struct {
	Detail string   `json:"detail"`
	Errors []string `json:"errors"`
}

// errorStatus maps a service error to an HTTP status and a client message.
// The message is empty for internal errors.
func errorStatus(err error) (int, string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Errors[0].Message
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "请求数据无效"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "未找到"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusBadRequest, "记录已存在"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest, "数据冲突"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "身份认证信息无效"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "没有执行该操作的权限"
	default:
		return http.StatusInternalServerError, ""
	}
}

// handleError writes the response for a failed operation. Row failures of
// an import are listed; field failures are keyed by field.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ie *domain.ImportError
	if errors.As(err, &ie) {
		writeJSON(w, http.StatusBadRequest, importFailureBody{Detail: "导入失败", Errors: ie.Messages()})
		return
	}

	status, msg := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, status, "服务器内部错误")
		return
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body := validationBody{Error: msg, Fields: make(map[string]string, len(ve.Errors))}
		for _, fe := range ve.Errors {
			if _, dup := body.Fields[fe.Field]; !dup {
				body.Fields[fe.Field] = fe.Message
			}
		}
		writeJSON(w, status, body)
		return
	}
	writeError(w, status, msg)
}

// decodeJSON reads the request body into v. An empty body leaves v unchanged.
func decodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxJSONBody))
	if err != nil {
		return domain.NewValidationError("body", "无法读取请求数据")
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return domain.NewValidationError("body", "请求数据格式错误: "+jsonErrorText(err))
	}
	return nil
}

func jsonErrorText(err error) string {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		return fmt.Sprintf("字段 %s 类型错误", te.Field)
	}
	return err.Error()
}

// pathID parses the {id} wildcard. Non-numeric ids are reported as 404.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, "未找到")
		return 0, false
	}
	return id, true
}

// query reads optional filter parameters and records the first bad one.
type query struct {
	values     map[string][]string
	loc        *time.Location
	badField   string
	badMessage string
}

func newQuery(r *http.Request, loc *time.Location) *query {
	return &query{values: r.URL.Query(), loc: loc}
}

func (q *query) str(key string) string {
	if v, ok := q.values[key]; ok && len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func (q *query) fail(key, msg string) {
	if q.badField == "" {
		q.badField, q.badMessage = key, msg
	}
}

func (q *query) int64(key string) *int64 {
	raw := q.str(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		q.fail(key, "请输入一个有效的整数")
		return nil
	}
	return &v
}

func (q *query) bool(key string) *bool {
	raw := strings.ToLower(q.str(key))
	if raw == "" {
		return nil
	}
	var v bool
	switch raw {
	case "true", "1", "yes":
		v = true
	case "false", "0", "no":
		v = false
	default:
		q.fail(key, "请输入 true 或 false")
		return nil
	}
	return &v
}

// date accepts a calendar date; an end-of-range date covers the whole day.
func (q *query) date(key string, endOfDay bool) *time.Time {
	raw := q.str(key)
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation(time.DateOnly, raw, q.loc)
	if err != nil {
		q.fail(key, "日期格式应为 YYYY-MM-DD")
		return nil
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t
}

func (q *query) err() error {
	if q.badField == "" {
		return nil
	}
	return domain.NewValidationError(q.badField, q.badMessage)
}

// Date is a calendar date serialized as "2006-01-02". An empty string
// decodes as the zero date.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(time.DateOnly))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if len(s) > len(time.DateOnly) {
		s = s[:len(time.DateOnly)]
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("日期格式应为 YYYY-MM-DD: %q", s)
	}
	d.Time = t
	return nil
}

func dateOf(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: *t}
}

func (d *Date) ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func (d *Date) value() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

// money renders a decimal with two places, as a JSON string.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

// Timestamp is a request time. Values without a zone are read in the
// studio's timezone once the handler resolves them.
type Timestamp struct {
	time.Time
	raw string
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t.Time, t.raw = time.Time{}, strings.TrimSpace(s)
	return nil
}

func timestampOf(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	return &Timestamp{Time: *t}
}

// resolve returns the time in loc. A nil or empty timestamp is zero.
func (t *Timestamp) resolve(loc *time.Location) (time.Time, error) {
	if t == nil {
		return time.Time{}, nil
	}
	if t.raw == "" {
		return t.Time, nil
	}
	return tabular.ParseTime(t.raw, loc)
}

func resolvePtr(t *Timestamp, loc *time.Location, field string, errs *[]domain.FieldError) *time.Time {
	v, err := t.resolve(loc)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: field, Message: err.Error()})
		return nil
	}
	if v.IsZero() {
		return nil
	}
	return &v
}

const mediaPrefix = "/media/"

// mediaURL turns a stored relative path into the URL served under /media/.
func mediaURL(path string) string {
	if path == "" {
		return ""
	}
	return mediaPrefix + strings.TrimPrefix(path, "/")
}
