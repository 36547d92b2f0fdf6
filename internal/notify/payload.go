package notify

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Payload is the typed field set of one event. Each resource kind has its own
// variant; Render dispatches on the concrete type.
type Payload interface {
	Kind() Kind
}

// Time decodes RFC 3339 timestamps and bare dates. Values that do not parse
// decode as zero so one odd field never loses the whole payload.
type Time struct {
	time.Time
	DateOnly bool
}

func (t *Time) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		return nil
	}
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		t.Time, t.DateOnly = d, true
		return nil
	}
	if v, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = v
	}
	return nil
}

// At wraps a timestamp.
func At(v time.Time) Time { return Time{Time: v} }

// On wraps a calendar date.
func On(v time.Time) Time { return Time{Time: v, DateOnly: true} }

// AtPtr wraps an optional timestamp.
func AtPtr(v *time.Time) Time {
	if v == nil {
		return Time{}
	}
	return At(*v)
}

// OnPtr wraps an optional calendar date.
func OnPtr(v *time.Time) Time {
	if v == nil {
		return Time{}
	}
	return On(*v)
}

type ItemPayload struct {
	ID           *int64              `json:"id"`
	Name         string              `json:"name"`
	SerialNumber string              `json:"serial_number"`
	Status       string              `json:"status"`
	CategoryName string              `json:"category_name"`
	Location     string              `json:"location"`
	Owner        string              `json:"owner"`
	Value        decimal.NullDecimal `json:"value"`
	Description  string              `json:"description"`
	CurrentUser  *struct {
		Username string `json:"username"`
	} `json:"current_user"`
}

func (*ItemPayload) Kind() Kind { return KindItem }

func (p *ItemPayload) currentUser() string {
	if p.CurrentUser == nil {
		return ""
	}
	return p.CurrentUser.Username
}

type ItemCategoryPayload struct {
	ID          *int64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (*ItemCategoryPayload) Kind() Kind { return KindItemCategory }

type ItemUsagePayload struct {
	ID                 *int64 `json:"id"`
	ItemName           string `json:"item_name"`
	User               string `json:"user"`
	BorrowerContact    string `json:"borrower_contact"`
	StartTime          Time   `json:"start_time"`
	ExpectedReturnTime Time   `json:"expected_return_time"`
	EndTime            Time   `json:"end_time"`
	IsReturned         *bool  `json:"is_returned"`
	Purpose            string `json:"purpose"`
	ConditionAfter     string `json:"condition_after"`
}

func (*ItemUsagePayload) Kind() Kind { return KindItemUsage }

type FinancialRecordPayload struct {
	ID              *int64              `json:"id"`
	Title           string              `json:"title"`
	Amount          decimal.NullDecimal `json:"amount"`
	RecordType      string              `json:"record_type"`
	TransactionDate Time                `json:"transaction_date"`
	DepartmentName  string              `json:"department_name"`
	CategoryName    string              `json:"category_name"`
	FundManager     string              `json:"fund_manager"`
	Description     string              `json:"description"`
}

func (*FinancialRecordPayload) Kind() Kind { return KindFinancialRecord }

type FinanceCategoryPayload struct {
	ID          *int64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (*FinanceCategoryPayload) Kind() Kind { return KindFinanceCategory }

type DepartmentPayload struct {
	ID          *int64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (*DepartmentPayload) Kind() Kind { return KindDepartment }

// ProofImagePayload describes one or more receipts of a financial record.
type ProofImagePayload struct {
	ID          *int64   `json:"id"`
	RecordID    *int64   `json:"record"`
	RecordTitle string   `json:"record_title"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
}

func (*ProofImagePayload) Kind() Kind { return KindProofImage }

type PersonnelPayload struct {
	ID               *int64          `json:"id"`
	Name             string          `json:"name"`
	StudentID        string          `json:"student_id"`
	Gender           string          `json:"gender"`
	GradeMajor       string          `json:"grade_major"`
	DepartmentName   string          `json:"department_name"`
	Department       json.RawMessage `json:"department"`
	ProjectGroupName string          `json:"project_group_name"`
	Position         string          `json:"position"`
	StartDate        Time            `json:"start_date"`
	EndDate          Time            `json:"end_date"`
	IsActive         *bool           `json:"is_active"`
	Phone            string          `json:"phone"`
	Email            string          `json:"email"`
}

func (*PersonnelPayload) Kind() Kind { return KindPersonnel }

// department prefers department_name and falls back to department, which may
// be a name or an id.
func (p *PersonnelPayload) department() string {
	if p.DepartmentName != "" {
		return p.DepartmentName
	}
	raw := bytes.TrimSpace(p.Department)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

type ProjectGroupPayload struct {
	ID             *int64 `json:"id"`
	Name           string `json:"name"`
	DepartmentName string `json:"department_name"`
	Description    string `json:"description"`
}

func (*ProjectGroupPayload) Kind() Kind { return KindProjectGroup }

type EvaluationRecordPayload struct {
	ID              *int64              `json:"id"`
	PersonnelName   string              `json:"personnel_name"`
	DepartmentName  string              `json:"department_name"`
	ItemDescription string              `json:"item_description"`
	BonusScore      decimal.NullDecimal `json:"bonus_score"`
	DeductionScore  decimal.NullDecimal `json:"deduction_score"`
	TotalScore      decimal.NullDecimal `json:"total_score"`
	EvaluationDate  Time                `json:"evaluation_date"`
	Remarks         string              `json:"remarks"`
}

func (*EvaluationRecordPayload) Kind() Kind { return KindEvaluationRecord }

type MemoPayload struct {
	ID             *int64 `json:"id"`
	Title          string `json:"title"`
	CreatedBy      string `json:"created_by"`
	IsActive       *bool  `json:"is_active"`
	ContentPreview string `json:"content_preview"`
}

func (*MemoPayload) Kind() Kind { return KindMemo }

// BatchPayload describes a bulk operation such as an import, an export or the
// expired-personnel sweep.
type BatchPayload struct {
	Of       Kind     `json:"-"`
	Action   string   `json:"-"`
	Count    *int     `json:"count"`
	Filename string   `json:"filename"`
	Names    []string `json:"updated_personnel"`
}

func (p *BatchPayload) Kind() Kind { return p.Of }

// UnknownPayload stands in for a deleted object whose snapshot could not be
// taken. Every field of the kind renders as unknown.
type UnknownPayload struct {
	Of Kind
	ID int64
}

func (p *UnknownPayload) Kind() Kind { return p.Of }

// Unknown builds the placeholder payload for kind.
func Unknown(kind Kind, id int64) Payload {
	return &UnknownPayload{Of: kind, ID: id}
}

// Batch actions decode into BatchPayload regardless of kind.
const (
	ActionImport       = "import"
	ActionExport       = "export"
	ActionCheckExpired = "check_expired"
)

func isBatchAction(action string) bool {
	switch action {
	case ActionImport, ActionExport, ActionCheckExpired:
		return true
	}
	return false
}

// newPayload returns the empty variant for kind, or nil for an unknown kind.
func newPayload(kind Kind) Payload {
	switch kind {
	case KindItem:
		return &ItemPayload{}
	case KindItemCategory:
		return &ItemCategoryPayload{}
	case KindItemUsage:
		return &ItemUsagePayload{}
	case KindFinancialRecord:
		return &FinancialRecordPayload{}
	case KindFinanceCategory:
		return &FinanceCategoryPayload{}
	case KindDepartment:
		return &DepartmentPayload{}
	case KindProofImage:
		return &ProofImagePayload{}
	case KindPersonnel:
		return &PersonnelPayload{}
	case KindProjectGroup:
		return &ProjectGroupPayload{}
	case KindEvaluationRecord:
		return &EvaluationRecordPayload{}
	case KindMemo:
		return &MemoPayload{}
	}
	return nil
}

// Decode reads a response body into the payload variant of kind. Bodies
// wrapped as {"message": ..., "data": {...}} are unwrapped first. A body that
// does not decode yields the empty variant, so the event still carries its
// header.
func Decode(kind Kind, action string, body []byte) Payload {
	data := unwrap(body)

	if isBatchAction(action) {
		b := &BatchPayload{Of: kind, Action: action}
		if err := json.Unmarshal(data, b); err != nil {
			return &BatchPayload{Of: kind, Action: action}
		}
		return b
	}

	p := newPayload(kind)
	if p == nil {
		return &UnknownPayload{Of: kind}
	}
	if len(data) == 0 {
		return p
	}
	if err := json.Unmarshal(data, p); err != nil {
		return newPayload(kind)
	}
	return p
}

func unwrap(body []byte) []byte {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return body
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return body
	}
	data, ok := env["data"]
	if !ok {
		return body
	}
	if _, hasMessage := env["message"]; !hasMessage {
		if _, hasSuccess := env["success"]; !hasSuccess {
			return body
		}
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return body
	}
	return data
}
