package item

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// ItemInput holds every writable field of an item.
type ItemInput struct {
	Name         string
	Description  string
	SerialNumber string
	CategoryID   *int64
	Status       domain.ItemStatus
	Location     string
	Owner        string
	PurchaseDate *time.Time
	Value        *decimal.Decimal
}

// Validate checks all fields and collects all errors. An empty status means
// available.
func (i ItemInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case utf8.RuneCountInString(name) > 100:
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	serial := strings.TrimSpace(i.SerialNumber)
	switch {
	case serial == "":
		errs = append(errs, domain.FieldError{Field: "serial_number", Message: "required"})
	case utf8.RuneCountInString(serial) > 50:
		errs = append(errs, domain.FieldError{Field: "serial_number", Message: "max 50 characters"})
	}

	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Value != nil && i.Value.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "value", Message: "must be non-negative"})
	}
	if utf8.RuneCountInString(i.Location) > 100 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "max 100 characters"})
	}
	if utf8.RuneCountInString(i.Owner) > 100 {
		errs = append(errs, domain.FieldError{Field: "owner", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ItemInput) apply(it *domain.Item) {
	it.Name = strings.TrimSpace(i.Name)
	it.Description = strings.TrimSpace(i.Description)
	it.SerialNumber = strings.TrimSpace(i.SerialNumber)
	it.CategoryID = i.CategoryID
	it.Status = i.Status
	if it.Status == "" {
		it.Status = domain.ItemStatusAvailable
	}
	it.Location = strings.TrimSpace(i.Location)
	it.Owner = strings.TrimSpace(i.Owner)
	it.PurchaseDate = i.PurchaseDate
	it.Value = i.Value
}

// CategoryInput holds the writable fields of an item category.
type CategoryInput struct {
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CategoryInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if utf8.RuneCountInString(name) > 50 {
		return domain.NewValidationError("name", "max 50 characters")
	}
	return nil
}

// UsageInput holds every writable field of a usage record.
type UsageInput struct {
	ItemID             int64
	User               string
	BorrowerContact    string
	StartTime          *time.Time
	ExpectedReturnTime *time.Time
	EndTime            *time.Time
	Purpose            string
	Notes              string
	IsReturned         bool
	ConditionBefore    string
	ConditionAfter     string
}

// Validate checks all fields and collects all errors.
func (i UsageInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID <= 0 {
		errs = append(errs, domain.FieldError{Field: "item", Message: "required"})
	}
	user := strings.TrimSpace(i.User)
	switch {
	case user == "":
		errs = append(errs, domain.FieldError{Field: "user", Message: "required"})
	case utf8.RuneCountInString(user) > 100:
		errs = append(errs, domain.FieldError{Field: "user", Message: "max 100 characters"})
	}
	if i.StartTime != nil && i.EndTime != nil && i.EndTime.Before(*i.StartTime) {
		errs = append(errs, domain.FieldError{Field: "end_time", Message: "must not be before start_time"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UsageInput) apply(u *domain.ItemUsage, now time.Time) {
	u.ItemID = i.ItemID
	u.User = strings.TrimSpace(i.User)
	u.BorrowerContact = contactOrDefault(i.BorrowerContact)
	if i.StartTime != nil {
		u.StartTime = *i.StartTime
	} else if u.StartTime.IsZero() {
		u.StartTime = now
	}
	u.ExpectedReturnTime = i.ExpectedReturnTime
	u.EndTime = i.EndTime
	u.Purpose = strings.TrimSpace(i.Purpose)
	u.Notes = strings.TrimSpace(i.Notes)
	u.IsReturned = i.IsReturned
	u.ConditionBefore = strings.TrimSpace(i.ConditionBefore)
	u.ConditionAfter = strings.TrimSpace(i.ConditionAfter)
}

// BorrowInput describes a new loan.
type BorrowInput struct {
	UserName           string
	UserContact        string
	Purpose            string
	Notes              string
	ConditionBefore    string
	ExpectedReturnTime *time.Time
}

// Validate checks all fields and collects all errors.
func (i BorrowInput) Validate() error {
	if strings.TrimSpace(i.UserName) == "" {
		return domain.NewValidationError("user_name", "请输入使用者姓名")
	}
	return nil
}

// ReturnInput describes the return of a loan. ReturnNotes, when set,
// replaces the notes of the usage.
type ReturnInput struct {
	ConditionAfter string
	ReturnNotes    *string
}

func contactOrDefault(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.DefaultBorrowerContact
	}
	return s
}
