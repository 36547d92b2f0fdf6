package finance

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// maxAmount is the largest value NUMERIC(12,2) holds.
var maxAmount = decimal.RequireFromString("9999999999.99")

// RecordInput holds every writable field of a financial record.
type RecordInput struct {
	Title           string
	Description     string
	Amount          decimal.Decimal
	RecordType      domain.RecordType
	TransactionDate time.Time
	DepartmentID    *int64
	CategoryID      *int64
	FundManager     string
	CreatedBy       string
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	switch {
	case title == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case utf8.RuneCountInString(title) > 200:
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	} else if i.Amount.GreaterThan(maxAmount) {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "too large"})
	}
	if !i.RecordType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "record_type", Message: "must be expense or income"})
	}
	if i.TransactionDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "transaction_date", Message: "required"})
	}
	if utf8.RuneCountInString(i.FundManager) > 100 {
		errs = append(errs, domain.FieldError{Field: "fund_manager", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i RecordInput) apply(r *domain.FinancialRecord) {
	r.Title = strings.TrimSpace(i.Title)
	r.Description = strings.TrimSpace(i.Description)
	r.Amount = i.Amount.Round(2)
	r.RecordType = i.RecordType
	r.TransactionDate = i.TransactionDate
	r.DepartmentID = i.DepartmentID
	r.CategoryID = i.CategoryID
	r.FundManager = strings.TrimSpace(i.FundManager)
}

// InputOf returns the writable fields of an existing record.
func InputOf(r *domain.FinancialRecord) RecordInput {
	return RecordInput{
		Title:           r.Title,
		Description:     r.Description,
		Amount:          r.Amount,
		RecordType:      r.RecordType,
		TransactionDate: r.TransactionDate,
		DepartmentID:    r.DepartmentID,
		CategoryID:      r.CategoryID,
		FundManager:     r.FundManager,
		CreatedBy:       r.CreatedBy,
	}
}

// NamedInput is the writable part of departments and finance categories.
type NamedInput struct {
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i NamedInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if utf8.RuneCountInString(name) > 100 {
		return domain.NewValidationError("name", "max 100 characters")
	}
	return nil
}
