package evaluation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// maxScore is the largest value NUMERIC(6,2) holds.
var maxScore = decimal.RequireFromString("9999.99")

// RecordInput holds every writable field of an evaluation record. The total
// is always derived and never accepted.
type RecordInput struct {
	DepartmentID    int64
	PersonnelID     *int64
	PersonnelName   string
	Grade           string
	ItemDescription string
	BonusScore      decimal.Decimal
	DeductionScore  decimal.Decimal
	Remarks         string
	EvaluationDate  time.Time
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError
	add := func(field, msg string) { errs = append(errs, domain.FieldError{Field: field, Message: msg}) }

	if i.DepartmentID <= 0 {
		add("department", "required")
	}
	name := strings.TrimSpace(i.PersonnelName)
	if name == "" && i.PersonnelID == nil {
		add("personnel_name", "required")
	}
	if utf8.RuneCountInString(name) > 50 {
		add("personnel_name", "max 50 characters")
	}
	if strings.TrimSpace(i.ItemDescription) == "" {
		add("item_description", "required")
	}
	for _, sc := range []struct {
		field string
		v     decimal.Decimal
	}{{"bonus_score", i.BonusScore}, {"deduction_score", i.DeductionScore}} {
		if sc.v.IsNegative() {
			add(sc.field, "must be non-negative")
		} else if sc.v.GreaterThan(maxScore) {
			add(sc.field, "too large")
		}
	}
	if i.EvaluationDate.IsZero() {
		add("evaluation_date", "required")
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i RecordInput) apply(r *domain.EvaluationRecord) {
	r.DepartmentID = i.DepartmentID
	r.PersonnelID = i.PersonnelID
	r.PersonnelName = strings.TrimSpace(i.PersonnelName)
	r.Grade = strings.TrimSpace(i.Grade)
	r.ItemDescription = strings.TrimSpace(i.ItemDescription)
	r.BonusScore = i.BonusScore.Round(2)
	r.DeductionScore = i.DeductionScore.Round(2)
	r.Remarks = strings.TrimSpace(i.Remarks)
	r.EvaluationDate = i.EvaluationDate
	r.Recompute()
}

// InputOf returns the writable fields of an existing record.
func InputOf(r *domain.EvaluationRecord) RecordInput {
	return RecordInput{
		DepartmentID:    r.DepartmentID,
		PersonnelID:     r.PersonnelID,
		PersonnelName:   r.PersonnelName,
		Grade:           r.Grade,
		ItemDescription: r.ItemDescription,
		BonusScore:      r.BonusScore,
		DeductionScore:  r.DeductionScore,
		Remarks:         r.Remarks,
		EvaluationDate:  r.EvaluationDate,
	}
}
