package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EvaluationRecord is one scored evaluation line for a member.
type EvaluationRecord struct {
	ID              int64
	DepartmentID    int64
	DepartmentName  string
	PersonnelID     *int64
	PersonnelName   string
	Grade           string
	ItemDescription string
	BonusScore      decimal.Decimal
	DeductionScore  decimal.Decimal
	TotalScore      decimal.Decimal
	Remarks         string
	EvaluationDate  time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Recompute derives TotalScore from the bonus and deduction scores.
func (r *EvaluationRecord) Recompute() {
	r.TotalScore = r.BonusScore.Sub(r.DeductionScore)
}

// EvaluationFilter narrows evaluation listings.
type EvaluationFilter struct {
	DepartmentID  *int64
	PersonnelName string
	DateFrom      *time.Time
	DateTo        *time.Time
}
