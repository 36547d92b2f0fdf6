package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department is an organisational unit shared by finance, personnel and
// evaluation records.
type Department struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// FinanceCategory classifies financial records.
type FinanceCategory struct {
	ID          int64
	Name        string
	Description string
}

// FinancialRecord is a single income or expense entry.
type FinancialRecord struct {
	ID              int64
	Title           string
	Description     string
	Amount          decimal.Decimal
	RecordType      RecordType
	TransactionDate time.Time
	DepartmentID    *int64
	DepartmentName  string
	CategoryID      *int64
	CategoryName    string
	FundManager     string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	ProofImages []ProofImage
}

// ProofImage is a receipt or invoice attached to a financial record.
// Image is the path relative to the media root.
type ProofImage struct {
	ID          int64
	RecordID    int64
	Image       string
	Description string
	UploadedAt  time.Time
}

// FinancialRecordFilter narrows record listings.
type FinancialRecordFilter struct {
	RecordType   *RecordType
	DepartmentID *int64
	CategoryID   *int64
	DateFrom     *time.Time
	DateTo       *time.Time
	Search       string
}

// FinanceSummary holds totals per record type.
type FinanceSummary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
	Count   int
}
