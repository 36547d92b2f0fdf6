package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a physical asset owned by the studio.
type Item struct {
	ID           int64
	Name         string
	Description  string
	SerialNumber string
	CategoryID   *int64
	CategoryName string
	Status       ItemStatus
	Location     string
	Owner        string
	PurchaseDate *time.Time
	Value        *decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// CurrentUsage is the open usage record, if the item is lent out.
	CurrentUsage *ItemUsage
	// RecentUsages is populated only on detail reads.
	RecentUsages []ItemUsage
}

// CanBorrow reports whether the item may be lent out right now.
func (i *Item) CanBorrow() bool {
	return i.Status == ItemStatusAvailable
}

// ItemCategory groups items.
type ItemCategory struct {
	ID          int64
	Name        string
	Description string
}

// ItemUsage records one borrow of an item.
type ItemUsage struct {
	ID                 int64
	ItemID             int64
	ItemName           string
	User               string
	BorrowerContact    string
	StartTime          time.Time
	ExpectedReturnTime *time.Time
	EndTime            *time.Time
	Purpose            string
	Notes              string
	IsReturned         bool
	ConditionBefore    string
	ConditionAfter     string
	CreatedAt          time.Time
}

// DefaultBorrowerContact is stored when a borrower leaves no contact.
const DefaultBorrowerContact = "NONE"

// ItemFilter narrows item listings.
type ItemFilter struct {
	Status     *ItemStatus
	CategoryID *int64
	Search     string
}

// ItemUsageFilter narrows usage listings.
type ItemUsageFilter struct {
	ItemID     *int64
	User       string
	IsReturned *bool
}
