package domain

import "time"

// NotificationRecipient is an address that receives change notifications.
type NotificationRecipient struct {
	ID          int64
	Email       string
	IsEnabled   bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NotificationSettings is the single system-wide settings row.
type NotificationSettings struct {
	EmailEnabled bool
	UpdatedAt    time.Time
}

// RecipientInput is one entry of a bulk recipient replacement.
type RecipientInput struct {
	Email       string
	IsEnabled   bool
	Description string
}

// DeliverySettings is what the notification pipeline needs per event.
type DeliverySettings struct {
	Enabled    bool
	Recipients []string
}
