package models

import "time"

type NotificationType string

const (
	NotifyLowStock         NotificationType = "low_stock"
	NotifyMembershipExpiry NotificationType = "membership_expiry"
	NotifyInfo             NotificationType = "info"
)

// Notification is an append-only log entry. Creation deduplicates against
// an existing unread entry with the same type and related id.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	RelatedID string           `json:"related_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
