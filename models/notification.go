package models

import "time"

// Notification types mirror the dashboard's display categories.
const (
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationInfo    = "info"
)

// Notification is a dashboard notification record.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	Type      string    `bson:"type" json:"type"`
	Read      bool      `bson:"read" json:"read"`
	BookingID string    `bson:"booking_id,omitempty" json:"bookingId,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	// TimeAgo is derived for responses, never stored.
	TimeAgo string `bson:"-" json:"timeAgo,omitempty"`
}
