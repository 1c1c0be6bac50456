package models

import "time"

// NotificationType classifies a notification for client rendering.
type NotificationType string

const (
	// NotificationTypeInvite is sent when a user is invited to a workspace.
	NotificationTypeInvite NotificationType = "invite"
	// NotificationTypePost is sent to workspace members on a new post.
	NotificationTypePost NotificationType = "post"
	// NotificationTypeGeneric is the fallback for untyped notifications.
	NotificationTypeGeneric NotificationType = "notification"
)

// Notification is an append-only entry in a user's feed. Rows are never
// mutated; clients poll the 50 most recent. Duplicates are legal.
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"`
	Type      NotificationType `gorm:"type:varchar(20);not null;default:'notification'" json:"type"`
	Title     string           `gorm:"size:255;not null" json:"title"`
	Content   string           `gorm:"type:text" json:"content"`
	CreatedAt time.Time        `json:"created_at"`
}
