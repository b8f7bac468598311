package models

import "time"

// Notification is an announcement shown in the member notification
// panel. A nil UserID means the notification is broadcast to all users;
// otherwise it targets a single member. Notifications are append-only
// and never deleted.
type Notification struct {
	ID        int64     `json:"id"` // time-based (unix milliseconds)
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    *int64    `json:"userId,omitempty"`
}

// IsFor reports whether the notification is visible to the given user
func (n *Notification) IsFor(userID int64) bool {
	return n.UserID == nil || *n.UserID == userID
}
