package dto

import (
	"time"

	"github.com/dccc/clubportal/internal/app/models"
)

// AnnouncementRequest represents an admin broadcast announcement
type AnnouncementRequest struct {
	Message string `json:"message" binding:"required"`
}

// NotificationResponse represents a notification returned by the API
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	Broadcast bool      `json:"broadcast"`
}

// NewNotificationResponses maps notifications to their API representation
func NewNotificationResponses(ns []models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		out[i] = NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
			Broadcast: n.UserID == nil,
		}
	}
	return out
}
