package dto

import (
	"time"

	"github.com/dccc/clubportal/internal/app/models"
)

// EventRequest represents an event create or update
type EventRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Date        time.Time `json:"date" binding:"required"`
	Venue       string    `json:"venue"`
	Description string    `json:"description"`
}

// EventResponse represents an event returned by the API
type EventResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Description string    `json:"description"`
}

// NewEventResponse maps an event model to its API representation
func NewEventResponse(e models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Venue:       e.Venue,
		Description: e.Description,
	}
}
