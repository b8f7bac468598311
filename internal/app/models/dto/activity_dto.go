package dto

import "github.com/dccc/clubportal/internal/app/models"

// ActivityRequest represents an activity create or update
type ActivityRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// ActivityResponse represents an activity returned by the API
type ActivityResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// NewActivityResponse maps an activity model to its API representation
func NewActivityResponse(a models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		ImageURL:    a.ImageURL,
	}
}
