package dto

import (
	"time"

	"github.com/dccc/clubportal/internal/app/models"
)

// CreateSubmissionRequest represents a new creative work submission
type CreateSubmissionRequest struct {
	Title       string                `json:"title" binding:"required,max=200"`
	Description string                `json:"description"`
	Type        models.SubmissionType `json:"type" binding:"required"`
	Content     string                `json:"content" binding:"required"`
}

// UpdateSubmissionRequest represents an admin edit of a submission
type UpdateSubmissionRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
}

// UpdateSubmissionStatusRequest represents a moderation decision
type UpdateSubmissionStatusRequest struct {
	Status models.SubmissionStatus `json:"status" binding:"required"`
}

// AddCommentRequest represents a new comment on a submission
type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse represents a comment with its author snapshot
type CommentResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName"`
	UserBatch string    `json:"userBatch"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubmissionResponse represents a submission returned by the API
type SubmissionResponse struct {
	ID          int64             `json:"id"`
	AuthorID    int64             `json:"authorId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	Content     string            `json:"content"`
	Likes       int               `json:"likes"`
	LikedBy     []int64           `json:"likedBy"`
	Comments    []CommentResponse `json:"comments"`
	CreatedAt   time.Time         `json:"createdAt"`
	Status      string            `json:"status"`
}

// NewSubmissionResponse maps a submission model to its API representation
func NewSubmissionResponse(s models.Submission) SubmissionResponse {
	comments := make([]CommentResponse, len(s.Comments))
	for i, c := range s.Comments {
		comments[i] = CommentResponse{
			ID:        c.ID,
			UserID:    c.User.ID,
			UserName:  c.User.Name,
			UserBatch: c.User.Batch,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		}
	}

	return SubmissionResponse{
		ID:          s.ID,
		AuthorID:    s.AuthorID,
		Title:       s.Title,
		Description: s.Description,
		Type:        string(s.Type),
		Content:     s.Content,
		Likes:       s.Likes,
		LikedBy:     s.LikedBy,
		Comments:    comments,
		CreatedAt:   s.CreatedAt,
		Status:      string(s.Status),
	}
}

// NewSubmissionListResponse maps a slice of submissions
func NewSubmissionListResponse(subs []models.Submission) []SubmissionResponse {
	out := make([]SubmissionResponse, len(subs))
	for i, s := range subs {
		out[i] = NewSubmissionResponse(s)
	}
	return out
}
