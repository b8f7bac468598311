package models

import "time"

// SubmissionType represents the kind of creative work submitted
type SubmissionType string

// Submission types
const (
	SubmissionTypeWriting SubmissionType = "Writing"
	SubmissionTypeImage   SubmissionType = "Image"
	SubmissionTypeVideo   SubmissionType = "Video"
)

// IsValid reports whether the submission type is one of the defined kinds
func (t SubmissionType) IsValid() bool {
	switch t {
	case SubmissionTypeWriting, SubmissionTypeImage, SubmissionTypeVideo:
		return true
	}
	return false
}

// SubmissionStatus represents the moderation state of a submission
type SubmissionStatus string

// Moderation states. New submissions start Pending; admins may move a
// submission between any two states at any time.
const (
	SubmissionStatusPending  SubmissionStatus = "Pending"
	SubmissionStatusApproved SubmissionStatus = "Approved"
	SubmissionStatusRejected SubmissionStatus = "Rejected"
)

// IsValid reports whether the status is one of the defined moderation states
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}

// CommentUser is a snapshot of the commenting member taken at comment
// time. Later profile edits do not change historical attribution.
type CommentUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Batch string `json:"batch"`
}

// Comment is owned by its parent submission and removed only when the
// submission itself is deleted.
type Comment struct {
	ID        int64       `json:"id"` // time-based (unix milliseconds)
	User      CommentUser `json:"user"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Submission defines a piece of creative work submitted by a member.
// Likes must always equal the number of entries in LikedBy.
type Submission struct {
	ID          int64            `json:"id"`
	AuthorID    int64            `json:"authorId"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        SubmissionType   `json:"type"`
	Content     string           `json:"content"` // URL for image/video, text for writing
	Likes       int              `json:"likes"`
	LikedBy     []int64          `json:"likedBy"`
	Comments    []Comment        `json:"comments"` // chronological, append-only
	CreatedAt   time.Time        `json:"createdAt"`
	Status      SubmissionStatus `json:"status"`
}

// LikedByUser reports whether the given user has appreciated the submission
func (s *Submission) LikedByUser(userID int64) bool {
	for _, id := range s.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
