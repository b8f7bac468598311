package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/pkg/apperrors"
	"github.com/dccc/clubportal/internal/pkg/validation"
)

// AddSubmissionInput carries the caller-supplied fields for a new
// submission. Status, likes, comments and timestamps are assigned by
// the store.
type AddSubmissionInput struct {
	Title       string
	Description string
	Type        models.SubmissionType
	Content     string
}

// SubmissionFilter narrows the Submissions query
type SubmissionFilter struct {
	Status   *models.SubmissionStatus
	Type     *models.SubmissionType
	AuthorID *int64
}

// AddSubmission appends a new Pending submission for the given author.
// Writing submissions carry their text in Content; image and video
// submissions must carry an absolute http(s) URL.
func (s *Store) AddSubmission(ctx context.Context, input AddSubmissionInput, authorID int64) (sub models.Submission, err error) {
	defer func() { observe("AddSubmission", err) }()

	if !validation.NotBlank(input.Title) {
		return models.Submission{}, apperrors.NewValidationError("title is required")
	}
	if len(input.Title) > validation.TitleMaxLength {
		return models.Submission{}, apperrors.NewValidationError("title is too long")
	}
	if !input.Type.IsValid() {
		return models.Submission{}, apperrors.ErrInvalidType
	}
	if !validation.NotBlank(input.Content) {
		return models.Submission{}, apperrors.NewValidationError("content is required")
	}
	if input.Type != models.SubmissionTypeWriting && !validation.IsValidURL(input.Content) {
		return models.Submission{}, apperrors.ErrInvalidContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.userExists(authorID) {
		return models.Submission{}, apperrors.ErrUserNotFound
	}

	ids := make([]int64, len(s.submissions))
	for i, sub := range s.submissions {
		ids[i] = sub.ID
	}

	sub = models.Submission{
		ID:          nextID(ids),
		AuthorID:    authorID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Type:        input.Type,
		Content:     strings.TrimSpace(input.Content),
		Likes:       0,
		LikedBy:     []int64{},
		Comments:    []models.Comment{},
		CreatedAt:   s.now(),
		Status:      models.SubmissionStatusPending,
	}
	s.submissions = append(s.submissions, sub)
	s.persist(ctx, keySubmissions, s.submissions)

	s.logger.Info().Int64("submissionId", sub.ID).Int64("authorId", authorID).Msg("Submission added")
	return sub, nil
}

// Submissions returns the submissions matching the filter
func (s *Store) Submissions(ctx context.Context, filter SubmissionFilter) []models.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Submission, 0, len(s.submissions))
	for _, sub := range s.submissions {
		if filter.Status != nil && sub.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && sub.Type != *filter.Type {
			continue
		}
		if filter.AuthorID != nil && sub.AuthorID != *filter.AuthorID {
			continue
		}
		out = append(out, sub)
	}
	return out
}

// SubmissionByID returns the submission with the given id
func (s *Store) SubmissionByID(ctx context.Context, id int64) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.submissions {
		if sub.ID == id {
			return sub, nil
		}
	}
	return models.Submission{}, apperrors.ErrSubmissionNotFound
}

// UpdateSubmissionInput carries the admin-editable submission fields
type UpdateSubmissionInput struct {
	Title       *string
	Description *string
	Content     *string
}

// UpdateSubmission merges the admin-editable fields into the matching
// submission at any status.
func (s *Store) UpdateSubmission(ctx context.Context, id int64, patch UpdateSubmissionInput) (sub models.Submission, err error) {
	defer func() { observe("UpdateSubmission", err) }()

	if patch.Title != nil && !validation.NotBlank(*patch.Title) {
		return models.Submission{}, apperrors.NewValidationError("title is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID != id {
			continue
		}

		// Merge into a copy so a rejected patch leaves the record
		// untouched.
		next := s.submissions[i]
		if patch.Title != nil {
			next.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Description != nil {
			next.Description = *patch.Description
		}
		if patch.Content != nil {
			if next.Type != models.SubmissionTypeWriting && !validation.IsValidURL(*patch.Content) {
				return models.Submission{}, apperrors.ErrInvalidContent
			}
			next.Content = strings.TrimSpace(*patch.Content)
		}

		s.submissions[i] = next
		s.persist(ctx, keySubmissions, s.submissions)
		return next, nil
	}
	return models.Submission{}, apperrors.ErrSubmissionNotFound
}

// DeleteSubmission removes the submission and, with it, its comments
func (s *Store) DeleteSubmission(ctx context.Context, id int64) (err error) {
	defer func() { observe("DeleteSubmission", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID == id {
			s.submissions = append(s.submissions[:i], s.submissions[i+1:]...)
			s.persist(ctx, keySubmissions, s.submissions)
			s.logger.Info().Int64("submissionId", id).Msg("Submission deleted")
			return nil
		}
	}
	return apperrors.ErrSubmissionNotFound
}

// UpdateSubmissionStatus sets the moderation status and notifies the
// author. Transitions are unrestricted; any policy beyond that belongs
// to the caller.
func (s *Store) UpdateSubmissionStatus(ctx context.Context, id int64, status models.SubmissionStatus) (sub models.Submission, err error) {
	defer func() { observe("UpdateSubmissionStatus", err) }()

	if !status.IsValid() {
		return models.Submission{}, apperrors.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID != id {
			continue
		}
		s.submissions[i].Status = status
		s.persist(ctx, keySubmissions, s.submissions)

		authorID := s.submissions[i].AuthorID
		message := fmt.Sprintf("Your submission %q has been %s.", s.submissions[i].Title, strings.ToLower(string(status)))
		s.appendNotification(ctx, message, &authorID)

		s.logger.Info().Int64("submissionId", id).Str("status", string(status)).Msg("Submission status updated")
		return s.submissions[i], nil
	}
	return models.Submission{}, apperrors.ErrSubmissionNotFound
}

// ToggleAppreciation flips the given user's membership in the
// submission's likedBy set. The likes count and the membership change
// are produced as one record replacement so no reader can observe a
// torn intermediate state.
func (s *Store) ToggleAppreciation(ctx context.Context, submissionID, userID int64) (sub models.Submission, err error) {
	defer func() { observe("ToggleAppreciation", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID != submissionID {
			continue
		}

		cur := s.submissions[i]
		next := cur
		if cur.LikedByUser(userID) {
			next.LikedBy = make([]int64, 0, len(cur.LikedBy)-1)
			for _, id := range cur.LikedBy {
				if id != userID {
					next.LikedBy = append(next.LikedBy, id)
				}
			}
		} else {
			next.LikedBy = make([]int64, 0, len(cur.LikedBy)+1)
			next.LikedBy = append(next.LikedBy, cur.LikedBy...)
			next.LikedBy = append(next.LikedBy, userID)
		}
		next.Likes = len(next.LikedBy)

		s.submissions[i] = next
		s.persist(ctx, keySubmissions, s.submissions)
		return next, nil
	}
	return models.Submission{}, apperrors.ErrSubmissionNotFound
}

// AddComment appends a comment with a snapshot of the commenting user.
// Comments are chronological: new comments go at the end.
func (s *Store) AddComment(ctx context.Context, submissionID int64, text string, user models.CommentUser) (comment models.Comment, err error) {
	defer func() { observe("AddComment", err) }()

	if !validation.NotBlank(text) {
		return models.Comment{}, apperrors.NewValidationError("comment text is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID != submissionID {
			continue
		}

		now := s.now()
		id := now.UnixMilli()
		if n := len(s.submissions[i].Comments); n > 0 && id <= s.submissions[i].Comments[n-1].ID {
			id = s.submissions[i].Comments[n-1].ID + 1
		}
		comment = models.Comment{
			ID:        id,
			User:      user,
			Text:      strings.TrimSpace(text),
			CreatedAt: now,
		}
		s.submissions[i].Comments = append(s.submissions[i].Comments, comment)
		s.persist(ctx, keySubmissions, s.submissions)
		return comment, nil
	}
	return models.Comment{}, apperrors.ErrSubmissionNotFound
}

// userExists reports whether a user with the given id is registered.
// Caller must hold the lock.
func (s *Store) userExists(id int64) bool {
	for i := range s.users {
		if s.users[i].ID == id {
			return true
		}
	}
	return false
}
