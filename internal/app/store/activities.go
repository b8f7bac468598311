package store

import (
	"context"
	"strings"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/pkg/apperrors"
	"github.com/dccc/clubportal/internal/pkg/validation"
)

// ActivityInput carries the caller-supplied fields for an activity
type ActivityInput struct {
	Title       string
	Description string
	ImageURL    string
}

// AddActivity appends a new activity. The collection is unordered.
func (s *Store) AddActivity(ctx context.Context, input ActivityInput) (activity models.Activity, err error) {
	defer func() { observe("AddActivity", err) }()

	if err := validateActivityInput(input); err != nil {
		return models.Activity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, len(s.activities))
	for i, a := range s.activities {
		ids[i] = a.ID
	}

	activity = models.Activity{
		ID:          nextID(ids),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	s.activities = append(s.activities, activity)
	s.persist(ctx, keyActivities, s.activities)
	return activity, nil
}

// Activities returns a snapshot of all activities
func (s *Store) Activities(ctx context.Context) []models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// UpdateActivity replaces the fields of the matching activity
func (s *Store) UpdateActivity(ctx context.Context, id int64, input ActivityInput) (activity models.Activity, err error) {
	defer func() { observe("UpdateActivity", err) }()

	if err := validateActivityInput(input); err != nil {
		return models.Activity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities[i].Title = strings.TrimSpace(input.Title)
			s.activities[i].Description = input.Description
			s.activities[i].ImageURL = input.ImageURL
			s.persist(ctx, keyActivities, s.activities)
			return s.activities[i], nil
		}
	}
	return models.Activity{}, apperrors.ErrActivityNotFound
}

// DeleteActivity removes the matching activity
func (s *Store) DeleteActivity(ctx context.Context, id int64) (err error) {
	defer func() { observe("DeleteActivity", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			s.persist(ctx, keyActivities, s.activities)
			return nil
		}
	}
	return apperrors.ErrActivityNotFound
}

func validateActivityInput(input ActivityInput) error {
	if !validation.NotBlank(input.Title) {
		return apperrors.NewValidationError("activity title is required")
	}
	if input.ImageURL != "" && !validation.IsValidURL(input.ImageURL) {
		return apperrors.NewValidationError("activity image must be an absolute http(s) URL")
	}
	return nil
}
