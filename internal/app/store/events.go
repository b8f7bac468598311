package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/pkg/apperrors"
	"github.com/dccc/clubportal/internal/pkg/validation"
)

// EventInput carries the caller-supplied fields for an event
type EventInput struct {
	Title       string
	Date        time.Time
	Venue       string
	Description string
}

// AddEvent appends a new event, re-sorts the collection ascending by
// date, and broadcasts a notification to all users.
func (s *Store) AddEvent(ctx context.Context, input EventInput) (event models.Event, err error) {
	defer func() { observe("AddEvent", err) }()

	if err := validateEventInput(input); err != nil {
		return models.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, len(s.events))
	for i, e := range s.events {
		ids[i] = e.ID
	}

	event = models.Event{
		ID:          nextID(ids),
		Title:       strings.TrimSpace(input.Title),
		Date:        input.Date,
		Venue:       input.Venue,
		Description: input.Description,
	}
	s.events = append(s.events, event)
	s.sortAndPersistEvents(ctx)

	s.appendNotification(ctx, fmt.Sprintf("New event announced: %s", event.Title), nil)

	s.logger.Info().Int64("eventId", event.ID).Msg("Event added")
	return event, nil
}

// Events returns a snapshot of all events, sorted ascending by date
func (s *Store) Events(ctx context.Context) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// UpdateEvent replaces the fields of the matching event and re-sorts
// the collection by date.
func (s *Store) UpdateEvent(ctx context.Context, id int64, input EventInput) (event models.Event, err error) {
	defer func() { observe("UpdateEvent", err) }()

	if err := validateEventInput(input); err != nil {
		return models.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i].Title = strings.TrimSpace(input.Title)
			s.events[i].Date = input.Date
			s.events[i].Venue = input.Venue
			s.events[i].Description = input.Description
			event = s.events[i]
			s.sortAndPersistEvents(ctx)
			return event, nil
		}
	}
	return models.Event{}, apperrors.ErrEventNotFound
}

// DeleteEvent removes the matching event
func (s *Store) DeleteEvent(ctx context.Context, id int64) (err error) {
	defer func() { observe("DeleteEvent", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			s.persist(ctx, keyEvents, s.events)
			return nil
		}
	}
	return apperrors.ErrEventNotFound
}

// sortAndPersistEvents keeps the date-ascending invariant after every
// mutation. Caller must hold the lock.
func (s *Store) sortAndPersistEvents(ctx context.Context) {
	sort.SliceStable(s.events, func(i, j int) bool {
		return s.events[i].Date.Before(s.events[j].Date)
	})
	s.persist(ctx, keyEvents, s.events)
}

func validateEventInput(input EventInput) error {
	if !validation.NotBlank(input.Title) {
		return apperrors.NewValidationError("event title is required")
	}
	if len(input.Title) > validation.TitleMaxLength {
		return apperrors.NewValidationError("event title is too long")
	}
	if input.Date.IsZero() {
		return apperrors.NewValidationError("event date is required")
	}
	return nil
}
