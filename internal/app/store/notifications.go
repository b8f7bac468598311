package store

import (
	"context"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/pkg/apperrors"
	"github.com/dccc/clubportal/internal/pkg/validation"
)

// AddGlobalNotification broadcasts an announcement to all users
func (s *Store) AddGlobalNotification(ctx context.Context, message string) (n models.Notification, err error) {
	defer func() { observe("AddGlobalNotification", err) }()

	if !validation.NotBlank(message) {
		return models.Notification{}, apperrors.NewValidationError("notification message is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n = s.appendNotification(ctx, message, nil)
	s.logger.Info().Int64("notificationId", n.ID).Msg("Global notification added")
	return n, nil
}

// NotificationsFor returns the notifications visible to the given
// user: broadcasts plus the ones targeting them, newest first.
func (s *Store) NotificationsFor(ctx context.Context, userID int64) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, 0)
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if s.notifications[i].IsFor(userID) {
			out = append(out, s.notifications[i])
		}
	}
	return out
}

// MarkNotificationsRead marks every notification visible to the given
// user as read, in bulk. Invoked when the user opens the notification
// panel.
func (s *Store) MarkNotificationsRead(ctx context.Context, userID int64) (err error) {
	defer func() { observe("MarkNotificationsRead", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.notifications {
		if !s.notifications[i].Read && s.notifications[i].IsFor(userID) {
			s.notifications[i].Read = true
			changed = true
		}
	}
	if changed {
		s.persist(ctx, keyNotifications, s.notifications)
	}
	return nil
}

// appendNotification appends a notification with a time-based id and
// persists the collection. A nil userID broadcasts to all users.
// Caller must hold the lock.
func (s *Store) appendNotification(ctx context.Context, message string, userID *int64) models.Notification {
	now := s.now()
	id := now.UnixMilli()
	if n := len(s.notifications); n > 0 && id <= s.notifications[n-1].ID {
		// Two notifications in the same millisecond still get
		// distinct, ordered ids.
		id = s.notifications[n-1].ID + 1
	}
	n := models.Notification{
		ID:        id,
		Message:   message,
		Read:      false,
		CreatedAt: now,
		UserID:    userID,
	}
	s.notifications = append(s.notifications, n)
	s.persist(ctx, keyNotifications, s.notifications)
	return n
}
