package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dccc/clubportal/internal/kvstore"
	"github.com/dccc/clubportal/internal/pkg/apperrors"
)

func TestEventsStaySortedByDate(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	late, err := s.AddEvent(ctx, EventInput{Title: "Closing Ceremony", Date: testTime.AddDate(0, 2, 0)})
	require.NoError(t, err)
	early, err := s.AddEvent(ctx, EventInput{Title: "Orientation", Date: testTime.AddDate(0, 0, 3)})
	require.NoError(t, err)
	mid, err := s.AddEvent(ctx, EventInput{Title: "Poetry Night", Date: testTime.AddDate(0, 1, 0)})
	require.NoError(t, err)

	events := s.Events(ctx)
	require.Len(t, events, 3)
	require.Equal(t, []int64{early.ID, mid.ID, late.ID}, []int64{events[0].ID, events[1].ID, events[2].ID})

	// Moving an event's date re-sorts the collection.
	_, err = s.UpdateEvent(ctx, early.ID, EventInput{Title: "Orientation", Date: testTime.AddDate(0, 3, 0)})
	require.NoError(t, err)

	events = s.Events(ctx)
	require.Equal(t, mid.ID, events[0].ID)
	require.Equal(t, early.ID, events[2].ID)
}

func TestAddEventBroadcastsNotification(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "alice@example.com")
	bob := registerUser(t, s, "Bob", "bob@example.com")

	_, err := s.AddEvent(ctx, EventInput{Title: "Poetry Night", Date: testTime.AddDate(0, 1, 0)})
	require.NoError(t, err)

	for _, userID := range []int64{alice.ID, bob.ID} {
		ns := s.NotificationsFor(ctx, userID)
		require.Len(t, ns, 1)
		require.Contains(t, ns[0].Message, "Poetry Night")
		require.Nil(t, ns[0].UserID)
	}
}

func TestEventValidation(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	_, err := s.AddEvent(ctx, EventInput{Title: "  ", Date: testTime})
	require.Error(t, err)

	_, err = s.AddEvent(ctx, EventInput{Title: "No Date", Date: time.Time{}})
	require.Error(t, err)
}

func TestDeleteEvent(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	event, err := s.AddEvent(ctx, EventInput{Title: "Orientation", Date: testTime.AddDate(0, 0, 3)})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEvent(ctx, event.ID))
	require.Empty(t, s.Events(ctx))
	require.ErrorIs(t, s.DeleteEvent(ctx, event.ID), apperrors.ErrEventNotFound)
}
