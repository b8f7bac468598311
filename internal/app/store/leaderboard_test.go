package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/kvstore"
)

func TestSetLeaderboardValidatesMembers(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "alice@example.com")

	err := s.SetLeaderboard(ctx, []models.LeaderboardEntry{
		{Rank: 1, MemberID: alice.ID},
		{Rank: 2, MemberID: 999},
	})
	require.Error(t, err)
	require.Empty(t, s.Leaderboard(ctx))

	// Duplicate ranks are allowed, placements are admin judgement.
	err = s.SetLeaderboard(ctx, []models.LeaderboardEntry{
		{Rank: 1, MemberID: alice.ID, Note: "Best poem"},
		{Rank: 1, MemberID: alice.ID, Note: "Best photo"},
	})
	require.NoError(t, err)
	require.Len(t, s.Leaderboard(ctx), 2)
}

func TestFirstRunRecordsMarkerWithoutArchiving(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	july := time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC)

	s := newTestStore(t, kv, july)
	require.Nil(t, s.ArchivedLeaderboard(context.Background()))
	require.Empty(t, s.Leaderboard(context.Background()))
}

func TestMonthRolloverArchivesAndClears(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	july := time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC)

	s := newTestStore(t, kv, july)
	alice := registerUser(t, s, "Alice", "alice@example.com")
	require.NoError(t, s.SetLeaderboard(ctx, []models.LeaderboardEntry{{Rank: 1, MemberID: alice.ID}}))

	// Restart in August: July's standings move to the archive slot.
	august := time.Date(2025, time.August, 2, 8, 0, 0, 0, time.UTC)
	s = newTestStore(t, kv, august)

	require.Empty(t, s.Leaderboard(ctx))
	archived := s.ArchivedLeaderboard(ctx)
	require.NotNil(t, archived)
	require.Equal(t, "July", archived.Month)
	require.Equal(t, 2025, archived.Year)
	require.Len(t, archived.Entries, 1)
	require.Equal(t, alice.ID, archived.Entries[0].MemberID)
}

func TestRolloverAtMonthEndTagsPreviousMonth(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		seedAt    time.Time
		restartAt time.Time
		wantMonth string
		wantYear  int
	}{
		{
			name:      "restart on the 31st after a 30-day month",
			seedAt:    time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC),
			restartAt: time.Date(2025, time.July, 31, 23, 0, 0, 0, time.UTC),
			wantMonth: "June",
			wantYear:  2025,
		},
		{
			name:      "restart late in March after February",
			seedAt:    time.Date(2025, time.February, 10, 9, 0, 0, 0, time.UTC),
			restartAt: time.Date(2025, time.March, 31, 8, 0, 0, 0, time.UTC),
			wantMonth: "February",
			wantYear:  2025,
		},
		{
			name:      "restart in January archives last year's December",
			seedAt:    time.Date(2025, time.December, 20, 18, 0, 0, 0, time.UTC),
			restartAt: time.Date(2026, time.January, 31, 10, 0, 0, 0, time.UTC),
			wantMonth: "December",
			wantYear:  2025,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := kvstore.NewMemoryStore()

			s := newTestStore(t, kv, tt.seedAt)
			alice := registerUser(t, s, "Alice", "alice@example.com")
			require.NoError(t, s.SetLeaderboard(ctx, []models.LeaderboardEntry{{Rank: 1, MemberID: alice.ID}}))

			s = newTestStore(t, kv, tt.restartAt)

			archived := s.ArchivedLeaderboard(ctx)
			require.NotNil(t, archived)
			require.Equal(t, tt.wantMonth, archived.Month)
			require.Equal(t, tt.wantYear, archived.Year)
		})
	}
}

func TestRolloverIsIdempotentWithinMonth(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	july := time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC)

	s := newTestStore(t, kv, july)
	alice := registerUser(t, s, "Alice", "alice@example.com")
	require.NoError(t, s.SetLeaderboard(ctx, []models.LeaderboardEntry{{Rank: 1, MemberID: alice.ID}}))

	august := time.Date(2025, time.August, 2, 8, 0, 0, 0, time.UTC)
	s = newTestStore(t, kv, august)
	require.NoError(t, s.SetLeaderboard(ctx, []models.LeaderboardEntry{{Rank: 1, MemberID: alice.ID, Note: "August"}}))

	// A second restart in the same month must not archive again.
	s = newTestStore(t, kv, august.AddDate(0, 0, 20))

	require.Len(t, s.Leaderboard(ctx), 1)
	require.Equal(t, "August", s.Leaderboard(ctx)[0].Note)
	require.Equal(t, "July", s.ArchivedLeaderboard(ctx).Month)
}

func TestRolloverOverwritesPreviousArchive(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	july := time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC)

	s := newTestStore(t, kv, july)
	alice := registerUser(t, s, "Alice", "alice@example.com")
	require.NoError(t, s.SetLeaderboard(ctx, []models.LeaderboardEntry{{Rank: 1, MemberID: alice.ID}}))

	august := time.Date(2025, time.August, 2, 8, 0, 0, 0, time.UTC)
	s = newTestStore(t, kv, august)
	require.NoError(t, s.SetLeaderboard(ctx, []models.LeaderboardEntry{{Rank: 1, MemberID: alice.ID, Note: "August"}}))

	september := time.Date(2025, time.September, 1, 0, 30, 0, 0, time.UTC)
	s = newTestStore(t, kv, september)

	archived := s.ArchivedLeaderboard(ctx)
	require.NotNil(t, archived)
	require.Equal(t, "August", archived.Month)
	require.Equal(t, "August", archived.Entries[0].Note)
}

func TestArchivedLeaderboardReturnsCopy(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	july := time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC)

	s := newTestStore(t, kv, july)
	alice := registerUser(t, s, "Alice", "alice@example.com")
	require.NoError(t, s.SetLeaderboard(ctx, []models.LeaderboardEntry{{Rank: 1, MemberID: alice.ID}}))

	s = newTestStore(t, kv, july.AddDate(0, 1, 0))

	first := s.ArchivedLeaderboard(ctx)
	first.Entries[0].Note = "mutated"

	second := s.ArchivedLeaderboard(ctx)
	require.Empty(t, second.Entries[0].Note)
}
