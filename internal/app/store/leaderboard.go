package store

import (
	"context"
	"time"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/kvstore"
	"github.com/dccc/clubportal/internal/pkg/apperrors"
)

// monthMarker formats a time as the stored last-reset-month marker
const monthMarkerLayout = "2006-01"

// Leaderboard returns a snapshot of the current month's leaderboard
func (s *Store) Leaderboard(ctx context.Context) []models.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.LeaderboardEntry, len(s.leaderboard))
	copy(out, s.leaderboard)
	return out
}

// ArchivedLeaderboard returns the snapshot of the previous month's
// leaderboard, or nil when no completed period has been archived yet.
func (s *Store) ArchivedLeaderboard(ctx context.Context) *models.ArchivedLeaderboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prevLeaderboard == nil {
		return nil
	}
	cp := *s.prevLeaderboard
	cp.Entries = make([]models.LeaderboardEntry, len(s.prevLeaderboard.Entries))
	copy(cp.Entries, s.prevLeaderboard.Entries)
	return &cp
}

// SetLeaderboard replaces the current leaderboard wholesale with
// admin-entered placements. Ranks are free-form; every referenced
// member must exist.
func (s *Store) SetLeaderboard(ctx context.Context, entries []models.LeaderboardEntry) (err error) {
	defer func() { observe("SetLeaderboard", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		if !s.userExists(e.MemberID) {
			return apperrors.NewValidationError("leaderboard entry references an unknown member")
		}
	}

	s.leaderboard = make([]models.LeaderboardEntry, len(entries))
	copy(s.leaderboard, entries)
	s.persist(ctx, keyLeaderboard, s.leaderboard)

	s.logger.Info().Int("entries", len(s.leaderboard)).Msg("Leaderboard replaced")
	return nil
}

// rolloverLeaderboard archives and clears the current leaderboard when
// the calendar month has changed since the stored marker. The archive
// slot holds exactly one snapshot, tagged with the previous month's
// name and year; each rollover overwrites it. Runs once at store
// construction, so the check happens at most once per process lifetime
// and is idempotent within a month.
func (s *Store) rolloverLeaderboard(ctx context.Context) {
	now := s.now()
	current := now.Format(monthMarkerLayout)

	stored := kvstore.Read(ctx, s.kv, keyLastResetMonth, "")
	if stored == current {
		return
	}

	if stored != "" {
		// Step back from the first of the current month; subtracting a
		// month from a late date normalizes past short months (July 31
		// minus one month is July 1, not June).
		prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
		s.prevLeaderboard = &models.ArchivedLeaderboard{
			Month:   prev.Month().String(),
			Year:    prev.Year(),
			Entries: s.leaderboard,
		}
		s.leaderboard = []models.LeaderboardEntry{}

		s.persist(ctx, keyPrevLeaderboard, s.prevLeaderboard)
		s.persist(ctx, keyLeaderboard, s.leaderboard)

		s.logger.Info().
			Str("archivedMonth", s.prevLeaderboard.Month).
			Int("archivedYear", s.prevLeaderboard.Year).
			Int("entries", len(s.prevLeaderboard.Entries)).
			Msg("Monthly leaderboard archived and cleared")
	}

	s.persist(ctx, keyLastResetMonth, current)
}
