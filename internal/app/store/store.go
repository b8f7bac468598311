// Package store implements the domain state store: the single authority
// for reading and mutating every portal collection. Each command
// computes the next collection value, persists it through the key-value
// store, and updates the in-memory copy, all under one lock.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/kvstore"
	"github.com/dccc/clubportal/internal/pkg/metrics"
)

// Storage keys. One key per collection so unrelated collections never
// invalidate each other's entry.
const (
	keyUsers           = "dccc-users"
	keySubmissions     = "dccc-submissions"
	keyEvents          = "dccc-events"
	keyActivities      = "dccc-activities"
	keyLeaderboard     = "dccc-leaderboard"
	keyPrevLeaderboard = "dccc-prev-leaderboard"
	keyNotifications   = "dccc-notifications"
	keyFooter          = "dccc-footer"
	keyLastResetMonth  = "dccc-last-reset-month"
)

// Store owns all portal collections. Construct it once at process start
// and share the handle; it is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	kv     kvstore.Store
	logger zerolog.Logger
	now    func() time.Time

	users           []models.User
	submissions     []models.Submission
	events          []models.Event
	activities      []models.Activity
	leaderboard     []models.LeaderboardEntry
	prevLeaderboard *models.ArchivedLeaderboard
	notifications   []models.Notification
	footer          models.FooterSettings
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the store's time source
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New loads every collection from the key-value store and runs the
// monthly leaderboard rollover check.
func New(ctx context.Context, kv kvstore.Store, logger zerolog.Logger, opts ...Option) (*Store, error) {
	s := &Store{
		kv:     kv,
		logger: logger.With().Str("component", "store").Logger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.users = kvstore.Read(ctx, kv, keyUsers, []models.User{})
	s.submissions = kvstore.Read(ctx, kv, keySubmissions, []models.Submission{})
	s.events = kvstore.Read(ctx, kv, keyEvents, []models.Event{})
	s.activities = kvstore.Read(ctx, kv, keyActivities, []models.Activity{})
	s.leaderboard = kvstore.Read(ctx, kv, keyLeaderboard, []models.LeaderboardEntry{})
	s.prevLeaderboard = kvstore.Read[*models.ArchivedLeaderboard](ctx, kv, keyPrevLeaderboard, nil)
	s.notifications = kvstore.Read(ctx, kv, keyNotifications, []models.Notification{})
	s.footer = kvstore.Read(ctx, kv, keyFooter, defaultFooterSettings())

	s.rolloverLeaderboard(ctx)

	s.logger.Info().
		Int("users", len(s.users)).
		Int("submissions", len(s.submissions)).
		Int("events", len(s.events)).
		Msg("Domain state store loaded")

	return s, nil
}

// persist writes one collection back through the key-value store.
// Storage failures are logged and swallowed: the in-memory state stays
// authoritative and nothing in this subsystem is fatal.
func (s *Store) persist(ctx context.Context, key string, v interface{}) {
	if err := kvstore.Write(ctx, s.kv, key, v); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to persist collection")
	}
}

// observe records a completed store command for metrics
func observe(operation string, err error) {
	metrics.ObserveStoreOperation(operation, err)
}

// nextID assigns the next integer surrogate key: max(existing)+1, or 1
// when the collection is empty.
func nextID(existing []int64) int64 {
	var highest int64
	for _, id := range existing {
		if id > highest {
			highest = id
		}
	}
	return highest + 1
}
