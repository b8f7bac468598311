// Package kvstore provides the persisted key-value storage every domain
// collection is kept in. Each collection is serialized as JSON under its
// own namespaced key, so unrelated collections never invalidate each
// other's entry.
package kvstore

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Store is the persistence primitive the domain state store is built on.
type Store interface {
	// Get returns the raw value stored under key. The second return
	// value reports whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set overwrites the value stored under key unconditionally.
	Set(ctx context.Context, key string, value []byte) error
	// Close releases any resources held by the store.
	Close() error
}

// Read loads the value stored under key into a value of type T.
// A missing key returns def without any persistence side effect. A value
// that fails to decode is logged and def is returned; decode failures
// never propagate. Timestamps serialized as RFC 3339 strings are revived
// into time.Time through the typed fields of T.
func Read[T any](ctx context.Context, s Store, key string, def T) T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to read stored value, using default")
		return def
	}
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to decode stored value, using default")
		return def
	}
	return v
}

// Write serializes v and persists it under key, replacing any prior
// content. time.Time values are serialized as RFC 3339 strings by the
// standard JSON encoding.
func Write[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
