package repository

import (
	persistence "github.com/okian/talentpulse/internal/adapters/persistence"
	"github.com/okian/talentpulse/pkg/logger"
)

// Option applies a configuration option to the RosterStore.
type Option func(*RosterStore)

// WithKV sets the persistence collaborator snapshots are written to.
// Without it the store is memory-only.
func WithKV(kv persistence.KV) Option {
	return func(s *RosterStore) {
		s.kv = kv
	}
}

// WithSnapshotKey sets the KV key the collection is stored under.
func WithSnapshotKey(key string) Option {
	return func(s *RosterStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(log logger.Logger) Option {
	return func(s *RosterStore) {
		if log != nil {
			s.log = log
		}
	}
}

// WithIDFunc overrides id minting. Intended for tests that need
// predictable ids.
func WithIDFunc(fn func() string) Option {
	return func(s *RosterStore) {
		if fn != nil {
			s.newID = fn
		}
	}
}
