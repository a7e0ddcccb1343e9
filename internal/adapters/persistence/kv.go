// Package persistence defines the key/value snapshot boundary the
// record store and session delegate durability to. Writes are atomic
// per call and read-after-write consistent within one session.
package persistence

import "context"

// KV is a byte store keyed by short string keys.
type KV interface {
	// Load returns the value stored under key, or fallback when the
	// key is absent. Any other failure is returned as an error.
	Load(ctx context.Context, key string, fallback []byte) ([]byte, error)

	// Save stores value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error
}
