// Package kvstore is the durable key/value boundary the leaderboard cache
// writes through. Adapters are interchangeable; the pipeline keeps working with
// none configured.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is a byte-oriented key/value store.
type Store interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// Status describes the cache boundary for health reporting.
type Status struct {
	Backend             string
	Configured          bool
	Available           bool
	LocalCacheAvailable bool
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
