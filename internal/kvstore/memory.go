package kvstore

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

const defaultMemoryEntries = 64

// Memory is a bounded in-process store. Values are copied on the way in and out.
type Memory struct {
	cache *lru.Cache
}

// NewMemory creates a Memory store holding at most size entries.
func NewMemory(size int) (*Memory, error) {
	if size <= 0 {
		size = defaultMemoryEntries
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	return &Memory{cache: cache}, nil
}

func (m *Memory) Name() string { return "memory" }

// Get retrieves the value for a key.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.cache.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	return clone(v.([]byte)), nil
}

// Set inserts or replaces a key, evicting the least recently used entry when full.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.cache.Add(key, clone(value))
	return nil
}

// Ping always succeeds.
func (m *Memory) Ping(context.Context) error { return nil }

// Len returns the number of cached entries.
func (m *Memory) Len() int { return m.cache.Len() }

// Close drops every entry.
func (m *Memory) Close() error {
	m.cache.Purge()
	return nil
}
