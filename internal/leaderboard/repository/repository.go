// Package repository persists leaderboard snapshots and scan progress as
// timestamped cache entries.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/minerboard-backend/internal/kvstore"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
)

// Cache keys.
const (
	SnapshotKey   = "leaderboard_snapshot"
	PartialKey    = "leaderboard_partial"
	CheckpointKey = "scan_checkpoint"
)

// Entry wraps a payload with the time it was written. Entries are never
// deleted; readers decide when one is too old.
type Entry[T any] struct {
	Timestamp time.Time `json:"timestamp"`
	Payload   T         `json:"payload"`
}

// Age returns how long ago the entry was written.
func (e Entry[T]) Age(now time.Time) time.Duration {
	return now.Sub(e.Timestamp)
}

// Repository reads and writes typed entries.
type Repository struct {
	store   Store
	metrics Metrics
	now     func() time.Time
}

// New builds a Repository over store.
func New(store Store, metrics Metrics) *Repository {
	return &Repository{
		store:   store,
		metrics: metrics,
		now:     time.Now,
	}
}

// LoadSnapshot returns the last fully aggregated snapshot.
func (r *Repository) LoadSnapshot(ctx context.Context) (Entry[model.Snapshot], bool, error) {
	return load[model.Snapshot](ctx, r, "load_snapshot", SnapshotKey)
}

// SaveSnapshot stores a snapshot as the latest complete result.
func (r *Repository) SaveSnapshot(ctx context.Context, s model.Snapshot) error {
	return save(ctx, r, "save_snapshot", SnapshotKey, s)
}

// LoadPartial returns the last partial snapshot.
func (r *Repository) LoadPartial(ctx context.Context) (Entry[model.Snapshot], bool, error) {
	return load[model.Snapshot](ctx, r, "load_partial", PartialKey)
}

// SavePartial replaces the stored partial snapshot.
func (r *Repository) SavePartial(ctx context.Context, s model.Snapshot) error {
	return save(ctx, r, "save_partial", PartialKey, s)
}

// LoadCheckpoint returns the persisted scan checkpoint.
func (r *Repository) LoadCheckpoint(ctx context.Context) (model.ScanCheckpoint, bool, error) {
	e, ok, err := load[model.ScanCheckpoint](ctx, r, "load_checkpoint", CheckpointKey)
	if err != nil || !ok {
		return model.NewScanCheckpoint(), ok, err
	}
	cp := e.Payload
	if cp.Addresses == nil {
		cp.Addresses = model.NewAddressSet()
	}
	return cp, true, nil
}

// SaveCheckpoint stores scan progress.
func (r *Repository) SaveCheckpoint(ctx context.Context, cp model.ScanCheckpoint) error {
	return save(ctx, r, "save_checkpoint", CheckpointKey, cp)
}

// Ping reports whether the backing store is reachable.
func (r *Repository) Ping(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("ping", err, started)
	}()
	return r.store.Ping(ctx)
}

func load[T any](ctx context.Context, r *Repository, op, key string) (entry Entry[T], ok bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe(op, err, started)
	}()

	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return entry, false, nil
	}
	if err != nil {
		return entry, false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Entry[T]{}, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return entry, true, nil
}

func save[T any](ctx context.Context, r *Repository, op, key string, payload T) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe(op, err, started)
	}()

	raw, err := json.Marshal(Entry[T]{Timestamp: r.now().UTC(), Payload: payload})
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
