package kvstore

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
)

// Fallback mirrors every write into a local memory store and serves reads from
// that mirror first, so the process keeps its own latest entries even while
// the primary is down. A nil primary makes it a pure memory cache.
type Fallback struct {
	primary Store
	local   *Memory
	logger  *zap.Logger

	primaryUp atomic.Bool
}

// NewFallback wraps primary, which may be nil.
func NewFallback(primary Store, local *Memory, logger *zap.Logger) *Fallback {
	f := &Fallback{
		primary: primary,
		local:   local,
		logger:  logger.Named("kvstore"),
	}
	f.primaryUp.Store(primary != nil)
	return f
}

func (f *Fallback) Name() string {
	if f.primary == nil {
		return f.local.Name()
	}
	return f.primary.Name()
}

// Get prefers the local mirror, then the primary. Primary errors other than
// ErrNotFound are logged and reported as ErrNotFound.
func (f *Fallback) Get(ctx context.Context, key string) ([]byte, error) {
	if v, err := f.local.Get(ctx, key); err == nil {
		return v, nil
	}
	if f.primary == nil {
		return nil, ErrNotFound
	}

	v, err := f.primary.Get(ctx, key)
	switch {
	case err == nil:
		f.markPrimary(true, nil)
		_ = f.local.Set(ctx, key, v)
		return v, nil
	case errors.Is(err, ErrNotFound):
		f.markPrimary(true, nil)
		return nil, ErrNotFound
	default:
		f.markPrimary(false, err)
		return nil, ErrNotFound
	}
}

// Set always lands in the local mirror. A primary failure is logged and
// returned so callers can count it, but the value is still readable.
func (f *Fallback) Set(ctx context.Context, key string, value []byte) error {
	_ = f.local.Set(ctx, key, value)
	if f.primary == nil {
		return nil
	}
	if err := f.primary.Set(ctx, key, value); err != nil {
		f.markPrimary(false, err)
		return err
	}
	f.markPrimary(true, nil)
	return nil
}

// Ping checks the primary; with no primary the mirror answers.
func (f *Fallback) Ping(ctx context.Context) error {
	if f.primary == nil {
		return nil
	}
	err := f.primary.Ping(ctx)
	f.markPrimary(err == nil, err)
	return err
}

// Status reports the boundary state without touching the network.
func (f *Fallback) Status() Status {
	return Status{
		Backend:             f.Name(),
		Configured:          f.primary != nil,
		Available:           f.primary != nil && f.primaryUp.Load(),
		LocalCacheAvailable: f.local.Len() > 0,
	}
}

// Close closes the primary and drops the mirror.
func (f *Fallback) Close() error {
	var err error
	if f.primary != nil {
		err = f.primary.Close()
	}
	return errors.Join(err, f.local.Close())
}

func (f *Fallback) markPrimary(up bool, err error) {
	was := f.primaryUp.Swap(up)
	switch {
	case was && !up:
		f.logger.Warn("cache backend unavailable; serving local mirror",
			zap.String("backend", f.primary.Name()), zap.Error(err))
	case !was && up:
		f.logger.Info("cache backend available", zap.String("backend", f.primary.Name()))
	}
}
