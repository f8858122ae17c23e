// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned by WithTimeout when the operation outlives its budget.
var ErrTimeout = errors.New("operation timed out")

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WithTimeout runs op with a derived deadline and races it against a timer,
// so a call that ignores its context still cannot hang the caller.
func WithTimeout[T any](ctx context.Context, d time.Duration, op func(context.Context) (T, error)) (T, error) {
	return WithTimeoutRelease(ctx, d, op, nil)
}

// WithTimeoutRelease is WithTimeout for results that hold resources. A value
// op returns successfully after the caller gave up is handed to release.
func WithTimeoutRelease[T any](ctx context.Context, d time.Duration, op func(context.Context) (T, error), release func(T)) (T, error) {
	var zero T
	if d <= 0 {
		return op(ctx)
	}

	opCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := op(opCtx)
		done <- result{val: v, err: err}
	}()

	select {
	case r := <-done:
		return r.val, r.err
	case <-opCtx.Done():
		if release != nil {
			go func() {
				if r := <-done; r.err == nil {
					release(r.val)
				}
			}()
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, fmt.Errorf("%w after %s", ErrTimeout, d)
	}
}

// Now is the wall clock; components keep it as a field so tests can freeze time.
func Now() time.Time {
	return time.Now()
}
