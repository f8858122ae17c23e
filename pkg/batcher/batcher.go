// Package batcher groups streamed items into batches and hands them to a sink
// at a bounded rate.
package batcher

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config controls when a batch is flushed.
type Config struct {
	// Size flushes as soon as this many items are buffered.
	Size int
	// Interval flushes whatever is buffered on every tick.
	Interval time.Duration
	// RPS caps how many flushes per second reach the sink.
	RPS int
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	sink   func(context.Context, []T) error
	items  chan T
	cfg    Config
	rl     ratelimit.Limiter
	logger *zap.Logger

	flushed atomic.Int64
	failed  atomic.Int64

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. Zero config values fall back to one-item batches,
// a one second interval and an unlimited flush rate.
func New[T any](logger *zap.Logger, cfg Config, sink func(context.Context, []T) error) *Batcher[T] {
	if cfg.Size <= 0 {
		cfg.Size = 1
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}
	return &Batcher[T]{
		logger: logger,
		sink:   sink,
		items:  make(chan T, cfg.Size*2),
		cfg:    cfg,
		rl:     rl,
		stop:   make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Close stops accepting items, flushes everything already queued and waits for
// the loop to exit. It is safe to call more than once.
func (b *Batcher[T]) Close() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return context.Canceled
	case b.items <- item:
		return nil
	}
}

// Flushed reports how many batches the sink accepted.
func (b *Batcher[T]) Flushed() int64 { return b.flushed.Load() }

// Failed reports how many batches the sink rejected.
func (b *Batcher[T]) Failed() int64 { return b.failed.Load() }

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.Size)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		// the sink may keep the slice
		batch := make([]T, len(buf))
		copy(batch, buf)
		buf = buf[:0]

		if err := b.sink(ctx, batch); err != nil {
			b.failed.Add(1)
			b.logger.Warn("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
			return
		}
		b.flushed.Add(1)
		b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
	}

	drain := func(ctx context.Context) {
		for {
			select {
			case item := <-b.items:
				buf = append(buf, item)
				if len(buf) >= b.cfg.Size {
					flush(ctx)
				}
			default:
				flush(ctx)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			// final flush must still reach the sink
			drain(context.WithoutCancel(ctx))
			return

		case <-b.stop:
			drain(ctx)
			return

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.Size {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
