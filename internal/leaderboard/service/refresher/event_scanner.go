package refresher

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/chain"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
	"github.com/goodnatureofminers/minerboard-backend/pkg/retry"
)

type checkpointStore interface {
	SaveCheckpoint(ctx context.Context, cp model.ScanCheckpoint) error
}

// ScanResult reports what a scan added on top of the checkpoint it started from.
type ScanResult struct {
	Checkpoint     model.ScanCheckpoint
	Head           uint64
	NewAddresses   int
	Windows        int
	SkippedWindows int
}

type eventScanner struct {
	source          EventSource
	store           checkpointStore
	startBlock      uint64
	chunkSize       uint64
	maxSplits       int
	checkpointEvery int
	policy          retry.Policy
	logger          *zap.Logger
}

func newEventScanner(source EventSource, store checkpointStore, cfg Config, sleep func(context.Context, time.Duration) error, logger *zap.Logger) *eventScanner {
	return &eventScanner{
		source:          source,
		store:           store,
		startBlock:      cfg.StartBlock,
		chunkSize:       cfg.ChunkSize,
		maxSplits:       cfg.MaxWindowSplits,
		checkpointEvery: cfg.CheckpointEvery,
		policy: retry.Policy{
			MaxAttempts: windowAttempts,
			Delay:       windowRetryDelay,
			Retryable:   func(err error) bool { return !chain.IsResultLimitError(err) },
			Sleep:       sleep,
		},
		logger: logger,
	}
}

// Scan walks participant events from the checkpoint up to the chain head. The
// returned checkpoint carries whatever progress was made, even on error.
func (s *eventScanner) Scan(ctx context.Context, from model.ScanCheckpoint) (ScanResult, error) {
	cp := from.Clone()
	if cp.Addresses == nil {
		cp.Addresses = model.NewAddressSet()
	}
	res := ScanResult{Checkpoint: cp}

	head, err := s.source.LatestHeight(ctx)
	if err != nil {
		return res, fmt.Errorf("latest height: %w", err)
	}
	res.Head = head

	start := cp.NextBlock(s.startBlock)
	if start > head {
		s.logger.Debug("no new blocks to scan",
			zap.Uint64("last_scanned_block", cp.LastScannedBlock),
			zap.Uint64("head", head))
		return res, nil
	}

	s.logger.Info("scanning participant events",
		zap.Uint64("start_height", start),
		zap.Uint64("target_height", head),
		zap.Int("known_addresses", cp.Addresses.Len()))

	sinceSave := 0
	for lo := start; lo <= head; {
		hi := head
		if head-lo >= s.chunkSize {
			hi = lo + s.chunkSize - 1
		}

		addrs, skipped, err := s.scanWindow(ctx, lo, hi, 0)
		if err != nil {
			s.persist(ctx, cp)
			res.Checkpoint = cp
			return res, err
		}
		res.Windows++
		res.SkippedWindows += skipped
		for _, a := range addrs {
			if cp.Addresses.Add(a) {
				res.NewAddresses++
				sinceSave++
			}
		}
		cp.Advance(hi)

		if sinceSave >= s.checkpointEvery {
			s.persist(ctx, cp)
			sinceSave = 0
		}
		if hi == head {
			break
		}
		lo = hi + 1
	}

	s.persist(ctx, cp)
	res.Checkpoint = cp

	s.logger.Info("participant scan finished",
		zap.Uint64("last_scanned_block", cp.LastScannedBlock),
		zap.Int("new_addresses", res.NewAddresses),
		zap.Int("total_addresses", cp.Addresses.Len()),
		zap.Int("skipped_windows", res.SkippedWindows))
	return res, nil
}

// scanWindow returns the addresses in [from, to]. A window that keeps failing
// is skipped and counted; only context cancellation is returned as an error.
func (s *eventScanner) scanWindow(ctx context.Context, from, to uint64, depth int) ([]model.Address, int, error) {
	addrs, err := retry.Value(ctx, s.policy, func(ctx context.Context, _ int) ([]model.Address, error) {
		return s.source.ParticipantAddresses(ctx, from, to)
	})
	if err == nil {
		return addrs, 0, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, 0, ctxErr
	}

	if chain.IsResultLimitError(err) && depth < s.maxSplits && to > from {
		mid := from + (to-from)/2
		s.logger.Debug("splitting event window",
			zap.Uint64("from", from),
			zap.Uint64("to", to),
			zap.Int("depth", depth+1))

		left, leftSkipped, err := s.scanWindow(ctx, from, mid, depth+1)
		if err != nil {
			return nil, 0, err
		}
		right, rightSkipped, err := s.scanWindow(ctx, mid+1, to, depth+1)
		if err != nil {
			return nil, 0, err
		}
		return append(left, right...), leftSkipped + rightSkipped, nil
	}

	s.logger.Warn("skipping event window",
		zap.Uint64("from", from),
		zap.Uint64("to", to),
		zap.Int("depth", depth),
		zap.Error(err))
	return nil, 1, nil
}

func (s *eventScanner) persist(ctx context.Context, cp model.ScanCheckpoint) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveCheckpoint(context.WithoutCancel(ctx), cp.Clone()); err != nil {
		s.logger.Warn("checkpoint not saved",
			zap.Uint64("last_scanned_block", cp.LastScannedBlock),
			zap.Error(err))
	}
}
