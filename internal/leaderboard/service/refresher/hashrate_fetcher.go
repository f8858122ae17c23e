package refresher

import (
	"context"
	"errors"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
	"github.com/goodnatureofminers/minerboard-backend/pkg/retry"
	"github.com/goodnatureofminers/minerboard-backend/pkg/workerpool"
)

// ErrConnectionLost is returned when the RPC connection drops between batches.
var ErrConnectionLost = errors.New("rpc connection lost")

type resultSink interface {
	Add(ctx context.Context, item model.AddressHashrate) error
}

// FetchResult holds one entry per requested address, in request order.
type FetchResult struct {
	Entries   []model.AddressHashrate
	Succeeded int
	Failed    int
}

type hashrateFetcher struct {
	source  HashrateSource
	state   ConnectionState
	metrics Metrics
	policy  retry.Policy
	sleep   func(context.Context, time.Duration) error
	logger  *zap.Logger
}

func newHashrateFetcher(source HashrateSource, state ConnectionState, metrics Metrics, sleep func(context.Context, time.Duration) error, logger *zap.Logger) *hashrateFetcher {
	return &hashrateFetcher{
		source:  source,
		state:   state,
		metrics: metrics,
		policy: retry.Policy{
			MaxAttempts: readAttempts,
			Delay:       readRetryDelay,
			Sleep:       sleep,
		},
		sleep:  sleep,
		logger: logger,
	}
}

// Fetch reads the hashrate of every address. Addresses that could not be read
// keep a zero value. Results are also streamed to sink when it is not nil.
func (f *hashrateFetcher) Fetch(ctx context.Context, addrs []model.Address, sink resultSink) (FetchResult, error) {
	res := FetchResult{Entries: make([]model.AddressHashrate, len(addrs))}
	for i, a := range addrs {
		res.Entries[i] = model.AddressHashrate{Address: a}
	}
	if len(addrs) == 0 {
		return res, nil
	}

	tuner := newBatchTuner(len(addrs))
	consecutive := 0

	for start := 0; start < len(addrs); {
		if start > 0 {
			if !f.state.Connected() {
				res.Failed += len(addrs) - start
				f.logger.Warn("connection lost during hashrate fetch",
					zap.Int("fetched", start),
					zap.Int("remaining", len(addrs)-start))
				return res, ErrConnectionLost
			}
			if err := f.sleep(ctx, tuner.delay); err != nil {
				res.Failed += len(addrs) - start
				return res, err
			}
		}

		end := min(start+tuner.size, len(addrs))
		batch := addrs[start:end]

		started := time.Now()
		values, errs := workerpool.Map(ctx, len(batch), batch, f.read)
		latency := time.Since(started)

		ok := 0
		for i := range batch {
			entry := &res.Entries[start+i]
			if errs[i] == nil {
				entry.Hashrate = model.NewHashrate(values[i])
				ok++
				consecutive = 0
			} else {
				res.Failed++
				consecutive++
				f.logger.Debug("hashrate read failed",
					zap.String("address", entry.Address.String()),
					zap.Error(errs[i]))
				if consecutive >= consecutiveErrorThreshold {
					connected := f.state.Penalize()
					consecutive = 0
					f.logger.Warn("consecutive hashrate read failures",
						zap.Int("threshold", consecutiveErrorThreshold),
						zap.Bool("connected", connected))
				}
			}
			if sink != nil {
				if err := sink.Add(ctx, *entry); err != nil {
					f.logger.Debug("partial result not queued", zap.Error(err))
				}
			}
		}
		res.Succeeded += ok

		rate := tuner.observe(ok, len(batch), latency)
		if f.metrics != nil {
			f.metrics.ObserveBatch(tuner.size, tuner.delay, rate)
		}
		f.logger.Debug("hashrate batch done",
			zap.Int("from", start),
			zap.Int("size", len(batch)),
			zap.Float64("success_rate", rate),
			zap.Duration("latency", latency),
			zap.Int("next_size", tuner.size),
			zap.Duration("next_delay", tuner.delay))

		start = end
		if err := ctx.Err(); err != nil {
			res.Failed += len(addrs) - start
			return res, err
		}
	}

	return res, nil
}

func (f *hashrateFetcher) read(ctx context.Context, addr model.Address) (*big.Int, error) {
	return retry.Value(ctx, f.policy, func(ctx context.Context, _ int) (*big.Int, error) {
		return f.source.ReadHashrate(ctx, addr)
	})
}
