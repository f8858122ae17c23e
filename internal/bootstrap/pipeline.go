package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerboard-backend/internal/kvstore"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/chain"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/repository"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/rpcpool"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/service/refresher"
	"github.com/goodnatureofminers/minerboard-backend/internal/metrics"
)

// Pipeline holds the wired components of one leaderboard process.
type Pipeline struct {
	State   *rpcpool.State
	Pool    *rpcpool.Pool
	Monitor *rpcpool.Monitor
	Cache   *kvstore.Fallback
	Service *refresher.Service
}

// NewPipeline builds every component. Nothing is contacted until the caller
// runs the monitor or the service.
func NewPipeline(chainOpts ChainOptions, cacheOpts CacheOptions, pipelineOpts PipelineOptions, logger *zap.Logger) (*Pipeline, error) {
	if !common.IsHexAddress(chainOpts.Contract) {
		return nil, fmt.Errorf("invalid contract address %q", chainOpts.Contract)
	}
	urls := chainOpts.RPCURLs
	if len(urls) == 0 {
		urls = rpcpool.DefaultEndpoints
	}

	cache, err := OpenCache(cacheOpts, logger.Named("cache"))
	if err != nil {
		return nil, err
	}

	rpcMetrics := metrics.NewRPCClient(chainOpts.Network)
	dial := func(ctx context.Context, url string) (chain.Client, error) {
		c, err := chain.Dial(ctx, url)
		if err != nil {
			return nil, err
		}
		return chain.NewObservedClient(c, rpcMetrics, chainOpts.RPS), nil
	}

	state := rpcpool.NewState()
	pool, err := rpcpool.NewPool(urls, dial, state, chainOpts.ConnectTimeout, logger.Named("pool"))
	if err != nil {
		_ = cache.Close()
		return nil, err
	}
	monitor := rpcpool.NewMonitor(pool, state, chainOpts.ProbeInterval, chainOpts.ProbeTimeout,
		metrics.NewHealthMonitor(chainOpts.Network), logger.Named("monitor"))

	source := chain.NewSource(pool, common.HexToAddress(chainOpts.Contract), chainOpts.CallTimeout)
	repo := repository.New(cache, metrics.NewCacheRepository(cache.Name()))

	svc := refresher.New(refresher.Dependencies{
		Events:      source,
		Hashrates:   source,
		Roster:      source,
		State:       state,
		Cache:       repo,
		CacheStatus: cache,
		Metrics:     metrics.NewRefresher(),
	}, pipelineOpts.RefresherConfig(), logger.Named("refresher"))

	return &Pipeline{
		State:   state,
		Pool:    pool,
		Monitor: monitor,
		Cache:   cache,
		Service: svc,
	}, nil
}

// Close releases the RPC connection and the cache.
func (p *Pipeline) Close() error {
	p.Pool.Close()
	return p.Cache.Close()
}

// OpenCache opens the configured backend behind an in-memory mirror. A
// backend that cannot be opened is logged and the mirror serves alone.
func OpenCache(opts CacheOptions, logger *zap.Logger) (*kvstore.Fallback, error) {
	local, err := kvstore.NewMemory(opts.LocalEntries)
	if err != nil {
		return nil, fmt.Errorf("init local cache: %w", err)
	}

	primary, err := openPrimary(opts)
	if err != nil {
		logger.Warn("durable cache unavailable, using memory only",
			zap.String("backend", opts.Backend),
			zap.Error(err))
		primary = nil
	}
	return kvstore.NewFallback(primary, local, logger), nil
}

var errNoRedisURL = errors.New("redis url is required")

func openPrimary(opts CacheOptions) (kvstore.Store, error) {
	switch opts.Backend {
	case "", "memory":
		return nil, nil
	case "leveldb":
		return kvstore.OpenLevelDB(opts.LevelDBPath)
	case "redis":
		if opts.RedisURL == "" {
			return nil, errNoRedisURL
		}
		return kvstore.NewRedis(kvstore.RedisConfig{
			Addr:     opts.RedisURL,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
			Prefix:   opts.RedisPrefix,
			TTL:      opts.RedisTTL,
		})
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}
