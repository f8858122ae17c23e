// Package bootstrap wires the leaderboard pipeline from command-line options.
package bootstrap

import (
	"time"

	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/service/refresher"
)

// ChainOptions configures RPC access.
type ChainOptions struct {
	RPCURLs        []string      `long:"rpc-url" env:"LEADERBOARD_RPC_URLS" env-delim:"," description:"RPC endpoint, repeatable; tried in order" default:"https://api.mainnet.abs.xyz" default:"https://abstract.drpc.org"`
	Contract       string        `long:"contract" env:"LEADERBOARD_CONTRACT" description:"leaderboard contract address" default:"0x09Ee83D8fA0f3F03f2aefad6a82353c1e5DE5705"`
	Network        string        `long:"network" env:"LEADERBOARD_NETWORK" description:"network label for metrics" default:"abstract"`
	RPS            int           `long:"rpc-rps" env:"LEADERBOARD_RPC_RPS" description:"max RPC requests per second, 0 for unlimited" default:"10"`
	CallTimeout    time.Duration `long:"rpc-call-timeout" env:"LEADERBOARD_RPC_CALL_TIMEOUT" description:"timeout for a single RPC call" default:"20s"`
	ConnectTimeout time.Duration `long:"rpc-connect-timeout" env:"LEADERBOARD_RPC_CONNECT_TIMEOUT" description:"timeout for connecting to one endpoint" default:"10s"`
	ProbeInterval  time.Duration `long:"probe-interval" env:"LEADERBOARD_PROBE_INTERVAL" description:"health probe interval" default:"15s"`
	ProbeTimeout   time.Duration `long:"probe-timeout" env:"LEADERBOARD_PROBE_TIMEOUT" description:"health probe timeout" default:"10s"`
}

// CacheOptions selects and configures the durable cache.
type CacheOptions struct {
	Backend       string        `long:"cache-backend" env:"LEADERBOARD_CACHE_BACKEND" description:"durable cache backend" choice:"leveldb" choice:"redis" choice:"memory" default:"leveldb"`
	LevelDBPath   string        `long:"leveldb-path" env:"LEADERBOARD_LEVELDB_PATH" description:"LevelDB directory" default:"./data/leaderboard"`
	RedisURL      string        `long:"redis-url" env:"LEADERBOARD_REDIS_URL" description:"Redis address or redis:// URL"`
	RedisPassword string        `long:"redis-password" env:"LEADERBOARD_REDIS_PASSWORD" description:"Redis password"`
	RedisDB       int           `long:"redis-db" env:"LEADERBOARD_REDIS_DB" description:"Redis database" default:"0"`
	RedisPrefix   string        `long:"redis-prefix" env:"LEADERBOARD_REDIS_PREFIX" description:"Redis key prefix" default:"minerboard:"`
	RedisTTL      time.Duration `long:"redis-ttl" env:"LEADERBOARD_REDIS_TTL" description:"Redis entry TTL, 0 keeps entries" default:"0"`
	LocalEntries  int           `long:"local-cache-entries" env:"LEADERBOARD_LOCAL_CACHE_ENTRIES" description:"in-memory mirror size" default:"64"`
}

// PipelineOptions tunes scanning, fetching and refresh cadence.
type PipelineOptions struct {
	StartBlock       uint64        `long:"start-block" env:"LEADERBOARD_START_BLOCK" description:"first block to scan" default:"0"`
	ChunkSize        uint64        `long:"chunk-size" env:"LEADERBOARD_CHUNK_SIZE" description:"blocks per event query window" default:"604800"`
	MaxWindowSplits  int           `long:"max-window-splits" env:"LEADERBOARD_MAX_WINDOW_SPLITS" description:"how many times a refused window may be halved" default:"6"`
	CheckpointEvery  int           `long:"checkpoint-every" env:"LEADERBOARD_CHECKPOINT_EVERY" description:"persist scan checkpoint every N new addresses" default:"100"`
	PartialThreshold int           `long:"partial-threshold" env:"LEADERBOARD_PARTIAL_THRESHOLD" description:"publish partial snapshots above this many addresses" default:"500"`
	MinRetryInterval time.Duration `long:"min-retry-interval" env:"LEADERBOARD_MIN_RETRY_INTERVAL" description:"minimum time between refresh attempts" default:"30s"`
	FreshnessWindow  time.Duration `long:"freshness-window" env:"LEADERBOARD_FRESHNESS_WINDOW" description:"data younger than this is not refreshed" default:"5m"`
	CacheMaxAge      time.Duration `long:"cache-max-age" env:"LEADERBOARD_CACHE_MAX_AGE" description:"cached data older than this is not served" default:"24h"`
	RefreshInterval  time.Duration `long:"refresh-interval" env:"LEADERBOARD_REFRESH_INTERVAL" description:"periodic refresh interval" default:"2m"`
}

// RefresherConfig converts the options for the refresh service.
func (o PipelineOptions) RefresherConfig() refresher.Config {
	return refresher.Config{
		StartBlock:       o.StartBlock,
		ChunkSize:        o.ChunkSize,
		MaxWindowSplits:  o.MaxWindowSplits,
		CheckpointEvery:  o.CheckpointEvery,
		PartialThreshold: o.PartialThreshold,
		MinRetryInterval: o.MinRetryInterval,
		FreshnessWindow:  o.FreshnessWindow,
		CacheMaxAge:      o.CacheMaxAge,
		RefreshInterval:  o.RefreshInterval,
	}
}
