package refresher

import "time"

// Config holds the refresh pipeline tunables.
type Config struct {
	StartBlock       uint64
	ChunkSize        uint64
	MaxWindowSplits  int
	CheckpointEvery  int
	PartialThreshold int
	MinRetryInterval time.Duration
	FreshnessWindow  time.Duration
	CacheMaxAge      time.Duration
	RefreshInterval  time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		ChunkSize:        DefaultChunkSize,
		MaxWindowSplits:  DefaultMaxWindowSplits,
		CheckpointEvery:  DefaultCheckpointEvery,
		PartialThreshold: DefaultPartialThreshold,
		MinRetryInterval: DefaultMinRetryInterval,
		FreshnessWindow:  DefaultFreshnessWindow,
		CacheMaxAge:      DefaultCacheMaxAge,
		RefreshInterval:  DefaultRefreshInterval,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ChunkSize == 0 {
		c.ChunkSize = d.ChunkSize
	}
	if c.MaxWindowSplits < 0 {
		c.MaxWindowSplits = 0
	}
	if c.CheckpointEvery <= 0 {
		c.CheckpointEvery = d.CheckpointEvery
	}
	if c.PartialThreshold <= 0 {
		c.PartialThreshold = d.PartialThreshold
	}
	if c.MinRetryInterval < 0 {
		c.MinRetryInterval = 0
	}
	if c.FreshnessWindow < 0 {
		c.FreshnessWindow = 0
	}
	if c.CacheMaxAge <= 0 {
		c.CacheMaxAge = d.CacheMaxAge
	}
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = d.RefreshInterval
	}
	return c
}
