package refresher

import "time"

const (
	DefaultChunkSize        uint64 = 604_800
	DefaultMaxWindowSplits         = 6
	DefaultCheckpointEvery         = 100
	DefaultPartialThreshold        = 500

	DefaultMinRetryInterval = 30 * time.Second
	DefaultFreshnessWindow  = 5 * time.Minute
	DefaultCacheMaxAge      = 24 * time.Hour
	DefaultRefreshInterval  = 2 * time.Minute
)

const (
	windowAttempts   = 3
	windowRetryDelay = 2 * time.Second

	readAttempts   = 5
	readRetryDelay = time.Second

	initialBatchSize  = 10
	initialBatchDelay = time.Second
	minBatchSize      = 5
	maxBatchSize      = 50
	minBatchDelay     = 100 * time.Millisecond
	maxBatchDelay     = 10 * time.Second
	goodLatency       = 2 * time.Second
	poorLatency       = 8 * time.Second
	largeAddressSet   = 1000
	addressesPerBatch = 40

	consecutiveErrorThreshold = 3

	partialFlushSize     = 100
	partialFlushInterval = 5 * time.Second
	partialFlushRPS      = 1

	rosterLimit = 1000
)
