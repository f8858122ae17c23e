package model

import "time"

// CacheStatus describes the durable cache backend.
type CacheStatus struct {
	Backend             string `json:"backend"`
	Configured          bool   `json:"configured"`
	Available           bool   `json:"available"`
	LocalCacheAvailable bool   `json:"localCacheAvailable"`
}

// Status annotates a served snapshot so callers can tell live from stale data.
type Status struct {
	Blockchain string      `json:"blockchain"`
	Cache      CacheStatus `json:"cache"`
	Degraded   bool        `json:"degraded"`
	Refreshing bool        `json:"refreshing"`
	Phase      string      `json:"phase"`
	LastUpdate time.Time   `json:"lastUpdate"`
	DataAge    int64       `json:"dataAge"`
}

// Metadata summarizes a snapshot for static consumers.
type Metadata struct {
	TotalMiners      int    `json:"totalMiners"`
	LastScannedBlock uint64 `json:"lastScannedBlock"`
	IsPartialUpdate  bool   `json:"isPartialUpdate"`
}

// View is what the API returns: a snapshot plus status.
type View struct {
	Snapshot
	LastUpdate time.Time `json:"lastUpdate"`
	Metadata   Metadata  `json:"metadata"`
	Status     Status    `json:"status"`
}

// BlockchainStatus renders a connection flag.
func BlockchainStatus(connected bool) string {
	if connected {
		return "connected"
	}
	return "disconnected"
}
