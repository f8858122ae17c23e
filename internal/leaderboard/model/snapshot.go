package model

import "time"

// Source tells where a published snapshot came from.
type Source string

const (
	SourceLive        Source = "live"
	SourcePartial     Source = "partial"
	SourceCache       Source = "cache"
	SourcePlaceholder Source = "placeholder"
)

// AddressHashrate is a single fetched value, kept in discovery order by producers.
type AddressHashrate struct {
	Address  Address
	Hashrate Hashrate
}

// MinerRecord is one leaderboard row. Rank is derived from position.
type MinerRecord struct {
	Address  Address  `json:"address"`
	Hashrate Hashrate `json:"hashrate"`
	Rank     int      `json:"rank"`
}

// Snapshot is an immutable leaderboard result. Publishers replace it as a whole.
type Snapshot struct {
	Miners           []MinerRecord `json:"miners"`
	TotalHashrate    Hashrate      `json:"totalHashrate"`
	GeneratedAt      time.Time     `json:"generatedAt"`
	Partial          bool          `json:"partial"`
	Source           Source        `json:"source"`
	LastScannedBlock uint64        `json:"lastScannedBlock"`
}

// WithSource returns a copy carrying a different source label.
func (s Snapshot) WithSource(src Source) Snapshot {
	miners := make([]MinerRecord, len(s.Miners))
	copy(miners, s.Miners)
	s.Miners = miners
	s.Source = src
	return s
}

// Age returns how old the snapshot is relative to now.
func (s Snapshot) Age(now time.Time) time.Duration {
	if s.GeneratedAt.IsZero() {
		return 0
	}
	return now.Sub(s.GeneratedAt)
}

// IsPlaceholder reports whether the snapshot is synthetic.
func (s Snapshot) IsPlaceholder() bool {
	return s.Source == SourcePlaceholder
}
