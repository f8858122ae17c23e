package refresher

import (
	"time"

	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
)

var placeholderMiners = []struct {
	address  string
	hashrate uint64
}{
	{"0x1234567890123456789012345678901234567890", 1_000_000},
	{"0x2345678901234567890123456789012345678901", 750_000},
	{"0x3456789012345678901234567890123456789012", 500_000},
	{"0x4567890123456789012345678901234567890123", 250_000},
	{"0x5678901234567890123456789012345678901234", 100_000},
}

// Placeholder returns the synthetic leaderboard served when neither the chain
// nor the cache can provide data.
func Placeholder(now time.Time) model.Snapshot {
	miners := make([]model.MinerRecord, len(placeholderMiners))
	for i, m := range placeholderMiners {
		miners[i] = model.MinerRecord{
			Address:  model.Address(m.address),
			Hashrate: model.HashrateFromUint64(m.hashrate),
			Rank:     i + 1,
		}
	}
	return model.Snapshot{
		Miners:        miners,
		TotalHashrate: model.HashrateFromUint64(2_600_000),
		GeneratedAt:   now.UTC(),
		Source:        model.SourcePlaceholder,
	}
}
