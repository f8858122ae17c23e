package refresher

import (
	"errors"
	"math/big"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
)

// ErrNoMiners means there is nothing to rank.
var ErrNoMiners = errors.New("no miners")

type aggregator struct {
	now    func() time.Time
	logger *zap.Logger
}

// Aggregate ranks entries by hashrate, highest first. Equal hashrates keep the
// order entries were given in. networkTotal is used as the total only when it
// is not below the sum of the entries.
func (a *aggregator) Aggregate(entries []model.AddressHashrate, networkTotal *big.Int) (model.Snapshot, error) {
	if len(entries) == 0 {
		return model.Snapshot{}, ErrNoMiners
	}

	sorted := make([]model.AddressHashrate, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Hashrate.Cmp(sorted[j].Hashrate) > 0
	})

	values := make([]model.Hashrate, len(sorted))
	miners := make([]model.MinerRecord, len(sorted))
	for i, e := range sorted {
		values[i] = e.Hashrate
		miners[i] = model.MinerRecord{Address: e.Address, Hashrate: e.Hashrate, Rank: i + 1}
	}

	total := model.SumHashrates(values...)
	if networkTotal != nil {
		reported := model.NewHashrate(networkTotal)
		if reported.Cmp(total) >= 0 {
			total = reported
		} else {
			a.logger.Warn("reported total hashrate below sum of miners",
				zap.String("reported", reported.String()),
				zap.String("sum", total.String()))
		}
	}

	return model.Snapshot{
		Miners:        miners,
		TotalHashrate: total,
		GeneratedAt:   a.now().UTC(),
		Source:        model.SourceLive,
	}, nil
}
