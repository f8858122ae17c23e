package refresher

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
)

type partialStore interface {
	SavePartial(ctx context.Context, s model.Snapshot) error
}

// partialPublisher turns streamed fetch results into interim snapshots while a
// large address set is still being read.
type partialPublisher struct {
	agg              *aggregator
	store            partialStore
	promote          func(model.Snapshot)
	lastScannedBlock uint64
	logger           *zap.Logger

	mu     sync.Mutex
	order  []model.Address
	values map[model.Address]model.Hashrate
}

func newPartialPublisher(agg *aggregator, store partialStore, promote func(model.Snapshot), lastScannedBlock uint64, logger *zap.Logger) *partialPublisher {
	return &partialPublisher{
		agg:              agg,
		store:            store,
		promote:          promote,
		lastScannedBlock: lastScannedBlock,
		logger:           logger,
		values:           make(map[model.Address]model.Hashrate),
	}
}

// flush is the batcher sink.
func (p *partialPublisher) flush(ctx context.Context, batch []model.AddressHashrate) error {
	p.mu.Lock()
	for _, e := range batch {
		if _, ok := p.values[e.Address]; !ok {
			p.order = append(p.order, e.Address)
		}
		p.values[e.Address] = e.Hashrate
	}
	entries := make([]model.AddressHashrate, len(p.order))
	for i, a := range p.order {
		entries[i] = model.AddressHashrate{Address: a, Hashrate: p.values[a]}
	}
	p.mu.Unlock()

	snap, err := p.agg.Aggregate(entries, nil)
	if err != nil {
		return err
	}
	snap.Partial = true
	snap.Source = model.SourcePartial
	snap.LastScannedBlock = p.lastScannedBlock

	if p.promote != nil {
		p.promote(snap)
	}
	p.logger.Debug("partial leaderboard built", zap.Int("miners", len(snap.Miners)))
	return p.store.SavePartial(ctx, snap)
}
