package refresher

import (
	"context"
	"math/big"
	"time"

	"github.com/goodnatureofminers/minerboard-backend/internal/kvstore"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/repository"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	EventSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		ParticipantAddresses(ctx context.Context, from, to uint64) ([]model.Address, error)
	}
	HashrateSource interface {
		ReadHashrate(ctx context.Context, addr model.Address) (*big.Int, error)
		TotalHashrate(ctx context.Context) (*big.Int, error)
	}
	RosterSource interface {
		Roster(ctx context.Context, limit uint64) ([]model.AddressHashrate, error)
	}
	ConnectionState interface {
		Connected() bool
		Penalize() bool
		ProbeSucceeded() bool
	}
	CacheRepository interface {
		LoadSnapshot(ctx context.Context) (repository.Entry[model.Snapshot], bool, error)
		SaveSnapshot(ctx context.Context, s model.Snapshot) error
		LoadPartial(ctx context.Context) (repository.Entry[model.Snapshot], bool, error)
		SavePartial(ctx context.Context, s model.Snapshot) error
		LoadCheckpoint(ctx context.Context) (model.ScanCheckpoint, bool, error)
		SaveCheckpoint(ctx context.Context, cp model.ScanCheckpoint) error
	}
	CacheStatusProvider interface {
		Status() kvstore.Status
	}
	Metrics interface {
		ObserveScan(err error, newAddresses, skippedWindows int, started time.Time)
		ObserveFetch(err error, addresses, failed int, started time.Time)
		ObserveBatch(size int, delay time.Duration, successRate float64)
		ObserveRefresh(source string, miners int, err error, started time.Time)
	}
)
