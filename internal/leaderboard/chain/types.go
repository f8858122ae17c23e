package chain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Client is the part of the EVM JSON-RPC surface the leaderboard reads.
	// *ethclient.Client satisfies it.
	Client interface {
		BlockNumber(ctx context.Context) (uint64, error)
		FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
		CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
		Close()
	}
	// ClientProvider hands out the currently connected client.
	ClientProvider interface {
		Client(ctx context.Context) (Client, error)
	}
	// AddressReader reads the hashrate of a single participant through one contract accessor.
	AddressReader interface {
		Name() string
		Hashrate(ctx context.Context, addr model.Address) (*big.Int, error)
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
