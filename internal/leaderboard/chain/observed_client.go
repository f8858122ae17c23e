package chain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/ratelimit"
)

// ObservedClient wraps a Client with metrics instrumentation and a request rate cap.
type ObservedClient struct {
	client     Client
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewObservedClient constructs an instrumented client. rps <= 0 disables the rate cap.
func NewObservedClient(client Client, rpcMetrics RPCMetrics, rps int) *ObservedClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

// BlockNumber returns the latest block number.
func (r *ObservedClient) BlockNumber(ctx context.Context) (height uint64, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("block_number", err, started)
	}()
	return r.client.BlockNumber(ctx)
}

// FilterLogs runs an eth_getLogs query.
func (r *ObservedClient) FilterLogs(ctx context.Context, q ethereum.FilterQuery) (logs []types.Log, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("filter_logs", err, started)
	}()
	return r.client.FilterLogs(ctx, q)
}

// CallContract runs an eth_call.
func (r *ObservedClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) (res []byte, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("call_contract", err, started)
	}()
	return r.client.CallContract(ctx, msg, blockNumber)
}

// Close releases the underlying connection.
func (r *ObservedClient) Close() {
	r.client.Close()
}
