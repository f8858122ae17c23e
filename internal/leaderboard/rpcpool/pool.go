package rpcpool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerboard-backend/internal/clock"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/chain"
)

// Pool errors.
var (
	ErrAllEndpointsUnreachable = errors.New("all rpc endpoints unreachable")
	ErrNoEndpoints             = errors.New("no rpc endpoints configured")
)

// Pool owns the single live client and rotates through endpoints on reconnect,
// starting from the last one that worked.
type Pool struct {
	urls           []string
	dial           Dialer
	state          *State
	connectTimeout time.Duration
	logger         *zap.Logger

	mu     sync.Mutex
	client chain.Client
}

// NewPool builds a Pool. The pool does not connect until Connect or Client is called.
func NewPool(urls []string, dial Dialer, state *State, connectTimeout time.Duration, logger *zap.Logger) (*Pool, error) {
	if len(urls) == 0 {
		return nil, ErrNoEndpoints
	}
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	return &Pool{
		urls:           append([]string(nil), urls...),
		dial:           dial,
		state:          state,
		connectTimeout: connectTimeout,
		logger:         logger.Named("rpcpool"),
	}, nil
}

// Connect dials endpoints in rotation until one answers eth_blockNumber.
// Each attempt is bounded by the connect timeout.
func (p *Pool) Connect(ctx context.Context) (chain.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connectLocked(ctx)
}

// Client returns the live client, connecting first if there is none.
func (p *Pool) Client(ctx context.Context) (chain.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		return p.client, nil
	}
	return p.connectLocked(ctx)
}

// Current returns the live client or nil without connecting.
func (p *Pool) Current() chain.Client {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.client
}

// Drop closes the live client so the next Client call reconnects.
func (p *Pool) Drop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		p.client.Close()
		p.client = nil
	}
}

// Endpoint returns the URL of the last endpoint that connected.
func (p *Pool) Endpoint() string {
	return p.urls[p.state.EndpointIndex()%len(p.urls)]
}

// Close releases the live client.
func (p *Pool) Close() {
	p.Drop()
}

func (p *Pool) connectLocked(ctx context.Context) (chain.Client, error) {
	start := p.state.EndpointIndex()
	var lastErr error
	for i := 0; i < len(p.urls); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		idx := (start + i) % len(p.urls)
		url := p.urls[idx]

		client, err := clock.WithTimeoutRelease(ctx, p.connectTimeout,
			func(ctx context.Context) (chain.Client, error) {
				return p.tryEndpoint(ctx, url)
			},
			func(late chain.Client) { late.Close() })
		if err != nil {
			lastErr = err
			p.logger.Warn("rpc endpoint unreachable",
				zap.String("endpoint", url),
				zap.Int("index", idx),
				zap.Error(err))
			continue
		}

		if p.client != nil {
			p.client.Close()
		}
		p.client = client
		p.state.MarkConnected(idx)
		p.logger.Info("connected to rpc endpoint", zap.String("endpoint", url), zap.Int("index", idx))
		return client, nil
	}

	if p.client != nil {
		p.client.Close()
		p.client = nil
	}
	p.state.MarkDisconnected()
	return nil, fmt.Errorf("%w: %w", ErrAllEndpointsUnreachable, lastErr)
}

func (p *Pool) tryEndpoint(ctx context.Context, url string) (chain.Client, error) {
	client, err := p.dial(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	if _, err := client.BlockNumber(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("verify block number: %w", err)
	}
	return client, nil
}
