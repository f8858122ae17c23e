package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/goodnatureofminers/minerboard-backend/internal/clock"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
)

// Source reads participant events and accessor values of one leaderboard contract.
type Source struct {
	clients  ClientProvider
	contract common.Address
	timeout  time.Duration
}

// NewSource creates a Source. Every RPC call is bounded by timeout.
func NewSource(clients ClientProvider, contract common.Address, timeout time.Duration) *Source {
	return &Source{
		clients:  clients,
		contract: contract,
		timeout:  timeout,
	}
}

// Dial opens an ethclient connection to url.
func Dial(ctx context.Context, url string) (Client, error) {
	c, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// LatestHeight returns the current chain head.
func (s *Source) LatestHeight(ctx context.Context) (uint64, error) {
	client, err := s.clients.Client(ctx)
	if err != nil {
		return 0, err
	}
	height, err := clock.WithTimeout(ctx, s.timeout, client.BlockNumber)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return height, nil
}

// ParticipantAddresses returns the indexed player of every participant-joined
// log in [from, to], in log order. Duplicates are kept.
func (s *Source) ParticipantAddresses(ctx context.Context, from, to uint64) ([]model.Address, error) {
	if from > to {
		return nil, fmt.Errorf("invalid block range %d-%d", from, to)
	}
	client, err := s.clients.Client(ctx)
	if err != nil {
		return nil, err
	}

	query := ethereum.FilterQuery{
		Addresses: []common.Address{s.contract},
		Topics:    [][]common.Hash{{participantJoinedTopic}},
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
	}
	logs, err := clock.WithTimeout(ctx, s.timeout, func(ctx context.Context) ([]types.Log, error) {
		return client.FilterLogs(ctx, query)
	})
	if err != nil {
		return nil, fmt.Errorf("filter logs %d-%d: %w", from, to, classify(err))
	}

	out := make([]model.Address, 0, len(logs))
	for _, l := range logs {
		if l.Removed || len(l.Topics) < 2 {
			continue
		}
		out = append(out, model.NewAddress(common.BytesToAddress(l.Topics[1].Bytes())))
	}
	return out, nil
}

// TotalHashrate calls the contract-wide totalHashrate() accessor.
func (s *Source) TotalHashrate(ctx context.Context) (*big.Int, error) {
	return s.callUint256(ctx, TotalHashrateMethod)
}

// ReadHashrate reads addr through the accessors in preference order.
func (s *Source) ReadHashrate(ctx context.Context, addr model.Address) (*big.Int, error) {
	v, _, err := ReadFirst(ctx, s.Readers(), addr)
	return v, err
}

// Readers returns the per-address accessors in preference order.
func (s *Source) Readers() []AddressReader {
	return []AddressReader{
		&methodReader{source: s, method: PlayerHashrateMethod},
		&methodReader{source: s, method: MinersMethod},
	}
}

// Roster returns the miners the contract lists itself: getLeaderboard(), or
// getTopMiners(limit) when that reverts. The list may lag the event log, so it
// only adds to what scanning finds.
func (s *Source) Roster(ctx context.Context, limit uint64) ([]model.AddressHashrate, error) {
	rows, err := s.callMinerList(ctx, LeaderboardMethod, selector(LeaderboardMethod))
	if err == nil {
		return rows, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	data, encErr := encodeTopMiners(limit)
	if encErr != nil {
		return nil, encErr
	}
	rows, topErr := s.callMinerList(ctx, TopMinersMethod, data)
	if topErr != nil {
		return nil, errors.Join(err, topErr)
	}
	return rows, nil
}

func (s *Source) callMinerList(ctx context.Context, method string, data []byte) ([]model.AddressHashrate, error) {
	bs, err := s.call(ctx, method, data)
	if err != nil {
		return nil, err
	}
	rows, err := decodeMinerInfos(bs)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", method, err)
	}
	return rows, nil
}

func (s *Source) callUint256(ctx context.Context, method string, args ...common.Address) (*big.Int, error) {
	data, err := encodeCall(method, args...)
	if err != nil {
		return nil, err
	}
	bs, err := s.call(ctx, method, data)
	if err != nil {
		return nil, err
	}
	v, err := decodeUint256(bs)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", method, err)
	}
	return v, nil
}

func (s *Source) call(ctx context.Context, method string, data []byte) ([]byte, error) {
	client, err := s.clients.Client(ctx)
	if err != nil {
		return nil, err
	}
	msg := ethereum.CallMsg{To: &s.contract, Data: data}

	bs, err := clock.WithTimeout(ctx, s.timeout, func(ctx context.Context) ([]byte, error) {
		return client.CallContract(ctx, msg, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	return bs, nil
}

type methodReader struct {
	source *Source
	method string
}

func (r *methodReader) Name() string { return r.method }

func (r *methodReader) Hashrate(ctx context.Context, addr model.Address) (*big.Int, error) {
	return r.source.callUint256(ctx, r.method, addr.Common())
}

// ReadFirst walks readers in order and returns the first successful value and
// the name of the reader that produced it.
func ReadFirst(ctx context.Context, readers []AddressReader, addr model.Address) (*big.Int, string, error) {
	if len(readers) == 0 {
		return nil, "", errors.New("no hashrate readers configured")
	}
	var errs []error
	for _, r := range readers {
		v, err := r.Hashrate(ctx, addr)
		if err == nil {
			return v, r.Name(), nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, "", ctxErr
		}
		errs = append(errs, fmt.Errorf("%s: %w", r.Name(), err))
	}
	return nil, "", errors.Join(errs...)
}
