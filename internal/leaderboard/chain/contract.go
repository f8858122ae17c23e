// Package chain reads the leaderboard contract over EVM JSON-RPC.
package chain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
)

const (
	// ParticipantJoinedEvent is emitted once per address on its first facility purchase.
	ParticipantJoinedEvent = "InitialFacilityPurchased(address)"

	PlayerHashrateMethod = "playerHashrate(address)"
	MinersMethod         = "miners(address)"
	TotalHashrateMethod  = "totalHashrate()"
	LeaderboardMethod    = "getLeaderboard()"
	TopMinersMethod      = "getTopMiners(uint256)"

	abiWordSize = 32
)

var (
	addressType, _ = abi.NewType("address", "", nil)
	uint256Type, _ = abi.NewType("uint256", "", nil)
	// MinerInfo[] as returned by getLeaderboard() and getTopMiners(uint256)
	minerInfoListType, _ = abi.NewType("tuple[]", "", []abi.ArgumentMarshaling{
		{Name: "miner", Type: "address"},
		{Name: "hashrate", Type: "uint256"},
	})

	participantJoinedTopic = crypto.Keccak256Hash([]byte(ParticipantJoinedEvent))
)

// ParticipantJoinedTopic returns topic0 of the participant-joined event.
func ParticipantJoinedTopic() common.Hash {
	return participantJoinedTopic
}

func selector(signature string) []byte {
	h := crypto.Keccak256Hash([]byte(signature))
	out := make([]byte, 4)
	copy(out, h[:4])
	return out
}

func encodeCall(signature string, args ...common.Address) ([]byte, error) {
	calldata := selector(signature)
	if len(args) == 0 {
		return calldata, nil
	}
	arguments := make(abi.Arguments, len(args))
	values := make([]interface{}, len(args))
	for i, a := range args {
		arguments[i] = abi.Argument{Type: addressType}
		values[i] = a
	}
	packed, err := arguments.Pack(values...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", signature, err)
	}
	return append(calldata, packed...), nil
}

// decodeUint256 reads the first return word. Accessors returning a struct,
// such as miners(address), carry the hashrate in that word.
func decodeUint256(bs []byte) (*big.Int, error) {
	if len(bs) < abiWordSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortResult, len(bs))
	}
	res, err := abi.Arguments{{Type: uint256Type}}.UnpackValues(bs[:abiWordSize])
	if err != nil {
		return nil, err
	}
	v, ok := res[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected uint256 type %T", res[0])
	}
	return v, nil
}

func encodeTopMiners(count uint64) ([]byte, error) {
	packed, err := abi.Arguments{{Type: uint256Type}}.Pack(new(big.Int).SetUint64(count))
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", TopMinersMethod, err)
	}
	return append(selector(TopMinersMethod), packed...), nil
}

type minerInfo struct {
	Miner    common.Address
	Hashrate *big.Int
}

// decodeMinerInfos unpacks a MinerInfo[] return value in contract order.
func decodeMinerInfos(bs []byte) ([]model.AddressHashrate, error) {
	res, err := abi.Arguments{{Type: minerInfoListType}}.Unpack(bs)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, errors.New("empty miner list result")
	}
	rows, ok := abi.ConvertType(res[0], new([]minerInfo)).(*[]minerInfo)
	if !ok {
		return nil, fmt.Errorf("unexpected miner list type %T", res[0])
	}
	out := make([]model.AddressHashrate, 0, len(*rows))
	for _, r := range *rows {
		out = append(out, model.AddressHashrate{
			Address:  model.NewAddress(r.Miner),
			Hashrate: model.NewHashrate(r.Hashrate),
		})
	}
	return out, nil
}
