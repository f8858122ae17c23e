package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
)

var errNegativeHashrate = errors.New("hashrate must not be negative")

// Hashrate is a non-negative arbitrary-precision integer encoded as a decimal string.
// The zero value is 0.
type Hashrate struct {
	v *big.Int
}

// NewHashrate wraps a big integer. Nil or negative values become 0.
func NewHashrate(v *big.Int) Hashrate {
	if v == nil || v.Sign() < 0 {
		return Hashrate{}
	}
	return Hashrate{v: new(big.Int).Set(v)}
}

// HashrateFromUint64 builds a Hashrate from a native integer.
func HashrateFromUint64(v uint64) Hashrate {
	return Hashrate{v: new(big.Int).SetUint64(v)}
}

// ParseHashrate parses a base-10 string.
func ParseHashrate(s string) (Hashrate, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Hashrate{}, fmt.Errorf("parse hashrate %q: not a decimal integer", s)
	}
	if v.Sign() < 0 {
		return Hashrate{}, fmt.Errorf("parse hashrate %q: %w", s, errNegativeHashrate)
	}
	return Hashrate{v: v}, nil
}

// MustParseHashrate is ParseHashrate for constants.
func MustParseHashrate(s string) Hashrate {
	h, err := ParseHashrate(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Big returns a copy of the underlying value.
func (h Hashrate) Big() *big.Int {
	if h.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(h.v)
}

// Cmp compares numerically.
func (h Hashrate) Cmp(o Hashrate) int {
	return h.Big().Cmp(o.Big())
}

// Add returns h+o.
func (h Hashrate) Add(o Hashrate) Hashrate {
	return Hashrate{v: new(big.Int).Add(h.Big(), o.Big())}
}

// IsZero reports whether the value is 0.
func (h Hashrate) IsZero() bool {
	return h.v == nil || h.v.Sign() == 0
}

func (h Hashrate) String() string {
	if h.v == nil {
		return "0"
	}
	return h.v.String()
}

// MarshalJSON encodes the value as a JSON string.
func (h Hashrate) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON accepts a decimal string or a bare JSON integer.
func (h *Hashrate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n json.Number
		if numErr := json.Unmarshal(data, &n); numErr != nil {
			return err
		}
		s = n.String()
	}
	parsed, err := ParseHashrate(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// SumHashrates adds all values with arbitrary precision.
func SumHashrates(values ...Hashrate) Hashrate {
	total := new(big.Int)
	for _, v := range values {
		if v.v != nil {
			total.Add(total, v.v)
		}
	}
	return Hashrate{v: total}
}
