// Package model holds the leaderboard domain types shared across the pipeline.
package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Address is a lower-cased, 0x-prefixed 20-byte participant identifier.
type Address string

// ParseAddress validates and normalizes a hex address.
func ParseAddress(raw string) (Address, error) {
	raw = strings.TrimSpace(raw)
	if !common.IsHexAddress(raw) {
		return "", fmt.Errorf("invalid address %q", raw)
	}
	return NewAddress(common.HexToAddress(raw)), nil
}

// NewAddress converts a go-ethereum address into the normalized form.
func NewAddress(a common.Address) Address {
	return Address(strings.ToLower(a.Hex()))
}

// Common returns the go-ethereum representation of the address.
func (a Address) Common() common.Address {
	return common.HexToAddress(string(a))
}

func (a Address) String() string {
	return string(a)
}

// AddressSet is a membership set that remembers discovery order.
// Miners never leave the set once discovered.
type AddressSet struct {
	order []Address
	index map[Address]struct{}
}

// NewAddressSet builds a set from addresses in discovery order, dropping duplicates.
func NewAddressSet(addrs ...Address) *AddressSet {
	s := &AddressSet{index: make(map[Address]struct{}, len(addrs))}
	for _, a := range addrs {
		s.Add(a)
	}
	return s
}

// Add inserts the address and reports whether it was not already present.
func (s *AddressSet) Add(a Address) bool {
	if s.index == nil {
		s.index = make(map[Address]struct{})
	}
	if _, ok := s.index[a]; ok {
		return false
	}
	s.index[a] = struct{}{}
	s.order = append(s.order, a)
	return true
}

// Contains reports set membership.
func (s *AddressSet) Contains(a Address) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[a]
	return ok
}

// Len returns the number of addresses.
func (s *AddressSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Ordered returns a copy of the addresses in discovery order.
func (s *AddressSet) Ordered() []Address {
	if s == nil {
		return nil
	}
	out := make([]Address, len(s.order))
	copy(out, s.order)
	return out
}

// Clone returns an independent copy of the set.
func (s *AddressSet) Clone() *AddressSet {
	if s == nil {
		return NewAddressSet()
	}
	return NewAddressSet(s.order...)
}

// MarshalJSON encodes the set as an array in discovery order.
func (s *AddressSet) MarshalJSON() ([]byte, error) {
	if s == nil || s.order == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.order)
}

// UnmarshalJSON decodes an array of addresses, normalizing each entry.
func (s *AddressSet) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = AddressSet{index: make(map[Address]struct{}, len(raw))}
	for _, r := range raw {
		a, err := ParseAddress(r)
		if err != nil {
			return err
		}
		s.Add(a)
	}
	return nil
}
