// Package rpcpool keeps a live JSON-RPC connection across a rotating list of
// endpoints and tracks its health with hysteresis.
package rpcpool

import "sync"

const (
	// MaxHealth caps the health counter.
	MaxHealth = 5
	// ConnectedThreshold is the health at or above which the connection counts as up.
	ConnectedThreshold = 2
)

// StateSnapshot is a point-in-time copy of State.
type StateSnapshot struct {
	Connected     bool
	Health        int
	EndpointIndex int
}

// State is the process-wide connection state. Only the pool, the monitor and
// the hashrate fetcher's error path mutate it.
type State struct {
	mu            sync.RWMutex
	connected     bool
	health        int
	endpointIndex int
}

// NewState returns a disconnected state pointing at the first endpoint.
func NewState() *State {
	return &State{}
}

// ProbeSucceeded raises health by one and reports whether the connection is up.
func (s *State) ProbeSucceeded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.health < MaxHealth {
		s.health++
	}
	if s.health >= ConnectedThreshold {
		s.connected = true
	}
	return s.connected
}

// ProbeFailed lowers health by one and reports whether the connection is still up.
func (s *State) ProbeFailed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decrementLocked()
}

// Penalize lowers health for repeated read failures the probe has not seen yet.
func (s *State) Penalize() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decrementLocked()
}

func (s *State) decrementLocked() bool {
	if s.health > 0 {
		s.health--
	}
	if s.health < ConnectedThreshold {
		s.connected = false
	}
	return s.connected
}

// MarkConnected records a verified connect to endpoint index. Health is lifted
// to one below the threshold, so a passing probe or read must still confirm
// the endpoint before it counts as connected. Higher health is kept.
func (s *State) MarkConnected(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endpointIndex = index
	if s.health < ConnectedThreshold-1 {
		s.health = ConnectedThreshold - 1
	}
	s.connected = s.health >= ConnectedThreshold
}

// MarkDisconnected records a total connection loss.
func (s *State) MarkDisconnected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.health = 0
	s.connected = false
}

// Connected reports whether the connection is up.
func (s *State) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// Health returns the current health counter.
func (s *State) Health() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.health
}

// EndpointIndex returns the index of the last endpoint that connected.
func (s *State) EndpointIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.endpointIndex
}

// Snapshot copies the state.
func (s *State) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StateSnapshot{
		Connected:     s.connected,
		Health:        s.health,
		EndpointIndex: s.endpointIndex,
	}
}
