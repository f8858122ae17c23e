package rpcpool

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerboard-backend/internal/clock"
)

// Monitor probes the live connection on a fixed interval and reconnects when
// health runs out.
type Monitor struct {
	pool         Connector
	state        *State
	interval     time.Duration
	probeTimeout time.Duration
	metrics      MonitorMetrics
	logger       *zap.Logger
	sleep        func(context.Context, time.Duration) error
}

// NewMonitor creates a Monitor.
func NewMonitor(pool Connector, state *State, interval, probeTimeout time.Duration, metrics MonitorMetrics, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	if probeTimeout <= 0 {
		probeTimeout = DefaultProbeTimeout
	}
	return &Monitor{
		pool:         pool,
		state:        state,
		interval:     interval,
		probeTimeout: probeTimeout,
		metrics:      metrics,
		logger:       logger.Named("health_monitor"),
		sleep:        clock.SleepWithContext,
	}
}

// Run probes until ctx is done.
func (m *Monitor) Run(ctx context.Context) error {
	for {
		m.Probe(ctx)
		if err := m.sleep(ctx, m.interval); err != nil {
			return err
		}
	}
}

// Probe runs a single liveness check and returns whether the connection is up afterwards.
func (m *Monitor) Probe(ctx context.Context) bool {
	started := time.Now()

	client := m.pool.Current()
	if client == nil {
		// Connect records the outcome on the state itself.
		_, err := m.pool.Connect(ctx)
		m.metrics.ObserveProbe(err, started)
		if err != nil {
			m.logger.Warn("connect failed", zap.Error(err))
		}
		return m.observeHealth()
	}

	_, err := clock.WithTimeout(ctx, m.probeTimeout, client.BlockNumber)
	m.metrics.ObserveProbe(err, started)

	was := m.state.Connected()
	if err != nil {
		now := m.state.ProbeFailed()
		if was && !now {
			m.logger.Warn("rpc connection lost", zap.Int("health", m.state.Health()), zap.Error(err))
		} else {
			m.logger.Debug("probe failed", zap.Int("health", m.state.Health()), zap.Error(err))
		}
	} else if now := m.state.ProbeSucceeded(); now && !was {
		m.logger.Info("rpc connection restored", zap.Int("health", m.state.Health()))
	}

	if m.state.Health() == 0 {
		m.logger.Info("health exhausted; rotating endpoint")
		m.pool.Drop()
		if _, err := m.pool.Connect(ctx); err != nil {
			m.logger.Warn("reconnect failed", zap.Error(err))
		}
	}
	return m.observeHealth()
}

func (m *Monitor) observeHealth() bool {
	snap := m.state.Snapshot()
	m.metrics.ObserveHealth(snap.Connected, snap.Health)
	return snap.Connected
}
