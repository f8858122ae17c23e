package rpcpool

import (
	"context"
	"time"

	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/chain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Connector is the part of Pool the monitor drives.
	Connector interface {
		Current() chain.Client
		Connect(ctx context.Context) (chain.Client, error)
		Drop()
	}
	// MonitorMetrics records probe outcomes and the resulting health.
	MonitorMetrics interface {
		ObserveProbe(err error, started time.Time)
		ObserveHealth(connected bool, health int)
	}
)

// Dialer opens a client for one endpoint URL.
type Dialer func(ctx context.Context, url string) (chain.Client, error)
