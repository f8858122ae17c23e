package repository

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the key/value boundary entries are written through.
	Store interface {
		Name() string
		Get(ctx context.Context, key string) ([]byte, error)
		Set(ctx context.Context, key string, value []byte) error
		Ping(ctx context.Context) error
	}
	// Metrics records repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
