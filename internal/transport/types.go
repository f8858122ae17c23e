package transport

import (
	"context"

	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LeaderboardService interface {
		View(ctx context.Context) model.View
		Refresh(ctx context.Context, forced bool) model.View
		Current() model.Snapshot
	}
	ConnectionState interface {
		Connected() bool
	}
)
