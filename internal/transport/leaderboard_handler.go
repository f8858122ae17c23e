// Package transport exposes the leaderboard over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerboard-backend/internal/clock"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
)

// LeaderboardHandler serves the leaderboard API. Every endpoint answers 200
// with a well-formed body; degraded data is flagged in the status block.
type LeaderboardHandler struct {
	svc     LeaderboardService
	state   ConnectionState
	logger  *zap.Logger
	started time.Time
	now     func() time.Time
}

// NewLeaderboardHandler returns a LeaderboardHandler instance.
func NewLeaderboardHandler(svc LeaderboardService, state ConnectionState, logger *zap.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		svc:     svc,
		state:   state,
		logger:  logger,
		started: clock.Now(),
		now:     clock.Now,
	}
}

// Register mounts the API routes.
func (h *LeaderboardHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/leaderboard", h.Leaderboard).Methods(http.MethodGet)
	r.HandleFunc("/api/leaderboard/refresh", h.Refresh).Methods(http.MethodPost)
	r.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
}

// Leaderboard returns the served snapshot with status.
func (h *LeaderboardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.View(r.Context()))
}

// Refresh forces a pipeline run and returns the result. A client hanging up
// does not abort the run.
func (h *LeaderboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("forced leaderboard refresh requested", zap.String("remote_addr", r.RemoteAddr))
	h.writeJSON(w, h.svc.Refresh(context.WithoutCancel(r.Context()), true))
}

type healthResponse struct {
	Status     string    `json:"status"`
	Blockchain string    `json:"blockchain"`
	Uptime     float64   `json:"uptime"`
	Miners     int       `json:"miners"`
	Source     string    `json:"source"`
	LastUpdate time.Time `json:"lastUpdate"`
	Timestamp  time.Time `json:"timestamp"`
}

// Health reports process and upstream state without triggering a refresh.
func (h *LeaderboardHandler) Health(w http.ResponseWriter, _ *http.Request) {
	now := h.now()
	snap := h.svc.Current()
	h.writeJSON(w, healthResponse{
		Status:     "ok",
		Blockchain: model.BlockchainStatus(h.state.Connected()),
		Uptime:     now.Sub(h.started).Seconds(),
		Miners:     len(snap.Miners),
		Source:     string(snap.Source),
		LastUpdate: snap.GeneratedAt,
		Timestamp:  now.UTC(),
	})
}

type apiDescription struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}

// Root describes the API.
func (h *LeaderboardHandler) Root(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, apiDescription{
		Name:        "Mining Leaderboard API",
		Description: "API for retrieving miner leaderboard data",
		Endpoints: map[string]string{
			"/":                        "This documentation",
			"/api/leaderboard":         "Get the current leaderboard data",
			"/api/leaderboard/refresh": "Force a leaderboard refresh (POST)",
			"/api/health":              "Get API health status",
			"/metrics":                 "Prometheus metrics",
		},
	})
}

func (h *LeaderboardHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("response not written", zap.Error(err))
	}
}
