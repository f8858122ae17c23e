package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerboard-backend/internal/bootstrap"
	"github.com/goodnatureofminers/minerboard-backend/internal/clock"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
	"github.com/goodnatureofminers/minerboard-backend/internal/staticfile"
)

type config struct {
	OutputDir       string        `long:"output-dir" env:"LEADERBOARD_STATIC_OUTPUT_DIR" description:"directory for generated JSON files" default:"./frontend/static"`
	Validity        time.Duration `long:"validity" env:"LEADERBOARD_STATIC_VALIDITY" description:"how long the published file stays current" default:"1h"`
	ConnectAttempts int           `long:"connect-attempts" env:"LEADERBOARD_STATIC_CONNECT_ATTEMPTS" description:"RPC connection attempts before giving up" default:"5"`
	ConnectDelay    time.Duration `long:"connect-delay" env:"LEADERBOARD_STATIC_CONNECT_DELAY" description:"delay between connection attempts" default:"2s"`
	AllowCached     bool          `long:"allow-cached" env:"LEADERBOARD_STATIC_ALLOW_CACHED" description:"publish cached data when live data is unavailable"`

	Chain    bootstrap.ChainOptions    `group:"chain"`
	Cache    bootstrap.CacheOptions    `group:"cache"`
	Pipeline bootstrap.PipelineOptions `group:"pipeline"`
}

var errNotLive = errors.New("live leaderboard unavailable")

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("static leaderboard generation failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	pipeline, err := bootstrap.NewPipeline(cfg.Chain, cfg.Cache, cfg.Pipeline, logger)
	if err != nil {
		return fmt.Errorf("init pipeline: %w", err)
	}
	defer func() {
		if err := pipeline.Close(); err != nil {
			logger.Error("failed to close pipeline", zap.Error(err))
		}
	}()

	pipeline.Service.Load(ctx)

	connected := false
	for attempt := 1; attempt <= cfg.ConnectAttempts; attempt++ {
		if connected = pipeline.Monitor.Probe(ctx); connected {
			break
		}
		logger.Warn("rpc not connected yet",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", cfg.ConnectAttempts))
		if attempt < cfg.ConnectAttempts {
			if err := clock.SleepWithContext(ctx, cfg.ConnectDelay); err != nil {
				return err
			}
		}
	}
	if !connected {
		logger.Warn("rpc unavailable, falling back to cached data")
	}

	view := pipeline.Service.Refresh(ctx, true)
	snap := view.Snapshot
	logger.Info("leaderboard ready",
		zap.String("source", string(snap.Source)),
		zap.Int("miners", len(snap.Miners)),
		zap.Bool("partial", snap.Partial))

	if snap.Source != model.SourceLive && !(cfg.AllowCached && snap.Source == model.SourceCache) {
		return fmt.Errorf("%w: got %s data", errNotLive, snap.Source)
	}

	files, err := staticfile.NewWriter(cfg.OutputDir, cfg.Validity, logger.Named("static")).Publish(snap)
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	logger.Info("static leaderboard published",
		zap.String("current", files.Current),
		zap.String("history", files.History))
	return nil
}
