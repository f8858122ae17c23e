package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerboard-backend/internal/bootstrap"
	"github.com/goodnatureofminers/minerboard-backend/internal/transport"
)

type config struct {
	Addr           string   `long:"addr" env:"LEADERBOARD_API_ADDR" description:"HTTP listen address" default:":3000"`
	AllowedOrigins []string `long:"allowed-origin" env:"LEADERBOARD_API_ALLOWED_ORIGINS" env-delim:"," description:"CORS allowed origin, repeatable; empty allows all"`

	Chain    bootstrap.ChainOptions    `group:"chain"`
	Cache    bootstrap.CacheOptions    `group:"cache"`
	Pipeline bootstrap.PipelineOptions `group:"pipeline"`
}

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
		logger.Fatal("leaderboard api failed", zap.Error(err))
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

	go func() {
		_ = pipeline.Monitor.Run(ctx)
	}()
	serviceDone := make(chan struct{})
	go func() {
		defer close(serviceDone)
		_ = pipeline.Service.Run(ctx)
	}()

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	transport.NewLeaderboardHandler(pipeline.Service, pipeline.State, logger.Named("http")).Register(router)

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newCORS(cfg.AllowedOrigins).Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	<-serviceDone
	return nil
}

func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
}
