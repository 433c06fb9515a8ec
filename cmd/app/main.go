// @title						KaleFarm API
// @version					1.0
// @description				Plant, work and harvest against the farm ledger.
// @BasePath					/
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/osse101/KaleFarm_Go/docs"
	"github.com/osse101/KaleFarm_Go/internal/clock"
	"github.com/osse101/KaleFarm_Go/internal/config"
	"github.com/osse101/KaleFarm_Go/internal/database"
	"github.com/osse101/KaleFarm_Go/internal/database/memory"
	"github.com/osse101/KaleFarm_Go/internal/database/postgres"
	"github.com/osse101/KaleFarm_Go/internal/event"
	"github.com/osse101/KaleFarm_Go/internal/farm"
	"github.com/osse101/KaleFarm_Go/internal/handler"
	"github.com/osse101/KaleFarm_Go/internal/ledger"
	"github.com/osse101/KaleFarm_Go/internal/metrics"
	"github.com/osse101/KaleFarm_Go/internal/miner"
	"github.com/osse101/KaleFarm_Go/internal/repository"
	"github.com/osse101/KaleFarm_Go/internal/reward"
	"github.com/osse101/KaleFarm_Go/internal/server"
	"github.com/osse101/KaleFarm_Go/internal/worker"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}
	slog.Info("Starting KaleFarm",
		"version", cfg.Version,
		"environment", cfg.Environment,
		"storage", cfg.StorageBackend,
		"port", cfg.Port)

	ctx := context.Background()

	var (
		repo  repository.FarmRepository
		store handler.Pinger
		pool  *pgxpool.Pool
	)
	if cfg.UsesPostgres() {
		pool, err = database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
		repo = postgres.NewFarmRepository(pool)
		store = pool
	} else {
		slog.Warn("Using in-memory storage, state is lost on restart")
		repo = memory.NewFarmRepository()
	}

	genesis := cfg.LedgerGenesis
	if genesis.IsZero() {
		genesis = time.Now()
	}
	src := clock.NewSystem(genesis, cfg.LedgerCloseInterval)

	l := ledger.New(repo, ledger.CacheConfig{Size: cfg.CacheSize, TTL: cfg.CacheTTL})

	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		slog.Error("Failed to register event metrics", "error", err)
		os.Exit(1)
	}

	rewards := reward.DefaultParams()
	farmSvc := farm.NewService(l, src, reward.NewCalculator(rewards), bus)

	workerPool := worker.NewPool(cfg.MinerWorkers, cfg.MinerQueueSize)
	workerPool.Start()

	minerCfg := miner.DefaultConfig()
	minerCfg.MaxAttempts = cfg.MinerMaxAttempts
	minerSvc := miner.NewService(farmSvc, workerPool, bus, minerCfg)

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Detector:       server.DefaultDetectorConfig(),
		Rewards:        rewards,
	}, farmSvc, minerSvc, store)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	// Stops mining loops and the worker pool
	if err := minerSvc.Shutdown(shutdownCtx); err != nil {
		slog.Error("Miner shutdown failed", "error", err)
	}
	slog.Info("Shutdown complete")
}
