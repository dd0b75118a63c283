package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/saras/kosakata/internal/api"
	"github.com/saras/kosakata/internal/config"
	"github.com/saras/kosakata/internal/db"
	"github.com/saras/kosakata/internal/logger"
	"github.com/saras/kosakata/internal/repository/sqlite"
	"github.com/saras/kosakata/internal/services"
	"github.com/saras/kosakata/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("Kosakata Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("queue_size=%d", cfg.QueueSize)
	log.Debug("max_queue_size=%d", cfg.MaxQueueSize)
	log.Debug("snapshot_interval=%v", cfg.SnapshotInterval)
	log.Debug("snapshot_worker_count=%d", cfg.SnapshotWorkerCount)
	log.Debug("snapshot_queue_size=%d", cfg.SnapshotQueueSize)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	words := sqlite.NewWordRepository(database)
	progress := sqlite.NewProgressRepository(database)
	snapshots := sqlite.NewSnapshotRepository(database)

	params := cfg.SchedulerParams()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	practiceService := services.NewPracticeService(words, progress, params, rng)
	wordService := services.NewWordService(words, progress)
	statsService := services.NewStatsService(words, progress, snapshots, params)

	snapshotPool := worker.NewPool(cfg.SnapshotWorkerCount, cfg.SnapshotQueueSize)

	srv := &api.Server{
		DB:               database,
		PracticeService:  practiceService,
		WordService:      wordService,
		StatsService:     statsService,
		DefaultQueueSize: cfg.QueueSize,
		MaxQueueSize:     cfg.MaxQueueSize,
	}

	ctx, cancel := context.WithCancel(context.Background())
	snapshotPool.Start(ctx)

	scheduler := gocron.NewScheduler(time.UTC)
	if _, err := scheduler.Every(cfg.SnapshotInterval).Do(func() {
		snapshotPool.TrySubmit(&worker.SnapshotStatsJob{Stats: statsService})
	}); err != nil {
		log.Error("failed to schedule stats snapshots: %v", err)
		os.Exit(1)
	}
	scheduler.StartAsync()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping snapshot scheduler")
	scheduler.Stop()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	cancel()
	snapshotPool.Stop()

	log.Info("===========================================")
	log.Info("Kosakata Server Stopped")
	log.Info("===========================================")
}
