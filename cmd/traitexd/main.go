package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phenobase/trait-extractor/internal/adapter"
	"github.com/phenobase/trait-extractor/internal/async"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/export"
	"github.com/phenobase/trait-extractor/internal/profile"
	"github.com/phenobase/trait-extractor/internal/remote"
	repo "github.com/phenobase/trait-extractor/internal/repository"
	"github.com/phenobase/trait-extractor/internal/server"
	"github.com/phenobase/trait-extractor/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	profiles, err := profile.Load(cfg.Extraction.ProfilesPath)
	if err != nil {
		logger.Error("loading model profiles", "path", cfg.Extraction.ProfilesPath, "error", err)
		os.Exit(2)
	}

	registry := adapter.NewRegistry(
		adapter.NewFactory(logger, adapter.ExecRunner()),
		profiles,
		logger,
	)

	var remoteClient service.RemoteExtractor
	if !cfg.Extraction.LocalMode {
		remoteClient = remote.NewClient(cfg.Remote, logger)
	}

	tripleRepo := repo.NewTripleRepository(entc, logger)
	svc := service.NewService(
		logger,
		profiles,
		registry,
		repo.NewDocumentRepository(entc, logger),
		repo.NewJobRepository(entc, logger),
		tripleRepo,
		repo.NewTrainingRepository(entc, logger),
		remoteClient,
		cfg.Extraction.LocalMode,
	)

	queue := async.NewQueue(svc, logger,
		async.WithWorkers(cfg.Extraction.Workers),
		async.WithQueueSize(cfg.Extraction.QueueSize),
		async.WithJobTimeout(cfg.Extraction.JobTimeout),
	)

	exporter := export.NewService(tripleRepo, logger)
	srv := server.New(cfg.Server, svc, queue, exporter, logger)
	go func() {
		if err := srv.Start(cfg.Server.HTTPAddr); err != nil {
			logger.Error("http server stopped", "error", err)
			stop()
		}
	}()
	logger.Info("trait extraction service up",
		"addr", cfg.Server.HTTPAddr,
		"local_mode", cfg.Extraction.LocalMode,
		"profiles", len(profiles.List()))

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	queue.Shutdown(shutdownCtx)
	if err := registry.UnloadAll(); err != nil {
		logger.Warn("adapter unload", "error", err)
	}
	logger.Info("stopped")
}
