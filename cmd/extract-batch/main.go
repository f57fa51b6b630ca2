package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/adapter"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/entity"
	"github.com/phenobase/trait-extractor/internal/export"
	"github.com/phenobase/trait-extractor/internal/profile"
	"github.com/phenobase/trait-extractor/internal/remote"
	repo "github.com/phenobase/trait-extractor/internal/repository"
	"github.com/phenobase/trait-extractor/internal/service"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir         = flag.String("dir", "", "directory of text documents to register and extract from (required)")
		profileName = flag.String("profile", "", "model profile name (required)")
		projectID   = flag.Int("project", 0, "project id to attach (optional)")
		out         = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
	)
	flag.Parse()

	if *dir == "" || *profileName == "" {
		printError("Error: --dir and --profile are required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "triples.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		printError("Error: DB_URL env var is required\n")
		os.Exit(2)
	}

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		printError("Error: opening database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	profiles, err := profile.Load(cfg.Extraction.ProfilesPath)
	if err != nil {
		printError("Error: loading profiles: %v\n", err)
		os.Exit(2)
	}

	registry := adapter.NewRegistry(adapter.NewFactory(logger, adapter.ExecRunner()), profiles, logger)
	var remoteClient service.RemoteExtractor
	if !cfg.Extraction.LocalMode {
		remoteClient = remote.NewClient(cfg.Remote, logger)
	}

	docs := repo.NewDocumentRepository(entc, logger)
	triples := repo.NewTripleRepository(entc, logger)
	svc := service.NewService(
		logger, profiles, registry,
		docs,
		repo.NewJobRepository(entc, logger),
		triples,
		repo.NewTrainingRepository(entc, logger),
		remoteClient,
		cfg.Extraction.LocalMode,
	)

	// Register every .txt file in the directory as a document.
	entries, err := os.ReadDir(*dir)
	if err != nil {
		printError("Error: reading directory: %v\n", err)
		os.Exit(1)
	}
	var proj *int
	if *projectID > 0 {
		proj = projectID
	}
	var documentIDs []int
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			continue
		}
		doc, err := docs.Register(ctx, repo.RegisterDocumentRequest{
			ProjectID: proj,
			FilePath:  filepath.Join(*dir, e.Name()),
		})
		if err != nil {
			printError("Error: registering %s: %v\n", e.Name(), err)
			os.Exit(1)
		}
		documentIDs = append(documentIDs, doc.ID)
	}
	if len(documentIDs) == 0 {
		printError("Error: no .txt documents found in %s\n", *dir)
		os.Exit(1)
	}
	logger.Info("documents registered", "count", len(documentIDs))

	start := time.Now()
	result, err := svc.ExtractFromDocuments(ctx, service.ExtractRequest{
		DocumentIDs: documentIDs,
		Profile:     *profileName,
		ProjectID:   proj,
		CreatedBy:   "extract-batch",
	})
	if err != nil {
		printError("Error: submitting extraction: %v\n", err)
		os.Exit(1)
	}
	logger.Info("extraction finished",
		"job_id", result.JobID,
		"status", result.Status,
		"total_triples", result.TotalTriples,
		"elapsed_ms", time.Since(start).Milliseconds())

	if result.Status != constants.JobStatusCompleted {
		job, err := svc.GetJobStatus(ctx, result.JobID)
		if err == nil && job.ErrorMessage != nil {
			printError("Job failed: %s\n", *job.ErrorMessage)
		}
		os.Exit(1)
	}

	exporter := export.NewService(triples, logger)
	jobID := result.JobID
	data, err := exporter.ExportTriplesXLSX(ctx, entity.TripleFilter{JobID: &jobID})
	if err != nil {
		printError("Error: exporting triples: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		printError("Error: writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d triples to %s\n", result.TotalTriples, *out)
}
