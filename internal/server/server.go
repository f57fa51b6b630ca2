package server

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/phenobase/trait-extractor/internal/async"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/export"
	"github.com/phenobase/trait-extractor/internal/service"
)

// Server exposes two HTTP surfaces: the extraction peer protocol
// (wire-compatible with existing peers, synchronous) and the job
// orchestration API (asynchronous, submit-then-poll).
type Server struct {
	echo     *echo.Echo
	svc      *service.Service
	queue    *async.Queue
	exporter *export.Service
	logger   *slog.Logger
}

func New(cfg common.ServerConfig, svc *service.Service, queue *async.Queue, exporter *export.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(BearerAuth(cfg.APIKey))

	s := &Server{echo: e, svc: svc, queue: queue, exporter: exporter, logger: logger}

	// peer protocol
	e.GET("/health", s.health)
	e.GET("/models", s.models)
	e.POST("/extract_triples", s.extractTriples)
	e.POST("/train_model", s.trainModel)
	e.POST("/unload_model", s.unloadModel)
	e.POST("/unload_all", s.unloadAll)

	// job orchestration
	e.POST("/jobs", s.submitJob)
	e.GET("/jobs", s.listJobs)
	e.GET("/jobs/:id", s.getJob)
	e.POST("/jobs/:id/cancel", s.cancelJob)
	e.GET("/jobs/:id/export", s.exportJob)

	return s
}

// Handler returns the underlying HTTP handler, for tests.
func (s *Server) Handler() *echo.Echo { return s.echo }

func (s *Server) Start(addr string) error {
	s.logger.Info("http server starting", "addr", addr)
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
