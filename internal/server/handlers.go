package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/phenobase/trait-extractor/internal/api"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/entity"
)

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, api.HealthResponse{
		Status:         "ok",
		LoadedAdapters: s.svc.Adapters().Loaded(),
	})
}

func (s *Server) models(c echo.Context) error {
	return c.JSON(http.StatusOK, s.svc.ListModelProfiles())
}

func (s *Server) extractTriples(c echo.Context) error {
	var req api.ExtractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
	}
	if req.ModelProfile == "" {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "model_profile is required"})
	}

	ctx := c.Request().Context()
	triples, err := s.svc.ExtractPayload(ctx, req.ModelProfile, req.Documents, req.JobID)
	if err != nil {
		return s.fail(c, err)
	}
	if triples == nil {
		triples = []entity.Triple{}
	}

	return c.JSON(http.StatusOK, api.ExtractResponse{
		JobID:          req.JobID,
		Status:         "completed",
		TotalDocuments: len(req.Documents),
		TotalTriples:   len(triples),
		Triples:        triples,
	})
}

func (s *Server) trainModel(c echo.Context) error {
	var req api.TrainRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
	}
	if req.ModelProfile == "" {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "model_profile is required"})
	}

	resp, err := s.svc.TrainModel(c.Request().Context(), req)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) unloadModel(c echo.Context) error {
	var req api.UnloadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
	}
	if req.ModelProfile == "" {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "model_profile is required"})
	}
	if err := s.svc.Adapters().Unload(req.ModelProfile); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":        "unloaded",
		"model_profile": req.ModelProfile,
	})
}

func (s *Server) unloadAll(c echo.Context) error {
	if err := s.svc.Adapters().UnloadAll(); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "unloaded"})
}

// fail maps the error taxonomy onto HTTP statuses.
func (s *Server) fail(c echo.Context, err error) error {
	s.logger.Error("request failed",
		"method", c.Request().Method, "path", c.Path(), "error", err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrConfiguration):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrJobTerminal):
		status = http.StatusConflict
	case errors.Is(err, common.ErrModelLoad), errors.Is(err, common.ErrShuttingDown):
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, api.ErrorResponse{Error: err.Error()})
}
