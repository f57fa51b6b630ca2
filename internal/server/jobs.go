package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/api"
	"github.com/phenobase/trait-extractor/internal/async"
	"github.com/phenobase/trait-extractor/internal/entity"
	"github.com/phenobase/trait-extractor/internal/service"
)

// submitJob creates a pending job and hands it to the worker queue.
// Extraction never runs on the request path; callers poll GET /jobs/:id.
func (s *Server) submitJob(c echo.Context) error {
	var req api.SubmitJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
	}
	if req.ModelProfile == "" {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "model_profile is required"})
	}
	if len(req.DocumentIDs) == 0 {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "document_ids is required"})
	}

	ctx := c.Request().Context()
	job, err := s.svc.CreateJob(ctx, service.ExtractRequest{
		DocumentIDs: req.DocumentIDs,
		Profile:     req.ModelProfile,
		ProjectID:   req.ProjectID,
		CreatedBy:   req.CreatedBy,
		Mode:        constants.JobMode(req.Mode),
	})
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		JobID:       job.ID,
		SubmittedAt: time.Now(),
		TraceID:     uuid.New().String(),
	}); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusAccepted, api.SubmitJobResponse{
		JobID:  job.ID,
		Status: string(job.Status),
		Total:  job.Total,
	})
}

func (s *Server) getJob(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid job id"})
	}
	job, err := s.svc.GetJobStatus(c.Request().Context(), id)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, job)
}

func (s *Server) listJobs(c echo.Context) error {
	var filter entity.JobFilter
	if v := c.QueryParam("project_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid project_id"})
		}
		filter.ProjectID = &id
	}
	if v := c.QueryParam("status"); v != "" {
		status := constants.JobStatus(v)
		filter.Status = &status
	}
	if v := c.QueryParam("model_profile"); v != "" {
		filter.Profile = &v
	}

	page := entity.Page{Limit: 50}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			page.Offset = n
		}
	}

	items, total, err := s.svc.ListJobs(c.Request().Context(), filter, page)
	if err != nil {
		return s.fail(c, err)
	}
	if items == nil {
		items = []entity.ExtractionJob{}
	}
	return c.JSON(http.StatusOK, api.JobListResponse{Items: items, Total: total})
}

func (s *Server) cancelJob(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid job id"})
	}
	if err := s.svc.CancelJob(c.Request().Context(), id); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "cancelled"})
}

// exportJob streams an XLSX workbook of the job's triples.
func (s *Server) exportJob(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid job id"})
	}
	data, err := s.exporter.ExportTriplesXLSX(c.Request().Context(), entity.TripleFilter{JobID: &id})
	if err != nil {
		return s.fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="triples_job_`+strconv.Itoa(id)+`.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
