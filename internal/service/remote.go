package service

import (
	"context"
	"errors"
	"strings"

	"github.com/phenobase/trait-extractor/internal/api"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/entity"
)

// runRemote delegates the job to the peer extraction service and
// persists whatever it returns. No partial persistence: a failed call
// leaves only the failed job row behind.
func (s *Service) runRemote(ctx context.Context, job *entity.ExtractionJob) (int, error) {
	if err := s.jobs.MarkRunning(ctx, job.ID); err != nil {
		return 0, err
	}

	payload := api.ExtractRequest{
		ModelProfile: job.ModelProfile,
		JobID:        &job.ID,
	}
	for _, docID := range job.DocumentIDs {
		doc, err := s.docs.GetByID(ctx, docID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				s.logger.Warn("document missing, excluded from remote payload",
					"job_id", job.ID, "document_id", docID)
				continue
			}
			s.failJob(ctx, job.ID, err)
			return 0, err
		}
		doi := ""
		if doc.Doi != nil {
			doi = *doc.Doi
		}
		payload.Documents = append(payload.Documents, api.DocumentPayload{
			ID:   doc.ID,
			Text: doc.TextContent,
			Metadata: api.DocumentMetadata{
				ProjectID: doc.ProjectID,
				Doi:       doi,
			},
		})
	}

	resp, err := s.remote.ExtractTriples(ctx, payload)
	if err != nil {
		msg := "Remote server error: " + remoteDetails(err)
		s.failJob(ctx, job.ID, errors.New(msg))
		return 0, common.NewRemoteServiceError(msg, err)
	}

	triples := make([]entity.Triple, len(resp.Triples))
	for i, t := range resp.Triples {
		jobID := job.ID
		t.JobID = &jobID
		if t.ModelProfile == "" {
			t.ModelProfile = job.ModelProfile
		}
		triples[i] = t
	}

	inserted, err := s.triples.InsertBatch(ctx, triples)
	if err != nil {
		s.failJob(ctx, job.ID, err)
		return 0, err
	}

	if err := s.jobs.SetProgress(ctx, job.ID, job.Total); err != nil {
		s.failJob(ctx, job.ID, err)
		return 0, err
	}
	if err := s.jobs.MarkCompleted(ctx, job.ID, inserted); err != nil {
		return inserted, err
	}
	s.logger.Info("remote extraction finished", "job_id", job.ID, "triples", inserted)
	return inserted, nil
}

// remoteDetails strips the error-code prefix AppError adds so the
// persisted message reads as the peer's own failure detail.
func remoteDetails(err error) string {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		detail := appErr.Message
		if appErr.Cause != nil {
			cause := strings.TrimPrefix(appErr.Cause.Error(), common.ErrRemoteService.Error())
			if cause = strings.TrimPrefix(strings.TrimSpace(cause), ": "); cause != "" {
				detail += ": " + cause
			}
		}
		return detail
	}
	return strings.TrimSpace(err.Error())
}
