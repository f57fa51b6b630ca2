package service

import (
	"context"
	"errors"
	"strings"

	"github.com/phenobase/trait-extractor/internal/adapter"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/entity"
)

// runLocal executes the job in-process. Documents are processed
// strictly in submission order; triples accumulate in memory and are
// persisted in a single batch after the loop, so a failure mid-run
// discards everything from this run (all-or-nothing). Progress is
// persisted per document regardless, so pollers see partial progress.
func (s *Service) runLocal(ctx context.Context, job *entity.ExtractionJob) (int, error) {
	if err := s.jobs.MarkRunning(ctx, job.ID); err != nil {
		return 0, err
	}

	a, release, err := s.adapters.Acquire(job.ModelProfile)
	if err != nil {
		s.failJob(ctx, job.ID, err)
		return 0, err
	}
	defer release()

	if !a.Loaded() {
		if err := a.Load(ctx); err != nil {
			s.failJob(ctx, job.ID, err)
			return 0, err
		}
	}

	var buffer []entity.Triple
	progress := 0
	for _, docID := range job.DocumentIDs {
		doc, err := s.docs.GetByID(ctx, docID)
		switch {
		case err != nil && errors.Is(err, common.ErrNotFound):
			s.logger.Warn("document missing, skipping", "job_id", job.ID, "document_id", docID)
			doc = nil
		case err != nil:
			s.failJob(ctx, job.ID, err)
			return 0, err
		case strings.TrimSpace(doc.TextContent) == "":
			s.logger.Warn("document has no text, skipping", "job_id", job.ID, "document_id", docID)
			doc = nil
		}

		if doc != nil {
			results, err := a.Extract(ctx, []string{doc.TextContent})
			if err != nil {
				s.failJob(ctx, job.ID, err)
				return 0, err
			}
			for _, raw := range results[0] {
				buffer = append(buffer, s.attachLinkage(a.Normalize(raw), job, doc))
			}
		}

		// skipped documents still count toward progress
		progress++
		if err := s.jobs.SetProgress(ctx, job.ID, progress); err != nil {
			s.failJob(ctx, job.ID, err)
			return 0, err
		}
	}

	inserted, err := s.triples.InsertBatch(ctx, buffer)
	if err != nil {
		s.failJob(ctx, job.ID, err)
		return 0, err
	}

	if err := s.jobs.MarkCompleted(ctx, job.ID, inserted); err != nil {
		return inserted, err
	}
	s.logger.Info("local extraction finished",
		"job_id", job.ID, "documents", len(job.DocumentIDs), "triples", inserted)
	return inserted, nil
}

// attachLinkage turns a canonical triple into the persisted shape by
// adding job/document provenance.
func (s *Service) attachLinkage(canon adapter.CanonicalTriple, job *entity.ExtractionJob, doc *entity.Document) entity.Triple {
	sentence := canon.Sentence
	if sentence == "" {
		sentence = snippet(doc.TextContent, 200)
	}
	jobID := job.ID
	docID := doc.ID
	return entity.Triple{
		SourceEntityName: canon.SourceEntityName,
		SourceEntityAttr: canon.SourceEntityAttr,
		RelationType:     canon.RelationType,
		SinkEntityName:   canon.SinkEntityName,
		SinkEntityAttr:   canon.SinkEntityAttr,
		Confidence:       canon.Confidence,
		ModelProfile:     job.ModelProfile,
		Status:           canon.Status,
		TraitName:        optional(canon.TraitName),
		TraitValue:       optional(canon.TraitValue),
		Unit:             optional(canon.Unit),
		ProjectID:        doc.ProjectID,
		DocumentID:       &docID,
		JobID:            &jobID,
		Sentence:         sentence,
		DoiHash:          doc.DoiHash,
	}
}

// failJob records a terminal failure; the accumulated buffer of the
// failed run is never persisted.
func (s *Service) failJob(ctx context.Context, jobID int, cause error) {
	if err := s.jobs.MarkFailed(ctx, jobID, cause.Error()); err != nil {
		s.logger.Error("recording job failure failed", "job_id", jobID, "err", err)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func snippet(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	return text[:max]
}
