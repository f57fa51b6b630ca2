package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/gen/ent"
	"github.com/phenobase/trait-extractor/gen/ent/triple"
	"github.com/phenobase/trait-extractor/internal/entity"
)

type TripleRepository interface {
	// InsertBatch persists triples in one transaction and returns the
	// inserted count. Triples without a sentence reference get a
	// sentence row created from their sentence text first.
	InsertBatch(ctx context.Context, triples []entity.Triple) (int, error)
	ListByJob(ctx context.Context, jobID int) ([]entity.Triple, error)
	List(ctx context.Context, filter entity.TripleFilter) ([]entity.Triple, error)
}

type tripleRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTripleRepository(entc *ent.Client, log *slog.Logger) TripleRepository {
	if log == nil {
		log = slog.Default()
	}
	return &tripleRepo{ent: entc, log: log}
}

func (r *tripleRepo) InsertBatch(ctx context.Context, triples []entity.Triple) (int, error) {
	if len(triples) == 0 {
		return 0, nil
	}

	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}

	inserted := 0
	for _, t := range triples {
		sentenceID := t.SentenceID
		if sentenceID == 0 {
			s, err := tx.Sentence.Create().
				SetText(t.Sentence).
				SetNillableDocumentID(t.DocumentID).
				Save(ctx)
			if err != nil {
				_ = tx.Rollback()
				r.log.Error("sentence create failed", "job_id", t.JobID, "err", err)
				return 0, err
			}
			sentenceID = s.ID
		}

		status := t.Status
		if status == "" {
			status = constants.TripleStatusRaw
		}
		_, err := tx.Triple.Create().
			SetSourceEntityName(t.SourceEntityName).
			SetSourceEntityAttr(t.SourceEntityAttr).
			SetRelationType(t.RelationType).
			SetSinkEntityName(t.SinkEntityName).
			SetSinkEntityAttr(t.SinkEntityAttr).
			SetConfidence(t.Confidence).
			SetModelProfile(t.ModelProfile).
			SetStatus(string(status)).
			SetSentenceID(sentenceID).
			SetNillableTraitName(t.TraitName).
			SetNillableTraitValue(t.TraitValue).
			SetNillableUnit(t.Unit).
			SetNillableProjectID(t.ProjectID).
			SetNillableDocumentID(t.DocumentID).
			SetNillableJobID(t.JobID).
			SetNillableDoiHash(t.DoiHash).
			SetNillableContributorEmail(t.ContributorEmail).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			r.log.Error("triple insert failed", "job_id", t.JobID, "err", err)
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	r.log.Info("triples inserted", "count", inserted)
	return inserted, nil
}

func (r *tripleRepo) ListByJob(ctx context.Context, jobID int) ([]entity.Triple, error) {
	return r.List(ctx, entity.TripleFilter{JobID: &jobID})
}

func (r *tripleRepo) List(ctx context.Context, filter entity.TripleFilter) ([]entity.Triple, error) {
	q := r.ent.Triple.Query()
	if filter.JobID != nil {
		q = q.Where(triple.JobID(*filter.JobID))
	}
	if filter.ProjectID != nil {
		q = q.Where(triple.ProjectID(*filter.ProjectID))
	}
	if filter.DocumentID != nil {
		q = q.Where(triple.DocumentID(*filter.DocumentID))
	}
	if filter.Status != nil {
		q = q.Where(triple.Status(string(*filter.Status)))
	}

	rows, err := q.
		WithSentence().
		Order(ent.Asc(triple.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Triple, len(rows))
	for i, row := range rows {
		out[i] = *tripleFromRow(row)
	}
	return out, nil
}

func tripleFromRow(row *ent.Triple) *entity.Triple {
	t := &entity.Triple{
		ID:               row.ID,
		SourceEntityName: row.SourceEntityName,
		SourceEntityAttr: row.SourceEntityAttr,
		RelationType:     row.RelationType,
		SinkEntityName:   row.SinkEntityName,
		SinkEntityAttr:   row.SinkEntityAttr,
		Confidence:       row.Confidence,
		ModelProfile:     row.ModelProfile,
		Status:           constants.TripleStatus(row.Status),
		TraitName:        row.TraitName,
		TraitValue:       row.TraitValue,
		Unit:             row.Unit,
		ProjectID:        row.ProjectID,
		DocumentID:       row.DocumentID,
		JobID:            row.JobID,
		SentenceID:       row.SentenceID,
		DoiHash:          row.DoiHash,
		ContributorEmail: row.ContributorEmail,
		CreatedAt:        row.CreatedAt,
	}
	if s, err := row.Edges.SentenceOrErr(); err == nil && s != nil {
		t.Sentence = s.Text
	}
	return t
}
