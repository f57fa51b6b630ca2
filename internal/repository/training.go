package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/phenobase/trait-extractor/gen/ent"
	"github.com/phenobase/trait-extractor/internal/entity"
)

type TrainingRepository interface {
	Start(ctx context.Context, modelProfile string) (*entity.TrainingRun, error)
	Finish(ctx context.Context, id int, outcome TrainingOutcome) error
}

type TrainingOutcome struct {
	Status       string
	ArtifactPath string
	Metrics      map[string]float64
	ErrorMessage string
}

type trainingRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTrainingRepository(entc *ent.Client, log *slog.Logger) TrainingRepository {
	if log == nil {
		log = slog.Default()
	}
	return &trainingRepo{ent: entc, log: log}
}

func (r *trainingRepo) Start(ctx context.Context, modelProfile string) (*entity.TrainingRun, error) {
	row, err := r.ent.TrainingRun.Create().
		SetModelProfile(modelProfile).
		SetStatus("running").
		Save(ctx)
	if err != nil {
		r.log.Error("training_run start failed", "profile", modelProfile, "err", err)
		return nil, err
	}
	r.log.Info("training_run started", "run_id", row.ID, "profile", modelProfile)
	return trainingFromRow(row), nil
}

func (r *trainingRepo) Finish(ctx context.Context, id int, outcome TrainingOutcome) error {
	update := r.ent.TrainingRun.UpdateOneID(id).
		SetStatus(outcome.Status).
		SetCompletedAt(time.Now())
	if outcome.ArtifactPath != "" {
		update = update.SetArtifactPath(outcome.ArtifactPath)
	}
	if outcome.ErrorMessage != "" {
		update = update.SetErrorMessage(outcome.ErrorMessage)
	}
	if outcome.Metrics != nil {
		if b, err := json.Marshal(outcome.Metrics); err == nil {
			update = update.SetMetrics(b)
		}
	}
	if _, err := update.Save(ctx); err != nil {
		r.log.Error("training_run finish failed", "run_id", id, "err", err)
		return err
	}
	r.log.Info("training_run finished", "run_id", id, "status", outcome.Status)
	return nil
}

func trainingFromRow(row *ent.TrainingRun) *entity.TrainingRun {
	return &entity.TrainingRun{
		ID:           row.ID,
		ModelProfile: row.ModelProfile,
		Status:       row.Status,
		ArtifactPath: row.ArtifactPath,
		Metrics:      row.Metrics,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
		CompletedAt:  row.CompletedAt,
	}
}
