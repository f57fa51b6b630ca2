package service

import (
	"context"

	"github.com/phenobase/trait-extractor/internal/adapter"
	"github.com/phenobase/trait-extractor/internal/api"
	"github.com/phenobase/trait-extractor/internal/repository"
)

// TrainModel runs (or delegates) a training pass for a profile's
// backend and records the run. Backends without training support report
// not_implemented instead of failing.
func (s *Service) TrainModel(ctx context.Context, req api.TrainRequest) (*api.TrainResponse, error) {
	if _, err := s.profiles.Get(req.ModelProfile); err != nil {
		return nil, err
	}

	run, err := s.training.Start(ctx, req.ModelProfile)
	if err != nil {
		return nil, err
	}

	resp, err := s.trainDispatch(ctx, req)
	if err != nil {
		_ = s.training.Finish(ctx, run.ID, repository.TrainingOutcome{
			Status:       adapter.TrainFailed,
			ErrorMessage: err.Error(),
		})
		return nil, err
	}

	if err := s.training.Finish(ctx, run.ID, repository.TrainingOutcome{
		Status:       resp.Status,
		ArtifactPath: resp.ModelPath,
		Metrics:      resp.Metrics,
		ErrorMessage: resp.Error,
	}); err != nil {
		s.logger.Error("recording training outcome failed", "run_id", run.ID, "err", err)
	}
	return resp, nil
}

func (s *Service) trainDispatch(ctx context.Context, req api.TrainRequest) (*api.TrainResponse, error) {
	if !s.localMode {
		return s.remote.TrainModel(ctx, req)
	}

	a, release, err := s.adapters.Acquire(req.ModelProfile)
	if err != nil {
		return nil, err
	}
	defer release()

	result, err := a.Train(ctx, adapter.TrainRequest{
		Examples:  req.TrainingData,
		OutputDir: req.OutputDir,
		NumEpochs: req.NumEpochs,
		BatchSize: req.BatchSize,
	})
	if err != nil {
		return nil, err
	}
	return &api.TrainResponse{
		Status:    result.Status,
		ModelPath: result.ArtifactPath,
		Metrics:   result.Metrics,
		Error:     result.Error,
	}, nil
}
