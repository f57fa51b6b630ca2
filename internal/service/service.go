package service

import (
	"context"
	"log/slog"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/adapter"
	"github.com/phenobase/trait-extractor/internal/api"
	"github.com/phenobase/trait-extractor/internal/entity"
	"github.com/phenobase/trait-extractor/internal/profile"
	"github.com/phenobase/trait-extractor/internal/repository"
)

// RemoteExtractor is the slice of the peer client the service needs;
// stubbed in tests.
type RemoteExtractor interface {
	ExtractTriples(ctx context.Context, req api.ExtractRequest) (*api.ExtractResponse, error)
	TrainModel(ctx context.Context, req api.TrainRequest) (*api.TrainResponse, error)
}

// Service orchestrates extraction jobs: creates them, dispatches local
// or remote execution, tracks progress, and persists normalized triples.
type Service struct {
	logger    *slog.Logger
	profiles  *profile.Registry
	adapters  *adapter.Registry
	docs      repository.DocumentRepository
	jobs      repository.JobRepository
	triples   repository.TripleRepository
	training  repository.TrainingRepository
	remote    RemoteExtractor
	localMode bool
}

func NewService(
	logger *slog.Logger,
	profiles *profile.Registry,
	adapters *adapter.Registry,
	docs repository.DocumentRepository,
	jobs repository.JobRepository,
	triples repository.TripleRepository,
	training repository.TrainingRepository,
	remote RemoteExtractor,
	localMode bool,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger:    logger,
		profiles:  profiles,
		adapters:  adapters,
		docs:      docs,
		jobs:      jobs,
		triples:   triples,
		training:  training,
		remote:    remote,
		localMode: localMode,
	}
}

// ExtractRequest is one request to extract triples from a set of
// documents using one model profile.
type ExtractRequest struct {
	DocumentIDs []int
	Profile     string
	ProjectID   *int
	CreatedBy   string
	Mode        constants.JobMode
}

// JobResult is what callers get back from a submission. Failures during
// execution are recorded on the job itself; job status and error_message
// are the failure signal.
type JobResult struct {
	JobID        int                 `json:"job_id"`
	Status       constants.JobStatus `json:"status"`
	TotalTriples int                 `json:"total_triples"`
}

// ExtractFromDocuments validates the profile, creates the job, and runs
// it synchronously on the calling goroutine. An unknown profile fails
// fast before any job row exists. Execution failures are recorded on
// the job row, not returned: job status and error_message are the
// caller-visible failure signal.
func (s *Service) ExtractFromDocuments(ctx context.Context, req ExtractRequest) (*JobResult, error) {
	job, err := s.CreateJob(ctx, req)
	if err != nil {
		return nil, err
	}
	result, runErr := s.Run(ctx, job.ID)
	if runErr != nil {
		s.logger.Error("job execution failed", "job_id", job.ID, "err", runErr)
	}
	if result == nil {
		// Run could not even read the job back; the row still exists,
		// so hand the caller something to poll.
		result = &JobResult{JobID: job.ID, Status: job.Status}
	}
	return result, nil
}

// CreateJob validates the profile and persists a pending job with its
// ordered document memberships. Used directly by the async queue path.
func (s *Service) CreateJob(ctx context.Context, req ExtractRequest) (*entity.ExtractionJob, error) {
	if _, err := s.profiles.Get(req.Profile); err != nil {
		s.logger.Warn("extraction request rejected", "profile", req.Profile, "err", err)
		return nil, err
	}
	mode := req.Mode
	if mode == "" {
		mode = constants.ModeNoTraining
	}
	return s.jobs.Create(ctx, repository.CreateJobRequest{
		ProjectID:    req.ProjectID,
		DocumentIDs:  req.DocumentIDs,
		ModelProfile: req.Profile,
		Mode:         mode,
		CreatedBy:    req.CreatedBy,
	})
}

// Run executes a created job to a terminal state. Jobs cancelled while
// still pending are left untouched.
func (s *Service) Run(ctx context.Context, jobID int) (*JobResult, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != constants.JobStatusPending {
		s.logger.Info("job not runnable, skipping", "job_id", jobID, "status", job.Status)
		return &JobResult{JobID: jobID, Status: job.Status}, nil
	}

	var total int
	if s.localMode {
		total, err = s.runLocal(ctx, job)
	} else {
		total, err = s.runRemote(ctx, job)
	}
	if err != nil {
		// terminal failure already recorded on the job row
		return &JobResult{JobID: jobID, Status: constants.JobStatusFailed}, err
	}
	return &JobResult{JobID: jobID, Status: constants.JobStatusCompleted, TotalTriples: total}, nil
}

// RunJob satisfies the async queue's runner contract.
func (s *Service) RunJob(ctx context.Context, jobID int) error {
	_, err := s.Run(ctx, jobID)
	return err
}

// GetJobStatus is a pure read; pollers watch progress/total advance.
func (s *Service) GetJobStatus(ctx context.Context, jobID int) (*entity.ExtractionJob, error) {
	return s.jobs.GetByID(ctx, jobID)
}

// ListJobs is a paging read over jobs.
func (s *Service) ListJobs(ctx context.Context, filter entity.JobFilter, page entity.Page) ([]entity.ExtractionJob, int, error) {
	return s.jobs.List(ctx, filter, page)
}

// ListModelProfiles is a pure read of configuration.
func (s *Service) ListModelProfiles() []profile.Info {
	return s.profiles.List()
}

// CancelJob cancels a job that has not started running. There is no
// mid-job preemption; running jobs cannot be cancelled.
func (s *Service) CancelJob(ctx context.Context, jobID int) error {
	return s.jobs.MarkCancelled(ctx, jobID)
}

// Adapters exposes the adapter registry for the peer API's model
// management endpoints.
func (s *Service) Adapters() *adapter.Registry {
	return s.adapters
}
