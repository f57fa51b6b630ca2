package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/gen/ent"
	"github.com/phenobase/trait-extractor/gen/ent/extractionjob"
	"github.com/phenobase/trait-extractor/gen/ent/jobdocument"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/entity"
)

type JobRepository interface {
	Create(ctx context.Context, req CreateJobRequest) (*entity.ExtractionJob, error)
	GetByID(ctx context.Context, id int) (*entity.ExtractionJob, error)
	List(ctx context.Context, filter entity.JobFilter, page entity.Page) ([]entity.ExtractionJob, int, error)
	MarkRunning(ctx context.Context, id int) error
	SetProgress(ctx context.Context, id, progress int) error
	MarkCompleted(ctx context.Context, id, totalTriples int) error
	MarkFailed(ctx context.Context, id int, message string) error
	MarkCancelled(ctx context.Context, id int) error
}

type CreateJobRequest struct {
	ProjectID    *int
	DocumentIDs  []int
	ModelProfile string
	Mode         constants.JobMode
	CreatedBy    string
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &jobRepo{ent: entc, log: log}
}

// Create inserts the job row plus its ordered job_document memberships
// in one transaction. The job starts pending with total fixed to the
// number of submitted documents.
func (r *jobRepo) Create(ctx context.Context, req CreateJobRequest) (*entity.ExtractionJob, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	create := tx.ExtractionJob.Create().
		SetModelProfile(req.ModelProfile).
		SetMode(string(req.Mode)).
		SetStatus(string(constants.JobStatusPending)).
		SetProgress(0).
		SetTotal(len(req.DocumentIDs)).
		SetNillableProjectID(req.ProjectID)
	if req.CreatedBy != "" {
		create = create.SetCreatedBy(req.CreatedBy)
	}

	row, err := create.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.log.Error("extraction_job create failed", "profile", req.ModelProfile, "err", err)
		return nil, err
	}

	bulk := make([]*ent.JobDocumentCreate, len(req.DocumentIDs))
	for i, docID := range req.DocumentIDs {
		bulk[i] = tx.JobDocument.Create().
			SetJobID(row.ID).
			SetDocumentID(docID).
			SetPosition(i)
	}
	if _, err := tx.JobDocument.CreateBulk(bulk...).Save(ctx); err != nil {
		_ = tx.Rollback()
		r.log.Error("job_document create failed", "job_id", row.ID, "err", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	r.log.Info("extraction_job created",
		"job_id", row.ID, "profile", req.ModelProfile,
		"total", len(req.DocumentIDs), "mode", req.Mode)

	job := jobFromRow(row)
	job.DocumentIDs = append([]int{}, req.DocumentIDs...)
	return job, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int) (*entity.ExtractionJob, error) {
	row, err := r.ent.ExtractionJob.Query().
		Where(extractionjob.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("JOB_NOT_FOUND",
				fmt.Sprintf("job %d", id), common.ErrNotFound)
		}
		return nil, err
	}

	members, err := r.ent.JobDocument.Query().
		Where(jobdocument.JobID(id)).
		Order(ent.Asc(jobdocument.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	job := jobFromRow(row)
	job.DocumentIDs = make([]int, len(members))
	for i, m := range members {
		job.DocumentIDs[i] = m.DocumentID
	}
	return job, nil
}

func (r *jobRepo) List(ctx context.Context, filter entity.JobFilter, page entity.Page) ([]entity.ExtractionJob, int, error) {
	q := r.ent.ExtractionJob.Query()
	if filter.ProjectID != nil {
		q = q.Where(extractionjob.ProjectID(*filter.ProjectID))
	}
	if filter.Status != nil {
		q = q.Where(extractionjob.Status(string(*filter.Status)))
	}
	if filter.Profile != nil {
		q = q.Where(extractionjob.ModelProfile(*filter.Profile))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	if page.Limit > 0 {
		q = q.Limit(page.Limit)
	}
	if page.Offset > 0 {
		q = q.Offset(page.Offset)
	}
	rows, err := q.
		Order(ent.Desc(extractionjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, err
	}

	jobs := make([]entity.ExtractionJob, len(rows))
	for i, row := range rows {
		jobs[i] = *jobFromRow(row)
	}
	return jobs, total, nil
}

// MarkRunning transitions pending -> running. Guarded by a status
// predicate so terminal (and already-running) jobs are never rewound.
func (r *jobRepo) MarkRunning(ctx context.Context, id int) error {
	n, err := r.ent.ExtractionJob.Update().
		Where(
			extractionjob.ID(id),
			extractionjob.Status(string(constants.JobStatusPending)),
		).
		SetStatus(string(constants.JobStatusRunning)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job mark running failed", "job_id", id, "err", err)
		return err
	}
	if n == 0 {
		return r.transitionRefused(ctx, id, "running")
	}
	r.log.Info("extraction_job running", "job_id", id)
	return nil
}

// SetProgress persists a new progress value. The predicate keeps
// progress monotonically non-decreasing and only touches running jobs,
// so external pollers never observe it move backward.
func (r *jobRepo) SetProgress(ctx context.Context, id, progress int) error {
	_, err := r.ent.ExtractionJob.Update().
		Where(
			extractionjob.ID(id),
			extractionjob.Status(string(constants.JobStatusRunning)),
			extractionjob.ProgressLT(progress),
		).
		SetProgress(progress).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job progress update failed", "job_id", id, "err", err)
		return err
	}
	return nil
}

func (r *jobRepo) MarkCompleted(ctx context.Context, id, totalTriples int) error {
	n, err := r.ent.ExtractionJob.Update().
		Where(
			extractionjob.ID(id),
			extractionjob.Status(string(constants.JobStatusRunning)),
		).
		SetStatus(string(constants.JobStatusCompleted)).
		SetTotalTriples(totalTriples).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job mark completed failed", "job_id", id, "err", err)
		return err
	}
	if n == 0 {
		return r.transitionRefused(ctx, id, "completed")
	}
	r.log.Info("extraction_job completed", "job_id", id, "total_triples", totalTriples)
	return nil
}

func (r *jobRepo) MarkFailed(ctx context.Context, id int, message string) error {
	n, err := r.ent.ExtractionJob.Update().
		Where(
			extractionjob.ID(id),
			extractionjob.StatusIn(
				string(constants.JobStatusPending),
				string(constants.JobStatusRunning),
			),
		).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job mark failed failed", "job_id", id, "err", err)
		return err
	}
	if n == 0 {
		return r.transitionRefused(ctx, id, "failed")
	}
	r.log.Warn("extraction_job failed", "job_id", id, "error", message)
	return nil
}

// MarkCancelled succeeds only while the job is still pending; running
// jobs have no preemption point.
func (r *jobRepo) MarkCancelled(ctx context.Context, id int) error {
	n, err := r.ent.ExtractionJob.Update().
		Where(
			extractionjob.ID(id),
			extractionjob.Status(string(constants.JobStatusPending)),
		).
		SetStatus(string(constants.JobStatusCancelled)).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job cancel failed", "job_id", id, "err", err)
		return err
	}
	if n == 0 {
		return r.transitionRefused(ctx, id, "cancelled")
	}
	r.log.Info("extraction_job cancelled", "job_id", id)
	return nil
}

// transitionRefused explains why a guarded update matched no rows.
func (r *jobRepo) transitionRefused(ctx context.Context, id int, target string) error {
	row, err := r.ent.ExtractionJob.Query().
		Where(extractionjob.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("JOB_NOT_FOUND",
				fmt.Sprintf("job %d", id), common.ErrNotFound)
		}
		return err
	}
	return common.NewAppError("JOB_TRANSITION_REFUSED",
		fmt.Sprintf("job %d: cannot transition %s -> %s", id, row.Status, target),
		common.ErrJobTerminal)
}

func jobFromRow(row *ent.ExtractionJob) *entity.ExtractionJob {
	return &entity.ExtractionJob{
		ID:           row.ID,
		ProjectID:    row.ProjectID,
		ModelProfile: row.ModelProfile,
		Mode:         constants.JobMode(row.Mode),
		Status:       constants.JobStatus(row.Status),
		Progress:     row.Progress,
		Total:        row.Total,
		ErrorMessage: row.ErrorMessage,
		TotalTriples: row.TotalTriples,
		CreatedBy:    row.CreatedBy,
		CreatedAt:    row.CreatedAt,
		StartedAt:    row.StartedAt,
		CompletedAt:  row.CompletedAt,
	}
}
