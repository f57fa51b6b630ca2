package async

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phenobase/trait-extractor/internal/common"
)

// JobRunner executes one created extraction job to a terminal state.
// Satisfied by the trait extraction service.
type JobRunner interface {
	RunJob(ctx context.Context, jobID int) error
}

// Job is the smallest useful unit handed to the workers.
type Job struct {
	JobID       int
	SubmittedAt time.Time
	TraceID     string
}

// Queue decouples job submission from execution so extraction never
// blocks a request path. Workers own the adapter for the duration of a
// job, which also serializes access to non-thread-safe backends.
type Queue struct {
	runner  JobRunner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithJobTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewQueue(runner JobRunner, logger *slog.Logger, opts ...Option) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		runner:  runner,
		logger:  logger,
		workers: 2,
		timeout: 30 * time.Minute,
		ch:      make(chan Job, 64),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Queue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("extraction worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.runner.RunJob(ctx, job.JobID)
					cancel()

					if err != nil {
						q.logger.Error("job execution failed",
							"worker_id", workerID, "job_id", job.JobID, "error", err)
					} else {
						q.logger.Info("job executed",
							"worker_id", workerID, "job_id", job.JobID,
							"queued_ms", time.Since(job.SubmittedAt).Milliseconds())
					}
				}

				q.logger.Info("extraction worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *Queue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.JobID)
		return common.NewAppError("QUEUE_CLOSED",
			fmt.Sprintf("job %d rejected", job.JobID), common.ErrShuttingDown)
	}
	select {
	case q.ch <- job:
		q.logger.Info("job queued", "job_id", job.JobID)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", job.JobID)
		q.ch <- job
	}
	return nil
}

func (q *Queue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
