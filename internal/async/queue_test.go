package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/phenobase/trait-extractor/internal/common"
)

type recordingRunner struct {
	mu   sync.Mutex
	runs []int
	done chan struct{}
	want int
}

func newRecordingRunner(want int) *recordingRunner {
	return &recordingRunner{done: make(chan struct{}), want: want}
}

func (r *recordingRunner) RunJob(_ context.Context, jobID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, jobID)
	if len(r.runs) == r.want {
		close(r.done)
	}
	return nil
}

func TestQueueRunsAllJobs(t *testing.T) {
	runner := newRecordingRunner(5)
	q := NewQueue(runner, nil, WithWorkers(2), WithQueueSize(8))

	for i := 1; i <= 5; i++ {
		if err := q.Enqueue(context.Background(), Job{JobID: i, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}

	select {
	case <-runner.done:
	case <-time.After(5 * time.Second):
		t.Fatal("workers did not run all jobs in time")
	}

	q.Shutdown(context.Background())

	runner.mu.Lock()
	defer runner.mu.Unlock()
	seen := make(map[int]bool, len(runner.runs))
	for _, id := range runner.runs {
		seen[id] = true
	}
	for i := 1; i <= 5; i++ {
		if !seen[i] {
			t.Errorf("job %d never ran", i)
		}
	}
}

func TestQueueShutdownDrains(t *testing.T) {
	runner := newRecordingRunner(3)
	q := NewQueue(runner, nil, WithWorkers(1), WithQueueSize(8))

	for i := 1; i <= 3; i++ {
		if err := q.Enqueue(context.Background(), Job{JobID: i, SubmittedAt: time.Now()}); err != nil {
			t.Fatal(err)
		}
	}
	q.Shutdown(context.Background())

	runner.mu.Lock()
	got := len(runner.runs)
	runner.mu.Unlock()
	if got != 3 {
		t.Errorf("ran %d jobs before shutdown completed, want 3", got)
	}
}

func TestQueueRejectsAfterShutdown(t *testing.T) {
	runner := newRecordingRunner(1)
	q := NewQueue(runner, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	// callers must learn the job will never run
	err := q.Enqueue(context.Background(), Job{JobID: 9})
	if !errors.Is(err, common.ErrShuttingDown) {
		t.Errorf("Enqueue after shutdown: error = %v, want ErrShuttingDown", err)
	}
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if len(runner.runs) != 0 {
		t.Errorf("jobs ran after shutdown: %v", runner.runs)
	}
}
