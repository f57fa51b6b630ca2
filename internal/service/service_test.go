package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/adapter"
	"github.com/phenobase/trait-extractor/internal/api"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/entity"
	"github.com/phenobase/trait-extractor/internal/profile"
	"github.com/phenobase/trait-extractor/internal/repository"
)

// scriptRunner responds per subcommand; extraction output is keyed by
// the runtime contract (one inner slice per input text).
type scriptRunner struct {
	extractOut string
	extractErr error
}

func (r *scriptRunner) Run(_ context.Context, _ []byte, _ string, args ...string) ([]byte, []byte, error) {
	switch args[len(args)-1] {
	case "warmup":
		return []byte(`{}`), nil, nil
	case "extract":
		if r.extractErr != nil {
			return nil, []byte("backend blew up"), r.extractErr
		}
		return []byte(r.extractOut), nil, nil
	case "train":
		return []byte(`{"status":"completed"}`), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected subcommand")
}

// --- in-memory repositories ---

type memDocs struct {
	mu   sync.Mutex
	docs map[int]*entity.Document
}

func newMemDocs(docs ...*entity.Document) *memDocs {
	m := &memDocs{docs: make(map[int]*entity.Document)}
	for _, d := range docs {
		m.docs[d.ID] = d
	}
	return m
}

func (m *memDocs) GetByID(_ context.Context, id int) (*entity.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[id]
	if !ok {
		return nil, common.NewAppError("DOCUMENT_NOT_FOUND",
			fmt.Sprintf("document %d", id), common.ErrNotFound)
	}
	copied := *d
	return &copied, nil
}

func (m *memDocs) Register(_ context.Context, req repository.RegisterDocumentRequest) (*entity.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := &entity.Document{
		ID:          len(m.docs) + 1,
		ProjectID:   req.ProjectID,
		FilePath:    req.FilePath,
		TextContent: req.TextContent,
	}
	m.docs[d.ID] = d
	return d, nil
}

func (m *memDocs) UpdateStatus(_ context.Context, id int, status constants.DocumentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d, ok := m.docs[id]; ok {
		d.Status = string(status)
	}
	return nil
}

type memJobs struct {
	mu   sync.Mutex
	seq  int
	jobs map[int]*entity.ExtractionJob
}

func newMemJobs() *memJobs {
	return &memJobs{jobs: make(map[int]*entity.ExtractionJob)}
}

func (m *memJobs) Create(_ context.Context, req repository.CreateJobRequest) (*entity.ExtractionJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	job := &entity.ExtractionJob{
		ID:           m.seq,
		ProjectID:    req.ProjectID,
		DocumentIDs:  append([]int{}, req.DocumentIDs...),
		ModelProfile: req.ModelProfile,
		Mode:         req.Mode,
		Status:       constants.JobStatusPending,
		Total:        len(req.DocumentIDs),
	}
	m.jobs[job.ID] = job
	copied := *job
	return &copied, nil
}

func (m *memJobs) GetByID(_ context.Context, id int) (*entity.ExtractionJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, common.NewAppError("JOB_NOT_FOUND",
			fmt.Sprintf("job %d", id), common.ErrNotFound)
	}
	copied := *job
	copied.DocumentIDs = append([]int{}, job.DocumentIDs...)
	return &copied, nil
}

func (m *memJobs) List(_ context.Context, filter entity.JobFilter, _ entity.Page) ([]entity.ExtractionJob, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.ExtractionJob
	for _, job := range m.jobs {
		if filter.Status != nil && job.Status != *filter.Status {
			continue
		}
		if filter.Profile != nil && job.ModelProfile != *filter.Profile {
			continue
		}
		out = append(out, *job)
	}
	return out, len(out), nil
}

func (m *memJobs) transition(id int, from []constants.JobStatus, to constants.JobStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return common.NewAppError("JOB_NOT_FOUND",
			fmt.Sprintf("job %d", id), common.ErrNotFound)
	}
	for _, f := range from {
		if job.Status == f {
			job.Status = to
			return nil
		}
	}
	return common.NewAppError("JOB_TRANSITION_REFUSED",
		fmt.Sprintf("job %d: cannot transition %s -> %s", id, job.Status, to),
		common.ErrJobTerminal)
}

func (m *memJobs) MarkRunning(_ context.Context, id int) error {
	return m.transition(id, []constants.JobStatus{constants.JobStatusPending}, constants.JobStatusRunning)
}

func (m *memJobs) SetProgress(_ context.Context, id, progress int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil
	}
	// mirrors the guarded SQL update: running jobs only, monotonic
	if job.Status == constants.JobStatusRunning && progress > job.Progress {
		job.Progress = progress
	}
	return nil
}

func (m *memJobs) MarkCompleted(_ context.Context, id, totalTriples int) error {
	if err := m.transition(id, []constants.JobStatus{constants.JobStatusRunning}, constants.JobStatusCompleted); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[id].TotalTriples = &totalTriples
	return nil
}

func (m *memJobs) MarkFailed(_ context.Context, id int, message string) error {
	if err := m.transition(id, []constants.JobStatus{
		constants.JobStatusPending, constants.JobStatusRunning,
	}, constants.JobStatusFailed); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[id].ErrorMessage = &message
	return nil
}

func (m *memJobs) MarkCancelled(_ context.Context, id int) error {
	return m.transition(id, []constants.JobStatus{constants.JobStatusPending}, constants.JobStatusCancelled)
}

type memTriples struct {
	mu         sync.Mutex
	inserted   []entity.Triple
	failInsert error
}

func (m *memTriples) InsertBatch(_ context.Context, triples []entity.Triple) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failInsert != nil {
		return 0, m.failInsert
	}
	m.inserted = append(m.inserted, triples...)
	return len(triples), nil
}

func (m *memTriples) ListByJob(_ context.Context, jobID int) ([]entity.Triple, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Triple
	for _, t := range m.inserted {
		if t.JobID != nil && *t.JobID == jobID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTriples) List(_ context.Context, _ entity.TripleFilter) ([]entity.Triple, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entity.Triple{}, m.inserted...), nil
}

type memTraining struct {
	mu       sync.Mutex
	seq      int
	outcomes map[int]repository.TrainingOutcome
}

func (m *memTraining) Start(_ context.Context, modelProfile string) (*entity.TrainingRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = make(map[int]repository.TrainingOutcome)
	}
	m.seq++
	return &entity.TrainingRun{ID: m.seq, ModelProfile: modelProfile, Status: "running"}, nil
}

func (m *memTraining) Finish(_ context.Context, id int, outcome repository.TrainingOutcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[id] = outcome
	return nil
}

type stubRemote struct {
	resp *api.ExtractResponse
	err  error
}

func (s *stubRemote) ExtractTriples(_ context.Context, _ api.ExtractRequest) (*api.ExtractResponse, error) {
	return s.resp, s.err
}

func (s *stubRemote) TrainModel(_ context.Context, _ api.TrainRequest) (*api.TrainResponse, error) {
	return &api.TrainResponse{Status: "completed"}, s.err
}

// --- fixture ---

type fixture struct {
	svc      *Service
	docs     *memDocs
	jobs     *memJobs
	triples  *memTriples
	training *memTraining
}

func newFixture(t *testing.T, runner adapter.Runner, remote RemoteExtractor, localMode bool) *fixture {
	t.Helper()
	profiles, err := profile.New([]profile.Profile{
		{Name: "spacy-sm", Backend: constants.BackendSpacy},
		{Name: "hf-bert", Backend: constants.BackendHuggingFace},
	})
	if err != nil {
		t.Fatal(err)
	}
	registry := adapter.NewRegistry(adapter.NewFactory(nil, runner), profiles, nil)

	f := &fixture{
		docs:     newMemDocs(),
		jobs:     newMemJobs(),
		triples:  &memTriples{},
		training: &memTraining{},
	}
	f.svc = NewService(nil, profiles, registry,
		f.docs, f.jobs, f.triples, f.training, remote, localMode)
	return f
}

func oneTripleOutput() string {
	return `{"results":[[{
		"source":"Quercus robur","source_label":"SPECIES",
		"relation":"has_trait",
		"sink":"deciduous","sink_label":"TRAIT",
		"confidence":0.9,
		"sentence":"Quercus robur is deciduous."
	}]]}`
}

// --- tests ---

func TestCreateJobUnknownProfileFailsFast(t *testing.T) {
	f := newFixture(t, &scriptRunner{}, nil, true)

	_, err := f.svc.CreateJob(context.Background(), ExtractRequest{
		DocumentIDs: []int{1},
		Profile:     "missing",
	})
	if !errors.Is(err, common.ErrConfiguration) {
		t.Fatalf("error = %v, want ErrConfiguration", err)
	}
	if len(f.jobs.jobs) != 0 {
		t.Error("a job row was created despite the configuration error")
	}
}

func TestCreateJobDefaults(t *testing.T) {
	f := newFixture(t, &scriptRunner{}, nil, true)

	job, err := f.svc.CreateJob(context.Background(), ExtractRequest{
		DocumentIDs: []int{4, 7, 9},
		Profile:     "spacy-sm",
	})
	if err != nil {
		t.Fatal(err)
	}
	if job.Status != constants.JobStatusPending {
		t.Errorf("status = %q, want pending", job.Status)
	}
	if job.Total != 3 || job.Progress != 0 {
		t.Errorf("total/progress = %d/%d, want 3/0", job.Total, job.Progress)
	}
	if job.Mode != constants.ModeNoTraining {
		t.Errorf("mode = %q, want no_training", job.Mode)
	}
	if len(job.DocumentIDs) != 3 || job.DocumentIDs[0] != 4 {
		t.Errorf("document ids = %v", job.DocumentIDs)
	}
}

// failingGetJobs creates jobs fine but cannot read them back, like a
// connection dropped right after the insert committed.
type failingGetJobs struct {
	*memJobs
	getErr error
}

func (f *failingGetJobs) GetByID(context.Context, int) (*entity.ExtractionJob, error) {
	return nil, f.getErr
}

func TestExtractFromDocumentsSurvivesStatusReadFailure(t *testing.T) {
	f := newFixture(t, &scriptRunner{extractOut: oneTripleOutput()}, nil, true)
	f.docs.docs[1] = &entity.Document{ID: 1, TextContent: "some text"}
	jobs := &failingGetJobs{memJobs: f.jobs, getErr: errors.New("connection reset by peer")}
	svc := NewService(nil, f.svc.profiles, f.svc.adapters, f.docs, jobs, f.triples, f.training, nil, true)

	result, err := svc.ExtractFromDocuments(context.Background(), ExtractRequest{
		DocumentIDs: []int{1},
		Profile:     "spacy-sm",
	})
	if err != nil {
		t.Fatalf("submission error = %v; read failures after create are recorded, not returned", err)
	}
	if result == nil {
		t.Fatal("result is nil; callers poll result.JobID")
	}
	if result.JobID == 0 {
		t.Error("result has no job id")
	}
	if result.Status != constants.JobStatusPending {
		t.Errorf("status = %q, want pending (job never started)", result.Status)
	}
}

func TestLocalRunHappyPath(t *testing.T) {
	f := newFixture(t, &scriptRunner{extractOut: oneTripleOutput()}, nil, true)
	projectID := 12
	f.docs.docs[1] = &entity.Document{ID: 1, ProjectID: &projectID, TextContent: "Quercus robur is deciduous."}
	f.docs.docs[2] = &entity.Document{ID: 2, TextContent: "Another oak fact."}

	result, err := f.svc.ExtractFromDocuments(context.Background(), ExtractRequest{
		DocumentIDs: []int{1, 2},
		Profile:     "spacy-sm",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %q, want completed", result.Status)
	}
	if result.TotalTriples != 2 {
		t.Errorf("total_triples = %d, want 2 (one per document)", result.TotalTriples)
	}

	job, err := f.svc.GetJobStatus(context.Background(), result.JobID)
	if err != nil {
		t.Fatal(err)
	}
	if job.Progress != 2 || job.Total != 2 {
		t.Errorf("progress/total = %d/%d, want 2/2", job.Progress, job.Total)
	}
	if job.TotalTriples == nil || *job.TotalTriples != 2 {
		t.Errorf("persisted total_triples = %v, want 2", job.TotalTriples)
	}

	triples, _ := f.triples.ListByJob(context.Background(), result.JobID)
	if len(triples) != 2 {
		t.Fatalf("persisted %d triples, want 2", len(triples))
	}
	first := triples[0]
	if first.DocumentID == nil || *first.DocumentID != 1 {
		t.Errorf("triple document linkage = %v, want 1", first.DocumentID)
	}
	if first.ProjectID == nil || *first.ProjectID != projectID {
		t.Errorf("triple project linkage = %v, want %d", first.ProjectID, projectID)
	}
	if first.SourceEntityAttr != string(constants.Taxon) {
		t.Errorf("source attr = %q, want taxon", first.SourceEntityAttr)
	}
	if first.Status != constants.TripleStatusRaw {
		t.Errorf("triple status = %q, want raw", first.Status)
	}
}

func TestLocalRunSkipsMissingAndEmptyDocuments(t *testing.T) {
	f := newFixture(t, &scriptRunner{extractOut: oneTripleOutput()}, nil, true)
	f.docs.docs[1] = &entity.Document{ID: 1, TextContent: "Quercus robur is deciduous."}
	f.docs.docs[3] = &entity.Document{ID: 3, TextContent: "   "}
	// document 2 does not exist at all

	result, err := f.svc.ExtractFromDocuments(context.Background(), ExtractRequest{
		DocumentIDs: []int{1, 2, 3},
		Profile:     "spacy-sm",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %q, want completed", result.Status)
	}
	if result.TotalTriples != 1 {
		t.Errorf("total_triples = %d, want 1 (skipped docs yield nothing)", result.TotalTriples)
	}

	job, _ := f.svc.GetJobStatus(context.Background(), result.JobID)
	if job.Progress != 3 {
		t.Errorf("progress = %d, want 3 (skipped docs still count)", job.Progress)
	}
}

func TestLocalRunAdapterFailureFailsJob(t *testing.T) {
	f := newFixture(t, &scriptRunner{extractErr: errors.New("exit status 1")}, nil, true)
	f.docs.docs[1] = &entity.Document{ID: 1, TextContent: "some text"}

	result, err := f.svc.ExtractFromDocuments(context.Background(), ExtractRequest{
		DocumentIDs: []int{1},
		Profile:     "spacy-sm",
	})
	if err != nil {
		t.Fatalf("submission error = %v; failures are recorded on the job", err)
	}
	if result.Status != constants.JobStatusFailed {
		t.Fatalf("status = %q, want failed", result.Status)
	}

	job, _ := f.svc.GetJobStatus(context.Background(), result.JobID)
	if job.Status != constants.JobStatusFailed {
		t.Errorf("job status = %q, want failed", job.Status)
	}
	if job.ErrorMessage == nil || *job.ErrorMessage == "" {
		t.Error("job has no error message")
	}
	if len(f.triples.inserted) != 0 {
		t.Error("triples were persisted for a failed run")
	}
}

func TestLocalRunPersistFailureDiscardsBatch(t *testing.T) {
	f := newFixture(t, &scriptRunner{extractOut: oneTripleOutput()}, nil, true)
	f.docs.docs[1] = &entity.Document{ID: 1, TextContent: "some text"}
	f.triples.failInsert = errors.New("deadlock detected")

	result, err := f.svc.ExtractFromDocuments(context.Background(), ExtractRequest{
		DocumentIDs: []int{1},
		Profile:     "spacy-sm",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != constants.JobStatusFailed {
		t.Fatalf("status = %q, want failed", result.Status)
	}
	if len(f.triples.inserted) != 0 {
		t.Error("partial batch was persisted")
	}
}

func TestCancelledJobIsNotRun(t *testing.T) {
	f := newFixture(t, &scriptRunner{extractOut: oneTripleOutput()}, nil, true)
	f.docs.docs[1] = &entity.Document{ID: 1, TextContent: "text"}

	job, err := f.svc.CreateJob(context.Background(), ExtractRequest{
		DocumentIDs: []int{1},
		Profile:     "spacy-sm",
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.svc.CancelJob(context.Background(), job.ID); err != nil {
		t.Fatalf("CancelJob: %v", err)
	}

	result, err := f.svc.Run(context.Background(), job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != constants.JobStatusCancelled {
		t.Errorf("status = %q, want cancelled", result.Status)
	}
	if len(f.triples.inserted) != 0 {
		t.Error("a cancelled job produced triples")
	}
}

func TestCancelRejectedAfterTerminal(t *testing.T) {
	f := newFixture(t, &scriptRunner{extractOut: oneTripleOutput()}, nil, true)
	f.docs.docs[1] = &entity.Document{ID: 1, TextContent: "text"}

	result, err := f.svc.ExtractFromDocuments(context.Background(), ExtractRequest{
		DocumentIDs: []int{1},
		Profile:     "spacy-sm",
	})
	if err != nil {
		t.Fatal(err)
	}

	err = f.svc.CancelJob(context.Background(), result.JobID)
	if !errors.Is(err, common.ErrJobTerminal) {
		t.Errorf("cancel of completed job: error = %v, want ErrJobTerminal", err)
	}
}

func TestRemoteRunSuccess(t *testing.T) {
	remote := &stubRemote{resp: &api.ExtractResponse{
		Status:       "completed",
		TotalTriples: 3,
		Triples: []entity.Triple{
			{SourceEntityName: "a", RelationType: "has_trait", SinkEntityName: "b", Sentence: "s1"},
			{SourceEntityName: "c", RelationType: "has_value", SinkEntityName: "d", Sentence: "s2"},
			{SourceEntityName: "e", RelationType: "found_in", SinkEntityName: "f", Sentence: "s3"},
		},
	}}
	f := newFixture(t, &scriptRunner{}, remote, false)
	f.docs.docs[1] = &entity.Document{ID: 1, TextContent: "text one"}
	f.docs.docs[2] = &entity.Document{ID: 2, TextContent: "text two"}

	result, err := f.svc.ExtractFromDocuments(context.Background(), ExtractRequest{
		DocumentIDs: []int{1, 2},
		Profile:     "spacy-sm",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %q, want completed", result.Status)
	}
	if result.TotalTriples != 3 {
		t.Errorf("total_triples = %d, want 3", result.TotalTriples)
	}

	job, _ := f.svc.GetJobStatus(context.Background(), result.JobID)
	if job.Progress != job.Total {
		t.Errorf("progress = %d, want total %d", job.Progress, job.Total)
	}
	for i, tr := range f.triples.inserted {
		if tr.JobID == nil || *tr.JobID != result.JobID {
			t.Errorf("triple %d missing job linkage", i)
		}
		if tr.ModelProfile != "spacy-sm" {
			t.Errorf("triple %d model_profile = %q", i, tr.ModelProfile)
		}
	}
}

func TestRemoteRunFailureRecordsPrefixedMessage(t *testing.T) {
	remote := &stubRemote{err: common.NewRemoteServiceError("peer status 503: overloaded", nil)}
	f := newFixture(t, &scriptRunner{}, remote, false)
	f.docs.docs[1] = &entity.Document{ID: 1, TextContent: "text"}

	result, err := f.svc.ExtractFromDocuments(context.Background(), ExtractRequest{
		DocumentIDs: []int{1},
		Profile:     "spacy-sm",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != constants.JobStatusFailed {
		t.Fatalf("status = %q, want failed", result.Status)
	}

	job, _ := f.svc.GetJobStatus(context.Background(), result.JobID)
	if job.ErrorMessage == nil {
		t.Fatal("job has no error message")
	}
	if !strings.HasPrefix(*job.ErrorMessage, "Remote server error: ") {
		t.Errorf("error message %q lacks the remote prefix", *job.ErrorMessage)
	}
	if !strings.Contains(*job.ErrorMessage, "peer status 503") {
		t.Errorf("error message %q lost the peer detail", *job.ErrorMessage)
	}
	if len(f.triples.inserted) != 0 {
		t.Error("triples persisted despite remote failure")
	}
}

func TestExtractPayloadDoesNotPersist(t *testing.T) {
	f := newFixture(t, &scriptRunner{extractOut: oneTripleOutput()}, nil, true)

	jobID := 42
	triples, err := f.svc.ExtractPayload(context.Background(), "spacy-sm",
		[]api.DocumentPayload{{ID: 7, Text: "Quercus robur is deciduous."}}, &jobID)
	if err != nil {
		t.Fatal(err)
	}
	if len(triples) != 1 {
		t.Fatalf("got %d triples, want 1", len(triples))
	}
	if triples[0].JobID == nil || *triples[0].JobID != jobID {
		t.Errorf("job linkage = %v, want %d", triples[0].JobID, jobID)
	}
	if triples[0].DocumentID == nil || *triples[0].DocumentID != 7 {
		t.Errorf("document linkage = %v, want 7", triples[0].DocumentID)
	}
	if len(f.triples.inserted) != 0 {
		t.Error("payload extraction persisted triples")
	}
}

func TestExtractPayloadUnknownProfile(t *testing.T) {
	f := newFixture(t, &scriptRunner{}, nil, true)
	_, err := f.svc.ExtractPayload(context.Background(), "missing", nil, nil)
	if !errors.Is(err, common.ErrConfiguration) {
		t.Errorf("error = %v, want ErrConfiguration", err)
	}
}

func TestTrainModelRecordsRun(t *testing.T) {
	f := newFixture(t, &scriptRunner{}, nil, true)

	resp, err := f.svc.TrainModel(context.Background(), api.TrainRequest{
		ModelProfile: "spacy-sm",
		NumEpochs:    2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != "completed" {
		t.Errorf("status = %q, want completed", resp.Status)
	}
	outcome, ok := f.training.outcomes[1]
	if !ok {
		t.Fatal("training run was not finished")
	}
	if outcome.Status != "completed" {
		t.Errorf("recorded status = %q, want completed", outcome.Status)
	}
}

func TestTrainModelUnknownProfile(t *testing.T) {
	f := newFixture(t, &scriptRunner{}, nil, true)
	_, err := f.svc.TrainModel(context.Background(), api.TrainRequest{ModelProfile: "missing"})
	if !errors.Is(err, common.ErrConfiguration) {
		t.Errorf("error = %v, want ErrConfiguration", err)
	}
	if f.training.seq != 0 {
		t.Error("a training run was started for an unknown profile")
	}
}
