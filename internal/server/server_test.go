package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/adapter"
	"github.com/phenobase/trait-extractor/internal/api"
	"github.com/phenobase/trait-extractor/internal/async"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/entity"
	"github.com/phenobase/trait-extractor/internal/export"
	"github.com/phenobase/trait-extractor/internal/profile"
	"github.com/phenobase/trait-extractor/internal/repository"
	"github.com/phenobase/trait-extractor/internal/service"
)

// stubRunner answers the backend runtime protocol with fixed output.
type stubRunner struct{}

func (stubRunner) Run(_ context.Context, _ []byte, _ string, args ...string) ([]byte, []byte, error) {
	switch args[len(args)-1] {
	case "warmup":
		return []byte(`{}`), nil, nil
	case "extract":
		return []byte(`{"results":[[{
			"source":"Quercus robur","source_label":"SPECIES",
			"relation":"has_trait",
			"sink":"deciduous","sink_label":"TRAIT",
			"confidence":0.9,
			"sentence":"Quercus robur is deciduous."
		}]]}`), nil, nil
	case "train":
		return []byte(`{"status":"completed"}`), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected subcommand")
}

// noopRunner keeps queued jobs pending so handler tests stay deterministic.
type noopRunner struct{}

func (noopRunner) RunJob(context.Context, int) error { return nil }

type stubJobs struct {
	mu   sync.Mutex
	seq  int
	jobs map[int]*entity.ExtractionJob
}

func (s *stubJobs) Create(_ context.Context, req repository.CreateJobRequest) (*entity.ExtractionJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.jobs == nil {
		s.jobs = make(map[int]*entity.ExtractionJob)
	}
	s.seq++
	job := &entity.ExtractionJob{
		ID:           s.seq,
		DocumentIDs:  req.DocumentIDs,
		ModelProfile: req.ModelProfile,
		Mode:         req.Mode,
		Status:       constants.JobStatusPending,
		Total:        len(req.DocumentIDs),
	}
	s.jobs[job.ID] = job
	return job, nil
}

func (s *stubJobs) GetByID(_ context.Context, id int) (*entity.ExtractionJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, common.NewAppError("JOB_NOT_FOUND", fmt.Sprintf("job %d", id), common.ErrNotFound)
	}
	return job, nil
}

func (s *stubJobs) List(context.Context, entity.JobFilter, entity.Page) ([]entity.ExtractionJob, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.ExtractionJob
	for _, j := range s.jobs {
		out = append(out, *j)
	}
	return out, len(out), nil
}

func (s *stubJobs) MarkRunning(context.Context, int) error      { return nil }
func (s *stubJobs) SetProgress(context.Context, int, int) error { return nil }
func (s *stubJobs) MarkCompleted(context.Context, int, int) error {
	return nil
}
func (s *stubJobs) MarkFailed(context.Context, int, string) error { return nil }

func (s *stubJobs) MarkCancelled(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return common.NewAppError("JOB_NOT_FOUND", fmt.Sprintf("job %d", id), common.ErrNotFound)
	}
	if job.Status != constants.JobStatusPending {
		return common.NewAppError("JOB_TRANSITION_REFUSED",
			fmt.Sprintf("job %d: cannot transition %s -> cancelled", id, job.Status),
			common.ErrJobTerminal)
	}
	job.Status = constants.JobStatusCancelled
	return nil
}

type stubTriples struct{}

func (stubTriples) InsertBatch(_ context.Context, triples []entity.Triple) (int, error) {
	return len(triples), nil
}
func (stubTriples) ListByJob(context.Context, int) ([]entity.Triple, error) { return nil, nil }
func (stubTriples) List(context.Context, entity.TripleFilter) ([]entity.Triple, error) {
	return []entity.Triple{{
		SourceEntityName: "Quercus robur",
		SourceEntityAttr: "taxon",
		RelationType:     "has_trait",
		SinkEntityName:   "deciduous",
		SinkEntityAttr:   "trait",
		Confidence:       0.9,
		ModelProfile:     "spacy-sm",
		Status:           constants.TripleStatusRaw,
		Sentence:         "Quercus robur is deciduous.",
	}}, nil
}

func newTestServer(t *testing.T, apiKey string) (*Server, *stubJobs) {
	t.Helper()
	profiles, err := profile.New([]profile.Profile{
		{Name: "spacy-sm", Description: "small spaCy pipeline", Backend: constants.BackendSpacy},
	})
	if err != nil {
		t.Fatal(err)
	}
	registry := adapter.NewRegistry(adapter.NewFactory(nil, stubRunner{}), profiles, nil)
	jobs := &stubJobs{}
	triples := stubTriples{}
	svc := service.NewService(nil, profiles, registry, nil, jobs, triples, nil, nil, true)

	queue := async.NewQueue(noopRunner{}, nil, async.WithWorkers(1))
	t.Cleanup(func() { queue.Shutdown(context.Background()) })

	return New(common.ServerConfig{APIKey: apiKey}, svc, queue, export.NewService(triples, nil), nil), jobs
}

func doJSON(t *testing.T, h http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, "")
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp api.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" {
		t.Errorf("health status = %q", resp.Status)
	}
	if resp.LoadedAdapters == nil || len(resp.LoadedAdapters) != 0 {
		t.Errorf("loaded_adapters = %v, want empty list", resp.LoadedAdapters)
	}
}

func TestModels(t *testing.T) {
	srv, _ := newTestServer(t, "")
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/models", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var infos []profile.Info
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 || infos[0].Name != "spacy-sm" || infos[0].Backend != "spacy" {
		t.Errorf("models = %+v", infos)
	}
}

func TestBearerAuth(t *testing.T) {
	srv, _ := newTestServer(t, "topsecret")

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Basic abc", http.StatusUnauthorized},
		{"wrong key", "Bearer nope", http.StatusForbidden},
		{"right key", "Bearer topsecret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.header != "" {
				h.Set("Authorization", tt.header)
			}
			rec := doJSON(t, srv.Handler(), http.MethodGet, "/health", "", h)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestAuthDisabledWithoutKey(t *testing.T) {
	srv, _ := newTestServer(t, "")
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 with auth disabled", rec.Code)
	}
}

func TestExtractTriplesEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, "")

	body := `{"model_profile":"spacy-sm","documents":[{"id":1,"text":"Quercus robur is deciduous."}]}`
	rec := doJSON(t, srv.Handler(), http.MethodPost, "/extract_triples", body, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp api.ExtractResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "completed" || resp.TotalTriples != 1 {
		t.Errorf("response = %+v", resp)
	}
	if len(resp.Triples) != 1 || resp.Triples[0].RelationType != "has_trait" {
		t.Errorf("triples = %+v", resp.Triples)
	}
}

func TestExtractTriplesValidation(t *testing.T) {
	srv, _ := newTestServer(t, "")

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing profile", `{"documents":[]}`, http.StatusBadRequest},
		{"unknown profile", `{"model_profile":"missing"}`, http.StatusBadRequest},
		{"invalid json", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv.Handler(), http.MethodPost, "/extract_triples", tt.body, nil)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestSubmitAndPollJob(t *testing.T) {
	srv, _ := newTestServer(t, "")

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/jobs",
		`{"model_profile":"spacy-sm","document_ids":[1,2,3]}`, nil)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202 (body %s)", rec.Code, rec.Body.String())
	}
	var submitted api.SubmitJobResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &submitted); err != nil {
		t.Fatal(err)
	}
	if submitted.Status != string(constants.JobStatusPending) || submitted.Total != 3 {
		t.Errorf("submit response = %+v", submitted)
	}

	rec = doJSON(t, srv.Handler(), http.MethodGet, fmt.Sprintf("/jobs/%d", submitted.JobID), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get job status = %d", rec.Code)
	}
	var job entity.ExtractionJob
	if err := json.Unmarshal(rec.Body.Bytes(), &job); err != nil {
		t.Fatal(err)
	}
	if job.ID != submitted.JobID || job.Total != 3 {
		t.Errorf("job = %+v", job)
	}
}

func TestSubmitJobValidation(t *testing.T) {
	srv, _ := newTestServer(t, "")

	tests := []struct {
		name string
		body string
	}{
		{"missing profile", `{"document_ids":[1]}`},
		{"missing documents", `{"model_profile":"spacy-sm"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv.Handler(), http.MethodPost, "/jobs", tt.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestSubmitJobWhileShuttingDown(t *testing.T) {
	profiles, err := profile.New([]profile.Profile{
		{Name: "spacy-sm", Backend: constants.BackendSpacy},
	})
	if err != nil {
		t.Fatal(err)
	}
	registry := adapter.NewRegistry(adapter.NewFactory(nil, stubRunner{}), profiles, nil)
	svc := service.NewService(nil, profiles, registry, nil, &stubJobs{}, stubTriples{}, nil, nil, true)

	queue := async.NewQueue(noopRunner{}, nil, async.WithWorkers(1))
	queue.Shutdown(context.Background())
	srv := New(common.ServerConfig{}, svc, queue, export.NewService(stubTriples{}, nil), nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/jobs",
		`{"model_profile":"spacy-sm","document_ids":[1]}`, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestGetJobNotFound(t *testing.T) {
	srv, _ := newTestServer(t, "")
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/jobs/99", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCancelJob(t *testing.T) {
	srv, jobs := newTestServer(t, "")

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/jobs",
		`{"model_profile":"spacy-sm","document_ids":[1]}`, nil)
	if rec.Code != http.StatusAccepted {
		t.Fatal(rec.Body.String())
	}
	var submitted api.SubmitJobResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &submitted); err != nil {
		t.Fatal(err)
	}

	rec = doJSON(t, srv.Handler(), http.MethodPost, fmt.Sprintf("/jobs/%d/cancel", submitted.JobID), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel status = %d (body %s)", rec.Code, rec.Body.String())
	}

	// cancelling a terminal job conflicts
	rec = doJSON(t, srv.Handler(), http.MethodPost, fmt.Sprintf("/jobs/%d/cancel", submitted.JobID), "", nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("second cancel status = %d, want 409", rec.Code)
	}

	jobs.mu.Lock()
	status := jobs.jobs[submitted.JobID].Status
	jobs.mu.Unlock()
	if status != constants.JobStatusCancelled {
		t.Errorf("job status = %q, want cancelled", status)
	}
}

func TestExportJob(t *testing.T) {
	srv, _ := newTestServer(t, "")
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/jobs/1/export", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content-type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "triples_job_1.xlsx") {
		t.Errorf("content-disposition = %q", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty workbook body")
	}
}

func TestUnloadEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, "")

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/unload_model", `{"model_profile":"spacy-sm"}`, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("unload_model status = %d", rec.Code)
	}

	rec = doJSON(t, srv.Handler(), http.MethodPost, "/unload_all", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("unload_all status = %d", rec.Code)
	}
}
