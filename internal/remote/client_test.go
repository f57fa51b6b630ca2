package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phenobase/trait-extractor/internal/api"
	"github.com/phenobase/trait-extractor/internal/common"
)

func testClient(baseURL, apiKey string) *Client {
	return NewClient(common.RemoteConfig{BaseURL: baseURL, APIKey: apiKey}, nil)
}

func TestExtractTriplesSuccess(t *testing.T) {
	var gotAuth, gotPath string
	var gotReq api.ExtractRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "completed",
			"total_documents": 1,
			"total_triples": 1,
			"triples": [{
				"source_entity_name": "Quercus robur",
				"source_entity_attr": "taxon",
				"relation_type": "has_trait",
				"sink_entity_name": "deciduous",
				"sink_entity_attr": "trait",
				"confidence": 0.9,
				"model_profile": "spacy-sm",
				"status": "raw",
				"sentence": "Quercus robur is deciduous."
			}]
		}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, "secret")
	resp, err := c.ExtractTriples(context.Background(), api.ExtractRequest{
		ModelProfile: "spacy-sm",
		Documents:    []api.DocumentPayload{{ID: 1, Text: "Quercus robur is deciduous."}},
	})
	if err != nil {
		t.Fatalf("ExtractTriples: %v", err)
	}

	if gotPath != "/extract_triples" {
		t.Errorf("path = %q, want /extract_triples", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("authorization = %q, want Bearer secret", gotAuth)
	}
	if gotReq.ModelProfile != "spacy-sm" || len(gotReq.Documents) != 1 {
		t.Errorf("request = %+v", gotReq)
	}
	if resp.TotalTriples != 1 || len(resp.Triples) != 1 {
		t.Fatalf("response = %+v", resp)
	}
	if resp.Triples[0].SourceEntityName != "Quercus robur" {
		t.Errorf("triple = %+v", resp.Triples[0])
	}
}

func TestExtractTriplesNoAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("authorization header sent without a configured key")
		}
		_, _ = w.Write([]byte(`{"status":"completed","triples":[]}`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL, "").ExtractTriples(context.Background(), api.ExtractRequest{}); err != nil {
		t.Fatal(err)
	}
}

func TestExtractTriplesPeerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, "").ExtractTriples(context.Background(), api.ExtractRequest{})
	if err == nil {
		t.Fatal("expected error on peer 500")
	}
	if !errors.Is(err, common.ErrRemoteService) {
		t.Errorf("error = %v, want ErrRemoteService", err)
	}
	if !strings.Contains(err.Error(), "peer status 500") {
		t.Errorf("error %q does not name the peer status", err)
	}
}

func TestExtractTriplesConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listens anymore

	_, err := testClient(srv.URL, "").ExtractTriples(context.Background(), api.ExtractRequest{})
	if !errors.Is(err, common.ErrRemoteService) {
		t.Errorf("error = %v, want ErrRemoteService", err)
	}
}

func TestExtractTriplesRejectsMalformedTriples(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// confidence out of range, required keys missing
		_, _ = w.Write([]byte(`{"status":"completed","triples":[{"confidence":7}]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, "").ExtractTriples(context.Background(), api.ExtractRequest{})
	if err == nil {
		t.Fatal("expected schema validation error")
	}
	if !strings.Contains(err.Error(), "malformed triples") {
		t.Errorf("error = %v, want malformed triples", err)
	}
}

func TestTrainModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/train_model" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"completed","model_path":"/models/v2","metrics":{"f1":0.91}}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL, "").TrainModel(context.Background(), api.TrainRequest{ModelProfile: "hf-bert"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != "completed" || resp.ModelPath != "/models/v2" {
		t.Errorf("response = %+v", resp)
	}
}

func TestHealthAndUnload(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/health":
			_, _ = w.Write([]byte(`{"status":"ok","loaded_adapters":["spacy-sm"]}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	c := testClient(srv.URL, "")
	health, err := c.Health(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if health.Status != "ok" || len(health.LoadedAdapters) != 1 {
		t.Errorf("health = %+v", health)
	}

	if err := c.UnloadModel(context.Background(), "spacy-sm"); err != nil {
		t.Fatal(err)
	}
	if err := c.UnloadAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := []string{"/health", "/unload_model", "/unload_all"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v", paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}
