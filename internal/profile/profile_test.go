package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/common"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	content := `
profiles:
  - name: spacy-sm
    description: small pipeline
    backend: spacy
    params:
      model: en_core_web_sm
  - name: hf-bert
    backend: huggingface
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p, err := reg.Get("spacy-sm")
	if err != nil {
		t.Fatalf("Get(spacy-sm): %v", err)
	}
	if p.Backend != constants.BackendSpacy {
		t.Errorf("backend = %q, want %q", p.Backend, constants.BackendSpacy)
	}
	if p.Params["model"] != "en_core_web_sm" {
		t.Errorf("params[model] = %v, want en_core_web_sm", p.Params["model"])
	}

	infos := reg.List()
	if len(infos) != 2 {
		t.Fatalf("List returned %d profiles, want 2", len(infos))
	}
	if infos[0].ID != 1 || infos[0].Name != "spacy-sm" {
		t.Errorf("List[0] = %+v, want id 1 spacy-sm", infos[0])
	}
	if infos[1].ID != 2 || infos[1].Backend != "huggingface" {
		t.Errorf("List[1] = %+v, want id 2 backend huggingface", infos[1])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestGetUnknownProfile(t *testing.T) {
	reg, err := New([]Profile{{Name: "a", Backend: constants.BackendSpacy}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = reg.Get("missing")
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if !errors.Is(err, common.ErrConfiguration) {
		t.Errorf("error %v, want ErrConfiguration", err)
	}
}

func TestNewRejectsBadRegistries(t *testing.T) {
	tests := []struct {
		name     string
		profiles []Profile
	}{
		{"empty name", []Profile{{Name: "", Backend: constants.BackendSpacy}}},
		{"duplicate name", []Profile{
			{Name: "a", Backend: constants.BackendSpacy},
			{Name: "a", Backend: constants.BackendAllenNLP},
		}},
		{"unknown backend", []Profile{{Name: "a", Backend: "bert"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.profiles); !errors.Is(err, common.ErrConfiguration) {
				t.Errorf("New() error = %v, want ErrConfiguration", err)
			}
		})
	}
}
