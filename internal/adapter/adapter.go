package adapter

import (
	"context"
	"encoding/json"

	"github.com/phenobase/trait-extractor/constants"
)

// Adapter is the contract every NLP backend variant satisfies. One
// adapter wraps exactly one backend runtime (spaCy, HuggingFace, LasUIE,
// AllenNLP) configured by one model profile.
//
// Load and Unload mutate backend-global resources (model weights, a
// worker process) and are not safe to call concurrently on the same
// instance; the Registry serializes access per instance.
type Adapter interface {
	// Load acquires backend resources. Idempotent: a second call on a
	// loaded adapter is a no-op. Returns a model-load failure when the
	// backend dependency or model artifact is unavailable.
	Load(ctx context.Context) error

	// Loaded reports whether resources are currently held.
	Loaded() bool

	// Extract returns one inner slice per input text, in input order.
	// A text yielding no triples produces an empty inner slice, never
	// an error. Calling Extract before Load triggers an implicit Load.
	Extract(ctx context.Context, texts []string) ([][]RawTriple, error)

	// Train fine-tunes the backend. Backends without training support
	// return a result with Status "not_implemented" rather than an error.
	Train(ctx context.Context, req TrainRequest) (TrainResult, error)

	// Normalize maps one backend-specific raw triple into the canonical
	// shape. It is total: unmapped entity labels fall back to the
	// generic category instead of failing.
	Normalize(raw RawTriple) CanonicalTriple

	// Unload releases resources. After Unload, Loaded reports false and
	// further extraction requires a reload.
	Unload() error
}

// RawTriple is a backend's own view of one extracted relation, before
// vocabulary normalization.
type RawTriple struct {
	Source      string  `json:"source"`
	SourceLabel string  `json:"source_label"`
	Relation    string  `json:"relation"`
	Sink        string  `json:"sink"`
	SinkLabel   string  `json:"sink_label"`
	Confidence  float64 `json:"confidence"`
	Sentence    string  `json:"sentence"`
	TraitName   string  `json:"trait_name,omitempty"`
	TraitValue  string  `json:"trait_value,omitempty"`
	Unit        string  `json:"unit,omitempty"`
}

// CanonicalTriple is the backend-agnostic shape every adapter normalizes
// into. Job/document linkage is attached later by the service, not here.
type CanonicalTriple struct {
	SourceEntityName string                 `json:"source_entity_name"`
	SourceEntityAttr string                 `json:"source_entity_attr"`
	RelationType     string                 `json:"relation_type"`
	SinkEntityName   string                 `json:"sink_entity_name"`
	SinkEntityAttr   string                 `json:"sink_entity_attr"`
	Confidence       float64                `json:"confidence"`
	ModelProfile     string                 `json:"model_profile"`
	Status           constants.TripleStatus `json:"status"`
	TraitName        string                 `json:"trait_name"`
	TraitValue       string                 `json:"trait_value"`
	Unit             string                 `json:"unit"`
	Sentence         string                 `json:"sentence"`
}

// TrainRequest carries training examples and hyperparameters.
type TrainRequest struct {
	Examples  json.RawMessage `json:"examples"`
	OutputDir string          `json:"output_dir,omitempty"`
	NumEpochs int             `json:"num_epochs"`
	BatchSize int             `json:"batch_size"`
}

// Training result statuses.
const (
	TrainCompleted      = "completed"
	TrainFailed         = "failed"
	TrainNotImplemented = "not_implemented"
)

// TrainResult is the outcome of a Train call.
type TrainResult struct {
	Status       string             `json:"status"`
	ArtifactPath string             `json:"artifact_path,omitempty"`
	Metrics      map[string]float64 `json:"metrics"`
	Error        string             `json:"error,omitempty"`
}

// notImplemented is the Train result for backends without training.
func notImplemented() TrainResult {
	return TrainResult{Status: TrainNotImplemented, Metrics: map[string]float64{}}
}
