package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/profile"
)

// fakeRunner scripts responses per subcommand (the last argument the
// adapter passes).
type fakeRunner struct {
	stdout map[string][]byte
	stderr map[string][]byte
	errs   map[string]error
	calls  []fakeCall
}

type fakeCall struct {
	subcommand string
	stdin      []byte
}

func (f *fakeRunner) Run(_ context.Context, stdin []byte, _ string, args ...string) ([]byte, []byte, error) {
	sub := args[len(args)-1]
	f.calls = append(f.calls, fakeCall{subcommand: sub, stdin: stdin})
	return f.stdout[sub], f.stderr[sub], f.errs[sub]
}

func (f *fakeRunner) count(sub string) int {
	n := 0
	for _, c := range f.calls {
		if c.subcommand == sub {
			n++
		}
	}
	return n
}

func spacyProfile() profile.Profile {
	return profile.Profile{
		Name:    "spacy-sm",
		Backend: constants.BackendSpacy,
		Params:  map[string]any{"model": "en_core_web_sm"},
	}
}

func extractOutput(results [][]RawTriple) []byte {
	b, _ := json.Marshal(extractResponse{Results: results})
	return b
}

func TestLoadIdempotent(t *testing.T) {
	runner := &fakeRunner{stdout: map[string][]byte{"warmup": []byte(`{}`)}}
	a := newSpacyAdapter(spacyProfile(), nil, runner)

	if a.Loaded() {
		t.Fatal("adapter reports loaded before Load")
	}
	if err := a.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !a.Loaded() {
		t.Fatal("adapter not loaded after Load")
	}
	if err := a.Load(context.Background()); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if got := runner.count("warmup"); got != 1 {
		t.Errorf("warmup ran %d times, want 1", got)
	}
}

func TestLoadFailure(t *testing.T) {
	runner := &fakeRunner{
		errs:   map[string]error{"warmup": errors.New("exit status 1")},
		stderr: map[string][]byte{"warmup": []byte("ModuleNotFoundError: spacy")},
	}
	a := newSpacyAdapter(spacyProfile(), nil, runner)

	err := a.Load(context.Background())
	if err == nil {
		t.Fatal("expected Load to fail")
	}
	if !errors.Is(err, common.ErrModelLoad) {
		t.Errorf("error %v, want ErrModelLoad", err)
	}
	if a.Loaded() {
		t.Error("adapter reports loaded after failed Load")
	}
}

func TestExtractLoadsImplicitly(t *testing.T) {
	runner := &fakeRunner{stdout: map[string][]byte{
		"warmup": []byte(`{}`),
		"extract": extractOutput([][]RawTriple{{{
			Source:   "Quercus robur",
			Relation: "has_trait",
			Sink:     "deciduous",
			Sentence: "Quercus robur is deciduous.",
		}}}),
	}}
	a := newSpacyAdapter(spacyProfile(), nil, runner)

	results, err := a.Extract(context.Background(), []string{"Quercus robur is deciduous."})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if runner.count("warmup") != 1 {
		t.Error("Extract did not trigger implicit Load")
	}
	if len(results) != 1 || len(results[0]) != 1 {
		t.Fatalf("results = %v, want one inner slice with one triple", results)
	}
	if results[0][0].Source != "Quercus robur" {
		t.Errorf("source = %q", results[0][0].Source)
	}
}

func TestExtractEmptyResultsAreNonNil(t *testing.T) {
	// one text yields no triples; the inner slice must still exist
	runner := &fakeRunner{stdout: map[string][]byte{
		"warmup":  []byte(`{}`),
		"extract": []byte(`{"results":[[],[]]}`),
	}}
	a := newSpacyAdapter(spacyProfile(), nil, runner)

	results, err := a.Extract(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for i, inner := range results {
		if inner == nil {
			t.Errorf("results[%d] is nil, want empty slice", i)
		}
	}
}

func TestExtractRejectsBadOutput(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
	}{
		{"not json", "Traceback (most recent call last)"},
		{"schema violation", `{"results":[[{"source":42}]]}`},
		{"count mismatch", `{"results":[[]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{stdout: map[string][]byte{
				"warmup":  []byte(`{}`),
				"extract": []byte(tt.stdout),
			}}
			a := newSpacyAdapter(spacyProfile(), nil, runner)
			_, err := a.Extract(context.Background(), []string{"a", "b"})
			if !errors.Is(err, common.ErrExtractionRuntime) {
				t.Errorf("error %v, want ErrExtractionRuntime", err)
			}
		})
	}
}

func TestUnloadRequiresReload(t *testing.T) {
	runner := &fakeRunner{stdout: map[string][]byte{
		"warmup":  []byte(`{}`),
		"extract": []byte(`{"results":[[]]}`),
	}}
	a := newSpacyAdapter(spacyProfile(), nil, runner)

	if _, err := a.Extract(context.Background(), []string{"a"}); err != nil {
		t.Fatal(err)
	}
	if err := a.Unload(); err != nil {
		t.Fatal(err)
	}
	if a.Loaded() {
		t.Fatal("adapter reports loaded after Unload")
	}
	if _, err := a.Extract(context.Background(), []string{"a"}); err != nil {
		t.Fatal(err)
	}
	if got := runner.count("warmup"); got != 2 {
		t.Errorf("warmup ran %d times, want 2 (reload after Unload)", got)
	}
}

func TestNormalizeCanonicalShape(t *testing.T) {
	raw := RawTriple{
		Source:      "Quercus robur",
		SourceLabel: "SPECIES",
		Relation:    "exhibits",
		Sink:        "leaf length",
		SinkLabel:   "TRAIT",
		Confidence:  0.87,
		Sentence:    "Quercus robur exhibits long leaves.",
		TraitName:   "leaf length",
		TraitValue:  "12",
		Unit:        "cm",
	}
	a := newSpacyAdapter(spacyProfile(), nil, &fakeRunner{})
	canon := a.Normalize(raw)

	if canon.SourceEntityAttr != string(constants.Taxon) {
		t.Errorf("source attr = %q, want taxon", canon.SourceEntityAttr)
	}
	if canon.SinkEntityAttr != string(constants.Trait) {
		t.Errorf("sink attr = %q, want trait", canon.SinkEntityAttr)
	}
	if canon.RelationType != constants.RelationHasTrait {
		t.Errorf("relation = %q, want has_trait", canon.RelationType)
	}
	if canon.ModelProfile != "spacy-sm" {
		t.Errorf("model profile = %q, want spacy-sm", canon.ModelProfile)
	}
	if canon.Status != constants.TripleStatusRaw {
		t.Errorf("status = %q, want raw", canon.Status)
	}

	// normalized output must satisfy the wire schema for every variant
	b, err := json.Marshal(canon)
	if err != nil {
		t.Fatal(err)
	}
	if err := ValidateJSONAgainstSchema(CanonicalTripleSchema(), b); err != nil {
		t.Errorf("canonical triple does not match schema: %v", err)
	}
}

func TestNormalizeClampsConfidence(t *testing.T) {
	a := newSpacyAdapter(spacyProfile(), nil, &fakeRunner{})
	if got := a.Normalize(RawTriple{Confidence: -0.5}).Confidence; got != 0 {
		t.Errorf("confidence = %v, want 0", got)
	}
	if got := a.Normalize(RawTriple{Confidence: 1.5}).Confidence; got != 1 {
		t.Errorf("confidence = %v, want 1", got)
	}
}

func TestNormalizeVariantLabelMaps(t *testing.T) {
	runner := &fakeRunner{}
	tests := []struct {
		backend constants.Backend
		label   string
		want    constants.EntityCategory
	}{
		{constants.BackendSpacy, "GPE", constants.Location},
		{constants.BackendSpacy, "NOPE", constants.GenericEntity},
		{constants.BackendHuggingFace, "B-TAXON", constants.Taxon},
		{constants.BackendHuggingFace, "I-TRAIT", constants.Trait},
		{constants.BackendHuggingFace, "O", constants.GenericEntity},
		{constants.BackendLasUIE, "habitat", constants.Habitat},
		{constants.BackendAllenNLP, "ARG0", constants.Taxon},
		{constants.BackendAllenNLP, "ARGM-LOC", constants.Location},
		{constants.BackendAllenNLP, "ARG1", constants.GenericEntity},
	}
	factory := NewFactory(nil, runner)
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.backend, tt.label), func(t *testing.T) {
			a, err := factory.New(profile.Profile{Name: "p", Backend: tt.backend})
			if err != nil {
				t.Fatal(err)
			}
			canon := a.Normalize(RawTriple{SourceLabel: tt.label})
			if canon.SourceEntityAttr != string(tt.want) {
				t.Errorf("attr = %q, want %q", canon.SourceEntityAttr, tt.want)
			}
		})
	}
}

func TestTrainSupport(t *testing.T) {
	runner := &fakeRunner{stdout: map[string][]byte{
		"warmup": []byte(`{}`),
		"train":  []byte(`{"status":"completed","artifact_path":"/tmp/model","metrics":{"f1":0.9}}`),
	}}
	factory := NewFactory(nil, runner)

	// spacy and huggingface train through the runtime
	for _, backend := range []constants.Backend{constants.BackendSpacy, constants.BackendHuggingFace} {
		a, err := factory.New(profile.Profile{Name: "p", Backend: backend})
		if err != nil {
			t.Fatal(err)
		}
		result, err := a.Train(context.Background(), TrainRequest{NumEpochs: 3})
		if err != nil {
			t.Fatalf("%s Train: %v", backend, err)
		}
		if result.Status != TrainCompleted {
			t.Errorf("%s train status = %q, want completed", backend, result.Status)
		}
		if result.Metrics["f1"] != 0.9 {
			t.Errorf("%s metrics = %v", backend, result.Metrics)
		}
	}

	// lasuie and allennlp report not_implemented without running anything
	before := len(runner.calls)
	for _, backend := range []constants.Backend{constants.BackendLasUIE, constants.BackendAllenNLP} {
		a, err := factory.New(profile.Profile{Name: "p", Backend: backend})
		if err != nil {
			t.Fatal(err)
		}
		result, err := a.Train(context.Background(), TrainRequest{})
		if err != nil {
			t.Fatalf("%s Train: %v", backend, err)
		}
		if result.Status != TrainNotImplemented {
			t.Errorf("%s train status = %q, want not_implemented", backend, result.Status)
		}
	}
	if len(runner.calls) != before {
		t.Error("not_implemented backends hit the runtime")
	}
}

func TestFactoryUnknownBackend(t *testing.T) {
	factory := NewFactory(nil, &fakeRunner{})
	_, err := factory.New(profile.Profile{Name: "p", Backend: "bert"})
	if !errors.Is(err, common.ErrConfiguration) {
		t.Errorf("error %v, want ErrConfiguration", err)
	}
}

func TestProfileCommandOverride(t *testing.T) {
	runner := &fakeRunner{stdout: map[string][]byte{"warmup": []byte(`{}`)}}
	prof := profile.Profile{
		Name:    "custom",
		Backend: constants.BackendSpacy,
		Params: map[string]any{
			"command": "/opt/venv/bin/python",
			"args":    []any{"-m", "custom_backend"},
		},
	}
	a := newSpacyAdapter(prof, nil, runner)
	if a.command != "/opt/venv/bin/python" {
		t.Errorf("command = %q", a.command)
	}
	if len(a.args) != 2 || a.args[1] != "custom_backend" {
		t.Errorf("args = %v", a.args)
	}
}
