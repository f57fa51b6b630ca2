package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/profile"
)

// procBackend is the shared core of the process-backed adapters. Each
// variant wraps an external NLP runtime entrypoint that speaks JSON over
// stdin/stdout with three subcommands: warmup, extract, train.
//
// The loaded flag is deliberately unsynchronized; the Registry owns
// serialization of access to an adapter instance.
type procBackend struct {
	prof    profile.Profile
	logger  *slog.Logger
	runner  Runner
	command string
	args    []string
	loaded  bool
}

func newProcBackend(prof profile.Profile, logger *slog.Logger, runner Runner, defaultArgs []string) procBackend {
	if logger == nil {
		logger = slog.Default()
	}
	if runner == nil {
		runner = ExecRunner()
	}
	command := "python3"
	if c, ok := prof.Params["command"].(string); ok && c != "" {
		command = c
	}
	args := defaultArgs
	if raw, ok := prof.Params["args"].([]any); ok && len(raw) > 0 {
		args = nil
		for _, a := range raw {
			if s, ok := a.(string); ok {
				args = append(args, s)
			}
		}
	}
	return procBackend{
		prof:    prof,
		logger:  logger,
		runner:  runner,
		command: command,
		args:    args,
	}
}

type runtimeRequest struct {
	Texts  []string       `json:"texts,omitempty"`
	Params map[string]any `json:"params,omitempty"`
	Train  *TrainRequest  `json:"train,omitempty"`
}

type extractResponse struct {
	Results [][]RawTriple `json:"results"`
}

func (b *procBackend) Loaded() bool { return b.loaded }

// Load warms up the backend runtime. Idempotent.
func (b *procBackend) Load(ctx context.Context) error {
	if b.loaded {
		return nil
	}
	payload, err := json.Marshal(runtimeRequest{Params: b.prof.Params})
	if err != nil {
		return common.NewModelLoadError("marshal warmup request", err)
	}
	args := append(append([]string{}, b.args...), "warmup")
	if _, stderr, err := b.runner.Run(ctx, payload, b.command, args...); err != nil {
		return common.NewModelLoadError(
			fmt.Sprintf("backend %s unavailable for profile %q: %s",
				b.prof.Backend, b.prof.Name, truncate(string(stderr), 512)),
			err,
		)
	}
	b.loaded = true
	b.logger.Info("adapter loaded", "profile", b.prof.Name, "backend", b.prof.Backend)
	return nil
}

// Extract runs the backend over texts, one inner result per text in
// input order. Loads implicitly if needed.
func (b *procBackend) Extract(ctx context.Context, texts []string) ([][]RawTriple, error) {
	if !b.loaded {
		if err := b.Load(ctx); err != nil {
			return nil, err
		}
	}
	payload, err := json.Marshal(runtimeRequest{Texts: texts, Params: b.prof.Params})
	if err != nil {
		return nil, common.NewExtractionError("marshal extract request", err)
	}
	args := append(append([]string{}, b.args...), "extract")
	stdout, stderr, err := b.runner.Run(ctx, payload, b.command, args...)
	if err != nil {
		return nil, common.NewExtractionError(
			fmt.Sprintf("backend %s extract failed: %s",
				b.prof.Backend, truncate(string(stderr), 512)),
			err,
		)
	}
	if err := ValidateJSONAgainstSchema(extractResponseSchema(), stdout); err != nil {
		return nil, common.NewExtractionError("backend output does not match schema", err)
	}
	var resp extractResponse
	if err := json.Unmarshal(stdout, &resp); err != nil {
		return nil, common.NewExtractionError("decode backend output", err)
	}
	if len(resp.Results) != len(texts) {
		return nil, common.NewExtractionError(
			fmt.Sprintf("backend returned %d results for %d texts", len(resp.Results), len(texts)),
			nil,
		)
	}
	// never hand back nil inner slices
	for i, inner := range resp.Results {
		if inner == nil {
			resp.Results[i] = []RawTriple{}
		}
	}
	return resp.Results, nil
}

// train runs the backend's train subcommand; variants that support
// training delegate here.
func (b *procBackend) train(ctx context.Context, req TrainRequest) (TrainResult, error) {
	if !b.loaded {
		if err := b.Load(ctx); err != nil {
			return TrainResult{}, err
		}
	}
	payload, err := json.Marshal(runtimeRequest{Params: b.prof.Params, Train: &req})
	if err != nil {
		return TrainResult{}, common.NewExtractionError("marshal train request", err)
	}
	args := append(append([]string{}, b.args...), "train")
	stdout, stderr, err := b.runner.Run(ctx, payload, b.command, args...)
	if err != nil {
		return TrainResult{
			Status:  TrainFailed,
			Metrics: map[string]float64{},
			Error:   truncate(string(stderr), 512),
		}, nil
	}
	var result TrainResult
	if err := json.Unmarshal(stdout, &result); err != nil {
		return TrainResult{}, common.NewExtractionError("decode train output", err)
	}
	if result.Metrics == nil {
		result.Metrics = map[string]float64{}
	}
	return result, nil
}

func (b *procBackend) Unload() error {
	if !b.loaded {
		return nil
	}
	b.loaded = false
	b.logger.Info("adapter unloaded", "profile", b.prof.Name, "backend", b.prof.Backend)
	return nil
}

// normalize maps a raw triple through a variant's entity label mapper
// into the canonical shape. Unmapped labels land in the generic
// category; relations go through the shared relation vocabulary.
func (b *procBackend) normalize(raw RawTriple, mapLabel func(string) constants.EntityCategory) CanonicalTriple {
	sourceAttr := mapLabel(raw.SourceLabel)
	sinkAttr := mapLabel(raw.SinkLabel)
	confidence := raw.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return CanonicalTriple{
		SourceEntityName: raw.Source,
		SourceEntityAttr: string(sourceAttr),
		RelationType:     constants.CanonicalizeRelation(raw.Relation),
		SinkEntityName:   raw.Sink,
		SinkEntityAttr:   string(sinkAttr),
		Confidence:       confidence,
		ModelProfile:     b.prof.Name,
		Status:           constants.TripleStatusRaw,
		TraitName:        raw.TraitName,
		TraitValue:       raw.TraitValue,
		Unit:             raw.Unit,
		Sentence:         raw.Sentence,
	}
}
