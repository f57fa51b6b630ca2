package adapter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/profile"
)

// huggingfaceAdapter wraps a HuggingFace token-classification +
// relation-extraction pipeline. Labels arrive in BIO form ("B-TAXON",
// "I-TRAIT"); the prefix is stripped before mapping. Supports
// fine-tuning through the runtime's Trainer.
type huggingfaceAdapter struct {
	procBackend
}

func newHuggingFaceAdapter(prof profile.Profile, logger *slog.Logger, runner Runner) *huggingfaceAdapter {
	return &huggingfaceAdapter{
		procBackend: newProcBackend(prof, logger, runner, []string{"-m", "trait_backends.huggingface"}),
	}
}

func (a *huggingfaceAdapter) Train(ctx context.Context, req TrainRequest) (TrainResult, error) {
	return a.train(ctx, req)
}

func (a *huggingfaceAdapter) Normalize(raw RawTriple) CanonicalTriple {
	return a.normalize(raw, huggingfaceLabel)
}

var huggingfaceLabels = map[string]constants.EntityCategory{
	"TAXON":    constants.Taxon,
	"SPECIES":  constants.Taxon,
	"ORGANISM": constants.Taxon,
	"TRAIT":    constants.Trait,
	"PHENO":    constants.Trait,
	"VALUE":    constants.Value,
	"NUM":      constants.Value,
	"UNIT":     constants.Unit,
	"LOCATION": constants.Location,
	"HABITAT":  constants.Habitat,
	"O":        constants.GenericEntity,
}

func huggingfaceLabel(label string) constants.EntityCategory {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	normalized = strings.TrimPrefix(normalized, "B-")
	normalized = strings.TrimPrefix(normalized, "I-")
	if cat, ok := huggingfaceLabels[normalized]; ok {
		return cat
	}
	cat, _ := constants.CanonicalizeEntity(normalized)
	return cat
}
