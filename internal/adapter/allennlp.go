package adapter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/profile"
)

// allennlpAdapter wraps an AllenNLP OpenIE predictor. OpenIE argument
// roles (ARG0/ARG1/ARG2) carry little type information, so most spans
// land in the generic category unless the runtime tagged them. No
// training support.
type allennlpAdapter struct {
	procBackend
}

func newAllenNLPAdapter(prof profile.Profile, logger *slog.Logger, runner Runner) *allennlpAdapter {
	return &allennlpAdapter{
		procBackend: newProcBackend(prof, logger, runner, []string{"-m", "trait_backends.allennlp"}),
	}
}

func (a *allennlpAdapter) Train(ctx context.Context, _ TrainRequest) (TrainResult, error) {
	return notImplemented(), nil
}

func (a *allennlpAdapter) Normalize(raw RawTriple) CanonicalTriple {
	return a.normalize(raw, allennlpLabel)
}

var allennlpLabels = map[string]constants.EntityCategory{
	"ARG0":     constants.Taxon,
	"ARG1":     constants.GenericEntity,
	"ARG2":     constants.GenericEntity,
	"ARGM-LOC": constants.Location,
	"SPECIES":  constants.Taxon,
	"TRAIT":    constants.Trait,
}

func allennlpLabel(label string) constants.EntityCategory {
	if cat, ok := allennlpLabels[strings.ToUpper(strings.TrimSpace(label))]; ok {
		return cat
	}
	cat, _ := constants.CanonicalizeEntity(label)
	return cat
}
