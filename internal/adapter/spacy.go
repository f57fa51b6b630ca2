package adapter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/profile"
)

// spacyAdapter wraps a spaCy pipeline (NER + dependency-based relation
// rules). Supports training via spacy train on the runtime side.
type spacyAdapter struct {
	procBackend
}

func newSpacyAdapter(prof profile.Profile, logger *slog.Logger, runner Runner) *spacyAdapter {
	return &spacyAdapter{
		procBackend: newProcBackend(prof, logger, runner, []string{"-m", "trait_backends.spacy"}),
	}
}

func (a *spacyAdapter) Train(ctx context.Context, req TrainRequest) (TrainResult, error) {
	return a.train(ctx, req)
}

func (a *spacyAdapter) Normalize(raw RawTriple) CanonicalTriple {
	return a.normalize(raw, spacyLabel)
}

// spaCy NER labels: model-specific bio labels first, then the stock
// English labels that still carry signal.
var spacyLabels = map[string]constants.EntityCategory{
	"SPECIES":  constants.Taxon,
	"TAXON":    constants.Taxon,
	"TRAIT":    constants.Trait,
	"QUANTITY": constants.Value,
	"CARDINAL": constants.Value,
	"PERCENT":  constants.Value,
	"UNIT":     constants.Unit,
	"GPE":      constants.Location,
	"LOC":      constants.Location,
	"FAC":      constants.Location,
	"HABITAT":  constants.Habitat,
}

func spacyLabel(label string) constants.EntityCategory {
	if cat, ok := spacyLabels[strings.ToUpper(strings.TrimSpace(label))]; ok {
		return cat
	}
	cat, _ := constants.CanonicalizeEntity(label)
	return cat
}
