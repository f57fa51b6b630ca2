package adapter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/profile"
)

// lasuieAdapter wraps a LasUIE structured-extraction model. The runtime
// emits linearized hierarchical expressions already split into triples;
// labels use LasUIE's own schema names. No training support.
type lasuieAdapter struct {
	procBackend
}

func newLasUIEAdapter(prof profile.Profile, logger *slog.Logger, runner Runner) *lasuieAdapter {
	return &lasuieAdapter{
		procBackend: newProcBackend(prof, logger, runner, []string{"-m", "trait_backends.lasuie"}),
	}
}

func (a *lasuieAdapter) Train(ctx context.Context, _ TrainRequest) (TrainResult, error) {
	return notImplemented(), nil
}

func (a *lasuieAdapter) Normalize(raw RawTriple) CanonicalTriple {
	return a.normalize(raw, lasuieLabel)
}

var lasuieLabels = map[string]constants.EntityCategory{
	"subject":     constants.Taxon,
	"organism":    constants.Taxon,
	"property":    constants.Trait,
	"trait":       constants.Trait,
	"object":      constants.Value,
	"value":       constants.Value,
	"unit":        constants.Unit,
	"location":    constants.Location,
	"environment": constants.Habitat,
}

func lasuieLabel(label string) constants.EntityCategory {
	if cat, ok := lasuieLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return cat
	}
	cat, _ := constants.CanonicalizeEntity(label)
	return cat
}
