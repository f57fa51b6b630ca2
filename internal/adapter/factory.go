package adapter

import (
	"fmt"
	"log/slog"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/profile"
)

// Factory constructs adapters for known backend tags. Stateless; the
// Registry is its only caller in production.
type Factory struct {
	logger *slog.Logger
	runner Runner
}

func NewFactory(logger *slog.Logger, runner Runner) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger, runner: runner}
}

// New builds the adapter variant named by the profile's backend tag.
func (f *Factory) New(prof profile.Profile) (Adapter, error) {
	switch prof.Backend {
	case constants.BackendSpacy:
		return newSpacyAdapter(prof, f.logger, f.runner), nil
	case constants.BackendHuggingFace:
		return newHuggingFaceAdapter(prof, f.logger, f.runner), nil
	case constants.BackendLasUIE:
		return newLasUIEAdapter(prof, f.logger, f.runner), nil
	case constants.BackendAllenNLP:
		return newAllenNLPAdapter(prof, f.logger, f.runner), nil
	default:
		return nil, common.NewConfigurationError(
			fmt.Sprintf("unknown backend %q for profile %q", prof.Backend, prof.Name))
	}
}
