package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/common"
)

// Profile is a named, immutable backend configuration resolved from the
// registry file. The core consumes it; it never mutates or persists it.
type Profile struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Backend     constants.Backend `yaml:"backend"`
	Params      map[string]any    `yaml:"params"`
}

// Info is the wire shape listed by GET /models.
type Info struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Backend     string `json:"backend"`
}

// Registry resolves profile names to Profiles. It is read-only after Load.
type Registry struct {
	byName  map[string]Profile
	ordered []Profile
}

type registryFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// Load reads and validates the profile registry from a YAML file.
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}
	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse profiles file %s: %w", path, err)
	}
	return New(file.Profiles)
}

// New builds a Registry from already-parsed profiles, validating names
// and backend tags.
func New(profiles []Profile) (*Registry, error) {
	r := &Registry{byName: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if p.Name == "" {
			return nil, common.NewConfigurationError("profile with empty name")
		}
		if _, exists := r.byName[p.Name]; exists {
			return nil, common.NewConfigurationError(fmt.Sprintf("duplicate profile %q", p.Name))
		}
		backend, err := constants.ParseBackend(string(p.Backend))
		if err != nil {
			return nil, common.NewConfigurationError(fmt.Sprintf("profile %q: %v", p.Name, err))
		}
		p.Backend = backend
		r.byName[p.Name] = p
		r.ordered = append(r.ordered, p)
	}
	return r, nil
}

// Get resolves a profile by name. Unknown names are a configuration
// error: callers fail fast before creating any job row.
func (r *Registry) Get(name string) (Profile, error) {
	p, ok := r.byName[name]
	if !ok {
		return Profile{}, common.NewConfigurationError(fmt.Sprintf("unknown model profile %q", name))
	}
	return p, nil
}

// List returns profile infos in file order. IDs are ordinal and stable
// for the lifetime of the process.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.ordered))
	for i, p := range r.ordered {
		out = append(out, Info{
			ID:          i + 1,
			Name:        p.Name,
			Description: p.Description,
			Backend:     string(p.Backend),
		})
	}
	return out
}
