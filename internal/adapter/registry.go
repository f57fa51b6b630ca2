package adapter

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/phenobase/trait-extractor/internal/profile"
)

// Registry caches loaded adapters by profile name for the lifetime of
// the process. Loading model weights is expensive, so the first Get for
// a profile constructs the adapter and every later Get returns the same
// instance. There is no eviction policy; capacity is the operator's
// concern, managed through Unload/UnloadAll.
//
// The Registry is injected by constructor, not a package global, so
// tests can run isolated registries side by side.
type Registry struct {
	factory  *Factory
	profiles *profile.Registry
	logger   *slog.Logger

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	adapter Adapter
	// serializes Load/Extract/Train/Unload on this instance; adapters
	// themselves are not thread-safe.
	mu sync.Mutex
}

func NewRegistry(factory *Factory, profiles *profile.Registry, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		factory:  factory,
		profiles: profiles,
		logger:   logger,
		entries:  make(map[string]*entry),
	}
}

// Get returns the cached adapter for profileName, constructing it on
// first use. Instance identity is preserved across calls.
func (r *Registry) Get(profileName string) (Adapter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(profileName)
}

func (r *Registry) getLocked(profileName string) (Adapter, error) {
	if e, ok := r.entries[profileName]; ok {
		return e.adapter, nil
	}
	prof, err := r.profiles.Get(profileName)
	if err != nil {
		return nil, err
	}
	a, err := r.factory.New(prof)
	if err != nil {
		return nil, err
	}
	r.entries[profileName] = &entry{adapter: a}
	r.logger.Info("adapter registered", "profile", profileName, "backend", prof.Backend)
	return a, nil
}

// Acquire returns the adapter for profileName with its instance lock
// held. The caller must invoke release when done; the lock covers the
// whole extract/train call sequence of one job.
func (r *Registry) Acquire(profileName string) (Adapter, func(), error) {
	r.mu.Lock()
	if _, err := r.getLocked(profileName); err != nil {
		r.mu.Unlock()
		return nil, nil, err
	}
	e := r.entries[profileName]
	r.mu.Unlock()

	e.mu.Lock()
	return e.adapter, e.mu.Unlock, nil
}

// Unload releases the adapter's resources and evicts it. No-op when the
// profile was never loaded.
func (r *Registry) Unload(profileName string) error {
	r.mu.Lock()
	e, ok := r.entries[profileName]
	if ok {
		delete(r.entries, profileName)
	}
	r.mu.Unlock()
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.adapter.Unload(); err != nil {
		return err
	}
	r.logger.Info("adapter evicted", "profile", profileName)
	return nil
}

// UnloadAll evicts and unloads every cached adapter.
func (r *Registry) UnloadAll() error {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*entry)
	r.mu.Unlock()

	var firstErr error
	for name, e := range entries {
		e.mu.Lock()
		err := e.adapter.Unload()
		e.mu.Unlock()
		if err != nil && firstErr == nil {
			firstErr = err
		}
		r.logger.Info("adapter evicted", "profile", name)
	}
	return firstErr
}

// Loaded returns the cached profile names, sorted.
func (r *Registry) Loaded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
