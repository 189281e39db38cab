package profiles

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/solvebench/perfprof/internal/criteria"
)

// Registry errors. Lookups of unknown names and re-registration of taken
// names always surface; the registry never substitutes defaults and never
// overwrites.
var (
	ErrNotFound  = errors.New("profile config not found")
	ErrDuplicate = errors.New("profile config already registered")
)

// Registry is a named store of profile configurations. Registration is
// expected to happen once, single-threaded, at process startup; lookups may
// then come from any goroutine. The RWMutex makes accidental late
// registration safe rather than encouraged.
type Registry struct {
	mu      sync.RWMutex
	configs map[string]*Config
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[string]*Config)}
}

// Register stores a validated config under its name. Returns ErrDuplicate
// when the name is already taken; existing entries are never replaced.
func (r *Registry) Register(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("profile config must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.configs[cfg.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, cfg.Name)
	}
	r.configs[cfg.Name] = cfg
	return nil
}

// Get returns the config registered under name, or ErrNotFound.
func (r *Registry) Get(name string) (*Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.configs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return cfg, nil
}

// Names returns all registered config names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default dims for the shipped configurations: problem instances are
// identified by problem name and grid size, combos by model formulation and
// solver.
var (
	defaultGroupKeys = []string{"problem", "size"}
	defaultComboKeys = []string{"model", "solver"}
)

// Bootstrap registers the default profile configurations. It is idempotent
// for that default set: a name already present is left untouched. Explicit
// user registrations still fail loudly on duplicates via Register.
func Bootstrap(r *Registry) error {
	defaults := []*Config{
		{
			Name:      "wall_clock",
			GroupKeys: defaultGroupKeys,
			ComboKeys: defaultComboKeys,
			Criterion: criteria.WallClock,
		},
		{
			Name:      "iterations",
			GroupKeys: defaultGroupKeys,
			ComboKeys: defaultComboKeys,
			Criterion: criteria.IterationCount,
		},
		{
			Name:      "peak_memory",
			GroupKeys: defaultGroupKeys,
			ComboKeys: defaultComboKeys,
			Criterion: criteria.PeakMemory,
		},
	}

	for _, cfg := range defaults {
		if err := r.Register(cfg); err != nil {
			if errors.Is(err, ErrDuplicate) {
				continue
			}
			return err
		}
	}
	return nil
}

// defaultRegistry backs the package-level convenience accessors. It is
// bootstrapped lazily exactly once.
var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry, bootstrapped with the
// default configurations on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		// Bootstrap over a fresh registry cannot fail.
		_ = Bootstrap(defaultRegistry)
	})
	return defaultRegistry
}
