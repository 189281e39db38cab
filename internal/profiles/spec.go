package profiles

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solvebench/perfprof/internal/criteria"
	"github.com/solvebench/perfprof/internal/metrics"
)

// SpecFile is the on-disk declaration of user-defined profile
// configurations (profiles.yaml).
type SpecFile struct {
	Profiles []ConfigSpec `yaml:"profiles"`
}

// ConfigSpec declares one profile configuration.
type ConfigSpec struct {
	Name      string        `yaml:"name"`
	GroupBy   []string      `yaml:"group_by"`
	CompareBy []string      `yaml:"compare_by"`
	Criterion CriterionSpec `yaml:"criterion"`

	// Aggregate selects the repeated-run aggregator: mean (default),
	// median, min, max, or geomean.
	Aggregate string `yaml:"aggregate,omitempty"`
}

// CriterionSpec names a criterion kind plus its loosely-typed parameters.
type CriterionSpec struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:",inline"`
}

// LoadSpecFile reads a profiles.yaml file and materializes each declared
// configuration.
func LoadSpecFile(path string) ([]*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var spec SpecFile
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("profiles: parse %s: %w", path, err)
	}

	configs := make([]*Config, 0, len(spec.Profiles))
	for _, cs := range spec.Profiles {
		cfg, err := cs.Build()
		if err != nil {
			return nil, fmt.Errorf("profiles: %s: %w", path, err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// Build materializes a declared configuration into a validated Config.
func (cs ConfigSpec) Build() (*Config, error) {
	crit, err := criteria.Create(criteria.Kind(cs.Criterion.Type), cs.Criterion.Params)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", cs.Name, err)
	}

	agg, err := aggregatorByName(cs.Aggregate)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", cs.Name, err)
	}

	cfg := &Config{
		Name:      cs.Name,
		GroupKeys: cs.GroupBy,
		ComboKeys: cs.CompareBy,
		Criterion: crit,
		Aggregate: agg,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func aggregatorByName(name string) (AggregateFunc, error) {
	switch name {
	case "", "mean":
		return nil, nil // Config default
	case "median":
		return metrics.Median, nil
	case "min":
		return metrics.Min, nil
	case "max":
		return metrics.Max, nil
	case "geomean":
		return metrics.GeoMean, nil
	default:
		return nil, fmt.Errorf("'%s' is not a valid aggregator", name)
	}
}
