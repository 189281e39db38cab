// Package profiles computes comparative performance profiles from raw
// benchmark measurements: for each solver configuration, the distribution of
// its per-instance overhead relative to the best configuration observed on
// that instance. Profile construction is a pure function over collected
// records; nothing here runs benchmarks or reads files.
package profiles

import (
	"fmt"

	"github.com/solvebench/perfprof/internal/criteria"
	"github.com/solvebench/perfprof/internal/metrics"
	"github.com/solvebench/perfprof/internal/models"
)

// IncludeFunc decides whether a record participates in a profile at all.
type IncludeFunc func(*models.Record) bool

// AggregateFunc collapses repeated runs of the same instance x combo into
// one scalar.
type AggregateFunc func([]float64) float64

// Config declares how a profile is computed: which dims form a problem
// instance, which form a configuration being compared, the ranking
// criterion, the inclusion filter, and the repeated-run aggregator.
// A Config carries no computed state and is immutable after registration.
type Config struct {
	// Name is the registry key for this configuration.
	Name string

	// GroupKeys are the dims whose value tuple identifies one problem
	// instance, e.g. problem + size.
	GroupKeys []string

	// ComboKeys are the dims whose value tuple identifies one
	// configuration being compared, e.g. model + solver. Must be
	// disjoint from GroupKeys.
	ComboKeys []string

	// Criterion extracts and orders the scalar being profiled.
	Criterion criteria.Criterion

	// Include filters records before any grouping. Nil means the
	// default: the run succeeded and the criterion value is present.
	Include IncludeFunc

	// Aggregate combines criterion values from repeated runs of the same
	// instance x combo. Nil means arithmetic mean.
	Aggregate AggregateFunc
}

// Validate checks a Config's structural invariants: non-empty name, both
// key sets non-empty, and no dim appearing in both.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("profile config: name must not be empty")
	}
	if len(c.GroupKeys) == 0 {
		return fmt.Errorf("profile config %q: group keys must not be empty", c.Name)
	}
	if len(c.ComboKeys) == 0 {
		return fmt.Errorf("profile config %q: combo keys must not be empty", c.Name)
	}
	group := make(map[string]bool, len(c.GroupKeys))
	for _, k := range c.GroupKeys {
		group[k] = true
	}
	for _, k := range c.ComboKeys {
		if group[k] {
			return fmt.Errorf("profile config %q: dim %q appears in both group and combo keys", c.Name, k)
		}
	}
	if c.Criterion.Extract == nil {
		return fmt.Errorf("profile config %q: criterion has no extraction function", c.Name)
	}
	return nil
}

// include applies the configured inclusion predicate, or the default one.
func (c *Config) include(r *models.Record) bool {
	if c.Include != nil {
		return c.Include(r)
	}
	if !r.Success {
		return false
	}
	_, ok := c.Criterion.Value(r)
	return ok
}

// aggregate applies the configured aggregator, or the default mean.
func (c *Config) aggregate(values []float64) float64 {
	if c.Aggregate != nil {
		return c.Aggregate(values)
	}
	return metrics.Mean(values)
}
