package profiles

import (
	"sort"
	"strings"

	"github.com/solvebench/perfprof/internal/models"
)

// Build computes a performance profile over the given records. It is a pure
// function: no side effects, and identical inputs yield bit-identical
// profiles, which makes results safe to memoize.
//
// A nil return is the NoData sentinel, not an error: it means no usable
// data remained (empty input, no successful runs, or every instance
// censored). Callers must branch on it explicitly.
func Build(cfg *Config, records []*models.Record) *Profile {
	return BuildSubset(cfg, records, nil)
}

// BuildSubset is Build restricted to the combos whose identity is present
// in allowed. A nil allowed set admits every combo; an allowed set matching
// nothing in the data yields NoData.
func BuildSubset(cfg *Config, records []*models.Record, allowed map[string]bool) *Profile {
	if cfg == nil {
		return nil
	}

	// Inclusion filter first. Zero survivors is the expected shape of a
	// benchmark that has not produced a single successful run.
	usable := records[:0:0]
	for _, r := range records {
		if r != nil && cfg.include(r) {
			usable = append(usable, r)
		}
	}
	if len(usable) == 0 {
		return nil
	}

	// Partition by (instance, combo) identity and collect criterion
	// values. Records missing a required dim are malformed and dropped
	// silently; one bad record must not sink the rest of the build.
	cells := make(map[string]map[string][]float64)
	for _, r := range usable {
		inst, ok := identity(r, cfg.GroupKeys)
		if !ok {
			continue
		}
		combo, ok := identity(r, cfg.ComboKeys)
		if !ok {
			continue
		}
		if allowed != nil && !allowed[combo] {
			continue
		}
		v, ok := cfg.Criterion.Value(r)
		if !ok {
			// Missing value: the run still passed inclusion, but it
			// contributes nothing comparable. If every run of this
			// pair is missing the pair is censored below by absence.
			continue
		}
		byCombo, ok := cells[inst]
		if !ok {
			byCombo = make(map[string][]float64)
			cells[inst] = byCombo
		}
		byCombo[combo] = append(byCombo[combo], v)
	}

	instanceIDs := make([]string, 0, len(cells))
	for inst := range cells {
		instanceIDs = append(instanceIDs, inst)
	}
	sort.Strings(instanceIDs)

	series := make(map[string][]float64)
	winners := make(map[string][]string, len(cells))
	kept := instanceIDs[:0:0]

	for _, inst := range instanceIDs {
		byCombo := cells[inst]

		// One aggregated scalar per combo on this instance.
		combos := make([]string, 0, len(byCombo))
		for combo := range byCombo {
			combos = append(combos, combo)
		}
		sort.Strings(combos)

		values := make(map[string]float64, len(combos))
		for _, combo := range combos {
			values[combo] = cfg.aggregate(byCombo[combo])
		}

		// Best value under the criterion's ordering. Ties are not
		// broken: every combo matching the best value wins and gets
		// ratio exactly 1.0.
		best := values[combos[0]]
		for _, combo := range combos[1:] {
			if cfg.Criterion.Better(values[combo], best) {
				best = values[combo]
			}
		}

		kept = append(kept, inst)
		for _, combo := range combos {
			if values[combo] == best {
				winners[inst] = append(winners[inst], combo)
			}
			series[combo] = append(series[combo], cfg.Criterion.Ratio(values[combo], best))
		}
	}

	if len(series) == 0 {
		return nil
	}
	for combo := range series {
		sort.Float64s(series[combo])
	}

	return &Profile{
		configName:    cfg.Name,
		criterionName: cfg.Criterion.Name,
		instances:     kept,
		series:        series,
		winners:       winners,
	}
}

// identity renders the record's value tuple for the given dim keys as a
// canonical "key=value" string, in key order. Returns false when any
// required dim is absent or empty.
func identity(r *models.Record, keys []string) (string, bool) {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v, ok := r.Dim(k)
		if !ok || v == "" {
			return "", false
		}
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, " "), true
}
