package profiles

import (
	"math"
	"sort"
)

// Profile is the computed artifact of one build: for every combo, the
// sorted ascending sequence of per-instance performance ratios, plus the
// instances considered and the best combo(s) per instance. Profiles are
// read-only; every build call returns a fresh one.
//
// Invariants: every stored ratio is >= 1.0, and every instance considered
// has at least one combo with ratio exactly 1.0.
type Profile struct {
	configName    string
	criterionName string

	instances []string             // sorted instance identities considered
	series    map[string][]float64 // combo identity -> sorted ascending ratios
	winners   map[string][]string  // instance identity -> combos tied for best
}

// CurvePoint is one step of a performance-profile curve: the fraction of
// all considered instances on which a combo achieved ratio <= Tau.
type CurvePoint struct {
	Tau      float64 `json:"tau"`
	Fraction float64 `json:"fraction"`
}

// ConfigName returns the name of the configuration that built this profile.
func (p *Profile) ConfigName() string { return p.configName }

// CriterionName returns the name of the profiled criterion.
func (p *Profile) CriterionName() string { return p.criterionName }

// Combos returns the combo identities present in the profile, sorted.
func (p *Profile) Combos() []string {
	combos := make([]string, 0, len(p.series))
	for c := range p.series {
		combos = append(combos, c)
	}
	sort.Strings(combos)
	return combos
}

// Instances returns the identities of every instance considered, sorted.
func (p *Profile) Instances() []string {
	out := make([]string, len(p.instances))
	copy(out, p.instances)
	return out
}

// InstanceCount returns the number of instances considered. Instances on
// which a combo was censored still count here; that shared denominator is
// what makes curves comparable across combos.
func (p *Profile) InstanceCount() int { return len(p.instances) }

// Ratios returns a copy of the combo's sorted ratio sequence. The sequence
// has one entry per instance where the combo produced a comparable value;
// censored instances contribute nothing.
func (p *Profile) Ratios(combo string) []float64 {
	rs := p.series[combo]
	out := make([]float64, len(rs))
	copy(out, rs)
	return out
}

// FractionWithin returns the fraction of all considered instances on which
// the combo achieved a ratio <= tau. The denominator is the full instance
// count, so a combo censored everywhere reports 0 regardless of tau.
func (p *Profile) FractionWithin(combo string, tau float64) float64 {
	total := len(p.instances)
	if total == 0 {
		return 0
	}
	rs := p.series[combo]
	// Ratios are sorted ascending; count the prefix within tau.
	n := sort.SearchFloat64s(rs, math.Nextafter(tau, math.Inf(1)))
	return float64(n) / float64(total)
}

// SolvedFraction returns the fraction of considered instances on which the
// combo produced any comparable value at all (its curve's right asymptote).
func (p *Profile) SolvedFraction(combo string) float64 {
	total := len(p.instances)
	if total == 0 {
		return 0
	}
	return float64(len(p.series[combo])) / float64(total)
}

// Wins returns the number of instances on which the combo was (tied for)
// best, i.e. achieved ratio exactly 1.0.
func (p *Profile) Wins(combo string) int {
	n := 0
	for _, r := range p.series[combo] {
		if r == 1.0 {
			n++
		} else if r > 1.0 {
			break
		}
	}
	return n
}

// WinnersOf returns the combo(s) that achieved the best criterion value on
// the given instance. Multiple combos tying for best all appear; no
// arbitrary tie-break is introduced.
func (p *Profile) WinnersOf(instance string) []string {
	ws := p.winners[instance]
	out := make([]string, len(ws))
	copy(out, ws)
	return out
}

// MaxFiniteRatio returns the largest finite ratio stored anywhere in the
// profile, or 1.0 when none exceeds it. Curve renderers use it to pick a
// tau range.
func (p *Profile) MaxFiniteRatio() float64 {
	maxR := 1.0
	for _, rs := range p.series {
		for i := len(rs) - 1; i >= 0; i-- {
			if !math.IsInf(rs[i], 1) {
				if rs[i] > maxR {
					maxR = rs[i]
				}
				break
			}
		}
	}
	return maxR
}

// Curve returns the combo's performance-profile curve as step points, one
// per distinct finite ratio, each giving the fraction of instances solved
// within that ratio.
func (p *Profile) Curve(combo string) []CurvePoint {
	rs := p.series[combo]
	total := len(p.instances)
	if total == 0 || len(rs) == 0 {
		return nil
	}
	var points []CurvePoint
	for i, r := range rs {
		if math.IsInf(r, 1) {
			break
		}
		// Collapse duplicate ratios into their last (highest) fraction.
		if i+1 < len(rs) && rs[i+1] == r {
			continue
		}
		points = append(points, CurvePoint{Tau: r, Fraction: float64(i+1) / float64(total)})
	}
	return points
}

// Snapshot is the JSON-serializable form of a Profile, used for machine
// output and caching.
type Snapshot struct {
	Config    string               `json:"config"`
	Criterion string               `json:"criterion"`
	Instances []string             `json:"instances"`
	Series    map[string][]float64 `json:"ratios"`
	Winners   map[string][]string  `json:"winners"`
}

// FromSnapshot rehydrates a Profile from a previously serialized snapshot.
// Ratio sequences and instance identities are re-sorted so a profile
// rebuilt from disk is indistinguishable from a freshly built one.
func FromSnapshot(s Snapshot) *Profile {
	p := &Profile{
		configName:    s.Config,
		criterionName: s.Criterion,
		instances:     make([]string, len(s.Instances)),
		series:        make(map[string][]float64, len(s.Series)),
		winners:       make(map[string][]string, len(s.Winners)),
	}
	copy(p.instances, s.Instances)
	sort.Strings(p.instances)
	for c, rs := range s.Series {
		cp := make([]float64, len(rs))
		copy(cp, rs)
		sort.Float64s(cp)
		p.series[c] = cp
	}
	for inst, ws := range s.Winners {
		cp := make([]string, len(ws))
		copy(cp, ws)
		sort.Strings(cp)
		p.winners[inst] = cp
	}
	return p
}

// Snapshot returns a deep copy of the profile's contents.
func (p *Profile) Snapshot() Snapshot {
	s := Snapshot{
		Config:    p.configName,
		Criterion: p.criterionName,
		Instances: p.Instances(),
		Series:    make(map[string][]float64, len(p.series)),
		Winners:   make(map[string][]string, len(p.winners)),
	}
	for c := range p.series {
		s.Series[c] = p.Ratios(c)
	}
	for inst := range p.winners {
		s.Winners[inst] = p.WinnersOf(inst)
	}
	return s
}
