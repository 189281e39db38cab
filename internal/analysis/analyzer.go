// Package analysis derives plain-language summaries from computed
// performance profiles. Everything here is a pure function of the Profile,
// never of the raw records, so the narrative can never disagree with the
// curves built from the same aggregation.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/solvebench/perfprof/internal/metrics"
	"github.com/solvebench/perfprof/internal/profiles"
)

// RobustnessBound is the generous ratio within which a combo is still
// counted as having handled an instance acceptably.
const RobustnessBound = 10.0

// ComboSummary holds the derived statistics for one combo.
type ComboSummary struct {
	Combo        string  `json:"combo"`
	Wins         int     `json:"wins"`
	WinRate      float64 `json:"win_rate"`
	SolvedRate   float64 `json:"solved_rate"`
	WithinBound  float64 `json:"within_bound"`
	GeoMeanRatio float64 `json:"geomean_ratio"`
}

// Summarize computes per-combo statistics from a profile, ordered by win
// rate descending, then solved rate, then name for a stable order.
func Summarize(p *profiles.Profile) []ComboSummary {
	if p == nil {
		return nil
	}

	summaries := make([]ComboSummary, 0, len(p.Combos()))
	for _, combo := range p.Combos() {
		s := ComboSummary{
			Combo:       combo,
			Wins:        p.Wins(combo),
			SolvedRate:  p.SolvedFraction(combo),
			WithinBound: p.FractionWithin(combo, RobustnessBound),
		}
		if total := p.InstanceCount(); total > 0 {
			s.WinRate = float64(s.Wins) / float64(total)
		}
		s.GeoMeanRatio = metrics.GeoMean(p.Ratios(combo))
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].WinRate != summaries[j].WinRate {
			return summaries[i].WinRate > summaries[j].WinRate
		}
		if summaries[i].SolvedRate != summaries[j].SolvedRate {
			return summaries[i].SolvedRate > summaries[j].SolvedRate
		}
		return summaries[i].Combo < summaries[j].Combo
	})
	return summaries
}

// InterpretRobustness returns a plain-language label for the fraction of
// instances handled within the robustness bound.
func InterpretRobustness(fraction float64) string {
	pct := fraction * 100
	switch {
	case pct >= 100:
		return fmt.Sprintf("robust on every instance (within %.0fx of best)", RobustnessBound)
	case pct >= 80:
		return fmt.Sprintf("robust on most instances (%.0f%% within %.0fx)", pct, RobustnessBound)
	case pct >= 50:
		return fmt.Sprintf("robust on about half the instances (%.0f%% within %.0fx)", pct, RobustnessBound)
	default:
		return fmt.Sprintf("fragile: only %.0f%% of instances within %.0fx of best", pct, RobustnessBound)
	}
}

// InterpretOverhead describes a geometric-mean ratio relative to the best
// configuration per instance.
func InterpretOverhead(geomean float64) string {
	switch {
	case geomean == 0:
		return "no comparable instances"
	case geomean <= 1.05:
		return "effectively as fast as the best on average"
	case geomean < 2.0:
		return fmt.Sprintf("%.0f%% slower than the best on average", (geomean-1)*100)
	default:
		return fmt.Sprintf("%.1fx the cost of the best on average", geomean)
	}
}

// Analyze renders the textual analysis of a profile. A nil profile (the
// NoData sentinel) produces a neutral placeholder rather than an error.
func Analyze(p *profiles.Profile) string {
	if p == nil {
		return "No comparable benchmark data is available for this profile.\n"
	}

	var b strings.Builder
	total := p.InstanceCount()

	fmt.Fprintf(&b, "Performance profile %q over %d instance", p.CriterionName(), total)
	if total != 1 {
		b.WriteString("s")
	}
	b.WriteString(":\n\n")

	for _, s := range Summarize(p) {
		fmt.Fprintf(&b, "%s\n", s.Combo)
		fmt.Fprintf(&b, "  Best on %d of %d instances (%.0f%%).\n", s.Wins, total, s.WinRate*100)
		fmt.Fprintf(&b, "  Produced a comparable result on %.0f%% of instances.\n", s.SolvedRate*100)
		fmt.Fprintf(&b, "  %s.\n", capitalize(InterpretRobustness(s.WithinBound)))
		fmt.Fprintf(&b, "  %s.\n", capitalize(InterpretOverhead(s.GeoMeanRatio)))
		b.WriteString("\n")
	}

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
