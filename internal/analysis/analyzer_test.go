package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvebench/perfprof/internal/criteria"
	"github.com/solvebench/perfprof/internal/models"
	"github.com/solvebench/perfprof/internal/profiles"
)

func buildProfile(t *testing.T) *profiles.Profile {
	t.Helper()

	rec := func(problem, model string, wall float64) *models.Record {
		return &models.Record{
			Dims:    map[string]string{"problem": problem, "model": model},
			Success: true,
			Metrics: &models.RunMetrics{WallClockSec: &wall},
		}
	}
	cfg := &profiles.Config{
		Name:      "wall_clock",
		GroupKeys: []string{"problem"},
		ComboKeys: []string{"model"},
		Criterion: criteria.WallClock,
	}

	p := profiles.Build(cfg, []*models.Record{
		rec("p1", "fast", 1.0), rec("p1", "slow", 2.0),
		rec("p2", "fast", 1.0), rec("p2", "slow", 30.0),
		rec("p3", "fast", 2.0), rec("p3", "slow", 1.0),
		rec("p4", "fast", 1.0),
		{Dims: map[string]string{"problem": "p4", "model": "slow"}, Success: false},
	})
	require.NotNil(t, p)
	return p
}

func TestSummarize(t *testing.T) {
	p := buildProfile(t)
	summaries := Summarize(p)
	require.Len(t, summaries, 2)

	// Ordered by win rate: "fast" wins 3 of 4.
	fast, slow := summaries[0], summaries[1]
	assert.Equal(t, "model=fast", fast.Combo)
	assert.Equal(t, 3, fast.Wins)
	assert.InDelta(t, 0.75, fast.WinRate, 1e-12)
	assert.InDelta(t, 1.0, fast.SolvedRate, 1e-12)
	assert.InDelta(t, 1.0, fast.WithinBound, 1e-12)

	assert.Equal(t, "model=slow", slow.Combo)
	assert.Equal(t, 1, slow.Wins)
	assert.InDelta(t, 0.75, slow.SolvedRate, 1e-12)
	// The 30x blowup on p2 falls outside the 10x robustness bound.
	assert.InDelta(t, 0.5, slow.WithinBound, 1e-12)
	assert.Greater(t, slow.GeoMeanRatio, fast.GeoMeanRatio)
}

func TestSummarize_NilProfile(t *testing.T) {
	assert.Nil(t, Summarize(nil))
}

func TestAnalyze_MatchesProfileNumbers(t *testing.T) {
	p := buildProfile(t)
	text := Analyze(p)

	// The narrative is derived from the same aggregation as the curves,
	// so the headline numbers must appear verbatim.
	assert.Contains(t, text, `Performance profile "wall_clock" over 4 instances`)
	assert.Contains(t, text, "model=fast")
	assert.Contains(t, text, "Best on 3 of 4 instances (75%)")
	assert.Contains(t, text, "model=slow")
	assert.Contains(t, text, "Best on 1 of 4 instances (25%)")
	assert.Contains(t, text, "Produced a comparable result on 75% of instances")
}

func TestAnalyze_NoData(t *testing.T) {
	text := Analyze(nil)
	assert.Contains(t, text, "No comparable benchmark data")
}

func TestInterpretRobustness(t *testing.T) {
	tests := []struct {
		fraction float64
		want     string
	}{
		{1.0, "every instance"},
		{0.85, "most instances"},
		{0.6, "about half"},
		{0.2, "fragile"},
	}
	for _, tt := range tests {
		got := InterpretRobustness(tt.fraction)
		assert.Contains(t, got, tt.want, "fraction %v", tt.fraction)
	}
}

func TestInterpretOverhead(t *testing.T) {
	assert.Contains(t, InterpretOverhead(0), "no comparable")
	assert.Contains(t, InterpretOverhead(1.0), "as fast as the best")
	assert.Contains(t, InterpretOverhead(1.5), "50% slower")
	assert.Contains(t, InterpretOverhead(3.0), "3.0x")
}

func TestAnalyze_SingularInstance(t *testing.T) {
	rec := func(model string, wall float64) *models.Record {
		return &models.Record{
			Dims:    map[string]string{"problem": "p1", "model": model},
			Success: true,
			Metrics: &models.RunMetrics{WallClockSec: &wall},
		}
	}
	cfg := &profiles.Config{
		Name:      "wall_clock",
		GroupKeys: []string{"problem"},
		ComboKeys: []string{"model"},
		Criterion: criteria.WallClock,
	}
	p := profiles.Build(cfg, []*models.Record{rec("A", 1.0)})
	require.NotNil(t, p)

	text := Analyze(p)
	assert.True(t, strings.Contains(text, "over 1 instance:"), "no plural for a single instance: %q", text)
}
