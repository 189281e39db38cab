package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvebench/perfprof/internal/criteria"
	"github.com/solvebench/perfprof/internal/models"
	"github.com/solvebench/perfprof/internal/profiles"
)

func comparisonProfile(t *testing.T) *profiles.Profile {
	t.Helper()
	wall := func(problem, solver string, sec float64) *models.Record {
		return &models.Record{
			Dims:    map[string]string{"problem": problem, "solver": solver},
			Success: true,
			Metrics: &models.RunMetrics{WallClockSec: &sec},
		}
	}
	cfg := &profiles.Config{
		Name:      "wall_clock",
		GroupKeys: []string{"problem"},
		ComboKeys: []string{"solver"},
		Criterion: criteria.WallClock,
	}
	p := profiles.Build(cfg, []*models.Record{
		wall("p1", "ipopt", 1.0),
		wall("p1", "snopt", 2.0),
	})
	require.NotNil(t, p)
	return p
}

func TestAbsentCombos_AllPresent(t *testing.T) {
	p := comparisonProfile(t)
	assert.Empty(t, absentCombos(p, []string{"solver=ipopt", "solver=snopt"}))
}

func TestAbsentCombos_ReportsMissingInRequestOrder(t *testing.T) {
	p := comparisonProfile(t)
	missing := absentCombos(p, []string{"solver=knitro", "solver=ipopt", "solver=worhp"})
	assert.Equal(t, []string{"solver=knitro", "solver=worhp"}, missing)
}
