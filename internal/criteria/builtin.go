package criteria

import "github.com/solvebench/perfprof/internal/models"

// The standard criteria ship as data, not code: each is a name, a
// direction, and a field accessor over the nested metrics payload.
var (
	// WallClock ranks configurations by elapsed wall-clock seconds,
	// lower is better.
	WallClock = Criterion{
		Name:      "wall_clock",
		Direction: LowerIsBetter,
		Extract: func(r *models.Record) (float64, bool) {
			if r.Metrics == nil || r.Metrics.WallClockSec == nil {
				return 0, false
			}
			return *r.Metrics.WallClockSec, true
		},
	}

	// SolveTime ranks by solver-reported solve seconds, excluding model
	// construction overhead. Lower is better.
	SolveTime = Criterion{
		Name:      "solve_time",
		Direction: LowerIsBetter,
		Extract: func(r *models.Record) (float64, bool) {
			if r.Metrics == nil || r.Metrics.SolveTimeSec == nil {
				return 0, false
			}
			return *r.Metrics.SolveTimeSec, true
		},
	}

	// IterationCount ranks by solver iterations, lower is better.
	IterationCount = Criterion{
		Name:      "iterations",
		Direction: LowerIsBetter,
		Extract: func(r *models.Record) (float64, bool) {
			if r.Metrics == nil || r.Metrics.Iterations == nil {
				return 0, false
			}
			return float64(*r.Metrics.Iterations), true
		},
	}

	// PeakMemory ranks by peak resident memory in MB, lower is better.
	PeakMemory = Criterion{
		Name:      "peak_memory",
		Direction: LowerIsBetter,
		Extract: func(r *models.Record) (float64, bool) {
			if r.Metrics == nil || r.Metrics.PeakMemoryMB == nil {
				return 0, false
			}
			return *r.Metrics.PeakMemoryMB, true
		},
	}
)

// ExtraField builds a criterion reading a named auxiliary numeric field.
func ExtraField(field string, dir Direction) Criterion {
	return Criterion{
		Name:      field,
		Direction: dir,
		Extract: func(r *models.Record) (float64, bool) {
			v, ok := r.Extra[field]
			return v, ok
		},
	}
}
