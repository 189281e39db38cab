package models

import "time"

// Record is one raw benchmark measurement: a single run of one solver
// configuration on one problem instance. Records are immutable once
// collected; the profiling engine never mutates them.
type Record struct {
	// Dims holds the identity dimensions of the measurement, e.g.
	// problem, size, model, solver. Which dims form the instance identity
	// and which form the combo identity is decided by a profile
	// configuration, not by the record itself.
	Dims map[string]string `json:"dims"`

	// Success reports whether the run completed and produced a usable
	// outcome. Failed runs stay in the result file so that profiles can
	// count them against a combo's robustness.
	Success bool `json:"success"`

	// Metrics carries the measured outcome of the run. Nil when the run
	// failed before producing measurements.
	Metrics *RunMetrics `json:"metrics,omitempty"`

	// Extra holds auxiliary numeric fields that have no dedicated slot in
	// RunMetrics. Custom criteria can read these by name.
	Extra map[string]float64 `json:"extra,omitempty"`

	// Metadata is free-form context (host, tags, log paths). The engine
	// ignores it.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// RunMetrics is the nested measurement payload of a successful run.
// Optional fields are pointers so that "not measured" is distinguishable
// from zero.
type RunMetrics struct {
	WallClockSec *float64 `json:"wall_clock_sec,omitempty"`
	SolveTimeSec *float64 `json:"solve_time_sec,omitempty"`
	Iterations   *int     `json:"iterations,omitempty"`
	Objective    *float64 `json:"objective,omitempty"`
	PeakMemoryMB *float64 `json:"peak_memory_mb,omitempty"`
}

// Dim returns the value of one identity dimension and whether it is set.
func (r *Record) Dim(key string) (string, bool) {
	v, ok := r.Dims[key]
	return v, ok
}

// ResultSet is the on-disk container for collected measurements: one
// benchmark suite execution's worth of records plus collection context.
type ResultSet struct {
	Suite       string    `json:"suite"`
	CollectedAt time.Time `json:"collected_at"`
	Runner      string    `json:"runner,omitempty"`
	Records     []*Record `json:"records"`
}
