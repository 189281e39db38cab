// Package criteria defines the metric extraction and ordering rules used to
// rank solver configurations within a performance profile. A criterion is
// pure configuration data: an extraction function over a measurement record
// plus a direction, with no state and no side effects.
package criteria

import (
	"math"

	"github.com/solvebench/perfprof/internal/models"
)

// Direction states whether smaller or larger criterion values win.
type Direction string

const (
	LowerIsBetter  Direction = "lower"
	HigherIsBetter Direction = "higher"
)

// ExtractFunc reads a scalar from a record. The second return value is
// false when the record carries no value for this criterion (the MISSING
// sentinel); downstream filtering treats such runs as censored.
type ExtractFunc func(*models.Record) (float64, bool)

// Criterion names a metric and how to rank it. Extraction must be pure;
// values that are NaN, infinite, or negative are reported as missing since
// performance ratios are only defined over positive costs.
type Criterion struct {
	Name      string
	Direction Direction
	Extract   ExtractFunc
}

// Value applies the extraction function and normalizes degenerate scalars
// to the missing sentinel.
func (c Criterion) Value(r *models.Record) (float64, bool) {
	if c.Extract == nil || r == nil {
		return 0, false
	}
	v, ok := c.Extract(r)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// Better reports whether a ranks strictly better than b under this
// criterion's direction.
func (c Criterion) Better(a, b float64) bool {
	if c.Direction == HigherIsBetter {
		return a > b
	}
	return a < b
}

// Ratio computes a's overhead relative to the best value on an instance,
// oriented so the result is always >= 1.0 with 1.0 meaning tied for best.
// Equal values short-circuit to exactly 1.0 so ties never pick up
// floating-point noise.
func (c Criterion) Ratio(value, best float64) float64 {
	if value == best {
		return 1.0
	}
	if c.Direction == HigherIsBetter {
		return best / value
	}
	return value / best
}
