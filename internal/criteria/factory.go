package criteria

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Kind identifies a criterion constructor usable from declarative config.
type Kind string

const (
	KindWallClock  Kind = "wall_clock"
	KindSolveTime  Kind = "solve_time"
	KindIterations Kind = "iterations"
	KindPeakMemory Kind = "peak_memory"

	// KindExtraField reads a named entry from a record's auxiliary
	// numeric fields. Params: field (required), direction (optional,
	// defaults to lower-is-better).
	KindExtraField Kind = "extra_field"
)

// Create builds a criterion from a declarative kind plus a loosely-typed
// parameter map, as found in profile definition files.
func Create(kind Kind, params map[string]any) (Criterion, error) {
	switch kind {
	case KindWallClock:
		return WallClock, nil
	case KindSolveTime:
		return SolveTime, nil
	case KindIterations:
		return IterationCount, nil
	case KindPeakMemory:
		return PeakMemory, nil
	case KindExtraField:
		var v struct {
			Field     string `mapstructure:"field"`
			Direction string `mapstructure:"direction"`
		}
		if err := mapstructure.Decode(params, &v); err != nil {
			return Criterion{}, fmt.Errorf("criterion %q: %w", kind, err)
		}
		if v.Field == "" {
			return Criterion{}, fmt.Errorf("criterion %q requires a 'field' parameter", kind)
		}
		dir := LowerIsBetter
		switch v.Direction {
		case "", string(LowerIsBetter):
		case string(HigherIsBetter):
			dir = HigherIsBetter
		default:
			return Criterion{}, fmt.Errorf("criterion %q: unknown direction %q", kind, v.Direction)
		}
		return ExtraField(v.Field, dir), nil
	default:
		return Criterion{}, fmt.Errorf("'%s' is not a valid criterion kind", kind)
	}
}
