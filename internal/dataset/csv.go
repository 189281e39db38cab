// Package dataset ingests tabular measurement exports into records. Some
// benchmark runners emit CSV rather than the native JSON result format;
// this package maps those columns onto the record shape by header
// convention.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/solvebench/perfprof/internal/models"
)

// Column conventions: "success" carries the run's success flag, the metric
// columns below map onto the nested metrics payload, "x_"-prefixed columns
// are auxiliary numerics, and every remaining column is an identity dim.
const (
	successColumn = "success"
	extraPrefix   = "x_"
)

var metricColumns = map[string]func(*models.RunMetrics, float64){
	"wall_clock_sec": func(m *models.RunMetrics, v float64) { m.WallClockSec = &v },
	"solve_time_sec": func(m *models.RunMetrics, v float64) { m.SolveTimeSec = &v },
	"iterations":     func(m *models.RunMetrics, v float64) { n := int(v); m.Iterations = &n },
	"objective":      func(m *models.RunMetrics, v float64) { m.Objective = &v },
	"peak_memory_mb": func(m *models.RunMetrics, v float64) { m.PeakMemoryMB = &v },
}

// LoadRecordsCSV reads a CSV measurement export. The first row is treated
// as headers. Empty metric cells mean "not measured" and leave the field
// unset.
func LoadRecordsCSV(path string) ([]*models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv: %s is empty (no header row)", path)
	}

	headers := rows[0]
	records := make([]*models.Record, 0, len(rows)-1)

	for i, row := range rows[1:] {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("csv: row %d has %d columns, expected %d", i+2, len(row), len(headers))
		}
		rec, err := recordFromRow(headers, row)
		if err != nil {
			return nil, fmt.Errorf("csv: row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func recordFromRow(headers, row []string) (*models.Record, error) {
	rec := &models.Record{Dims: make(map[string]string)}
	m := &models.RunMetrics{}
	hasMetrics := false

	for j, h := range headers {
		cell := strings.TrimSpace(row[j])
		switch {
		case h == successColumn:
			ok, err := parseBool(cell)
			if err != nil {
				return nil, err
			}
			rec.Success = ok
		case metricColumns[h] != nil:
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", h, err)
			}
			metricColumns[h](m, v)
			hasMetrics = true
		case strings.HasPrefix(h, extraPrefix):
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", h, err)
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]float64)
			}
			rec.Extra[strings.TrimPrefix(h, extraPrefix)] = v
		default:
			rec.Dims[h] = cell
		}
	}

	if hasMetrics {
		rec.Metrics = m
	}
	return rec, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "pass":
		return true, nil
	case "false", "0", "no", "fail", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid success value %q", s)
	}
}
