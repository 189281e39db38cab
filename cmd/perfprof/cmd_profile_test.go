package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvebench/perfprof/internal/cache"
	"github.com/solvebench/perfprof/internal/profiles"
)

const testSpecYAML = `
profiles:
  - name: gap
    group_by: [problem]
    compare_by: [solver]
    criterion:
      type: extra_field
      field: gap
      direction: lower
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRecords_MixedFormats(t *testing.T) {
	jsonPath := writeFile(t, "results.json", `{
		"suite": "s",
		"records": [
			{"dims": {"problem": "a", "solver": "x"}, "success": true,
			 "metrics": {"wall_clock_sec": 1.0}}
		]
	}`)
	csvPath := writeFile(t, "results.csv",
		"problem,solver,success,wall_clock_sec\nb,x,true,2.5\n")

	records, err := loadRecords([]string{jsonPath, csvPath})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "a", records[0].Dims["problem"])
	assert.Equal(t, "b", records[1].Dims["problem"])
	require.NotNil(t, records[1].Metrics)
	assert.Equal(t, 2.5, *records[1].Metrics.WallClockSec)
}

func TestLoadRecords_MissingFile(t *testing.T) {
	_, err := loadRecords([]string{filepath.Join(t.TempDir(), "absent.json")})
	require.Error(t, err)
}

func TestRegisterSpecFile(t *testing.T) {
	path := writeFile(t, "profiles.yaml", testSpecYAML)

	reg := profiles.NewRegistry()
	require.NoError(t, registerSpecFile(reg, path))
	assert.Contains(t, reg.Names(), "gap")

	// Registering the same file twice collides on the name.
	err := registerSpecFile(reg, path)
	require.ErrorIs(t, err, profiles.ErrDuplicate)
}

func TestCacheInputs_IncludesProfilesFile(t *testing.T) {
	results := []string{"a.json", "b.json"}

	profilesFile = ""
	assert.Equal(t, results, cacheInputs(results))

	profilesFile = "p.yaml"
	defer func() { profilesFile = "" }()
	assert.Equal(t, []string{"a.json", "b.json", "p.yaml"}, cacheInputs(results))
}

func TestCacheKey_ChangesWhenProfileRedefined(t *testing.T) {
	results := writeFile(t, "results.json", `{"suite":"s","records":[]}`)
	spec := writeFile(t, "profiles.yaml", testSpecYAML)

	profilesFile = spec
	defer func() { profilesFile = "" }()

	k1, err := cache.Key("gap", cacheInputs([]string{results}))
	require.NoError(t, err)

	// Same profile name, different definition: the key must move.
	redefined := strings.Replace(testSpecYAML, "direction: lower", "direction: higher", 1)
	require.NoError(t, os.WriteFile(spec, []byte(redefined), 0644))

	k2, err := cache.Key("gap", cacheInputs([]string{results}))
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}

func TestTruncateCell(t *testing.T) {
	assert.Equal(t, "short", truncateCell("short", 10))
	assert.Equal(t, "model=f...", truncateCell("model=full solver=ipopt", 10))
}
