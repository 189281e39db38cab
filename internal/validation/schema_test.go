package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResults = `{
	"suite": "nlp-small",
	"records": [
		{
			"dims": {"problem": "rosenbrock", "model": "full", "solver": "ipopt"},
			"success": true,
			"metrics": {"wall_clock_sec": 1.5, "iterations": 20}
		},
		{
			"dims": {"problem": "rosenbrock", "model": "reduced", "solver": "ipopt"},
			"success": false
		}
	]
}`

const validProfiles = `
profiles:
  - name: wall_clock
    group_by: [problem, size]
    compare_by: [model, solver]
    criterion:
      type: wall_clock
  - name: gap
    group_by: [problem]
    compare_by: [model]
    criterion:
      type: extra_field
      field: gap
      direction: lower
    aggregate: median
`

func TestValidateResultsBytes_Valid(t *testing.T) {
	errs := ValidateResultsBytes([]byte(validResults))
	assert.Empty(t, errs)
}

func TestValidateResultsBytes_MissingSuite(t *testing.T) {
	errs := ValidateResultsBytes([]byte(`{"records": []}`))
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "suite")
}

func TestValidateResultsBytes_BadRecord(t *testing.T) {
	doc := `{
		"suite": "s",
		"records": [
			{"dims": {}, "success": "yes"}
		]
	}`
	errs := ValidateResultsBytes([]byte(doc))
	require.NotEmpty(t, errs)

	joined := strings.Join(errs, "\n")
	assert.Contains(t, joined, "/records/0")
}

func TestValidateResultsBytes_UnknownMetric(t *testing.T) {
	doc := `{
		"suite": "s",
		"records": [
			{"dims": {"p": "a"}, "success": true, "metrics": {"cpu_time": 1.0}}
		]
	}`
	errs := ValidateResultsBytes([]byte(doc))
	assert.NotEmpty(t, errs)
}

func TestValidateResultsBytes_ParseError(t *testing.T) {
	errs := ValidateResultsBytes([]byte("{broken"))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "JSON parse error")
}

func TestValidateProfilesBytes_Valid(t *testing.T) {
	errs := ValidateProfilesBytes([]byte(validProfiles))
	assert.Empty(t, errs)
}

func TestValidateProfilesBytes_EmptyList(t *testing.T) {
	errs := ValidateProfilesBytes([]byte("profiles: []"))
	assert.NotEmpty(t, errs)
}

func TestValidateProfilesBytes_BadCriterionType(t *testing.T) {
	doc := `
profiles:
  - name: p
    group_by: [problem]
    compare_by: [solver]
    criterion:
      type: cpu_cycles
`
	errs := ValidateProfilesBytes([]byte(doc))
	require.NotEmpty(t, errs)

	joined := strings.Join(errs, "\n")
	assert.Contains(t, joined, "/profiles/0/criterion/type")
}

func TestValidateProfilesBytes_ParseError(t *testing.T) {
	errs := ValidateProfilesBytes([]byte("profiles: [unclosed"))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "YAML parse error")
}

func TestValidateResultsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, []byte(validResults), 0644))

	errs, err := ValidateResultsFile(path)
	require.NoError(t, err)
	assert.Empty(t, errs)

	_, err = ValidateResultsFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestValidateProfilesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validProfiles), 0644))

	errs, err := ValidateProfilesFile(path)
	require.NoError(t, err)
	assert.Empty(t, errs)
}
