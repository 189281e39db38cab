package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvebench/perfprof/internal/profiles"
)

func sampleSnapshot() *profiles.Snapshot {
	return &profiles.Snapshot{
		Config:    "wall_clock",
		Criterion: "wall_clock_sec",
		Instances: []string{"problem=a size=16", "problem=b size=16"},
		Series: map[string][]float64{
			"model=full solver=ipopt":    {1.0, 2.0},
			"model=reduced solver=ipopt": {1.0, 1.5},
		},
		Winners: map[string][]string{
			"problem=a size=16": {"model=full solver=ipopt"},
			"problem=b size=16": {"model=reduced solver=ipopt"},
		},
	}
}

func TestCache_PutGetRoundTrip(t *testing.T) {
	c := New(t.TempDir())

	snap := sampleSnapshot()
	require.NoError(t, c.Put("abc123", snap))

	got, ok := c.Get("abc123")
	require.True(t, ok)
	assert.Equal(t, snap, got)
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c := New(t.TempDir())
	_, ok := c.Get("nope")
	assert.False(t, ok)
}

func TestCache_EmptyDirDisables(t *testing.T) {
	c := New("")
	require.NoError(t, c.Put("k", sampleSnapshot()))
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.NoError(t, c.Clear())
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{truncated"), 0644))

	_, ok := c.Get("bad")
	assert.False(t, ok)
}

func TestKey_StableAndContentSensitive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"suite":"s","records":[]}`), 0644))

	k1, err := Key("wall_clock", []string{path})
	require.NoError(t, err)
	k2, err := Key("wall_clock", []string{path})
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	k3, err := Key("iterations", []string{path})
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	require.NoError(t, os.WriteFile(path, []byte(`{"suite":"s2","records":[]}`), 0644))
	k4, err := Key("wall_clock", []string{path})
	require.NoError(t, err)
	assert.NotEqual(t, k1, k4)
}

func TestKey_MissingInput(t *testing.T) {
	_, err := Key("wall_clock", []string{filepath.Join(t.TempDir(), "absent.json")})
	require.Error(t, err)
}

func TestCache_Clear(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c := New(dir)
	require.NoError(t, c.Put("k1", sampleSnapshot()))
	require.NoError(t, c.Put("k2", sampleSnapshot()))

	require.NoError(t, c.Clear())
	_, ok := c.Get("k1")
	assert.False(t, ok)

	// Clearing an already-missing directory is fine.
	require.NoError(t, c.Clear())
}

func TestCache_ClearRefusesForeignFiles(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	require.NoError(t, c.Put("k1", sampleSnapshot()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep me"), 0644))

	require.Error(t, c.Clear())
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}
