// Package cache memoizes computed profile snapshots on disk. Profile
// construction is pure and deterministic, so a snapshot keyed by the input
// files and the configuration identity can be reused until the inputs
// change.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/solvebench/perfprof/internal/profiles"
)

// Cache stores profile snapshots in a directory, one JSON file per key.
// An empty directory disables caching: Get always misses and Put is a
// no-op.
type Cache struct {
	dir string
	mu  sync.Mutex
}

// New creates a cache rooted at dir.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// Key derives a cache key from the profile configuration name and the
// contents of every input file, so any change to the collected
// measurements or the requested configuration invalidates the entry.
func Key(configName string, inputPaths []string) (string, error) {
	h := sha256.New()

	if _, err := io.WriteString(h, configName); err != nil {
		return "", err
	}
	for _, path := range inputPaths {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("hashing input %s: %w", path, err)
		}
		_, err = io.Copy(h, f)
		f.Close() //nolint:errcheck
		if err != nil {
			return "", fmt.Errorf("hashing input %s: %w", path, err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Get retrieves a cached profile snapshot if one exists for the key.
func (c *Cache) Get(key string) (*profiles.Snapshot, bool) {
	if c.dir == "" {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path(key))
	if err != nil {
		// Cache miss.
		return nil, false
	}

	var snap profiles.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Invalid cache entry, treat as miss.
		return nil, false
	}
	return &snap, true
}

// Put stores a profile snapshot under the key.
func (c *Cache) Put(key string, snap *profiles.Snapshot) error {
	if c.dir == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	if err := os.WriteFile(c.path(key), data, 0644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	return nil
}

// Clear removes all cached snapshots. It refuses to touch a directory
// containing anything other than cache files.
func (c *Cache) Clear() error {
	if c.dir == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := os.Stat(c.dir); os.IsNotExist(err) {
		return nil
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("reading cache directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			return fmt.Errorf("cache directory contains non-cache entries - refusing to delete")
		}
	}

	return os.RemoveAll(c.dir)
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}
