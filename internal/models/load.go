package models

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// LoadResultSet reads a result file from disk. Files ending in .gz or .zst
// are decompressed transparently; benchmark archives are routinely stored
// compressed.
func LoadResultSet(path string) (*ResultSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("results: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("results: gzip %s: %w", path, err)
		}
		defer gz.Close() //nolint:errcheck
		r = gz
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("results: zstd %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	return DecodeResultSet(r, path)
}

// DecodeResultSet decodes a result set from an already-open reader.
// The name parameter is only used in error messages.
func DecodeResultSet(r io.Reader, name string) (*ResultSet, error) {
	var rs ResultSet
	dec := json.NewDecoder(r)
	if err := dec.Decode(&rs); err != nil {
		return nil, fmt.Errorf("results: parse %s: %w", name, err)
	}
	if len(rs.Records) == 0 {
		// An empty record list is legal; profiling treats it as NoData.
		rs.Records = nil
	}
	return &rs, nil
}
