// Package io handles reading and writing figure artifacts on disk.
//
// Rendered artifacts (SVG, PDF, PNG, JSON) are written per format with the
// conventional extension. Layout JSON files written by the render pipeline
// can be read back for round-trip rendering.
package io

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// WriteArtifact writes data to path, creating parent directories as needed.
func WriteArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ExportArtifacts writes a format-to-bytes map next to base. A single
// artifact whose format matches base's extension is written to base itself;
// otherwise each format gets base's stem plus its own extension. The
// returned paths are sorted.
func ExportArtifacts(base string, artifacts map[string][]byte) ([]string, error) {
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	var paths []string
	for format, data := range artifacts {
		path := stem + "." + format
		if len(artifacts) == 1 && filepath.Ext(base) == "."+format {
			path = base
		}
		if err := WriteArtifact(path, data); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadLayoutFile reads a layout JSON file previously written by the JSON
// sink. It returns the raw bytes; decode with sink.ReadJSON.
func ReadLayoutFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
