// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import (
	"encoding/json"
	"fmt"
	"path/filepath"
)

// manifestFileName is the fixed navigation manifest name inside each folder.
const manifestFileName = "_meta.json"

// Manifests accumulates per-folder navigation entries during materialization:
// folder path -> encoded file stem -> class name. Only folders that received
// at least one file carry an entry.
type Manifests map[string]map[string]string

// record stores one navigation entry for a folder.
func (manifests Manifests) record(folder, key, className string) {
	entries, ok := manifests[folder]
	if !ok {
		entries = make(map[string]string)
		manifests[folder] = entries
	}

	entries[key] = className
}

// encode serializes one folder manifest as stable pretty JSON. Object keys
// are emitted in sorted order, so identical input yields identical bytes.
func encodeManifest(entries map[string]string) ([]byte, error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteManifest, err)
	}

	return append(data, '\n'), nil
}

// Write flushes one _meta.json manifest into every accumulated folder.
func (manifests Manifests) Write(writeFile writeFileFunc) error {
	for folder, entries := range manifests {
		data, err := encodeManifest(entries)
		if err != nil {
			return err
		}

		path := filepath.Join(folder, manifestFileName)
		if err := writeFile(path, data, outputFileMode); err != nil {
			return fmt.Errorf("%w %q: %w", ErrWriteManifest, path, err)
		}
	}

	return nil
}
