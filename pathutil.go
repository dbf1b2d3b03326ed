// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import "strings"

const (
	// minSourceSegments is the minimum segment count a source path must carry.
	minSourceSegments = 2
	// registrySegmentIndex is the zero-based segment dropped before tree placement.
	registrySegmentIndex = 1
	// indexFileStem marks a file that documents its containing folder.
	indexFileStem = "init"
)

// splitSourcePath splits a slash-delimited source path into non-empty segments.
func splitSourcePath(path string) []string {
	out := make([]string, 0, 4)
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}

		out = append(out, segment)
	}

	return out
}

// joinSourcePath joins path segments back into a slash-delimited path.
func joinSourcePath(segments []string) string {
	return strings.Join(segments, "/")
}

// dropSegment removes the segment at index and returns the shortened copy.
// Out-of-range indexes return the input unchanged.
func dropSegment(segments []string, index int) []string {
	if index < 0 || index >= len(segments) {
		return segments
	}

	out := make([]string, 0, len(segments)-1)
	out = append(out, segments[:index]...)
	out = append(out, segments[index+1:]...)
	return out
}

// fileStem returns the file name portion before the first dot.
func fileStem(name string) string {
	if index := strings.IndexByte(name, '.'); index >= 0 {
		return name[:index]
	}

	return name
}

// isIndexStem reports whether the file stem marks a folder's own document.
func isIndexStem(name string) bool {
	return fileStem(name) == indexFileStem
}
