// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import (
	"strings"
	"testing"
)

func TestSplitSourcePathDropsEmptySegments(t *testing.T) {
	t.Parallel()

	got := splitSourcePath("Packages//_Index/signal/init.luau")
	want := "Packages,_Index,signal,init.luau"
	if strings.Join(got, ",") != want {
		t.Fatalf("splitSourcePath = %v, want %s", got, want)
	}
}

func TestDropSegmentRemovesRegistrySegment(t *testing.T) {
	t.Parallel()

	segments := splitSourcePath("Packages/_Index/signal/init.luau")
	got := dropSegment(segments, registrySegmentIndex)
	want := "Packages,signal,init.luau"
	if strings.Join(got, ",") != want {
		t.Fatalf("dropSegment = %v, want %s", got, want)
	}
}

func TestDropSegmentDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	segments := []string{"a", "b", "c"}
	_ = dropSegment(segments, 1)
	if strings.Join(segments, ",") != "a,b,c" {
		t.Fatalf("input mutated: %v", segments)
	}
}

func TestDropSegmentOutOfRangeReturnsInput(t *testing.T) {
	t.Parallel()

	segments := []string{"a", "b"}
	if got := dropSegment(segments, 5); strings.Join(got, ",") != "a,b" {
		t.Fatalf("dropSegment out of range = %v", got)
	}

	if got := dropSegment(segments, -1); strings.Join(got, ",") != "a,b" {
		t.Fatalf("dropSegment negative index = %v", got)
	}
}

func TestFileStemStopsAtFirstDot(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"init.luau":        "init",
		"Bar.spec.luau":    "Bar",
		"NoExtension":      "NoExtension",
		"init.server.luau": "init",
	}

	for input, want := range cases {
		if got := fileStem(input); got != want {
			t.Fatalf("fileStem(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestIsIndexStem(t *testing.T) {
	t.Parallel()

	if !isIndexStem("init.luau") {
		t.Fatal("init.luau should be an index stem")
	}

	if isIndexStem("initialize.luau") {
		t.Fatal("initialize.luau should not be an index stem")
	}
}
