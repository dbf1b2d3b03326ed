// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import (
	"strings"
	"testing"
)

func TestSanitizeTextSquashesWhitespace(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"  Signal  ":         "Signal",
		"fires\tonce\n only": "fires once only",
		"":                   "",
		"   ":                "",
	}

	for input, want := range cases {
		if got := sanitizeText(input); got != want {
			t.Fatalf("sanitizeText(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFormatDescriptionMarkdownWrapsParagraphs(t *testing.T) {
	t.Parallel()

	input := "one two three four five six seven"
	got := formatDescriptionMarkdown(input, 15)

	for _, line := range strings.Split(got, "\n") {
		if len(line) > 15 {
			t.Fatalf("line exceeds wrap width: %q", line)
		}
	}

	if strings.Join(strings.Fields(got), " ") != input {
		t.Fatalf("wrapping altered words: %q", got)
	}
}

func TestFormatDescriptionMarkdownPreservesFences(t *testing.T) {
	t.Parallel()

	input := "Intro text.\n\n```lua\nlocal signal    = Signal.new()\n\n\nsignal:Fire()\n```\n\nOutro."
	got := formatDescriptionMarkdown(input, 80)

	assertContains(t, got, "local signal    = Signal.new()")
	assertContains(t, got, "\n\n\nsignal:Fire()")
}

func TestFormatDescriptionMarkdownPreservesStructuredLines(t *testing.T) {
	t.Parallel()

	input := "## Heading\n- item one\n- item two\n> quoted\n| a | b |"
	got := formatDescriptionMarkdown(input, 10)

	if got != input {
		t.Fatalf("structured lines rewritten:\n%s", got)
	}
}

func TestNormalizeDocumentOutputCollapsesBlankRuns(t *testing.T) {
	t.Parallel()

	input := "# Title\n\n\n\nBody line.   \n\n\n"
	got := normalizeDocumentOutput(input)

	if got != "# Title\n\nBody line." {
		t.Fatalf("normalizeDocumentOutput = %q", got)
	}
}

func TestNormalizeDocumentOutputKeepsFenceInterior(t *testing.T) {
	t.Parallel()

	input := "```\nfirst\n\n\nlast\n```"
	if got := normalizeDocumentOutput(input); got != input {
		t.Fatalf("fence interior rewritten: %q", got)
	}
}

func TestEnsureTrailingNewline(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"body":       "body\n",
		"body\n":     "body\n",
		"body\n\n\n": "body\n",
		"":           "\n",
	}

	for input, want := range cases {
		if got := ensureTrailingNewline(input); got != want {
			t.Fatalf("ensureTrailingNewline(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestWrapParagraphNeverSplitsWords(t *testing.T) {
	t.Parallel()

	lines := wrapParagraph("supercalifragilistic word", 5)
	if len(lines) != 2 || lines[0] != "supercalifragilistic" || lines[1] != "word" {
		t.Fatalf("wrapParagraph = %v", lines)
	}
}
