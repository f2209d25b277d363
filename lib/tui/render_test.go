// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/inconsequential/lib/catalog"
	"github.com/bureau-foundation/inconsequential/lib/history"
	"github.com/bureau-foundation/inconsequential/lib/recommend"
)

func plainRenderer(width int) *Renderer {
	return NewRendererWithProfile(&bytes.Buffer{}, DefaultTheme, termenv.Ascii, width)
}

func colorRenderer(width int) *Renderer {
	return NewRendererWithProfile(&bytes.Buffer{}, DefaultTheme, termenv.ANSI256, width)
}

func sampleResponse() recommend.Response {
	return recommend.Response{
		RecommendedCommands: []recommend.Recommendation{
			{Command: "/plan:create", Confidence: 0.9, Rationale: "Create a plan. Use when starting work", Priority: 1},
			{Command: "/analyse:project:analyse", Confidence: 0.4, Rationale: "Analyse the project. Use when unsure", Priority: 2},
		},
		ContextSummary:      "Based on 1 previous thought(s).",
		NextStepSuggestions: []string{"Consider using /plan:create to proceed."},
	}
}

func TestRenderer_ResponsePlain(t *testing.T) {
	got := plainRenderer(200).Response(sampleResponse())

	want := "Recommended commands\n" +
		"  1. /plan:create [#########.]  90%\n" +
		"     Create a plan. Use when starting work\n" +
		"  2. /analyse:project:analyse [####......]  40%\n" +
		"     Analyse the project. Use when unsure\n" +
		"\n" +
		"Context\n" +
		"  Based on 1 previous thought(s).\n" +
		"\n" +
		"Next steps\n" +
		"  - Consider using /plan:create to proceed.\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Response() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_ResponseEmpty(t *testing.T) {
	got := plainRenderer(200).Response(recommend.Response{
		RecommendedCommands: []recommend.Recommendation{},
		ContextSummary:      "Starting a new sequential thinking session.",
		NextStepSuggestions: []string{},
	})

	if !strings.Contains(got, "(no command matched this thought)") {
		t.Errorf("empty response should say nothing matched:\n%s", got)
	}
	if strings.Contains(got, "Next steps") {
		t.Errorf("empty suggestions should omit the section:\n%s", got)
	}
}

func TestRenderer_ColorStripsToPlain(t *testing.T) {
	plain := plainRenderer(200).Response(sampleResponse())
	colored := colorRenderer(200).Response(sampleResponse())

	if colored == plain {
		t.Fatal("ANSI256 renderer produced no escape sequences")
	}
	if diff := cmp.Diff(plain, ansi.Strip(colored)); diff != "" {
		t.Errorf("stripped color output differs from plain (-plain +stripped):\n%s", diff)
	}
}

func TestRenderer_PlainHasNoEscapes(t *testing.T) {
	output := plainRenderer(200).Response(sampleResponse())
	if strings.Contains(output, "\x1b[") {
		t.Errorf("ASCII profile output contains escape sequences: %q", output)
	}
}

func TestRenderer_WrapsToWidth(t *testing.T) {
	renderer := plainRenderer(40)
	text := strings.TrimSpace(strings.Repeat("word ", 30))

	for _, line := range strings.Split(strings.TrimRight(renderer.indent(text, "  "), "\n"), "\n") {
		if width := ansi.StringWidth(line); width > 40 {
			t.Errorf("line %q has width %d, want <= 40", line, width)
		}
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("line %q lacks indent prefix", line)
		}
	}
}

func TestRenderer_ConfidenceBar(t *testing.T) {
	renderer := plainRenderer(80)
	tests := []struct {
		confidence float64
		want       string
	}{
		{0, "[..........]"},
		{0.25, "[###.......]"},
		{0.5, "[#####.....]"},
		{1, "[##########]"},
	}
	for _, test := range tests {
		if got := renderer.confidenceBar(test.confidence); got != test.want {
			t.Errorf("confidenceBar(%v) = %q, want %q", test.confidence, got, test.want)
		}
	}
}

func TestTheme_ConfidenceColor(t *testing.T) {
	theme := DefaultTheme
	tests := []struct {
		confidence float64
		want       string
	}{
		{1.0, string(theme.ConfidenceHigh)},
		{0.7, string(theme.ConfidenceHigh)},
		{0.69, string(theme.ConfidenceMedium)},
		{0.4, string(theme.ConfidenceMedium)},
		{0.21, string(theme.ConfidenceLow)},
	}
	for _, test := range tests {
		if got := string(theme.ConfidenceColor(test.confidence)); got != test.want {
			t.Errorf("ConfidenceColor(%v) = %s, want %s", test.confidence, got, test.want)
		}
	}
}

func TestRenderer_Catalog(t *testing.T) {
	output := plainRenderer(200).Catalog([]catalog.Action{
		{Name: "/plan:create", Description: "Create a plan", UseWhen: "starting work", Keywords: []string{"plan", "design"}},
	})

	want := "/plan:create\n" +
		"  Create a plan\n" +
		"  Use when: starting work\n" +
		"  Keywords: plan, design\n"
	if diff := cmp.Diff(want, output); diff != "" {
		t.Errorf("Catalog() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_History(t *testing.T) {
	renderer := plainRenderer(200)

	if got := renderer.History(nil); got != "No thoughts recorded.\n" {
		t.Errorf("History(nil) = %q", got)
	}

	stamp := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	got := renderer.History([]history.Thought{
		{Text: "plan the feature", Number: 1, TotalEstimate: 3, Timestamp: stamp},
		{Text: "fix the layout", Number: 2, TotalEstimate: 3, Timestamp: stamp.Add(time.Minute)},
	})
	want := "[1/3] 2026-10-19T12:00:00Z\n" +
		"  plan the feature\n" +
		"[2/3] 2026-10-19T12:01:00Z\n" +
		"  fix the layout\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("History() mismatch (-want +got):\n%s", diff)
	}
}
