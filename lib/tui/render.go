// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/bureau-foundation/inconsequential/lib/catalog"
	"github.com/bureau-foundation/inconsequential/lib/history"
	"github.com/bureau-foundation/inconsequential/lib/recommend"
)

// DefaultWidth is the wrap width for descriptive text when the output
// is not a terminal or its size cannot be read.
const DefaultWidth = 80

// barWidth is the number of cells in a confidence bar.
const barWidth = 10

// Renderer formats engine output as styled text.
type Renderer struct {
	lip   *lipgloss.Renderer
	theme Theme
	width int
}

// NewRenderer returns a Renderer for output. Color and width are
// detected when output is a terminal *os.File; anything else renders
// plain ASCII at [DefaultWidth].
func NewRenderer(output io.Writer, theme Theme) *Renderer {
	profile := termenv.Ascii
	width := DefaultWidth
	if file, ok := output.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		profile = termenv.ANSI256
		if columns, _, err := term.GetSize(int(file.Fd())); err == nil && columns > 0 {
			width = columns
		}
	}
	return NewRendererWithProfile(output, theme, profile, width)
}

// NewRendererWithProfile returns a Renderer with an explicit color
// profile and wrap width, bypassing terminal detection.
func NewRendererWithProfile(output io.Writer, theme Theme, profile termenv.Profile, width int) *Renderer {
	// lipgloss re-detects the profile from the writer unless it is
	// set explicitly after construction.
	lip := lipgloss.NewRenderer(output, termenv.WithProfile(profile))
	lip.SetColorProfile(profile)
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{lip: lip, theme: theme, width: width}
}

// Response renders a thinking response: ranked recommendations with
// confidence bars, then the context summary and next-step suggestions.
func (r *Renderer) Response(response recommend.Response) string {
	var builder strings.Builder

	builder.WriteString(r.header("Recommended commands"))
	builder.WriteByte('\n')
	if len(response.RecommendedCommands) == 0 {
		builder.WriteString(r.faint("  (no command matched this thought)"))
		builder.WriteByte('\n')
	}
	for _, recommendation := range response.RecommendedCommands {
		fmt.Fprintf(&builder, "  %d. %s %s %s\n",
			recommendation.Priority,
			r.command(recommendation.Command),
			r.confidenceBar(recommendation.Confidence),
			r.confidencePercent(recommendation.Confidence),
		)
		builder.WriteString(r.indent(recommendation.Rationale, "     "))
	}

	builder.WriteByte('\n')
	builder.WriteString(r.header("Context"))
	builder.WriteByte('\n')
	builder.WriteString(r.indent(response.ContextSummary, "  "))

	if len(response.NextStepSuggestions) > 0 {
		builder.WriteByte('\n')
		builder.WriteString(r.header("Next steps"))
		builder.WriteByte('\n')
		for _, suggestion := range response.NextStepSuggestions {
			builder.WriteString(r.indent("- "+suggestion, "  "))
		}
	}
	return builder.String()
}

// Catalog renders every catalog action with its description, usage
// hint, and keywords.
func (r *Renderer) Catalog(actions []catalog.Action) string {
	var builder strings.Builder
	for index, action := range actions {
		if index > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(r.command(action.Name))
		builder.WriteByte('\n')
		builder.WriteString(r.indent(action.Description, "  "))
		builder.WriteString(r.indent("Use when: "+action.UseWhen, "  "))
		builder.WriteString(r.indent(r.faint("Keywords: "+strings.Join(action.Keywords, ", ")), "  "))
	}
	return builder.String()
}

// History renders thoughts oldest first, one per paragraph.
func (r *Renderer) History(thoughts []history.Thought) string {
	if len(thoughts) == 0 {
		return r.faint("No thoughts recorded.") + "\n"
	}

	var builder strings.Builder
	for _, thought := range thoughts {
		position := fmt.Sprintf("[%d/%d]", thought.Number, thought.TotalEstimate)
		fmt.Fprintf(&builder, "%s %s\n",
			r.lip.NewStyle().Bold(true).Foreground(r.theme.HeaderForeground).Render(position),
			r.faint(thought.Timestamp.UTC().Format(time.RFC3339)),
		)
		builder.WriteString(r.indent(thought.Text, "  "))
	}
	return builder.String()
}

func (r *Renderer) header(text string) string {
	return r.lip.NewStyle().
		Bold(true).
		Foreground(r.theme.HeaderForeground).
		Render(text)
}

func (r *Renderer) command(name string) string {
	return r.lip.NewStyle().
		Bold(true).
		Foreground(r.theme.CommandForeground).
		Render(name)
}

func (r *Renderer) faint(text string) string {
	return r.lip.NewStyle().Foreground(r.theme.FaintText).Render(text)
}

// confidenceBar draws a fixed-width bar filled in proportion to
// confidence, rounded to the nearest cell.
func (r *Renderer) confidenceBar(confidence float64) string {
	filled := max(0, min(barWidth, int(math.Round(confidence*barWidth))))
	bar := strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled)
	return r.lip.NewStyle().Foreground(r.theme.ConfidenceColor(confidence)).Render("[" + bar + "]")
}

func (r *Renderer) confidencePercent(confidence float64) string {
	return r.lip.NewStyle().
		Foreground(r.theme.ConfidenceColor(confidence)).
		Render(fmt.Sprintf("%3.0f%%", confidence*100))
}

// indent wraps text to the renderer width minus the prefix and
// prefixes every resulting line. The result ends in a newline.
func (r *Renderer) indent(text, prefix string) string {
	wrapWidth := max(r.width-ansi.StringWidth(prefix), 20)
	wrapped := ansi.Wordwrap(text, wrapWidth, "")

	var builder strings.Builder
	for _, line := range strings.Split(wrapped, "\n") {
		builder.WriteString(prefix)
		builder.WriteString(line)
		builder.WriteByte('\n')
	}
	return builder.String()
}
