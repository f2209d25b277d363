// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for rendered output. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Command names and section headers.
	CommandForeground lipgloss.Color
	HeaderForeground  lipgloss.Color
	BorderColor       lipgloss.Color

	// Confidence bands, from strongest to weakest match.
	ConfidenceHigh   lipgloss.Color
	ConfidenceMedium lipgloss.Color
	ConfidenceLow    lipgloss.Color
}

// Confidence band lower bounds used by [Theme.ConfidenceColor].
const (
	HighConfidence   = 0.7
	MediumConfidence = 0.4
)

// ConfidenceColor returns the band color for a confidence in [0, 1].
func (theme Theme) ConfidenceColor(confidence float64) lipgloss.Color {
	switch {
	case confidence >= HighConfidence:
		return theme.ConfidenceHigh
	case confidence >= MediumConfidence:
		return theme.ConfidenceMedium
	default:
		return theme.ConfidenceLow
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	CommandForeground: lipgloss.Color("75"), // blue
	HeaderForeground:  lipgloss.Color("255"),
	BorderColor:       lipgloss.Color("240"),

	ConfidenceHigh:   lipgloss.Color("114"), // green
	ConfidenceMedium: lipgloss.Color("220"), // amber
	ConfidenceLow:    lipgloss.Color("208"), // orange
}
