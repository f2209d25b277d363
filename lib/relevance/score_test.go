// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package relevance

import (
	"math"
	"strings"
	"testing"
)

const tolerance = 1e-9

func TestMatches(t *testing.T) {
	tests := []struct {
		token   string
		keyword string
		want    bool
	}{
		{"plan", "plan", true},
		// Token contains keyword.
		{"plans", "plan", true},
		// Keyword contains token.
		{"arch", "architecture", true},
		// Short keywords match inside longer tokens.
		{"build", "ui", true},
		{"xyz", "plan", false},
		// The empty string is a substring of everything.
		{"", "plan", true},
	}

	for _, test := range tests {
		if got := Matches(test.token, test.keyword); got != test.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", test.token, test.keyword, got, test.want)
		}
	}
}

func TestScore(t *testing.T) {
	planKeywords := []string{"plan", "design", "architecture", "implementation", "approach", "strategy", "feature", "project"}

	tests := []struct {
		name     string
		tokens   []string
		keywords []string
		want     float64
	}{
		{
			name:     "no tokens",
			tokens:   nil,
			keywords: planKeywords,
			want:     0,
		},
		{
			name:     "no keywords",
			tokens:   []string{"plan"},
			keywords: nil,
			want:     0,
		},
		{
			name:     "no overlap",
			tokens:   []string{"xyz", "qwe"},
			keywords: planKeywords,
			want:     0,
		},
		{
			// 3 of 5 match: 0.6 + min(0.6, 0.3) = 0.9
			name:     "three of five",
			tokens:   []string{"need", "plan", "architecture", "new", "feature"},
			keywords: planKeywords,
			want:     0.9,
		},
		{
			// 1 of 5 match: 0.2 + 0.2 = 0.4
			name:     "one of five",
			tokens:   []string{"need", "plan", "something", "new", "else"},
			keywords: planKeywords,
			want:     0.4,
		},
		{
			// 1 of 1 match: 1.0 + 0.2 clamps to 1.0
			name:     "single exact match clamps",
			tokens:   []string{"plan"},
			keywords: planKeywords,
			want:     1.0,
		},
		{
			// 1 of 10 match: 0.1 + 0.2 = 0.3
			name:     "one of ten",
			tokens:   []string{"plan", "aaa", "bbb", "ccc", "ddd", "eee", "fff", "ggg", "hhh", "iii"},
			keywords: planKeywords,
			want:     0.3,
		},
		{
			// Repeated tokens count with multiplicity: 2 of 3 match,
			// 0.666... + 0.3 (bonus 0.4 capped at 0.3).
			name:     "duplicates count",
			tokens:   []string{"bug", "bug", "zzz"},
			keywords: []string{"bug", "issue"},
			want:     2.0/3 + MaxBonus,
		},
		{
			// 3 of 4 match: 0.75 + 0.3 clamps to 1.0.
			name:     "duplicates saturate",
			tokens:   []string{"bug", "bug", "bug", "zzz"},
			keywords: []string{"bug", "issue"},
			want:     MaxConfidence,
		},
		{
			// A token matching several keywords still counts once:
			// 1 of 4 match, 0.25 + 0.2 = 0.45.
			name:     "token counted once across keywords",
			tokens:   []string{"style", "aaa", "bbb", "ccc"},
			keywords: []string{"style", "styles", "stylesheet"},
			want:     0.45,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Score(test.tokens, test.keywords)
			if math.Abs(got-test.want) > tolerance {
				t.Errorf("Score(%v, %v) = %v, want %v", test.tokens, test.keywords, got, test.want)
			}
		})
	}
}

// TestScoreBounds checks that scores stay within [0, MaxConfidence]
// for adversarial inputs: extreme repetition, every token matching,
// and almost no tokens matching.
func TestScoreBounds(t *testing.T) {
	keywords := []string{"layout", "ui", "style", "css"}

	repeated := func(token string, count int) []string {
		return strings.Fields(strings.Repeat(token+" ", count))
	}

	inputs := [][]string{
		repeated("css", 100000),
		repeated("zzz", 100000),
		append(repeated("zzz", 99999), "css"),
		append(repeated("css", 99999), "zzz"),
		{"building"}, // contains "ui"
		{"u"},
	}

	for _, tokens := range inputs {
		got := Score(tokens, keywords)
		if got < 0 || got > MaxConfidence {
			t.Errorf("Score over %d tokens = %v, outside [0, %v]", len(tokens), got, MaxConfidence)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Score over %d tokens = %v, not finite", len(tokens), got)
		}
	}
}
