// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package relevance

import "strings"

// Scoring parameters.
const (
	// BonusDivisor converts the absolute match count into a bonus:
	// each matching token adds 1/BonusDivisor, up to MaxBonus.
	BonusDivisor = 5

	// MaxBonus caps the absolute-count bonus so that a long thought
	// with many incidental matches cannot saturate on count alone.
	MaxBonus = 0.3

	// MaxConfidence is the upper bound of every score.
	MaxConfidence = 1.0
)

// Matches reports whether token and keyword match: either one
// contains the other as a substring. Both are expected to be
// lower-case already.
func Matches(token, keyword string) bool {
	return strings.Contains(keyword, token) || strings.Contains(token, keyword)
}

// Score returns the confidence in [0, MaxConfidence] that keywords are
// relevant to tokens.
//
// Every token that matches at least one keyword counts once per
// occurrence. With no matches the score is zero. Otherwise it is the
// fraction of matching tokens plus min(matches/BonusDivisor, MaxBonus),
// clamped to MaxConfidence.
func Score(tokens, keywords []string) float64 {
	matchCount := 0
	for _, token := range tokens {
		for _, keyword := range keywords {
			if Matches(token, keyword) {
				matchCount++
				break
			}
		}
	}

	// matchCount > 0 implies len(tokens) > 0, so the division below
	// is always safe.
	if matchCount == 0 {
		return 0
	}

	percentage := float64(matchCount) / float64(len(tokens))
	bonus := min(float64(matchCount)/BonusDivisor, MaxBonus)
	return min(percentage+bonus, MaxConfidence)
}
