// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package keyword

import (
	"regexp"
	"strings"
)

// MinLength is the shortest token Extract keeps. Tokens of length
// MinLength-1 or less carry too little signal for substring matching
// ("ui" would match half the dictionary).
const MinLength = 3

// tokenPattern matches maximal runs of ASCII word characters. Input
// is lower-cased before matching, so upper-case letters never reach
// the pattern.
var tokenPattern = regexp.MustCompile(`[a-z0-9_]+`)

// Extract returns the keyword tokens of text in left-to-right order.
// Punctuation and whitespace separate tokens; stop words and tokens
// shorter than MinLength are dropped. Duplicates are kept.
//
// Empty or all-noise input yields a nil slice.
func Extract(text string) []string {
	matches := tokenPattern.FindAllString(strings.ToLower(text), -1)

	// Filter in place.
	tokens := matches[:0]
	for _, match := range matches {
		if len(match) < MinLength || IsStopWord(match) {
			continue
		}
		tokens = append(tokens, match)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
