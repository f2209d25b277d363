// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package keyword

import "sort"

// stopWords is the closed list of English function words and pronouns
// removed during extraction. Several entries are two characters or
// shorter and would be dropped by the length filter anyway; they stay
// listed so IsStopWord answers correctly on its own.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {},
	"is": {}, "was": {}, "are": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "should": {}, "could": {}, "may": {},
	"might": {}, "must": {}, "can": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"i": {}, "you": {}, "we": {}, "they": {}, "it": {},
}

// IsStopWord reports whether word is on the stop-word list. The
// comparison is exact; callers lower-case first.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// StopWords returns the stop-word list in sorted order.
func StopWords() []string {
	words := make([]string, 0, len(stopWords))
	for word := range stopWords {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
