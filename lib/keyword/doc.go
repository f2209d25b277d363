// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package keyword turns free text into the token sequence used for
// relevance matching. Extraction is purely lexical: lower-case, split
// into runs of ASCII word characters, drop English function words,
// drop tokens of two characters or fewer. There is no stemming and no
// deduplication; a word that repeats in the text repeats in the output
// so that scoring can weigh it by multiplicity.
package keyword
