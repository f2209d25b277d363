// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package recommend

import "fmt"

// newSessionSummary is reported when no thought has been recorded.
const newSessionSummary = "Starting a new sequential thinking session."

// accumulatedContextHint is suggested once the history is longer
// than the context threshold.
const accumulatedContextHint = "You have accumulated context from previous thoughts - use this to inform your next step."

func contextSummary(historyLength int) string {
	if historyLength == 0 {
		return newSessionSummary
	}
	return fmt.Sprintf("Based on %d previous thought(s), you are working through a sequential problem-solving process.", historyLength)
}

// nextSteps returns at most two hints: the top-ranked command first,
// then the accumulated-context hint.
func nextSteps(recommendations []Recommendation, historyLength, contextThreshold int) []string {
	suggestions := []string{}
	if len(recommendations) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Consider using %s to proceed.", recommendations[0].Command))
	}
	if historyLength > contextThreshold {
		suggestions = append(suggestions, accumulatedContextHint)
	}
	return suggestions
}
