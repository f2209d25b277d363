// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package recommend

// Default tuning values.
const (
	// DefaultThreshold is the exclusive lower bound on confidence: a
	// candidate scoring exactly this value is dropped.
	DefaultThreshold = 0.2

	// DefaultTopK is the maximum number of recommendations returned.
	DefaultTopK = 3

	// DefaultContextThreshold is the history length that must be
	// exceeded before the engine suggests leaning on prior context.
	DefaultContextThreshold = 3

	// DefaultSummaryWindow is how many recent thoughts [Engine.Recent]
	// returns.
	DefaultSummaryWindow = 5
)

// Options tunes the ranking and narration.
type Options struct {
	Threshold        float64
	TopK             int
	ContextThreshold int
	SummaryWindow    int
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		Threshold:        DefaultThreshold,
		TopK:             DefaultTopK,
		ContextThreshold: DefaultContextThreshold,
		SummaryWindow:    DefaultSummaryWindow,
	}
}

// withDefaults fills non-positive sizes with their defaults. Threshold
// and ContextThreshold are taken as given: zero is meaningful for both.
func (o Options) withDefaults() Options {
	if o.TopK <= 0 {
		o.TopK = DefaultTopK
	}
	if o.SummaryWindow <= 0 {
		o.SummaryWindow = DefaultSummaryWindow
	}
	if o.ContextThreshold < 0 {
		o.ContextThreshold = DefaultContextThreshold
	}
	return o
}
