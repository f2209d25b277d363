// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package recommend

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/bureau-foundation/inconsequential/lib/catalog"
	"github.com/bureau-foundation/inconsequential/lib/history"
	"github.com/bureau-foundation/inconsequential/lib/keyword"
	"github.com/bureau-foundation/inconsequential/lib/relevance"
)

// Input is one already-validated thinking invocation.
type Input struct {
	Thought       string
	ThoughtNumber int
	TotalThoughts int

	// NextThoughtNeeded is the caller's own sequencing flag. The
	// engine logs it but does not act on it.
	NextThoughtNeeded bool
}

// Recommendation is a ranked catalog action.
type Recommendation struct {
	Command    string  `json:"command"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
	Priority   int     `json:"priority"`
}

// Response is the engine's answer to one thought.
type Response struct {
	RecommendedCommands []Recommendation `json:"recommended_commands"`
	ContextSummary      string           `json:"context_summary"`
	NextStepSuggestions []string         `json:"next_step_suggestions"`
}

// candidate is a scored action before filtering and truncation.
type candidate struct {
	action     catalog.Action
	confidence float64
}

// Engine ranks catalog actions against thoughts and tracks the
// thought history of one session.
type Engine struct {
	// mu makes record-then-rank a single step, so a concurrent caller
	// never sees a history length that includes someone else's
	// half-finished invocation.
	mu sync.Mutex

	catalog *catalog.Catalog
	history *history.Store
	options Options
	logger  *slog.Logger
}

// New creates an engine over the given catalog and history. A nil
// logger discards log output.
func New(catalog *catalog.Catalog, store *history.Store, options Options, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		catalog: catalog,
		history: store,
		options: options.withDefaults(),
		logger:  logger,
	}
}

// Think records the thought in history and returns recommendations
// for it. The context summary and hints reflect the history including
// this thought.
func (e *Engine) Think(input Input) Response {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.history.Record(input.Thought, input.ThoughtNumber, input.TotalThoughts)
	response := e.rank(input.Thought)

	e.logger.Debug("thought processed",
		"thought_number", input.ThoughtNumber,
		"total_thoughts", input.TotalThoughts,
		"next_thought_needed", input.NextThoughtNeeded,
		"recommendations", len(response.RecommendedCommands),
		"history_length", e.history.Len(),
	)
	return response
}

// Recommend ranks actions for thought without recording it. On an
// engine with no history yet, the summary reports a new session.
func (e *Engine) Recommend(thought string) Response {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rank(thought)
}

// Recent returns the most recent thoughts, up to the configured
// summary window, oldest first.
func (e *Engine) Recent() []history.Thought {
	return e.history.Recent(e.options.SummaryWindow)
}

// RecentN returns up to n of the most recent thoughts, oldest first.
func (e *Engine) RecentN(n int) []history.Thought {
	return e.history.Recent(n)
}

// AllThoughts returns every retained thought, oldest first.
func (e *Engine) AllThoughts() []history.Thought {
	return e.history.All()
}

// HistoryLen returns the number of thoughts held.
func (e *Engine) HistoryLen() int {
	return e.history.Len()
}

// HistoryCapacity returns the most thoughts the history retains.
func (e *Engine) HistoryCapacity() int {
	return e.history.Capacity()
}

// Catalog returns the catalog the engine ranks against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Options returns the engine's effective tuning.
func (e *Engine) Options() Options {
	return e.options
}

// rank runs extraction, scoring, filtering, sorting, truncation, and
// narration. Callers hold e.mu.
func (e *Engine) rank(thought string) Response {
	tokens := keyword.Extract(thought)

	var candidates []candidate
	e.catalog.Each(func(action catalog.Action) {
		confidence := relevance.Score(tokens, action.Keywords)
		if confidence <= e.options.Threshold {
			return
		}
		candidates = append(candidates, candidate{action: action, confidence: confidence})
	})

	// Stable: equal confidences keep catalog declaration order.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].confidence > candidates[b].confidence
	})
	if len(candidates) > e.options.TopK {
		candidates = candidates[:e.options.TopK]
	}

	recommendations := make([]Recommendation, len(candidates))
	for i, scored := range candidates {
		recommendations[i] = Recommendation{
			Command:    scored.action.Name,
			Confidence: scored.confidence,
			Rationale:  scored.action.Description + ". " + scored.action.UseWhen,
			Priority:   i + 1,
		}
	}

	historyLength := e.history.Len()
	return Response{
		RecommendedCommands: recommendations,
		ContextSummary:      contextSummary(historyLength),
		NextStepSuggestions: nextSteps(recommendations, historyLength, e.options.ContextThreshold),
	}
}
