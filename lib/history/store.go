// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package history

import (
	"sync"
	"time"

	"github.com/bureau-foundation/inconsequential/lib/clock"
)

// DefaultCapacity is the number of thoughts a Store retains when no
// explicit capacity is configured.
const DefaultCapacity = 50

// Thought is one recorded step of a caller's sequential reasoning.
// Number and TotalEstimate are the caller's own bookkeeping and are
// stored as given.
type Thought struct {
	Text          string    `json:"text"`
	Number        int       `json:"number"`
	TotalEstimate int       `json:"total_estimate"`
	Timestamp     time.Time `json:"timestamp"`
}

// Store is a capacity-bounded FIFO buffer of thoughts.
type Store struct {
	mu       sync.Mutex
	clock    clock.Clock
	capacity int
	thoughts []Thought
}

// New creates an empty Store holding at most capacity thoughts. A
// capacity of zero or less selects DefaultCapacity; a nil source
// selects the real clock.
func New(capacity int, source clock.Clock) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if source == nil {
		source = clock.Real()
	}
	return &Store{
		clock:    source,
		capacity: capacity,
		thoughts: make([]Thought, 0, capacity+1),
	}
}

// Record appends a thought stamped with the current time and evicts
// the oldest entries while the store is over capacity. Returns the
// stored thought.
func (s *Store) Record(text string, number, totalEstimate int) Thought {
	thought := Thought{
		Text:          text,
		Number:        number,
		TotalEstimate: totalEstimate,
		Timestamp:     s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.thoughts = append(s.thoughts, thought)
	if overflow := len(s.thoughts) - s.capacity; overflow > 0 {
		// Shift down in place rather than reslicing from the front,
		// so the backing array does not creep forward and reallocate
		// on every eviction.
		copy(s.thoughts, s.thoughts[overflow:])
		clear(s.thoughts[len(s.thoughts)-overflow:])
		s.thoughts = s.thoughts[:len(s.thoughts)-overflow]
	}
	return thought
}

// Len returns the number of thoughts currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.thoughts)
}

// Capacity returns the maximum number of thoughts the store retains.
func (s *Store) Capacity() int {
	return s.capacity
}

// Recent returns the n most recently recorded thoughts, oldest first.
// Returns every thought when fewer than n are held, and nil when n is
// not positive or the store is empty.
func (s *Store) Recent(n int) []Thought {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || len(s.thoughts) == 0 {
		return nil
	}
	start := max(len(s.thoughts)-n, 0)
	window := make([]Thought, len(s.thoughts)-start)
	copy(window, s.thoughts[start:])
	return window
}

// All returns a copy of every held thought, oldest first.
func (s *Store) All() []Thought {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]Thought, len(s.thoughts))
	copy(all, s.thoughts)
	return all
}
