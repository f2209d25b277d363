// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package history holds the bounded, in-memory record of thoughts a
// caller has submitted during one server session.
//
// A [Store] is an append-only FIFO buffer with a fixed capacity. Each
// [Store.Record] call appends one [Thought], stamped with the store's
// clock, and evicts from the front while the buffer is over capacity.
// Eviction is strictly oldest-first; nothing is ever removed by
// relevance or size. Nothing survives a process restart.
//
// The store is safe for concurrent use, although the server that owns
// it handles one request at a time.
package history
