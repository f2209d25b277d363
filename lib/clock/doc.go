// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// Components that stamp records with the current time accept a Clock
// instead of calling time.Now directly. Production code passes
// Real(); tests pass Fake(), whose time only moves when the test says
// so:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	store := history.New(50, c)
//	store.Record("first", 1, 3)
//	c.Advance(time.Second)
//	store.Record("second", 2, 3)
//
// A FakeClock with a non-zero step advances itself on every Now call,
// which gives each record a distinct, predictable timestamp without
// interleaving Advance calls.
package clock
