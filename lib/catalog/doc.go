// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog holds the fixed list of slash commands the
// recommendation engine can suggest.
//
// A [Catalog] is immutable once built: [New] validates and copies its
// input, and every accessor returns copies. Declaration order is
// significant; the engine scores actions in this order and keeps it
// for tie-breaking.
//
// The built-in catalog ([Default]) is compiled into the binary from
// commands.jsonc, a JSON file extended with comments and trailing
// commas. There is no runtime API for adding or editing actions.
package catalog
