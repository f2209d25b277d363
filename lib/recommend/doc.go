// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package recommend ranks catalog actions against a caller's thought
// and narrates where the caller is in their sequence of thoughts.
//
// An [Engine] owns a [history.Store] and reads a [catalog.Catalog].
// [Engine.Think] is the full invocation: record the thought, extract
// its keywords, score every action, keep those above the threshold,
// sort by confidence (stable, so ties keep catalog order), truncate to
// the top K, and attach a context summary plus next-step hints.
// [Engine.Recommend] runs the same ranking without recording, which
// is what the CLI preview path uses.
//
// Nothing in this package fails: an empty thought, zero matches, and
// an empty history all have defined outputs.
package recommend
