// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package relevance scores how well a thought's keyword tokens overlap
// an action's keyword set. The score is a pure function of two string
// slices so it can be exercised without a catalog or an engine.
package relevance
