// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui renders recommendation output for human terminals.
//
// The CLI commands print a [recommend.Response], the catalog, and the
// thought history through a [Renderer], which wraps a lipgloss
// renderer bound to the output stream. Color is decided once when the
// Renderer is built: 256-color when the stream is a terminal, plain
// ASCII otherwise, so piped output never carries escape sequences.
// JSON output bypasses this package entirely.
package tui
