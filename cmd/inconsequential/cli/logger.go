// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Log output formats accepted by [NewCommandLogger].
const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// NewCommandLogger creates a structured logger writing to stderr. With
// format "auto" (or empty), a terminal stderr gets slog.TextHandler
// for humans and anything else (pipes, MCP clients, CI) gets
// slog.JSONHandler. "text" and "json" force the handler.
//
// Logs never go to stdout: in MCP mode stdout carries the protocol.
func NewCommandLogger(level slog.Level, format string) *slog.Logger {
	if format == "" || format == LogFormatAuto {
		format = LogFormatJSON
		if term.IsTerminal(int(os.Stderr.Fd())) {
			format = LogFormatText
		}
	}
	return newLogger(os.Stderr, level, format)
}

func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == LogFormatText {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}
