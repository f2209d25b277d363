// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies tool errors so that MCP clients can decide
// whether to fix their input, retry, or report, without parsing the
// message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// a missing thought, a non-positive thought number, an unknown
	// flag. The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist,
	// such as an unknown resource URI.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal indicates an unexpected error: a bug or an I/O
	// failure writing output. The caller should report it rather than
	// retry.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by CLI commands. The MCP
// server reads Category to publish structured error metadata next to
// the human-readable text.
//
// Use the category constructors ([Validation], [NotFound],
// [Internal]) rather than building ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is an optional remediation appended to the message after a
	// blank line.
	Hint string
}

// Error returns the underlying message, followed by the hint when one
// is set. The category is not included: it travels separately in the
// MCP errorInfo field.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error so errors.Is and errors.As can
// walk through the wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the remediation hint and returns the receiver for
// chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Retryable reports whether repeating the same call could succeed.
// None of this tool's failure categories are transient.
func (e *ToolError) Retryable() bool {
	return false
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
