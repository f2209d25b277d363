// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

// ToolAnnotations describes behavioral properties of a command when it
// is exposed as an MCP tool. The server translates them into the
// protocol's hint fields so agents can tell which tools are safe to
// call freely.
//
// All fields are pointers. A nil field means "unspecified" and the
// client applies its own defaults.
type ToolAnnotations struct {
	// ReadOnly is true when the command only reads state.
	ReadOnly *bool

	// Destructive is true when the command may irreversibly remove
	// data.
	Destructive *bool

	// Idempotent is true when repeated identical calls produce the
	// same result.
	Idempotent *bool

	// OpenWorld is true when the command reaches beyond this process.
	// Every command here is closed-world.
	OpenWorld *bool
}

// ReadOnly returns annotations for commands that query state without
// modifying it: catalog list, history.
func ReadOnly() *ToolAnnotations {
	return &ToolAnnotations{
		ReadOnly:    boolPtr(true),
		Destructive: boolPtr(false),
		Idempotent:  boolPtr(true),
		OpenWorld:   boolPtr(false),
	}
}

// Create returns annotations for commands whose side effects
// accumulate on repeated calls. Each thinking call appends to the
// history, so it is not idempotent.
func Create() *ToolAnnotations {
	return &ToolAnnotations{
		ReadOnly:    boolPtr(false),
		Destructive: boolPtr(false),
		Idempotent:  boolPtr(false),
		OpenWorld:   boolPtr(false),
	}
}

func boolPtr(value bool) *bool {
	return &value
}
