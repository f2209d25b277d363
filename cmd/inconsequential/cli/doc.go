// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the
// inconsequential binary.
//
// The central type is [Command], a named node in a command tree with
// optional [Command.Subcommands], a typed parameter struct
// ([Command.Params]) and a Run function. [Command.Execute] handles
// flag parsing, subcommand routing, parameter validation, and help
// output.
//
// Parameter structs drive three things from one set of struct tags:
//
//   - flag/desc/default tags bind pflag flags ([BindFlags]).
//   - json/desc/default/required tags produce the JSON Schema the MCP
//     server publishes as a tool's inputSchema ([ParamsSchema]).
//   - validate tags are checked by go-playground/validator before Run
//     executes, for both command-line and MCP invocations
//     ([ValidateParams]).
//
// Unknown subcommands and flags get a "did you mean" suggestion based
// on Levenshtein distance (suggest.go).
//
// Errors returned to callers are categorized with [ToolError] so the
// MCP server can attach machine-readable recovery hints.
package cli
