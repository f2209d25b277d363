// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mcp implements a Model Context Protocol server that exposes
// the inconsequential CLI commands as MCP tools over newline-delimited
// JSON-RPC 2.0 on stdin/stdout.
//
// The server discovers tools by walking the CLI command tree and
// collecting commands that have both a [cli.Command.Params] and a
// [cli.Command.Run] function. Each becomes a tool whose inputSchema is
// generated from the parameter struct's tags via [cli.ParamsSchema].
// Commands that declare [cli.Command.Output] also get an outputSchema,
// and their results carry structuredContent next to the text block.
//
// Tool names are underscore-joined command paths: "inconsequential
// thinking" is published as "inconsequential_thinking".
//
// Read-only views of engine state are also published as resources
// (thinking://catalog, thinking://history) through [ResourceProvider]
// implementations registered with [WithResources].
//
// This package implements MCP protocol version 2025-11-25.
package mcp
