// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Inconsequential suggests slash commands for the steps of a
// sequential thinking process. It runs as an MCP server on stdio
// ("mcp serve") or as a one-shot CLI ("thinking", "catalog list",
// "history", "version").
//
// Configuration is read from the YAML file named by
// INCONSEQUENTIAL_CONFIG; built-in defaults apply when it is unset.
package main
