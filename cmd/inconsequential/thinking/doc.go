// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package thinking implements the engine-facing CLI commands:
// "thinking" submits one thought and prints ranked command
// recommendations, "catalog list" shows the recommendable commands,
// and "history" shows the session's recent thoughts.
//
// Every command declares typed parameters, so the MCP server exposes
// each as a tool (inconsequential_thinking,
// inconsequential_catalog_list, inconsequential_history). Terminal
// output is rendered with lib/tui; --json and MCP calls get the same
// data as JSON.
package thinking
