// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"log/slog"

	"github.com/bureau-foundation/inconsequential/cmd/inconsequential/cli"
	"github.com/bureau-foundation/inconsequential/lib/recommend"
)

// Command returns the "mcp" command group. root is the full command
// tree, walked for tool discovery when "serve" starts. engine backs
// the resources.
func Command(root *cli.Command, engine *recommend.Engine, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:    "mcp",
		Summary: "Model Context Protocol server for agent tool access",
		Description: `MCP server that exposes the thinking commands as tools over
newline-delimited JSON-RPC 2.0 on stdin/stdout.`,
		Subcommands: []*cli.Command{
			serveCommand(root, engine, logger),
		},
	}
}

func serveCommand(root *cli.Command, engine *recommend.Engine, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Summary: "Start MCP server on stdin/stdout",
		Description: `Start a Model Context Protocol server that reads JSON-RPC 2.0
requests from stdin and writes responses to stdout.

Every command with typed parameters is exposed as a tool named by
its underscore-joined path (e.g., inconsequential_thinking). The
thought history lives for the lifetime of this process and is
shared by every tool call.

Logs go to stderr. This command is intended to be launched as a
subprocess by an MCP-capable client.`,
		Usage: "inconsequential mcp serve",
		Examples: []cli.Example{
			{
				Description: "Start MCP server (typically launched by an agent framework)",
				Command:     "inconsequential mcp serve",
			},
		},
		Run: func(args []string) error {
			server := NewServer(root,
				WithLogger(logger),
				WithSessionInfo(sessionInfo(engine)...),
				WithResources(
					NewCatalogResource(engine),
					NewHistoryResource(engine),
				),
			)
			return server.Serve()
		},
	}
}

// sessionInfo describes the engine a session serves: catalog size and
// names, history capacity, and ranking tunables.
func sessionInfo(engine *recommend.Engine) []any {
	options := engine.Options()
	return []any{
		"catalog_size", engine.Catalog().Len(),
		"commands", engine.Catalog().Names(),
		"history_capacity", engine.HistoryCapacity(),
		"relevance_threshold", options.Threshold,
		"top_k", options.TopK,
	}
}
