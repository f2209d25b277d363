// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete inconsequential command tree.
// The MCP server walks this same tree for tool discovery, so a command
// added here is reachable from both the terminal and MCP clients.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/inconsequential/cmd/inconsequential/cli"
	mcpcmd "github.com/bureau-foundation/inconsequential/cmd/inconsequential/mcp"
	"github.com/bureau-foundation/inconsequential/cmd/inconsequential/thinking"
	"github.com/bureau-foundation/inconsequential/lib/recommend"
	"github.com/bureau-foundation/inconsequential/lib/version"
)

// Root builds the command tree around engine. The MCP command is
// appended after the tree exists because it needs the root pointer.
func Root(engine *recommend.Engine, logger *slog.Logger) *cli.Command {
	root := &cli.Command{
		Name: "inconsequential",
		Description: `inconsequential: sequential thinking with command recommendations.

Each thought is matched against a fixed catalog of slash commands by
keyword overlap, and the best matches are suggested as next steps.
Run as an MCP server for agents, or call the commands directly.`,
		Subcommands: []*cli.Command{
			thinking.Command(engine),
			thinking.CatalogCommand(engine),
			thinking.HistoryCommand(engine),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Get recommendations for one thought",
				Command:     `inconsequential thinking --thought "plan the new feature" --thought-number 1 --total-thoughts 2`,
			},
			{
				Description: "List the recommendable commands",
				Command:     "inconsequential catalog list",
			},
			{
				Description: "Serve the tools to an MCP client over stdio",
				Command:     "inconsequential mcp serve",
			},
		},
	}

	root.Subcommands = append(root.Subcommands, mcpcmd.Command(root, engine, logger))
	return root
}

type versionParams struct {
	cli.JSONOutput
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Description: `Print the version, commit, build time, Go toolchain and platform
of this binary.`,
		Usage:       "inconsequential version [--json]",
		Params:      func() any { return &params },
		Output:      func() any { return &version.Build{} },
		Annotations: cli.ReadOnly(),
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if done, err := params.EmitJSON(version.Current()); done {
				return err
			}
			fmt.Printf("inconsequential %s\n", version.Full())
			return nil
		},
	}
}
