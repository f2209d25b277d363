// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package thinking

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/inconsequential/cmd/inconsequential/cli"
	"github.com/bureau-foundation/inconsequential/lib/catalog"
	"github.com/bureau-foundation/inconsequential/lib/recommend"
	"github.com/bureau-foundation/inconsequential/lib/tui"
)

type catalogListParams struct {
	cli.JSONOutput
}

// catalogListResult wraps the actions so the tool result is a JSON
// object, as structuredContent requires.
type catalogListResult struct {
	Actions []catalog.Action `json:"actions"`
}

// CatalogCommand returns the "catalog" command group.
func CatalogCommand(engine *recommend.Engine) *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Summary: "Inspect the recommendable commands",
		Subcommands: []*cli.Command{
			catalogListCommand(engine),
			catalogShowCommand(engine),
		},
	}
}

func catalogListCommand(engine *recommend.Engine) *cli.Command {
	var params catalogListParams

	return &cli.Command{
		Name:    "list",
		Summary: "List every command the engine can recommend",
		Description: `List the built-in catalog of slash commands in declaration order,
with each command's description, when to use it, and the keywords
thoughts are matched against. Declaration order breaks ties between
equally relevant commands.`,
		Usage: "inconsequential catalog list [--json]",
		Examples: []cli.Example{
			{
				Description: "Show the catalog",
				Command:     "inconsequential catalog list",
			},
		},
		Params:      func() any { return &params },
		Output:      func() any { return &catalogListResult{} },
		Annotations: cli.ReadOnly(),
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			actions := engine.Catalog().Actions()
			if done, err := params.EmitJSON(catalogListResult{Actions: actions}); done {
				return err
			}

			renderer := tui.NewRenderer(os.Stdout, tui.DefaultTheme)
			if _, err := fmt.Fprint(os.Stdout, renderer.Catalog(actions)); err != nil {
				return cli.Internal("writing catalog: %w", err)
			}
			return nil
		},
	}
}

type catalogShowParams struct {
	cli.JSONOutput
	Name string `json:"name" flag:"name" desc:"slash command to show (e.g., /plan:create)" required:"true"`
}

func catalogShowCommand(engine *recommend.Engine) *cli.Command {
	var params catalogShowParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show one recommendable command",
		Description: `Show a single catalog entry by its exact slash-command name. The
name may be given with --name or as the only positional argument.`,
		Usage: "inconsequential catalog show NAME [--json]",
		Examples: []cli.Example{
			{
				Description: "Show the keywords of the planning command",
				Command:     "inconsequential catalog show /plan:create",
			},
		},
		Params:      func() any { return &params },
		Output:      func() any { return &catalog.Action{} },
		Annotations: cli.ReadOnly(),
		Run: func(args []string) error {
			name := params.Name
			if len(args) > 0 {
				if name != "" || len(args) > 1 {
					return cli.Validation("unexpected argument: %s", args[len(args)-1])
				}
				name = args[0]
			}
			if name == "" {
				return cli.Validation("command name is required").
					WithHint("Run 'inconsequential catalog list' to see every command.")
			}

			action, ok := engine.Catalog().Find(name)
			if !ok {
				return cli.NotFound("unknown command %q", name).
					WithHint("Run 'inconsequential catalog list' to see every command.")
			}
			if done, err := params.EmitJSON(action); done {
				return err
			}

			renderer := tui.NewRenderer(os.Stdout, tui.DefaultTheme)
			if _, err := fmt.Fprint(os.Stdout, renderer.Catalog([]catalog.Action{action})); err != nil {
				return cli.Internal("writing catalog entry: %w", err)
			}
			return nil
		},
	}
}
