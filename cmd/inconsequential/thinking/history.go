// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package thinking

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/inconsequential/cmd/inconsequential/cli"
	"github.com/bureau-foundation/inconsequential/lib/history"
	"github.com/bureau-foundation/inconsequential/lib/recommend"
	"github.com/bureau-foundation/inconsequential/lib/tui"
)

type historyParams struct {
	cli.JSONOutput
	Limit int  `json:"limit" flag:"limit,n" desc:"number of recent thoughts to show (0 selects the summary window)" validate:"gte=0"`
	All   bool `json:"all" flag:"all" desc:"show every retained thought"`
}

type historyResult struct {
	// Thoughts are the most recent thoughts, oldest first.
	Thoughts []history.Thought `json:"thoughts"`

	// Recorded is the number of thoughts currently held, which may
	// exceed len(Thoughts).
	Recorded int `json:"recorded"`
}

// HistoryCommand returns the "history" command.
func HistoryCommand(engine *recommend.Engine) *cli.Command {
	var params historyParams

	return &cli.Command{
		Name:    "history",
		Summary: "Show the most recent thoughts of this session",
		Description: `Show the most recent thoughts recorded by the thinking command,
oldest first. Without --limit, the configured summary window (5 by
default) is shown; --all shows every retained thought.

History lives only as long as the process. Under "mcp serve" it
spans the whole client session; a one-shot CLI invocation starts
empty.`,
		Usage: "inconsequential history [--limit N | --all] [--json]",
		Examples: []cli.Example{
			{
				Description: "Show the last ten thoughts",
				Command:     "inconsequential history --limit 10",
			},
		},
		Params:      func() any { return &params },
		Output:      func() any { return &historyResult{} },
		Annotations: cli.ReadOnly(),
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			if params.All && params.Limit > 0 {
				return cli.Validation("--all and --limit are mutually exclusive")
			}

			var thoughts []history.Thought
			if params.All {
				thoughts = engine.AllThoughts()
			} else if params.Limit > 0 {
				thoughts = engine.RecentN(params.Limit)
			} else {
				thoughts = engine.Recent()
			}
			if thoughts == nil {
				thoughts = []history.Thought{}
			}

			result := historyResult{Thoughts: thoughts, Recorded: engine.HistoryLen()}
			if done, err := params.EmitJSON(result); done {
				return err
			}

			renderer := tui.NewRenderer(os.Stdout, tui.DefaultTheme)
			if _, err := fmt.Fprint(os.Stdout, renderer.History(thoughts)); err != nil {
				return cli.Internal("writing history: %w", err)
			}
			return nil
		},
	}
}
