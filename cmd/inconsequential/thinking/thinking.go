// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package thinking

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/inconsequential/cmd/inconsequential/cli"
	"github.com/bureau-foundation/inconsequential/lib/recommend"
	"github.com/bureau-foundation/inconsequential/lib/tui"
)

// thinkingParams is one step of the caller's sequential reasoning.
type thinkingParams struct {
	cli.JSONOutput
	Thought           string `json:"thought"             flag:"thought"             desc:"the current thinking step" required:"true"`
	ThoughtNumber     int    `json:"thought_number"      flag:"thought-number"      desc:"position of this thought in the sequence (1-based)" required:"true" minimum:"1" validate:"gt=0"`
	TotalThoughts     int    `json:"total_thoughts"      flag:"total-thoughts"      desc:"current estimate of the total number of thoughts" required:"true" minimum:"1" validate:"gt=0"`
	NextThoughtNeeded bool   `json:"next_thought_needed" flag:"next-thought-needed" desc:"whether another thought step will follow" required:"true"`
}

// Command returns the "thinking" command, which records a thought in
// the engine's history and prints the ranked recommendations for it.
func Command(engine *recommend.Engine) *cli.Command {
	var params thinkingParams

	return &cli.Command{
		Name:    "thinking",
		Summary: "Record a thought and get ranked command recommendations",
		Description: `Record one step of a sequential thinking process and suggest the
slash commands whose keywords best match it.

The thought is tokenized into keywords (lower-cased, stop words and
tokens of two characters or fewer removed) and scored against every
command in the catalog. Commands scoring above the relevance
threshold are returned best first, up to three. The response also
summarizes how many thoughts this session holds and suggests a next
step.

Thoughts are kept in a bounded history for the life of the process;
the oldest are dropped once it is full.`,
		Usage: "inconsequential thinking --thought TEXT --thought-number N --total-thoughts M [--next-thought-needed] [--json]",
		Examples: []cli.Example{
			{
				Description: "Ask which command fits a planning step",
				Command:     `inconsequential thinking --thought "I need to plan the architecture for a new feature" --thought-number 1 --total-thoughts 3 --next-thought-needed`,
			},
			{
				Description: "Same, as JSON",
				Command:     `inconsequential thinking --thought "fix the css layout alignment" --thought-number 2 --total-thoughts 3 --json`,
			},
		},
		Params:      func() any { return &params },
		Output:      func() any { return &recommend.Response{} },
		Annotations: cli.Create(),
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0]).
					WithHint("Pass the thought text with --thought.")
			}

			response := engine.Think(recommend.Input{
				Thought:           params.Thought,
				ThoughtNumber:     params.ThoughtNumber,
				TotalThoughts:     params.TotalThoughts,
				NextThoughtNeeded: params.NextThoughtNeeded,
			})

			if done, err := params.EmitJSON(response); done {
				return err
			}

			renderer := tui.NewRenderer(os.Stdout, tui.DefaultTheme)
			if _, err := fmt.Fprint(os.Stdout, renderer.Response(response)); err != nil {
				return cli.Internal("writing response: %w", err)
			}
			return nil
		},
	}
}
