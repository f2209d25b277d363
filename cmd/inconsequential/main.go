// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/inconsequential/cmd/inconsequential/cli"
	"github.com/bureau-foundation/inconsequential/cmd/inconsequential/commands"
	"github.com/bureau-foundation/inconsequential/lib/catalog"
	"github.com/bureau-foundation/inconsequential/lib/clock"
	"github.com/bureau-foundation/inconsequential/lib/config"
	"github.com/bureau-foundation/inconsequential/lib/history"
	"github.com/bureau-foundation/inconsequential/lib/recommend"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return rootCommand(cfg).Execute(args)
}

// rootCommand wires the engine described by cfg into the command tree.
func rootCommand(cfg *config.Config) *cli.Command {
	// Validate has already rejected unknown levels.
	level, _ := cfg.Logging.SlogLevel()
	logger := cli.NewCommandLogger(level, cfg.Logging.Format)

	store := history.New(cfg.Engine.HistoryCapacity, clock.Real())
	engine := recommend.New(catalog.Default(), store, recommend.Options{
		Threshold:        cfg.Engine.RelevanceThreshold,
		TopK:             cfg.Engine.TopK,
		ContextThreshold: cfg.Engine.ContextThreshold,
		SummaryWindow:    cfg.Engine.SummaryWindow,
	}, logger)

	return commands.Root(engine, logger)
}
