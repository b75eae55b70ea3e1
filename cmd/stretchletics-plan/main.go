package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/stretchletics/stretchletics/internal/cli"
	"github.com/stretchletics/stretchletics/internal/config"
	"github.com/stretchletics/stretchletics/internal/llm"
	"github.com/stretchletics/stretchletics/internal/logging"
	"github.com/stretchletics/stretchletics/internal/notes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewPlanCommand(func() (cli.Deps, error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return cli.Deps{}, err
		}
		// stdout carries the plan
		logger, err := logging.NewTo(cfg, os.Stderr)
		if err != nil {
			return cli.Deps{}, err
		}
		gen, err := llm.NewDefault(cfg, logger)
		if err != nil {
			return cli.Deps{}, err
		}
		loader := notes.NewLoader(notes.WithMaxBytes(cfg.NotesMaxFetchBytes), notes.WithLogger(logger))
		return cli.Deps{Generator: gen, Notes: loader}, nil
	})
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
