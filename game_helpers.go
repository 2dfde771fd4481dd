package main

import (
	"context"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/game"
	"github.com/sheikhrachel/torus-life/utils"
)

// initializeGame sets up the game and its tracer. Trace output without a
// trace file goes to fallback.
func initializeGame(config utils.Config, fallback io.Writer) (*game.Game, io.Closer, error) {
	tracer, closer, err := utils.NewTracer(config, fallback)
	if err != nil {
		return nil, nil, err
	}

	g, err := game.New(config, tracer)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return g, closer, nil
}

// runHeadless prints generations to stdout.
func runHeadless(ctx context.Context, config utils.Config, generations int) error {
	g, closer, err := initializeGame(config, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	return g.RunHeadless(ctx, os.Stdout, generations)
}

// runScreen opens the terminal UI. Tracing needs a trace file here, since
// the screen owns the terminal.
func runScreen(ctx context.Context, config utils.Config) error {
	g, closer, err := initializeGame(config, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runScreen] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runScreen] failed to initialize screen")
	}

	return game.NewController(g, screen).Run(ctx)
}
