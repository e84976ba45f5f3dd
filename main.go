package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"reversi/agent"
	"reversi/config"
	"reversi/display"
	"reversi/engine"
	"reversi/game"
	"reversi/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	exitOK      = 0
	exitAborted = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: errOut})

	cfg, err := config.Load(args, out)
	if err != nil {
		fmt.Fprintf(errOut, "reversi: %v\n", err)
		return exitUsage
	}
	if cfg.Help {
		return exitOK
	}
	zerolog.SetGlobalLevel(cfg.Level())

	dark, light, err := players(cfg, in, out)
	if err != nil {
		fmt.Fprintf(errOut, "reversi: %v\n", err)
		return exitUsage
	}

	renderer := newRenderer(out)
	result, _, _, err := engine.LocalEngine(dark, light, engine.WithObserver(renderer.Observe)).Run()
	switch {
	case errors.Is(err, agent.ErrQuit):
		fmt.Fprintln(out, "Game abandoned.")
		return exitOK
	case err != nil:
		log.Error().Err(err).Msg("game aborted")
		return exitAborted
	}

	if winner, ok := result.Winner(); ok {
		fmt.Fprintf(out, "%s wins %d to %d.\n", winner, max(result.Dark, result.Light), min(result.Dark, result.Light))
	} else {
		fmt.Fprintf(out, "Draw at %d all.\n", result.Dark)
	}
	return exitOK
}

// players returns the Dark and Light agents. The human always plays Dark.
func players(cfg config.Config, in io.Reader, out io.Writer) (agent.Agent, agent.Agent, error) {
	scanner := bufio.NewScanner(in)
	if cfg.Mode == config.HumanVsHuman {
		return agent.NewHumanAgent("Player 1", scanner, out), agent.NewHumanAgent("Player 2", scanner, out), nil
	}

	evaluate, err := game.EvaluatorByName(cfg.Eval)
	if err != nil {
		return nil, nil, err
	}
	minimax, err := searcher.NewMinimax(
		searcher.WithDepth(cfg.Depth),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithAlphaBeta(cfg.AlphaBeta),
	)
	if err != nil {
		return nil, nil, err
	}
	return agent.NewHumanAgent("You", scanner, out), agent.NewMinimaxAgent(minimax), nil
}

func newRenderer(out io.Writer) *display.Renderer {
	options := display.Options{Title: "Reversi", ShowMoves: true, Color: true}
	if f, ok := out.(*os.File); ok {
		return display.NewTerminalRenderer(f, options)
	}
	options.Color = false
	return display.NewRenderer(out, options)
}
