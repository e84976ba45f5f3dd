package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"reversi/utils"

	"github.com/pkg/errors"
)

var (
	ErrQuit        = errors.New("player quit")
	ErrInputClosed = errors.New("input closed before a move was entered")
)

type humanAgent struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

// NewHumanAgent returns an agent that prompts on out and reads moves from in,
// one per line. A move is either a square such as "d3" or the 0-based index
// of an entry in the printed list of legal moves. Invalid input is reported
// and the prompt repeated; "q" or "quit" gives up the game. Two humans at one
// terminal share the same scanner.
func NewHumanAgent(name string, in *bufio.Scanner, out io.Writer) Agent {
	return &humanAgent{name: name, in: in, out: out}
}

func (a *humanAgent) Name() string {
	return a.name
}

func (a *humanAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, errors.Wrapf(searcher.ErrNoLegalMove, "%s to move", state.Turn())
	}
	positions := make([]game.Position, len(moves))
	for i, move := range moves {
		positions[i] = move.Position
	}

	for {
		a.prompt(state.Turn(), positions)
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.Move{}, metrics.SearchMetric{}, errors.Wrap(err, "failed to read move")
			}
			return game.Move{}, metrics.SearchMetric{}, ErrInputClosed
		}

		move, err := parseChoice(a.in.Text(), moves, positions)
		if errors.Is(err, ErrQuit) {
			return game.Move{}, metrics.SearchMetric{}, err
		}
		if err != nil {
			fmt.Fprintf(a.out, "Invalid move: %v\n", err)
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}

func (a *humanAgent) prompt(side game.Side, positions []game.Position) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s) to move. Legal moves:", a.name, side)
	for i, p := range positions {
		fmt.Fprintf(&sb, " %d) %s", i, p)
	}
	sb.WriteString("\n> ")
	fmt.Fprint(a.out, sb.String())
}

// parseChoice resolves one line of input against the legal moves.
func parseChoice(line string, moves []game.Move, positions []game.Position) (game.Move, error) {
	line = strings.ToLower(strings.TrimSpace(line))
	switch line {
	case "":
		return game.Move{}, errors.New("empty input")
	case "q", "quit":
		return game.Move{}, ErrQuit
	}

	if n, err := strconv.Atoi(line); err == nil {
		if n < 0 || n >= len(moves) {
			return game.Move{}, errors.Errorf("choose a number from 0 to %d", len(moves)-1)
		}
		return moves[n], nil
	}

	p, err := game.ParsePosition(line)
	if err != nil {
		return game.Move{}, err
	}
	i := utils.FindIndex(positions, p)
	if i < 0 {
		return game.Move{}, errors.Wrapf(game.ErrIllegalMove, "%s", p)
	}
	return moves[i], nil
}
