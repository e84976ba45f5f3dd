package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"reversi/engine"
	"reversi/game"
	"reversi/utils"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	colorReset  = "\x1b[0m"
	colorDark   = "\x1b[1;31m"
	colorLight  = "\x1b[1;37m"
	colorHint   = "\x1b[2m"
)

// Options control how a Renderer draws the board.
type Options struct {
	ClearScreen bool   // clear the terminal before each board
	Title       string // printed above the board when set
	ShowMoves   bool   // mark the legal moves of the side to move with '*'
	Color       bool   // colour discs with ANSI escapes
}

type Renderer struct {
	out     io.Writer
	options Options
}

func NewRenderer(out io.Writer, options Options) *Renderer {
	return &Renderer{out: out, options: options}
}

// NewTerminalRenderer writes to f through an ANSI-aware writer. Colour and
// screen clearing are dropped when f is not a terminal.
func NewTerminalRenderer(f *os.File, options Options) *Renderer {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		options.Color = false
		options.ClearScreen = false
	}
	return NewRenderer(colorable.NewColorable(f), options)
}

// Render draws the board of state followed by the disc count and whose turn it is.
func (r *Renderer) Render(state *game.GameState) {
	var sb strings.Builder
	if r.options.ClearScreen {
		sb.WriteString(clearScreen)
	}
	if r.options.Title != "" {
		sb.WriteString(r.options.Title)
		sb.WriteByte('\n')
	}

	board := state.Board()
	var hints []game.Position
	if r.options.ShowMoves {
		for _, move := range state.LegalMoves() {
			hints = append(hints, move.Position)
		}
	}

	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < game.Size; row++ {
		fmt.Fprintf(&sb, "%d", row+1)
		for col := 0; col < game.Size; col++ {
			cell, _ := board.Get(row, col)
			sb.WriteByte(' ')
			sb.WriteString(r.square(cell, utils.Contains(hints, game.Position{Row: row, Col: col})))
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "Dark (X) %d - Light (O) %d\n", board.Count(game.Dark), board.Count(game.Light))
	if result, err := state.Result(); err == nil {
		fmt.Fprintf(&sb, "Game over: %s\n", result)
	} else {
		fmt.Fprintf(&sb, "%s to move\n", state.Turn())
	}
	fmt.Fprint(r.out, sb.String())
}

func (r *Renderer) square(cell game.Cell, hint bool) string {
	var s, color string
	switch {
	case cell == game.DarkDisc:
		s, color = "X", colorDark
	case cell == game.LightDisc:
		s, color = "O", colorLight
	case hint:
		s, color = "*", colorHint
	default:
		return "."
	}
	if !r.options.Color {
		return s
	}
	return color + s + colorReset
}

// Observe follows a game played by an engine; pass it to engine.WithObserver.
func (r *Renderer) Observe(event engine.Event) {
	switch event.Kind {
	case engine.TurnStarted:
		r.Render(event.State)
	case engine.MovePlayed:
		fmt.Fprintf(r.out, "%s plays %s, flipping %d\n", event.Side, event.Move.Position, len(event.Flipped))
	case engine.TurnPassed:
		fmt.Fprintf(r.out, "%s has no legal move and passes\n", event.Side)
	case engine.GameOver:
		r.Render(event.State)
	}
}
