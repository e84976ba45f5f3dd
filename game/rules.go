package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// directions lists the eight scan directions N, NE, E, SE, S, SW, W, NW as
// (row, col) deltas.
var directions = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// captureLength returns how many opponent discs side would capture in one
// direction by placing at (row, col), or 0 if that direction has no capture line.
func captureLength(b *Board, side Side, row, col, dr, dc int) int {
	own, opp := side.Disc(), side.Opponent().Disc()
	r, c := row+dr, col+dc
	n := 0
	for InBounds(r, c) && b.at(r, c) == opp {
		r += dr
		c += dc
		n++
	}
	if n == 0 || !InBounds(r, c) || b.at(r, c) != own {
		return 0
	}
	return n
}

// IsLegal reports whether side may place a disc at (row, col).
func IsLegal(b *Board, side Side, row, col int) bool {
	if !InBounds(row, col) || b.at(row, col) != Empty {
		return false
	}
	for _, d := range directions {
		if captureLength(b, side, row, col, d[0], d[1]) > 0 {
			return true
		}
	}
	return false
}

// Flips returns the discs a placement by side at (row, col) would turn over,
// direction by direction. It returns nil for an illegal placement.
func Flips(b *Board, side Side, row, col int) []Position {
	if !InBounds(row, col) || b.at(row, col) != Empty {
		return nil
	}
	var flips []Position
	for _, d := range directions {
		n := captureLength(b, side, row, col, d[0], d[1])
		for i := 1; i <= n; i++ {
			flips = append(flips, Position{Row: row + i*d[0], Col: col + i*d[1]})
		}
	}
	return flips
}

// LegalMoves returns every legal placement for side in row-major order.
func LegalMoves(b *Board, side Side) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if IsLegal(b, side, row, col) {
				moves = append(moves, NewMove(row, col, side))
			}
		}
	}
	return moves
}

func HasAnyLegalMove(b *Board, side Side) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if IsLegal(b, side, row, col) {
				return true
			}
		}
	}
	return false
}

// ApplyMove places move.Side's disc and flips every capture line in place.
// The board is left untouched when the move is rejected.
func ApplyMove(b *Board, move Move) ([]Position, error) {
	if !InBounds(move.Row, move.Col) {
		return nil, errors.Wrapf(ErrOutOfRange, "move %s", move)
	}
	if b.at(move.Row, move.Col) != Empty {
		return nil, errors.Wrapf(ErrIllegalMove, "%s: square is occupied", move)
	}
	flips := Flips(b, move.Side, move.Row, move.Col)
	if len(flips) == 0 {
		return nil, errors.Wrapf(ErrIllegalMove, "%s: captures no discs", move)
	}
	disc := move.Side.Disc()
	b.cells[index(move.Row, move.Col)] = disc
	for _, p := range flips {
		b.cells[index(p.Row, p.Col)] = disc
	}
	return flips, nil
}

// IsTerminal reports whether neither side has a legal move. A full board is
// always terminal.
func IsTerminal(b *Board) bool {
	if b.Full() {
		return true
	}
	return !HasAnyLegalMove(b, Dark) && !HasAnyLegalMove(b, Light)
}

// Score is the disc differential Light minus Dark.
func Score(b *Board) int {
	return b.Count(Light) - b.Count(Dark)
}

// Outcome is the verdict of a finished game.
type Outcome int

const (
	Draw Outcome = iota
	DarkWins
	LightWins
)

func (o Outcome) String() string {
	switch o {
	case DarkWins:
		return "Dark wins"
	case LightWins:
		return "Light wins"
	default:
		return "Draw"
	}
}

// Result summarises a position as a finished game.
type Result struct {
	Outcome Outcome
	Dark    int
	Light   int
}

// ResultOf counts the discs on b and names the side with strictly more.
func ResultOf(b *Board) Result {
	r := Result{Dark: b.Count(Dark), Light: b.Count(Light)}
	switch {
	case r.Dark > r.Light:
		r.Outcome = DarkWins
	case r.Light > r.Dark:
		r.Outcome = LightWins
	default:
		r.Outcome = Draw
	}
	return r
}

// Winner returns the winning side, or false for a draw.
func (r Result) Winner() (Side, bool) {
	switch r.Outcome {
	case DarkWins:
		return Dark, true
	case LightWins:
		return Light, true
	default:
		return Dark, false
	}
}

// Score is the final disc differential Light minus Dark.
func (r Result) Score() int {
	return r.Light - r.Dark
}

func (r Result) String() string {
	return fmt.Sprintf("%s (Dark %d, Light %d)", r.Outcome, r.Dark, r.Light)
}
