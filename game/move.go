package game

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Position addresses a square by 0-indexed row and column.
type Position struct {
	Row int
	Col int
}

// String returns the square in column-letter/row-number notation, e.g. (2,3) is "d3".
func (p Position) String() string {
	if !InBounds(p.Row, p.Col) {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

// ParsePosition parses notation such as "d3" or "D3".
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Position{}, errors.Wrapf(ErrInvalidNotation, "%q: want a column letter and a row digit", s)
	}
	col := int(s[0]) - 'a'
	row := int(s[1]) - '1'
	if !InBounds(row, col) {
		return Position{}, errors.Wrapf(ErrInvalidNotation, "%q is not on the board", s)
	}
	return Position{Row: row, Col: col}, nil
}

// Move is a placement by Side at Position.
type Move struct {
	Position
	Side Side
}

func NewMove(row, col int, side Side) Move {
	return Move{Position: Position{Row: row, Col: col}, Side: side}
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s", m.Side, m.Position)
}

// Ply records one half-move of a game: either a placement or a forced pass.
type Ply struct {
	Side    Side
	Move    Move
	Pass    bool
	Flipped []Position
}
