package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Board is a fixed 8x8 grid stored row-major. It is a value type: assigning
// or passing a Board by value copies all 64 cells.
type Board struct {
	cells [Size * Size]Cell
}

// NewBoard returns the standard starting position: Light on d4 and e5,
// Dark on e4 and d5.
func NewBoard() Board {
	b := EmptyBoard()
	b.cells[index(3, 3)] = LightDisc
	b.cells[index(4, 4)] = LightDisc
	b.cells[index(3, 4)] = DarkDisc
	b.cells[index(4, 3)] = DarkDisc
	return b
}

// EmptyBoard returns a board without any discs.
func EmptyBoard() Board {
	return Board{}
}

// InBounds reports whether (row, col) addresses a square of the board.
func InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < Size && col < Size
}

func index(row, col int) int {
	return row*Size + col
}

func (b *Board) Get(row, col int) (Cell, error) {
	if !InBounds(row, col) {
		return Empty, errors.Wrapf(ErrOutOfRange, "get (%d,%d)", row, col)
	}
	return b.cells[index(row, col)], nil
}

// Set overwrites the cell at (row, col) unconditionally.
func (b *Board) Set(row, col int, cell Cell) error {
	if !InBounds(row, col) {
		return errors.Wrapf(ErrOutOfRange, "set (%d,%d)", row, col)
	}
	b.cells[index(row, col)] = cell
	return nil
}

func (b *Board) at(row, col int) Cell {
	return b.cells[index(row, col)]
}

// Count returns the number of discs owned by side.
func (b *Board) Count(side Side) int {
	return b.CountCells(side.Disc())
}

// CountCells returns the number of squares holding exactly cell.
func (b *Board) CountCells(cell Cell) int {
	count := 0
	for _, c := range b.cells {
		if c == cell {
			count++
		}
	}
	return count
}

// Full reports whether no empty square remains.
func (b *Board) Full() bool {
	return b.CountCells(Empty) == 0
}

func (b Board) Clone() Board {
	return b
}

func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells
}

// String renders the board as eight lines of '.', 'X' (Dark) and 'O' (Light).
// ParseBoard accepts the same format.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sb.WriteByte(cellRune(b.at(row, col)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellRune(c Cell) byte {
	switch c {
	case DarkDisc:
		return 'X'
	case LightDisc:
		return 'O'
	default:
		return '.'
	}
}

// ParseBoard builds a board from eight rows of eight characters. Whitespace
// inside a row and blank lines are ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	row := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line == "" {
			continue
		}
		if row >= Size {
			return Board{}, errors.Wrapf(ErrInvalidBoard, "more than %d rows", Size)
		}
		if len(line) != Size {
			return Board{}, errors.Wrapf(ErrInvalidBoard, "row %d has %d squares", row, len(line))
		}
		for col := 0; col < Size; col++ {
			switch line[col] {
			case '.', '-':
				b.cells[index(row, col)] = Empty
			case 'X', 'x', 'B', 'b':
				b.cells[index(row, col)] = DarkDisc
			case 'O', 'o', 'W', 'w':
				b.cells[index(row, col)] = LightDisc
			default:
				return Board{}, errors.Wrapf(ErrInvalidBoard, "unexpected %q at row %d col %d", line[col], row, col)
			}
		}
		row++
	}
	if row != Size {
		return Board{}, errors.Wrapf(ErrInvalidBoard, "got %d rows, want %d", row, Size)
	}
	return b, nil
}
