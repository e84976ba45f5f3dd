package game

// Size is the number of rows and columns of a Reversi board.
const Size = 8

// Cell is the content of one square of the board.
type Cell uint8

const (
	Empty Cell = iota
	DarkDisc
	LightDisc
)

func (c Cell) String() string {
	switch c {
	case DarkDisc:
		return "Dark"
	case LightDisc:
		return "Light"
	default:
		return "Empty"
	}
}

// Side is one of the two competing disc colours. Dark moves first.
type Side uint8

const (
	Dark Side = iota
	Light
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Dark {
		return Light
	}
	return Dark
}

// Disc returns the cell value occupied by this side's discs.
func (s Side) Disc() Cell {
	if s == Dark {
		return DarkDisc
	}
	return LightDisc
}

func (s Side) String() string {
	if s == Dark {
		return "Dark"
	}
	return "Light"
}

// SideOf reports which side owns the disc in cell c.
func SideOf(c Cell) (Side, bool) {
	switch c {
	case DarkDisc:
		return Dark, true
	case LightDisc:
		return Light, true
	default:
		return Dark, false
	}
}
