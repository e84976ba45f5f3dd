package searcher

import (
	"reversi/meta"

	"github.com/pkg/errors"
)

const DefaultDepth = meta.DEFAULT_DEPTH

// WinScore is added to the disc differential of a finished game so that any
// decided outcome outranks every heuristic score.
const WinScore = 10000

const infinity = 1 << 30

var (
	ErrInvalidDepth = errors.New("search depth must be at least 1")
	ErrNoLegalMove  = errors.New("no legal move for the side to move")
)
