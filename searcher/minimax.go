package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Result is the move chosen by a search and its score from the mover's point of view.
type Result struct {
	Move   game.Move
	Score  int
	Metric metrics.SearchMetric
}

// Minimax searches the game tree to a fixed depth with negamax. It never
// touches the state passed to Search; every line is explored on board copies.
type Minimax struct {
	depth     int
	evaluate  game.Evaluate
	alphaBeta bool
	metrics   metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		m.depth = depth
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithAlphaBeta toggles alpha-beta pruning. Pruning changes only the number
// of visited nodes, never the chosen move or its score.
func WithAlphaBeta(enabled bool) Option {
	return func(m *Minimax) {
		m.alphaBeta = enabled
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) (*Minimax, error) {
	m := &Minimax{ // Default values
		depth:     DefaultDepth,
		evaluate:  game.EvaluateDiscs,
		alphaBeta: true,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.depth < 1 {
		return nil, errors.Wrapf(ErrInvalidDepth, "got %d", m.depth)
	}
	return m, nil
}

func (m *Minimax) Depth() int {
	return m.depth
}

// Search returns the best move for the side to move. Moves are tried in
// row-major order and only a strictly better score replaces the current
// choice, so the first of several equally good moves wins.
func (m *Minimax) Search(state *game.GameState) (Result, error) {
	if state.IsGameOver() || state.MustPass() {
		return Result{}, errors.Wrapf(ErrNoLegalMove, "%s to move", state.Turn())
	}
	board := state.Board()
	side := state.Turn()

	m.metrics.Start(m.depth, m.alphaBeta)
	m.metrics.AddNode()

	best := Result{Score: -infinity}
	alpha := -infinity
	for _, move := range state.LegalMoves() {
		child := board
		mustApply(&child, move)
		score := -m.negamax(&child, side.Opponent(), m.depth-1, -infinity, -alpha)
		if score > best.Score {
			best.Move, best.Score = move, score
		}
		if m.alphaBeta && score > alpha {
			alpha = score
		}
	}
	best.Metric = m.metrics.Complete()

	log.Debug().Msgf("%s searched to depth %d: %s scores %d (%d nodes)",
		side, m.depth, best.Move.Position, best.Score, best.Metric.Nodes)
	return best, nil
}

// negamax scores board for side, who is to move, looking depth plies ahead.
func (m *Minimax) negamax(board *game.Board, side game.Side, depth, alpha, beta int) int {
	m.metrics.AddNode()

	if depth == 0 {
		m.metrics.AddLeaf()
		if game.IsTerminal(board) {
			return terminalScore(board, side)
		}
		return m.evaluate(board, side)
	}

	moves := game.LegalMoves(board, side)
	if len(moves) == 0 {
		if !game.HasAnyLegalMove(board, side.Opponent()) {
			m.metrics.AddLeaf()
			return terminalScore(board, side)
		}
		// A pass hands the turn over without using up a ply.
		return -m.negamax(board, side.Opponent(), depth, -beta, -alpha)
	}

	best := -infinity
	for _, move := range moves {
		child := *board
		mustApply(&child, move)
		score := -m.negamax(&child, side.Opponent(), depth-1, -beta, -alpha)
		if score > best {
			best = score
		}
		if !m.alphaBeta {
			continue
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}

// terminalScore values a finished game for side.
func terminalScore(board *game.Board, side game.Side) int {
	diff := game.EvaluateDiscs(board, side)
	switch {
	case diff > 0:
		return WinScore + diff
	case diff < 0:
		return -WinScore + diff
	default:
		return 0
	}
}

func mustApply(board *game.Board, move game.Move) {
	if _, err := game.ApplyMove(board, move); err != nil {
		// Moves come from LegalMoves on the same board.
		panic(err)
	}
}
