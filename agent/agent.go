package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

type Agent interface {
	// Name identifies the agent in logs and prompts
	Name() string
	// FindMove returns a legal move for the side to move and performance metrics (if collected) from the search
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error)
}
