package agent

import (
	"fmt"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns a bot that plays the move chosen by minimax.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) Name() string {
	return fmt.Sprintf("minimax(depth=%d)", a.minimax.Depth())
}

func (a minimaxAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	result, err := a.minimax.Search(state)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	return result.Move, result.Metric, nil
}
