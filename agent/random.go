package agent

import (
	"fmt"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

type randomAgent struct {
	seed uint64
	rng  *rand.Rand
}

// NewRandomAgent returns a baseline agent that picks uniformly among the
// legal moves. The same seed replays the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Name() string {
	return fmt.Sprintf("random(seed=%d)", a.seed)
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, errors.Wrapf(searcher.ErrNoLegalMove, "%s to move", state.Turn())
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
