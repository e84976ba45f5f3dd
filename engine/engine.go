package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

type Engine interface {
	// Run plays the game to the end and returns the final score with the collected metrics
	Run() (result game.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
