package game

import (
	"sort"

	"github.com/pkg/errors"
)

// Evaluate scores a position from side's point of view; larger is better for side.
type Evaluate func(b *Board, side Side) int

// EvaluateDiscs is the disc differential: side's discs minus the opponent's.
func EvaluateDiscs(b *Board, side Side) int {
	return b.Count(side) - b.Count(side.Opponent())
}

// squareWeights favours corners and edges and penalises the squares that
// give a corner away.
var squareWeights = [Size][Size]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// EvaluatePositional sums the square weights of side's discs minus those of the opponent.
func EvaluatePositional(b *Board, side Side) int {
	own, opp := side.Disc(), side.Opponent().Disc()
	score := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b.at(row, col) {
			case own:
				score += squareWeights[row][col]
			case opp:
				score -= squareWeights[row][col]
			}
		}
	}
	return score
}

var evaluators = map[string]Evaluate{
	"discs":      EvaluateDiscs,
	"positional": EvaluatePositional,
}

// EvaluatorByName looks up a built-in evaluation function.
func EvaluatorByName(name string) (Evaluate, error) {
	evaluate, ok := evaluators[name]
	if !ok {
		return nil, errors.Errorf("unknown evaluation %q (want one of %v)", name, EvaluatorNames())
	}
	return evaluate, nil
}

// EvaluatorNames lists the built-in evaluation functions in sorted order.
func EvaluatorNames() []string {
	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
