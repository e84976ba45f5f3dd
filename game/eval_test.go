package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateDiscs(t *testing.T) {
	b := NewBoard()
	require.Equal(t, 0, EvaluateDiscs(&b, Dark))

	_, err := ApplyMove(&b, NewMove(2, 3, Dark))
	require.NoError(t, err)
	require.Equal(t, 3, EvaluateDiscs(&b, Dark))
	require.Equal(t, -3, EvaluateDiscs(&b, Light))
}

func TestEvaluatePositional(t *testing.T) {
	t.Run("symmetric opening is balanced", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, 0, EvaluatePositional(&b, Dark))
	})

	t.Run("corners outweigh the squares next to them", func(t *testing.T) {
		b := mustParseBoard(t, `
			X.......
			.O......
			........
			........
			........
			........
			........
			........
		`)
		require.Equal(t, 150, EvaluatePositional(&b, Dark))
		require.Equal(t, -150, EvaluatePositional(&b, Light))
	})
}

func TestEvaluatorByName(t *testing.T) {
	require.Equal(t, []string{"discs", "positional"}, EvaluatorNames())

	for _, name := range EvaluatorNames() {
		evaluate, err := EvaluatorByName(name)
		require.NoError(t, err)
		require.NotNil(t, evaluate)
	}

	_, err := EvaluatorByName("mobility")
	require.Error(t, err)
}
