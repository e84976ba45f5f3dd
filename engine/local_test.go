package engine

import (
	"testing"

	"reversi/agent"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// scriptedAgent plays the first legal move, or a fixed move when one is set.
type scriptedAgent struct {
	move *game.Move
	err  error
}

func (a scriptedAgent) Name() string { return "scripted" }

func (a scriptedAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	if a.err != nil {
		return game.Move{}, metrics.SearchMetric{}, a.err
	}
	if a.move != nil {
		return *a.move, metrics.SearchMetric{}, nil
	}
	return state.LegalMoves()[0], metrics.SearchMetric{}, nil
}

func TestLocalEngineRandomGame(t *testing.T) {
	var events []Event
	e := LocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(2), WithObserver(func(ev Event) {
		events = append(events, ev)
	}))

	result, gameMetric, moveMetrics, err := e.Run()
	require.NoError(t, err)

	require.Equal(t, "Dark", gameMetric.StartingSide)
	require.Equal(t, result.Dark, gameMetric.DarkDiscs)
	require.Equal(t, result.Light, gameMetric.LightDiscs)
	require.Len(t, moveMetrics, gameMetric.TotalMoves)
	require.Equal(t, 4+gameMetric.TotalMoves, result.Dark+result.Light, "Every move adds exactly one disc")
	require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))

	counts := map[EventKind]int{}
	for _, ev := range events {
		counts[ev.Kind]++
	}
	require.Equal(t, gameMetric.TotalMoves, counts[MovePlayed])
	require.Equal(t, gameMetric.TotalMoves, counts[TurnStarted])
	require.Equal(t, gameMetric.Passes, counts[TurnPassed])
	require.Equal(t, 1, counts[GameOver])

	last := events[len(events)-1]
	require.Equal(t, GameOver, last.Kind)
	require.Equal(t, result, last.Result)
	require.True(t, last.State.IsGameOver())
}

func TestLocalEngineMinimaxIsDeterministic(t *testing.T) {
	play := func() (game.Result, []metrics.MoveMetric) {
		dark, err := searcher.NewMinimax(searcher.WithDepth(1))
		require.NoError(t, err)
		light, err := searcher.NewMinimax(searcher.WithDepth(2))
		require.NoError(t, err)
		result, _, moveMetrics, err := LocalEngine(agent.NewMinimaxAgent(dark), agent.NewMinimaxAgent(light)).Run()
		require.NoError(t, err)
		return result, moveMetrics
	}

	r1, m1 := play()
	r2, m2 := play()
	require.Equal(t, r1, r2)
	require.Len(t, m2, len(m1))
	for i := range m1 {
		require.Equal(t, m1[i].Move, m2[i].Move)
	}
}

func TestLocalEnginePasses(t *testing.T) {
	b, err := game.ParseBoard(`
		OX......
		........
		........
		........
		........
		........
		........
		OX......
	`)
	require.NoError(t, err)

	var events []Event
	e := LocalEngine(scriptedAgent{}, scriptedAgent{},
		WithState(game.NewGameStateFrom(b, game.Dark)),
		WithObserver(func(ev Event) { events = append(events, ev) }))

	result, gameMetric, moveMetrics, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, game.Result{Outcome: game.LightWins, Dark: 0, Light: 6}, result)
	require.Equal(t, "Dark", gameMetric.StartingSide)
	require.Equal(t, "Light", gameMetric.Winner)
	require.Equal(t, 2, gameMetric.TotalMoves)
	require.Equal(t, 2, gameMetric.Passes)
	require.Equal(t, "c1", moveMetrics[0].Move)
	require.Equal(t, "Light", moveMetrics[0].Side)

	kinds := make([]EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	require.Equal(t, []EventKind{TurnPassed, TurnStarted, MovePlayed, TurnPassed, TurnStarted, MovePlayed, GameOver}, kinds)
	require.Equal(t, game.Dark, events[0].Side)
	require.Equal(t, game.Dark, events[3].Side)
	require.Equal(t, []game.Position{{Row: 0, Col: 1}}, events[2].Flipped)
}

func TestLocalEngineErrors(t *testing.T) {
	t.Run("agent failure", func(t *testing.T) {
		boom := errors.New("boom")
		_, _, _, err := LocalEngine(scriptedAgent{err: boom}, scriptedAgent{}).Run()
		require.True(t, errors.Is(err, boom))
	})

	t.Run("illegal move", func(t *testing.T) {
		corner := game.NewMove(0, 0, game.Dark)
		_, _, _, err := LocalEngine(scriptedAgent{move: &corner}, scriptedAgent{}).Run()
		require.True(t, errors.Is(err, game.ErrIllegalMove))
	})
}
