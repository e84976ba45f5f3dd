package engine

import (
	"time"

	"reversi/agent"
	"reversi/experiments/metrics"
	"reversi/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type EventKind int

const (
	TurnStarted EventKind = iota
	MovePlayed
	TurnPassed
	GameOver
)

func (k EventKind) String() string {
	switch k {
	case TurnStarted:
		return "turn started"
	case MovePlayed:
		return "move played"
	case TurnPassed:
		return "turn passed"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event tells an observer what just happened. State is a copy taken after the
// event and may be kept.
type Event struct {
	Kind    EventKind
	Side    game.Side
	Move    game.Move       // MovePlayed only
	Flipped []game.Position // MovePlayed only
	State   *game.GameState
	Result  game.Result // GameOver only
}

type Option func(e *localEngine)

// WithState starts from state instead of the standard opening.
func WithState(state *game.GameState) Option {
	return func(e *localEngine) {
		e.state = state.Copy()
	}
}

func WithObserver(observer func(Event)) Option {
	return func(e *localEngine) {
		e.observers = append(e.observers, observer)
	}
}

type localEngine struct {
	state     *game.GameState
	agents    [2]agent.Agent // Indexed by game.Side
	observers []func(Event)
}

// LocalEngine runs a game between two in-process agents.
func LocalEngine(dark, light agent.Agent, options ...Option) Engine {
	e := &localEngine{
		state:  game.NewGameState(),
		agents: [2]agent.Agent{dark, light},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until neither side can move.
func (e *localEngine) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingSide: e.state.Turn().String(),
		StartTime:    time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s (Dark) vs %s (Light), %s is starting",
		e.agents[game.Dark].Name(), e.agents[game.Light].Name(), e.state.Turn())

	for !e.state.IsGameOver() {
		side := e.state.Turn()

		if e.state.MustPass() {
			if err := e.state.Pass(); err != nil {
				return game.Result{}, gameMetric, moveMetrics, err
			}
			gameMetric.Passes++
			e.passed(side)
			continue
		}

		e.notify(Event{Kind: TurnStarted, Side: side, State: e.state.Copy()})

		player := e.agents[side]
		move, searchMetric, err := player.FindMove(e.state.Copy())
		if err != nil {
			return game.Result{}, gameMetric, moveMetrics, errors.Wrapf(err, "%s failed to find a move", player.Name())
		}

		played := len(e.state.History())
		if err := e.state.ApplyMove(move); err != nil {
			return game.Result{}, gameMetric, moveMetrics, errors.Wrapf(err, "%s chose a rejected move", player.Name())
		}
		gameMetric.TotalMoves++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         gameMetric.TotalMoves,
			Side:         side.String(),
			Move:         move.Position.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: %s", gameMetric.TotalMoves, move)

		// The move itself, then any pass it forced on the opponent
		history := e.state.History()
		e.notify(Event{Kind: MovePlayed, Side: side, Move: move, Flipped: history[played].Flipped, State: e.state.Copy()})
		for _, ply := range history[played+1:] {
			if ply.Pass {
				gameMetric.Passes++
				e.passed(ply.Side)
			}
		}
	}

	result, err := e.state.Result()
	if err != nil {
		return game.Result{}, gameMetric, moveMetrics, err
	}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.DarkDiscs = result.Dark
	gameMetric.LightDiscs = result.Light
	gameMetric.Winner = "Draw"
	if winner, ok := result.Winner(); ok {
		gameMetric.Winner = winner.String()
	}

	log.Info().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, result)
	e.notify(Event{Kind: GameOver, Side: e.state.Turn(), State: e.state.Copy(), Result: result})
	return result, gameMetric, moveMetrics, nil
}

func (e *localEngine) passed(side game.Side) {
	log.Debug().Msgf("%s has no legal move and passes", side)
	e.notify(Event{Kind: TurnPassed, Side: side, State: e.state.Copy()})
}

func (e *localEngine) notify(event Event) {
	for _, observer := range e.observers {
		observer(event)
	}
}
