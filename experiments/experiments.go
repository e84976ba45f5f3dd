package experiments

import (
	"path/filepath"

	"reversi/agent"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/searcher"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	Minimax = "minimax"
	Random  = "random"
)

// Experiment describes the agents of a study and the pairs that play each other.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
}

// DepthExperiment pairs a depth-1 baseline against deeper searches.
func DepthExperiment() Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: Minimax, Depth: 1, Evaluation: meta.DEFAULT_EVALUATION, AlphaBeta: true}
	configs := []metrics.AgentConfig{baseline}
	for depth := 2; depth <= 4; depth++ {
		configs = append(configs, metrics.AgentConfig{ID: depth - 1, Kind: Minimax, Depth: depth, Evaluation: meta.DEFAULT_EVALUATION, AlphaBeta: true})
	}

	// Each matchup pairs the baseline agent against a deeper agent
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{Name: "depth", Configs: configs, MatchUps: matchUps}
}

// BaselineExperiment pairs minimax agents with both evaluations against a
// random mover.
func BaselineExperiment() Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: Random, Seed: meta.EXPERIMENT_SEED}
	configs := []metrics.AgentConfig{baseline}
	id := 1
	for _, evaluation := range game.EvaluatorNames() {
		for depth := 1; depth <= searcher.DefaultDepth; depth++ {
			configs = append(configs, metrics.AgentConfig{ID: id, Kind: Minimax, Depth: depth, Evaluation: evaluation, AlphaBeta: true})
			id++
		}
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{Name: "random_baseline", Configs: configs, MatchUps: matchUps}
}

// Run plays every matchup with each agent taking Dark in turn and stores the
// records under baseDir/<experiment>/<run id>/. It returns that directory.
// Matchups between two minimax agents replay identically, so they are played
// once per starting side whatever the number of games.
func Run(baseDir string, experiment Experiment, games int) (string, error) {
	if games < 1 {
		return "", errors.Errorf("number of games must be at least 1, got %d", games)
	}
	runID := uuid.NewString()
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment (run %s)...", experiment.Name, runID)

	for mi, matchup := range experiment.MatchUps {
		n := games
		if matchup[0].Kind != Random && matchup[1].Kind != Random {
			n = 1
		}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(experiment.MatchUps), matchup[0], matchup[1])

		for i := 0; i < n; i++ {
			// Alternate the starting agent
			for _, pair := range [][2]metrics.AgentConfig{matchup, {matchup[1], matchup[0]}} {
				count++
				dark, light := pair[0], pair[1]

				result, gameMetric, moveMetrics, err := runGame(dark, light, uint64(count))
				if err != nil {
					return "", errors.Wrapf(err, "matchup %d game %d", mi+1, count)
				}
				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         count,
					RunID:      runID,
					DarkAgent:  dark.ID,
					LightAgent: light.ID,
					GameMetric: gameMetric,
				})
				for _, mm := range moveMetrics {
					moveRecords = append(moveRecords, metrics.MoveRecord{
						Game:       count,
						MoveMetric: mm,
					})
				}

				log.Info().Msgf("completed matchup %d of %d game %d: %s", mi+1, len(experiment.MatchUps), count, result)
			}
		}
	}

	log.Info().Msgf("completed %s experiment", experiment.Name)

	dir := filepath.Join(baseDir, experiment.Name, runID)
	if err := store(dir, experiment.Configs, gameRecords, moveRecords); err != nil {
		return "", err
	}
	return dir, nil
}

func store(dir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return errors.Wrap(err, "failed to create experiment writer")
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return errors.Wrap(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return errors.Wrap(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return errors.Wrap(err, "failed to write move records")
	}
	log.Info().Msg("stored move records")
	return nil
}

// runGame plays a single game; salt varies the seed of random agents between games.
func runGame(dark, light metrics.AgentConfig, salt uint64) (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	darkAgent, err := createAgent(dark, salt)
	if err != nil {
		return game.Result{}, metrics.GameMetric{}, nil, err
	}
	lightAgent, err := createAgent(light, salt)
	if err != nil {
		return game.Result{}, metrics.GameMetric{}, nil, err
	}
	return engine.LocalEngine(darkAgent, lightAgent).Run()
}

func createAgent(config metrics.AgentConfig, salt uint64) (agent.Agent, error) {
	switch config.Kind {
	case Random:
		return agent.NewRandomAgent(config.Seed + salt), nil
	case Minimax:
		options := []searcher.Option{searcher.WithAlphaBeta(config.AlphaBeta), searcher.WithMetrics()}
		if config.Depth > 0 {
			options = append(options, searcher.WithDepth(config.Depth))
		}
		if config.Evaluation != "" {
			evaluate, err := game.EvaluatorByName(config.Evaluation)
			if err != nil {
				return nil, err
			}
			options = append(options, searcher.WithEvaluationFn(evaluate))
		}
		minimax, err := searcher.NewMinimax(options...)
		if err != nil {
			return nil, err
		}
		return agent.NewMinimaxAgent(minimax), nil
	default:
		return nil, errors.Errorf("unknown agent kind %q", config.Kind)
	}
}
