package experiments

import (
	"reversi/experiments/metrics"
	"reversi/meta"
)

// ThroughputExperiment measures the search work saved by alpha-beta pruning.
// Each matchup uses the same depth for both players; the pruned and unpruned
// agents choose the same moves, so the move records differ only in nodes,
// cutoffs and duration.
func ThroughputExperiment() Experiment {
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 2; depth <= 4; depth++ {
		full := metrics.AgentConfig{ID: len(configs), Kind: Minimax, Depth: depth, Evaluation: meta.DEFAULT_EVALUATION}
		pruned := metrics.AgentConfig{ID: len(configs) + 1, Kind: Minimax, Depth: depth, Evaluation: meta.DEFAULT_EVALUATION, AlphaBeta: true}
		configs = append(configs, full, pruned)
		matchUps = append(matchUps, [2]metrics.AgentConfig{full, pruned})
	}
	return Experiment{Name: "pruning_throughput", Configs: configs, MatchUps: matchUps}
}

// ByName returns the experiments selected by name; "all" selects every one.
func ByName(name string) ([]Experiment, bool) {
	all := []Experiment{DepthExperiment(), BaselineExperiment(), ThroughputExperiment()}
	if name == "all" {
		return all, true
	}
	for _, experiment := range all {
		if experiment.Name == name {
			return []Experiment{experiment}, true
		}
	}
	return nil, false
}
