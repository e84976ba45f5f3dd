package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"reversi/experiments/metrics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExperiments(t *testing.T) {
	for _, experiment := range []Experiment{DepthExperiment(), BaselineExperiment(), ThroughputExperiment()} {
		t.Run(experiment.Name, func(t *testing.T) {
			ids := map[int]bool{}
			for _, config := range experiment.Configs {
				require.False(t, ids[config.ID], "duplicate agent id %d", config.ID)
				ids[config.ID] = true
			}
			require.NotEmpty(t, experiment.MatchUps)
			for _, matchup := range experiment.MatchUps {
				require.True(t, ids[matchup[0].ID])
				require.True(t, ids[matchup[1].ID])
			}
		})
	}

	all, ok := ByName("all")
	require.True(t, ok)
	require.Len(t, all, 3)
	selected, ok := ByName("depth")
	require.True(t, ok)
	require.Equal(t, "depth", selected[0].Name)
	_, ok = ByName("speedup")
	require.False(t, ok)
}

func TestRun(t *testing.T) {
	random := metrics.AgentConfig{ID: 0, Kind: Random, Seed: 3}
	full := metrics.AgentConfig{ID: 1, Kind: Minimax, Depth: 2, Evaluation: "discs"}
	pruned := metrics.AgentConfig{ID: 2, Kind: Minimax, Depth: 2, Evaluation: "discs", AlphaBeta: true}
	experiment := Experiment{
		Name:     "small",
		Configs:  []metrics.AgentConfig{random, full, pruned},
		MatchUps: [][2]metrics.AgentConfig{{random, pruned}, {full, pruned}},
	}

	base := t.TempDir()
	dir, err := Run(base, experiment, 2)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "small"), filepath.Dir(dir))
	_, err = uuid.Parse(filepath.Base(dir))
	require.NoError(t, err)

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, configs, 4)

	// 2 games per side against the random agent, 1 per side between minimax agents
	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 1+4+2)
	for _, row := range games[1:] {
		require.Equal(t, filepath.Base(dir), row[1])
	}
	require.Equal(t, []string{"0", "2"}, games[1][2:4])
	require.Equal(t, []string{"2", "0"}, games[2][2:4])

	// Full and pruned minimax at the same depth play the mirror game identically
	require.Equal(t, games[5][5:10], games[6][5:10])

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Greater(t, len(moves), 1)
}

func TestRunErrors(t *testing.T) {
	_, err := Run(t.TempDir(), DepthExperiment(), 0)
	require.Error(t, err)

	bad := metrics.AgentConfig{ID: 1, Kind: "mcts"}
	_, err = Run(t.TempDir(), Experiment{Name: "bad", MatchUps: [][2]metrics.AgentConfig{{bad, bad}}}, 1)
	require.Error(t, err)
}
