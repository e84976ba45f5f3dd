package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts since the last start", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, true)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddCutoff()
		got := c.Complete()

		require.Equal(t, 3, got.Depth)
		require.True(t, got.AlphaBeta)
		require.Equal(t, 2, got.Nodes)
		require.Equal(t, 1, got.Leaves)
		require.Equal(t, 1, got.Cutoffs)

		c.Start(1, false)
		got = c.Complete()
		require.Equal(t, SearchMetric{Depth: 1, Duration: got.Duration}, got, "Start should reset the counters")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3, true)
		c.AddNode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "depth", "run")
	w, err := NewWriter(dir)
	require.NoError(t, err)
	require.Equal(t, dir, w.Dir())

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Kind: "minimax", Depth: 2, Evaluation: "discs", AlphaBeta: true},
		{ID: 2, Kind: "random", Seed: 42},
	}))
	start := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, RunID: "run-1", DarkAgent: 1, LightAgent: 2,
		GameMetric: GameMetric{
			StartingSide: "Dark", Winner: "Dark", DarkDiscs: 40, LightDiscs: 24,
			StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second,
			TotalMoves: 60, Passes: 1,
		},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game: 1,
		MoveMetric: MoveMetric{Step: 1, Side: "Dark", Move: "d3",
			SearchMetric: SearchMetric{Depth: 2, AlphaBeta: true, Nodes: 21, Leaves: 12, Cutoffs: 3}},
	}}))

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Equal(t, []string{"id", "kind", "depth", "evaluation", "alpha_beta", "seed"}, configs[0])
	require.Equal(t, []string{"2", "random", "0", "", "false", "42"}, configs[2])

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, []string{"1", "run-1", "1", "2", "Dark", "Dark", "40", "24", "60", "1",
		"2026-10-15T12:00:00Z", "2026-10-15T12:00:01Z", "1s"}, games[1])

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Equal(t, []string{"1", "1", "Dark", "d3", "2", "true", "0s", "21", "12", "3"}, moves[1])
}
