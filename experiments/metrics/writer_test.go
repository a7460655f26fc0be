package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

var (
	configs = []AgentConfig{
		{ID: 1, Strategy: "alphabeta", Depth: 4, Budget: 1500 * time.Millisecond},
		{ID: 2, Strategy: "random"},
	}
	games = []GameRecord{
		{ID: 1, Black: 1, White: 2, GameMetric: GameMetric{StartingPlayer: "Black", Winner: "Black", BlackDiscs: 40, WhiteDiscs: 22, Plies: 60}},
	}
	moves = []MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "Black", Move: "2,3", SearchMetric: SearchMetric{Strategy: "alphabeta", Depth: 4, Nodes: 120, CacheHits: 3, CacheMisses: 90, Value: 12}}},
		{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: "White", Move: "SKIP", SearchMetric: SearchMetric{Strategy: "random", Nodes: 1}}},
	}
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

func TestCSVWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "csv", FormatCSV)
	require.NoError(t, err)
	require.NoError(t, w.WriteAgentConfigs(configs))
	require.NoError(t, w.WriteGameRecords(games))
	require.NoError(t, w.WriteMoveRecords(moves))

	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Len(t, rows, 3)
	require.Equal(t, []string{"1", "alphabeta", "4", "1.5s"}, rows[1])

	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "Black", rows[1][4])

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 3)
	require.Equal(t, "SKIP", rows[2][3])
	require.Equal(t, "120", rows[1][7])
}

func TestParquetWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "parquet", FormatParquet)
	require.NoError(t, err)
	require.NoError(t, w.WriteAgentConfigs(configs))
	require.NoError(t, w.WriteGameRecords(games))
	require.NoError(t, w.WriteMoveRecords(moves))

	agents, err := parquet.ReadFile[agentRow](filepath.Join(w.Dir(), "agent_configs.parquet"))
	require.NoError(t, err)
	require.Len(t, agents, 2)
	require.Equal(t, int64(1500*time.Millisecond), agents[0].BudgetNs)

	gameRows, err := parquet.ReadFile[gameRow](filepath.Join(w.Dir(), "game_records.parquet"))
	require.NoError(t, err)
	require.Len(t, gameRows, 1)
	require.Equal(t, int64(40), gameRows[0].BlackDiscs)

	moveRows, err := parquet.ReadFile[moveRow](filepath.Join(w.Dir(), "move_records.parquet"))
	require.NoError(t, err)
	require.Len(t, moveRows, 2)
	require.Equal(t, "2,3", moveRows[0].Move)
	require.Equal(t, int64(90), moveRows[0].CacheMisses)
}

func TestNewWriterRejectsUnknownFormat(t *testing.T) {
	_, err := NewWriter(t.TempDir(), "bad", Format("json"))
	require.Error(t, err)
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("minimax")
	c.AddNode()
	c.AddNode()
	c.AddCacheHit()
	c.AddCacheMiss()
	c.CompleteDepth(2, 7)
	c.CompleteDepth(3, -4)

	m := c.Complete()
	require.Equal(t, "minimax", m.Strategy)
	require.Equal(t, 2, m.Nodes)
	require.Equal(t, 1, m.CacheHits)
	require.Equal(t, 1, m.CacheMisses)
	require.Equal(t, 3, m.Depth)
	require.Equal(t, -4, m.Value)

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete())
}
