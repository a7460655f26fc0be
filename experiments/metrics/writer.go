package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"github.com/pkg/errors"
)

type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// AgentConfig describes one agent taking part in an experiment.
type AgentConfig struct {
	ID       int           `yaml:"id"`
	Strategy string        `yaml:"strategy"`
	Depth    int           `yaml:"depth"`
	Budget   time.Duration `yaml:"budget"`
}

type GameRecord struct {
	ID    int
	Black int // AgentConfig.ID
	White int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type agentRow struct {
	ID       int64  `parquet:"id"`
	Strategy string `parquet:"strategy,dict"`
	Depth    int64  `parquet:"depth"`
	BudgetNs int64  `parquet:"budget_ns"`
}

type gameRow struct {
	ID         int64  `parquet:"id"`
	Black      int64  `parquet:"black"`
	White      int64  `parquet:"white"`
	Starting   string `parquet:"starting_player,dict"`
	Winner     string `parquet:"winner,dict"`
	BlackDiscs int64  `parquet:"black_discs"`
	WhiteDiscs int64  `parquet:"white_discs"`
	Plies      int64  `parquet:"plies"`
	Forfeit    bool   `parquet:"forfeit"`
	StartTime  string `parquet:"start_time"`
	EndTime    string `parquet:"end_time"`
	DurationNs int64  `parquet:"duration_ns"`
}

type moveRow struct {
	Game        int64  `parquet:"game"`
	Step        int64  `parquet:"step"`
	Player      string `parquet:"player,dict"`
	Move        string `parquet:"move"`
	Strategy    string `parquet:"strategy,dict"`
	DurationNs  int64  `parquet:"duration_ns"`
	Depth       int64  `parquet:"depth"`
	Nodes       int64  `parquet:"nodes"`
	CacheHits   int64  `parquet:"cache_hits"`
	CacheMisses int64  `parquet:"cache_misses"`
	Value       int64  `parquet:"value"`
}

// Writer stores experiment records under its own timestamped directory.
type Writer struct {
	baseDir string
	format  Format
}

func NewWriter(root, name string, format Format) (*Writer, error) {
	if format != FormatCSV && format != FormatParquet {
		return nil, errors.Errorf("unknown record format %q", format)
	}
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(root, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
		format:  format,
	}, nil
}

// Dir returns the directory the records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	if w.format == FormatParquet {
		rows := make([]agentRow, len(configs))
		for i, c := range configs {
			rows[i] = agentRow{
				ID:       int64(c.ID),
				Strategy: c.Strategy,
				Depth:    int64(c.Depth),
				BudgetNs: int64(c.Budget),
			}
		}
		return errors.Wrap(w.writeParquet("agent_configs", rows), "failed to write agent configs")
	}

	header := []string{"id", "strategy", "depth", "budget"}
	rows := make([][]string, len(configs))
	for i, c := range configs {
		rows[i] = []string{
			strconv.Itoa(c.ID),
			c.Strategy,
			strconv.Itoa(c.Depth),
			c.Budget.String(),
		}
	}
	return errors.Wrap(w.writeCSV("agent_configs", header, rows), "failed to write agent configs")
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	if w.format == FormatParquet {
		rows := make([]gameRow, len(records))
		for i, r := range records {
			rows[i] = gameRow{
				ID:         int64(r.ID),
				Black:      int64(r.Black),
				White:      int64(r.White),
				Starting:   r.StartingPlayer,
				Winner:     r.Winner,
				BlackDiscs: int64(r.BlackDiscs),
				WhiteDiscs: int64(r.WhiteDiscs),
				Plies:      int64(r.Plies),
				Forfeit:    r.Forfeit,
				StartTime:  r.StartTime.Format(time.RFC3339Nano),
				EndTime:    r.EndTime.Format(time.RFC3339Nano),
				DurationNs: int64(r.Duration),
			}
		}
		return errors.Wrap(w.writeParquet("game_records", rows), "failed to write game records")
	}

	header := []string{"id", "black", "white", "starting_player", "winner", "black_discs", "white_discs", "plies", "forfeit", "start_time", "end_time", "duration"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Black),
			strconv.Itoa(r.White),
			r.StartingPlayer,
			r.Winner,
			strconv.Itoa(r.BlackDiscs),
			strconv.Itoa(r.WhiteDiscs),
			strconv.Itoa(r.Plies),
			strconv.FormatBool(r.Forfeit),
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
		}
	}
	return errors.Wrap(w.writeCSV("game_records", header, rows), "failed to write game records")
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	if w.format == FormatParquet {
		rows := make([]moveRow, len(records))
		for i, r := range records {
			rows[i] = moveRow{
				Game:        int64(r.Game),
				Step:        int64(r.Step),
				Player:      r.Player,
				Move:        r.Move,
				Strategy:    r.Strategy,
				DurationNs:  int64(r.Duration),
				Depth:       int64(r.Depth),
				Nodes:       int64(r.Nodes),
				CacheHits:   int64(r.CacheHits),
				CacheMisses: int64(r.CacheMisses),
				Value:       int64(r.Value),
			}
		}
		return errors.Wrap(w.writeParquet("move_records", rows), "failed to write move records")
	}

	header := []string{"game", "step", "player", "move", "strategy", "duration", "depth", "nodes", "cache_hits", "cache_misses", "value"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player,
			r.Move,
			r.Strategy,
			r.Duration.String(),
			strconv.Itoa(r.Depth),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.CacheHits),
			strconv.Itoa(r.CacheMisses),
			strconv.Itoa(r.Value),
		}
	}
	return errors.Wrap(w.writeCSV("move_records", header, rows), "failed to write move records")
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "write header")
	}
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrap(err, "write rows")
	}
	return nil
}

func (w *Writer) writeParquet(name string, rows any) error {
	path := filepath.Join(w.baseDir, name+".parquet")
	options := []parquet.WriterOption{
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", name+"_v1"),
	}

	var err error
	switch rows := rows.(type) {
	case []agentRow:
		err = parquet.WriteFile(path, rows, options...)
	case []gameRow:
		err = parquet.WriteFile(path, rows, options...)
	case []moveRow:
		err = parquet.WriteFile(path, rows, options...)
	default:
		err = errors.Errorf("unsupported row type %T", rows)
	}
	return errors.Wrapf(err, "write %s", path)
}
