package config

import (
	"os"
	"othello/experiments/metrics"
	"othello/searcher"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	StrategyRandom    = "random"
	StrategyMinimax   = "minimax"
	StrategyAlphaBeta = "alphabeta"
	StrategyAdvanced  = "advanced"
)

// Config describes an experiment: every pair of agents plays Games games
// with each color assignment.
type Config struct {
	Name         string                `yaml:"name"`
	Games        int                   `yaml:"games"` // Per match up
	Seed         uint64                `yaml:"seed"`
	Parallel     int                   `yaml:"parallel"`
	Output       string                `yaml:"output"`
	Format       metrics.Format        `yaml:"format"`
	CacheEntries int                   `yaml:"cache_entries"` // 0 means unbounded
	Agents       []metrics.AgentConfig `yaml:"agents"`
}

// Default pits an alpha-beta agent against a random one.
func Default() Config {
	return Config{
		Name:     "auto_match",
		Games:    1,
		Seed:     1,
		Parallel: 1,
		Output:   "experiments",
		Format:   metrics.FormatCSV,
		Agents: []metrics.AgentConfig{
			{ID: 1, Strategy: StrategyAlphaBeta, Depth: searcher.AlphaBetaDepth, Budget: searcher.DefaultBudget},
			{ID: 2, Strategy: StrategyRandom},
		},
	}
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Parse decodes a YAML config. Fields left out keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}
	for i := range cfg.Agents {
		cfg.Agents[i] = withDefaults(cfg.Agents[i])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func withDefaults(a metrics.AgentConfig) metrics.AgentConfig {
	switch a.Strategy {
	case StrategyMinimax:
		if a.Depth <= 0 {
			a.Depth = searcher.MinimaxDepth
		}
	case StrategyAlphaBeta, StrategyAdvanced:
		if a.Depth <= 0 {
			a.Depth = searcher.AlphaBetaDepth
			if a.Strategy == StrategyAdvanced {
				a.Depth = searcher.AdvancedDepth
			}
		}
		if a.Budget <= 0 {
			a.Budget = searcher.DefaultBudget
		}
	}
	return a
}

func (c Config) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Games <= 0 {
		return errors.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Parallel <= 0 {
		return errors.Errorf("parallel must be positive, got %d", c.Parallel)
	}
	if c.Format != metrics.FormatCSV && c.Format != metrics.FormatParquet {
		return errors.Errorf("unknown format %q", c.Format)
	}
	if c.CacheEntries < 0 {
		return errors.Errorf("cache_entries must not be negative, got %d", c.CacheEntries)
	}
	if len(c.Agents) < 2 {
		return errors.Errorf("need at least two agents, got %d", len(c.Agents))
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if ids[a.ID] {
			return errors.Errorf("duplicate agent id %d", a.ID)
		}
		ids[a.ID] = true

		switch a.Strategy {
		case StrategyRandom, StrategyMinimax, StrategyAlphaBeta, StrategyAdvanced:
		default:
			return errors.Errorf("agent %d: unknown strategy %q", a.ID, a.Strategy)
		}
		if a.Strategy != StrategyRandom && a.Depth <= 0 {
			return errors.Errorf("agent %d: depth must be positive, got %d", a.ID, a.Depth)
		}
	}
	return nil
}
