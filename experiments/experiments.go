package experiments

import (
	"othello/config"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Result summarises a finished experiment.
type Result struct {
	Dir   string // Where the records were written
	Games []metrics.GameRecord
	Wins  map[int]int // Games won per agent ID
	Ties  int
}

type fixture struct {
	id    int
	black metrics.AgentConfig
	white metrics.AgentConfig
	seed  uint64
}

// Run plays every match up of the experiment and stores its records.
func Run(cfg config.Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, errors.Wrap(err, "invalid experiment config")
	}

	games := schedule(cfg)
	gameRecords := make([]metrics.GameRecord, len(games))
	moveRecords := make([][]metrics.MoveRecord, len(games))
	cache := searcher.NewBoundedCache(cfg.CacheEntries)

	log.Info().Str("name", cfg.Name).Int("games", len(games)).Int("parallel", cfg.Parallel).Msg("starting experiment")

	g := new(errgroup.Group)
	g.SetLimit(cfg.Parallel)
	for i, gm := range games {
		i, gm := i, gm
		g.Go(func() error {
			log.Info().Msgf("starting game %d of %d between agent%d (Black) and agent%d (White)...", gm.id, len(games), gm.black.ID, gm.white.ID)

			record, moves, err := runGame(gm, cache)
			if err != nil {
				return errors.Wrapf(err, "game %d", gm.id)
			}
			gameRecords[i] = record
			moveRecords[i] = moves

			log.Info().Msgf("completed game %d with winner: %s", gm.id, record.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	log.Info().Int("cached", cache.Len()).Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(cfg.Output, cfg.Name, cfg.Format)
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return Result{}, err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Result{}, err
	}
	log.Info().Msg("stored game records")

	var flat []metrics.MoveRecord
	for _, moves := range moveRecords {
		flat = append(flat, moves...)
	}
	if err := writer.WriteMoveRecords(flat); err != nil {
		return Result{}, err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")

	return summarise(writer.Dir(), gameRecords), nil
}

// schedule pairs every two agents and plays each pairing with both color
// assignments. Game IDs start at 1 and seed their boards.
func schedule(cfg config.Config) []fixture {
	var games []fixture
	for i := 0; i < len(cfg.Agents); i++ {
		for j := i + 1; j < len(cfg.Agents); j++ {
			for _, matchUp := range [][2]metrics.AgentConfig{
				{cfg.Agents[i], cfg.Agents[j]},
				{cfg.Agents[j], cfg.Agents[i]},
			} {
				for n := 0; n < cfg.Games; n++ {
					id := len(games) + 1
					games = append(games, fixture{
						id:    id,
						black: matchUp[0],
						white: matchUp[1],
						seed:  cfg.Seed + uint64(id),
					})
				}
			}
		}
	}
	return games
}

// runGame executes a single game between two agents
func runGame(g fixture, cache *searcher.Cache) (metrics.GameRecord, []metrics.MoveRecord, error) {
	rng := rand.New(rand.NewSource(g.seed))
	black, err := newAgent(g.black, game.Black, cache, rng)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	white, err := newAgent(g.white, game.White, cache, rng)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	e, err := engine.NewLocalEngine(black, white, rng)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	_, gameMetric, moveMetrics := e.Run()

	record := metrics.GameRecord{
		ID:         g.id,
		Black:      g.black.ID,
		White:      g.white.ID,
		GameMetric: gameMetric,
	}
	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: g.id, MoveMetric: mm}
	}
	return record, moves, nil
}

func newAgent(cfg metrics.AgentConfig, color game.Color, cache *searcher.Cache, rng *rand.Rand) (agent.Agent, error) {
	options := []searcher.Option{
		searcher.WithDepth(cfg.Depth),
		searcher.WithBudget(cfg.Budget),
		searcher.WithCache(cache),
		searcher.WithMetrics(),
	}

	switch cfg.Strategy {
	case config.StrategyRandom:
		return agent.NewRandomAgent(color, rng), nil
	case config.StrategyMinimax:
		return agent.NewSearchAgent(color, searcher.NewMinimax(options...)), nil
	case config.StrategyAlphaBeta:
		return agent.NewSearchAgent(color, searcher.NewAlphaBeta(options...)), nil
	case config.StrategyAdvanced:
		return agent.NewSearchAgent(color, searcher.NewAdvanced(options...)), nil
	default:
		return nil, errors.Errorf("unknown strategy %q", cfg.Strategy)
	}
}

func summarise(dir string, records []metrics.GameRecord) Result {
	result := Result{
		Dir:   dir,
		Games: records,
		Wins:  make(map[int]int),
	}
	for _, r := range records {
		switch r.Winner {
		case game.Black.String():
			result.Wins[r.Black]++
		case game.White.String():
			result.Wins[r.White]++
		default:
			result.Ties++
		}
	}
	return result
}
