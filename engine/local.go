package engine

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher/agent"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

type LocalEngine struct {
	State  game.GameState
	Agents map[game.Color]agent.Agent
}

// NewLocalEngine sets up a game on a fresh board drawn from rng. Black moves first.
func NewLocalEngine(black, white agent.Agent, rng *rand.Rand) (*LocalEngine, error) {
	return NewLocalEngineFromState(black, white, game.NewGameState(rng))
}

func NewLocalEngineFromState(black, white agent.Agent, state game.GameState) (*LocalEngine, error) {
	if !state.Player().IsPlayer() {
		return nil, errors.Errorf("%s cannot move", state.Player())
	}
	if black.Color() != game.Black {
		return nil, errors.Errorf("black agent plays %s", black.Color())
	}
	if white.Color() != game.White {
		return nil, errors.Errorf("white agent plays %s", white.Color())
	}
	return &LocalEngine{
		State: state,
		Agents: map[game.Color]agent.Agent{
			game.Black: black,
			game.White: white,
		},
	}, nil
}

// Run executes the entire game loop until the game is over. A player whose
// agent returns an illegal move forfeits.
func (e *LocalEngine) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.State.Player())

	winner := game.Empty
	for step := 1; !e.State.IsTerminal(); step++ {
		mover := e.State.Player()
		move, searchMetric := e.Agents[mover].FindMove(e.State)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})

		next, err := e.play(move)
		if err != nil {
			log.Warn().Err(err).Str("player", mover.String()).Msg("forfeit")
			gameMetric.Forfeit = true
			winner = mover.Opponent()
			break
		}
		log.Debug().Int("step", step).Str("player", mover.String()).Str("move", move.String()).Msg("played")
		e.State = next
	}
	if !gameMetric.Forfeit {
		winner = e.State.Winner()
	}

	gameMetric.Winner = winnerName(winner)
	gameMetric.BlackDiscs = e.State.Count(game.Black)
	gameMetric.WhiteDiscs = e.State.Count(game.White)
	gameMetric.Plies = len(moveMetrics)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Info().
		Str("winner", gameMetric.Winner).
		Int("black", gameMetric.BlackDiscs).
		Int("white", gameMetric.WhiteDiscs).
		Bool("forfeit", gameMetric.Forfeit).
		Msg("game over")
	return winner, gameMetric, moveMetrics
}

func (e *LocalEngine) play(move game.Move) (game.GameState, error) {
	if !slices.Contains(e.State.LegalMoves(), move) {
		return e.State, errors.Wrapf(game.ErrIllegalMove, "%s is not legal for %s", move, e.State.Player())
	}
	return e.State.Play(move)
}

func winnerName(c game.Color) string {
	if c == game.Empty {
		return "Tie"
	}
	return c.String()
}
