package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"time"

	"golang.org/x/exp/rand"
)

const RandomStrategy = "random"

type randomAgent struct {
	color game.Color
	rng   *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
func NewRandomAgent(color game.Color, rng *rand.Rand) Agent {
	return &randomAgent{color: color, rng: rng}
}

func (a *randomAgent) Color() game.Color {
	return a.color
}

func (a *randomAgent) FindMove(state game.GameState) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	moves := state.LegalMoves()
	move := moves[a.rng.Intn(len(moves))]
	return move, metrics.SearchMetric{
		Strategy: RandomStrategy,
		Duration: time.Since(start),
		Nodes:    1,
	}
}
