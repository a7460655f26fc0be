package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Agent interface {
	// Color returns the color the agent plays
	Color() game.Color
	// FindMove returns the move to play and performance metrics (if collected) from the search process
	FindMove(state game.GameState) (game.Move, metrics.SearchMetric)
}
