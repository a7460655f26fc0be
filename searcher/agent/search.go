package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type searchAgent struct {
	color    game.Color
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays color with the moves chosen by s.
func NewSearchAgent(color game.Color, s searcher.Searcher) Agent {
	return searchAgent{color: color, searcher: s}
}

func (a searchAgent) Color() game.Color {
	return a.color
}

func (a searchAgent) FindMove(state game.GameState) (game.Move, metrics.SearchMetric) {
	return a.searcher.FindMove(state)
}
