package searcher

import (
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

// Minimax searches the full tree to a fixed depth.
type Minimax struct {
	options
}

func NewMinimax(opts ...Option) *Minimax {
	return &Minimax{options: newOptions(MinimaxDepth, opts)}
}

func (m *Minimax) Name() string {
	return "minimax"
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) FindMove(state game.GameState) (game.Move, metrics.SearchMetric) {
	s := m.newSearch(state.Player(), false)
	s.metrics.Start(m.Name())
	move, value := s.minimaxRoot(state, m.depth)
	s.metrics.CompleteDepth(m.depth, value)
	log.Debug().Str("player", state.Player().String()).Str("move", move.String()).Int("value", value).Msg("minimax")
	return move, s.metrics.Complete()
}

// Search returns the best move for the player to move at the given depth and its value.
func (m *Minimax) Search(state game.GameState, depth int) (game.Move, int) {
	return m.newSearch(state.Player(), false).minimaxRoot(state, max(depth, 1))
}

func (s *search) minimaxRoot(state game.GameState, depth int) (game.Move, int) {
	s.metrics.AddNode()
	best, bestValue := game.Pass, -Infinity
	for i, c := range s.children(state) {
		v := s.minimax(c.state, depth-1, false)
		if i == 0 || v > bestValue {
			best, bestValue = c.move, v
		}
	}
	return best, bestValue
}
