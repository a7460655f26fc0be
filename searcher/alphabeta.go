package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"time"

	"github.com/rs/zerolog/log"
)

const firstDepth = 2

// AlphaBeta deepens an alpha-beta search one ply at a time until it reaches
// its depth or runs out of budget, keeping the best move found so far.
type AlphaBeta struct {
	options
	name  string
	order bool
}

func NewAlphaBeta(opts ...Option) *AlphaBeta {
	return &AlphaBeta{
		options: newOptions(AlphaBetaDepth, opts),
		name:    "alphabeta",
	}
}

// NewAdvanced returns an alpha-beta searcher that expands corners first and
// then the moves leaving the opponent fewest replies.
func NewAdvanced(opts ...Option) *AlphaBeta {
	return &AlphaBeta{
		options: newOptions(AdvancedDepth, opts),
		name:    "advanced",
		order:   true,
	}
}

func (a *AlphaBeta) Name() string {
	return a.name
}

func (a *AlphaBeta) Depth() int {
	return a.depth
}

func (a *AlphaBeta) Budget() time.Duration {
	return a.budget
}

func (a *AlphaBeta) FindMove(state game.GameState) (game.Move, metrics.SearchMetric) {
	start := a.now()
	s := a.newSearch(state.Player(), a.order)
	s.metrics.Start(a.name)

	s.metrics.AddNode()
	root := s.children(state)
	if len(root) == 0 {
		return game.Pass, s.metrics.Complete()
	}

	best, bestValue := root[0].move, -Infinity
	for depth := min(firstDepth, a.depth); depth <= a.depth; depth++ {
		move, value, complete := s.alphaBetaRoot(root, depth, func() bool { return a.expired(start) })
		if value > bestValue {
			best, bestValue = move, value
		}
		s.metrics.CompleteDepth(depth, value)
		log.Debug().
			Str("strategy", a.name).
			Int("depth", depth).
			Str("move", move.String()).
			Int("value", value).
			Bool("complete", complete).
			Msg("deepening-iteratively")
		if a.expired(start) {
			break
		}
	}
	return best, s.metrics.Complete()
}

// Search runs a single alpha-beta pass at the given depth without a time budget.
func (a *AlphaBeta) Search(state game.GameState, depth int) (game.Move, int) {
	s := a.newSearch(state.Player(), a.order)
	root := s.children(state)
	if len(root) == 0 {
		return game.Pass, -Infinity
	}
	move, value, _ := s.alphaBetaRoot(root, max(depth, 1), func() bool { return false })
	return move, value
}

func (a *AlphaBeta) expired(start time.Time) bool {
	return a.now().Sub(start) >= a.budget
}

// alphaBetaRoot evaluates root children in order, stopping early once expired reports true.
func (s *search) alphaBetaRoot(root []child, depth int, expired func() bool) (game.Move, int, bool) {
	best, bestValue := root[0].move, -Infinity
	alpha, beta := -Infinity, Infinity
	for i, c := range root {
		v := s.alphaBeta(c.state, depth-1, alpha, beta, false)
		if v > bestValue {
			best, bestValue = c.move, v
		}
		alpha = max(alpha, bestValue)
		if i < len(root)-1 && expired() {
			return best, bestValue, false
		}
	}
	return best, bestValue, true
}
