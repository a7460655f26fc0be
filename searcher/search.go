package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

type child struct {
	move    game.Move
	state   game.GameState
	replies int // Legal replies available to the opponent, set when ordering
}

// search holds the state of a single root search on behalf of player me.
type search struct {
	me       game.Color
	evaluate game.Evaluate
	cache    *Cache
	order    bool
	metrics  metrics.Collector
}

func (s *search) children(state game.GameState) []child {
	moves := state.LegalMoves()
	children := make([]child, 0, len(moves))
	for _, move := range moves {
		next, err := state.Play(move)
		if err != nil {
			continue
		}
		children = append(children, child{move: move, state: next})
	}
	if s.order {
		return orderChildren(children)
	}
	return children
}

func (s *search) leaf(state game.GameState, depth int) int {
	fp := NewFingerprint(state, depth, s.me)
	if v, ok := s.cache.Lookup(fp); ok {
		s.metrics.AddCacheHit()
		return v
	}
	s.metrics.AddCacheMiss()
	v := s.evaluate(state, s.me)
	s.cache.Store(fp, v)
	return v
}

func (s *search) minimax(state game.GameState, depth int, maximizing bool) int {
	s.metrics.AddNode()
	if depth <= 0 || state.IsTerminal() {
		return s.leaf(state, depth)
	}

	if maximizing {
		v := -Infinity
		for _, c := range s.children(state) {
			v = max(v, s.minimax(c.state, depth-1, false))
		}
		return v
	}
	v := Infinity
	for _, c := range s.children(state) {
		v = min(v, s.minimax(c.state, depth-1, true))
	}
	return v
}

func (s *search) alphaBeta(state game.GameState, depth, alpha, beta int, maximizing bool) int {
	s.metrics.AddNode()
	if depth <= 0 || state.IsTerminal() {
		return s.leaf(state, depth)
	}

	if maximizing {
		v := -Infinity
		for _, c := range s.children(state) {
			v = max(v, s.alphaBeta(c.state, depth-1, alpha, beta, false))
			if v >= beta {
				return v
			}
			alpha = max(alpha, v)
		}
		return v
	}
	v := Infinity
	for _, c := range s.children(state) {
		v = min(v, s.alphaBeta(c.state, depth-1, alpha, beta, true))
		if v <= alpha {
			return v
		}
		beta = min(beta, v)
	}
	return v
}
