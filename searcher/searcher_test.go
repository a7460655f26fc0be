package searcher

import (
	"othello/game"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func position(t *testing.T, mover game.Color, rows ...string) game.GameState {
	t.Helper()
	b, err := game.ParseBoard(rows...)
	require.NoError(t, err)
	return game.NewGameStateFromBoard(b, mover)
}

func opening(t *testing.T) game.GameState {
	return position(t, game.Black,
		"........",
		"........",
		"........",
		"...WB...",
		"...BW...",
		"........",
		"........",
		"........",
	)
}

// randomPosition plays up to plies random moves from a seeded opening.
func randomPosition(seed uint64, plies int) game.GameState {
	rng := rand.New(rand.NewSource(seed))
	state := game.NewGameState(rng)
	for i := 0; i < plies && !state.IsTerminal(); i++ {
		moves := state.LegalMoves()
		next, err := state.Play(moves[rng.Intn(len(moves))])
		if err != nil {
			panic(err)
		}
		state = next
	}
	return state
}

type tickingClock struct {
	now  time.Time
	step time.Duration
}

func (c *tickingClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func TestSearchersAgree(t *testing.T) {
	for seed := uint64(1); seed <= 6; seed++ {
		state := randomPosition(seed, int(seed)*5)
		if state.IsTerminal() {
			continue
		}
		for depth := 1; depth <= 3; depth++ {
			mmMove, mmValue := NewMinimax().Search(state, depth)
			abMove, abValue := NewAlphaBeta().Search(state, depth)
			_, advValue := NewAdvanced().Search(state, depth)

			require.Equal(t, mmValue, abValue, "seed %d depth %d", seed, depth)
			// Both keep the first best move in generation order, so ties resolve the same way
			require.Equal(t, mmMove, abMove, "seed %d depth %d", seed, depth)
			require.Equal(t, mmValue, advValue, "seed %d depth %d", seed, depth)
		}
	}
}

func TestFindMoveIsLegal(t *testing.T) {
	searchers := []Searcher{
		NewMinimax(WithDepth(2)),
		NewAlphaBeta(WithDepth(3)),
		NewAdvanced(WithDepth(3)),
	}
	for seed := uint64(1); seed <= 4; seed++ {
		state := randomPosition(seed, 10)
		for _, s := range searchers {
			move, _ := s.FindMove(state)
			require.Contains(t, state.LegalMoves(), move, "%s seed %d", s.Name(), seed)
		}
	}
}

func TestFindMoveTakesWin(t *testing.T) {
	state := position(t, game.Black,
		"BBBBBBW.",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
	)
	win := game.Move{Row: 0, Col: 7}

	t.Run("minimax", func(t *testing.T) {
		move, value := NewMinimax(WithDepth(1)).Search(state, 1)
		require.Equal(t, win, move)
		require.Equal(t, game.WinScore, value)
	})

	t.Run("alphabeta", func(t *testing.T) {
		move, value := NewAlphaBeta().Search(state, 1)
		require.Equal(t, win, move)
		require.Equal(t, game.WinScore, value)
	})

	t.Run("picks a winning move among several", func(t *testing.T) {
		// Every opening reply wins except the first in generation order
		first := game.Move{Row: 2, Col: 3}
		winsUnlessFirst := func(s game.GameState, me game.Color) int {
			if s.Board.At(first.Row, first.Col) == me {
				return game.DrawScore
			}
			return game.WinScore
		}
		state := opening(t)
		require.Len(t, state.LegalMoves(), 4)
		require.Equal(t, first, state.LegalMoves()[0])

		for _, s := range []interface {
			Search(game.GameState, int) (game.Move, int)
		}{
			NewMinimax(WithEvaluationFn(winsUnlessFirst)),
			NewAlphaBeta(WithEvaluationFn(winsUnlessFirst)),
			NewAdvanced(WithEvaluationFn(winsUnlessFirst)),
		} {
			move, value := s.Search(state, 1)
			require.NotEqual(t, first, move)
			require.Contains(t, state.LegalMoves(), move)
			require.Equal(t, game.WinScore, value)
		}
	})

	t.Run("deeper searches stop at the terminal state", func(t *testing.T) {
		for _, s := range []Searcher{NewMinimax(WithDepth(4)), NewAlphaBeta(), NewAdvanced()} {
			move, _ := s.FindMove(state)
			require.Equal(t, win, move, s.Name())
		}
	})
}

func TestForcedPassIsReturned(t *testing.T) {
	state := position(t, game.White,
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	for _, s := range []Searcher{NewMinimax(), NewAlphaBeta(), NewAdvanced()} {
		move, _ := s.FindMove(state)
		require.Equal(t, game.Pass, move, s.Name())
	}
}

func TestDefaults(t *testing.T) {
	require.Equal(t, 3, NewMinimax().Depth())
	require.Equal(t, 4, NewAlphaBeta().Depth())
	require.Equal(t, 5, NewAdvanced().Depth())
	require.Equal(t, 1500*time.Millisecond, NewAlphaBeta().Budget())
	require.Equal(t, 1500*time.Millisecond, NewAdvanced().Budget())

	// Non-positive values keep the defaults
	require.Equal(t, 4, NewAlphaBeta(WithDepth(0)).Depth())
	require.Equal(t, DefaultBudget, NewAlphaBeta(WithBudget(-time.Second)).Budget())
}

func TestEvaluationFn(t *testing.T) {
	var calls atomic.Int64
	count := func(s game.GameState, me game.Color) int {
		calls.Add(1)
		return game.EvaluateWeightedFrontier(s, me)
	}

	_, _ = NewMinimax(WithDepth(1), WithEvaluationFn(count)).FindMove(opening(t))
	require.Equal(t, int64(4), calls.Load())
}

func TestMetrics(t *testing.T) {
	t.Run("collected when enabled", func(t *testing.T) {
		_, m := NewMinimax(WithDepth(2), WithMetrics()).FindMove(opening(t))
		require.Equal(t, "minimax", m.Strategy)
		require.Equal(t, 2, m.Depth)
		require.Positive(t, m.Nodes)
		require.Positive(t, m.CacheMisses)
	})

	t.Run("empty by default", func(t *testing.T) {
		_, m := NewMinimax(WithDepth(2)).FindMove(opening(t))
		require.Zero(t, m.Nodes)
		require.Empty(t, m.Strategy)
	})
}

func TestIterativeDeepening(t *testing.T) {
	t.Run("reaches full depth within budget", func(t *testing.T) {
		frozen := time.Unix(0, 0)
		a := NewAlphaBeta(WithDepth(3), WithMetrics(), withClock(func() time.Time { return frozen }))
		_, m := a.FindMove(opening(t))
		require.Equal(t, 3, m.Depth)
		require.Equal(t, "alphabeta", m.Strategy)
	})

	t.Run("stops once the budget is spent", func(t *testing.T) {
		clock := &tickingClock{now: time.Unix(0, 0), step: time.Second}
		state := opening(t)
		a := NewAlphaBeta(WithMetrics(), withClock(clock.Now))
		move, m := a.FindMove(state)
		require.Equal(t, 2, m.Depth)
		require.Contains(t, state.LegalMoves(), move)
	})

	// Depth 3 scores worse than depth 2 here, so the depth 2 move must survive
	worseWhenDeeper := func(t *testing.T) (game.GameState, game.Move) {
		state := randomPosition(1, 20)
		shallowMove, shallow := NewAlphaBeta().Search(state, 2)
		_, deep := NewAlphaBeta().Search(state, 3)
		require.Less(t, deep, shallow)
		require.GreaterOrEqual(t, len(state.LegalMoves()), 2)
		return state, shallowMove
	}

	t.Run("keeps the shallower move when a deeper one scores worse", func(t *testing.T) {
		state, want := worseWhenDeeper(t)
		frozen := time.Unix(0, 0)
		move, m := NewAlphaBeta(WithDepth(3), WithMetrics(), withClock(func() time.Time { return frozen })).FindMove(state)
		require.Equal(t, want, move)
		require.Equal(t, 3, m.Depth)
	})

	t.Run("keeps the shallower move when a partial depth scores worse", func(t *testing.T) {
		state, want := worseWhenDeeper(t)
		n := len(state.LegalMoves())
		// The clock advances one step per reading: depth 2 finishes after n readings,
		// depth 3 runs out of budget after its first root child
		clock := &tickingClock{now: time.Unix(0, 0), step: time.Millisecond}
		a := NewAlphaBeta(WithDepth(3), WithBudget(time.Duration(n+1)*time.Millisecond), WithMetrics(), withClock(clock.Now))
		move, m := a.FindMove(state)
		require.Equal(t, want, move)
		require.Equal(t, 3, m.Depth)
	})

	t.Run("depth one is searched once", func(t *testing.T) {
		_, m := NewAdvanced(WithDepth(1), WithMetrics()).FindMove(opening(t))
		require.Equal(t, 1, m.Depth)
		require.Equal(t, "advanced", m.Strategy)
	})
}

func TestDeterministic(t *testing.T) {
	state := randomPosition(7, 12)
	first, _ := NewAdvanced(WithDepth(3)).FindMove(state)
	for i := 0; i < 3; i++ {
		move, _ := NewAdvanced(WithDepth(3)).FindMove(state)
		require.Equal(t, first, move)
	}
}
