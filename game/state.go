package game

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// GameState is one position of a game: the board, whose turn it is and how
// many passes happened in a row. States are values and are never mutated;
// Play returns a new one.
type GameState struct {
	Board  Board
	Mover  Color // Player to move
	Waiter Color // Player waiting for its turn
	Skips  int   // Consecutive passes, 0 to 2
}

// NewGameState returns the initial state of a game with blocked cells drawn
// from rng. Black moves first.
func NewGameState(rng *rand.Rand) GameState {
	return NewGameStateFromBoard(NewBoard(rng), Black)
}

// NewGameStateFromBoard returns a state with the given board and mover and
// no passes so far.
func NewGameStateFromBoard(b Board, mover Color) GameState {
	return GameState{
		Board:  b,
		Mover:  mover,
		Waiter: mover.Opponent(),
	}
}

// Player returns the color to move.
func (s GameState) Player() Color {
	return s.Mover
}

// LegalMoves returns the placements available to the mover in row-major
// order, or only Pass when there are none.
func (s GameState) LegalMoves() []Move {
	moves := s.Board.placements(s.Mover)
	if len(moves) == 0 {
		return []Move{Pass}
	}
	return moves
}

// Mobility returns how many placements color would have if it were to move
// on the current board.
func (s GameState) Mobility(color Color) int {
	return len(s.Board.placements(color))
}

// Play applies m for the mover and returns the resulting state. The error
// wraps ErrIllegalMove when m is not legal in s.
func (s GameState) Play(m Move) (GameState, error) {
	if m.IsPass() {
		if s.Mobility(s.Mover) > 0 {
			return s, errors.Wrapf(ErrIllegalMove, "%s cannot pass with placements available", s.Mover)
		}
		return GameState{
			Board:  s.Board,
			Mover:  s.Waiter,
			Waiter: s.Mover,
			Skips:  s.Skips + 1,
		}, nil
	}

	if !m.onBoard() {
		return s, errors.Wrapf(ErrIllegalMove, "%s is off the board", m)
	}
	if s.Board[m.Row][m.Col] != Empty {
		return s, errors.Wrapf(ErrIllegalMove, "cell %s is not empty", m)
	}

	next := GameState{
		Board:  s.Board,
		Mover:  s.Waiter,
		Waiter: s.Mover,
	}
	color := s.Mover
	next.Board[m.Row][m.Col] = color

	flipped := 0
	for _, d := range directions {
		n := s.Board.run(m.Row, m.Col, d, color)
		for i := 1; i <= n; i++ {
			next.Board[m.Row+i*d[0]][m.Col+i*d[1]] = color
		}
		flipped += n
	}
	if flipped == 0 {
		return s, errors.Wrapf(ErrIllegalMove, "%s flips no discs", m)
	}
	return next, nil
}

// IsTerminal reports whether both players passed in a row or the board has
// no empty cell left.
func (s GameState) IsTerminal() bool {
	return s.Skips >= 2 || s.Board.Count(Empty) == 0
}

// Count returns the number of discs of color on the board.
func (s GameState) Count(color Color) int {
	return s.Board.Count(color)
}

// Winner returns the color with more discs, or Empty on a tie. It is only
// meaningful on a terminal state.
func (s GameState) Winner() Color {
	black, white := s.Count(Black), s.Count(White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}
