package game

import "github.com/pkg/errors"

// Color is the content of a board cell. White and Black are each other's
// negation so flipping a disc is a sign change. Empty and Blocked never
// belong to a player.
type Color int8

const (
	Empty   Color = 0
	White   Color = 1
	Black   Color = -1
	Blocked Color = -2
)

// ErrIllegalMove is returned when a move is applied to a state in which it is
// not legal. The runner treats it as a forfeit.
var ErrIllegalMove = errors.New("illegal move")

// Opponent returns the other player's color.
func (c Color) Opponent() Color {
	return -c
}

// IsPlayer reports whether c is the color of one of the two players.
func (c Color) IsPlayer() bool {
	return c == White || c == Black
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	case Blocked:
		return "Blocked"
	default:
		return "Empty"
	}
}

// Evaluate scores a state from the perspective of the given player. Larger is
// better for that player.
type Evaluate func(s GameState, perspective Color) int
