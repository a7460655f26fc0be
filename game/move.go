package game

import "fmt"

// Move is a disc placement at (Row, Col), or Pass.
type Move struct {
	Row int
	Col int
}

// Pass is the forced move of a player without any legal placement.
var Pass = Move{Row: -1, Col: -1}

func (m Move) IsPass() bool {
	return m == Pass
}

// IsCorner reports whether m places a disc in one of the four corners, which
// can never be flipped afterwards.
func (m Move) IsCorner() bool {
	return (m.Row == 0 || m.Row == Size-1) && (m.Col == 0 || m.Col == Size-1)
}

func (m Move) onBoard() bool {
	return onBoard(m.Row, m.Col)
}

func (m Move) String() string {
	if m.IsPass() {
		return "SKIP"
	}
	return fmt.Sprintf("%d,%d", m.Row, m.Col)
}
