package game

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Size is the length of a board side.
const Size = 8

// Board is indexed [row][col]. It is an array so assigning it copies every
// cell, which is how successor states avoid sharing memory with their parent.
type Board [Size][Size]Color

// Compass directions used for ray casts
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NewBoard returns the standard four-disc opening with one blocked cell on
// column 0 and one on column Size-1, both rows drawn from rng.
func NewBoard(rng *rand.Rand) Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black

	b[rng.Intn(Size)][0] = Blocked
	b[rng.Intn(Size)][Size-1] = Blocked
	return b
}

func onBoard(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}

// At returns the content of cell (r, c).
func (b *Board) At(r, c int) Color {
	return b[r][c]
}

// Count returns the number of cells holding c.
func (b *Board) Count(c Color) int {
	n := 0
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if b[r][col] == c {
				n++
			}
		}
	}
	return n
}

// run casts a ray from (r, c) in direction d and returns the length of the
// opposing run anchored by a disc of color. Runs ending on an empty or
// blocked cell or on the edge count as zero.
func (b *Board) run(r, c int, d [2]int, color Color) int {
	n := 0
	for i := 1; i <= Size; i++ {
		x, y := r+i*d[0], c+i*d[1]
		if !onBoard(x, y) {
			return 0
		}
		switch b[x][y] {
		case -color:
			n++
		case color:
			return n
		default:
			return 0
		}
	}
	return 0
}

// flips reports whether placing color at the empty cell (r, c) flips at
// least one disc.
func (b *Board) flips(r, c int, color Color) bool {
	if b[r][c] != Empty {
		return false
	}
	for _, d := range directions {
		if b.run(r, c, d, color) > 0 {
			return true
		}
	}
	return false
}

// placements lists every cell where color could legally place a disc, in
// row-major order.
func (b *Board) placements(color Color) []Move {
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.flips(r, c, color) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// frontier counts the discs of color that touch at least one empty cell.
func (b *Board) frontier(color Color) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != color {
				continue
			}
			for _, d := range directions {
				x, y := r+d[0], c+d[1]
				if onBoard(x, y) && b[x][y] == Empty {
					n++
					break
				}
			}
		}
	}
	return n
}

// ParseBoard builds a board from Size rows of 'B', 'W', 'X' (blocked) and '.'.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, errors.Errorf("board needs %d rows, got %d", Size, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, errors.Errorf("row %d needs %d cells, got %d", r, Size, len(row))
		}
		for c, ch := range row {
			switch ch {
			case 'B':
				b[r][c] = Black
			case 'W':
				b[r][c] = White
			case 'X':
				b[r][c] = Blocked
			case '.':
				b[r][c] = Empty
			default:
				return b, errors.Errorf("unexpected cell %q at %d,%d", ch, r, c)
			}
		}
	}
	return b, nil
}
