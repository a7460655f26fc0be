package game

// Terminal outcomes, larger than any heuristic score.
const (
	WinScore  = 100000
	LossScore = -WinScore
	DrawScore = 0
)

// Weights rates each cell for positional play: corners are worth the most and
// the cells next to them are penalized. The table has the board's symmetries.
var Weights = [Size][Size]int{
	{20, -3, 2, 2, 2, 2, -3, 20},
	{-3, -8, -1, -1, -1, -1, -8, -3},
	{2, -1, 1, 0, 0, 1, -1, 2},
	{2, -1, 0, 1, 1, 0, -1, 2},
	{2, -1, 0, 1, 1, 0, -1, 2},
	{2, -1, 1, 0, 0, 1, -1, 2},
	{-3, -8, -1, -1, -1, -1, -8, -3},
	{20, -3, 2, 2, 2, 2, -3, 20},
}

const (
	mobilityWeight = 3
	frontierWeight = 2
)

// EvaluateWeightedFrontier scores s for me. Terminal states score WinScore,
// LossScore or DrawScore by disc count. Otherwise the score is the
// positional difference plus 3 times the mobility difference minus 2 times
// the frontier difference.
func EvaluateWeightedFrontier(s GameState, me Color) int {
	opp := me.Opponent()
	if s.IsTerminal() {
		mine, theirs := s.Count(me), s.Count(opp)
		switch {
		case mine > theirs:
			return WinScore
		case mine < theirs:
			return LossScore
		default:
			return DrawScore
		}
	}

	mobility := s.Mobility(me) - s.Mobility(opp)
	frontier := s.Board.frontier(me) - s.Board.frontier(opp)
	return Positional(s.Board, me) + mobilityWeight*mobility - frontierWeight*frontier
}

// Positional returns the weighted sum of me's discs minus the weighted sum of
// the opponent's discs.
func Positional(b Board, me Color) int {
	score := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case me:
				score += Weights[r][c]
			case -me:
				score -= Weights[r][c]
			}
		}
	}
	return score
}

// Frontier returns how many discs of color are adjacent to an empty cell.
func Frontier(b Board, color Color) int {
	return b.frontier(color)
}
