package searcher

import "sort"

// orderChildren puts corner placements first, then the remaining placements by
// ascending opponent replies. Ties keep generation order. Passes are dropped
// unless nothing else is left.
func orderChildren(children []child) []child {
	corners := make([]child, 0, len(children))
	others := make([]child, 0, len(children))
	for _, c := range children {
		switch {
		case c.move.IsPass():
		case c.move.IsCorner():
			corners = append(corners, c)
		default:
			c.replies = len(c.state.LegalMoves())
			others = append(others, c)
		}
	}
	sort.SliceStable(others, func(i, j int) bool {
		return others[i].replies < others[j].replies
	})

	ordered := append(corners, others...)
	if len(ordered) == 0 {
		return children
	}
	return ordered
}
