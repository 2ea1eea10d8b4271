package search

import (
	"github.com/dkern/branchwood/internal/eval"
	"github.com/dkern/branchwood/internal/move"
	"github.com/dkern/branchwood/internal/movegen"
	"github.com/dkern/branchwood/internal/types"
)

// quiescence extends the search along capture and promotion lines only,
// until the position is "quiet", avoiding the horizon effect where a
// depth-0 cutoff misjudges a position mid-exchange.
func (s *Searcher) quiescence(alpha, beta types.Value, ply int) types.Value {
	if s.timeUp() {
		return timedOut
	}

	standPat := types.Value(eval.Evaluate(s.pos))
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var list movegen.List
	movegen.GenerateCaptures(s.pos, &list)
	orderMoves(s.pos, &list, move.MoveNone)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if !s.pos.MakeMove(m) {
			continue
		}

		value := -s.quiescence(-beta, -alpha, ply+1)
		s.pos.UnmakeMove()

		if value == -timedOut {
			return timedOut
		}
		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}

	return alpha
}
