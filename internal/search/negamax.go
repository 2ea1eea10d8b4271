package search

import (
	"github.com/dkern/branchwood/internal/config"
	"github.com/dkern/branchwood/internal/eval"
	"github.com/dkern/branchwood/internal/move"
	"github.com/dkern/branchwood/internal/movegen"
	"github.com/dkern/branchwood/internal/tt"
	"github.com/dkern/branchwood/internal/types"
)

// mateScore converts a raw "mate found" score into one relative to the
// root: a mate one ply closer to the root scores strictly higher than
// one further away, so the search always prefers the faster mate.
func mateScore(ply int) types.Value {
	return types.ValueMate - types.Value(ply)
}

// negamax searches the current position to depth, returning a value
// from the side-to-move's perspective. ply counts distance from the
// search root and only affects mate-distance scoring.
func (s *Searcher) negamax(alpha, beta types.Value, depth, ply int) types.Value {
	if s.timeUp() {
		return timedOut
	}

	alphaOrig := alpha
	ttMove := move.MoveNone

	if entry, ok := s.table.Probe(s.pos.Key()); ok {
		ttMove = entry.Best
		if config.Settings.Search.UseTT && entry.Depth >= depth {
			switch entry.NodeType {
			case tt.NodePV:
				return entry.Value
			case tt.NodeCut:
				if entry.Value > alpha {
					alpha = entry.Value
				}
			case tt.NodeAll:
				if entry.Value < beta {
					beta = entry.Value
				}
			}
			if alpha >= beta {
				return entry.Value
			}
		}
	}

	inCheck := s.pos.InCheck()

	if depth <= 0 {
		if !hasLegalMove(s.pos) {
			if inCheck {
				return -mateScore(ply)
			}
			return types.ValueDraw
		}
		if !config.Settings.Search.UseQuiescence {
			return types.Value(eval.Evaluate(s.pos))
		}
		return s.quiescence(alpha, beta, ply)
	}

	if config.Settings.Search.UseNullMove &&
		depth >= config.Settings.Search.NullMoveMinDepth &&
		!inCheck &&
		!eval.IsEndgame(s.pos) {
		savedEp := s.pos.MakeNullMove()
		reduction := config.Settings.Search.NullMoveReduction
		value := -s.negamax(-beta, -beta+1, depth-1-reduction, ply+1)
		s.pos.UnmakeNullMove(savedEp)

		if value == -timedOut {
			return timedOut
		}
		if value >= beta {
			return beta
		}
	}

	var list movegen.List
	movegen.Generate(s.pos, &list)
	orderMoves(s.pos, &list, ttMove)

	legalMoves := 0
	bestValue := -types.ValueInf
	bestMove := ttMove

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if !s.pos.MakeMove(m) {
			continue
		}
		legalMoves++

		value := -s.negamax(-beta, -alpha, depth-1, ply+1)
		s.pos.UnmakeMove()

		if value == -timedOut {
			return timedOut
		}
		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value >= beta {
			s.table.Store(s.pos.Key(), m, depth, beta, tt.NodeCut)
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -mateScore(ply)
		}
		return types.ValueDraw
	}

	nt := tt.NodeAll
	if alpha > alphaOrig {
		nt = tt.NodePV
	}
	s.table.Store(s.pos.Key(), bestMove, depth, alpha, nt)

	return alpha
}
