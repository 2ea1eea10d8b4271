package search

import (
	"github.com/dkern/branchwood/internal/config"
	"github.com/dkern/branchwood/internal/move"
	"github.com/dkern/branchwood/internal/movegen"
	"github.com/dkern/branchwood/internal/position"
	"github.com/dkern/branchwood/internal/types"
)

// ttMoveBonus outranks every MVV/LVA score so a transposition hit's
// best move is always tried first.
const ttMoveBonus = 1 << 20

func moveScore(p *position.Position, m move.Move, ttMove move.Move) int {
	if ttMove != move.MoveNone && m == ttMove {
		return ttMoveBonus
	}
	if !m.IsCapture() || !config.Settings.Search.UseMvvLva {
		return 0
	}
	attacker := p.PieceOn(m.From()).TypeOf()
	var victim types.PieceType
	if m.IsEpCapture() {
		victim = types.Pawn
	} else {
		victim = p.PieceOn(m.To()).TypeOf()
	}
	return move.MvvLvaScore(attacker, victim)
}

// orderMoves sorts list in place, highest score first: a transposition
// table move first, then captures by MVV/LVA, quiet moves last in
// generation order.
func orderMoves(p *position.Position, list *movegen.List, ttMove move.Move) {
	n := list.Len()
	scores := make([]int, n)
	for i := 0; i < n; i++ {
		scores[i] = moveScore(p, list.At(i), ttMove)
	}
	// Insertion sort: move lists are short enough (≤ a few dozen in
	// practice) that this beats the constant overhead of sort.Slice.
	for i := 1; i < n; i++ {
		j := i
		for j > 0 && scores[j-1] < scores[j] {
			scores[j-1], scores[j] = scores[j], scores[j-1]
			list.Swap(j-1, j)
			j--
		}
	}
}
