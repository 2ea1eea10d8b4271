package movegen

import (
	"github.com/dkern/branchwood/internal/position"
	"github.com/dkern/branchwood/internal/types"
)

// Generate emits every pseudo-legal move for the side to move: piece
// movement rules are obeyed and the destination never lands on a piece
// of the same side, but a move may still leave the mover's own king in
// check - that is filtered by Position.MakeMove, not here.
func Generate(p *position.Position, list *List) {
	side := p.SideToMove()

	generatePawnMoves(p, side, list)
	generatePieceMoves(p, side, types.Knight, list)
	generatePieceMoves(p, side, types.Bishop, list)
	generatePieceMoves(p, side, types.Rook, list)
	generatePieceMoves(p, side, types.Queen, list)
	generatePieceMoves(p, side, types.King, list)
	generateCastlingMoves(p, side, list)
}

// GenerateCaptures emits only captures and promotions, the subset
// quiescence search considers.
func GenerateCaptures(p *position.Position, list *List) {
	var all List
	Generate(p, &all)
	for _, m := range all.Slice() {
		if m.IsCapture() || m.IsPromotion() {
			list.Add(m)
		}
	}
}
