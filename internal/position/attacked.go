package position

import (
	"github.com/dkern/branchwood/internal/attacks"
	"github.com/dkern/branchwood/internal/types"
)

// sqAttacked answers 4.C's is_square_attacked query against this
// position's own piece bitboards and combined occupancy.
func sqAttacked(p *Position, sq types.Square, side types.Color) bool {
	return attacks.IsSquareAttacked(
		sq, side, p.occupancy[occBoth],
		p.pieceBb[types.MakePiece(side, types.Pawn)],
		p.pieceBb[types.MakePiece(side, types.Knight)],
		p.pieceBb[types.MakePiece(side, types.Bishop)],
		p.pieceBb[types.MakePiece(side, types.Rook)],
		p.pieceBb[types.MakePiece(side, types.Queen)],
		p.pieceBb[types.MakePiece(side, types.King)],
	)
}
