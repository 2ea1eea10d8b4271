package movegen

import (
	"github.com/dkern/branchwood/internal/attacks"
	"github.com/dkern/branchwood/internal/move"
	"github.com/dkern/branchwood/internal/position"
	"github.com/dkern/branchwood/internal/types"
)

// generatePieceMoves handles knights, bishops, rooks, queens and kings
// uniformly: iterate set bits of the piece bitboard, compute the attack
// set (leaper or magic query), subtract own occupancy, split the
// remainder into captures and quiet moves.
func generatePieceMoves(p *position.Position, side types.Color, pt types.PieceType, list *List) {
	pc := types.MakePiece(side, pt)
	bb := p.PieceBb(pc)
	occupied := p.OccupancyBoth()
	own := p.Occupancy(side)
	enemy := p.Occupancy(side.Flip())

	for bb != types.BbZero {
		from := bb.PopLsb()
		targets := attacks.Of(pt, from, occupied) &^ own

		quiet := targets &^ enemy
		for quiet != types.BbZero {
			to := quiet.PopLsb()
			list.Add(move.New(from, to, move.Quiet))
		}

		captures := targets & enemy
		for captures != types.BbZero {
			to := captures.PopLsb()
			list.Add(move.New(from, to, move.Capture))
		}
	}
}
