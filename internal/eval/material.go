package eval

import (
	"github.com/dkern/branchwood/internal/position"
	"github.com/dkern/branchwood/internal/types"
)

// pieceValue is the material worth of each piece kind in centipawns.
var pieceValue = [types.PtLength]int{
	types.Pawn:   100,
	types.Knight: 320,
	types.Bishop: 330,
	types.Rook:   500,
	types.Queen:  900,
	types.King:   0,
}

// nonKingMaterial sums piece values of both sides, pawns included and
// kings excluded - the figure isEndgame compares against
// config.Settings.Search.EndgameMaterialThreshold to pick a phase.
func nonKingMaterial(p *position.Position) int {
	total := 0
	for pc := types.WhitePawn; pc < types.PieceNone; pc++ {
		pt := pc.TypeOf()
		if pt == types.King {
			continue
		}
		total += pieceValue[pt] * p.PieceBb(pc).PopCount()
	}
	return total
}

// materialScore sums signed material: positive contributions for white
// pieces, negative for black, including pawns (kings contribute 0).
func materialScore(p *position.Position) int {
	score := 0
	for pc := types.WhitePawn; pc < types.PieceNone; pc++ {
		count := p.PieceBb(pc).PopCount()
		if count == 0 {
			continue
		}
		v := pieceValue[pc.TypeOf()] * count
		if pc.ColorOf() == types.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}
