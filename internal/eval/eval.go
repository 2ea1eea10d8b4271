// Package eval implements static position evaluation: material,
// mobility, phase-switched piece-square tables and an endgame
// king-tropism term, summed from white's perspective and then
// sign-flipped for the side to move.
package eval

import (
	"github.com/dkern/branchwood/internal/attacks"
	"github.com/dkern/branchwood/internal/config"
	"github.com/dkern/branchwood/internal/position"
	"github.com/dkern/branchwood/internal/types"
)

// Evaluate returns a score from the side-to-move's perspective: the sum
// of material, mobility, piece-square and (endgame only) king-tropism
// contributions, computed from white's perspective and negated when
// black is to move.
func Evaluate(p *position.Position) int {
	score := materialScore(p) + mobilityScore(p) + psqtScore(p) + kingTropismScore(p)
	if p.SideToMove() == types.Black {
		return -score
	}
	return score
}

func isEndgame(p *position.Position) bool {
	return nonKingMaterial(p) < config.Settings.Search.EndgameMaterialThreshold
}

// IsEndgame reports whether p has fallen below the non-king material
// threshold that switches piece-square evaluation to its endgame table
// and disables null-move pruning.
func IsEndgame(p *position.Position) bool {
	return isEndgame(p)
}

func psqtScore(p *position.Position) int {
	mg := !isEndgame(p)
	score := 0
	for pc := types.WhitePawn; pc < types.PieceNone; pc++ {
		bb := p.PieceBb(pc)
		pt := pc.TypeOf()
		c := pc.ColorOf()
		for bb != types.BbZero {
			sq := bb.PopLsb()
			v := psqt(pt, c, sq, mg)
			if c == types.White {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}

// mobilityScore counts, per piece, the number of squares it pseudo-
// legally attacks or pushes to, minus its own occupancy. Pawns count a
// single push plus captures of enemy pieces; a pawn of either color that
// attacks the en-passant square counts it as one more, since that square
// is empty and so not part of the enemy occupancy.
func mobilityScore(p *position.Position) int {
	score := 0
	occupied := p.OccupancyBoth()

	for c := types.White; c < types.ColorNone; c++ {
		own := p.Occupancy(c)
		side := 1
		if c == types.Black {
			side = -1
		}

		for _, pt := range []types.PieceType{types.Knight, types.Bishop, types.Rook, types.Queen, types.King} {
			bb := p.PieceBb(types.MakePiece(c, pt))
			for bb != types.BbZero {
				sq := bb.PopLsb()
				targets := attacks.Of(pt, sq, occupied) &^ own
				score += side * targets.PopCount()
			}
		}

		score += side * pawnMobility(p, c, occupied)
	}
	return score
}

var pawnPushDirection = [types.ColorLength]types.Direction{
	types.White: types.North,
	types.Black: types.South,
}

// kingTropismScore rewards, in the endgame only, the side with a
// material edge for keeping its king close to the opponent's - the
// basic driving force behind actually converting a won endgame rather
// than shuffling pieces. Silent outside the endgame phase.
func kingTropismScore(p *position.Position) int {
	if !isEndgame(p) {
		return 0
	}
	material := materialScore(p)
	if material == 0 {
		return 0
	}

	distance := types.SquareDistance(p.KingSquare(types.White), p.KingSquare(types.Black))
	closeness := (7 - distance) * kingTropismWeight
	if material > 0 {
		return closeness
	}
	return -closeness
}

const kingTropismWeight = 4

func pawnMobility(p *position.Position, c types.Color, occupied types.Bitboard) int {
	push := pawnPushDirection[c]
	enemy := p.Occupancy(c.Flip())
	bb := p.PieceBb(types.MakePiece(c, types.Pawn))
	count := 0
	for bb != types.BbZero {
		from := bb.PopLsb()
		if one := from.To(push); one.IsValid() && !occupied.Has(one) {
			count++
		}
		count += (attacks.PawnAttacks(c, from) & enemy).PopCount()
		if p.EpSquare() != types.SqNone && attacks.PawnAttacks(c, from).Has(p.EpSquare()) {
			count++
		}
	}
	return count
}
