package movegen

import (
	"github.com/dkern/branchwood/internal/move"
	"github.com/dkern/branchwood/internal/position"
	"github.com/dkern/branchwood/internal/types"
)

// pawnTraits factors out the one piece kind whose movement rules differ
// by color into a single parameterized table, instead of duplicating
// the pawn-move block once per side.
type pawnTraits struct {
	push              types.Direction
	captureLeft       types.Direction
	captureRight      types.Direction
	startRank         types.Rank
	promotionRank     types.Rank
}

var pawnTraitsByColor = [types.ColorLength]pawnTraits{
	types.White: {
		push:          types.North,
		captureLeft:   types.Northwest,
		captureRight:  types.Northeast,
		startRank:     types.Rank2,
		promotionRank: types.Rank8,
	},
	types.Black: {
		push:          types.South,
		captureLeft:   types.Southeast,
		captureRight:  types.Southwest,
		startRank:     types.Rank7,
		promotionRank: types.Rank1,
	},
}

func addPawnMove(list *List, from, to types.Square, capture bool, traits pawnTraits) {
	if to.RankOf() == traits.promotionRank {
		list.Add(move.NewPromotion(from, to, types.Knight, capture))
		list.Add(move.NewPromotion(from, to, types.Bishop, capture))
		list.Add(move.NewPromotion(from, to, types.Rook, capture))
		list.Add(move.NewPromotion(from, to, types.Queen, capture))
		return
	}
	if capture {
		list.Add(move.New(from, to, move.Capture))
	} else {
		list.Add(move.New(from, to, move.Quiet))
	}
}

func generatePawnMoves(p *position.Position, side types.Color, list *List) {
	traits := pawnTraitsByColor[side]
	pawn := types.MakePiece(side, types.Pawn)
	bb := p.PieceBb(pawn)
	occupied := p.OccupancyBoth()
	enemy := p.Occupancy(side.Flip())

	for bb != types.BbZero {
		from := bb.PopLsb()

		one := from.To(traits.push)
		if one.IsValid() && !occupied.Has(one) {
			addPawnMove(list, from, one, false, traits)

			if from.RankOf() == traits.startRank {
				two := one.To(traits.push)
				if two.IsValid() && !occupied.Has(two) {
					list.Add(move.New(from, two, move.DoublePawnPush))
				}
			}
		}

		if l := from.To(traits.captureLeft); l.IsValid() {
			if enemy.Has(l) {
				addPawnMove(list, from, l, true, traits)
			} else if l == p.EpSquare() {
				list.Add(move.New(from, l, move.EpCapture))
			}
		}
		if r := from.To(traits.captureRight); r.IsValid() {
			if enemy.Has(r) {
				addPawnMove(list, from, r, true, traits)
			} else if r == p.EpSquare() {
				list.Add(move.New(from, r, move.EpCapture))
			}
		}
	}
}
