package movegen

import (
	"github.com/dkern/branchwood/internal/move"
	"github.com/dkern/branchwood/internal/position"
	"github.com/dkern/branchwood/internal/types"
)

type castleTemplate struct {
	right        types.CastlingRights
	kingFrom     types.Square
	kingTo       types.Square
	emptySquares [2]types.Square // squares that must be unoccupied; SqNone pads a 2-square path
	kingPath     [3]types.Square // king's starting, transit and destination squares; none may be attacked
	flag         move.Flag
}

var castleTemplates = [4]castleTemplate{
	{
		right: types.CastlingWhiteOO, kingFrom: types.SqE1, kingTo: types.SqG1,
		emptySquares: [2]types.Square{types.SqF1, types.SqG1},
		kingPath:     [3]types.Square{types.SqE1, types.SqF1, types.SqG1},
		flag:         move.CastleKingside,
	},
	{
		right: types.CastlingWhiteOOO, kingFrom: types.SqE1, kingTo: types.SqC1,
		emptySquares: [2]types.Square{types.SqD1, types.SqC1},
		kingPath:     [3]types.Square{types.SqE1, types.SqD1, types.SqC1},
		flag:         move.CastleQueenside,
	},
	{
		right: types.CastlingBlackOO, kingFrom: types.SqE8, kingTo: types.SqG8,
		emptySquares: [2]types.Square{types.SqF8, types.SqG8},
		kingPath:     [3]types.Square{types.SqE8, types.SqF8, types.SqG8},
		flag:         move.CastleKingside,
	},
	{
		right: types.CastlingBlackOOO, kingFrom: types.SqE8, kingTo: types.SqC8,
		emptySquares: [2]types.Square{types.SqD8, types.SqC8},
		kingPath:     [3]types.Square{types.SqE8, types.SqD8, types.SqC8},
		flag:         move.CastleQueenside,
	},
}

// b1/b8 must be empty for the queenside castle even though the king
// never transits it; tracked separately since it doesn't need an
// attack check.
var queensideRookPathExtra = map[types.Square]types.Square{
	types.SqC1: types.SqB1,
	types.SqC8: types.SqB8,
}

func generateCastlingMoves(p *position.Position, side types.Color, list *List) {
	occupied := p.OccupancyBoth()
	enemy := side.Flip()

	lo, hi := 0, 2
	if side == types.Black {
		lo, hi = 2, 4
	}
	for _, tmpl := range castleTemplates[lo:hi] {
		if !p.Castling().Has(tmpl.right) {
			continue
		}
		if occupied.Has(tmpl.emptySquares[0]) || occupied.Has(tmpl.emptySquares[1]) {
			continue
		}
		if extra, ok := queensideRookPathExtra[tmpl.kingTo]; ok && occupied.Has(extra) {
			continue
		}
		attacked := false
		for _, sq := range tmpl.kingPath {
			if p.IsAttacked(sq, enemy) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		list.Add(move.New(tmpl.kingFrom, tmpl.kingTo, tmpl.flag))
	}
}
