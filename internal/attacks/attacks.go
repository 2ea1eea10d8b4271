// Package attacks precomputes and serves piece attack bitboards: fixed
// leaper tables for pawns, knights and kings, and fancy-magic indexed
// tables for the sliding pieces (bishop, rook, queen).
package attacks

import (
	"sync"

	"github.com/dkern/branchwood/internal/types"
)

var initOnce sync.Once

// Init builds the leaper and magic attack tables. It is idempotent and
// safe to call from multiple Engines; the first call does the work, any
// later call is a no-op. Package-level init also calls it, so standalone
// use of this package (tests, other packages) never needs to call Init
// itself.
func Init() {
	initOnce.Do(func() {
		initLeapers()
		initMagics()
	})
}

func init() {
	Init()
}

// Of returns the attack bitboard of a piece of kind pt standing on sq,
// given the board's combined occupancy. Pawns need their color and are
// not handled here - callers use PawnAttacks directly.
func Of(pt types.PieceType, sq types.Square, occupied types.Bitboard) types.Bitboard {
	switch pt {
	case types.Knight:
		return KnightAttacks(sq)
	case types.Bishop:
		return BishopAttacks(sq, occupied)
	case types.Rook:
		return RookAttacks(sq, occupied)
	case types.Queen:
		return QueenAttacks(sq, occupied)
	case types.King:
		return KingAttacks(sq)
	default:
		return types.BbZero
	}
}

// IsSquareAttacked reports whether sq is attacked by any piece of
// attacker's side, given the board's piece bitboards and combined
// occupancy. Pawn attacks are checked by reversing direction: sq is
// attacked by a pawn of attacker's color iff a pawn of attacker's color
// standing on one of sq's pawn-attack squares would attack back to sq,
// which is exactly PawnAttacks(attacker.Flip(), sq).
func IsSquareAttacked(
	sq types.Square,
	attacker types.Color,
	occupied types.Bitboard,
	pawns, knights, bishops, rooks, queens, kings types.Bitboard,
) bool {
	if PawnAttacks(attacker.Flip(), sq)&pawns != 0 {
		return true
	}
	if KnightAttacks(sq)&knights != 0 {
		return true
	}
	if KingAttacks(sq)&kings != 0 {
		return true
	}
	sliders := bishops | queens
	if BishopAttacks(sq, occupied)&sliders != 0 {
		return true
	}
	sliders = rooks | queens
	if RookAttacks(sq, occupied)&sliders != 0 {
		return true
	}
	return false
}
