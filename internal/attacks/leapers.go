package attacks

import "github.com/dkern/branchwood/internal/types"

var (
	pawnAttacks   [types.ColorLength][types.SqLength]types.Bitboard
	knightAttacks [types.SqLength]types.Bitboard
	kingAttacks   [types.SqLength]types.Bitboard
)

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func initLeapers() {
	for sq := types.SqA8; sq < types.SqNone; sq++ {
		var wp, bp types.Bitboard
		if t := sq.To(types.Northeast); t.IsValid() {
			wp.PushSquare(t)
		}
		if t := sq.To(types.Northwest); t.IsValid() {
			wp.PushSquare(t)
		}
		if t := sq.To(types.Southeast); t.IsValid() {
			bp.PushSquare(t)
		}
		if t := sq.To(types.Southwest); t.IsValid() {
			bp.PushSquare(t)
		}
		pawnAttacks[types.White][sq] = wp
		pawnAttacks[types.Black][sq] = bp

		knightAttacks[sq] = leaperAttacks(sq, knightOffsets)
		kingAttacks[sq] = leaperAttacks(sq, kingOffsets)
	}
}

func leaperAttacks(sq types.Square, offsets [8][2]int) types.Bitboard {
	file := int(sq.FileOf())
	row := int(sq) / 8
	var bb types.Bitboard
	for _, o := range offsets {
		nf := file + o[0]
		nr := row + o[1]
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		bb.PushSquare(types.Square(nr*8 + nf))
	}
	return bb
}

// PawnAttacks returns the squares a pawn of the given color on sq attacks.
func PawnAttacks(c types.Color, sq types.Square) types.Bitboard {
	return pawnAttacks[c][sq]
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq types.Square) types.Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the squares a king on sq attacks (one step, no castling).
func KingAttacks(sq types.Square) types.Bitboard {
	return kingAttacks[sq]
}
