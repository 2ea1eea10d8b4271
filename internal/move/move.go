// Package move implements the 16-bit encoded chess move and the
// MVV/LVA capture-ordering table used by the move generator and search.
package move

import (
	"strings"

	"github.com/dkern/branchwood/internal/types"
)

// Flag is the closed set of sixteen move classes the 4-bit flag field of
// a Move can hold. Two values (6, 7) are reserved - the generator never
// emits them - kept only so the bit width is accounted for.
type Flag uint16

const (
	Quiet Flag = iota
	DoublePawnPush
	CastleKingside
	CastleQueenside
	Capture
	EpCapture
	reserved6
	reserved7
	PromoKnight
	PromoBishop
	PromoRook
	PromoQueen
	PromoKnightCapture
	PromoBishopCapture
	PromoRookCapture
	PromoQueenCapture
)

// IsCapture reports whether this flag removes an enemy piece (bit 14).
func (f Flag) IsCapture() bool {
	return f&0b0100 != 0
}

// IsPromotion reports whether this flag promotes a pawn (bit 15).
func (f Flag) IsPromotion() bool {
	return f&0b1000 != 0
}

// IsCastle reports whether this flag is kingside or queenside castling.
func (f Flag) IsCastle() bool {
	return f == CastleKingside || f == CastleQueenside
}

// PromotionPieceType returns the piece a pawn promotes to for this flag.
// Only meaningful when IsPromotion is true.
func (f Flag) PromotionPieceType() types.PieceType {
	switch f &^ Capture {
	case PromoKnight:
		return types.Knight
	case PromoBishop:
		return types.Bishop
	case PromoRook:
		return types.Rook
	case PromoQueen:
		return types.Queen
	default:
		return types.PtNone
	}
}

// promoFlagByPieceType maps a promotion piece kind to its promotion flag,
// with the capture bit set when capture is true. Any other kind maps to a
// queen promotion.
func promoFlagByPieceType(pt types.PieceType, capture bool) Flag {
	var f Flag
	switch pt {
	case types.Knight:
		f = PromoKnight
	case types.Bishop:
		f = PromoBishop
	case types.Rook:
		f = PromoRook
	case types.Queen:
		f = PromoQueen
	default:
		f = PromoQueen
	}
	if capture {
		f |= Capture
	}
	return f
}

// Move is a 16-bit encoded chess move:
//
//	bits 0-5:   from square
//	bits 6-11:  to square
//	bits 12-15: flag (see Flag), ordered [promo, capture, special2, special1]
type Move uint16

// MoveNone is the null move, conveyed as "0000" at the UCI boundary.
const MoveNone Move = 0

const (
	fromMask Move = 0x3F
	toShift       = 6
	toMask  Move = 0x3F << toShift
	flagShift     = 12
)

// New encodes a quiet, capture, double-push, ep-capture or castle move.
func New(from, to types.Square, f Flag) Move {
	return Move(from) | Move(to)<<toShift | Move(f)<<flagShift
}

// NewPromotion encodes a promotion move to the given piece type.
func NewPromotion(from, to types.Square, promo types.PieceType, capture bool) Move {
	return New(from, to, promoFlagByPieceType(promo, capture))
}

// From returns the origin square.
func (m Move) From() types.Square {
	return types.Square(m & fromMask)
}

// To returns the destination square.
func (m Move) To() types.Square {
	return types.Square((m & toMask) >> toShift)
}

// FlagOf returns the move's flag.
func (m Move) FlagOf() Flag {
	return Flag(m >> flagShift)
}

// IsCapture reports whether this move removes an enemy piece (including en passant).
func (m Move) IsCapture() bool {
	return m.FlagOf().IsCapture()
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.FlagOf().IsPromotion()
}

// IsEpCapture reports whether this move is an en-passant capture.
func (m Move) IsEpCapture() bool {
	return m.FlagOf() == EpCapture
}

// IsDoublePawnPush reports whether this move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.FlagOf() == DoublePawnPush
}

// IsCastle reports whether this move castles.
func (m Move) IsCastle() bool {
	return m.FlagOf().IsCastle()
}

// PromotionPieceType returns the promoted-to piece kind; only meaningful
// when IsPromotion is true.
func (m Move) PromotionPieceType() types.PieceType {
	return m.FlagOf().PromotionPieceType()
}

// UCI renders the move the way the (out-of-scope) UCI driver expects:
// four square characters plus an optional promotion letter, e.g. "e7e8q".
// MoveNone renders as "0000".
func (m Move) UCI() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteString(m.PromotionPieceType().Char())
	}
	return b.String()
}

// String is an alias for UCI, used by logging and debug output.
func (m Move) String() string {
	return m.UCI()
}
