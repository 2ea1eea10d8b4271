package types

import "strings"

// PieceType is a piece kind independent of color.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
	PtLength = int(PtNone)
)

// IsValid reports whether pt is one of Pawn..King.
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}

const ptLabels = "pnbrqk"

// Char returns the lowercase FEN letter for the piece type.
func (pt PieceType) Char() string {
	if !pt.IsValid() {
		return "-"
	}
	return string(ptLabels[pt])
}

// PieceTypeFromChar parses a lowercase promotion letter (e.g. "q" from
// UCI move text like "e7e8q"), returning PtNone if s is not one of the
// four promotable piece letters.
func PieceTypeFromChar(s string) PieceType {
	if len(s) != 1 {
		return PtNone
	}
	switch s[0] {
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	default:
		return PtNone
	}
}

// Piece is one of the twelve colored pieces, or PieceNone.
// Encoded as color*6 + pieceType so ColorOf/TypeOf are cheap.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceNone
	PieceLength = int(PieceNone)
)

// MakePiece returns the piece of the given color and kind.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*PtLength + int(pt))
}

// ColorOf returns the piece's color. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p / 6)
}

// TypeOf returns the piece's kind. Undefined for PieceNone.
func (p Piece) TypeOf() PieceType {
	return PieceType(p % 6)
}

// IsValid reports whether p is one of the twelve real pieces.
func (p Piece) IsValid() bool {
	return p < PieceNone
}

const pieceChars = "PNBRQKpnbrqk-"

// Char returns the FEN letter for the piece (uppercase for White), or
// "-" for PieceNone.
func (p Piece) Char() string {
	return string(pieceChars[p])
}

// String is an alias for Char.
func (p Piece) String() string {
	return p.Char()
}

// PieceFromChar parses a single FEN piece letter, returning PieceNone if
// s does not hold exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := strings.IndexByte(pieceChars, s[0])
	if idx < 0 || idx >= PieceLength {
		return PieceNone
	}
	return Piece(idx)
}
