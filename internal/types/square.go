package types

import (
	"fmt"

	"github.com/dkern/branchwood/internal/util"
)

// Square identifies one of the 64 board squares. Numbering runs
// a8=0, b8=1, ..., h8=7, a7=8, ..., h1=63, matching the row-major layout
// used when printing a board from rank 8 down to rank 1. SqNone (64) is
// the "no square" sentinel (e.g. an absent en-passant target).
type Square uint8

const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone // 64
	SqLength = int(SqNone)
)

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// row is the square's position counting down from the top (rank 8) of
// the printed board: row 0 is rank 8, row 7 is rank 1.
func (sq Square) row() uint8 {
	return uint8(sq / 8)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(7 - sq.row())
}

// SquareOf returns the square for the given file and rank, or SqNone if
// either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	row := 7 - uint8(r)
	return Square(row*8 + uint8(f))
}

// MakeSquare parses a two character algebraic square (e.g. "e4") and
// returns SqNone if s does not describe a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// To returns the square one step in the given direction, or SqNone if
// that step would leave the board (including wrapping across a file edge).
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		return sqTo[sq][0]
	case East:
		return sqTo[sq][1]
	case South:
		return sqTo[sq][2]
	case West:
		return sqTo[sq][3]
	case Northeast:
		return sqTo[sq][4]
	case Southeast:
		return sqTo[sq][5]
	case Southwest:
		return sqTo[sq][6]
	case Northwest:
		return sqTo[sq][7]
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// String returns the algebraic square name (e.g. "e4"), or "-" if sq is
// not a valid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// SquareDistance returns the Chebyshev distance between two squares -
// the number of king steps needed to go from one to the other.
func SquareDistance(a, b Square) int {
	df := util.Abs(int(a.FileOf()) - int(b.FileOf()))
	dr := util.Abs(int(a.RankOf()) - int(b.RankOf()))
	return util.Max(df, dr)
}

var sqTo [SqLength][8]Square

func init() {
	for sq := SqA8; sq < SqNone; sq++ {
		for i, d := range Directions {
			sqTo[sq][i] = sq.stepPrecompute(d)
		}
	}
}

func (sq Square) stepPrecompute(d Direction) Square {
	f := sq.FileOf()
	switch d {
	case North, South:
		// no file change possible
	case East, Northeast, Southeast:
		if f >= FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if f <= FileA {
			return SqNone
		}
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	res := int(sq) + int(d)
	if res < 0 || res >= SqLength {
		return SqNone
	}
	return Square(res)
}
