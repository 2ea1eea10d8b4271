// Package zobrist builds and serves the 793-entry pseudo-random key
// table used to fingerprint position state: 768 piece/square words, one
// side-to-move word, 16 castling-rights words and 8 en-passant-file
// words.
package zobrist

import (
	"math/rand"
	"sync"

	"github.com/dkern/branchwood/internal/types"
)

// Key is a 64-bit position fingerprint.
type Key uint64

const (
	pieceSquareCount = int(types.PieceLength) * int(types.SqLength) // 768
	sideIndex        = pieceSquareCount                             // 768
	castlingBase     = sideIndex + 1                                // 769
	castlingCount    = 16
	epBase           = castlingBase + castlingCount // 785
	epCount          = 8
	tableSize        = epBase + epCount // 793
)

var table [tableSize]Key

// seed is fixed so the key table - and therefore every hash derived
// from it - is reproducible across runs and across machines.
var seed uint64 = 0x9E3779B97F4A7C15

var initOnce sync.Once

// Init fills the key table from the fixed seed. It is idempotent and
// safe to call from multiple Engines. Package-level init also calls it,
// so standalone use of this package never needs to call Init itself.
func Init() {
	initOnce.Do(func() {
		rng := rand.New(rand.NewSource(int64(seed)))
		for i := range table {
			table[i] = Key(rng.Uint64())
		}
	})
}

func init() {
	Init()
}

// PieceSquare returns the word for a piece standing on sq.
func PieceSquare(p types.Piece, sq types.Square) Key {
	return table[int(p)*int(types.SqLength)+int(sq)]
}

// Side returns the side-to-move word, XORed in whenever black is to move.
func Side() Key {
	return table[sideIndex]
}

// Castling returns the word for a given 4-bit castling-rights mask.
func Castling(rights types.CastlingRights) Key {
	return table[castlingBase+int(rights)]
}

// EpFile returns the word for an en-passant target on the given file.
func EpFile(f types.File) Key {
	return table[epBase+int(f)]
}

// HashOfState describes the minimum a caller must supply to compute a
// from-scratch hash; internal/position builds this from its own fields
// without importing position-specific types here.
type HashOfState struct {
	Pieces        [types.SqLength]types.Piece
	SideToMove    types.Color
	Castling      types.CastlingRights
	EpSquare      types.Square
}

// HashOf computes the full Zobrist key for a position from scratch. Used
// at set_position time and as a correctness cross-check against the
// incrementally maintained key.
func HashOf(s HashOfState) Key {
	var k Key
	for sq := types.SqA8; sq < types.SqNone; sq++ {
		p := s.Pieces[sq]
		if p != types.PieceNone {
			k ^= PieceSquare(p, sq)
		}
	}
	if s.SideToMove == types.Black {
		k ^= Side()
	}
	k ^= Castling(s.Castling)
	if s.EpSquare != types.SqNone {
		k ^= EpFile(s.EpSquare.FileOf())
	}
	return k
}
