package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkern/branchwood/internal/types"
)

func TestTableEntriesAreDistinctEnough(t *testing.T) {
	seen := make(map[Key]bool, tableSize)
	dupes := 0
	for _, k := range table {
		if seen[k] {
			dupes++
		}
		seen[k] = true
	}
	assert.Less(t, dupes, 3)
}

func TestSideWordOnlyAffectsBlack(t *testing.T) {
	var pieces [types.SqLength]types.Piece
	for i := range pieces {
		pieces[i] = types.PieceNone
	}
	white := HashOf(HashOfState{Pieces: pieces, SideToMove: types.White, Castling: types.CastlingNone, EpSquare: types.SqNone})
	black := HashOf(HashOfState{Pieces: pieces, SideToMove: types.Black, Castling: types.CastlingNone, EpSquare: types.SqNone})
	assert.Equal(t, white^Side(), black)
}

func TestCastlingWordVariesByMask(t *testing.T) {
	assert.NotEqual(t, Castling(types.CastlingNone), Castling(types.CastlingAny))
}

func TestEpFileWordVariesByFile(t *testing.T) {
	assert.NotEqual(t, EpFile(types.FileA), EpFile(types.FileH))
}

func TestHashOfIncludesPieces(t *testing.T) {
	var empty, withPawn [types.SqLength]types.Piece
	for i := range empty {
		empty[i] = types.PieceNone
		withPawn[i] = types.PieceNone
	}
	withPawn[types.SqE4] = types.WhitePawn

	h1 := HashOf(HashOfState{Pieces: empty, SideToMove: types.White, Castling: types.CastlingNone, EpSquare: types.SqNone})
	h2 := HashOf(HashOfState{Pieces: withPawn, SideToMove: types.White, Castling: types.CastlingNone, EpSquare: types.SqNone})
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, h1^PieceSquare(types.WhitePawn, types.SqE4), h2)
}
