package move

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkern/branchwood/internal/types"
)

func TestMvvLvaVictimDominates(t *testing.T) {
	// Capturing a queen with a pawn outranks capturing a pawn with a queen.
	pawnTakesQueen := MvvLvaScore(types.Pawn, types.Queen)
	queenTakesPawn := MvvLvaScore(types.Queen, types.Pawn)
	assert.Greater(t, pawnTakesQueen, queenTakesPawn)
}

func TestMvvLvaAttackerBreaksTies(t *testing.T) {
	pawnTakesRook := MvvLvaScore(types.Pawn, types.Rook)
	queenTakesRook := MvvLvaScore(types.Queen, types.Rook)
	assert.Greater(t, pawnTakesRook, queenTakesRook)
}
