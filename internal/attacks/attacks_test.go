package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkern/branchwood/internal/types"
)

func TestKnightAttacksCorner(t *testing.T) {
	bb := KnightAttacks(types.SqA8)
	assert.Equal(t, 2, bb.PopCount())
	assert.True(t, bb.Has(types.SqC7))
	assert.True(t, bb.Has(types.SqB6))
}

func TestKingAttacksCenter(t *testing.T) {
	bb := KingAttacks(types.SqE4)
	assert.Equal(t, 8, bb.PopCount())
}

func TestPawnAttacksDirectionsDiffer(t *testing.T) {
	white := PawnAttacks(types.White, types.SqE4)
	black := PawnAttacks(types.Black, types.SqE4)
	assert.True(t, white.Has(types.SqD5))
	assert.True(t, white.Has(types.SqF5))
	assert.True(t, black.Has(types.SqD3))
	assert.True(t, black.Has(types.SqF3))
}

func TestRookAttacksEmptyBoard(t *testing.T) {
	bb := RookAttacks(types.SqD4, types.BbZero)
	assert.Equal(t, 14, bb.PopCount())
	assert.True(t, bb.Has(types.SqD1))
	assert.True(t, bb.Has(types.SqD8))
	assert.True(t, bb.Has(types.SqA4))
	assert.True(t, bb.Has(types.SqH4))
}

func TestRookAttacksBlocked(t *testing.T) {
	var occ types.Bitboard
	occ.PushSquare(types.SqD6)
	bb := RookAttacks(types.SqD4, occ)
	assert.True(t, bb.Has(types.SqD5))
	assert.True(t, bb.Has(types.SqD6))
	assert.False(t, bb.Has(types.SqD7))
	assert.False(t, bb.Has(types.SqD8))
}

func TestBishopAttacksEmptyBoard(t *testing.T) {
	bb := BishopAttacks(types.SqD4, types.BbZero)
	assert.Equal(t, 13, bb.PopCount())
	assert.True(t, bb.Has(types.SqA1))
	assert.True(t, bb.Has(types.SqG7))
}

func TestQueenAttacksCombinesBoth(t *testing.T) {
	bb := QueenAttacks(types.SqD4, types.BbZero)
	assert.Equal(t, RookAttacks(types.SqD4, types.BbZero)|BishopAttacks(types.SqD4, types.BbZero), bb)
}

func TestIsSquareAttackedByKnight(t *testing.T) {
	var knights types.Bitboard
	knights.PushSquare(types.SqF3)
	attacked := IsSquareAttacked(types.SqE5, types.White, knights, types.BbZero, knights, types.BbZero, types.BbZero, types.BbZero, types.BbZero)
	assert.True(t, attacked)
}

func TestIsSquareAttackedByPawn(t *testing.T) {
	var pawns types.Bitboard
	pawns.PushSquare(types.SqD2)
	attacked := IsSquareAttacked(types.SqE3, types.White, pawns, pawns, types.BbZero, types.BbZero, types.BbZero, types.BbZero, types.BbZero)
	assert.True(t, attacked)
	notAttacked := IsSquareAttacked(types.SqE3, types.Black, pawns, pawns, types.BbZero, types.BbZero, types.BbZero, types.BbZero, types.BbZero)
	assert.False(t, notAttacked)
}

func TestIsSquareAttackedBySlider(t *testing.T) {
	var rooks types.Bitboard
	rooks.PushSquare(types.SqA4)
	occ := rooks
	attacked := IsSquareAttacked(types.SqH4, types.White, occ, types.BbZero, types.BbZero, types.BbZero, rooks, types.BbZero, types.BbZero)
	assert.True(t, attacked)
}
