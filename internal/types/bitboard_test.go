package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPushPopHas(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.Equal(t, 1, b.PopCount())
	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
	assert.Equal(t, 0, b.PopCount())
}

func TestBitboardLsbPopLsb(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqH1)
	b.PushSquare(SqA8)
	assert.Equal(t, SqA8, b.Lsb())
	assert.Equal(t, SqA8, b.PopLsb())
	assert.Equal(t, SqH1, b.Lsb())
	assert.Equal(t, 1, b.PopCount())
}

func TestBitboardEmptyLsb(t *testing.T) {
	var b Bitboard
	assert.Equal(t, SqNone, b.Lsb())
	assert.Equal(t, SqNone, b.PopLsb())
}

func TestFileAndRankBb(t *testing.T) {
	assert.Equal(t, 8, FileBb(FileA).PopCount())
	assert.Equal(t, 8, RankBb(Rank1).PopCount())
	assert.True(t, FileBb(FileE).Has(SqE4))
	assert.True(t, RankBb(Rank1).Has(SqE1))
	assert.False(t, RankBb(Rank1).Has(SqE2))
}
