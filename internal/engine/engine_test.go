package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkern/branchwood/internal/position"
	"github.com/dkern/branchwood/internal/types"
)

func TestNewStartsAtStandardPosition(t *testing.T) {
	e := New()
	assert.Equal(t, uint64(20), e.Perft(1))
}

func TestSetPositionRejectsMalformedFEN(t *testing.T) {
	e := New()
	err := e.SetPosition("not a fen")
	assert.Error(t, err)
	// position is left untouched
	assert.Equal(t, uint64(20), e.Perft(1))
}

func TestSetPositionClearsTranspositionTable(t *testing.T) {
	e := New()
	e.Go(50)
	assert.NoError(t, e.SetPosition(position.StartFEN))
	assert.Equal(t, 0, e.table.Hashfull())
}

func TestOutcomeReportsStalemate(t *testing.T) {
	e := New()
	assert.NoError(t, e.SetPosition("k7/8/1QK5/8/8/8/8/8 b - - 0 1"))

	over, reason := e.Outcome()
	assert.True(t, over)
	assert.Equal(t, "stalemate", reason)
}

func TestOutcomeReportsOngoingGame(t *testing.T) {
	e := New()
	over, _ := e.Outcome()
	assert.False(t, over)
}

func TestLegalMovesFromStartingPositionCountsTwenty(t *testing.T) {
	e := New()
	assert.Len(t, e.LegalMoves(), 20)
}

func TestPlayAppliesLegalMove(t *testing.T) {
	e := New()
	moves := e.LegalMoves()
	assert.NotEmpty(t, moves)
	assert.NoError(t, e.Play(moves[0].UCI()))
	assert.Equal(t, uint64(20), e.Perft(1))
}

func TestPlayNullMoveIsNoOp(t *testing.T) {
	e := New()
	assert.NoError(t, e.Play("0000"))
	assert.Equal(t, uint64(20), e.Perft(1))
}

func TestPlayPromotionMove(t *testing.T) {
	e := New()
	assert.NoError(t, e.SetPosition("4k3/P7/8/8/8/8/8/4K3 w - - 0 1"))
	assert.NoError(t, e.Play("a7a8q"))
	assert.Equal(t, types.WhiteQueen, e.Position().PieceOn(types.SqA8))
}

func TestPlayRejectsMalformedMoveText(t *testing.T) {
	e := New()
	assert.Error(t, e.Play("zz"))
	assert.Error(t, e.Play("e2e9"))
	assert.Error(t, e.Play("e2e4x"))
}

func TestPlayRejectsWellFormedButIllegalMove(t *testing.T) {
	e := New()
	assert.Error(t, e.Play("e2e5"))
	assert.Equal(t, uint64(20), e.Perft(1))
}
