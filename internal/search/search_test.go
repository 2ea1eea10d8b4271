package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dkern/branchwood/internal/move"
	"github.com/dkern/branchwood/internal/position"
	"github.com/dkern/branchwood/internal/tt"
	"github.com/dkern/branchwood/internal/types"
)

func farFuture() time.Time {
	return time.Now().Add(time.Hour)
}

func TestGoReturnsLegalMoveFromStartingPosition(t *testing.T) {
	p := position.New()
	s := New(p, tt.New(1))

	result := s.Go(100)

	assert.NotEqual(t, move.MoveNone, result.BestMove)
	assert.GreaterOrEqual(t, result.Depth, 1)
}

func TestGoFindsMateInOne(t *testing.T) {
	// Black king penned on the back rank by its own pawns; Ra1-a8 is a
	// back-rank mate in one.
	var p position.Position
	assert.NoError(t, p.SetFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"))

	s := New(&p, tt.New(1))
	result := s.Go(500)

	assert.True(t, result.Value.IsMate())
}

func TestGoHandlesPositionWithNoLegalMoveGracefully(t *testing.T) {
	// Stalemate: black king on a8 has no legal move and is not in check.
	var p position.Position
	assert.NoError(t, p.SetFEN("k7/8/1QK5/8/8/8/8/8 b - - 0 1"))

	s := New(&p, tt.New(1))
	result := s.Go(100)

	assert.Equal(t, types.ValueDraw, result.Value)
}

func TestFixedDepthSearchIsDeterministic(t *testing.T) {
	// Run the same depth twice, each against its own fresh table and
	// a deadline far in the future, so the result depends only on
	// position, depth, evaluation and ordering - never wall-clock
	// timing.
	p1 := position.New()
	p2 := position.New()

	s1 := New(p1, tt.New(1))
	s1.deadline = farFuture()
	value1, move1, completed1 := s1.searchRoot(3)

	s2 := New(p2, tt.New(1))
	s2.deadline = farFuture()
	value2, move2, completed2 := s2.searchRoot(3)

	assert.True(t, completed1)
	assert.True(t, completed2)
	assert.Equal(t, move1, move2)
	assert.Equal(t, value1, value2)
}

func TestShallowerMateScoresHigherThanDeeperMate(t *testing.T) {
	closeMate := mateScore(1)
	farMate := mateScore(3)
	assert.Greater(t, closeMate, farMate)
}

func TestQuiescenceReturnsValidValueFromStartingPosition(t *testing.T) {
	p := position.New()
	s := New(p, tt.New(1))

	value := s.quiescence(-types.ValueInf, types.ValueInf, 0)
	assert.True(t, value.IsValid())
}
