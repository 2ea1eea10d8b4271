package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkern/branchwood/internal/position"
)

func TestStartingPositionIsBalanced(t *testing.T) {
	p := position.New()
	assert.Equal(t, 0, materialScore(p))
}

func TestExtraQueenDominatesMaterial(t *testing.T) {
	var p position.Position
	err := p.SetFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, Evaluate(&p), 800)
}

func TestEvaluateIsSideToMoveRelative(t *testing.T) {
	var white, black position.Position
	assert.NoError(t, white.SetFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1"))
	assert.NoError(t, black.SetFEN("4k3/8/8/8/8/8/8/3QK3 b - - 0 1"))
	assert.Equal(t, Evaluate(&white), -Evaluate(&black))
}

func TestKingTropismFavorsCloserKingsWhenAhead(t *testing.T) {
	var close, far position.Position
	assert.NoError(t, close.SetFEN("8/8/2k5/8/2K5/2Q5/8/8 w - - 0 1"))
	assert.NoError(t, far.SetFEN("7k/8/8/8/2K5/2Q5/8/8 w - - 0 1"))

	assert.Greater(t, kingTropismScore(&close), kingTropismScore(&far))
}

func TestKingTropismIsZeroOutsideEndgame(t *testing.T) {
	p := position.New()
	assert.Equal(t, 0, kingTropismScore(p))
}

func TestIsEndgameThreshold(t *testing.T) {
	var p position.Position
	assert.NoError(t, p.SetFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1"))
	assert.True(t, isEndgame(&p))

	full := position.New()
	assert.False(t, isEndgame(full))
}
