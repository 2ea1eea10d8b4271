package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkern/branchwood/internal/position"
)

func TestPerftStartingPosition(t *testing.T) {
	p := position.New()
	assert.Equal(t, uint64(20), Perft(p, 1))
	assert.Equal(t, uint64(400), Perft(p, 2))
	assert.Equal(t, uint64(8902), Perft(p, 3))
	assert.Equal(t, uint64(197281), Perft(p, 4))
}

func TestPerftStartingPositionDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 5 perft is slow; skipped under -short")
	}
	p := position.New()
	assert.Equal(t, uint64(4865609), Perft(p, 5))
}

func TestPerftKiwipete(t *testing.T) {
	var p position.Position
	err := p.SetFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(48), Perft(&p, 1))
	assert.Equal(t, uint64(2039), Perft(&p, 2))
	assert.Equal(t, uint64(97862), Perft(&p, 3))
}

func TestPerftKiwipeteDepth4(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 4 Kiwipete perft is slow; skipped under -short")
	}
	var p position.Position
	err := p.SetFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(4085603), Perft(&p, 4))
}

func TestPerftPosition3(t *testing.T) {
	var p position.Position
	err := p.SetFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(14), Perft(&p, 1))
	assert.Equal(t, uint64(191), Perft(&p, 2))
	assert.Equal(t, uint64(2812), Perft(&p, 3))
}

func TestPerftPosition3Depth5(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 5 perft is slow; skipped under -short")
	}
	var p position.Position
	err := p.SetFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(674624), Perft(&p, 5))
}

func TestCastlingNotEmittedThroughCheck(t *testing.T) {
	// Black rook on f7 attacks f1 down the f-file; white may not castle
	// kingside even though the right is held and f1,g1 are empty.
	var p position.Position
	err := p.SetFEN("4k3/5r2/8/8/8/8/8/4K2R w K - 0 1")
	assert.NoError(t, err)

	var list List
	Generate(&p, &list)
	for _, m := range list.Slice() {
		assert.False(t, m.IsCastle(), "castle emitted while f1 is attacked")
	}
}

func TestBlackKingEvadesCheck(t *testing.T) {
	var p position.Position
	err := p.SetFEN("5Q2/8/4K3/6r1/8/4k3/8/8 b - - 0 67")
	assert.NoError(t, err)
	var list List
	Generate(&p, &list)
	legalFound := false
	for _, m := range list.Slice() {
		if p.MakeMove(m) {
			legalFound = true
			p.UnmakeMove()
		}
	}
	assert.True(t, legalFound, "side to move must have at least one legal reply")
}
