package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkern/branchwood/internal/move"
	"github.com/dkern/branchwood/internal/types"
	"github.com/dkern/branchwood/internal/zobrist"
)

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := New(1)
	_, ok := table.Probe(42)
	assert.False(t, ok)
}

func TestStoreThenProbeHits(t *testing.T) {
	table := New(1)
	m := move.New(types.SqE2, types.SqE4, move.DoublePawnPush)
	table.Store(1234, m, 5, types.Value(30), NodePV)

	e, ok := table.Probe(1234)
	assert.True(t, ok)
	assert.Equal(t, m, e.Best)
	assert.Equal(t, 5, e.Depth)
	assert.Equal(t, NodePV, e.NodeType)
}

func TestShallowerEntryDoesNotReplaceDeeper(t *testing.T) {
	table := New(1)
	table.Store(1234, move.MoveNone, 8, types.Value(10), NodePV)
	table.Store(1234, move.MoveNone, 3, types.Value(99), NodeCut)

	e, ok := table.Probe(1234)
	assert.True(t, ok)
	assert.Equal(t, 8, e.Depth)
	assert.Equal(t, types.Value(10), e.Value)
}

func TestKeyCollisionAtLowerDepthStillReplaces(t *testing.T) {
	table := New(1)
	// Force a collision: store two different keys that hash to the
	// same slot by using the slot-0 key directly plus one offset by
	// the table's full size.
	table.Store(0, move.MoveNone, 10, types.Value(1), NodePV)
	other := zobristKeyWithSameIndex(table, 0)
	table.Store(other, move.MoveNone, 1, types.Value(2), NodeAll)

	e, ok := table.Probe(other)
	assert.True(t, ok)
	assert.Equal(t, other, e.Key)
}

func zobristKeyWithSameIndex(t *Table, key zobrist.Key) zobrist.Key {
	return key + zobrist.Key(t.mask+1)
}

func TestClearEmptiesTable(t *testing.T) {
	table := New(1)
	table.Store(1, move.MoveNone, 1, types.Value(1), NodePV)
	table.Clear()
	_, ok := table.Probe(1)
	assert.False(t, ok)
}
