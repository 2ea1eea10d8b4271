// Package tt implements the transposition table: a fixed-capacity
// array keyed by the low bits of the Zobrist key, with depth-preferred
// replacement and PV/CUT/ALL node-type accounting.
package tt

import (
	"github.com/dkern/branchwood/internal/move"
	"github.com/dkern/branchwood/internal/types"
	"github.com/dkern/branchwood/internal/zobrist"
)

// NodeType classifies a stored evaluation the way alpha-beta windowing
// produces it: an exact score, a fail-high lower bound, or a fail-low
// upper bound.
type NodeType uint8

const (
	NodeNone NodeType = iota
	NodePV
	NodeCut
	NodeAll
)

// Entry is one transposition-table slot.
type Entry struct {
	Key      zobrist.Key
	Best     move.Move
	Depth    int
	Value    types.Value
	NodeType NodeType
}

func (e *Entry) empty() bool { return e.NodeType == NodeNone }

// Table is a fixed-capacity, power-of-two-sized transposition table.
// Only the searcher ever writes it, so access is unsynchronized by
// design - there is exactly one logical task in this engine.
type Table struct {
	entries []Entry
	mask    uint64
}

// New allocates a table sized to fit within sizeMB megabytes, rounded
// down to the nearest power-of-two entry count.
func New(sizeMB int) *Table {
	if sizeMB < 1 {
		sizeMB = 1
	}
	const entrySize = 32 // conservative estimate of Entry's in-memory size
	want := uint64(sizeMB) * 1024 * 1024 / entrySize

	capacity := uint64(1)
	for capacity*2 <= want {
		capacity *= 2
	}
	if capacity == 0 {
		capacity = 1
	}

	return &Table{
		entries: make([]Entry, capacity),
		mask:    capacity - 1,
	}
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.mask
}

// Probe returns the stored entry for key and whether it is present and
// matches key exactly - a raw hash-table lookup; interpreting the
// result against alpha/beta/depth is the search's job.
func (t *Table) Probe(key zobrist.Key) (Entry, bool) {
	e := &t.entries[t.index(key)]
	if e.empty() || e.Key != key {
		return Entry{}, false
	}
	return *e, true
}

// Store writes an entry using the depth-preferred replacement policy:
// an empty slot always accepts, a deeper (or equal-depth) search
// result always replaces, and a key collision at lower incoming depth
// still replaces - the slot belongs to whichever position last proved
// it deserves fresher information.
func (t *Table) Store(key zobrist.Key, best move.Move, depth int, value types.Value, nt NodeType) {
	e := &t.entries[t.index(key)]
	if e.empty() || e.Key != key || depth >= e.Depth {
		*e = Entry{Key: key, Best: best, Depth: depth, Value: value, NodeType: nt}
	}
}

// Clear resets every slot to empty.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// Len returns the table's entry capacity.
func (t *Table) Len() int { return len(t.entries) }

// Hashfull estimates occupancy per mille, sampling the first 1000
// slots - the conventional UCI "hashfull" approximation.
func (t *Table) Hashfull() int {
	sample := 1000
	if sample > len(t.entries) {
		sample = len(t.entries)
	}
	used := 0
	for i := 0; i < sample; i++ {
		if !t.entries[i].empty() {
			used++
		}
	}
	if len(t.entries) == 0 {
		return 0
	}
	return used * 1000 / sample
}
