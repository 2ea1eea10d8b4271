// Package movegen enumerates pseudo-legal moves for a position and
// provides the perft correctness harness.
package movegen

import "github.com/dkern/branchwood/internal/move"

// maxMoves is comfortably above the largest legal-move count reachable
// from any real chess position (the theoretical maximum is 218).
const maxMoves = 256

// List is a fixed-capacity ordered sequence of moves, matching the
// generator's no-allocation contract: one List is reused throughout a
// single ply of search.
type List struct {
	moves [maxMoves]move.Move
	count int
}

// Add appends m; it is a programmer error to exceed the capacity, which
// never happens for a legal chess position.
func (l *List) Add(m move.Move) {
	l.moves[l.count] = m
	l.count++
}

// Len returns the number of moves currently held.
func (l *List) Len() int { return l.count }

// At returns the move at index i.
func (l *List) At(i int) move.Move { return l.moves[i] }

// Swap exchanges the moves at i and j, used by the ordering sort.
func (l *List) Swap(i, j int) { l.moves[i], l.moves[j] = l.moves[j], l.moves[i] }

// Slice returns the populated prefix as a plain slice for callers that
// want to range over it without index bookkeeping.
func (l *List) Slice() []move.Move { return l.moves[:l.count] }
