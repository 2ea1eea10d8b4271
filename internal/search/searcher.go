// Package search implements iterative-deepening Negamax with
// alpha-beta pruning, a quiescence extension, MVV/LVA move ordering,
// null-move pruning and transposition-table probing/storing.
package search

import (
	"time"

	"github.com/dkern/branchwood/internal/config"
	"github.com/dkern/branchwood/internal/logging"
	"github.com/dkern/branchwood/internal/move"
	"github.com/dkern/branchwood/internal/movegen"
	"github.com/dkern/branchwood/internal/position"
	"github.com/dkern/branchwood/internal/tt"
	"github.com/dkern/branchwood/internal/types"
)

var log = logging.GetSearchLog()

// timedOut is the sentinel Negamax and quiescence propagate upward
// unchanged when the time budget elapses mid-search; it is outside the
// range any real evaluation or mate score can occupy. A caller negates
// its child's return value, so it sees the child's sentinel as -timedOut.
const timedOut = types.ValueNA

// Searcher runs iterative-deepening search over a single position,
// owning that position's undo stack and a transposition table for the
// lifetime of the call - exactly one logical task, per the engine's
// single-threaded, cooperative concurrency model.
type Searcher struct {
	pos   *position.Position
	table *tt.Table

	deadline time.Time
	nodes    uint64
	stopped  bool
}

// New returns a Searcher bound to pos and table. Both are owned
// exclusively by the searcher for the duration of a Go call.
func New(pos *position.Position, table *tt.Table) *Searcher {
	return &Searcher{pos: pos, table: table}
}

// Result is the outcome of a completed or time-limited search.
type Result struct {
	BestMove move.Move
	Value    types.Value
	Depth    int
	Nodes    uint64
}

// Go runs iterative deepening - depth 1, 2, 3, ... - until budgetMs
// elapses, retaining the best move found at the deepest iteration that
// completed before the clock ran out.
func (s *Searcher) Go(budgetMs int) Result {
	if budgetMs <= 0 {
		budgetMs = config.Settings.Search.DefaultMovetimeMs
	}
	s.deadline = time.Now().Add(time.Duration(budgetMs) * time.Millisecond)
	s.nodes = 0
	s.stopped = false

	var best Result
	for depth := 1; depth <= types.MaxPly; depth++ {
		value, bestMove, completed := s.searchRoot(depth)
		if !completed {
			break
		}
		best = Result{BestMove: bestMove, Value: value, Depth: depth, Nodes: s.nodes}
		if value.IsMate() {
			break
		}
	}
	log.Debugf("search finished: depth=%d value=%s nodes=%d", best.Depth, best.Value, best.Nodes)
	return best
}

// searchRoot runs one iterative-deepening iteration at the given
// depth, returning whether it completed before the time budget expired.
func (s *Searcher) searchRoot(depth int) (types.Value, move.Move, bool) {
	var list movegen.List
	movegen.Generate(s.pos, &list)

	ttMove := move.MoveNone
	if entry, ok := s.table.Probe(s.pos.Key()); ok {
		ttMove = entry.Best
	}
	orderMoves(s.pos, &list, ttMove)

	alpha, beta := -types.ValueInf, types.ValueInf
	bestMove := move.MoveNone
	bestValue := -types.ValueInf
	legalMoves := 0

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if !s.pos.MakeMove(m) {
			continue
		}
		legalMoves++
		value := -s.negamax(-beta, -alpha, depth-1, 1)
		s.pos.UnmakeMove()

		if value == -timedOut {
			return 0, bestMove, false
		}
		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
	}

	if legalMoves == 0 {
		if s.pos.InCheck() {
			return -types.ValueMate, move.MoveNone, true
		}
		return types.ValueDraw, move.MoveNone, true
	}

	nt := tt.NodeAll
	if bestValue > -types.ValueInf {
		nt = tt.NodePV
	}
	s.table.Store(s.pos.Key(), bestMove, depth, bestValue, nt)
	return bestValue, bestMove, true
}

func (s *Searcher) timeUp() bool {
	s.nodes++
	if s.nodes%uint64(config.Settings.Search.PollInterval) != 0 {
		return false
	}
	if time.Now().After(s.deadline) {
		s.stopped = true
	}
	return s.stopped
}

func hasLegalMove(p *position.Position) bool {
	var list movegen.List
	movegen.Generate(p, &list)
	for i := 0; i < list.Len(); i++ {
		if p.MakeMove(list.At(i)) {
			p.UnmakeMove()
			return true
		}
	}
	return false
}
