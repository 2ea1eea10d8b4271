// Package engine is the narrow boundary between the chess core
// (position, move generation, search) and an outer driver such as
// cmd/branchwood: it owns exactly one position and one transposition
// table, builds a fresh searcher for each search, and keeps no
// process-wide singletons.
package engine

import (
	"fmt"

	"github.com/dkern/branchwood/internal/attacks"
	"github.com/dkern/branchwood/internal/config"
	"github.com/dkern/branchwood/internal/logging"
	"github.com/dkern/branchwood/internal/move"
	"github.com/dkern/branchwood/internal/movegen"
	"github.com/dkern/branchwood/internal/position"
	"github.com/dkern/branchwood/internal/search"
	"github.com/dkern/branchwood/internal/tt"
	"github.com/dkern/branchwood/internal/types"
	"github.com/dkern/branchwood/internal/zobrist"
)

var log = logging.GetLog()

// Engine bundles the state one logical game session needs. Nothing in
// this package is shared across Engine values - the caller is free to
// run several, sequentially or in separate processes, but never
// concurrently against one instance.
type Engine struct {
	pos   *position.Position
	table *tt.Table
}

// NewEngine returns an Engine set to the standard starting position,
// with a transposition table of ttSizeMB megabytes. It calls
// attacks.Init and zobrist.Init, the package-level table builders every
// Engine depends on; both are idempotent, so constructing several
// Engines only pays the setup cost once.
func NewEngine(ttSizeMB int) *Engine {
	attacks.Init()
	zobrist.Init()
	return &Engine{
		pos:   position.New(),
		table: tt.New(ttSizeMB),
	}
}

// New returns an Engine sized per config.Settings.Search.TTSize, for
// callers that take the configured default rather than an explicit size.
func New() *Engine {
	return NewEngine(config.Settings.Search.TTSize)
}

// SetPosition replaces the current position with the one described by
// fen. On a malformed FEN the previous position is left untouched.
func (e *Engine) SetPosition(fen string) error {
	var p position.Position
	if err := p.SetFEN(fen); err != nil {
		return fmt.Errorf("engine: set position: %w", err)
	}
	e.pos = &p
	e.table.Clear()
	return nil
}

// FEN is not reconstructed; callers that need the current position's
// textual form should track the FEN they last set. Position exposes
// the live position for read-only inspection (piece placement, side to
// move, castling rights).
func (e *Engine) Position() *position.Position {
	return e.pos
}

// Play resolves UCI move text ("e2e4", "e7e8q") against the pseudo-legal
// moves generated from the current position and applies the match. The
// null move "0000" is a documented no-op: it returns nil without
// touching the position. Play returns an error and leaves the position
// unchanged if moveText is malformed or does not match any legal move.
func (e *Engine) Play(moveText string) error {
	if moveText == move.MoveNone.UCI() {
		return nil
	}
	m, err := e.decodeMove(moveText)
	if err != nil {
		return err
	}
	if !e.pos.MakeMove(m) {
		return fmt.Errorf("engine: play %q: not legal in this position", moveText)
	}
	return nil
}

// decodeMove parses UCI move text and matches it against the current
// position's pseudo-legal move list, so the returned move carries the
// generator's flag (capture, en-passant, castle, promotion) rather than
// one reconstructed from the text alone.
func (e *Engine) decodeMove(moveText string) (move.Move, error) {
	if len(moveText) != 4 && len(moveText) != 5 {
		return move.MoveNone, fmt.Errorf("engine: play %q: malformed move text", moveText)
	}
	from := types.MakeSquare(moveText[0:2])
	to := types.MakeSquare(moveText[2:4])
	if from == types.SqNone || to == types.SqNone {
		return move.MoveNone, fmt.Errorf("engine: play %q: malformed move text", moveText)
	}
	promo := types.PtNone
	if len(moveText) == 5 {
		promo = types.PieceTypeFromChar(moveText[4:5])
		if promo == types.PtNone {
			return move.MoveNone, fmt.Errorf("engine: play %q: malformed promotion letter", moveText)
		}
	}

	var list movegen.List
	movegen.Generate(e.pos, &list)
	for i := 0; i < list.Len(); i++ {
		cand := list.At(i)
		if cand.From() != from || cand.To() != to {
			continue
		}
		if cand.IsPromotion() && cand.PromotionPieceType() != promo {
			continue
		}
		if !cand.IsPromotion() && promo != types.PtNone {
			continue
		}
		return cand, nil
	}
	return move.MoveNone, fmt.Errorf("engine: play %q: no such move", moveText)
}

// Go runs iterative-deepening search for up to budgetMs milliseconds
// and returns its result; Result.BestMove is move.MoveNone if no legal
// move exists in the current position.
func (e *Engine) Go(budgetMs int) search.Result {
	s := search.New(e.pos, e.table)
	result := s.Go(budgetMs)
	log.Infof("bestmove %s (value=%s depth=%d nodes=%d)", result.BestMove.UCI(), result.Value, result.Depth, result.Nodes)
	return result
}

// Perft runs the move-generator correctness oracle from the current
// position to depth and returns the leaf-node count.
func (e *Engine) Perft(depth int) uint64 {
	return movegen.Perft(e.pos, depth)
}

// LegalMoves returns every legal move from the current position, used
// by callers (tests, a UI) that need the full move list rather than a
// single chosen move.
func (e *Engine) LegalMoves() []move.Move {
	var list movegen.List
	movegen.Generate(e.pos, &list)
	legal := make([]move.Move, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if e.pos.MakeMove(m) {
			e.pos.UnmakeMove()
			legal = append(legal, m)
		}
	}
	return legal
}

// InCheck reports whether the side to move is currently in check.
func (e *Engine) InCheck() bool {
	return e.pos.InCheck()
}

// Outcome reports whether the game has ended in the current position
// and why, without running a search.
func (e *Engine) Outcome() (over bool, reason string) {
	if len(e.LegalMoves()) > 0 {
		return false, ""
	}
	if e.pos.InCheck() {
		side := "white"
		if e.pos.SideToMove() == types.White {
			side = "black"
		}
		return true, fmt.Sprintf("checkmate, %s wins", side)
	}
	return true, "stalemate"
}
