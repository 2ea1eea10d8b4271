// Package position holds the mutable board state - piece bitboards,
// occupancies, the square->piece lookup, side to move, castling rights,
// en-passant target, move clocks and the incrementally maintained
// Zobrist key - and the make/unmake pair that is the only way this
// state is allowed to change.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkern/branchwood/internal/assert"
	"github.com/dkern/branchwood/internal/move"
	"github.com/dkern/branchwood/internal/types"
	"github.com/dkern/branchwood/internal/zobrist"
)

// occupancy slice indices; "both" is the union and is rebuilt, never
// XORed incrementally, matching the original's occupancy_bitboards[both].
const (
	occWhite = int(types.White)
	occBlack = int(types.Black)
	occBoth  = 2
)

// Position is the single logical record described by the data model:
// twelve piece bitboards, three occupancy bitboards (kept as an
// invariant union of the piece bitboards), a 64-entry square->piece
// map, side to move, castling rights, en-passant target, clocks and
// Zobrist key.
type Position struct {
	pieceBb   [types.PieceLength]types.Bitboard
	occupancy [3]types.Bitboard
	board     [types.SqLength]types.Piece

	sideToMove     types.Color
	castling       types.CastlingRights
	epSquare       types.Square
	halfmoveClock  int
	fullmoveNumber int
	key            zobrist.Key

	undoStack []undoRecord
}

// undoRecord is a full snapshot of position state taken before a move
// is applied. Make/unmake do not try to be clever about reconstructing
// a diff; they snapshot-and-restore the same way the source does
// (memcpy of every bitboard array plus the scalar fields).
type undoRecord struct {
	pieceBb        [types.PieceLength]types.Bitboard
	occupancy      [3]types.Bitboard
	board          [types.SqLength]types.Piece
	sideToMove     types.Color
	castling       types.CastlingRights
	epSquare       types.Square
	halfmoveClock  int
	fullmoveNumber int
	key            zobrist.Key
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// New returns a position set up from the standard starting array.
func New() *Position {
	p := &Position{}
	if err := p.SetFEN(StartFEN); err != nil {
		panic(err)
	}
	return p
}

// SideToMove returns the side to move.
func (p *Position) SideToMove() types.Color { return p.sideToMove }

// Castling returns the current castling rights.
func (p *Position) Castling() types.CastlingRights { return p.castling }

// EpSquare returns the current en-passant target, or SqNone.
func (p *Position) EpSquare() types.Square { return p.epSquare }

// Key returns the incrementally maintained Zobrist key.
func (p *Position) Key() zobrist.Key { return p.key }

// PieceOn returns the piece occupying sq, or PieceNone.
func (p *Position) PieceOn(sq types.Square) types.Piece { return p.board[sq] }

// PieceBb returns the bitboard of all pieces of the given kind.
func (p *Position) PieceBb(pc types.Piece) types.Bitboard { return p.pieceBb[pc] }

// Occupancy returns the combined occupancy of one side.
func (p *Position) Occupancy(c types.Color) types.Bitboard { return p.occupancy[c] }

// OccupancyBoth returns the union of both sides' occupancy.
func (p *Position) OccupancyBoth() types.Bitboard { return p.occupancy[occBoth] }

// UndoDepth reports the current undo-stack depth.
func (p *Position) UndoDepth() int { return len(p.undoStack) }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c types.Color) types.Square {
	return p.pieceBb[types.MakePiece(c, types.King)].Lsb()
}

func (p *Position) put(pc types.Piece, sq types.Square) {
	p.pieceBb[pc].PushSquare(sq)
	p.occupancy[pc.ColorOf()].PushSquare(sq)
	p.board[sq] = pc
	p.key ^= zobrist.PieceSquare(pc, sq)
}

func (p *Position) remove(pc types.Piece, sq types.Square) {
	p.pieceBb[pc].PopSquare(sq)
	p.occupancy[pc.ColorOf()].PopSquare(sq)
	p.board[sq] = types.PieceNone
	p.key ^= zobrist.PieceSquare(pc, sq)
}

func (p *Position) rebuildBoth() {
	p.occupancy[occBoth] = p.occupancy[occWhite] | p.occupancy[occBlack]
}

// rookSquares returns the fixed rook from/to squares for a castle move
// on the given side.
func rookSquares(c types.Color, kingside bool) (from, to types.Square) {
	if c == types.White {
		if kingside {
			return types.SqH1, types.SqF1
		}
		return types.SqA1, types.SqD1
	}
	if kingside {
		return types.SqH8, types.SqF8
	}
	return types.SqA8, types.SqD8
}

// MakeMove applies m to the position, following the fourteen-step
// sequence: snapshot, resolve the moving piece, handle capture, move
// the piece, handle double-push/en-passant/castle/promotion specials,
// rebuild occupancy, update castling rights and en-passant state, tick
// the clocks, toggle side to move, then check legality. On failure the
// position is restored to its pre-call state and false is returned.
func (p *Position) MakeMove(m move.Move) bool {
	from, to, flag := m.From(), m.To(), m.FlagOf()

	piece := p.board[from]
	if piece == types.PieceNone {
		return false
	}

	p.undoStack = append(p.undoStack, undoRecord{
		pieceBb:        p.pieceBb,
		occupancy:      p.occupancy,
		board:          p.board,
		sideToMove:     p.sideToMove,
		castling:       p.castling,
		epSquare:       p.epSquare,
		halfmoveClock:  p.halfmoveClock,
		fullmoveNumber: p.fullmoveNumber,
		key:            p.key,
	})

	side := p.sideToMove
	captured := p.board[to]
	isCapture := captured != types.PieceNone
	if isCapture {
		p.remove(captured, to)
	}

	oldEp := p.epSquare

	p.remove(piece, from)
	p.put(piece, to)

	switch flag {
	case move.DoublePawnPush:
		if side == types.White {
			p.epSquare = to.To(types.South)
		} else {
			p.epSquare = to.To(types.North)
		}
	case move.EpCapture:
		var capSq types.Square
		if side == types.White {
			capSq = to.To(types.South)
		} else {
			capSq = to.To(types.North)
		}
		capturedPawn := types.MakePiece(side.Flip(), types.Pawn)
		p.remove(capturedPawn, capSq)
	case move.CastleKingside:
		rFrom, rTo := rookSquares(side, true)
		rook := types.MakePiece(side, types.Rook)
		p.remove(rook, rFrom)
		p.put(rook, rTo)
	case move.CastleQueenside:
		rFrom, rTo := rookSquares(side, false)
		rook := types.MakePiece(side, types.Rook)
		p.remove(rook, rFrom)
		p.put(rook, rTo)
	}

	if flag.IsPromotion() {
		pawn := types.MakePiece(side, types.Pawn)
		p.remove(pawn, to)
		p.put(types.MakePiece(side, flag.PromotionPieceType()), to)
	}

	p.rebuildBoth()

	oldCastling := p.castling
	p.key ^= zobrist.Castling(oldCastling)
	p.updateCastlingRights(piece, side, from, to, captured)
	p.key ^= zobrist.Castling(p.castling)

	if oldEp != types.SqNone {
		p.key ^= zobrist.EpFile(oldEp.FileOf())
	}
	if flag != move.DoublePawnPush {
		p.epSquare = types.SqNone
	}
	if p.epSquare != types.SqNone {
		p.key ^= zobrist.EpFile(p.epSquare.FileOf())
	}

	if side == types.Black {
		p.fullmoveNumber++
	}
	if piece.TypeOf() == types.Pawn || isCapture {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	p.key ^= zobrist.Side()
	p.sideToMove = side.Flip()

	kingBb := p.pieceBb[types.MakePiece(side, types.King)]
	if kingBb != types.BbZero {
		kingSq := kingBb.Lsb()
		if p.isAttackedBySide(kingSq, p.sideToMove) {
			p.UnmakeMove()
			return false
		}
	}

	if assert.DEBUG {
		p.checkInvariants()
	}

	return true
}

// checkInvariants re-derives occupancy and the Zobrist key from the
// piece bitboards and mailbox and panics if either has drifted from
// the incrementally maintained state. Debug builds only.
func (p *Position) checkInvariants() {
	var white, black types.Bitboard
	for pc := types.WhitePawn; pc < types.PieceNone; pc++ {
		if pc.ColorOf() == types.White {
			white |= p.pieceBb[pc]
		} else {
			black |= p.pieceBb[pc]
		}
	}
	assert.Assert(white == p.occupancy[types.White], "position: white occupancy drifted from piece bitboards")
	assert.Assert(black == p.occupancy[types.Black], "position: black occupancy drifted from piece bitboards")
	assert.Assert(white|black == p.occupancy[occBoth], "position: combined occupancy drifted from piece bitboards")

	want := zobrist.HashOf(zobrist.HashOfState{
		Pieces:     p.board,
		SideToMove: p.sideToMove,
		Castling:   p.castling,
		EpSquare:   p.epSquare,
	})
	assert.Assert(want == p.key, "position: incremental key %d disagrees with recomputed key %d", p.key, want)
}

// updateCastlingRights applies the four ways rights are lost: the king
// moving, a rook moving from its home square, castling itself (already
// covered by the king move), and a rook being captured on its home
// square.
func (p *Position) updateCastlingRights(piece types.Piece, side types.Color, from, to types.Square, captured types.Piece) {
	if p.castling == types.CastlingNone {
		return
	}
	if piece.TypeOf() == types.King {
		if side == types.White {
			p.castling = p.castling.Remove(types.CastlingWhite)
		} else {
			p.castling = p.castling.Remove(types.CastlingBlack)
		}
	}
	if piece.TypeOf() == types.Rook {
		switch {
		case side == types.White && from == types.SqA1:
			p.castling = p.castling.Remove(types.CastlingWhiteOOO)
		case side == types.White && from == types.SqH1:
			p.castling = p.castling.Remove(types.CastlingWhiteOO)
		case side == types.Black && from == types.SqA8:
			p.castling = p.castling.Remove(types.CastlingBlackOOO)
		case side == types.Black && from == types.SqH8:
			p.castling = p.castling.Remove(types.CastlingBlackOO)
		}
	}
	if captured.TypeOf() == types.Rook {
		switch to {
		case types.SqA1:
			p.castling = p.castling.Remove(types.CastlingWhiteOOO)
		case types.SqH1:
			p.castling = p.castling.Remove(types.CastlingWhiteOO)
		case types.SqA8:
			p.castling = p.castling.Remove(types.CastlingBlackOOO)
		case types.SqH8:
			p.castling = p.castling.Remove(types.CastlingBlackOO)
		}
	}
}

// UnmakeMove restores the snapshot taken by the most recent successful
// MakeMove, verbatim, including the Zobrist key and undo-stack depth.
// Calling it with an empty stack is a fatal programmer error.
func (p *Position) UnmakeMove() {
	n := len(p.undoStack)
	if n == 0 {
		panic("position: unmake called with empty undo stack")
	}
	rec := p.undoStack[n-1]
	p.undoStack = p.undoStack[:n-1]

	p.pieceBb = rec.pieceBb
	p.occupancy = rec.occupancy
	p.board = rec.board
	p.sideToMove = rec.sideToMove
	p.castling = rec.castling
	p.epSquare = rec.epSquare
	p.halfmoveClock = rec.halfmoveClock
	p.fullmoveNumber = rec.fullmoveNumber
	p.key = rec.key
}

// MakeNullMove passes the turn without moving a piece. Unlike the
// implementation this engine was distilled from, it also clears the
// en-passant target for the duration of the null move: leaving a stale
// ep square active would let the null-move search believe a capture
// opportunity still exists one ply after the side that could take it
// has already moved on. UnmakeNullMove restores it.
func (p *Position) MakeNullMove() (savedEp types.Square) {
	savedEp = p.epSquare
	if savedEp != types.SqNone {
		p.key ^= zobrist.EpFile(savedEp.FileOf())
		p.epSquare = types.SqNone
	}
	p.key ^= zobrist.Side()
	p.sideToMove = p.sideToMove.Flip()
	return savedEp
}

// UnmakeNullMove reverses MakeNullMove, restoring the saved en-passant square.
func (p *Position) UnmakeNullMove(savedEp types.Square) {
	p.key ^= zobrist.Side()
	p.sideToMove = p.sideToMove.Flip()
	if savedEp != types.SqNone {
		p.epSquare = savedEp
		p.key ^= zobrist.EpFile(savedEp.FileOf())
	}
}

// isAttackedBySide reports whether sq is attacked by the given side, using
// the position's own occupancy and piece bitboards.
func (p *Position) isAttackedBySide(sq types.Square, side types.Color) bool {
	return sqAttacked(p, sq, side)
}

// IsAttacked is the exported form used by the move generator to test
// castling paths and king safety.
func (p *Position) IsAttacked(sq types.Square, side types.Color) bool {
	return sqAttacked(p, sq, side)
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	kingBb := p.pieceBb[types.MakePiece(p.sideToMove, types.King)]
	if kingBb == types.BbZero {
		return false
	}
	return p.IsAttacked(kingBb.Lsb(), p.sideToMove.Flip())
}

// HalfmoveClock returns the current halfmove clock.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the current fullmove counter.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// SetFEN resets the position from a FEN-like string: piece placement,
// side to move, castling rights, en-passant square, halfmove clock and
// fullmove number. All invariants hold on return; the undo stack is
// cleared since a set_position call is never itself undone.
func (p *Position) SetFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("position: malformed FEN %q: need at least 4 fields", fen)
	}

	var np Position
	for i := range np.board {
		np.board[i] = types.PieceNone
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: malformed FEN %q: expected 8 ranks", fen)
	}
	sq := types.SqA8
	for _, rankStr := range ranks {
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				sq += types.Square(c - '0')
				continue
			}
			pc := types.PieceFromChar(string(c))
			if pc == types.PieceNone {
				return fmt.Errorf("position: malformed FEN %q: bad piece char %q", fen, c)
			}
			if sq >= types.SqNone {
				return fmt.Errorf("position: malformed FEN %q: too many squares", fen)
			}
			np.put(pc, sq)
			sq++
		}
	}

	switch fields[1] {
	case "w":
		np.sideToMove = types.White
	case "b":
		np.sideToMove = types.Black
	default:
		return fmt.Errorf("position: malformed FEN %q: bad side %q", fen, fields[1])
	}

	np.castling = types.CastlingNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				np.castling = np.castling.Add(types.CastlingWhiteOO)
			case 'Q':
				np.castling = np.castling.Add(types.CastlingWhiteOOO)
			case 'k':
				np.castling = np.castling.Add(types.CastlingBlackOO)
			case 'q':
				np.castling = np.castling.Add(types.CastlingBlackOOO)
			}
		}
	}

	np.epSquare = types.SqNone
	if fields[3] != "-" {
		np.epSquare = types.MakeSquare(fields[3])
	}

	np.halfmoveClock = 0
	np.fullmoveNumber = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			np.halfmoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			np.fullmoveNumber = n
		}
	}

	np.rebuildBoth()
	np.key = zobrist.HashOf(zobrist.HashOfState{
		Pieces:     np.board,
		SideToMove: np.sideToMove,
		Castling:   np.castling,
		EpSquare:   np.epSquare,
	})
	np.undoStack = nil

	*p = np
	return nil
}
