package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkern/branchwood/internal/move"
	"github.com/dkern/branchwood/internal/types"
	"github.com/dkern/branchwood/internal/zobrist"
)

func (p *Position) snapshot() undoRecord {
	return undoRecord{
		pieceBb:        p.pieceBb,
		occupancy:      p.occupancy,
		board:          p.board,
		sideToMove:     p.sideToMove,
		castling:       p.castling,
		epSquare:       p.epSquare,
		halfmoveClock:  p.halfmoveClock,
		fullmoveNumber: p.fullmoveNumber,
		key:            p.key,
	}
}

func assertInvariants(t *testing.T, p *Position) {
	t.Helper()
	for sq := types.SqA8; sq < types.SqNone; sq++ {
		pc := p.board[sq]
		for piece := types.WhitePawn; piece < types.PieceNone; piece++ {
			has := p.pieceBb[piece].Has(sq)
			if piece == pc {
				assert.True(t, has, "board/bitboard mismatch at %s for %s", sq, piece)
			} else {
				assert.False(t, has, "stray bit at %s for %s", sq, piece)
			}
		}
	}
	assert.Equal(t, p.occupancy[occWhite]|p.occupancy[occBlack], p.occupancy[occBoth])
	assert.Equal(t, types.BbZero, p.occupancy[occWhite]&p.occupancy[occBlack])

	expected := zobrist.HashOf(zobrist.HashOfState{
		Pieces:     p.board,
		SideToMove: p.sideToMove,
		Castling:   p.castling,
		EpSquare:   p.epSquare,
	})
	assert.Equal(t, expected, p.key)
}

func TestStartingPositionInvariants(t *testing.T) {
	p := New()
	assertInvariants(t, p)
	assert.Equal(t, types.White, p.SideToMove())
	assert.Equal(t, types.CastlingAny, p.Castling())
	assert.Equal(t, types.SqNone, p.EpSquare())
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	p := New()
	before := p.snapshot()

	m := move.New(types.SqE2, types.SqE4, move.DoublePawnPush)
	ok := p.MakeMove(m)
	assert.True(t, ok)
	assertInvariants(t, p)
	assert.Equal(t, types.SqE3, p.EpSquare())

	p.UnmakeMove()
	assert.Equal(t, before, p.snapshot())
	assert.Equal(t, 0, p.UndoDepth())
}

func TestCaptureUpdatesOccupancy(t *testing.T) {
	var p Position
	err := p.SetFEN("8/8/8/3p4/4P3/8/8/4K2k w - - 0 1")
	assert.NoError(t, err)

	m := move.New(types.SqE4, types.SqD5, move.Capture)
	assert.True(t, p.MakeMove(m))
	assertInvariants(t, &p)
	assert.Equal(t, types.WhitePawn, p.PieceOn(types.SqD5))
	assert.Equal(t, types.PieceNone, p.PieceOn(types.SqE4))

	p.UnmakeMove()
	assert.Equal(t, types.BlackPawn, p.PieceOn(types.SqD5))
	assert.Equal(t, types.WhitePawn, p.PieceOn(types.SqE4))
}

func TestEnPassantRoundTrip(t *testing.T) {
	var p Position
	err := p.SetFEN("rnbqkbnr/ppp1ppp1/7p/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	before := p.snapshot()

	m := move.New(types.SqE5, types.SqD6, move.EpCapture)
	assert.True(t, p.MakeMove(m))
	assertInvariants(t, &p)
	assert.Equal(t, types.PieceNone, p.PieceOn(types.SqD5))
	assert.Equal(t, types.SqNone, p.EpSquare())

	p.UnmakeMove()
	assert.Equal(t, before, p.snapshot())
	assert.Equal(t, types.BlackPawn, p.PieceOn(types.SqD5))
	assert.Equal(t, types.SqD6, p.EpSquare())
}

func TestCastlingRightsClearedByKingMove(t *testing.T) {
	var p Position
	err := p.SetFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	m := move.New(types.SqE1, types.SqG1, move.CastleKingside)
	assert.True(t, p.MakeMove(m))
	assertInvariants(t, &p)
	assert.Equal(t, types.WhiteRook, p.PieceOn(types.SqF1))
	assert.False(t, p.Castling().Has(types.CastlingWhiteOO))
	assert.False(t, p.Castling().Has(types.CastlingWhiteOOO))
	assert.True(t, p.Castling().Has(types.CastlingBlackOO))
}

func TestRookCaptureClearsOpponentRight(t *testing.T) {
	var p Position
	err := p.SetFEN("r3k3/8/8/8/8/8/8/R3K2R w KQq - 0 1")
	assert.NoError(t, err)

	m := move.New(types.SqA1, types.SqA8, move.Capture)
	assert.True(t, p.MakeMove(m))
	assert.False(t, p.Castling().Has(types.CastlingBlackOOO))
}

func TestPromotionReplacesPawn(t *testing.T) {
	var p Position
	err := p.SetFEN("8/P6k/8/8/8/8/7p/7K w - - 0 1")
	assert.NoError(t, err)

	m := move.NewPromotion(types.SqA7, types.SqA8, types.Queen, false)
	assert.True(t, p.MakeMove(m))
	assertInvariants(t, &p)
	assert.Equal(t, types.WhiteQueen, p.PieceOn(types.SqA8))

	p.UnmakeMove()
	assert.Equal(t, types.WhitePawn, p.PieceOn(types.SqA7))
	assert.Equal(t, types.PieceNone, p.PieceOn(types.SqA8))
}

func TestIllegalMoveLeavesKingInCheckIsRejected(t *testing.T) {
	var p Position
	err := p.SetFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.NoError(t, err)
	before := p.snapshot()

	m := move.New(types.SqE1, types.SqD2, move.Quiet)
	ok := p.MakeMove(m)
	assert.False(t, ok)
	assert.Equal(t, before, p.snapshot())
}

func TestNullMoveClearsAndRestoresEnPassant(t *testing.T) {
	var p Position
	err := p.SetFEN("rnbqkbnr/ppp1ppp1/7p/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	before := p.snapshot()

	saved := p.MakeNullMove()
	assert.Equal(t, types.SqD6, saved)
	assert.Equal(t, types.SqNone, p.EpSquare())
	assert.Equal(t, types.Black, p.SideToMove())

	p.UnmakeNullMove(saved)
	assert.Equal(t, before, p.snapshot())
}
