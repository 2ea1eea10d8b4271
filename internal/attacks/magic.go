package attacks

import "github.com/dkern/branchwood/internal/types"

// magic holds the fancy-magic data for one square of one sliding piece:
// the relevant-occupancy mask, the multiplier, the index shift and the
// resulting attack table slice.
type magic struct {
	mask   types.Bitboard
	number types.Bitboard
	shift  uint
	attack []types.Bitboard
}

var bishopMagics [types.SqLength]magic
var rookMagics [types.SqLength]magic

var bishopDirs = [4]types.Direction{types.Northeast, types.Southeast, types.Southwest, types.Northwest}
var rookDirs = [4]types.Direction{types.North, types.East, types.South, types.West}

// magicSeeds are the per-rank PRNG seeds known to find a working magic
// quickly; any seed eventually works, these just avoid long searches.
var magicSeeds = [types.RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// prnG is the xorshift64star generator Stockfish uses to search for
// magic numbers: 64-bit output, single 64-bit state word, no warm-up.
type prnG struct{ s uint64 }

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand biases toward numbers with few set bits, which make better
// magic candidates on average.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}

// slidingAttack walks each direction in dirs from sq until it runs off
// the board or hits the first occupied square (inclusive of that square,
// since a slider also attacks whatever blocks it).
func slidingAttack(dirs [4]types.Direction, sq types.Square, occupied types.Bitboard) types.Bitboard {
	var bb types.Bitboard
	for _, d := range dirs {
		s := sq
		for {
			t := s.To(d)
			if !t.IsValid() {
				break
			}
			bb.PushSquare(t)
			if occupied.Has(t) {
				break
			}
			s = t
		}
	}
	return bb
}

func (m *magic) index(occupied types.Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.number
	occ >>= m.shift
	return uint(occ)
}

// initMagicsFor finds, per square, a multiplier that maps every subset
// of the relevant occupancy mask to a collision-free index, building the
// attack table as a side effect of the verification (Stockfish's
// approach: a failed candidate just gets discarded and retried).
func initMagicsFor(dirs [4]types.Direction, table *[types.SqLength]magic) {
	var occupancy, reference [4096]types.Bitboard
	var epoch [4096]int
	cnt := 0

	for sq := types.SqA8; sq < types.SqNone; sq++ {
		edges := (types.RankBb(types.Rank1) | types.RankBb(types.Rank8)) &^ types.RankBb(sq.RankOf())
		edges |= (types.FileBb(types.FileA) | types.FileBb(types.FileH)) &^ types.FileBb(sq.FileOf())

		m := &table[sq]
		m.mask = slidingAttack(dirs, sq, types.BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		size := 0
		var b types.Bitboard
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}
		m.attack = make([]types.Bitboard, size)

		rng := prnG{s: magicSeeds[sq.RankOf()]}
		for i := 0; i < size; {
			var candidate types.Bitboard
			for {
				candidate = types.Bitboard(rng.sparseRand())
				if ((candidate * m.mask) >> 56).PopCount() >= 6 {
					continue
				}
				break
			}
			m.number = candidate

			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attack[idx] = reference[i]
				} else if m.attack[idx] != reference[i] {
					break
				}
			}
		}
	}
}

func initMagics() {
	initMagicsFor(bishopDirs, &bishopMagics)
	initMagicsFor(rookDirs, &rookMagics)
}

// BishopAttacks returns the bishop attack set from sq given occupied.
func BishopAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	m := &bishopMagics[sq]
	return m.attack[m.index(occupied)]
}

// RookAttacks returns the rook attack set from sq given occupied.
func RookAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	m := &rookMagics[sq]
	return m.attack[m.index(occupied)]
}

// QueenAttacks returns the queen attack set from sq given occupied.
func QueenAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}
