package movegen

import "github.com/dkern/branchwood/internal/position"

// Perft is the move-tree node-count correctness oracle: perft(0) = 1,
// otherwise the sum of perft(depth-1) over every move make accepts.
// Rejected (illegal) moves contribute nothing and are not counted.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var list List
	Generate(p, &list)

	var nodes uint64
	for _, m := range list.Slice() {
		if !p.MakeMove(m) {
			continue
		}
		nodes += Perft(p, depth-1)
		p.UnmakeMove()
	}
	return nodes
}
