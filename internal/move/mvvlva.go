package move

import "github.com/dkern/branchwood/internal/types"

// mvvLva is indexed [attacker][victim] and gives the Most-Valuable-Victim /
// Least-Valuable-Attacker capture ordering score: victim value dominates
// (100 per rank), attacker value breaks ties (lower attacker scores
// higher, 5-attacker added). Quiet moves are not looked up here - they
// score 0.
var mvvLva [6][6]int

func init() {
	for attacker := 0; attacker < 6; attacker++ {
		for victim := 0; victim < 6; victim++ {
			mvvLva[attacker][victim] = 100*(victim+1) + (5 - attacker)
		}
	}
}

// MvvLvaScore returns the capture-ordering score for a piece of kind
// attacker capturing a piece of kind victim. Quiet moves should be
// scored 0 directly by the caller rather than through this function.
func MvvLvaScore(attacker, victim types.PieceType) int {
	if !attacker.IsValid() || !victim.IsValid() {
		return 0
	}
	return mvvLva[attacker][victim]
}
