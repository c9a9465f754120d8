package scoringservice

import (
	"sort"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
)

// AllocateStrokes returns the handicap strokes received on each hole, indexed
// the same way as holes.
//
// The hardest hole (lowest rank) is position 1. A hole at position p gets one
// stroke when p <= handicap and a second when handicap > n and p <= handicap-n,
// so handicaps above 2n saturate at two strokes per hole. Zero and negative
// handicaps receive nothing.
func AllocateStrokes(handicap int, holes []scoringtypes.Hole) []int {
	n := len(holes)
	strokes := make([]int, n)
	if handicap <= 0 || n == 0 {
		return strokes
	}

	for pos, idx := range difficultyOrder(holes) {
		place := pos + 1
		if place <= handicap {
			strokes[idx]++
		}
		if handicap > n && place <= handicap-n {
			strokes[idx]++
		}
	}
	return strokes
}

// difficultyOrder returns hole indexes sorted hardest first. Ranks only need
// to be distinct; 18-hole stroke indexes on a nine are reduced to their
// relative order.
func difficultyOrder(holes []scoringtypes.Hole) []int {
	order := make([]int, len(holes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return holes[order[a]].HandicapRank < holes[order[b]].HandicapRank
	})
	return order
}

// TotalStrokes sums a per-hole allocation.
func TotalStrokes(strokes []int) int {
	total := 0
	for _, s := range strokes {
		total += s
	}
	return total
}
