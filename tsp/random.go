package tsp

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvtsp/costmodel"
)

// randomBaseline draws permutations until one is feasible, stop() reports
// the budget is spent, or attempts permutations were tried. The first
// permutation is always drawn. It returns the last permutation, its cost
// (+Inf when none was feasible) and the number of permutations tried.
// Complexity: O(attempts·N).
func randomBaseline(m costmodel.Model, rng *rand.Rand, attempts int, stop func() bool) ([]int, float64, int) {
	var (
		perm  = make([]int, m.Len())
		cost  = math.Inf(1)
		tried int
	)
	for tried < attempts {
		if tried > 0 && stop() {
			break
		}
		fillRange(perm)
		shuffleIntsInPlace(perm, rng)
		tried++
		cost = costmodel.Evaluate(m, perm)
		if !math.IsInf(cost, 1) {
			break
		}
	}

	return perm, cost, tried
}
