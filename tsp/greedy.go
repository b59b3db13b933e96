// Package tsp: greedy constructor.
//
// Nearest neighbour, restarted from every location once. The pass starts at
// a random offset so that equal-cost ties do not always favour low indices.
// An attempt is abandoned when no unvisited location is reachable or the
// closing edge back to its start is infeasible. The cheapest completed
// attempt wins; each strict improvement counts as one solution.
//
// The BSSF is seeded with the random baseline, so a budget that runs out
// mid-pass still returns whatever the baseline found.
//
// Complexity: O(N²) per attempt, O(N³) per full pass.
package tsp

import (
	"context"
	"math"
	"time"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/lvtsp/costmodel"
)

// RunGreedy runs the greedy constructor under opts.TimeLimit.
// Only input errors are returned; see Result for the outcome.
func RunGreedy(ctx context.Context, m costmodel.Model, opts Options) (Result, error) {
	if err := validateOptions(m, opts, Greedy); err != nil {
		return Result{}, err
	}

	return runGreedy(ctx, m, opts, time.Now()), nil
}

// runGreedy is RunGreedy for validated input.
func runGreedy(ctx context.Context, m costmodel.Model, opts Options, start time.Time) Result {
	ctl := newController(ctx, Greedy, m, opts, start)
	construct(ctl, m, opts, true)

	return ctl.result()
}

// construct seeds ctl with the random baseline and then runs one greedy
// pass against it. Branch-and-bound calls it with its own controller, so the
// seed phase reports under the caller's algorithm; countGreedy selects
// whether greedy improvements add to the solution count.
func construct(ctl *searchController, m costmodel.Model, opts Options, countGreedy bool) {
	base, baseCost, _ := randomBaseline(m, deriveRNG(opts.Seed, streamBaseline), opts.RandomAttempts, ctl.exceeded)
	ctl.offer(base, baseCost, false)

	var (
		n      = m.Len()
		offset = deriveRNG(opts.Seed, streamGreedy).Intn(n)
		route  = make([]int, 0, n)
		ok     bool
		i      int
	)
	for i = 0; i < n; i++ {
		if ctl.exceeded() {
			break
		}
		route, ok = nearestNeighbor(m, (offset+i)%n, route[:0])
		if !ok {
			continue
		}
		ctl.offer(route, costmodel.Evaluate(m, route), countGreedy)
	}
}

// nearestNeighbor extends a path from start by always moving to the cheapest
// unvisited location (first minimum in index order wins ties). It reports
// false if the path gets stuck or cannot close back to start. route is
// reused as the output buffer.
// Complexity: O(N²).
func nearestNeighbor(m costmodel.Model, start int, route []int) ([]int, bool) {
	var (
		n       = m.Len()
		visited = bit.New(start)
		cur     = start
		next    int
		best    float64
		c       float64
		j       int
	)
	route = append(route, start)
	for len(route) < n {
		next, best = -1, math.Inf(1)
		for j = 0; j < n; j++ {
			if visited.Contains(j) {
				continue
			}
			if c = m.Cost(cur, j); c < best {
				next, best = j, c
			}
		}
		if next < 0 {
			return route, false
		}
		visited.Add(next)
		route = append(route, next)
		cur = next
	}
	if math.IsInf(m.Cost(cur, start), 1) {
		return route, false
	}

	return route, true
}
