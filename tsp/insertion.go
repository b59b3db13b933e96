// Package tsp: cheapest insertion.
//
// Each attempt starts from one location and grows a closed cycle. Every step
// inserts the unrouted location x between consecutive cycle members a → b
// that minimises the detour cost(a,x) + cost(x,b) − cost(a,b). Only
// insertions whose two new edges are finite are considered, so the partial
// cycle stays feasible throughout; an attempt with no finite insertion left
// is abandoned.
//
// Like Greedy, the pass restarts from every location once, beginning at a
// random offset, and each strict improvement counts as one solution. There
// is no random-baseline seed.
//
// Complexity: O(N³) per attempt, O(N⁴) per full pass. The budget is checked
// before every insertion.
package tsp

import (
	"context"
	"math"
	"slices"
	"time"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/lvtsp/costmodel"
)

// RunInsertion runs the cheapest-insertion constructor under opts.TimeLimit.
// Only input errors are returned; see Result for the outcome.
func RunInsertion(ctx context.Context, m costmodel.Model, opts Options) (Result, error) {
	if err := validateOptions(m, opts, CheapestInsertion); err != nil {
		return Result{}, err
	}

	ctl := newController(ctx, CheapestInsertion, m, opts, time.Now())

	var (
		n      = m.Len()
		offset = deriveRNG(opts.Seed, streamInsertion).Intn(n)
		route  = make([]int, 0, n)
		ok     bool
		i      int
	)
	for i = 0; i < n; i++ {
		if ctl.exceeded() {
			break
		}
		route, ok = cheapestInsertion(m, (offset+i)%n, route[:0], ctl.exceeded)
		if !ok {
			continue
		}
		ctl.offer(route, costmodel.Evaluate(m, route), true)
	}

	return ctl.result(), nil
}

// cheapestInsertion grows a cycle from start. Ties go to the earliest cycle
// position, then the lowest location index. It reports false when no finite
// insertion remains or stop() fires mid-attempt. route is reused as the
// output buffer.
func cheapestInsertion(m costmodel.Model, start int, route []int, stop func() bool) ([]int, bool) {
	var (
		n      = m.Len()
		routed = bit.New(start)
		best   float64
		edge   float64
		in     float64
		out    float64
		detour float64
		pos    int
		city   int
		a, b   int
		i, x   int
	)
	route = append(route, start)
	for len(route) < n {
		if stop() {
			return route, false
		}
		pos, city, best = -1, -1, math.Inf(1)
		for i = range route {
			a, b = route[i], route[(i+1)%len(route)]
			edge = 0 // a one-location cycle has no edge to replace
			if len(route) > 1 {
				edge = m.Cost(a, b)
			}
			for x = 0; x < n; x++ {
				if routed.Contains(x) {
					continue
				}
				in, out = m.Cost(a, x), m.Cost(x, b)
				if math.IsInf(in, 1) || math.IsInf(out, 1) {
					continue
				}
				if detour = in + out - edge; detour < best {
					pos, city, best = i+1, x, detour
				}
			}
		}
		if city < 0 {
			return route, false
		}
		routed.Add(city)
		route = slices.Insert(route, pos, city)
	}

	return route, true
}
