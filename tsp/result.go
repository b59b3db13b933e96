package tsp

import (
	"math"
	"time"

	"github.com/katalvlaran/lvtsp/costmodel"
)

// SearchStats are the counters only the exact search produces.
//
// Every generated state ends up in exactly one of Pruned, Closed or
// Expanded, so Generated == Pruned + Closed + Expanded at termination.
type SearchStats struct {
	// PeakFrontier is the largest frontier size observed.
	PeakFrontier int
	// Generated counts the root plus every child ever created.
	Generated int
	// Pruned counts states discarded by the bound, rejected by a full
	// frontier, or still queued when the search stopped.
	Pruned int
	// Expanded counts states whose children were generated.
	Expanded int
	// Closed counts complete states whose closing edge was evaluated.
	Closed int
}

// Result is the record every run returns.
type Result struct {
	// Algo is the strategy that produced the record.
	Algo Algorithm
	// Cost is the cyclic cost of Tour, or +Inf when no feasible tour was found.
	Cost float64
	// Elapsed is the wall-clock time spent, clamped to the time limit.
	Elapsed time.Duration
	// Solutions is the number of strictly improving solutions found by this
	// run. For RandomTour it is the number of permutations tried.
	Solutions int
	// Tour lists every location index exactly once; the closing edge back to
	// Tour[0] is implied. Nil when Cost is +Inf.
	Tour []int
	// Search is non-nil only for BranchAndBound.
	Search *SearchStats
}

// Feasible reports whether the record holds a tour.
func (r Result) Feasible() bool { return r.Tour != nil && !math.IsInf(r.Cost, 1) }

// Route maps Tour to location names via costmodel.NameOf.
func (r Result) Route(m costmodel.Model) []string {
	if r.Tour == nil {
		return nil
	}
	out := make([]string, len(r.Tour))
	for i, loc := range r.Tour {
		out[i] = costmodel.NameOf(m, loc)
	}

	return out
}
