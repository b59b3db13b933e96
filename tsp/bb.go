// Package tsp: Branch-and-Bound (best-first search over reduced cost matrices).
//
// RunBranchAndBound explores partial tours in order of cost/depth, a key
// that favours deep nodes among similar bounds. The search proceeds as:
//
//  1. Seed: run the random baseline and one greedy pass against this run's
//     controller; the best of them becomes the BSSF. Seed improvements are
//     reported as BranchAndBound events but are not counted as solutions.
//     Both phases share one time budget.
//  2. Root: reduce the full cost matrix and start at a random location.
//     A root whose bound already meets the BSSF ends the search.
//  3. Loop while the frontier is non-empty and time remains:
//     - prune a node whose bound meets the BSSF;
//     - at depth N, close the cycle back to the root location and keep the
//     tour if it beats the BSSF;
//     - otherwise expand it, queueing children that fit in the frontier and
//     beat the BSSF, pruning the rest.
//  4. Nodes still queued at the end are counted as pruned.
//
// The bound never decreases from parent to child and never exceeds the cost
// of any completion, so pruning never discards a strictly better tour.
package tsp

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/lvtsp/costmodel"
)

// bbEngine holds the state of one branch-and-bound run.
type bbEngine struct {
	m     costmodel.Model
	n     int
	ctl   *searchController
	tree  *SearchTree
	front *frontier
	stats *SearchStats
	start int // root location; every tour closes back here
}

// RunBranchAndBound runs the exact search under opts.TimeLimit with a
// frontier of at most opts.MaxFrontier nodes.
// Only input errors are returned; see Result for the outcome.
func RunBranchAndBound(ctx context.Context, m costmodel.Model, opts Options) (Result, error) {
	if err := validateOptions(m, opts, BranchAndBound); err != nil {
		return Result{}, err
	}

	return runBranchAndBound(ctx, m, opts), nil
}

func runBranchAndBound(ctx context.Context, m costmodel.Model, opts Options) Result {
	e := bbEngine{
		m:     m,
		n:     m.Len(),
		ctl:   newController(ctx, BranchAndBound, m, opts, time.Now()),
		tree:  NewSearchTree(),
		front: newFrontier(opts.MaxFrontier),
		stats: &SearchStats{},
	}
	e.ctl.stats = e.stats

	// Seed phase: baseline and greedy share the budget and report as this run.
	construct(e.ctl, m, opts, false)
	if e.ctl.exceeded() {
		return e.ctl.result()
	}

	e.start = deriveRNG(opts.Seed, streamRoot).Intn(e.n)
	rcm := newReducedCostMatrix(m)
	rcm.Reduce()
	root := e.tree.NewRoot(rcm, e.start)
	e.stats.Generated++
	if e.tree.Cost(root) < e.ctl.bestCost {
		e.front.enqueue(root, e.tree.Cost(root), 1)
		e.trackPeak()
	} else {
		e.tree.Release(root)
		e.stats.Pruned++
	}

	for e.front.Len() > 0 && !e.ctl.exceeded() {
		e.step(e.front.dequeue())
	}

	e.stats.Pruned += e.front.Len()

	return e.ctl.result()
}

// step resolves one node taken from the frontier.
func (e *bbEngine) step(id NodeID) {
	node := e.tree.Node(id)

	if node.Cost >= e.ctl.bestCost {
		e.tree.Release(id)
		e.stats.Pruned++
		return
	}

	if node.Depth == e.n {
		e.tree.Release(id)
		e.stats.Closed++
		if math.IsInf(e.m.Cost(node.Location, e.start), 1) {
			return
		}
		path := e.tree.Path(id)
		e.ctl.offer(path, costmodel.Evaluate(e.m, path), true)
		return
	}

	kids := e.tree.Expand(id)
	e.stats.Expanded++
	e.stats.Generated += len(kids)
	for _, k := range kids {
		if !e.front.full() && e.tree.Cost(k) < e.ctl.bestCost {
			e.front.enqueue(k, e.tree.Cost(k), node.Depth+1)
			continue
		}
		e.tree.Release(k)
		e.stats.Pruned++
	}
	e.trackPeak()
}

func (e *bbEngine) trackPeak() {
	if l := e.front.Len(); l > e.stats.PeakFrontier {
		e.stats.PeakFrontier = l
	}
}
