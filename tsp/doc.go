// Package tsp computes Travelling Salesman tours under a wall-clock budget.
//
// Four strategies share one controller (timing, best-solution-so-far and
// statistics bookkeeping) and are selected through Options.Algo:
//
//   - RandomTour       : random permutations until one is feasible (baseline).
//   - Greedy           : multi-start nearest neighbour, seeded by RandomTour.
//   - CheapestInsertion: multi-start cheapest insertion into a growing cycle.
//   - BranchAndBound   : best-first search over partial tours bounded by a
//     reduced cost matrix, warm-started by Greedy.
//
// Cost model:
//
//	Instances come from costmodel.Model: N locations and a directed cost
//	function that may be asymmetric and may return +Inf (no edge).
//
// Outcomes are data, not errors:
//
//	No feasible tour     → Result.Cost == +Inf and Result.Tour == nil.
//	Budget exhausted     → the current best is returned as a normal Result.
//	Frontier exhausted   → the search ends early with the current best.
//
// Errors are reserved for invalid input (nil/empty model, NaN or negative
// costs, negative time limit, frontier capacity < 1). Precondition
// violations inside the engine (selecting an infinite edge, expanding a node
// twice) are programmer errors and panic.
//
// Concurrency: a run is single-threaded and owns all of its state, so
// independent runs may execute in parallel goroutines.
//
// Complexity (branch-and-bound):
//   - Per expansion: O(N) children × O(N²) clone+select+reduce = O(N³).
//   - Memory: O(F·N²) for F resident frontier nodes plus O(S) arena records
//     for S generated states.
package tsp
