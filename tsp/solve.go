// Package tsp - unified dispatcher.
//
// Solve validates the input once and routes to the strategy named by
// Options.Algo. RunRandom, RunGreedy, RunInsertion and RunBranchAndBound are
// the direct entry points; all of them share the searchController
// scaffolding.
package tsp

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvtsp/costmodel"
)

// Solve runs the strategy selected by opts.Algo.
//
// Errors: ErrUnsupportedAlgorithm and the input sentinels of validateOptions.
func Solve(ctx context.Context, m costmodel.Model, opts Options) (Result, error) {
	switch opts.Algo {
	case RandomTour:
		return RunRandom(ctx, m, opts)
	case Greedy:
		return RunGreedy(ctx, m, opts)
	case BranchAndBound:
		return RunBranchAndBound(ctx, m, opts)
	case CheapestInsertion:
		return RunInsertion(ctx, m, opts)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}

// RunRandom runs the random-permutation baseline. Result.Solutions is the
// number of permutations tried.
func RunRandom(ctx context.Context, m costmodel.Model, opts Options) (Result, error) {
	if err := validateOptions(m, opts, RandomTour); err != nil {
		return Result{}, err
	}

	ctl := newController(ctx, RandomTour, m, opts, time.Now())
	tour, cost, tried := randomBaseline(m, deriveRNG(opts.Seed, streamBaseline), opts.RandomAttempts, ctl.exceeded)
	ctl.offer(tour, cost, false)
	ctl.solutions = tried

	return ctl.result(), nil
}

// validateOptions checks the model and the options relevant to algo.
// Complexity: O(N²) (every cost is inspected once).
func validateOptions(m costmodel.Model, opts Options, algo Algorithm) error {
	if err := validateModel(m); err != nil {
		return err
	}
	if opts.TimeLimit < 0 {
		return ErrTimeLimit
	}
	if opts.RandomAttempts < 1 {
		return ErrRandomAttempts
	}
	if algo == BranchAndBound && opts.MaxFrontier < 1 {
		return ErrFrontierCapacity
	}

	return nil
}

// validateModel rejects nil or empty models and NaN or negative costs.
func validateModel(m costmodel.Model) error {
	if m == nil {
		return ErrNilModel
	}
	var n = m.Len()
	if n < 1 {
		return ErrEmptyModel
	}

	var (
		i, j int
		c    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c = m.Cost(i, j)
			if math.IsNaN(c) {
				return fmt.Errorf("cost(%d,%d): %w", i, j, ErrNaNCost)
			}
			if c < 0 {
				return fmt.Errorf("cost(%d,%d): %w", i, j, ErrNegativeCost)
			}
		}
	}

	return nil
}
