package costmodel

import (
	"fmt"
	"math"

	"github.com/yourbasic/bit"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision; ±Inf passes through.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// Evaluate returns the total cyclic cost of tour under m: the sum of every
// consecutive edge plus the closing edge tour[N-1] → tour[0].
//
// The result is +Inf when any of those edges is infeasible or when tour is
// empty. Indices are trusted; use ValidateTour first for foreign input.
//
// Complexity: O(len(tour)).
func Evaluate(m Model, tour []int) float64 {
	var n = len(tour)
	if n == 0 {
		return math.Inf(1)
	}

	var (
		sum float64
		c   float64
		i   int
	)
	for i = 0; i < n; i++ {
		c = m.Cost(tour[i], tour[(i+1)%n])
		if math.IsInf(c, 1) {
			return math.Inf(1)
		}
		sum += c
	}

	return round1e9(sum)
}

// ValidateTour reports whether tour visits every location of an n-location
// model exactly once.
//
// Errors: ErrInvalidTour (wrapped with the first offending position).
// Complexity: O(n).
func ValidateTour(tour []int, n int) error {
	if len(tour) != n || n == 0 {
		return fmt.Errorf("length %d, want %d: %w", len(tour), n, ErrInvalidTour)
	}
	seen := new(bit.Set)
	var (
		i int
		v int
	)
	for i, v = range tour {
		if v < 0 || v >= n {
			return fmt.Errorf("position %d: location %d: %w", i, v, ErrInvalidTour)
		}
		if seen.Contains(v) {
			return fmt.Errorf("position %d: location %d repeated: %w", i, v, ErrInvalidTour)
		}
		seen.Add(v)
	}

	return nil
}

// TourCost is the strict form of Evaluate: it validates the tour first and
// reports an infeasible edge as ErrInfeasibleTour instead of +Inf.
//
// Complexity: O(n).
func TourCost(m Model, tour []int) (float64, error) {
	if err := ValidateTour(tour, m.Len()); err != nil {
		return 0, err
	}
	var (
		n = len(tour)
		i int
		u int
		v int
	)
	for i = 0; i < n; i++ {
		u, v = tour[i], tour[(i+1)%n]
		if math.IsInf(m.Cost(u, v), 1) {
			return 0, fmt.Errorf("edge %d→%d: %w", u, v, ErrInfeasibleTour)
		}
	}

	return Evaluate(m, tour), nil
}
