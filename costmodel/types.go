package costmodel

import (
	"errors"
	"math"
	"strconv"
)

// Sentinel errors. Match with errors.Is; loaders wrap them with context.
var (
	// ErrEmptyModel is returned when a model would contain no locations.
	ErrEmptyModel = errors.New("costmodel: no locations")

	// ErrNegativeCost is returned when a cost is below zero.
	ErrNegativeCost = errors.New("costmodel: negative cost")

	// ErrNaNCost is returned when a cost is NaN.
	ErrNaNCost = errors.New("costmodel: NaN cost")

	// ErrLocationRange is returned when a location index is outside [0, N).
	ErrLocationRange = errors.New("costmodel: location index out of range")

	// ErrNamesMismatch is returned when the number of names differs from N.
	ErrNamesMismatch = errors.New("costmodel: names do not match locations")

	// ErrInvalidTour is returned when a tour is not a permutation of all locations.
	ErrInvalidTour = errors.New("costmodel: tour is not a permutation of the locations")

	// ErrInfeasibleTour is returned when a tour uses an infeasible edge.
	ErrInfeasibleTour = errors.New("costmodel: tour uses an infeasible edge")

	// ErrInstanceFormat is returned when an instance file defines neither or both
	// of costs and points.
	ErrInstanceFormat = errors.New("costmodel: instance must define exactly one of costs or points")
)

// Model is the contract between a problem instance and the engine.
//
// Len reports N; locations are identified by indices 0..N-1 and that order
// never changes. Cost returns the directed cost from → to, or +Inf when the
// pair is infeasible. Implementations must be immutable once built.
type Model interface {
	Len() int
	Cost(from, to int) float64
}

// Named is implemented by models that carry human-readable location names.
type Named interface {
	Name(i int) string
}

// Infeasible is the cost reported for a missing edge.
var Infeasible = math.Inf(1)

// NameOf returns m's name for location i, or its decimal index when m does
// not implement Named.
func NameOf(m Model, i int) string {
	if n, ok := m.(Named); ok {
		return n.Name(i)
	}

	return strconv.Itoa(i)
}

// checkCost applies the numeric policy shared by all models.
func checkCost(c float64) error {
	if math.IsNaN(c) {
		return ErrNaNCost
	}
	if c < 0 {
		return ErrNegativeCost
	}

	return nil
}

func checkNames(names []string, n int) error {
	if names != nil && len(names) != n {
		return ErrNamesMismatch
	}

	return nil
}
