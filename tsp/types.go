package tsp

import (
	"errors"
	"log/slog"
	"strings"
	"time"
)

// Sentinel errors for invalid input. Search outcomes are never errors.
var (
	// ErrNilModel is returned when the cost model is nil.
	ErrNilModel = errors.New("tsp: nil cost model")

	// ErrEmptyModel is returned when the cost model has no locations.
	ErrEmptyModel = errors.New("tsp: cost model has no locations")

	// ErrNegativeCost is returned when the model reports a cost below zero.
	ErrNegativeCost = errors.New("tsp: negative cost")

	// ErrNaNCost is returned when the model reports a NaN cost.
	ErrNaNCost = errors.New("tsp: NaN cost")

	// ErrTimeLimit is returned for a negative TimeLimit.
	ErrTimeLimit = errors.New("tsp: negative time limit")

	// ErrFrontierCapacity is returned when MaxFrontier < 1 for BranchAndBound.
	ErrFrontierCapacity = errors.New("tsp: frontier capacity must be at least 1")

	// ErrRandomAttempts is returned when RandomAttempts < 1.
	ErrRandomAttempts = errors.New("tsp: random attempts must be at least 1")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// Algorithm selects one strategy from the closed set the package implements.
type Algorithm uint8

const (
	// RandomTour tries random permutations until one is feasible.
	RandomTour Algorithm = iota
	// Greedy runs multi-start nearest neighbour.
	Greedy
	// BranchAndBound runs the best-first reduced-cost-matrix search.
	BranchAndBound
	// CheapestInsertion grows cycles by the cheapest detour, from every start.
	CheapestInsertion
)

// String returns the canonical short name used by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case RandomTour:
		return "random"
	case Greedy:
		return "greedy"
	case BranchAndBound:
		return "bnb"
	case CheapestInsertion:
		return "insertion"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a name to an Algorithm. Accepted (case-insensitive):
// "random", "greedy", "bnb", "branch-and-bound", "insertion",
// "cheapest-insertion".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return RandomTour, nil
	case "greedy":
		return Greedy, nil
	case "bnb", "branch-and-bound":
		return BranchAndBound, nil
	case "insertion", "cheapest-insertion":
		return CheapestInsertion, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

// Defaults used by DefaultOptions.
const (
	DefaultTimeLimit      = 60 * time.Second
	DefaultMaxFrontier    = 100_000
	DefaultRandomAttempts = 10_000
)

// Improvement describes one replacement of the best solution so far.
type Improvement struct {
	Algo      Algorithm
	Cost      float64
	Elapsed   time.Duration
	Solutions int // solutions counted by the reporting run so far
}

// Hooks are optional callbacks invoked synchronously from the run goroutine.
type Hooks struct {
	// OnImprove fires every time a run replaces its best solution so far,
	// including the seed adopted from the random baseline.
	OnImprove func(Improvement)
}

// Options configures a run.
type Options struct {
	// Algo selects the strategy used by Solve.
	Algo Algorithm

	// TimeLimit is the wall-clock budget measured from the start of the run.
	// Zero means the budget is already spent: runs return their seed result
	// without entering their main loop. Negative values are rejected.
	TimeLimit time.Duration

	// MaxFrontier bounds the branch-and-bound frontier. Children that do not
	// fit are counted as pruned.
	MaxFrontier int

	// Seed drives every random choice (baseline permutations, greedy start
	// offset, root location). 0 selects a fixed default seed.
	Seed int64

	// RandomAttempts caps the permutations tried by the random baseline.
	RandomAttempts int

	// Logger receives Debug records on every improvement and one Info record
	// per finished run. Nil discards.
	Logger *slog.Logger

	// Hooks are optional observers.
	Hooks Hooks
}

// DefaultOptions returns options for a one-minute branch-and-bound run.
func DefaultOptions() Options {
	return Options{
		Algo:           BranchAndBound,
		TimeLimit:      DefaultTimeLimit,
		MaxFrontier:    DefaultMaxFrontier,
		Seed:           0,
		RandomAttempts: DefaultRandomAttempts,
	}
}
