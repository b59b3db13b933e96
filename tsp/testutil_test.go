// Package tsp_test provides helpers shared across *_test.go files in this
// package: canonical instances, a brute-force oracle and a bare Model.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtsp/costmodel"
	"github.com/katalvlaran/lvtsp/tsp"
)

var inf = math.Inf(1)

const (
	// timeGenerous is large enough that no test instance ever hits it.
	timeGenerous = 30 * time.Second

	// seedDet is the deterministic seed used unless a test says otherwise.
	seedDet = int64(7)
)

// fourCities is the 4-location instance whose optimal cyclic cost is 35.
func fourCities(t testing.TB) *costmodel.MatrixModel {
	t.Helper()
	m, err := costmodel.FromRows([][]float64{
		{inf, 10, 15, 20},
		{5, inf, 9, 10},
		{6, 13, inf, 12},
		{8, 8, 9, inf},
	}, []string{"A", "B", "C", "D"})
	require.NoError(t, err)

	return m
}

// unreachable has no Hamiltonian cycle: every location has one way out and
// the edges collapse into the 1⇄2 loop.
func unreachable(t testing.TB) *costmodel.MatrixModel {
	t.Helper()
	m, err := costmodel.FromRows([][]float64{
		{inf, 3, inf, inf},
		{inf, inf, 4, inf},
		{inf, 2, inf, inf},
		{inf, inf, 1, inf},
	}, nil)
	require.NoError(t, err)

	return m
}

// randomInstance returns an n×n asymmetric integer instance; each
// off-diagonal pair is infeasible with probability holes.
func randomInstance(t testing.TB, n int, seed int64, holes float64) *costmodel.MatrixModel {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				rows[i][j] = inf
			case r.Float64() < holes:
				rows[i][j] = inf
			default:
				rows[i][j] = float64(1 + r.Intn(50))
			}
		}
	}
	m, err := costmodel.FromRows(rows, nil)
	require.NoError(t, err)

	return m
}

// bruteForce returns the optimal cyclic cost by fixing location 0 and
// enumerating every permutation of the rest. +Inf when no tour exists.
func bruteForce(m costmodel.Model) float64 {
	n := m.Len()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := inf
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			if c := costmodel.Evaluate(m, perm); c < best {
				best = c
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(1)

	return best
}

// funcModel adapts a closure to costmodel.Model without any validation.
type funcModel struct {
	n    int
	cost func(from, to int) float64
}

func (f funcModel) Len() int                  { return f.n }
func (f funcModel) Cost(from, to int) float64 { return f.cost(from, to) }

// generousOptions returns options that let every test instance finish.
func generousOptions(algo tsp.Algorithm) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Algo = algo
	opts.TimeLimit = timeGenerous
	opts.Seed = seedDet

	return opts
}

// requireValidResult checks the structural contract of a feasible Result.
func requireValidResult(t *testing.T, m costmodel.Model, res tsp.Result) {
	t.Helper()
	require.True(t, res.Feasible(), "expected a feasible tour")
	require.NoError(t, costmodel.ValidateTour(res.Tour, m.Len()))
	got, err := costmodel.TourCost(m, res.Tour)
	require.NoError(t, err)
	require.Equal(t, got, res.Cost, "reported cost must match the evaluator")
}
