// Package tsp_test validates the best-first branch-and-bound search.
// Focus:
//  1. Optimality on the canonical 4-city instance and against brute force.
//  2. Dominance over the greedy seed and BSSF monotonicity.
//  3. Statistics accounting (every generated state is classified once).
//  4. Budget, cancellation, capacity and infeasibility edge cases.
package tsp_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvtsp/costmodel"
	"github.com/katalvlaran/lvtsp/tsp"
)

// BranchAndBoundSuite exercises RunBranchAndBound under various scenarios.
type BranchAndBoundSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *BranchAndBoundSuite) SetupTest() { s.ctx = context.Background() }

func (s *BranchAndBoundSuite) run(m costmodel.Model, opts tsp.Options) tsp.Result {
	res, err := tsp.RunBranchAndBound(s.ctx, m, opts)
	s.Require().NoError(err)
	s.Require().Equal(tsp.BranchAndBound, res.Algo)
	s.Require().NotNil(res.Search, "exact search always reports statistics")

	return res
}

// requireAccounting checks Generated == Pruned + Closed + Expanded.
func (s *BranchAndBoundSuite) requireAccounting(st *tsp.SearchStats) {
	s.Require().Equal(st.Generated, st.Pruned+st.Closed+st.Expanded,
		"unaccounted states: %+v", *st)
}

// TestFourCities verifies the known optimum of 35.
func (s *BranchAndBoundSuite) TestFourCities() {
	m := fourCities(s.T())
	res := s.run(m, generousOptions(tsp.BranchAndBound))

	requireValidResult(s.T(), m, res)
	s.Equal(35.0, res.Cost)
	s.Equal([]string{"A", "B", "D", "C"}, rotateTo(res.Route(m), "A"))
	s.requireAccounting(res.Search)
}

// TestMatchesBruteForce compares against exhaustive enumeration.
func (s *BranchAndBoundSuite) TestMatchesBruteForce() {
	var seed int64
	for seed = 1; seed <= 30; seed++ {
		m := randomInstance(s.T(), 7, seed, 0.25)
		opts := generousOptions(tsp.BranchAndBound)
		opts.Seed = seed
		res := s.run(m, opts)

		want := bruteForce(m)
		if math.IsInf(want, 1) {
			s.False(res.Feasible(), "seed %d: no tour exists", seed)
			continue
		}
		requireValidResult(s.T(), m, res)
		s.Equal(want, res.Cost, "seed %d", seed)
		s.requireAccounting(res.Search)
	}
}

// TestDominatesGreedy checks the exact result is never worse than greedy.
func (s *BranchAndBoundSuite) TestDominatesGreedy() {
	var seed int64
	for seed = 1; seed <= 10; seed++ {
		m := randomInstance(s.T(), 8, 100+seed, 0.1)
		for _, capacity := range []int{1, 3, tsp.DefaultMaxFrontier} {
			opts := generousOptions(tsp.BranchAndBound)
			opts.Seed = seed
			opts.MaxFrontier = capacity

			g, err := tsp.RunGreedy(s.ctx, m, opts)
			s.Require().NoError(err)
			b := s.run(m, opts)

			s.LessOrEqual(b.Cost, g.Cost, "seed %d capacity %d", seed, capacity)
			s.LessOrEqual(b.Search.PeakFrontier, capacity)
			s.requireAccounting(b.Search)
		}
	}
}

// TestBSSFMonotonic records every improvement across seed and search.
func (s *BranchAndBoundSuite) TestBSSFMonotonic() {
	m := randomInstance(s.T(), 9, 42, 0)
	opts := generousOptions(tsp.BranchAndBound)

	var events []tsp.Improvement
	opts.Hooks.OnImprove = func(ev tsp.Improvement) { events = append(events, ev) }
	res := s.run(m, opts)

	s.Require().NotEmpty(events)
	for i, ev := range events {
		s.Equal(tsp.BranchAndBound, ev.Algo, "event %d reported under another algorithm", i)
		if i > 0 {
			s.Less(ev.Cost, events[i-1].Cost, "BSSF did not improve at event %d", i)
			s.GreaterOrEqual(ev.Solutions, events[i-1].Solutions)
		}
	}
	last := events[len(events)-1]
	s.Equal(res.Cost, last.Cost)
	s.Equal(res.Solutions, last.Solutions, "only search improvements are counted")
}

// TestSeedPhaseLogsAsOneRun checks that the seed phase does not report as a
// separate greedy run.
func (s *BranchAndBoundSuite) TestSeedPhaseLogsAsOneRun() {
	var buf bytes.Buffer
	opts := generousOptions(tsp.BranchAndBound)
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.run(fourCities(s.T()), opts)

	out := buf.String()
	s.Equal(1, strings.Count(out, `msg="run finished"`))
	s.NotContains(out, "algo=greedy")
	s.Contains(out, "algo=bnb")
}

// TestChainInstance uses a directed ring of unit edges among expensive detours.
func (s *BranchAndBoundSuite) TestChainInstance() {
	m, err := costmodel.FromRows([][]float64{
		{inf, 1, 2, 100, 100},
		{100, inf, 1, 2, 100},
		{100, 100, inf, 1, 60},
		{100, 100, 100, inf, 1},
		{1, 100, 100, 100, inf},
	}, nil)
	s.Require().NoError(err)

	opts := generousOptions(tsp.BranchAndBound)
	g, err := tsp.RunGreedy(s.ctx, m, opts)
	s.Require().NoError(err)
	res := s.run(m, opts)

	s.Equal(5.0, bruteForce(m))
	s.Equal(5.0, res.Cost)
	s.LessOrEqual(res.Cost, g.Cost)
	s.Positive(res.Search.Generated)
	s.requireAccounting(res.Search)
}

// TestZeroBudget returns the seed without touching the frontier.
func (s *BranchAndBoundSuite) TestZeroBudget() {
	m := fourCities(s.T())
	opts := generousOptions(tsp.BranchAndBound)
	opts.TimeLimit = 0
	res := s.run(m, opts)

	s.Zero(res.Solutions)
	s.Equal(tsp.SearchStats{}, *res.Search)
	s.Zero(res.Elapsed)
}

// TestCanceledContext behaves like an expired budget.
func (s *BranchAndBoundSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.ctx = ctx

	res := s.run(randomInstance(s.T(), 10, 5, 0), generousOptions(tsp.BranchAndBound))
	s.Zero(res.Search.Generated)
	s.Zero(res.Solutions)
}

// TestUnreachable reports +Inf and an empty tour.
func (s *BranchAndBoundSuite) TestUnreachable() {
	res := s.run(unreachable(s.T()), generousOptions(tsp.BranchAndBound))
	s.True(math.IsInf(res.Cost, 1))
	s.Nil(res.Tour)
	s.Zero(res.Solutions)
	s.requireAccounting(res.Search)
}

// TestSingleLocation has no cycle: the only edge is the infinite self-loop.
func (s *BranchAndBoundSuite) TestSingleLocation() {
	m, err := costmodel.FromRows([][]float64{{0}}, nil)
	s.Require().NoError(err)
	res := s.run(m, generousOptions(tsp.BranchAndBound))

	s.False(res.Feasible())
	s.Equal(1, res.Search.Generated)
	s.Equal(1, res.Search.Closed)
	s.requireAccounting(res.Search)
}

// TestCapacityOnePrunesOverflow ensures overflowing children are counted.
func (s *BranchAndBoundSuite) TestCapacityOnePrunesOverflow() {
	m := randomInstance(s.T(), 8, 77, 0)
	opts := generousOptions(tsp.BranchAndBound)
	opts.MaxFrontier = 1
	res := s.run(m, opts)

	requireValidResult(s.T(), m, res)
	s.LessOrEqual(res.Search.PeakFrontier, 1)
	s.requireAccounting(res.Search)
}

func TestBranchAndBoundSuite(t *testing.T) {
	suite.Run(t, new(BranchAndBoundSuite))
}

func TestBranchAndBound_Deterministic(t *testing.T) {
	m := randomInstance(t, 8, 9, 0.2)
	opts := generousOptions(tsp.BranchAndBound)

	a, err := tsp.RunBranchAndBound(context.Background(), m, opts)
	require.NoError(t, err)
	b, err := tsp.RunBranchAndBound(context.Background(), m, opts)
	require.NoError(t, err)

	require.Equal(t, a.Cost, b.Cost)
	require.Equal(t, a.Tour, b.Tour)
	require.Equal(t, *a.Search, *b.Search)
}

// rotateTo rotates a cyclic route so that it starts at first.
func rotateTo(route []string, first string) []string {
	for i, v := range route {
		if v == first {
			return append(append([]string(nil), route[i:]...), route[:i]...)
		}
	}

	return route
}
