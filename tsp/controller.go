package tsp

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/lvtsp/costmodel"
)

// searchController is the scaffolding every strategy shares: the clock, the
// best solution so far (BSSF) and the per-run counters. One controller
// belongs to exactly one run; nothing in it is global.
type searchController struct {
	algo   Algorithm
	ctx    context.Context
	model  costmodel.Model
	start  time.Time
	limit  time.Duration
	logger *slog.Logger
	hooks  Hooks

	bestTour  []int
	bestCost  float64
	solutions int

	stats *SearchStats // non-nil only for BranchAndBound
}

func newController(ctx context.Context, algo Algorithm, m costmodel.Model, opts Options, start time.Time) *searchController {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &searchController{
		algo:     algo,
		ctx:      ctx,
		model:    m,
		start:    start,
		limit:    opts.TimeLimit,
		logger:   logger.With("algo", algo.String()),
		hooks:    opts.Hooks,
		bestCost: math.Inf(1),
	}
}

// exceeded is the only suspension point of a run: true once the budget is
// spent or ctx is done. A zero budget is spent from the start.
func (c *searchController) exceeded() bool {
	if c.ctx.Err() != nil {
		return true
	}

	return time.Since(c.start) >= c.limit
}

// elapsed returns the time spent so far, clamped to the budget.
func (c *searchController) elapsed() time.Duration {
	d := time.Since(c.start)
	if d > c.limit {
		return c.limit
	}

	return d
}

// offer replaces the BSSF when cost is strictly better. counted selects
// whether the replacement increments the run's solution count (seeds do not).
// The tour is copied.
func (c *searchController) offer(tour []int, cost float64, counted bool) bool {
	if math.IsInf(cost, 1) || cost >= c.bestCost {
		return false
	}
	c.bestTour = append(c.bestTour[:0], tour...)
	c.bestCost = cost
	if counted {
		c.solutions++
	}

	ev := Improvement{Algo: c.algo, Cost: cost, Elapsed: c.elapsed(), Solutions: c.solutions}
	c.logger.Debug("new best solution",
		"cost", ev.Cost,
		"elapsed", ev.Elapsed,
		"solutions", ev.Solutions,
	)
	if c.hooks.OnImprove != nil {
		c.hooks.OnImprove(ev)
	}

	return true
}

// result freezes the controller into a Result and logs the run summary.
func (c *searchController) result() Result {
	res := Result{
		Algo:      c.algo,
		Cost:      c.bestCost,
		Elapsed:   c.elapsed(),
		Solutions: c.solutions,
	}
	if !math.IsInf(c.bestCost, 1) {
		res.Tour = append([]int(nil), c.bestTour...)
	}

	attrs := []any{
		"cost", res.Cost,
		"elapsed", res.Elapsed,
		"solutions", res.Solutions,
	}
	if c.stats != nil {
		s := *c.stats
		res.Search = &s
		attrs = append(attrs,
			"peak_frontier", s.PeakFrontier,
			"generated", s.Generated,
			"pruned", s.Pruned,
		)
	}
	c.logger.Info("run finished", attrs...)

	return res
}
