package telemetry

import (
	"errors"
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvtsp/tsp"
)

const namespace = "lvtsp"

// Recorder holds the per-algorithm metric families.
type Recorder struct {
	runs         *prometheus.CounterVec
	infeasible   *prometheus.CounterVec
	improvements *prometheus.CounterVec
	solutions    *prometheus.CounterVec
	bestCost     *prometheus.GaugeVec
	duration     *prometheus.HistogramVec
	generated    prometheus.Counter
	pruned       prometheus.Counter
	peakFrontier prometheus.Gauge
}

// NewRecorder creates the metric families and registers them with reg.
// A family already registered with an identical descriptor is reused, so
// several Recorders can share one registry.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished solver runs by algorithm.",
		}, []string{"algorithm"}),
		infeasible: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "infeasible_runs_total",
			Help:      "Runs that finished without a feasible tour.",
		}, []string{"algorithm"}),
		improvements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bssf_improvements_total",
			Help:      "Replacements of the best solution so far, including seeds.",
		}, []string{"algorithm"}),
		solutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solutions_total",
			Help:      "Solutions reported in run results.",
		}, []string{"algorithm"}),
		bestCost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_cost",
			Help:      "Tour cost of the most recent run (+Inf when infeasible).",
		}, []string{"algorithm"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock time per run, clamped to the time limit.",
			Buckets:   []float64{0.001, 0.01, 0.1, 1, 10, 60, 600},
		}, []string{"algorithm"}),
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bnb",
			Name:      "states_generated_total",
			Help:      "Search states created by branch-and-bound.",
		}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bnb",
			Name:      "states_pruned_total",
			Help:      "Search states pruned by branch-and-bound.",
		}),
		peakFrontier: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "bnb",
			Name:      "peak_frontier",
			Help:      "Peak frontier size of the most recent branch-and-bound run.",
		}),
	}

	var err error
	if r.runs, err = register(reg, r.runs); err != nil {
		return nil, err
	}
	if r.infeasible, err = register(reg, r.infeasible); err != nil {
		return nil, err
	}
	if r.improvements, err = register(reg, r.improvements); err != nil {
		return nil, err
	}
	if r.solutions, err = register(reg, r.solutions); err != nil {
		return nil, err
	}
	if r.bestCost, err = register(reg, r.bestCost); err != nil {
		return nil, err
	}
	if r.duration, err = register(reg, r.duration); err != nil {
		return nil, err
	}
	if r.generated, err = register(reg, r.generated); err != nil {
		return nil, err
	}
	if r.pruned, err = register(reg, r.pruned); err != nil {
		return nil, err
	}
	if r.peakFrontier, err = register(reg, r.peakFrontier); err != nil {
		return nil, err
	}

	return r, nil
}

// register adds c to reg, returning the existing collector on a duplicate.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, fmt.Errorf("register metric: %w", err)
	}

	return c, nil
}

// Observe records one finished run.
func (r *Recorder) Observe(res tsp.Result) {
	algo := res.Algo.String()
	r.runs.WithLabelValues(algo).Inc()
	r.solutions.WithLabelValues(algo).Add(float64(res.Solutions))
	r.duration.WithLabelValues(algo).Observe(res.Elapsed.Seconds())
	r.bestCost.WithLabelValues(algo).Set(res.Cost)
	if math.IsInf(res.Cost, 1) {
		r.infeasible.WithLabelValues(algo).Inc()
	}
	if s := res.Search; s != nil {
		r.generated.Add(float64(s.Generated))
		r.pruned.Add(float64(s.Pruned))
		r.peakFrontier.Set(float64(s.PeakFrontier))
	}
}

// Hooks returns hooks that count improvements and then call next.
func (r *Recorder) Hooks(next tsp.Hooks) tsp.Hooks {
	return tsp.Hooks{
		OnImprove: func(ev tsp.Improvement) {
			r.improvements.WithLabelValues(ev.Algo.String()).Inc()
			if next.OnImprove != nil {
				next.OnImprove(ev)
			}
		},
	}
}
