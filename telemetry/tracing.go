package telemetry

import (
	"context"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvtsp/tsp"
)

const instrumentationName = "github.com/katalvlaran/lvtsp"

// RunFunc is one solver invocation.
type RunFunc func(ctx context.Context) (tsp.Result, error)

// Tracer opens one span per solver run.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer builds a Tracer on tp; nil uses the global provider, which is a
// no-op until the application installs one.
func NewTracer(tp trace.TracerProvider) *Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Tracer{tracer: tp.Tracer(instrumentationName)}
}

// Run executes fn inside a "tsp.<algo>" span annotated with the instance
// size and the result summary. Input errors mark the span as failed; an
// infeasible result does not.
func (t *Tracer) Run(ctx context.Context, algo tsp.Algorithm, locations int, fn RunFunc) (tsp.Result, error) {
	ctx, span := t.tracer.Start(ctx, "tsp."+algo.String(),
		trace.WithAttributes(
			attribute.String("tsp.algorithm", algo.String()),
			attribute.Int("tsp.locations", locations),
		),
	)
	defer span.End()

	res, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}

	span.SetAttributes(
		attribute.Bool("tsp.feasible", res.Feasible()),
		attribute.Int("tsp.solutions", res.Solutions),
		attribute.Int64("tsp.elapsed_ms", res.Elapsed.Milliseconds()),
	)
	if !math.IsInf(res.Cost, 1) {
		span.SetAttributes(attribute.Float64("tsp.cost", res.Cost))
	}
	if s := res.Search; s != nil {
		span.SetAttributes(
			attribute.Int("tsp.bnb.generated", s.Generated),
			attribute.Int("tsp.bnb.pruned", s.Pruned),
			attribute.Int("tsp.bnb.peak_frontier", s.PeakFrontier),
		)
	}
	span.SetStatus(codes.Ok, "")

	return res, nil
}
