// Package lvtsp computes Traveling Salesman tours under a wall-clock budget.
//
// The work is split across a few flat packages:
//
//	matrix/      row-major Dense storage shared by the cost model and the bound
//	costmodel/   cost models (explicit matrix, Euclidean points), instance
//	             loading and tour evaluation
//	tsp/         the engine: random baseline, greedy nearest neighbor,
//	             cheapest insertion, and best-first branch-and-bound on a
//	             reduced-cost-matrix bound
//	telemetry/   Prometheus metrics and OpenTelemetry spans for runs
//	config/      layered run configuration (defaults, YAML, environment)
//	logging/     slog construction for the command line
//	cmd/lvtsp    the lvtsp command
//
// Quick start:
//
//	m, _ := costmodel.FromRows(rows, names)
//	opts := tsp.DefaultOptions()
//	opts.TimeLimit = 5 * time.Second
//	res, err := tsp.Solve(ctx, m, opts)
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Cost, res.Route(m))
//
// Costs may be asymmetric. +Inf marks a missing edge; an instance with no
// feasible tour yields Cost == +Inf and a nil Tour rather than an error.
package lvtsp
