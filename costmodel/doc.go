// Package costmodel supplies problem instances to the tsp engine.
//
// A Model is an ordered, stable collection of N locations together with a
// directed cost function between any ordered pair. Costs are non-negative
// reals; math.Inf(1) means the pair is infeasible (no edge). The cost from a
// location to itself is always +Inf.
//
// Two implementations are provided:
//
//   - MatrixModel: an explicit N×N cost table (possibly asymmetric).
//   - Euclidean  : planar points with straight-line costs and an optional
//     set of blocked directed pairs.
//
// The package also hosts the tour evaluator (Evaluate / TourCost) and a
// YAML instance loader (LoadYAML / LoadFile) used by the command line.
package costmodel
