// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 storage shared by the cost
// models and the reduced-cost matrices of the tsp engine.
//
// The package is deliberately small:
//
//   - Matrix: bounds-checked Rows/Cols/At/Set/Clone contract.
//   - Dense:  row-major implementation over a single flat buffer, with
//     unchecked row views for hot loops that have already validated their
//     indices.
//
// +Inf is a legal value everywhere and means "no edge"; NaN is rejected by
// the constructors that ingest user data (NewDenseFrom).
//
// Complexity:
//
//	Rows/Cols/At/Set are O(1); Clone and NewDenseFrom are O(r*c).
package matrix
