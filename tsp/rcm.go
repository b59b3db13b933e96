// Package tsp: reduced cost matrix.
//
// A ReducedCostMatrix holds the costs of the pairs a partial tour may still
// use, plus the accumulated lower bound of every tour that extends it.
//
// Operations:
//   - Select(i, j): commit to edge i→j. The current entry is added to the
//     bound, row i and column j are closed (+Inf) and the reversal j→i is
//     forbidden.
//   - Reduce(): subtract each row's finite minimum, then each column's, and
//     add the subtracted amounts to the bound. Afterwards every row and
//     column holds a zero or is entirely +Inf.
//
// Both operations only ever add non-negative amounts to the bound, so a
// child matrix never reports a lower bound than its parent.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtsp/costmodel"
	"github.com/katalvlaran/lvtsp/matrix"
)

// ReducedCostMatrix is an N×N cost table with an accumulated lower bound.
// It has value semantics in the search: children get independent clones.
type ReducedCostMatrix struct {
	values *matrix.Dense
	n      int
	cost   float64
}

// NewReducedCostMatrix copies the cost model into a fresh, unreduced matrix:
// entry (r, c) = m.Cost(r, c), bound 0.
//
// Errors: ErrNilModel, ErrEmptyModel, ErrNaNCost, ErrNegativeCost.
// Complexity: O(N²).
func NewReducedCostMatrix(m costmodel.Model) (*ReducedCostMatrix, error) {
	if err := validateModel(m); err != nil {
		return nil, err
	}

	return newReducedCostMatrix(m), nil
}

// newReducedCostMatrix is NewReducedCostMatrix for an already validated model.
func newReducedCostMatrix(m costmodel.Model) *ReducedCostMatrix {
	var n = m.Len()
	values, err := matrix.NewDense(n, n)
	if err != nil {
		panic(fmt.Sprintf("tsp: reduced cost matrix: %v", err))
	}

	var (
		r, c int
		row  []float64
	)
	for r = 0; r < n; r++ {
		row = values.Row(r)
		for c = 0; c < n; c++ {
			row[c] = m.Cost(r, c)
		}
	}

	return &ReducedCostMatrix{values: values, n: n}
}

// Cost returns the accumulated lower bound.
func (r *ReducedCostMatrix) Cost() float64 { return r.cost }

// Len returns the dimension N.
func (r *ReducedCostMatrix) Len() int { return r.n }

// At returns entry (row, col). Out-of-range indices panic.
func (r *ReducedCostMatrix) At(row, col int) float64 {
	r.mustIndex(row, col)

	return r.values.Row(row)[col]
}

// Select commits to the edge row→col.
//
// Precondition: At(row, col) is finite. Violations panic.
// Complexity: O(N).
func (r *ReducedCostMatrix) Select(row, col int) {
	r.mustIndex(row, col)
	var v = r.values.Row(row)[col]
	if math.IsInf(v, 1) {
		panic(fmt.Sprintf("tsp: select on infeasible entry (%d,%d)", row, col))
	}
	r.cost += v

	r.values.Row(col)[row] = math.Inf(1)

	var (
		inf = math.Inf(1)
		sel = r.values.Row(row)
		i   int
	)
	for i = 0; i < r.n; i++ {
		sel[i] = inf
		r.values.Row(i)[col] = inf
	}
}

// Reduce performs the row pass then the column pass. All-infinite rows and
// columns are skipped. A second call on a reduced matrix adds nothing.
// Complexity: O(N²).
func (r *ReducedCostMatrix) Reduce() {
	var (
		i, j  int
		row   []float64
		least float64
	)

	for i = 0; i < r.n; i++ {
		row = r.values.Row(i)
		least = math.Inf(1)
		for j = 0; j < r.n; j++ {
			if row[j] < least {
				least = row[j]
			}
		}
		if math.IsInf(least, 1) || least == 0 {
			continue
		}
		r.cost += least
		for j = 0; j < r.n; j++ {
			row[j] -= least
		}
	}

	for j = 0; j < r.n; j++ {
		least = math.Inf(1)
		for i = 0; i < r.n; i++ {
			if v := r.values.Row(i)[j]; v < least {
				least = v
			}
		}
		if math.IsInf(least, 1) || least == 0 {
			continue
		}
		r.cost += least
		for i = 0; i < r.n; i++ {
			r.values.Row(i)[j] -= least
		}
	}
}

// Clone returns an independent deep copy.
// Complexity: O(N²).
func (r *ReducedCostMatrix) Clone() *ReducedCostMatrix {
	return &ReducedCostMatrix{values: r.values.CloneDense(), n: r.n, cost: r.cost}
}

// String renders the bound followed by the table, for debugging.
func (r *ReducedCostMatrix) String() string {
	return fmt.Sprintf("cost=%g\n%s", r.cost, r.values.String())
}

func (r *ReducedCostMatrix) mustIndex(row, col int) {
	if row < 0 || row >= r.n || col < 0 || col >= r.n {
		panic(fmt.Sprintf("tsp: index (%d,%d) out of range for %d×%d matrix", row, col, r.n, r.n))
	}
}
