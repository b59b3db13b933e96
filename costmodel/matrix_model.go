package costmodel

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/katalvlaran/lvtsp/matrix"
)

// MatrixModel is a Model backed by an explicit N×N cost table.
// Entry (r, c) is the cost of travelling from location r to location c.
type MatrixModel struct {
	costs *matrix.Dense
	names []string
}

var (
	_ Model = (*MatrixModel)(nil)
	_ Named = (*MatrixModel)(nil)
)

// FromMatrix validates m and copies it into a MatrixModel.
//
// Contract:
//   - m is square with N ≥ 1;
//   - every off-diagonal entry is a non-negative real or +Inf;
//   - diagonal entries are ignored (self-cost is always +Inf);
//   - names is optional; when present len(names) == N.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNaNCost, ErrNegativeCost,
// ErrNamesMismatch (wrapped with the offending coordinates where relevant).
//
// Complexity: O(N²).
func FromMatrix(m matrix.Matrix, names []string) (*MatrixModel, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	if m.Rows() != m.Cols() {
		return nil, matrix.ErrNonSquare
	}
	d, err := matrix.Copy(m)
	if err != nil {
		return nil, err
	}
	if err = checkNames(names, d.Rows()); err != nil {
		return nil, err
	}

	var (
		n    = d.Rows()
		i, j int
		row  []float64
	)
	for i = 0; i < n; i++ {
		row = d.Row(i)
		for j = 0; j < n; j++ {
			if i == j {
				row[j] = math.Inf(1)
				continue
			}
			if err = checkCost(row[j]); err != nil {
				return nil, fmt.Errorf("cost(%d,%d): %w", i, j, err)
			}
		}
	}

	return &MatrixModel{costs: d, names: slices.Clone(names)}, nil
}

// FromRows is FromMatrix over a [][]float64 literal.
func FromRows(rows [][]float64, names []string) (*MatrixModel, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyModel
	}
	d, err := matrix.NewDenseFrom(rows)
	if err != nil {
		if errors.Is(err, matrix.ErrNaN) {
			return nil, fmt.Errorf("%v: %w", err, ErrNaNCost)
		}
		return nil, err
	}

	return FromMatrix(d, names)
}

// Len reports the number of locations.
func (m *MatrixModel) Len() int { return m.costs.Rows() }

// Cost returns the directed cost from → to. Indices must be in range.
func (m *MatrixModel) Cost(from, to int) float64 { return m.costs.Row(from)[to] }

// Name returns the configured name of location i, or its index.
func (m *MatrixModel) Name(i int) string {
	if m.names == nil {
		return strconv.Itoa(i)
	}

	return m.names[i]
}
