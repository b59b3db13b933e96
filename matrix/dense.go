// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order
// (offset = i*c + j).
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled creates an r×c Dense matrix with every entry set to v.
// Handy for +Inf-initialized cost tables.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i int
	for i = range m.data {
		m.data[i] = v
	}

	return m, nil
}

// NewDenseFrom copies a rectangular [][]float64 into a new Dense.
// Rows must all have the same, positive length; NaN is rejected while
// ±Inf is kept verbatim.
//
// Errors: ErrInvalidDimensions, ErrRagged, ErrNaN (wrapped with coordinates).
// Complexity: O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = range rows {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d entries, want %d: %w", i, len(rows[i]), m.c, ErrRagged)
		}
		for j = range rows[i] {
			if math.IsNaN(rows[i][j]) {
				return nil, denseErrorf("NewDenseFrom", i, j, ErrNaN)
			}
			m.data[i*m.c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Copy returns a Dense deep copy of any Matrix, reusing the fast path when m
// is already *Dense.
// Complexity: O(r*c).
func Copy(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns the i-th row as a slice aliasing the backing buffer.
// Writes through the slice are visible in m. The caller guarantees
// 0 ≤ i < Rows(); an invalid index panics like a slice access would.
// Complexity: O(1).
func (m *Dense) Row(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix { return m.clone() }

// CloneDense is Clone without the interface round-trip.
func (m *Dense) CloneDense() *Dense { return m.clone() }

func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders one bracketed row per line for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var (
		b    strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		b.WriteString("[")
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j+1 < m.c {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
