// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtsp/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrIndexOutOfBounds)
}

func TestNewFilled_Inf(t *testing.T) {
	m, err := matrix.NewFilled(3, 3, math.Inf(1))
	require.NoError(t, err)
	var i int
	for i = 0; i < 3; i++ {
		for _, v := range m.Row(i) {
			assert.True(t, math.IsInf(v, 1))
		}
	}
}

func TestNewDenseFrom(t *testing.T) {
	inf := math.Inf(1)
	m, err := matrix.NewDenseFrom([][]float64{{inf, 1}, {2, inf}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	v, _ := m.At(1, 0)
	assert.Equal(t, 2.0, v)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaN)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.CloneDense()
	cp.Row(0)[0] = 100

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "clone must not alias the source buffer")

	var iface matrix.Matrix = m
	other := iface.Clone()
	require.NoError(t, other.Set(1, 1, -1))
	v, _ = m.At(1, 1)
	assert.Equal(t, 4.0, v)
}

func TestDense_RowAliasesStorage(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	row := m.Row(1)
	require.Len(t, row, 2)
	row[1] = 9

	v, _ := m.At(1, 1)
	assert.Equal(t, 9.0, v)
}

// sliceMatrix is a minimal non-Dense Matrix used to exercise Copy's generic path.
type sliceMatrix struct{ a [][]float64 }

func (s sliceMatrix) Rows() int { return len(s.a) }
func (s sliceMatrix) Cols() int { return len(s.a[0]) }
func (s sliceMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(s.a) || j < 0 || j >= len(s.a[0]) {
		return 0, matrix.ErrIndexOutOfBounds
	}
	return s.a[i][j], nil
}

func (s sliceMatrix) Set(i, j int, v float64) error {
	s.a[i][j] = v
	return nil
}

func (s sliceMatrix) Clone() matrix.Matrix { return s }

func TestCopy(t *testing.T) {
	d, err := matrix.Copy(sliceMatrix{a: [][]float64{{0, 5}, {6, 0}}})
	require.NoError(t, err)
	v, _ := d.At(1, 0)
	assert.Equal(t, 6.0, v)

	_, err = matrix.Copy(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
