// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"testing"

	"cogentcore.org/tensordiag/tensor"
	"cogentcore.org/tensordiag/tensor/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var rowMajor4x3 = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

// colMajor4x3 returns the 4x3 matrix of [rowMajor4x3]
// stored in column major order with 1-based indexes.
func colMajor4x3() *tensor.Float64 {
	tsr := tensor.NewFloat64FromValues(1, 4, 7, 10, 2, 5, 8, 11, 3, 6, 9, 12)
	tsr.SetOrder(tensor.ColMajor)
	tsr.SetShapeSizes(4, 3)
	tsr.SetOrigin(1)
	return tsr
}

func diagValues(d mat.Diagonal) []float64 {
	n := d.Diag()
	vals := make([]float64, n)
	for i := range n {
		vals[i] = d.At(i, i)
	}
	return vals
}

func TestMatrix(t *testing.T) {
	m := colMajor4x3()
	mx, err := NewMatrix(m)
	require.NoError(t, err)
	r, c := mx.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 3, c)
	dense := mat.NewDense(4, 3, rowMajor4x3)
	assert.True(t, mat.Equal(dense, mx))
	assert.Equal(t, 4.0, mx.T().At(0, 1))

	_, err = NewMatrix(tensor.NewFloat64(3))
	assert.ErrorIs(t, err, mat.ErrShape)
	_, err = NewMatrix(tensor.NewString(2, 2))
	assert.Error(t, err)
	_, err = NewSymmetric(m)
	assert.ErrorIs(t, err, mat.ErrSquare)

	sq := tensor.NewFloat64FromValues(1, 2, 3, 4)
	sq.SetShapeSizes(2, 2)
	sy, err := NewSymmetric(sq)
	require.NoError(t, err)
	assert.Equal(t, 2, sy.SymmetricDim())
	assert.Equal(t, 2.0, sy.At(1, 0))
	assert.Equal(t, 2.0, sy.T().At(1, 0))

	_, err = NewDense(m)
	assert.Error(t, err)
	dn, err := NewDense(sq)
	require.NoError(t, err)
	dn.Set(0, 1, 7)
	assert.Equal(t, 7.0, sq.Float(0, 1))

	to := tensor.NewFloat64()
	to.SetOrigin(1)
	CopyFromDense(to, dense)
	assert.Equal(t, []int{4, 3}, to.ShapeSizes())
	assert.Equal(t, 1.0, to.Float(1, 1))
	assert.Equal(t, 6.0, to.Float(2, 3))
}

func TestDiagonalGonum(t *testing.T) {
	m := colMajor4x3()
	dense := mat.NewDense(4, 3, rowMajor4x3)

	d, err := Diagonal(m)
	require.NoError(t, err)
	assert.Equal(t, diagValues(dense.DiagView()), d.Values)
	assert.Equal(t, []float64{1, 5, 9}, d.Values)

	d, err = Diagonal(m, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, diagValues(dense.Slice(1, 4, 0, 3).(*mat.Dense).DiagView()), d.Values)

	d, err = Diagonal(m, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, diagValues(dense.Slice(0, 4, 1, 3).(*mat.Dense).DiagView()), d.Values)
	assert.Equal(t, []float64{2, 6}, d.Values)

	b := tensor.NewFloat64FromValues(rowMajor4x3...)
	b.SetShapeSizes(4, 3)
	d, err = Diagonal(tensor.Transpose(tensor.Transpose(b)), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 8, 12}, d.Values)

	d, err = Diagonal(m, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())

	_, err = Diagonal(m, -1, 0)
	assert.ErrorIs(t, err, diag.ErrNegativeOffset)
	_, err = Diagonal(tensor.NewString(2, 2))
	assert.Error(t, err)
}

func TestTrace(t *testing.T) {
	sq := tensor.NewFloat64(3, 3)
	tensor.SetSequence(sq, 1, 1)
	mx, err := NewMatrix(sq)
	require.NoError(t, err)
	assert.Equal(t, mat.Trace(mx), Trace(sq))
	assert.Equal(t, 15.0, Trace(sq))

	assert.Equal(t, 15.0, Trace(colMajor4x3()))

	cube := tensor.NewFloat64(2, 2, 2)
	tensor.SetSequence(cube, 0, 1)
	assert.Equal(t, 7.0, Trace(cube))

	assert.Equal(t, 0.0, Trace(tensor.NewString(2, 2)))
	assert.Equal(t, 0.0, Trace(tensor.NewFloat64(0, 3)))

	big := tensor.NewFloat64(50, 50)
	tensor.SetSequence(big, 0.5, 0.25)
	bm, err := NewMatrix(big)
	require.NoError(t, err)
	assert.InDelta(t, mat.Trace(bm), Trace(big), 1e-9)

	require.NoError(t, SetDiagonal(sq, []float64{0, 0, 0}))
	assert.Equal(t, 0.0, Trace(sq))
	assert.Equal(t, 2.0, sq.Float(0, 1))
	require.NoError(t, SetDiagonal(sq, []float64{-3, -7}, 0, 1))
	assert.Equal(t, -3.0, sq.Float(0, 1))
	assert.Equal(t, -7.0, sq.Float(1, 2))

	err = SetDiagonal(sq, []float64{1, 2})
	assert.ErrorIs(t, err, tensor.ErrLengthMismatch)
	assert.Equal(t, 0.0, Trace(sq))
}

func TestEigSymTrace(t *testing.T) {
	a := tensor.NewFloat64FromValues(2, 1, 0, 1, 2, 0, 0, 0, 3)
	a.SetShapeSizes(3, 3)

	vecs, vals := EigSym(a)
	assert.Equal(t, []int{3, 3}, vecs.ShapeSizes())
	assert.InDeltaSlice(t, []float64{1, 3, 3}, vals.Values, 1.0e-10)
	sum := 0.0
	for _, v := range vals.Values {
		sum += v
	}
	assert.InDelta(t, Trace(a), sum, 1.0e-10)

	_, vals = SVD(a)
	assert.InDeltaSlice(t, []float64{3, 3, 1}, vals.Values, 1.0e-10)

	err := EigSymOut(colMajor4x3(), tensor.NewFloat64(), tensor.NewFloat64())
	assert.ErrorIs(t, err, mat.ErrSquare)
}
