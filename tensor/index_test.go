// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"testing"

	"cogentcore.org/tensordiag/tensor/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newColMajor4x3 returns the 1-based column major 4x3 matrix
//
//	 1  2  3
//	 4  5  6
//	 7  8  9
//	10 11 12
func newColMajor4x3() *Float64 {
	tsr := NewFloat64FromValues(1, 4, 7, 10, 2, 5, 8, 11, 3, 6, 9, 12)
	tsr.SetOrder(ColMajor)
	tsr.SetShapeSizes(4, 3)
	tsr.SetOrigin(1)
	return tsr
}

// newTransposed4x3 returns the same logical matrix as [newColMajor4x3]
// as a Cartesian view: the transpose of a row major 3x4 matrix.
func newTransposed4x3() (*Transposed, *Float64) {
	b := NewFloat64FromValues(1, 4, 7, 10, 2, 5, 8, 11, 3, 6, 9, 12)
	b.SetShapeSizes(3, 4)
	b.SetOrigin(1)
	return Transpose(b), b
}

func TestGetAtMainDiagonal(t *testing.T) {
	m := newColMajor4x3()
	sl, err := Select(m, diag.Main)
	require.NoError(t, err)
	rn, ok := sl.IsFlat()
	require.True(t, ok)
	assert.Equal(t, diag.Range{Start: 1, Step: 5, Count: 3, Axes: 2}, rn)

	vals, err := GetFloatsAt(m, diag.Main)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 5, 9}, vals)

	var ixs [][]int
	for _, ix := range sl.All() {
		ixs = append(ixs, append([]int(nil), ix...))
	}
	assert.Equal(t, [][]int{{1, 1}, {2, 2}, {3, 3}}, ixs)
}

func TestSetAtMainDiagonal(t *testing.T) {
	m := newColMajor4x3()
	require.NoError(t, SetFloatsAt(m, []float64{-1, -5, -9}, diag.Main))
	assert.Equal(t, []float64{-1, 4, 7, 10, 2, -5, 8, 11, 3, 6, -9, 12}, m.Values)
	assert.Equal(t, -5.0, m.Float(2, 2))
}

func TestGetAtOffsets(t *testing.T) {
	m := newColMajor4x3()
	vals, err := GetFloatsAt(m, diag.MustNew(1, 0))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 8, 12}, vals)

	vals, err = GetFloatsAt(m, diag.MustNew(0, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 6}, vals)

	vals, err = GetFloatsAt(m, diag.MustNew(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 5, 9}, vals)
}

func TestCartesianMatchesLinear(t *testing.T) {
	m := newColMajor4x3()
	tr, b := newTransposed4x3()
	assert.Equal(t, diag.Cartesian, Addressing(tr))
	for _, sel := range []diag.Selector{diag.Main, diag.MustNew(1, 0), diag.MustNew(0, 1), diag.MustNew(2, 1), diag.MustNew(3, 0)} {
		lin, err := GetFloatsAt(m, sel)
		require.NoError(t, err)
		cart, err := GetFloatsAt(tr, sel)
		require.NoError(t, err)
		assert.Equal(t, lin, cart, sel.String())
	}

	sl, err := Select(tr, diag.Main)
	require.NoError(t, err)
	_, ok := sl.IsFlat()
	assert.False(t, ok)
	require.Len(t, sl.Parts, 1)
	assert.IsType(t, &diag.Coords{}, sl.Parts[0])

	require.NoError(t, SetFloatsAt(tr, []float64{-1, -5, -9}, diag.Main))
	assert.Equal(t, -1.0, b.Float(1, 1))
	assert.Equal(t, -5.0, b.Float(2, 2))
	assert.Equal(t, -9.0, b.Float(3, 3))
	assert.Equal(t, 4.0, b.Float(1, 2))
}

func TestGetAt3D(t *testing.T) {
	tsr := NewFloat64(3, 4, 5)
	tsr.SetOrder(ColMajor)
	tsr.SetOrigin(1)
	for i := range tsr.Values {
		tsr.Values[i] = float64(i+1) / 10
	}
	sl, err := Select(tsr, diag.Main)
	require.NoError(t, err)
	rn, ok := sl.IsFlat()
	require.True(t, ok)
	assert.Equal(t, diag.Range{Start: 1, Step: 16, Count: 3, Axes: 3}, rn)
	vals, err := GetFloatsAt(tsr, diag.Main)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 1.7, 3.3}, vals)

	vals, err = GetFloatsAt(NewSliced(tsr), diag.Main)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 1.7, 3.3}, vals)
}

func TestGetAtOneAxis(t *testing.T) {
	v := NewFloat64FromValues(1, 2, 3, 4, 5)
	vals, err := GetFloatsAt(v, diag.Main)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, vals)

	vals, err = GetFloatsAt(v, diag.MustNew(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5}, vals)

	vals, err = GetFloatsAt(NewSliced(v), diag.Main)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, vals)
}

func TestGetAtOversizedOffsets(t *testing.T) {
	m := newColMajor4x3()
	for _, sel := range []diag.Selector{diag.MustNew(9, 0), diag.MustNew(0, 3), diag.MustNew(4, 0)} {
		sl, err := Select(m, sel)
		require.NoError(t, err)
		assert.Equal(t, 0, sl.Len())
		vals, err := GetAt(m, sel)
		require.NoError(t, err)
		assert.Equal(t, 0, vals.Len())
		assert.NoError(t, SetFloatsAt(m, nil, sel))
	}
	assert.Equal(t, newColMajor4x3().Values, m.Values)

	tr, _ := newTransposed4x3()
	vals, err := GetFloatsAt(tr, diag.MustNew(0, 3))
	require.NoError(t, err)
	assert.Empty(t, vals)
}

func TestSetAtNoPartialWrite(t *testing.T) {
	m := newColMajor4x3()
	err := SetFloatsAt(m, []float64{1, 2}, diag.Main)
	assert.ErrorIs(t, err, ErrLengthMismatch)
	err = SetFloatsAt(m, []float64{1, 2, 3, 4}, diag.Main)
	assert.ErrorIs(t, err, ErrLengthMismatch)
	err = SetFloatsAt(m, []float64{1, 2, 3}, 1, diag.Main, 2)
	assert.ErrorIs(t, err, diag.ErrMisplacedRest)
	err = SetFloatsAt(m, []float64{1, 2, 3}, 0, diag.Main)
	assert.ErrorIs(t, err, ErrIndexRange)
	assert.Equal(t, newColMajor4x3().Values, m.Values)

	tr, b := newTransposed4x3()
	err = SetFloatsAt(tr, []float64{1, 2}, diag.Main)
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Equal(t, []float64{1, 4, 7, 10, 2, 5, 8, 11, 3, 6, 9, 12}, b.Values)
}

func TestGetAtErrors(t *testing.T) {
	m := newColMajor4x3()
	_, err := GetAt(m, diag.Main, 1)
	assert.ErrorIs(t, err, diag.ErrMisplacedRest)
	_, err = GetAt(m, 1, 1, 1)
	assert.ErrorIs(t, err, diag.ErrTooManyIndexes)
	_, err = GetAt(m, 5, 1)
	assert.ErrorIs(t, err, ErrIndexRange)
	_, err = GetAt(m, "x")
	assert.ErrorIs(t, err, ErrIndexType)
	_, err = GetAt(m, diag.MustNew(0))
	assert.ErrorIs(t, err, diag.ErrDimensionMismatch)
	_, err = GetAt(m, diag.Diagonal{})
	assert.ErrorIs(t, err, diag.ErrNoAxes)
}

func TestGetAtMixed(t *testing.T) {
	m := newColMajor4x3()
	vals, err := GetFloatsAt(m, 2, FullAxis)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, vals)

	vals, err = GetFloatsAt(m, FullAxis, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6, 9, 12}, vals)

	vals, err = GetFloatsAt(m, Slice{Start: 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 7, 10}, vals)

	vals, err = GetFloatsAt(m, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8, 9}, vals)

	sc, err := GetAt(m, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, sc.NumDims())
	assert.Equal(t, 6.0, sc.Float1D(0))

	a := newSequence(0, 2, 3, 3)
	vals, err = GetFloatsAt(a, 1, diag.Main)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 13, 17}, vals)

	out, err := GetAt(a, diag.MustNew(0, 0), FullAxis)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, out.ShapeSizes())
	assert.Equal(t, []float64{0, 1, 2, 12, 13, 14}, AsFloat64Slice(out))

	_, err = GetAt(a, diag.MustNew(0, 0))
	assert.ErrorIs(t, err, diag.ErrDimensionMismatch)

	out, err = GetAt(NewSliced(a), diag.MustNew(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, out.ShapeSizes())
	assert.Equal(t, []float64{0, 1, 2, 12, 13, 14}, AsFloat64Slice(out))

	out, err = GetAt(a, FullAxis, diag.MustNew(1, 0))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, out.ShapeSizes())
	assert.Equal(t, []float64{3, 7, 12, 16}, AsFloat64Slice(out))

	require.NoError(t, SetFloatsAt(a, []float64{-1, -2, -3}, 0, diag.Main))
	assert.Equal(t, []float64{-1, -2, -3}, []float64{a.Float(0, 0, 0), a.Float(0, 1, 1), a.Float(0, 2, 2)})
}

func TestGetAtTypes(t *testing.T) {
	s := NewStringFromValues("a", "b", "c", "d", "e", "f")
	s.SetShapeSizes(2, 3)
	out, err := GetAt(s, diag.Main)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "e"}, out.(*String).Values)
	require.NoError(t, SetAt(s, NewStringFromValues("x", "y"), diag.Main))
	assert.Equal(t, []string{"x", "b", "c", "d", "y", "f"}, s.Values)

	it := NewIntRange(9)
	it.SetShapeSizes(3, 3)
	out, err = GetAt(it, diag.Main)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 8}, out.(*Int).Values)
	out, err = GetAt(Transpose(it), diag.MustNew(0, 1))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7}, out.(*Int).Values)
	require.NoError(t, SetAt(it, NewFloat64FromValues(1.5, 2.5), diag.MustNew(1, 0)))
	assert.Equal(t, []int{0, 1, 2, 1, 4, 5, 6, 2, 8}, it.Values)
}

func TestGetAtReshaped(t *testing.T) {
	v := NewFloat64FromValues(1, 4, 7, 10, 2, 5, 8, 11, 3, 6, 9, 12)
	v.SetOrder(ColMajor)
	v.SetOrigin(1)
	rs := NewReshaped(v, 4, 3)
	sl, err := Select(rs, diag.Main)
	require.NoError(t, err)
	_, ok := sl.IsFlat()
	assert.True(t, ok)
	vals, err := GetFloatsAt(rs, diag.Main)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 5, 9}, vals)
}

func TestGetAtIdempotent(t *testing.T) {
	m := newColMajor4x3()
	tr, _ := newTransposed4x3()
	for _, tsr := range []Tensor{m, tr} {
		a, err := GetFloatsAt(tsr, diag.MustNew(1, 0))
		require.NoError(t, err)
		b, err := GetFloatsAt(tsr, diag.MustNew(1, 0))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}
