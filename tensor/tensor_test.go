// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"reflect"
	"testing"

	"cogentcore.org/tensordiag/tensor/diag"
	"github.com/stretchr/testify/assert"
)

func TestTensorString(t *testing.T) {
	tsr := New[string](4, 2)
	assert.Equal(t, 8, tsr.Len())
	assert.Equal(t, true, tsr.IsString())
	assert.Equal(t, reflect.String, tsr.DataType())
	assert.Equal(t, diag.Linear, tsr.Addressing())

	tsr.SetString("test", 2, 0)
	assert.Equal(t, "test", tsr.StringValue(2, 0))
	tsr.SetString1D("testing", 5)
	assert.Equal(t, "testing", tsr.StringValue(2, 1))
	assert.Equal(t, "test", tsr.String1D(4))

	cln := tsr.Clone()
	assert.Equal(t, "testing", cln.StringValue(2, 1))

	cln.SetZeros()
	assert.Equal(t, "", cln.StringValue(2, 1))
	assert.Equal(t, "testing", tsr.StringValue(2, 1))

	tsr.SetShapeSizes(2, 4)
	assert.Equal(t, "test", tsr.StringValue(1, 0))
	assert.Equal(t, "testing", tsr.StringValue(1, 1))

	cln.CopyFrom(tsr)
	assert.Equal(t, "testing", cln.String1D(5))

	cln.SetString1D("3.14", 0)
	assert.Equal(t, 3.14, cln.Float1D(0))
	assert.Equal(t, 3, cln.Int1D(0))
	cln.SetInt(7, 0, 1)
	assert.Equal(t, "7", cln.StringValue(0, 1))
}

func TestTensorFloat64(t *testing.T) {
	tsr := New[float64](4, 2)
	assert.Equal(t, 8, tsr.Len())
	assert.Equal(t, false, tsr.IsString())
	assert.Equal(t, reflect.Float64, tsr.DataType())

	tsr.SetFloat(3.14, 2, 0)
	assert.Equal(t, 3.14, tsr.Float(2, 0))
	tsr.SetFloat1D(2.17, 5)
	assert.Equal(t, 2.17, tsr.Float(2, 1))
	assert.Equal(t, 3.14, tsr.Float1D(4))
	assert.Equal(t, "3.14", tsr.String1D(4))

	cln := tsr.Clone()
	assert.Equal(t, 2.17, cln.Float(2, 1))

	cln.SetZeros()
	assert.Equal(t, 0.0, cln.Float(2, 1))
	assert.Equal(t, 2.17, tsr.Float(2, 1))

	tsr.SetShapeSizes(2, 4)
	assert.Equal(t, 3.14, tsr.Float(1, 0))
	assert.Equal(t, 2.17, tsr.Float(1, 1))

	it := NewInt(2, 4)
	it.CopyFrom(tsr)
	assert.Equal(t, 3, it.Int(1, 0))
	assert.Equal(t, 2, it.Int(1, 1))

	str := NewString(3)
	str.CopyFrom(tsr)
	assert.Equal(t, []string{"0", "0", "0"}, str.Values)
}

func TestTensorOriginOrder(t *testing.T) {
	tsr := NewFloat64(4, 2)
	tsr.SetOrigin(1)
	tsr.SetFloat(3.14, 3, 1)
	assert.Equal(t, 3.14, tsr.Float1D(5))
	assert.Equal(t, 3.14, tsr.Values[4])

	tsr.SetOrder(ColMajor)
	assert.Equal(t, 3.14, tsr.Float(1, 2))
	tsr.SetFloat(1.5, 4, 1)
	assert.Equal(t, 1.5, tsr.Float1D(4))

	cln := tsr.Clone()
	assert.Equal(t, ColMajor, cln.Shape().Order)
	assert.Equal(t, 1, cln.Shape().Origin)
	assert.Equal(t, 3.14, cln.Float(1, 2))
}

func TestNewNumberShape(t *testing.T) {
	sh := NewShape(2, 3)
	sh.Order = ColMajor
	sh.SetStarts(1, -1)
	tsr := NewNumberShape[int32](sh)
	assert.Equal(t, 6, tsr.Len())
	assert.Equal(t, ColMajor, tsr.Shape().Order)
	assert.Equal(t, 1, tsr.Shape().Start(0))
	assert.Equal(t, -1, tsr.Shape().Start(1))

	tsr.Set(7, 2, 1)
	assert.Equal(t, 7.0, tsr.Float(2, 1))
	cl := tsr.Clone()
	assert.Equal(t, 7.0, cl.Float(2, 1))
	assert.Equal(t, []int{1, -1}, cl.Shape().Starts)
}

func TestShape(t *testing.T) {
	sh := NewShape(3, 4, 5)
	assert.Equal(t, 60, sh.Len())
	assert.Equal(t, 3, sh.NumDims())
	assert.Equal(t, []int{20, 5, 1}, sh.Strides())
	assert.Equal(t, 27, sh.IndexTo1D(1, 1, 2))
	assert.Equal(t, []int{1, 1, 2}, sh.IndexFrom1D(27))
	assert.Equal(t, "[3, 4, 5]", sh.String())

	sh.Order = ColMajor
	assert.Equal(t, []int{1, 3, 12}, sh.Strides())
	assert.Equal(t, 1+3+24, sh.IndexTo1D(1, 1, 2))
	assert.Equal(t, []int{1, 1, 2}, sh.IndexFrom1D(28))
	assert.Equal(t, "[3, 4, 5]F", sh.String())

	sh.SetOrigin(1)
	assert.Equal(t, 1, sh.IndexTo1D(1, 1, 1))
	assert.Equal(t, []diag.Axis{{First: 1, Len: 3, Stride: 1}, {First: 1, Len: 4, Stride: 3}, {First: 1, Len: 5, Stride: 12}}, sh.Axes())

	sh.SetStarts(-1, 0)
	assert.Equal(t, []int{-1, 0, 1}, sh.Starts)
	assert.Equal(t, "[-1:3, 4, 1:5]F", sh.String())
	for i := range sh.Len() {
		ix := sh.IndexFrom1D(1 + i)
		assert.Equal(t, 1+i, sh.IndexTo1D(ix...))
	}

	sh.SetShapeSizes(3, 4, 5, 2)
	assert.Equal(t, 1, sh.Start(3))

	cp := &Shape{}
	cp.CopyFrom(sh)
	assert.True(t, cp.IsEqual(sh))
	cp.Starts[0] = 9
	assert.Equal(t, -1, sh.Start(0))
}

func TestSprintf(t *testing.T) {
	assert.Equal(t, "float64 [3] 1\t2\t3\n", NewFloat64FromValues(1, 2, 3).String())

	tsr := NewIntFromValues(1, 2, 3, 4)
	tsr.SetShapeSizes(2, 2)
	assert.Equal(t, "int [2, 2]\n[0]:\t1\t2\n[1]:\t3\t4\n", tsr.String())

	str := NewStringFromValues("a", "b", "c", "d")
	str.SetShapeSizes(2, 2)
	str.SetOrigin(1)
	assert.Equal(t, "string [1:2, 1:2]\n[1]:\ta\tb\n[2]:\tc\td\n", str.String())

	tsr = NewIntRange(1, 7)
	tsr.SetShapeSizes(3, 2)
	assert.Equal(t, "int [3, 2]\n[0]:\t1\t2\n...\n", Sprintf(tsr, 2, ""))
}
