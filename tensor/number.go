// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"strconv"

	"cogentcore.org/tensordiag/base/num"
)

// Number is a tensor of numerical values
type Number[T num.Number] struct {
	Base[T]
}

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Float32 is an alias for Number[float32].
type Float32 = Number[float32]

// Int is an alias for Number[int].
type Int = Number[int]

// Int32 is an alias for Number[int32].
type Int32 = Number[int32]

// Byte is an alias for Number[byte].
type Byte = Number[byte]

// NewFloat32 returns a new [Float32] tensor
// with the given sizes per dimension (shape).
func NewFloat32(sizes ...int) *Float32 {
	return NewNumber[float32](sizes...)
}

// NewFloat64 returns a new [Float64] tensor
// with the given sizes per dimension (shape).
func NewFloat64(sizes ...int) *Float64 {
	return NewNumber[float64](sizes...)
}

// NewInt returns a new Int tensor
// with the given sizes per dimension (shape).
func NewInt(sizes ...int) *Int {
	return NewNumber[int](sizes...)
}

// NewInt32 returns a new Int32 tensor
// with the given sizes per dimension (shape).
func NewInt32(sizes ...int) *Int32 {
	return NewNumber[int32](sizes...)
}

// NewByte returns a new Byte tensor
// with the given sizes per dimension (shape).
func NewByte(sizes ...int) *Byte {
	return NewNumber[byte](sizes...)
}

// NewNumber returns a new n-dimensional tensor of numerical values
// with the given sizes per dimension (shape).
func NewNumber[T num.Number](sizes ...int) *Number[T] {
	tsr := &Number[T]{}
	tsr.SetShapeSizes(sizes...)
	return tsr
}

// NewNumberShape returns a new n-dimensional tensor of numerical values
// using given shape, including its Starts, Origin and Order.
func NewNumberShape[T num.Number](shape *Shape) *Number[T] {
	tsr := &Number[T]{}
	tsr.shape.CopyFrom(shape)
	tsr.Values = make([]T, tsr.Len())
	return tsr
}

// NewFloat64Shape returns a new [Float64] tensor using given shape.
func NewFloat64Shape(shape *Shape) *Float64 {
	return NewNumberShape[float64](shape)
}

// NewNumberFromValues returns a new 1-dimensional tensor of given value type
// initialized directly from the given slice values, which are not copied.
// The resulting Tensor thus "wraps" the given values.
// Use SetShapeSizes and SetOrder to give it a different shape.
func NewNumberFromValues[T num.Number](vals ...T) *Number[T] {
	tsr := &Number[T]{}
	tsr.Values = vals
	tsr.SetShapeSizes(len(vals))
	return tsr
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *Number[T]) String() string { return Sprintf(tsr, 0, "") }

func (tsr *Number[T]) IsString() bool { return false }

func (tsr *Number[T]) AsValues() Values { return tsr }

//////// Strings

func (tsr *Number[T]) StringValue(i ...int) string {
	return strconv.FormatFloat(float64(tsr.Value(i...)), 'g', -1, 64)
}

func (tsr *Number[T]) SetString(val string, i ...int) {
	if fv, err := strconv.ParseFloat(val, 64); err == nil {
		tsr.Set(T(fv), i...)
	}
}

func (tsr *Number[T]) String1D(i int) string {
	return strconv.FormatFloat(float64(tsr.Value1D(i)), 'g', -1, 64)
}

func (tsr *Number[T]) SetString1D(val string, i int) {
	if fv, err := strconv.ParseFloat(val, 64); err == nil {
		tsr.Set1D(T(fv), i)
	}
}

//////// Floats

func (tsr *Number[T]) Float(i ...int) float64 {
	return float64(tsr.Value(i...))
}

func (tsr *Number[T]) SetFloat(val float64, i ...int) {
	tsr.Set(T(val), i...)
}

func (tsr *Number[T]) Float1D(i int) float64 {
	return float64(tsr.Value1D(i))
}

func (tsr *Number[T]) SetFloat1D(val float64, i int) {
	tsr.Set1D(T(val), i)
}

//////// Ints

func (tsr *Number[T]) Int(i ...int) int {
	return int(tsr.Value(i...))
}

func (tsr *Number[T]) SetInt(val int, i ...int) {
	tsr.Set(T(val), i...)
}

func (tsr *Number[T]) Int1D(i int) int {
	return int(tsr.Value1D(i))
}

func (tsr *Number[T]) SetInt1D(val int, i int) {
	tsr.Set1D(T(val), i)
}

// SetZeros is simple convenience function initialize all values to 0
func (tsr *Number[T]) SetZeros() {
	clear(tsr.Values)
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *Number[T]) Clone() Values {
	csr := NewNumberShape[T](&tsr.shape)
	copy(csr.Values, tsr.Values)
	return csr
}

// CopyFrom copies all avail values from other tensor into this tensor, with an
// optimized implementation if the other tensor is of the same type, and
// otherwise it goes through appropriate standard type.
func (tsr *Number[T]) CopyFrom(frm Tensor) {
	if fsm, ok := frm.(*Number[T]); ok {
		copy(tsr.Values, fsm.Values)
		return
	}
	sz := min(tsr.Len(), frm.Len())
	fo := frm.Shape().Origin
	if IsFloat(tsr.DataType()) {
		for i := range sz {
			tsr.Values[i] = T(frm.Float1D(fo + i))
		}
		return
	}
	for i := range sz {
		tsr.Values[i] = T(frm.Int1D(fo + i))
	}
}
