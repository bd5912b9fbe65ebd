// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

// NewFloat64Scalar is a convenience method for a Tensor
// representation of a single float64 scalar value.
func NewFloat64Scalar(val float64) *Float64 {
	return NewNumberFromValues(val)
}

// NewIntScalar is a convenience method for a Tensor
// representation of a single int scalar value.
func NewIntScalar(val int) *Int {
	return NewNumberFromValues(val)
}

// NewStringScalar is a convenience method for a Tensor
// representation of a single string scalar value.
func NewStringScalar(val string) *String {
	return NewStringFromValues(val)
}

// NewFloat64FromValues returns a new 1-dimensional tensor of given value type
// initialized directly from the given slice values, which are not copied.
// The resulting Tensor thus "wraps" the given values.
func NewFloat64FromValues(vals ...float64) *Float64 {
	return NewNumberFromValues(vals...)
}

// NewIntFromValues returns a new 1-dimensional tensor of given value type
// initialized directly from the given slice values, which are not copied.
// The resulting Tensor thus "wraps" the given values.
func NewIntFromValues(vals ...int) *Int {
	return NewNumberFromValues(vals...)
}

// NewStringFromValues returns a new 1-dimensional tensor of given value type
// initialized directly from the given slice values, which are not copied.
// The resulting Tensor thus "wraps" the given values.
func NewStringFromValues(vals ...string) *String {
	n := len(vals)
	tsr := &String{}
	tsr.Values = vals
	tsr.SetShapeSizes(n)
	return tsr
}

// SetAllFloat64 sets all values of given tensor to given value.
func SetAllFloat64(tsr Tensor, val float64) {
	org := tsr.Shape().Origin
	for i := range tsr.Len() {
		tsr.SetFloat1D(val, org+i)
	}
}

// SetSequence sets the values of given tensor to start, start+step, ...
// in its flat 1D order.
func SetSequence(tsr Tensor, start, step float64) {
	org := tsr.Shape().Origin
	for i := range tsr.Len() {
		tsr.SetFloat1D(start+float64(i)*step, org+i)
	}
}

// NewFloat64Full returns a new tensor full of given scalar value,
// of given shape sizes.
func NewFloat64Full(val float64, sizes ...int) *Float64 {
	tsr := NewFloat64(sizes...)
	SetAllFloat64(tsr, val)
	return tsr
}

// NewFloat64Ones returns a new tensor full of 1s,
// of given shape sizes.
func NewFloat64Ones(sizes ...int) *Float64 {
	return NewFloat64Full(1, sizes...)
}

// NewIntRange returns a new [Int] [Tensor] with given [Slice]
// range parameters, with the same semantics as NumPy arange based on
// the number of arguments passed:
//   - 1 = stop
//   - 2 = start, stop
//   - 3 = start, stop, step
//
// The step must be positive.
func NewIntRange(svals ...int) *Int {
	if len(svals) == 0 {
		return NewInt(0)
	}
	sl := Slice{}
	switch len(svals) {
	case 1:
		sl.Stop = svals[0]
	case 2:
		sl.Start = svals[0]
		sl.Stop = svals[1]
	default:
		sl.Start = svals[0]
		sl.Stop = svals[1]
		sl.Step = svals[2]
	}
	return NewIntFromValues(sl.IntSlice(sl.Stop)...)
}
