// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

// Clone returns a copy of the given tensor.
// If it is raw [Values] then a [Values.Clone] is returned.
// Otherwise if it is a view, then [Tensor.AsValues] is returned.
// This is equivalent to the NumPy copy function.
func Clone(tsr Tensor) Values {
	if vl, ok := tsr.(Values); ok {
		return vl.Clone()
	}
	return tsr.AsValues()
}

// renderValues returns new [Values] with the shape of the given view,
// filled in its flat 1D order.
func renderValues(tsr Tensor) Values {
	sh := tsr.Shape()
	vt := NewOfType(tsr.DataType())
	vs := vt.Shape()
	vs.CopyFrom(sh)
	vt.SetShapeSizes(sh.Sizes...)
	vt.CopyFrom(tsr)
	return vt
}

// As1D returns a 1D tensor, which is either the input tensor if it is
// already 1D, or a new [Reshaped] 1D view of it.
func As1D(tsr Tensor) Tensor {
	if tsr.NumDims() == 1 {
		return tsr
	}
	return NewReshaped(tsr, tsr.Len())
}

// AsFloat64Slice returns all the tensor values as a slice of float64's,
// in flat 1D order. This allocates a new slice for the return values,
// and is not a good option for performance-critical code.
func AsFloat64Slice(tsr Tensor) []float64 {
	sz := tsr.Len()
	if sz == 0 {
		return nil
	}
	org := tsr.Shape().Origin
	slc := make([]float64, sz)
	for i := range sz {
		slc[i] = tsr.Float1D(org + i)
	}
	return slc
}

// AsIntSlice returns all the tensor values as a slice of ints,
// in flat 1D order.
func AsIntSlice(tsr Tensor) []int {
	sz := tsr.Len()
	if sz == 0 {
		return nil
	}
	org := tsr.Shape().Origin
	slc := make([]int, sz)
	for i := range sz {
		slc[i] = tsr.Int1D(org + i)
	}
	return slc
}

// AsStringSlice returns all the tensor values as a slice of strings,
// in flat 1D order.
func AsStringSlice(tsr Tensor) []string {
	sz := tsr.Len()
	if sz == 0 {
		return nil
	}
	org := tsr.Shape().Origin
	slc := make([]string, sz)
	for i := range sz {
		slc[i] = tsr.String1D(org + i)
	}
	return slc
}

// AsFloat64 returns the tensor as a [Float64] tensor.
// If already is a Float64, it is returned as such.
// Otherwise, a new Float64 tensor is created with the same shape
// and values are copied in flat 1D order.
// Use this function for interfacing with gonum or other apis that
// only operate on float64 types.
func AsFloat64(tsr Tensor) *Float64 {
	if f, ok := tsr.(*Float64); ok {
		return f
	}
	f := NewFloat64Shape(tsr.Shape())
	f.CopyFrom(tsr)
	return f
}
