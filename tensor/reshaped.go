// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"reflect"

	"cogentcore.org/tensordiag/base/errors"
	"cogentcore.org/tensordiag/tensor/diag"
)

// Reshaped is a reshaping wrapper around another "source" [Tensor],
// that provides a length-preserving reshaped view onto the source Tensor.
// Flat 1D indexes pass straight through to the source, so the view has
// the same [Tensor.Addressing] as its source: a diagonal selector on a
// Reshaped view of raw [Values] resolves to a flat range.
// The view shape uses the Origin and Order of the source shape.
type Reshaped struct {

	// Tensor source that we are a view onto.
	Tensor Tensor

	// Reshape is the effective shape we use for access.
	// This must have the same Len() as the source Tensor.
	Reshape Shape
}

// NewReshaped returns a new [Reshaped] view of given tensor,
// with given shape sizes. If no such sizes are provided,
// the source shape is used.
func NewReshaped(tsr Tensor, sizes ...int) *Reshaped {
	rs := &Reshaped{Tensor: tsr}
	src := tsr.Shape()
	if len(sizes) == 0 {
		rs.Reshape.CopyFrom(src)
		return rs
	}
	rs.Reshape.Origin = src.Origin
	rs.Reshape.Order = src.Order
	errors.Log(rs.SetShapeSizes(sizes...))
	return rs
}

// AsReshaped returns the tensor as a [Reshaped] view.
// If it already is one, then it is returned, otherwise it is wrapped
// with an initial shape equal to the source tensor.
func AsReshaped(tsr Tensor) *Reshaped {
	if rs, ok := tsr.(*Reshaped); ok {
		return rs
	}
	return NewReshaped(tsr)
}

// SetShapeSizes sets our shape sizes to the given values, which must result in
// the same length as the source tensor. An error is returned if not.
// If a different subset of content is desired, use another view such as [Sliced].
func (rs *Reshaped) SetShapeSizes(sizes ...int) error {
	rs.Reshape.SetShapeSizes(sizes...)
	if rs.Reshape.Len() != rs.Tensor.Len() {
		return fmt.Errorf("tensor.Reshaped SetShapeSizes: new length %d is different from source tensor length %d; use Sliced or other views to change view content", rs.Reshape.Len(), rs.Tensor.Len())
	}
	return nil
}

func (rs *Reshaped) Label() string               { return "Reshaped " + rs.Reshape.String() }
func (rs *Reshaped) String() string              { return Sprintf(rs, 0, "") }
func (rs *Reshaped) IsString() bool              { return rs.Tensor.IsString() }
func (rs *Reshaped) DataType() reflect.Kind      { return rs.Tensor.DataType() }
func (rs *Reshaped) Addressing() diag.Addressing { return rs.Tensor.Addressing() }
func (rs *Reshaped) ShapeSizes() []int           { return rs.Reshape.Sizes }
func (rs *Reshaped) Shape() *Shape               { return &rs.Reshape }
func (rs *Reshaped) Len() int                    { return rs.Reshape.Len() }
func (rs *Reshaped) NumDims() int                { return rs.Reshape.NumDims() }
func (rs *Reshaped) DimSize(dim int) int         { return rs.Reshape.DimSize(dim) }

// AsValues returns a copy of this tensor as raw [Values], with
// the same shape as our view.
func (rs *Reshaped) AsValues() Values {
	vals := rs.Tensor.AsValues().Clone()
	vals.SetOrder(rs.Reshape.Order)
	vals.SetShapeSizes(rs.Reshape.Sizes...)
	return vals
}

//////// Floats

func (rs *Reshaped) Float(i ...int) float64 {
	return rs.Tensor.Float1D(rs.Reshape.IndexTo1D(i...))
}

func (rs *Reshaped) SetFloat(val float64, i ...int) {
	rs.Tensor.SetFloat1D(val, rs.Reshape.IndexTo1D(i...))
}

func (rs *Reshaped) Float1D(i int) float64         { return rs.Tensor.Float1D(i) }
func (rs *Reshaped) SetFloat1D(val float64, i int) { rs.Tensor.SetFloat1D(val, i) }

//////// Strings

func (rs *Reshaped) StringValue(i ...int) string {
	return rs.Tensor.String1D(rs.Reshape.IndexTo1D(i...))
}

func (rs *Reshaped) SetString(val string, i ...int) {
	rs.Tensor.SetString1D(val, rs.Reshape.IndexTo1D(i...))
}

func (rs *Reshaped) String1D(i int) string         { return rs.Tensor.String1D(i) }
func (rs *Reshaped) SetString1D(val string, i int) { rs.Tensor.SetString1D(val, i) }

//////// Ints

func (rs *Reshaped) Int(i ...int) int {
	return rs.Tensor.Int1D(rs.Reshape.IndexTo1D(i...))
}

func (rs *Reshaped) SetInt(val int, i ...int) {
	rs.Tensor.SetInt1D(val, rs.Reshape.IndexTo1D(i...))
}

func (rs *Reshaped) Int1D(i int) int         { return rs.Tensor.Int1D(i) }
func (rs *Reshaped) SetInt1D(val int, i int) { rs.Tensor.SetInt1D(val, i) }

// check for interface impl
var _ Tensor = (*Reshaped)(nil)
