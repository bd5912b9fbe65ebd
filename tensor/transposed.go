// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"reflect"
	"slices"

	"cogentcore.org/tensordiag/base/slicesx"
	"cogentcore.org/tensordiag/tensor/diag"
)

// Transposed is a view onto another [Tensor] with its dimensions
// reordered by the permutation [Transposed.Perm]: dimension d of the view
// is dimension Perm[d] of the source. No values are copied, and the
// view has [diag.Cartesian] addressing. Its flat 1D index space is
// [RowMajor] over the view shape, starting at the source Origin.
type Transposed struct {

	// Tensor source that we are a view onto.
	Tensor Tensor

	// Perm is the source dimension for each dimension of the view.
	Perm []int
}

// NewTransposed returns a new [Transposed] view of given tensor
// using given permutation of its dimensions, which must contain
// each of 0..NumDims-1 exactly once.
func NewTransposed(tsr Tensor, perm ...int) (*Transposed, error) {
	if len(perm) != tsr.NumDims() || !slicesx.IsPermutation(perm) {
		return nil, fmt.Errorf("tensor.NewTransposed: %v is not a permutation of the %d dimensions of the tensor", perm, tsr.NumDims())
	}
	return &Transposed{Tensor: tsr, Perm: slices.Clone(perm)}, nil
}

// Transpose returns a [Transposed] view of given tensor with the
// order of its dimensions reversed, which for a 2D matrix is
// the standard matrix transpose.
func Transpose(tsr Tensor) *Transposed {
	nd := tsr.NumDims()
	perm := make([]int, nd)
	for d := range nd {
		perm[d] = nd - 1 - d
	}
	return &Transposed{Tensor: tsr, Perm: perm}
}

// SourceIndexes returns the indexes into the source tensor
// for given indexes of the view.
func (tr *Transposed) SourceIndexes(i ...int) []int {
	ix := make([]int, len(i))
	for d, p := range tr.Perm {
		ix[p] = i[d]
	}
	return ix
}

// ShapeSizes returns the sizes of each dimension of the view.
func (tr *Transposed) ShapeSizes() []int {
	src := tr.Tensor.ShapeSizes()
	sizes := make([]int, len(tr.Perm))
	for d, p := range tr.Perm {
		sizes[d] = src[p]
	}
	return sizes
}

// Shape returns the [RowMajor] shape of the view, with the first
// index of each dimension taken from the source dimension.
func (tr *Transposed) Shape() *Shape {
	src := tr.Tensor.Shape()
	sh := &Shape{Origin: src.Origin}
	sh.SetShapeSizes(tr.ShapeSizes()...)
	if src.Starts != nil {
		starts := make([]int, len(tr.Perm))
		for d, p := range tr.Perm {
			starts[d] = src.Start(p)
		}
		sh.SetStarts(starts...)
	}
	return sh
}

func (tr *Transposed) Label() string               { return "Transposed " + tr.Shape().String() }
func (tr *Transposed) String() string              { return Sprintf(tr, 0, "") }
func (tr *Transposed) IsString() bool              { return tr.Tensor.IsString() }
func (tr *Transposed) DataType() reflect.Kind      { return tr.Tensor.DataType() }
func (tr *Transposed) Addressing() diag.Addressing { return diag.Cartesian }
func (tr *Transposed) Len() int                    { return tr.Tensor.Len() }
func (tr *Transposed) NumDims() int                { return len(tr.Perm) }
func (tr *Transposed) DimSize(dim int) int         { return tr.Tensor.DimSize(tr.Perm[dim]) }

// AsValues returns a copy of this view as raw [RowMajor] [Values].
func (tr *Transposed) AsValues() Values {
	return renderValues(tr)
}

// IndexFrom1D returns the source indexes for given flat 1D index of the view.
func (tr *Transposed) IndexFrom1D(oned int) []int {
	return tr.SourceIndexes(tr.Shape().IndexFrom1D(oned)...)
}

//////// Floats

func (tr *Transposed) Float(i ...int) float64 {
	return tr.Tensor.Float(tr.SourceIndexes(i...)...)
}

func (tr *Transposed) SetFloat(val float64, i ...int) {
	tr.Tensor.SetFloat(val, tr.SourceIndexes(i...)...)
}

func (tr *Transposed) Float1D(i int) float64 {
	return tr.Tensor.Float(tr.IndexFrom1D(i)...)
}

func (tr *Transposed) SetFloat1D(val float64, i int) {
	tr.Tensor.SetFloat(val, tr.IndexFrom1D(i)...)
}

//////// Strings

func (tr *Transposed) StringValue(i ...int) string {
	return tr.Tensor.StringValue(tr.SourceIndexes(i...)...)
}

func (tr *Transposed) SetString(val string, i ...int) {
	tr.Tensor.SetString(val, tr.SourceIndexes(i...)...)
}

func (tr *Transposed) String1D(i int) string {
	return tr.Tensor.StringValue(tr.IndexFrom1D(i)...)
}

func (tr *Transposed) SetString1D(val string, i int) {
	tr.Tensor.SetString(val, tr.IndexFrom1D(i)...)
}

//////// Ints

func (tr *Transposed) Int(i ...int) int {
	return tr.Tensor.Int(tr.SourceIndexes(i...)...)
}

func (tr *Transposed) SetInt(val int, i ...int) {
	tr.Tensor.SetInt(val, tr.SourceIndexes(i...)...)
}

func (tr *Transposed) Int1D(i int) int {
	return tr.Tensor.Int(tr.IndexFrom1D(i)...)
}

func (tr *Transposed) SetInt1D(val int, i int) {
	tr.Tensor.SetInt(val, tr.IndexFrom1D(i)...)
}

// check for interface impl
var _ Tensor = (*Transposed)(nil)
