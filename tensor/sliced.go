// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"
	"reflect"
	"slices"

	"cogentcore.org/tensordiag/base/slicesx"
	"cogentcore.org/tensordiag/tensor/diag"
)

// Sliced is a fully indexed wrapper around another [Tensor] that provides a
// re-sliced view onto the Tensor defined by the set of [Sliced.Indexes],
// for each dimension (must have at least 1 per dimension).
// Thus, every dimension can be transformed in arbitrary ways relative
// to the original tensor. There is some additional cost for every
// access operation associated with the additional indexed indirection.
// A Sliced view has [diag.Cartesian] addressing: its elements are
// only reached through n-dimensional indexes, and each dimension
// of the view starts at the same index as in the source tensor.
// To produce a new [Tensor] that has its raw data actually organized according
// to the indexed order (i.e., the copy function of numpy), call [Sliced.AsValues].
type Sliced struct {

	// Tensor that we are an indexed view onto.
	Tensor Tensor

	// Indexes are the indexes for each dimension, with dimensions as the outer
	// slice (enforced to be the same length as the NumDims of the source Tensor),
	// and a list of dimension positions (within range of DimSize(d),
	// counting from 0 at the first index of the dimension).
	// A nil list of indexes automatically provides a full, sequential view of that
	// dimension.
	Indexes [][]int
}

// NewSlicedIndexes returns a new [Sliced] view of given tensor,
// with optional list of indexes for each dimension (none / nil = sequential).
func NewSlicedIndexes(tsr Tensor, idxs ...[]int) *Sliced {
	sl := &Sliced{Tensor: tsr, Indexes: idxs}
	sl.ValidIndexes()
	return sl
}

// NewSliced returns a new [Sliced] view of given tensor,
// with given slices for each dimension (none = sequential).
func NewSliced(tsr Tensor, sls ...Slice) *Sliced {
	ns := min(len(sls), tsr.NumDims())
	ixs := make([][]int, ns)
	for d := range ns {
		ixs[d] = sls[d].IntSlice(tsr.DimSize(d))
	}
	sl := NewSlicedIndexes(tsr, ixs...)
	for d := range ns { // ValidIndexes treats empty as full
		if len(ixs[d]) == 0 {
			sl.Indexes[d] = []int{}
		}
	}
	return sl
}

// AsSliced returns the tensor as a [Sliced] view.
// If it already is one, then it is returned, otherwise it is wrapped.
func AsSliced(tsr Tensor) *Sliced {
	if sl, ok := tsr.(*Sliced); ok {
		return sl
	}
	return NewSliced(tsr)
}

// SliceIndex returns the actual position in the underlying tensor dimension
// based on given position in the view.
func (sl *Sliced) SliceIndex(dim, idx int) int {
	ix := sl.Indexes[dim]
	if ix == nil {
		return idx
	}
	return ix[idx]
}

// SliceIndexes returns the actual indexes into underlying tensor
// based on given list of view indexes.
func (sl *Sliced) SliceIndexes(i ...int) []int {
	sh := sl.Tensor.Shape()
	ix := slices.Clone(i)
	for d, idx := range i {
		st := sh.Start(d)
		ix[d] = st + sl.SliceIndex(d, idx-st)
	}
	return ix
}

// IndexFrom1D returns the full indexes into source tensor based on the
// given 1d index.
func (sl *Sliced) IndexFrom1D(oned int) []int {
	oix := sl.Shape().IndexFrom1D(oned) // full indexes in our coords
	return sl.SliceIndexes(oix...)
}

// ValidIndexes ensures that [Sliced.Indexes] are valid,
// removing any out-of-range values and setting the view to nil (full sequential)
// for any dimension with no indexes (which is an invalid condition).
// Call this when any structural changes are made to underlying Tensor.
func (sl *Sliced) ValidIndexes() {
	nd := sl.Tensor.NumDims()
	sl.Indexes = slicesx.SetLength(sl.Indexes, nd)
	for d := range nd {
		ni := len(sl.Indexes[d])
		if ni == 0 { // invalid
			sl.Indexes[d] = nil // full
			continue
		}
		ds := sl.Tensor.DimSize(d)
		sl.Indexes[d] = slices.DeleteFunc(sl.Indexes[d], func(i int) bool {
			return i < 0 || i >= ds
		})
	}
}

// IndexesNeeded is called prior to an operation that needs actual indexes,
// on given dimension.  If Indexes == nil, they are set to all items, otherwise
// current indexes are left as is.
func (sl *Sliced) IndexesNeeded(d int) {
	if sl.Indexes[d] != nil {
		return
	}
	ix := make([]int, sl.Tensor.DimSize(d))
	for i := range ix {
		ix[i] = i
	}
	sl.Indexes[d] = ix
}

// Label returns a summary description of the tensor.
func (sl *Sliced) Label() string {
	return "Sliced " + sl.Shape().String()
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (sl *Sliced) String() string {
	return Sprintf(sl, 0, "")
}

func (sl *Sliced) IsString() bool {
	return sl.Tensor.IsString()
}

func (sl *Sliced) DataType() reflect.Kind {
	return sl.Tensor.DataType()
}

// Addressing is [diag.Cartesian] for a Sliced view.
func (sl *Sliced) Addressing() diag.Addressing { return diag.Cartesian }

// For each dimension, we return the effective shape sizes using
// the current number of indexes per dimension.
func (sl *Sliced) ShapeSizes() []int {
	sh := slices.Clone(sl.Tensor.ShapeSizes())
	for d := range sh {
		if sl.Indexes[d] != nil {
			sh[d] = len(sl.Indexes[d])
		}
	}
	return sh
}

// Shape returns a [Shape] representation of the tensor shape.
// If we have Indexes, this is the effective shape using the current
// number of indexes per dimension. The view is always [RowMajor],
// and keeps the first index of each dimension of the source.
func (sl *Sliced) Shape() *Shape {
	src := sl.Tensor.Shape()
	sh := &Shape{Origin: src.Origin, Starts: slices.Clone(src.Starts)}
	sh.SetShapeSizes(sl.ShapeSizes()...)
	return sh
}

// Len returns the total number of elements in our view of the tensor.
func (sl *Sliced) Len() int {
	return slicesx.Product(sl.ShapeSizes())
}

// NumDims returns the total number of dimensions.
func (sl *Sliced) NumDims() int { return sl.Tensor.NumDims() }

// DimSize returns the effective view size of given dimension.
func (sl *Sliced) DimSize(dim int) int {
	if sl.Indexes[dim] != nil {
		return len(sl.Indexes[dim])
	}
	return sl.Tensor.DimSize(dim)
}

// AsValues returns a copy of this tensor as raw [Values].
// This "renders" the Sliced view into a fully contiguous
// and optimized memory representation of that view.
func (sl *Sliced) AsValues() Values {
	return renderValues(sl)
}

//////// Floats

// Float returns the value of given index as a float64.
// The indexes are indirected through the [Sliced.Indexes].
func (sl *Sliced) Float(i ...int) float64 {
	return sl.Tensor.Float(sl.SliceIndexes(i...)...)
}

// SetFloat sets the value of given index as a float64
// The indexes are indirected through the [Sliced.Indexes].
func (sl *Sliced) SetFloat(val float64, i ...int) {
	sl.Tensor.SetFloat(val, sl.SliceIndexes(i...)...)
}

// Float1D is somewhat expensive if indexes are set, because it needs to convert
// the flat index back into a full n-dimensional index and then use that api.
func (sl *Sliced) Float1D(i int) float64 {
	return sl.Tensor.Float(sl.IndexFrom1D(i)...)
}

// SetFloat1D is somewhat expensive if indexes are set, because it needs to convert
// the flat index back into a full n-dimensional index and then use that api.
func (sl *Sliced) SetFloat1D(val float64, i int) {
	sl.Tensor.SetFloat(val, sl.IndexFrom1D(i)...)
}

//////// Strings

// StringValue returns the value of given index as a string.
func (sl *Sliced) StringValue(i ...int) string {
	return sl.Tensor.StringValue(sl.SliceIndexes(i...)...)
}

// SetString sets the value of given index as a string.
func (sl *Sliced) SetString(val string, i ...int) {
	sl.Tensor.SetString(val, sl.SliceIndexes(i...)...)
}

func (sl *Sliced) String1D(i int) string {
	return sl.Tensor.StringValue(sl.IndexFrom1D(i)...)
}

func (sl *Sliced) SetString1D(val string, i int) {
	sl.Tensor.SetString(val, sl.IndexFrom1D(i)...)
}

//////// Ints

// Int returns the value of given index as an int.
func (sl *Sliced) Int(i ...int) int {
	return sl.Tensor.Int(sl.SliceIndexes(i...)...)
}

// SetInt sets the value of given index as an int.
func (sl *Sliced) SetInt(val int, i ...int) {
	sl.Tensor.SetInt(val, sl.SliceIndexes(i...)...)
}

func (sl *Sliced) Int1D(i int) int {
	return sl.Tensor.Int(sl.IndexFrom1D(i)...)
}

func (sl *Sliced) SetInt1D(val int, i int) {
	sl.Tensor.SetInt(val, sl.IndexFrom1D(i)...)
}

// Permuted sets indexes in given dimension to a permuted order.
// If indexes already exist then existing list of indexes is permuted,
// otherwise a new set of permuted indexes are generated
func (sl *Sliced) Permuted(dim int) {
	ix := sl.Indexes[dim]
	if ix == nil {
		ix = rand.Perm(sl.Tensor.DimSize(dim))
	} else {
		rand.Shuffle(len(ix), func(i, j int) {
			ix[i], ix[j] = ix[j], ix[i]
		})
	}
	sl.Indexes[dim] = ix
}

// Filter filters the indexes along given dimension using given function,
// which receives the position in the source tensor dimension.
func (sl *Sliced) Filter(dim int, filterer func(tsr Tensor, dim, idx int) bool) {
	sl.IndexesNeeded(dim)
	sl.Indexes[dim] = slices.DeleteFunc(sl.Indexes[dim], func(i int) bool {
		return !filterer(sl.Tensor, dim, i)
	})
}

// check for interface impl
var _ Tensor = (*Sliced)(nil)
