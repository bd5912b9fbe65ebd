// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"

	"cogentcore.org/tensordiag/base/slicesx"
	"cogentcore.org/tensordiag/tensor/diag"
)

// Order is the memory layout of the values of a tensor.
type Order int32

const (
	// RowMajor is the C / Go / NumPy layout,
	// where the innermost (last) dimension varies fastest.
	RowMajor Order = iota

	// ColMajor is the Fortran / Julia / R layout,
	// where the outermost (first) dimension varies fastest.
	ColMajor
)

func (o Order) String() string {
	if o == ColMajor {
		return "ColMajor"
	}
	return "RowMajor"
}

// Shape manages a tensor's shape information, including sizes,
// the first valid index on each dimension and on the flat 1D values,
// and the memory layout order.
type Shape struct {

	// Sizes is the size of each dimension.
	Sizes []int

	// Starts is the first valid index on each dimension.
	// nil means that all dimensions start at Origin.
	Starts []int

	// Origin is the first valid flat 1D index,
	// and the default first index of each dimension.
	Origin int

	// Order is the layout of the flat 1D index space.
	Order Order
}

// NewShape returns a new row major shape with given sizes, origin 0.
func NewShape(sizes ...int) *Shape {
	sh := &Shape{}
	sh.SetShapeSizes(sizes...)
	return sh
}

// SetShapeSizes sets the shape sizes from list of ints.
// Any per-dimension Starts are kept for existing dimensions,
// and new dimensions start at Origin.
func (sh *Shape) SetShapeSizes(sizes ...int) {
	nd := len(sh.Sizes)
	sh.Sizes = slicesx.SetLength(sh.Sizes, len(sizes))
	copy(sh.Sizes, sizes)
	if sh.Starts == nil {
		return
	}
	sh.Starts = slicesx.SetLength(sh.Starts, len(sizes))
	for d := nd; d < len(sizes); d++ {
		sh.Starts[d] = sh.Origin
	}
}

// SetOrigin sets the first flat index and the first index
// of every dimension to origin, e.g., 1 for 1-based indexing.
func (sh *Shape) SetOrigin(origin int) {
	sh.Origin = origin
	sh.Starts = nil
}

// SetStarts sets the first valid index of each dimension.
// Dimensions beyond those given start at Origin.
func (sh *Shape) SetStarts(starts ...int) {
	nd := len(sh.Sizes)
	sh.Starts = slicesx.SetLength(sh.Starts, nd)
	for d := range nd {
		if d < len(starts) {
			sh.Starts[d] = starts[d]
		} else {
			sh.Starts[d] = sh.Origin
		}
	}
}

// CopyFrom copies the shape parameters from another Shape struct.
// copies the data so it is not accidentally subject to updates.
func (sh *Shape) CopyFrom(cp *Shape) {
	sh.Sizes = slices.Clone(cp.Sizes)
	sh.Starts = slices.Clone(cp.Starts)
	sh.Origin = cp.Origin
	sh.Order = cp.Order
}

// Len returns the total length of elements in the tensor
// (i.e., the product of the shape sizes).
func (sh *Shape) Len() int {
	return slicesx.Product(sh.Sizes)
}

// NumDims returns the total number of dimensions.
func (sh *Shape) NumDims() int { return len(sh.Sizes) }

// DimSize returns the size of given dimension.
func (sh *Shape) DimSize(dim int) int {
	return sh.Sizes[dim]
}

// Start returns the first valid index of given dimension.
func (sh *Shape) Start(dim int) int {
	if sh.Starts == nil {
		return sh.Origin
	}
	return sh.Starts[dim]
}

// IsEqual returns true if this shape is same as other
// (does not compare Starts, Origin or Order).
func (sh *Shape) IsEqual(oth *Shape) bool {
	return slices.Equal(sh.Sizes, oth.Sizes)
}

// Strides returns the flat distance between neighboring elements
// along each dimension, for the shape's Order.
func (sh *Shape) Strides() []int {
	nd := len(sh.Sizes)
	strides := make([]int, nd)
	stride := 1
	if sh.Order == ColMajor {
		for d := range nd {
			strides[d] = stride
			stride *= sh.Sizes[d]
		}
		return strides
	}
	for d := nd - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= sh.Sizes[d]
	}
	return strides
}

// IndexTo1D returns the flat 1D index (starting at Origin) for given
// n-dimensional index, where each index starts at its dimension Start.
// No checking is done on the length or size of the index values
// relative to the shape of the tensor.
func (sh *Shape) IndexTo1D(index ...int) int {
	return sh.Origin + sh.offset(index)
}

// offset returns the 0-based storage offset of the given index.
func (sh *Shape) offset(index []int) int {
	nd := len(sh.Sizes)
	oned := 0
	if sh.Order == ColMajor {
		for d := nd - 1; d >= 0; d-- {
			oned = oned*sh.Sizes[d] + index[d] - sh.Start(d)
		}
		return oned
	}
	for d := range nd {
		oned = oned*sh.Sizes[d] + index[d] - sh.Start(d)
	}
	return oned
}

// IndexFrom1D returns the n-dimensional index for the given
// flat 1D index, the inverse of [Shape.IndexTo1D].
func (sh *Shape) IndexFrom1D(oned int) []int {
	nd := len(sh.Sizes)
	index := make([]int, nd)
	rem := oned - sh.Origin
	if sh.Order == ColMajor {
		for d := range nd {
			s := sh.Sizes[d]
			index[d] = rem%s + sh.Start(d)
			rem /= s
		}
		return index
	}
	for d := nd - 1; d >= 0; d-- {
		s := sh.Sizes[d]
		index[d] = rem%s + sh.Start(d)
		rem /= s
	}
	return index
}

// Axes returns the [diag.Axis] descriptors of the shape,
// for resolving diagonal selectors.
func (sh *Shape) Axes() []diag.Axis {
	strides := sh.Strides()
	axes := make([]diag.Axis, len(sh.Sizes))
	for d, sz := range sh.Sizes {
		axes[d] = diag.Axis{First: sh.Start(d), Len: sz, Stride: strides[d]}
	}
	return axes
}

// String satisfies the fmt.Stringer interface
func (sh *Shape) String() string {
	str := "["
	for d, sz := range sh.Sizes {
		if d > 0 {
			str += ", "
		}
		if st := sh.Start(d); st != 0 {
			str += fmt.Sprintf("%d:", st)
		}
		str += fmt.Sprintf("%d", sz)
	}
	str += "]"
	if sh.Order == ColMajor {
		str += "F"
	}
	return str
}
