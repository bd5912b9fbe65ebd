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

// Base is the base Tensor implementation for given type.
type Base[T any] struct {

	// shape contains the N-dimensional shape and indexing functionality.
	shape Shape

	// Values is a flat 1D slice of the underlying data,
	// stored in the shape Order.
	Values []T
}

// Shape returns a pointer to the shape that fully parametrizes the tensor shape.
func (tsr *Base[T]) Shape() *Shape { return &tsr.shape }

// ShapeSizes returns the sizes of each dimension.
func (tsr *Base[T]) ShapeSizes() []int { return slices.Clone(tsr.shape.Sizes) }

// Len returns the number of elements in the tensor (product of shape dimensions).
func (tsr *Base[T]) Len() int { return tsr.shape.Len() }

// NumDims returns the total number of dimensions.
func (tsr *Base[T]) NumDims() int { return tsr.shape.NumDims() }

// DimSize returns size of given dimension.
func (tsr *Base[T]) DimSize(dim int) int { return tsr.shape.DimSize(dim) }

// DataType returns the type of the data elements in the tensor.
func (tsr *Base[T]) DataType() reflect.Kind {
	var v T
	return reflect.TypeOf(v).Kind()
}

// Addressing is [diag.Linear] for all raw values.
func (tsr *Base[T]) Addressing() diag.Addressing { return diag.Linear }

// Value returns value at given tensor index.
func (tsr *Base[T]) Value(i ...int) T { return tsr.Values[tsr.shape.offset(i)] }

// Value1D returns value at given flat 1D index.
func (tsr *Base[T]) Value1D(i int) T { return tsr.Values[i-tsr.shape.Origin] }

// Set sets the value at given tensor index.
func (tsr *Base[T]) Set(val T, i ...int) { tsr.Values[tsr.shape.offset(i)] = val }

// Set1D sets the value at given flat 1D index.
func (tsr *Base[T]) Set1D(val T, i int) { tsr.Values[i-tsr.shape.Origin] = val }

// SetShapeSizes sets the dimension sizes of the tensor, and resizes
// backing storage appropriately, retaining all existing data that fits.
func (tsr *Base[T]) SetShapeSizes(sizes ...int) {
	tsr.shape.SetShapeSizes(sizes...)
	tsr.Values = slicesx.SetLength(tsr.Values, tsr.Len())
}

// SetOrder sets the memory layout order of the values.
func (tsr *Base[T]) SetOrder(order Order) { tsr.shape.Order = order }

// SetOrigin sets the first valid flat index and the
// first index of each dimension.
func (tsr *Base[T]) SetOrigin(origin int) { tsr.shape.SetOrigin(origin) }

// Label returns a summary description of the tensor.
func (tsr *Base[T]) Label() string {
	return fmt.Sprintf("%s %s", tsr.DataType().String(), tsr.shape.String())
}
