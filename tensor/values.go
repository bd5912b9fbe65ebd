// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

// Values is an extended [Tensor] interface for raw value tensors.
// Values are stored in a contiguous slice in the [Shape] Order,
// so the flat 1D index addresses the storage directly
// (offset by the shape Origin), which is [diag.Linear] addressing.
type Values interface {
	Tensor

	// SetShapeSizes sets the dimension sizes of the tensor, and resizes
	// backing storage appropriately, retaining all existing data that fits.
	SetShapeSizes(sizes ...int)

	// SetOrder sets the memory layout order of the values.
	// Existing values keep their flat positions, so their
	// n-dimensional indexes change.
	SetOrder(order Order)

	// SetOrigin sets the first valid flat index and the first index
	// of each dimension, e.g., 1 for 1-based indexing.
	SetOrigin(origin int)

	// SetZeros is a simple convenience function initialize all values to the
	// zero value of the type (empty strings for string type).
	SetZeros()

	// Clone clones this tensor, creating a duplicate copy of itself with its
	// own separate memory representation of all the values.
	Clone() Values

	// CopyFrom copies all values from other tensor into this tensor, with an
	// optimized implementation if the other tensor is of the same type, and
	// otherwise it goes through the appropriate standard type (Float, Int, String).
	// Values are copied in flat 1D order, up to the smaller of the two lengths.
	CopyFrom(from Tensor)
}
