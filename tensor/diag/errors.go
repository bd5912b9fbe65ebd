// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import "errors"

// Errors returned by this package. They are wrapped with context
// by the functions that return them, so match them with [errors.Is].
var (
	// ErrNegativeOffset is returned when constructing a [Diagonal]
	// with an offset less than zero.
	ErrNegativeOffset = errors.New("diag: negative offset")

	// ErrNoAxes is returned when constructing a [Diagonal] that spans no axes.
	ErrNoAxes = errors.New("diag: diagonal must span at least one axis")

	// ErrMisplacedRest is returned when [Rest] is not the last
	// entry of an index expression.
	ErrMisplacedRest = errors.New("diag: Rest must be the last index")

	// ErrDimensionMismatch is returned when a [Diagonal] used as the sole
	// index of a linear array spans fewer axes than the array has.
	ErrDimensionMismatch = errors.New("diag: diagonal spans fewer axes than the array")

	// ErrOutOfRange is returned for a position outside of a
	// [Coords] or [Range] sequence.
	ErrOutOfRange = errors.New("diag: position out of range")

	// ErrTooManyIndexes is returned when an index expression has
	// more one-axis entries than the array has axes.
	ErrTooManyIndexes = errors.New("diag: too many indexes for array")
)
