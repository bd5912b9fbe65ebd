// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag provides diagonal selectors for n-dimensional arrays,
// and resolves them into the index representation that the array
// natively consumes: a [Range] of flat positions for [Linear] arrays,
// or a lazy [Coords] sequence of coordinate tuples otherwise.
//
// A selector is used as one entry of an index expression, next to the
// ordinary one-axis entries of the host array:
//
//	tensor.GetAt(tsr, diag.Main)                 // main diagonal across all axes
//	tensor.GetAt(tsr, diag.MustNew(1, 0))        // 2 axes, first axis offset by 1
//	tensor.GetAt(tsr, 2, diag.Main)              // diagonal of the sub-array at 2
//
// Nothing is precomputed: a [Range] is three ints, and [Coords]
// computes each coordinate tuple on demand.
package diag

import (
	"fmt"
	"slices"
)

// Selector is a diagonal selector: a [Rest] or a [Diagonal].
type Selector interface {
	fmt.Stringer

	// NumAxes returns the number of axes the selector spans.
	// It is 0 for [Rest], which spans all remaining axes.
	NumAxes() int

	// Offset returns the offset on the given axis of the selector,
	// which is 0 for axes beyond NumAxes.
	Offset(axis int) int

	isSelector()
}

// Rest selects the diagonal across all remaining axes of an index
// expression, with no offsets. It is only valid as the last entry.
type Rest struct{}

// Main is the main diagonal across all axes of an array,
// when used as the only entry of an index expression.
var Main = Rest{}

func (Rest) NumAxes() int   { return 0 }
func (Rest) Offset(int) int { return 0 }
func (Rest) String() string { return "diag.Rest" }
func (Rest) isSelector()    {}

// Diagonal selects the diagonal across a fixed number of consecutive
// axes, with a non-negative offset on each. The number of axes is the
// number of offsets, fixed at construction. The zero value is not valid;
// use [New], [NewK] or [MustNew].
type Diagonal struct {
	offsets []int
}

// New returns a [Diagonal] across len(offsets) axes, starting each
// axis at its first coordinate plus the corresponding offset.
// It returns [ErrNegativeOffset] for any offset < 0, and [ErrNoAxes]
// if no offsets are given.
func New(offsets ...int) (Diagonal, error) {
	if len(offsets) == 0 {
		return Diagonal{}, ErrNoAxes
	}
	for i, o := range offsets {
		if o < 0 {
			return Diagonal{}, fmt.Errorf("diag.New: offset %d on axis %d: %w", o, i, ErrNegativeOffset)
		}
	}
	return Diagonal{offsets: slices.Clone(offsets)}, nil
}

// NewK returns a [Diagonal] across k axes with all offsets 0.
// It returns [ErrNoAxes] if k < 1.
func NewK(k int) (Diagonal, error) {
	if k < 1 {
		return Diagonal{}, fmt.Errorf("diag.NewK: k = %d: %w", k, ErrNoAxes)
	}
	return Diagonal{offsets: make([]int, k)}, nil
}

// MustNew is like [New] but panics on error.
// It is intended for constant offsets in index expressions.
func MustNew(offsets ...int) Diagonal {
	d, err := New(offsets...)
	if err != nil {
		panic(err)
	}
	return d
}

// NumAxes returns the number of axes the diagonal spans.
func (d Diagonal) NumAxes() int { return len(d.offsets) }

// Offset returns the offset on the given axis.
func (d Diagonal) Offset(axis int) int {
	if axis < 0 || axis >= len(d.offsets) {
		return 0
	}
	return d.offsets[axis]
}

// Offsets returns a copy of the per-axis offsets.
func (d Diagonal) Offsets() []int { return slices.Clone(d.offsets) }

func (d Diagonal) String() string {
	return fmt.Sprintf("diag.Diagonal%v", d.offsets)
}

func (Diagonal) isSelector() {}
