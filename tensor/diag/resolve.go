// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"fmt"
	"math"
)

// Resolved is the representation of one part of a resolved index
// expression: a [Range], a [*Coords], or an [Other] entry that the
// array handles itself.
type Resolved interface {
	// NumAxes returns the number of array axes this part indexes.
	NumAxes() int

	isResolved()
}

// Other is an index entry that is not a [Selector], passed through
// unchanged by [Resolve] for the array to interpret. It indexes one axis.
type Other struct {
	Index any
}

func (Other) NumAxes() int     { return 1 }
func (Other) isResolved()      {}
func (o Other) String() string { return fmt.Sprint(o.Index) }

// Resolve resolves the index expression ix for an array with the given
// axes, addressing and first flat position (origin). Each entry of ix is
// either a [Selector] or an ordinary entry of the array, which indexes
// one axis and is returned as [Other]. The parts are returned in the order
// of ix, each indexing the axes following those of the previous part.
//
// A [Rest] anywhere but last is an [ErrMisplacedRest] error. A selector
// that is the only entry for a [Linear] array resolves to a single [Range]
// over all of the axes; see [ResolveSelector] for the other cases.
// Nothing is returned on error.
func Resolve(axes []Axis, addr Addressing, origin int, ix ...any) ([]Resolved, error) {
	n := len(ix)
	for i, x := range ix {
		if _, ok := x.(Rest); ok && i != n-1 {
			return nil, fmt.Errorf("diag.Resolve: index %d of %d: %w", i, n, ErrMisplacedRest)
		}
	}
	sole := n == 1
	parts := make([]Resolved, 0, n)
	ax := 0
	for i, x := range ix {
		sel, ok := x.(Selector)
		if !ok {
			if ax >= len(axes) {
				return nil, fmt.Errorf("diag.Resolve: index %d for array with %d axes: %w", i, len(axes), ErrTooManyIndexes)
			}
			parts = append(parts, Other{Index: x})
			ax++
			continue
		}
		rs, used, err := ResolveSelector(sel, axes[ax:], addr, origin, sole)
		if err != nil {
			return nil, err
		}
		parts = append(parts, rs)
		ax += used
	}
	return parts, nil
}

// ResolveSelector resolves one selector against the axes that remain
// unindexed at its position in an index expression, returning the
// representation and the number of axes it uses.
//
// If sole is true (the selector is the entire index expression) and addr
// is [Linear], the result is a [Range] over all axes. A [Diagonal] that
// spans fewer axes than the array has is then an [ErrDimensionMismatch]
// error; one that spans more treats the extra axes as having length 1,
// so the range has at most one position, and none if any of their
// offsets is non-zero.
//
// Otherwise the result is a [*Coords] over the next NumAxes axes, each
// from its first coordinate plus offset to its last. If fewer axes remain
// than the diagonal spans, each remaining axis gets just its first
// coordinate plus offset, and the extra axes act as length 1 axes as above.
// A [Rest] spans all remaining axes.
func ResolveSelector(sel Selector, axes []Axis, addr Addressing, origin int, sole bool) (Resolved, int, error) {
	var offs []int
	switch s := sel.(type) {
	case Rest:
		offs = make([]int, len(axes))
	case Diagonal:
		if len(s.offsets) == 0 {
			return nil, 0, fmt.Errorf("diag.ResolveSelector: zero Diagonal: %w", ErrNoAxes)
		}
		offs = s.offsets
	default:
		return nil, 0, fmt.Errorf("diag.ResolveSelector: unexpected selector type %T", sel)
	}
	if sole && addr == Linear {
		if len(offs) < len(axes) {
			return nil, 0, fmt.Errorf("diag.ResolveSelector: %v spans %d axes of an array with %d: %w", sel, len(offs), len(axes), ErrDimensionMismatch)
		}
		return linearRange(axes, origin, offs), len(axes), nil
	}
	cs := cartesianCoords(axes, offs)
	return cs, cs.NumAxes(), nil
}

// linearRange returns the flat [Range] for a diagonal with the given
// offsets across all axes (len(offs) >= len(axes)).
func linearRange(axes []Axis, origin int, offs []int) Range {
	total := 1
	for _, a := range axes {
		total *= a.Len
	}
	count := math.MaxInt
	step, start := 0, origin
	for i, o := range offs {
		n, stride := 1, total // virtual axis beyond the array
		if i < len(axes) {
			n, stride = axes[i].Len, axes[i].Stride
		}
		step += stride
		count = min(count, n-o)
		start += o * stride
	}
	if len(offs) == 0 { // array with no axes has one element
		count = 1
	}
	return Range{Start: start, Step: step, Count: max(count, 0), Axes: len(axes)}
}

// cartesianCoords returns the [Coords] for a diagonal with the given
// offsets, starting at the first of the given axes.
func cartesianCoords(axes []Axis, offs []int) *Coords {
	if len(offs) <= len(axes) {
		spans := make([]Span, len(offs))
		for i, o := range offs {
			spans[i] = Span{First: axes[i].First + o, Last: axes[i].Last()}
		}
		return NewCoords(spans...)
	}
	spans := make([]Span, len(axes))
	for i, a := range axes {
		c := a.First + offs[i]
		spans[i] = Span{First: c, Last: c}
		if offs[i] >= a.Len {
			spans[i].Last = c - 1
		}
	}
	return &Coords{spans: spans, excess: offs[len(axes):]}
}
