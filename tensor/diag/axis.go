// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import "fmt"

// Addressing is how an array addresses its elements.
type Addressing int32

const (
	// Linear arrays address elements with a single flat offset into
	// contiguous storage, so a diagonal over all of their axes is a
	// [Range] of flat positions.
	Linear Addressing = iota

	// Cartesian arrays need a full tuple of per-axis coordinates,
	// e.g., views that permute or re-index axes, so a diagonal is
	// a [Coords] sequence.
	Cartesian
)

func (ad Addressing) String() string {
	switch ad {
	case Linear:
		return "Linear"
	case Cartesian:
		return "Cartesian"
	}
	return fmt.Sprintf("Addressing(%d)", int32(ad))
}

// Axis describes one axis of an array, as supplied by the array.
type Axis struct {
	// First is the first valid coordinate on the axis.
	First int

	// Len is the number of valid coordinates on the axis.
	Len int

	// Stride is the distance in flat positions between neighboring
	// elements along the axis. Only used for [Linear] addressing.
	Stride int
}

// Last returns the last valid coordinate on the axis,
// which is First-1 for an empty axis.
func (ax Axis) Last() int { return ax.First + ax.Len - 1 }

// Span is an inclusive sub-range [First, Last] of coordinates on one axis.
// It is empty when Last < First.
type Span struct {
	First int
	Last  int
}

// Len returns the number of coordinates in the span, 0 if empty.
func (sp Span) Len() int {
	return max(sp.Last-sp.First+1, 0)
}

func (sp Span) String() string {
	return fmt.Sprintf("%d:%d", sp.First, sp.Last)
}
