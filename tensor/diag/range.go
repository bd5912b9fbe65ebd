// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"fmt"
	"iter"
)

// Range is an arithmetic progression of flat positions in a [Linear]
// array: Start, Start+Step, ..., Stop(). A Count of 0 is an empty range.
type Range struct {
	// Start is the first flat position.
	Start int

	// Step is the distance between consecutive positions.
	Step int

	// Count is the number of positions.
	Count int

	// Axes is the number of array axes the range indexes,
	// which is all of them.
	Axes int
}

// Len returns the number of positions.
func (rn Range) Len() int { return rn.Count }

// NumAxes returns the number of array axes the range indexes.
func (rn Range) NumAxes() int { return rn.Axes }

// Stop returns the last position in the range, Start + (Count-1)*Step.
// It is before Start for an empty range.
func (rn Range) Stop() int {
	return rn.Start + (rn.Count-1)*rn.Step
}

// InBounds returns true: a Range is computed from the array's
// own axes, so every position in it is valid.
func (rn Range) InBounds() bool { return true }

// At returns the flat position at index i,
// or [ErrOutOfRange] if i is not in [0, Count).
func (rn Range) At(i int) (int, error) {
	if i < 0 || i >= rn.Count {
		return 0, fmt.Errorf("diag.Range.At(%d) with length %d: %w", i, rn.Count, ErrOutOfRange)
	}
	return rn.Start + i*rn.Step, nil
}

// All iterates over the range, yielding each index and flat position.
func (rn Range) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := range rn.Count {
			if !yield(i, rn.Start+i*rn.Step) {
				return
			}
		}
	}
}

func (rn Range) String() string {
	return fmt.Sprintf("Range[%d:%d:%d] n=%d", rn.Start, rn.Step, rn.Stop(), rn.Count)
}

func (rn Range) isResolved() {}
