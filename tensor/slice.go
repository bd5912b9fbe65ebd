// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

// Slice represents a slice of index positions along one dimension,
// for an index expression or a [Sliced] view.
// Positions count from 0 at the first index of the dimension,
// and negative values count back from the end, as in NumPy.
// The zero value is the full dimension.
type Slice struct {
	// Start is the starting position. If 0 and Step < 0, it is size-1;
	// if negative, it is size+Start.
	Start int

	// Stop is the exclusive stopping position. If 0 it is size when
	// Step > 0, and before the start of the dimension when Step < 0;
	// if negative, it is size+Stop.
	Stop int

	// Step is the increment between positions, which is 1 if 0.
	// It can be negative to go backward.
	Step int
}

// FullAxis is a [Slice] selecting all positions of a dimension.
var FullAxis = Slice{}

// NewSlice returns a new Slice with given start, stop, step values.
func NewSlice(start, stop, step int) Slice {
	return Slice{Start: start, Stop: stop, Step: step}
}

// GetStart is the actual start position given the size of the dimension.
func (sl Slice) GetStart(size int) int {
	if sl.Start == 0 && sl.Step < 0 {
		return size - 1
	}
	if sl.Start < 0 {
		return max(size+sl.Start, 0)
	}
	return sl.Start
}

// GetStop is the actual exclusive stop position given the size of the dimension.
func (sl Slice) GetStop(size int) int {
	if sl.Stop == 0 {
		if sl.Step < 0 {
			return -1
		}
		return size
	}
	if sl.Stop < 0 {
		return size + sl.Stop
	}
	return min(sl.Stop, size)
}

// GetStep is the actual increment value.
func (sl Slice) GetStep() int {
	if sl.Step == 0 {
		return 1
	}
	return sl.Step
}

// Len is the number of positions in the actual slice given
// size of the dimension.
func (sl Slice) Len(size int) int {
	start, stop, step := sl.GetStart(size), sl.GetStop(size), sl.GetStep()
	if step > 0 {
		if start >= stop {
			return 0
		}
		return (stop-start-1)/step + 1
	}
	start = min(start, size-1)
	if start <= stop {
		return 0
	}
	return (start-stop-1)/(-step) + 1
}

// IntSlice returns the positions of the slice given the size of the dimension.
func (sl Slice) IntSlice(size int) []int {
	n := sl.Len(size)
	if n == 0 {
		return []int{}
	}
	start, step := sl.GetStart(size), sl.GetStep()
	if step < 0 {
		start = min(start, size-1)
	}
	ints := make([]int, n)
	for i := range n {
		ints[i] = start + i*step
	}
	return ints
}
