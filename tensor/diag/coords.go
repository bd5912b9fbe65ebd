// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Coords is a lazy sequence of diagonal coordinate tuples over a set
// of axis [Span]s: element i is the tuple with component j equal to
// spans[j].First + i. No coordinates are stored; each tuple is computed
// on demand. The spans are referenced, not copied, and must not be
// modified while the Coords is in use. A Coords is immutable.
type Coords struct {
	spans []Span

	// excess holds the offsets of selector axes beyond the axes
	// available to it: each acts as a virtual axis of length 1,
	// so the sequence is empty if any of them is non-zero.
	excess []int
}

// NewCoords returns a new [Coords] over the given spans,
// which should already include any offsets.
func NewCoords(spans ...Span) *Coords {
	return &Coords{spans: spans}
}

// Spans returns the spans of the sequence, which must not be modified.
func (cs *Coords) Spans() []Span { return cs.spans }

// NumAxes returns the number of coordinates in each tuple,
// i.e., the number of array axes the sequence indexes.
func (cs *Coords) NumAxes() int { return len(cs.spans) }

// Len returns the number of tuples, which is the minimum of the span
// lengths, and 0 if any span is empty. A sequence with no axes at
// all has a single, empty, tuple.
func (cs *Coords) Len() int {
	if len(cs.spans) == 0 && len(cs.excess) == 0 {
		return 1
	}
	n := math.MaxInt
	for _, sp := range cs.spans {
		n = min(n, sp.Len())
	}
	for _, o := range cs.excess {
		n = min(n, 1-o)
	}
	return max(n, 0)
}

// InBounds returns true: every tuple at a position in [0, Len())
// is within the spans the sequence was built from, so consumers
// do not need to check them again.
func (cs *Coords) InBounds() bool { return true }

// At returns a new coordinate tuple for position i,
// or [ErrOutOfRange] if i is not in [0, Len()).
func (cs *Coords) At(i int) ([]int, error) {
	return cs.AtTo(i, make([]int, len(cs.spans)))
}

// AtTo sets the coordinate tuple for position i into dst, which must
// have length [Coords.NumAxes], and returns it.
// It returns [ErrOutOfRange] if i is not in [0, Len()).
func (cs *Coords) AtTo(i int, dst []int) ([]int, error) {
	if n := cs.Len(); i < 0 || i >= n {
		return nil, fmt.Errorf("diag.Coords.At(%d) with length %d: %w", i, n, ErrOutOfRange)
	}
	for j, sp := range cs.spans {
		dst[j] = sp.First + i
	}
	return dst, nil
}

// All iterates over the sequence, yielding each position and its
// coordinate tuple. The yielded tuple is re-used on each step:
// copy it to retain it.
func (cs *Coords) All() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		n := cs.Len()
		tup := make([]int, len(cs.spans))
		for i := range n {
			for j, sp := range cs.spans {
				tup[j] = sp.First + i
			}
			if !yield(i, tup) {
				return
			}
		}
	}
}

func (cs *Coords) String() string {
	var b strings.Builder
	b.WriteString("Coords[")
	for i, sp := range cs.spans {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sp.String())
	}
	if len(cs.excess) > 0 {
		fmt.Fprintf(&b, " excess %v", cs.excess)
	}
	fmt.Fprintf(&b, "] n=%d", cs.Len())
	return b.String()
}

func (cs *Coords) isResolved() {}
