// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoords(t *testing.T) {
	cs := NewCoords(Span{1, 4}, Span{2, 3}, Span{0, 9})
	assert.Equal(t, 3, cs.NumAxes())
	assert.Equal(t, 2, cs.Len())
	assert.True(t, cs.InBounds())

	c, err := cs.At(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, c)
	c, err = cs.At(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, c)

	_, err = cs.At(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = cs.At(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	dst := make([]int, 3)
	c, err = cs.AtTo(1, dst)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, dst)
	assert.Equal(t, dst, c)

	assert.Equal(t, "Coords[1:4, 2:3, 0:9] n=2", cs.String())
}

func TestCoordsAll(t *testing.T) {
	cs := NewCoords(Span{0, 2}, Span{5, 7})
	var got [][]int
	for i, c := range cs.All() {
		assert.Equal(t, len(got), i)
		got = append(got, slices.Clone(c))
	}
	assert.Equal(t, [][]int{{0, 5}, {1, 6}, {2, 7}}, got)

	n := 0
	for range cs.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestCoordsEmpty(t *testing.T) {
	cs := NewCoords(Span{3, 5}, Span{4, 3})
	assert.Equal(t, 0, cs.Len())
	_, err := cs.At(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	for range cs.All() {
		t.Fatal("empty sequence yielded")
	}

	none := NewCoords()
	assert.Equal(t, 1, none.Len())
	c, err := none.At(0)
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestCoordsExcess(t *testing.T) {
	cs := &Coords{spans: []Span{{2, 2}}, excess: []int{0, 0}}
	assert.Equal(t, 1, cs.Len())
	assert.Equal(t, 1, cs.NumAxes())
	assert.Equal(t, "Coords[2:2 excess [0 0]] n=1", cs.String())

	cs = &Coords{spans: []Span{{2, 2}}, excess: []int{0, 1}}
	assert.Equal(t, 0, cs.Len())
}

func TestSpan(t *testing.T) {
	assert.Equal(t, 4, Span{1, 4}.Len())
	assert.Equal(t, 1, Span{3, 3}.Len())
	assert.Equal(t, 0, Span{3, 2}.Len())
	assert.Equal(t, 0, Span{3, -5}.Len())

	ax := Axis{First: 1, Len: 4, Stride: 1}
	assert.Equal(t, 4, ax.Last())
	assert.Equal(t, 0, Axis{First: 1}.Last())
}
