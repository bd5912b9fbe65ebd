// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"iter"

	"cogentcore.org/tensordiag/base/errors"
	"cogentcore.org/tensordiag/base/slicesx"
	"cogentcore.org/tensordiag/tensor/diag"
)

var (
	// ErrIndexType is returned for an index expression entry
	// that is not an int, [Slice] or [diag.Selector].
	ErrIndexType = errors.New("tensor: unsupported index type")

	// ErrIndexRange is returned for an int index entry
	// outside of its dimension.
	ErrIndexRange = errors.New("tensor: index out of range")

	// ErrLengthMismatch is returned when the number of values
	// to set differs from the number of selected elements.
	ErrLengthMismatch = errors.New("tensor: length mismatch")
)

// Selection is an index expression resolved against a tensor,
// ready to read or write the selected elements.
// Each entry of the expression is one of:
//   - int: an index on the next dimension, starting at the first
//     index of that dimension. The dimension is dropped from the output.
//   - [Slice]: a range of positions on the next dimension.
//   - [diag.Selector]: a diagonal across the next dimensions, or
//     all of them if it is the only entry. It is one output dimension.
//
// Dimensions not indexed by the expression are included in full.
// The output is ordered with the last output dimension varying fastest.
type Selection struct {

	// Tensor is the tensor the expression was resolved against.
	Tensor Tensor

	// Parts are the resolved parts of the expression, in order.
	Parts []diag.Resolved

	// flat is set when the selection is a single flat range.
	flat bool
	rng  diag.Range

	dims  []selDim
	sizes []int
}

type selKind int32

const (
	selIndex selKind = iota
	selSlice
	selDiag
)

// selDim is one dimension (or, for a diagonal, group of dimensions)
// of the tensor in a Cartesian selection.
type selDim struct {
	kind   selKind
	axis   int
	size   int
	index  int
	start  int
	idx    []int
	coords *diag.Coords
}

// setIndex sets the tensor indexes of this dim for output position p.
func (d *selDim) setIndex(p int, ix []int) {
	switch d.kind {
	case selIndex:
		ix[d.axis] = d.index
	case selSlice:
		ix[d.axis] = d.start + d.idx[p]
	case selDiag:
		errors.Log1(d.coords.AtTo(p, ix[d.axis:d.axis+d.coords.NumAxes()]))
	}
}

// Select resolves the given index expression against the tensor.
// Diagonal selectors are resolved by [diag.Resolve] using the
// [Tensor.Addressing] of the tensor. No values are accessed.
func Select(tsr Tensor, ix ...any) (*Selection, error) {
	sh := tsr.Shape()
	parts, err := diag.Resolve(sh.Axes(), tsr.Addressing(), sh.Origin, ix...)
	if err != nil {
		return nil, err
	}
	sl := &Selection{Tensor: tsr, Parts: parts}
	if len(parts) == 1 {
		if rn, ok := parts[0].(diag.Range); ok {
			sl.flat = true
			sl.rng = rn
			sl.sizes = []int{rn.Count}
			return sl, nil
		}
	}
	axis := 0
	for i, p := range parts {
		switch x := p.(type) {
		case *diag.Coords:
			sl.addDim(selDim{kind: selDiag, axis: axis, size: x.Len(), coords: x})
		case diag.Other:
			d, err := otherDim(sh, axis, x.Index)
			if err != nil {
				return nil, fmt.Errorf("tensor.Select: entry %d of index expression: %w", i, err)
			}
			sl.addDim(d)
		default:
			return nil, fmt.Errorf("tensor.Select: entry %d of index expression: unexpected %T", i, p)
		}
		axis += p.NumAxes()
	}
	for ; axis < sh.NumDims(); axis++ {
		sl.addDim(sliceDim(sh, axis, FullAxis))
	}
	return sl, nil
}

func (sl *Selection) addDim(d selDim) {
	sl.dims = append(sl.dims, d)
	if d.kind != selIndex {
		sl.sizes = append(sl.sizes, d.size)
	}
}

func otherDim(sh *Shape, axis int, x any) (selDim, error) {
	switch v := x.(type) {
	case int:
		st, sz := sh.Start(axis), sh.DimSize(axis)
		if v < st || v >= st+sz {
			return selDim{}, fmt.Errorf("index %d for dimension %d with indexes [%d, %d]: %w", v, axis, st, st+sz-1, ErrIndexRange)
		}
		return selDim{kind: selIndex, axis: axis, index: v}, nil
	case Slice:
		return sliceDim(sh, axis, v), nil
	}
	return selDim{}, fmt.Errorf("%T: %w", x, ErrIndexType)
}

func sliceDim(sh *Shape, axis int, s Slice) selDim {
	idx := s.IntSlice(sh.DimSize(axis))
	return selDim{kind: selSlice, axis: axis, size: len(idx), start: sh.Start(axis), idx: idx}
}

// IsFlat returns true if the selection is a single flat [diag.Range]
// over the 1D values of the tensor, with the range.
func (sl *Selection) IsFlat() (diag.Range, bool) {
	return sl.rng, sl.flat
}

// ShapeSizes returns the sizes of the output of the selection.
func (sl *Selection) ShapeSizes() []int { return sl.sizes }

// Len returns the number of selected elements.
func (sl *Selection) Len() int { return slicesx.Product(sl.sizes) }

// each calls fn for each selected element in output order, with either
// the flat 1D index (ix == nil) or the n-dimensional index of the element.
// ix is reused across calls.
func (sl *Selection) each(fn func(i, flat int, ix []int)) {
	if sl.flat {
		for i, p := range sl.rng.All() {
			fn(i, p, nil)
		}
		return
	}
	n := sl.Len()
	if n == 0 {
		return
	}
	ix := make([]int, sl.Tensor.NumDims())
	pos := make([]int, len(sl.dims))
	for i := range n {
		for k := range sl.dims {
			sl.dims[k].setIndex(pos[k], ix)
		}
		fn(i, 0, ix)
		for k := len(sl.dims) - 1; k >= 0; k-- {
			if sl.dims[k].kind == selIndex {
				continue
			}
			pos[k]++
			if pos[k] < sl.dims[k].size {
				break
			}
			pos[k] = 0
		}
	}
}

// All returns an iterator over the n-dimensional tensor indexes of
// the selected elements, in output order. The yielded slice is reused.
func (sl *Selection) All() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		sh := sl.Tensor.Shape()
		done := false
		sl.each(func(i, flat int, ix []int) {
			if done {
				return
			}
			if ix == nil {
				ix = sh.IndexFrom1D(flat)
			}
			done = !yield(i, ix)
		})
	}
}

// Get returns new [Values] of the same type as the tensor,
// with [Selection.ShapeSizes], containing the selected elements.
func (sl *Selection) Get() Values {
	src := sl.Tensor
	out := NewOfType(src.DataType(), sl.sizes...)
	switch {
	case src.IsString():
		sl.each(func(i, flat int, ix []int) {
			if ix == nil {
				out.SetString1D(src.String1D(flat), i)
			} else {
				out.SetString1D(src.StringValue(ix...), i)
			}
		})
	case IsFloat(src.DataType()):
		sl.each(func(i, flat int, ix []int) {
			if ix == nil {
				out.SetFloat1D(src.Float1D(flat), i)
			} else {
				out.SetFloat1D(src.Float(ix...), i)
			}
		})
	default:
		sl.each(func(i, flat int, ix []int) {
			if ix == nil {
				out.SetInt1D(src.Int1D(flat), i)
			} else {
				out.SetInt1D(src.Int(ix...), i)
			}
		})
	}
	return out
}

// Set sets the selected elements of the tensor to the given values,
// taken in their flat 1D order. The number of values must equal
// [Selection.Len], otherwise [ErrLengthMismatch] is returned and
// nothing is written. Values are not broadcast.
func (sl *Selection) Set(vals Tensor) error {
	if n := sl.Len(); vals.Len() != n {
		return fmt.Errorf("tensor.Selection.Set: %d values for %d selected elements: %w", vals.Len(), n, ErrLengthMismatch)
	}
	dst := sl.Tensor
	vo := vals.Shape().Origin
	switch {
	case dst.IsString():
		sl.each(func(i, flat int, ix []int) {
			if ix == nil {
				dst.SetString1D(vals.String1D(vo+i), flat)
			} else {
				dst.SetString(vals.String1D(vo+i), ix...)
			}
		})
	case IsFloat(dst.DataType()):
		sl.each(func(i, flat int, ix []int) {
			if ix == nil {
				dst.SetFloat1D(vals.Float1D(vo+i), flat)
			} else {
				dst.SetFloat(vals.Float1D(vo+i), ix...)
			}
		})
	default:
		sl.each(func(i, flat int, ix []int) {
			if ix == nil {
				dst.SetInt1D(vals.Int1D(vo+i), flat)
			} else {
				dst.SetInt(vals.Int1D(vo+i), ix...)
			}
		})
	}
	return nil
}

// GetAt returns the elements of the tensor selected by the given index
// expression as new [Values]; see [Selection] for the entries.
// For example, on a 4x3 matrix m:
//
//	tensor.GetAt(m, diag.Main)           // main diagonal, 3 values
//	tensor.GetAt(m, diag.MustNew(1, 0))  // diagonal starting one row down
//	tensor.GetAt(m, tensor.FullAxis, 0)  // first column
func GetAt(tsr Tensor, ix ...any) (Values, error) {
	sl, err := Select(tsr, ix...)
	if err != nil {
		return nil, err
	}
	return sl.Get(), nil
}

// SetAt sets the elements of the tensor selected by the given index
// expression to the given values. The expression is resolved and
// checked completely before any element is written, so on error
// the tensor is unchanged.
func SetAt(tsr Tensor, vals Tensor, ix ...any) error {
	sl, err := Select(tsr, ix...)
	if err != nil {
		return err
	}
	return sl.Set(vals)
}

// GetFloatsAt is a version of [GetAt] that returns the values as float64s.
func GetFloatsAt(tsr Tensor, ix ...any) ([]float64, error) {
	vals, err := GetAt(tsr, ix...)
	if err != nil {
		return nil, err
	}
	return AsFloat64Slice(vals), nil
}

// SetFloatsAt is a version of [SetAt] that takes float64 values.
func SetFloatsAt(tsr Tensor, vals []float64, ix ...any) error {
	return SetAt(tsr, NewFloat64FromValues(vals...), ix...)
}
