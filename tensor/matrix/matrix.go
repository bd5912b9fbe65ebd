// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matrix provides [gonum] matrix views of 2D tensors,
// and matrix functions built on diagonal selectors.
package matrix

import (
	"fmt"

	"cogentcore.org/tensordiag/base/errors"
	"cogentcore.org/tensordiag/tensor"
	"gonum.org/v1/gonum/mat"
)

// Matrix provides a view of the given [tensor.Tensor] as a [gonum]
// [mat.Matrix] interface type. Rows and columns of the matrix are
// indexed from 0, regardless of the first index of each tensor dimension.
type Matrix struct {
	Tensor tensor.Tensor
}

// StringCheck returns an error if the given tensor has string values.
func StringCheck(tsr tensor.Tensor) error {
	if tsr.IsString() {
		return errors.New("matrix: tensor has string values; must be numeric")
	}
	return nil
}

// NewMatrix returns given [tensor.Tensor] as a [gonum] [mat.Matrix].
// It returns an error if the tensor is not 2D.
func NewMatrix(tsr tensor.Tensor) (*Matrix, error) {
	if err := StringCheck(tsr); err != nil {
		return nil, err
	}
	if nd := tsr.NumDims(); nd != 2 {
		return nil, fmt.Errorf("matrix.NewMatrix: tensor is not 2D, has %d dimensions: %w", nd, mat.ErrShape)
	}
	return &Matrix{Tensor: tsr}, nil
}

// Dims is the gonum/mat.Matrix interface method for returning the
// dimension sizes of the 2D Matrix.
func (mx *Matrix) Dims() (r, c int) {
	return mx.Tensor.DimSize(0), mx.Tensor.DimSize(1)
}

// At is the gonum/mat.Matrix interface method for returning 2D
// matrix element at given row, column index.
func (mx *Matrix) At(i, j int) float64 {
	sh := mx.Tensor.Shape()
	return mx.Tensor.Float(sh.Start(0)+i, sh.Start(1)+j)
}

// T is the gonum/mat.Matrix transpose method.
// It performs an implicit transpose by returning the receiver inside a Transpose.
func (mx *Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: mx}
}

// Symmetric is a wrapper around a [tensor.Tensor] that implements the
// [mat.Symmetric] interface for a square 2D matrix.
type Symmetric struct {
	Matrix
}

// NewSymmetric returns given [tensor.Tensor] as a [gonum] [mat.Symmetric] matrix.
// It returns an error if the tensor is not 2D or not square.
// Only the values on and above the diagonal are used.
func NewSymmetric(tsr tensor.Tensor) (*Symmetric, error) {
	mx, err := NewMatrix(tsr)
	if err != nil {
		return nil, err
	}
	if r, c := mx.Dims(); r != c {
		return nil, fmt.Errorf("matrix.NewSymmetric: tensor is not square: %d x %d: %w", r, c, mat.ErrSquare)
	}
	return &Symmetric{Matrix: *mx}, nil
}

// At returns the element at row i, column j, using
// the upper triangle of the matrix.
func (sy *Symmetric) At(i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	return sy.Matrix.At(i, j)
}

// T returns the receiver, which is its own transpose.
func (sy *Symmetric) T() mat.Matrix { return sy }

// SymmetricDim is the gonum/mat.Matrix interface method for returning the
// dimensionality of a symmetric 2D Matrix.
func (sy *Symmetric) SymmetricDim() int {
	r, _ := sy.Dims()
	return r
}

// NewDense returns given [tensor.Float64] as a [gonum] [mat.Dense]
// Matrix, on which many of the matrix operations are defined.
// It functions similar to the [tensor.Values] type, as the output
// of matrix operations. The Dense type serves as a view onto
// the tensor's data, so operations directly modify it.
// The tensor must be 2D and [tensor.RowMajor].
func NewDense(tsr *tensor.Float64) (*mat.Dense, error) {
	if nd := tsr.NumDims(); nd != 2 {
		return nil, fmt.Errorf("matrix.NewDense: tensor is not 2D, has %d dimensions: %w", nd, mat.ErrShape)
	}
	if tsr.Shape().Order != tensor.RowMajor {
		return nil, errors.New("matrix.NewDense: tensor must be RowMajor")
	}
	return mat.NewDense(tsr.DimSize(0), tsr.DimSize(1), tsr.Values), nil
}

// CopyFromDense copies a gonum mat.Dense matrix into given Tensor
// using standard Float64 interface, starting at the first index
// of each of its dimensions.
func CopyFromDense(to tensor.Values, dm *mat.Dense) {
	nr, nc := dm.Dims()
	to.SetShapeSizes(nr, nc)
	sh := to.Shape()
	for ri := range nr {
		for ci := range nc {
			to.SetFloat(dm.At(ri, ci), sh.Start(0)+ri, sh.Start(1)+ci)
		}
	}
}

// check for interface impl
var (
	_ mat.Matrix    = (*Matrix)(nil)
	_ mat.Symmetric = (*Symmetric)(nil)
)
