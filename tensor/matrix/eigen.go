// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"cogentcore.org/tensordiag/base/errors"
	"cogentcore.org/tensordiag/tensor"
	"gonum.org/v1/gonum/mat"
)

// EigSym performs the eigen decomposition of the given symmetric square matrix,
// which produces real-valued results.
// The vectors are same size as the input. Each vector is a column
// in this 2D square matrix, ordered *lowest* to *highest* across the columns,
// i.e., maximum vector is the last column.
// The values are the size of one row, ordered *lowest* to *highest*.
// The sum of the values is the [Trace] of the matrix.
func EigSym(a tensor.Tensor) (vecs, vals *tensor.Float64) {
	vecs = tensor.NewFloat64()
	vals = tensor.NewFloat64()
	errors.Log(EigSymOut(a, vecs, vals))
	return
}

// EigSymOut performs the eigen decomposition of the given symmetric square matrix,
// putting results into vecs and vals. See [EigSym].
func EigSymOut(a tensor.Tensor, vecs, vals *tensor.Float64) error {
	ma, err := NewSymmetric(a)
	if err != nil {
		return err
	}
	n := ma.SymmetricDim()
	if n == 0 {
		return mat.ErrZeroLength
	}
	vecs.SetShapeSizes(n, n)
	vals.SetShapeSizes(n)
	do, err := NewDense(vecs)
	if err != nil {
		return err
	}
	var eig mat.EigenSym
	if !eig.Factorize(ma, true) {
		return errors.New("gonum mat.EigenSym Factorize failed")
	}
	eig.VectorsTo(do)
	eig.Values(vals.Values)
	return nil
}

// SVD performs the singular value decomposition of the given symmetric square matrix,
// which produces real-valued results, and is generally much faster than [EigSym],
// while producing the same results.
// The vectors are same size as the input. Each vector is a column
// in this 2D square matrix, ordered *highest* to *lowest* across the columns,
// i.e., maximum vector is the first column.
// The values are the size of one row ordered in alignment with the vectors.
// Note that SVD produces results in the *opposite* order of [EigSym].
func SVD(a tensor.Tensor) (vecs, vals *tensor.Float64) {
	vecs = tensor.NewFloat64()
	vals = tensor.NewFloat64()
	errors.Log(SVDOut(a, vecs, vals))
	return
}

// SVDOut performs the singular value decomposition of the given symmetric
// square matrix, putting results into vecs and vals. See [SVD].
func SVDOut(a tensor.Tensor, vecs, vals *tensor.Float64) error {
	ma, err := NewSymmetric(a)
	if err != nil {
		return err
	}
	n := ma.SymmetricDim()
	if n == 0 {
		return mat.ErrZeroLength
	}
	vecs.SetShapeSizes(n, n)
	vals.SetShapeSizes(n)
	do, err := NewDense(vecs)
	if err != nil {
		return err
	}
	var svd mat.SVD
	if !svd.Factorize(ma, mat.SVDFull) {
		return errors.New("gonum mat.SVD Factorize failed")
	}
	svd.UTo(do)
	svd.Values(vals.Values)
	return nil
}
