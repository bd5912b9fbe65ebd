// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"cogentcore.org/tensordiag/base/errors"
	"cogentcore.org/tensordiag/tensor"
	"cogentcore.org/tensordiag/tensor/diag"
	"gonum.org/v1/gonum/floats"
)

// selector returns the diagonal selector for given offsets,
// which is the main diagonal if there are none.
func selector(offsets []int) (diag.Selector, error) {
	if len(offsets) == 0 {
		return diag.Main, nil
	}
	return diag.New(offsets...)
}

// Diagonal returns the elements of the diagonal of the given tensor
// that starts at the given offsets from the first index of each
// dimension, or the main diagonal across all dimensions if no offsets
// are given. It works for tensors of any number of dimensions.
// Offsets beyond the end of a dimension result in no elements.
func Diagonal(tsr tensor.Tensor, offsets ...int) (*tensor.Float64, error) {
	if err := StringCheck(tsr); err != nil {
		return nil, err
	}
	sel, err := selector(offsets)
	if err != nil {
		return nil, err
	}
	vals, err := tensor.GetAt(tsr, sel)
	if err != nil {
		return nil, err
	}
	return tensor.AsFloat64(vals), nil
}

// SetDiagonal sets the elements of the diagonal of the given tensor
// selected as in [Diagonal] to the given values, which must have one
// value per element. Nothing is set on error.
func SetDiagonal(tsr tensor.Tensor, vals []float64, offsets ...int) error {
	sel, err := selector(offsets)
	if err != nil {
		return err
	}
	return tensor.SetFloatsAt(tsr, vals, sel)
}

// Trace returns the sum of the main diagonal elements of the given tensor.
// Errors are logged and result in 0.
func Trace(tsr tensor.Tensor) float64 {
	d := errors.Log1(Diagonal(tsr))
	if d == nil {
		return 0
	}
	return floats.Sum(d.Values)
}
