// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/tensordiag/base/iox/tomlx"
	"cogentcore.org/tensordiag/tensor"
	"cogentcore.org/tensordiag/tensor/diag"
	"fortio.org/safecast"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration for the resolve command.
// It is read from a TOML file, and any flags given on the
// command line override the values from the file.
type Config struct {

	// Shape is the size of each dimension of the tensor.
	Shape []int64

	// Order is the memory layout: "row" (C) or "col" (Fortran).
	Order string

	// Origin is the first flat index and the first index along each axis.
	Origin int64

	// Offsets are the per-axis diagonal offsets. If empty,
	// the main diagonal over all axes is selected.
	Offsets []int64

	// Transpose resolves on a transposed view of the tensor,
	// which uses Cartesian addressing.
	Transpose bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{Shape: []int64{3, 3}, Order: "row"}
}

// Open reads the config from the given TOML file, on top of
// the current values. A leading ~ is expanded to the home directory.
func (cf *Config) Open(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return fmt.Errorf("config %q: %w", filename, err)
	}
	if err := tomlx.Open(cf, fn); err != nil {
		return fmt.Errorf("config %q: %w", filename, err)
	}
	return nil
}

func toInts(vals []int64) ([]int, error) {
	res := make([]int, len(vals))
	for i, v := range vals {
		n, err := safecast.Conv[int](v)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", v, err)
		}
		res[i] = n
	}
	return res, nil
}

// Sizes returns the shape sizes as ints.
func (cf *Config) Sizes() ([]int, error) {
	sizes, err := toInts(cf.Shape)
	if err != nil {
		return nil, fmt.Errorf("shape: %w", err)
	}
	for _, s := range sizes {
		if s < 0 {
			return nil, fmt.Errorf("shape: negative size %d", s)
		}
	}
	return sizes, nil
}

// MemoryOrder returns the [tensor.Order] named by Order.
func (cf *Config) MemoryOrder() (tensor.Order, error) {
	switch strings.ToLower(cf.Order) {
	case "", "row", "c":
		return tensor.RowMajor, nil
	case "col", "column", "f":
		return tensor.ColMajor, nil
	}
	return tensor.RowMajor, fmt.Errorf("unknown order %q (must be row or col)", cf.Order)
}

// Selector returns the diagonal selector given by Offsets.
func (cf *Config) Selector() (diag.Selector, error) {
	if len(cf.Offsets) == 0 {
		return diag.Main, nil
	}
	offs, err := toInts(cf.Offsets)
	if err != nil {
		return nil, fmt.Errorf("offsets: %w", err)
	}
	return diag.New(offs...)
}

// NewTensor returns a new float64 tensor with the configured shape,
// order and origin, filled with 1..N in flat order. If Transpose is
// set, a transposed view of it is returned.
func (cf *Config) NewTensor() (tensor.Tensor, error) {
	sizes, err := cf.Sizes()
	if err != nil {
		return nil, err
	}
	order, err := cf.MemoryOrder()
	if err != nil {
		return nil, err
	}
	origin, err := safecast.Conv[int](cf.Origin)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	tsr := tensor.NewFloat64(sizes...)
	tsr.SetOrder(order)
	tsr.SetOrigin(origin)
	tensor.SetSequence(tsr, 1, 1)
	if cf.Transpose {
		return tensor.Transpose(tsr), nil
	}
	return tsr, nil
}
