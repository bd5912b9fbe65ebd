// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides generic type constraints for numbers,
// used by the numerical tensor types.
package num

import "golang.org/x/exp/constraints"

// Number is a constraint for all real number types.
type Number interface {
	constraints.Integer | constraints.Float
}

// FromBool returns 1 for true and 0 for false in the given number type.
func FromBool[T Number](v bool) T {
	if v {
		return 1
	}
	return 0
}

// ToBool returns true if the given number is non-zero.
func ToBool[T Number](v T) bool {
	return v != 0
}
