// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"reflect"

	"cogentcore.org/tensordiag/tensor/diag"
)

// DataTypes are the primary tensor data types with specific support.
type DataTypes interface {
	string | float32 | float64 | int | int32 | byte
}

// Tensor is the interface for n-dimensional tensors.
// Indexes are ordered from outer to inner left-to-right, and each
// index starts at the Start of its dimension in the [Shape], which is
// the shape Origin unless set otherwise. The flat 1D index space
// starts at the shape Origin and follows the shape [Order].
// It is implemented by the [Values] types (Number and String),
// and by views such as [Sliced], [Transposed] and [Reshaped].
type Tensor interface {
	fmt.Stringer

	// Label returns a summary description of the tensor.
	Label() string

	// Shape returns a pointer to the Shape that fully parametrizes
	// the tensor shape.
	Shape() *Shape

	// ShapeSizes returns the sizes of each dimension.
	ShapeSizes() []int

	// Len returns the number of elements in the tensor,
	// which is the product of all shape dimensions.
	Len() int

	// NumDims returns the total number of dimensions.
	NumDims() int

	// DimSize returns size of given dimension.
	DimSize(dim int) int

	// DataType returns the type of the data elements in the tensor.
	DataType() reflect.Kind

	// IsString returns true if the data type is a String; otherwise it is numeric.
	IsString() bool

	// Addressing returns the native index representation of the tensor:
	// [diag.Linear] when the flat 1D index maps directly onto contiguous
	// storage, and [diag.Cartesian] when elements are only reached
	// through n-dimensional indexes.
	Addressing() diag.Addressing

	// AsValues returns this tensor as raw [Values]. If it already is,
	// it is returned directly. If it is a View tensor, the view is
	// "rendered" into a fully contiguous and optimized [Values]
	// representation of that view, which will be faster to access for
	// further processing, and enables all the additional functionality
	// provided by the [Values] interface.
	AsValues() Values

	//////// Floats

	// Float returns the value of given n-dimensional index (matching Shape) as a float64.
	Float(i ...int) float64

	// SetFloat sets the value of given n-dimensional index (matching Shape) as a float64.
	SetFloat(val float64, i ...int)

	// Float1D returns the value of given 1-dimensional index as a float64.
	Float1D(i int) float64

	// SetFloat1D sets the value of given 1-dimensional index as a float64.
	SetFloat1D(val float64, i int)

	//////// Strings

	// StringValue returns the value of given n-dimensional index (matching Shape) as a string.
	// 'String' conflicts with [fmt.Stringer], so we have to use StringValue here.
	StringValue(i ...int) string

	// SetString sets the value of given n-dimensional index (matching Shape) as a string.
	SetString(val string, i ...int)

	// String1D returns the value of given 1-dimensional index as a string.
	String1D(i int) string

	// SetString1D sets the value of given 1-dimensional index as a string.
	SetString1D(val string, i int)

	//////// Ints

	// Int returns the value of given n-dimensional index (matching Shape) as a int.
	Int(i ...int) int

	// SetInt sets the value of given n-dimensional index (matching Shape) as a int.
	SetInt(val int, i ...int)

	// Int1D returns the value of given 1-dimensional index as a int.
	Int1D(i int) int

	// SetInt1D sets the value of given 1-dimensional index as a int.
	SetInt1D(val int, i int)
}

// New returns a new n-dimensional tensor of given value type
// with the given sizes per dimension (shape).
func New[T DataTypes](sizes ...int) Values {
	var v T
	switch any(v).(type) {
	case string:
		return NewString(sizes...)
	case float64:
		return NewNumber[float64](sizes...)
	case float32:
		return NewNumber[float32](sizes...)
	case int:
		return NewNumber[int](sizes...)
	case int32:
		return NewNumber[int32](sizes...)
	case byte:
		return NewNumber[byte](sizes...)
	default:
		panic("tensor.New: unexpected error: type not supported")
	}
}

// NewOfType returns a new n-dimensional tensor of given reflect.Kind type
// with the given sizes per dimension (shape).
// Supported types are string, float32, float64, int, int32, and byte.
func NewOfType(typ reflect.Kind, sizes ...int) Values {
	switch typ {
	case reflect.String:
		return NewString(sizes...)
	case reflect.Float64:
		return NewNumber[float64](sizes...)
	case reflect.Float32:
		return NewNumber[float32](sizes...)
	case reflect.Int:
		return NewNumber[int](sizes...)
	case reflect.Int32:
		return NewNumber[int32](sizes...)
	case reflect.Uint8:
		return NewNumber[byte](sizes...)
	default:
		panic(fmt.Sprintf("tensor.NewOfType: type not supported: %v", typ))
	}
}

// IsFloat returns true if the given reflect.Kind is a floating point type.
func IsFloat(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}

// Addressing returns the native index representation of given tensor.
func Addressing(tsr Tensor) diag.Addressing {
	return tsr.Addressing()
}
