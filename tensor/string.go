// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"strconv"
)

// String is a tensor of string values
type String struct {
	Base[string]
}

// NewString returns a new n-dimensional tensor of string values
// with the given sizes per dimension (shape).
func NewString(sizes ...int) *String {
	tsr := &String{}
	tsr.SetShapeSizes(sizes...)
	return tsr
}

// NewStringShape returns a new n-dimensional tensor of string values
// using given shape.
func NewStringShape(shape *Shape) *String {
	tsr := &String{}
	tsr.shape.CopyFrom(shape)
	tsr.Values = make([]string, tsr.Len())
	return tsr
}

// StringToFloat64 converts string value to float64 using strconv,
// returning 0 if any error
func StringToFloat64(str string) float64 {
	if fv, err := strconv.ParseFloat(str, 64); err == nil {
		return fv
	}
	return 0
}

// Float64ToString converts float64 to string value using strconv, g format
func Float64ToString(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *String) String() string {
	return Sprintf(tsr, 0, "")
}

func (tsr *String) IsString() bool {
	return true
}

func (tsr *String) AsValues() Values { return tsr }

func (tsr *String) StringValue(i ...int) string    { return tsr.Value(i...) }
func (tsr *String) SetString(val string, i ...int) { tsr.Set(val, i...) }
func (tsr *String) String1D(i int) string          { return tsr.Value1D(i) }
func (tsr *String) SetString1D(val string, i int)  { tsr.Set1D(val, i) }
func (tsr *String) Float(i ...int) float64         { return StringToFloat64(tsr.Value(i...)) }
func (tsr *String) SetFloat(val float64, i ...int) { tsr.Set(Float64ToString(val), i...) }
func (tsr *String) Float1D(i int) float64          { return StringToFloat64(tsr.Value1D(i)) }
func (tsr *String) SetFloat1D(val float64, i int)  { tsr.Set1D(Float64ToString(val), i) }
func (tsr *String) Int(i ...int) int               { return int(StringToFloat64(tsr.Value(i...))) }
func (tsr *String) SetInt(val int, i ...int)       { tsr.Set(strconv.Itoa(val), i...) }
func (tsr *String) Int1D(i int) int                { return int(StringToFloat64(tsr.Value1D(i))) }
func (tsr *String) SetInt1D(val int, i int)        { tsr.Set1D(strconv.Itoa(val), i) }

// SetZeros is a simple convenience function initialize all values to the
// zero value of the type (empty strings for string type).
func (tsr *String) SetZeros() {
	clear(tsr.Values)
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *String) Clone() Values {
	csr := NewStringShape(&tsr.shape)
	copy(csr.Values, tsr.Values)
	return csr
}

// CopyFrom copies all values from other tensor into this tensor, with an
// optimized implementation if the other tensor is of the same type, and
// otherwise it goes through the String1D interface.
func (tsr *String) CopyFrom(frm Tensor) {
	if fsm, ok := frm.(*String); ok {
		copy(tsr.Values, fsm.Values)
		return
	}
	sz := min(tsr.Len(), frm.Len())
	fo := frm.Shape().Origin
	for i := range sz {
		tsr.Values[i] = frm.String1D(fo + i)
	}
}
