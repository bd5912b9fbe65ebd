// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"strings"
)

// DefaultMaxLen is the default maximum number of values printed by [Sprintf].
var DefaultMaxLen = 1000

// Sprintf returns a string representation of the given tensor,
// with a maximum length of as given: output is terminated
// when it exceeds that length. If maxLen = 0, [DefaultMaxLen] is used.
// The format is the per-element format string, which defaults to
// %g for numbers and %s for strings.
// Values are printed in logical index order, one line per
// innermost dimension, each prefixed by its outer indexes.
func Sprintf(tsr Tensor, maxLen int, format string) string {
	if maxLen == 0 {
		maxLen = DefaultMaxLen
	}
	if format == "" {
		if tsr.IsString() {
			format = "%s"
		} else {
			format = "%g"
		}
	}
	elem := func(ix []int) string {
		if tsr.IsString() {
			return fmt.Sprintf(format, tsr.StringValue(ix...))
		}
		return fmt.Sprintf(format, tsr.Float(ix...))
	}
	var b strings.Builder
	b.WriteString(tsr.Label())
	nd := tsr.NumDims()
	if nd == 0 {
		b.WriteString(" " + elem(nil) + "\n")
		return b.String()
	}
	sh := tsr.Shape()
	n := tsr.Len()
	if n == 0 {
		b.WriteString(" []\n")
		return b.String()
	}
	cols := sh.DimSize(nd - 1)
	ix := make([]int, nd)
	for d := range nd {
		ix[d] = sh.Start(d)
	}
	ctr := 0
	for i := 0; i < n; i += cols {
		if nd > 1 {
			b.WriteString(fmt.Sprintf("\n%v:\t", ix[:nd-1]))
		} else {
			b.WriteString(" ")
		}
		for c := range cols {
			ix[nd-1] = sh.Start(nd-1) + c
			if c > 0 {
				b.WriteString("\t")
			}
			b.WriteString(elem(ix))
		}
		ctr += cols
		if ctr >= maxLen && i+cols < n {
			b.WriteString("\n...")
			break
		}
		for d := nd - 2; d >= 0; d-- {
			ix[d]++
			if ix[d] < sh.Start(d)+sh.DimSize(d) {
				break
			}
			ix[d] = sh.Start(d)
		}
	}
	b.WriteString("\n")
	return b.String()
}
