// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value
	Space

	// Detect is used during reading a file: reads the first line and detects tabs or commas
	Detect
)

// ParseDelims returns the delimiter with the given name
// (tab, comma, space or detect).
func ParseDelims(s string) (Delims, error) {
	switch strings.ToLower(s) {
	case "tab", "tsv":
		return Tab, nil
	case "comma", "csv":
		return Comma, nil
	case "space", "ssv":
		return Space, nil
	case "detect":
		return Detect, nil
	}
	return Tab, fmt.Errorf("tensor: unknown delimiter %q", s)
}

func (dl Delims) String() string {
	switch dl {
	case Tab:
		return "Tab"
	case Comma:
		return "Comma"
	case Space:
		return "Space"
	case Detect:
		return "Detect"
	}
	return fmt.Sprintf("Delims(%d)", int32(dl))
}

// Rune returns the delimiter rune.
func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// SaveCSV writes a tensor to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// See [WriteCSV] for the layout.
func SaveCSV(tsr Tensor, filename string, delim Delims) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := WriteCSV(tsr, bw, delim); err != nil {
		return err
	}
	return bw.Flush()
}

// OpenCSV reads a tensor from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// See [ReadCSV].
func OpenCSV(tsr Tensor, filename string, delim Delims) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return ReadCSV(tsr, bufio.NewReader(fp), delim)
}

// nextIndex advances the n-dimensional index ix over the given
// leading dims of the shape, last dim fastest. It returns false
// after the last index.
func nextIndex(sh *Shape, ix []int, dims int) bool {
	for d := dims - 1; d >= 0; d-- {
		ix[d]++
		if ix[d] < sh.Start(d)+sh.DimSize(d) {
			return true
		}
		ix[d] = sh.Start(d)
	}
	return false
}

// WriteCSV writes a tensor to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// Values are written in logical index order regardless of the memory
// order: the inner-most dim is the columns of each row, and the
// outer dims are the rows. A scalar is written as one value.
func WriteCSV(tsr Tensor, w io.Writer, delim Delims) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	sh := tsr.Shape()
	nd := sh.NumDims()
	elem := func(ix []int) string {
		if tsr.IsString() {
			return tsr.StringValue(ix...)
		}
		return strconv.FormatFloat(tsr.Float(ix...), 'g', -1, 64)
	}
	if nd == 0 {
		if err := cw.Write([]string{elem(nil)}); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	}
	cols := sh.DimSize(nd - 1)
	rec := make([]string, cols)
	ix := make([]int, nd)
	for d := range nd {
		ix[d] = sh.Start(d)
	}
	if tsr.Len() == 0 && nd > 1 {
		cw.Flush()
		return cw.Error()
	}
	for {
		for c := range cols {
			ix[nd-1] = sh.Start(nd-1) + c
			rec[c] = elem(ix)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
		if !nextIndex(sh, ix, nd-1) {
			break
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a tensor from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming
// to the official CSV standard. If delim is [Detect], the first
// line determines whether tabs or commas are used.
// Values are assigned in logical index order, as many as fit.
func ReadCSV(tsr Tensor, r io.Reader, delim Delims) error {
	br := bufio.NewReader(r)
	if delim == Detect {
		delim = detectDelim(br)
	}
	cr := csv.NewReader(br)
	cr.Comma = delim.Rune()
	cr.FieldsPerRecord = -1
	rec, err := cr.ReadAll()
	if err != nil || len(rec) == 0 {
		return err
	}
	sh := tsr.Shape()
	nd := sh.NumDims()
	ix := make([]int, nd)
	for d := range nd {
		ix[d] = sh.Start(d)
	}
	n := tsr.Len()
	idx := 0
	for _, row := range rec {
		for _, str := range row {
			if idx >= n {
				return nil
			}
			tsr.SetString(str, ix...)
			idx++
			nextIndex(sh, ix, nd)
		}
	}
	return nil
}

func detectDelim(br *bufio.Reader) Delims {
	_, _ = br.Peek(1) // fills the buffer
	line, _ := br.Peek(br.Buffered())
	first, _, _ := strings.Cut(string(line), "\n")
	if strings.Contains(first, "\t") {
		return Tab
	}
	if strings.Contains(first, ",") {
		return Comma
	}
	return Space
}
