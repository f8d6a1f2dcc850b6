// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A Reader reads Samples from one result file.
//
// Its API is modeled on bufio.Scanner. Unlike bufio.Scanner, each
// Sample returned by a Reader is newly allocated and may be retained
// by the caller.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     int
	sample   *Sample
	err      error
}

// maxLine is the longest line a Reader accepts.
const maxLine = 1 << 20

// NewReader returns a Reader that reads Samples from r. fileName is
// recorded in each Sample and used in error messages; it is purely
// diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLine)
	return &Reader{s: s, fileName: fileName}
}

// Scan advances the reader to the next Sample and reports whether
// one was read. The first line of the input is a header and is
// skipped, as are blank lines. If Scan reaches EOF or an I/O error
// occurs, it returns false, in which case the caller should use the
// Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		if r.line == 1 {
			// Header.
			continue
		}
		text := r.s.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		r.sample = ParseLine(text)
		r.sample.File, r.sample.Line = r.fileName, r.line
		return true
	}
	r.sample = nil
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line+1, err)
	}
	return false
}

// Sample returns the Sample read by the last call to Scan.
func (r *Reader) Sample() *Sample {
	return r.sample
}

// Err returns the first non-EOF I/O error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}
