// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"errors"
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	check := func(input string, want ...string) {
		t.Helper()
		r := NewReader(strings.NewReader(input), "test.csv")
		var got []string
		for r.Scan() {
			s := r.Sample()
			got = append(got, s.Mode+"/"+s.Version)
			if s.File != "test.csv" {
				t.Errorf("sample file = %q, want test.csv", s.File)
			}
		}
		if err := r.Err(); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if strings.Join(got, " ") != strings.Join(want, " ") {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	check("")
	check("metric,count,millis,date,version\n")
	check("metric,count,millis,date,version\npub,1,1,2021-01-01,v1\n", "pub/v1")
	// The first line is a header even if it looks like data.
	check("pub,1,1,2021-01-01,v0\npub,1,1,2021-01-01,v1", "pub/v1")
	// Blank lines are skipped.
	check("h\n\npub,1,1,x,v1\n\r\n  \nsub,1,1,x,v2\n\n", "pub/v1", "sub/v2")
	// CRLF line endings.
	check("h\r\npub,1,1,x,v1\r\nsub,1,1,x,v2\r\n", "pub/v1", "sub/v2")
}

func TestReaderLines(t *testing.T) {
	r := NewReader(strings.NewReader("h\n\npub,1,1,x,v1\n"), "")
	if !r.Scan() {
		t.Fatalf("no sample read")
	}
	if s := r.Sample(); s.File != "<unknown>" || s.Line != 3 {
		t.Errorf("sample at %s:%d, want <unknown>:3", s.File, s.Line)
	}
	if r.Scan() {
		t.Errorf("unexpected second sample")
	}
	if r.Sample() != nil {
		t.Errorf("Sample after EOF is non-nil")
	}
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestReaderError(t *testing.T) {
	boom := errors.New("boom")
	r := NewReader(errReader{boom}, "bad.csv")
	if r.Scan() {
		t.Fatalf("Scan succeeded on failing reader")
	}
	if err := r.Err(); !errors.Is(err, boom) {
		t.Fatalf("Err() = %v, want %v", err, boom)
	}
	if got, want := r.Err().Error(), "bad.csv:1: boom"; got != want {
		t.Errorf("Err() = %q, want %q", got, want)
	}
	if r.Scan() {
		t.Errorf("Scan succeeded after error")
	}
}
