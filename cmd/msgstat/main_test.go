// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestText(t *testing.T) {
	golden(t, "text", "data")
}

func TestCSV(t *testing.T) {
	golden(t, "csv", "-format", "csv", "data")
}

func TestRawTitles(t *testing.T) {
	golden(t, "rawTitles", "-raw-titles", "data")
}

func TestProfile(t *testing.T) {
	// The profile reads a fixed set of files, one of which is
	// missing.
	golden(t, "profile", "-config", "profile.yaml", "data")
}

func TestFiles(t *testing.T) {
	golden(t, "files", "-files", "sub.csv,pub.csv", "data")
}

func TestJobs(t *testing.T) {
	// Output does not depend on how many files are read at once.
	golden(t, "text", "-j", "1", "data")
}

func TestErrors(t *testing.T) {
	check := func(wantErr string, args ...string) {
		t.Helper()
		var out, outErr bytes.Buffer
		err := msgstat(&out, &outErr, args)
		if err == nil {
			t.Errorf("msgstat %s: want error %q", strings.Join(args, " "), wantErr)
		} else if !strings.Contains(err.Error(), wantErr) {
			t.Errorf("msgstat %s: got error %q, want %q", strings.Join(args, " "), err, wantErr)
		}
	}

	check(`unknown format "xml"`, "-format", "xml", "testdata/data")
	check("flag: help requested", "a", "b")
	check("missing.yaml", "-config", "testdata/missing.yaml", "testdata/data")
	check("no such file or directory", "testdata/nope")
	check("flag: help requested", "-j", "-1", "testdata/data")
	check("relative file name", "-files", "pub.csv,", "testdata/data")
}

func TestReadError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions do not apply to root")
	}
	// A file that cannot be read aborts the run with no report.
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pub.csv"), []byte("h\npub,1,1,x,v1\n"), 0666); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "sub.csv")
	if err := os.WriteFile(sub, []byte("h\nsub,1,1,x,v1\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(sub, 0); err != nil {
		t.Fatal(err)
	}
	var out, outErr bytes.Buffer
	if err := msgstat(&out, &outErr, []string{dir}); err == nil {
		t.Errorf("want error reading %s", sub)
	}
	if strings.Contains(out.String(), "METRICS") {
		t.Errorf("got a report after a read error:\n%s", out.String())
	}
}

func TestDirectoryNamedAsResult(t *testing.T) {
	// Only regular files are discovered.
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pub.csv"), []byte("h\npub,1000,500,x,v1\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "archive.csv"), 0777); err != nil {
		t.Fatal(err)
	}
	var out, outErr bytes.Buffer
	if err := msgstat(&out, &outErr, []string{dir}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(out.String(), "PUBLISHER METRICS") {
		t.Errorf("missing publisher section:\n%s", out.String())
	}
	if strings.Contains(out.String(), "archive.csv") {
		t.Errorf("directory was read as a result file:\n%s", out.String())
	}
}

func TestCharts(t *testing.T) {
	dir := t.TempDir()
	var out, outErr bytes.Buffer
	if err := msgstat(&out, &outErr, []string{"-png", dir, "testdata/data"}); err != nil {
		t.Fatal(err)
	}
	for _, mode := range []string{"fanout", "pub", "reconnect", "rr", "sub"} {
		if _, err := os.Stat(filepath.Join(dir, mode+".png")); err != nil {
			t.Errorf("missing chart: %s", err)
		}
	}
}

func golden(t *testing.T, name string, args ...string) {
	t.Helper()
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	data, err := filepath.Abs("data")
	if err != nil {
		t.Fatal(err)
	}

	// Get the msgstat output.
	var got, gotErr bytes.Buffer
	t.Logf("msgstat %s", strings.Join(args, " "))
	if err := msgstat(&got, &gotErr, args); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// File paths are absolute, so make them relative to the
	// data directory.
	fix := func(b []byte) []byte {
		return bytes.ReplaceAll(b, []byte(data), []byte("$DATA"))
	}

	// Compare to the golden output.
	compare(t, name, "stdout", fix(got.Bytes()))
	compare(t, name, "stderr", fix(gotErr.Bytes()))
}

func compare(t *testing.T, name, sub string, got []byte) {
	t.Helper()
	// A missing golden file means empty output.
	want, err := os.ReadFile(name + "." + sub)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	lines := func(b []byte) []string { return strings.SplitAfter(string(b), "\n") }
	if diff := cmp.Diff(lines(want), lines(got)); diff != "" {
		t.Errorf("%s.%s mismatch (-want +got):\n%s", name, sub, diff)
	}
}
