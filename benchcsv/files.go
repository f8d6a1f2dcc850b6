// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// DefaultPattern matches result files during discovery.
const DefaultPattern = "*.csv"

// Discover returns the absolute paths of the regular files in dir
// whose names match pattern, in name order. Symbolic links are
// followed. An empty pattern means DefaultPattern.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("bad file pattern %q: %w", pattern, err)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, ent := range ents {
		if ok, _ := filepath.Match(pattern, ent.Name()); !ok {
			continue
		}
		path, err := filepath.Abs(filepath.Join(dir, ent.Name()))
		if err != nil {
			return nil, err
		}
		if !ent.Type().IsRegular() {
			if ent.Type()&fs.ModeSymlink == 0 {
				continue
			}
			fi, err := os.Stat(path)
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Fixed returns the absolute paths of the named files in dir. The
// files need not exist.
func Fixed(dir string, names []string) ([]string, error) {
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// A Sink receives Samples from a Loader. Add is only called from
// the goroutine that called Load.
type Sink interface {
	Add(s *Sample)
}

// A Loader reads a set of result files concurrently.
type Loader struct {
	// Progress, if non-nil, receives the path of each file that
	// will be read, one per line, in input order.
	Progress io.Writer

	// Limit bounds the number of files read at once. Zero means
	// no limit.
	Limit int
}

// Stats counts what a Load did.
type Stats struct {
	Processed int // files read
	Skipped   int // files that did not exist
	Samples   int // Samples delivered to the Sink
}

// Load reads every file in paths and delivers their Samples to sink.
//
// A file that does not exist is skipped. Any other error opening or
// reading a file stops the whole load: outstanding reads are
// canceled, nothing is delivered to sink, and the error is returned.
//
// Files are read concurrently, but the Samples of each file are
// delivered in order, file by file in the order of paths, once every
// file has been read. The result is therefore deterministic for a
// given input.
func (l *Loader) Load(ctx context.Context, paths []string, sink Sink) (Stats, error) {
	var st Stats

	type job struct {
		path    string
		samples []*Sample
		missing bool
	}
	jobs := make([]*job, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			st.Skipped++
			continue
		}
		if l.Progress != nil {
			fmt.Fprintln(l.Progress, path)
		}
		jobs = append(jobs, &job{path: path})
	}

	g, ctx := errgroup.WithContext(ctx)
	if l.Limit > 0 {
		g.SetLimit(l.Limit)
	}
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			samples, err := readFile(ctx, j.path)
			if errors.Is(err, fs.ErrNotExist) {
				// Removed since we checked.
				j.missing = true
				return nil
			}
			j.samples = samples
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return st, err
	}

	for _, j := range jobs {
		if j.missing {
			st.Skipped++
			continue
		}
		st.Processed++
		for _, s := range j.samples {
			sink.Add(s)
		}
		st.Samples += len(j.samples)
	}
	return st, nil
}

// readFile reads all Samples from the file at path.
func readFile(ctx context.Context, path string) ([]*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var samples []*Sample
	r := NewReader(f, path)
	for r.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		samples = append(samples, r.Sample())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}
