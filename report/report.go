// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report presents ranked benchmark summaries as one table
// per test mode.
package report

import (
	"fmt"

	"github.com/msgperf/msgperf/benchagg"
	"github.com/msgperf/msgperf/benchunit"
)

// A Titler names the report section of a test mode. ok is false if
// title is a fallback rather than a configured title.
type Titler interface {
	Title(mode string) (title string, ok bool)
}

// A Report is a set of Sections, one per test mode.
type Report struct {
	Sections []*Section

	// Warnings are problems that don't prevent reporting but
	// should be shown to the user.
	Warnings []string
}

// A Section is the ranked table of one test mode.
type Section struct {
	Mode  string
	Title string
	Kind  benchagg.Kind

	// Columns are the column headings of Rows.
	Columns []string

	// Rows are the formatted cells of each Summary, in rank
	// order.
	Rows [][]string

	// Summaries are the Summaries the Rows were formatted from.
	Summaries []*benchagg.Summary
}

// Build formats rankings into a Report. Sections are titled by
// titles; a mode without a configured title still gets a section,
// and a warning.
func Build(rankings []*benchagg.Ranking, titles Titler) *Report {
	r := new(Report)
	for _, rk := range rankings {
		title, ok := titles.Title(rk.Mode)
		if !ok {
			r.Warnings = append(r.Warnings, fmt.Sprintf("no title for test mode %q; using %q", rk.Mode, title))
		}
		r.Sections = append(r.Sections, newSection(rk, title))
	}
	return r
}

func newSection(rk *benchagg.Ranking, title string) *Section {
	s := &Section{
		Mode:      rk.Mode,
		Title:     title,
		Kind:      rk.Kind,
		Summaries: rk.Summaries,
	}

	// Round-trip latency is shown whenever a version recorded
	// one, whatever the section ranks by.
	lat := false
	for _, sum := range rk.Summaries {
		lat = lat || sum.HasLatency
	}
	s.Columns = []string{"version", "min", "max", "samples"}
	if lat {
		s.Columns = append(s.Columns, "lat")
	}
	if rk.Kind == benchagg.Latency {
		s.Columns = append(s.Columns, "mean")
	} else {
		s.Columns = append(s.Columns, "rate")
	}
	for _, sum := range rk.Summaries {
		row := []string{
			sum.Version,
			benchunit.Int(sum.Min),
			benchunit.Int(sum.Max),
			benchunit.Int(sum.SampleSize),
		}
		if lat {
			l := ""
			if sum.HasLatency {
				l = benchunit.Millis(sum.Latency)
			}
			row = append(row, l)
		}
		if rk.Kind == benchagg.Latency {
			row = append(row, benchunit.Millis(sum.MeanMillis))
		} else {
			row = append(row, benchunit.Rate(sum.ComputeRate()))
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}
