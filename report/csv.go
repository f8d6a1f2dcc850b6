// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/msgperf/msgperf/benchmath"
	"github.com/msgperf/msgperf/benchunit"
)

var csvHeader = []string{
	"mode", "title", "kind", "rank", "version",
	"count", "millis", "min", "max", "samples", "n",
	"latency", "rate", "mean",
}

// CSV writes r as a single CSV table with one row per Summary. Values
// are written unscaled and ungrouped. A missing latency is an empty
// field.
func (r *Report) CSV(w io.Writer) error {
	o := csv.NewWriter(w)
	o.Write(csvHeader)
	for _, s := range r.Sections {
		for i, sum := range s.Summaries {
			lat := ""
			if sum.HasLatency {
				lat = raw(sum.Latency)
			}
			o.Write([]string{
				s.Mode, s.Title, s.Kind.String(), strconv.Itoa(i + 1), sum.Version,
				raw(sum.Count), raw(sum.Millis), raw(sum.Min), raw(sum.Max),
				raw(sum.SampleSize), strconv.Itoa(sum.N),
				lat, raw(sum.ComputeRate()), raw(sum.MeanMillis),
			})
		}
	}
	o.Flush()
	return o.Error()
}

func raw(v benchmath.Value) string {
	return benchunit.Raw(v)
}
