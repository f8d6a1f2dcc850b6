// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"sort"

	"github.com/msgperf/msgperf/benchmath"
)

// A LessFunc orders two Summaries.
type LessFunc func(a, b *Summary) bool

// ByRate orders Summaries from highest to lowest message rate. The
// rate is recomputed from the totals rather than taken from
// Summary.Rate. An infinite rate sorts first and an invalid rate
// sorts last.
func ByRate(a, b *Summary) bool {
	return before(a.ComputeRate(), b.ComputeRate(), true)
}

// ByMeanMillis orders Summaries from shortest to longest mean run
// duration. An invalid mean sorts last.
func ByMeanMillis(a, b *Summary) bool {
	return before(a.MeanMillis, b.MeanMillis, false)
}

// before reports whether x ranks strictly before y.
func before(x, y benchmath.Value, desc bool) bool {
	if !x.Valid() || !y.Valid() {
		return x.Valid() && !y.Valid()
	}
	if desc {
		return x.Float() > y.Float()
	}
	return x.Float() < y.Float()
}

// LessFor returns the ranking order for kind.
func LessFor(kind Kind) LessFunc {
	if kind == Latency {
		return ByMeanMillis
	}
	return ByRate
}

// Sort sorts sums in place by less. The sort is stable, so Summaries
// that tie keep their relative order.
func Sort(sums []*Summary, less LessFunc) {
	sort.SliceStable(sums, func(i, j int) bool { return less(sums[i], sums[j]) })
}

// A Ranking is the ranked Summaries of one test mode.
type Ranking struct {
	Mode      string
	Kind      Kind
	Summaries []*Summary
}

// Kinds maps test modes to their Kind. Modes not in the map are
// Throughput modes.
type Kinds map[string]Kind

// Of returns the Kind of mode.
func (k Kinds) Of(mode string) Kind {
	if kind, ok := k[mode]; ok {
		return kind
	}
	return Throughput
}

// Rank summarizes every Group in st and ranks the Summaries within
// each test mode. Rankings are returned in st's mode order. Ties
// keep st's version order.
func Rank(st *Store, kinds Kinds) []*Ranking {
	var out []*Ranking
	for _, mode := range st.Modes() {
		r := &Ranking{Mode: mode, Kind: kinds.Of(mode)}
		for _, g := range st.ModeGroups(mode) {
			r.Summaries = append(r.Summaries, Summarize(g, r.Kind))
		}
		Sort(r.Summaries, LessFor(r.Kind))
		out = append(out, r)
	}
	return out
}
