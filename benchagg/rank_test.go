// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"strings"
	"testing"
)

func versions(sums []*Summary) string {
	var vs []string
	for _, s := range sums {
		vs = append(vs, s.Version)
	}
	return strings.Join(vs, " ")
}

func TestRankScenario(t *testing.T) {
	st := storeOf(
		"pub,1000,500,2021-01-01,v1",
		"pub,2000,500,2021-01-01,v2",
	)
	rs := Rank(st, nil)
	if len(rs) != 1 || rs[0].Mode != "pub" {
		t.Fatalf("got %d rankings, want one for pub", len(rs))
	}
	sums := rs[0].Summaries
	if got, want := versions(sums), "v2 v1"; got != want {
		t.Errorf("order = %s, want %s", got, want)
	}
	if sums[0].Rate.Float() != 4000 || sums[1].Rate.Float() != 2000 {
		t.Errorf("rates = %v, %v, want 4000, 2000", sums[0].Rate, sums[1].Rate)
	}
}

func TestRankOrder(t *testing.T) {
	check := func(kind Kind, want string, lines ...string) {
		t.Helper()
		rs := Rank(storeOf(lines...), Kinds{"m": kind})
		if len(rs) != 1 {
			t.Fatalf("got %d rankings, want 1", len(rs))
		}
		if got := versions(rs[0].Summaries); got != want {
			t.Errorf("order = %s, want %s", got, want)
		}
		// Strictly descending (or ascending) except for ties.
		less := LessFor(kind)
		sums := rs[0].Summaries
		for i := 1; i < len(sums); i++ {
			if less(sums[i], sums[i-1]) {
				t.Errorf("%s ranks after %s", sums[i].Version, sums[i-1].Version)
			}
		}
	}

	check(Throughput, "c b a",
		"m,10,10,x,a", "m,20,10,x,b", "m,30,10,x,c")
	// Ties keep first-seen order.
	check(Throughput, "b a c",
		"m,10,10,x,a", "m,20,10,x,b", "m,10,10,x,c")
	// Infinite rates rank first, invalid rates last.
	check(Throughput, "inf fast slow bad",
		"m,10,10,x,slow", "m,1,x,x,bad", "m,10,0,x,inf", "m,100,10,x,fast")
	// Latency modes rank the shortest runs first.
	check(Latency, "a c b",
		"m,1,10,x,a", "m,1,50,x,b", "m,1,20,x,c", "m,1,20,x,c")
}

func TestRankModes(t *testing.T) {
	st := storeOf(
		"sub,1,1,x,v1",
		"reconnect,1,5,x,v1",
		"pub,1,1,x,v1",
	)
	rs := Rank(st, Kinds{"reconnect": Latency})
	var got []string
	for _, r := range rs {
		got = append(got, r.Mode+":"+r.Kind.String())
	}
	if want := "sub:throughput reconnect:latency pub:throughput"; strings.Join(got, " ") != want {
		t.Errorf("rankings = %v, want %s", got, want)
	}
}

func TestRateRecomputed(t *testing.T) {
	// The rate used for ranking comes from the totals, not from a
	// stored rate that may have been rounded.
	a := Summarize(group("m,3,1,x,a"), Throughput)
	b := Summarize(group("m,2,1,x,b"), Throughput)
	a.Rate = b.Rate.Scale(0.5)
	if !ByRate(a, b) {
		t.Errorf("ByRate used the stored rate")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Throughput, Latency} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("speed"); err == nil {
		t.Errorf("ParseKind(speed): want error")
	}
	if got, want := Kind(7).String(), "Kind(7)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
