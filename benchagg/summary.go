// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"fmt"

	"github.com/msgperf/msgperf/benchmath"
)

// A Kind says what a test mode measures, and so which derived
// statistic is reported and ranked for it.
type Kind int

const (
	// Throughput modes report and rank by message rate,
	// highest first.
	Throughput Kind = iota
	// Latency modes report and rank by mean run duration,
	// lowest first. Reconnect tests are of this kind.
	Latency
)

func (k Kind) String() string {
	switch k {
	case Throughput:
		return "throughput"
	case Latency:
		return "latency"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses the String form of a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "throughput":
		return Throughput, nil
	case "latency":
		return Latency, nil
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// A Summary holds the statistics of one Group.
type Summary struct {
	Key
	Kind Kind

	Count  benchmath.Value // total messages
	Millis benchmath.Value // total duration
	Min    benchmath.Value // shortest run duration
	Max    benchmath.Value // longest run duration

	// SampleSize is the message count of the first Sample in the
	// Group, that is, the number of messages in a single run.
	// It is not the number of Samples; see N for that.
	SampleSize benchmath.Value

	// N is the number of Samples in the Group.
	N int

	// Latency is the mean round-trip latency in milliseconds. The
	// sum of the Samples' latencies is divided by N, not by the
	// number of Samples that carried a latency. HasLatency
	// reports whether any Sample carried a valid latency; if
	// not, Latency is Invalid.
	Latency    benchmath.Value
	HasLatency bool

	// Rate is Count*1000/Millis, in messages per second. If
	// Millis is 0, Rate is +Inf.
	Rate benchmath.Value

	// MeanMillis is the mean run duration. It is the statistic
	// reported for Latency modes.
	MeanMillis benchmath.Value
}

// Summarize reduces g into a Summary.
//
// Totals are invalid if any Sample's value is invalid. Duration
// extrema skip invalid durations, and are invalid only if no
// Sample has a valid duration.
func Summarize(g *Group, kind Kind) *Summary {
	s := &Summary{
		Key:    g.Key,
		Kind:   kind,
		Count:  benchmath.OfInt(0),
		Millis: benchmath.OfInt(0),
		N:      len(g.Samples),
	}
	var lats, millis []benchmath.Value
	for i, x := range g.Samples {
		if i == 0 {
			s.SampleSize = x.Count
		}
		s.Count = s.Count.Add(x.Count)
		s.Millis = s.Millis.Add(x.Millis)
		millis = append(millis, x.Millis)
		if x.HasLatency {
			lats = append(lats, x.Latency)
		}
	}

	// The longest run is never reported as shorter than 0ms.
	s.Min, s.Max = benchmath.Bounds(millis)
	if s.Max.Valid() {
		s.Max = benchmath.Max(benchmath.OfInt(0), s.Max)
	}

	if sum, n := benchmath.Sum(lats); n > 0 {
		s.Latency = benchmath.Quo(sum, benchmath.OfInt(int64(s.N)))
		s.HasLatency = true
	}
	s.Rate = s.ComputeRate()
	s.MeanMillis = benchmath.Mean(millis)
	return s
}

// ComputeRate computes the message rate of s from its totals,
// independently of Rate.
func (s *Summary) ComputeRate() benchmath.Value {
	return benchmath.Quo(s.Count.Scale(1000), s.Millis)
}
