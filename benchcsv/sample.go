// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads messaging benchmark results stored as
// comma-separated records.
//
// Each result file starts with a header line, which is ignored.
// Every other non-blank line has the form
//
//	mode,count,millis,date,version[,latency]
//
// where mode is the test mode (such as "pub" or "rr"), count is the
// number of messages in the run, millis is the run's wall-clock
// duration in milliseconds, date is when the run happened, and
// version identifies the software build under test. Request-reply
// lines may carry a sixth field, the round-trip latency in
// milliseconds.
//
// Parsing never fails. Malformed numeric fields become invalid
// benchmath.Values and a malformed date becomes the zero time.
package benchcsv

import (
	"strings"
	"time"

	"github.com/msgperf/msgperf/benchmath"
)

// Test modes written by the benchmark drivers. Other mode strings are
// accepted as opaque categories.
const (
	Pub       = "pub"
	Sub       = "sub"
	PubSub    = "pubsub"
	ReqRep    = "reqrep"
	RR        = "rr"
	Reconnect = "reconnect"
)

// IsRequestReply reports whether mode is a request-reply mode, whose
// records may carry a round-trip latency.
func IsRequestReply(mode string) bool {
	return mode == RR || mode == ReqRep
}

// A Sample is one benchmark measurement.
type Sample struct {
	Mode    string
	Count   benchmath.Value // messages in the run
	Millis  benchmath.Value // wall-clock duration of the run
	Version string

	// Time is when the run happened. It is the zero Time if the
	// date field could not be parsed; RawTime holds the field
	// as written.
	Time    time.Time
	RawTime string

	// Latency is the round-trip latency in milliseconds. It is
	// only set for request-reply samples with a latency field,
	// in which case HasLatency is true. A malformed latency field
	// sets HasLatency with an invalid Latency.
	Latency    benchmath.Value
	HasLatency bool

	// File and Line locate the record. They are purely
	// diagnostic.
	File string
	Line int
}

// ParseLine parses one record line into a Sample. Fields missing
// from a short line parse as if they were empty.
func ParseLine(line string) *Sample {
	f := strings.Split(strings.TrimSuffix(line, "\r"), ",")
	field := func(i int) string {
		if i < len(f) {
			return f[i]
		}
		return ""
	}

	s := &Sample{
		Mode:    field(0),
		Count:   benchmath.ParseInt(field(1)),
		Millis:  benchmath.ParseInt(field(2)),
		Time:    ParseTime(field(3)),
		RawTime: field(3),
		Version: field(4),
	}
	if IsRequestReply(s.Mode) && len(f) == 6 {
		s.Latency = benchmath.ParseFloat(f[5])
		s.HasLatency = true
	}
	return s
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	time.RFC1123Z,
	time.RFC1123,
	time.UnixDate,
	time.ANSIC,
	// Date.prototype.toString, with and without the zone name.
	"Mon Jan 02 2006 15:04:05 GMT-0700 (MST)",
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Mon Jan 02 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseTime parses a date field in any of the common layouts. Dates
// without a zone are taken to be UTC. If s matches no layout,
// ParseTime returns the zero Time.
func ParseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
