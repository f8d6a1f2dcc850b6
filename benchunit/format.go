// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats benchmark measurements for display.
//
// Numbers are grouped by thousands using English conventions, so a
// rate of 1234567.8 messages per second formats as
// "1,234,567 msgs/sec". Infinite values format as "Infinity" and
// invalid values as "NaN", so that special values are visible in
// reports rather than hidden.
package benchunit

import (
	"math"
	"strconv"
	"strings"

	"github.com/msgperf/msgperf/benchmath"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RateUnit is the unit suffix of a message rate.
const RateUnit = "msgs/sec"

// MillisUnit is the unit suffix of a duration in milliseconds.
const MillisUnit = "ms"

var printer = message.NewPrinter(language.English)

// special formats the non-finite values of v. ok is false if v is
// an ordinary finite number.
func special(v benchmath.Value) (s string, ok bool) {
	switch {
	case !v.Valid():
		return "NaN", true
	case v.IsInf(1):
		return "Infinity", true
	case v.IsInf(-1):
		return "-Infinity", true
	}
	return "", false
}

// Int formats v rounded down to an integer, with thousands grouped.
func Int(v benchmath.Value) string {
	if s, ok := special(v); ok {
		return s
	}
	x := math.Floor(v.Float())
	if math.Abs(x) < 1<<62 {
		return printer.Sprintf("%d", int64(x))
	}
	return printer.Sprintf("%.0f", x)
}

// Float formats v with at most prec digits after the decimal point,
// dropping trailing zeros, with thousands grouped.
func Float(v benchmath.Value, prec int) string {
	if s, ok := special(v); ok {
		return s
	}
	s := printer.Sprintf("%."+strconv.Itoa(prec)+"f", v.Float())
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Rate formats a message rate as a whole number of messages per
// second, for example "4,000 msgs/sec".
func Rate(v benchmath.Value) string {
	return Int(v) + " " + RateUnit
}

// Millis formats a duration in milliseconds, for example "1.25 ms".
func Millis(v benchmath.Value) string {
	return Float(v, 3) + " " + MillisUnit
}

// Raw formats v exactly and without grouping, for consumption by
// other programs.
func Raw(v benchmath.Value) string {
	if s, ok := special(v); ok {
		return s
	}
	return strconv.FormatFloat(v.Float(), 'f', -1, 64)
}
