// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath provides the numeric value type used for
// benchmark measurements, along with parsing and reduction helpers.
//
// Measurements read from result files may be malformed. Rather than
// failing a whole run over one bad field, a malformed field is
// represented as an invalid Value. Arithmetic on invalid Values
// yields invalid Values, and the reductions in this package skip
// them, so callers can always detect and render them distinctly.
package benchmath

import (
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
)

// A Value is a measurement that is either a valid number or invalid.
//
// The zero Value is invalid.
type Value struct {
	x     float64
	valid bool
}

// Invalid is the invalid Value.
var Invalid = Value{}

// Of returns a valid Value for x. NaN is not a number, so Of(NaN)
// returns Invalid. Infinities are valid.
func Of(x float64) Value {
	if math.IsNaN(x) {
		return Invalid
	}
	return Value{x, true}
}

// OfInt returns a valid Value for n.
func OfInt(n int64) Value {
	return Value{float64(n), true}
}

// Valid reports whether v holds a number.
func (v Value) Valid() bool { return v.valid }

// Float returns v as a float64, or NaN if v is invalid.
func (v Value) Float() float64 {
	if !v.valid {
		return math.NaN()
	}
	return v.x
}

// IsInf reports whether v is a valid infinity of the given sign.
// See math.IsInf for the meaning of sign.
func (v Value) IsInf(sign int) bool {
	return v.valid && math.IsInf(v.x, sign)
}

// Add returns v+w. The result is invalid if either operand is.
func (v Value) Add(w Value) Value {
	if !v.valid || !w.valid {
		return Invalid
	}
	return Of(v.x + w.x)
}

// Scale returns v*k.
func (v Value) Scale(k float64) Value {
	if !v.valid {
		return Invalid
	}
	return Of(v.x * k)
}

// Quo returns num/den.
//
// Dividing a non-zero number by zero yields a valid infinity, so a
// zero-duration run still has a representable rate. 0/0 and
// operations on invalid Values yield Invalid.
func Quo(num, den Value) Value {
	if !num.valid || !den.valid {
		return Invalid
	}
	return Of(num.x / den.x)
}

// Max returns the larger of v and w, ignoring invalid operands.
func Max(v, w Value) Value {
	switch {
	case !v.valid:
		return w
	case !w.valid:
		return v
	case w.x > v.x:
		return w
	}
	return v
}

// String formats v in the shortest form that represents it exactly.
// Invalid values format as "NaN".
func (v Value) String() string {
	if !v.valid {
		return "NaN"
	}
	return strconv.FormatFloat(v.x, 'g', -1, 64)
}

// valid returns the valid members of vs as float64s.
func valid(vs []Value) []float64 {
	xs := make([]float64, 0, len(vs))
	for _, v := range vs {
		if v.valid {
			xs = append(xs, v.x)
		}
	}
	return xs
}

// Bounds returns the minimum and maximum valid values in vs. If vs
// has no valid values, both results are Invalid.
func Bounds(vs []Value) (lo, hi Value) {
	xs := valid(vs)
	if len(xs) == 0 {
		return Invalid, Invalid
	}
	min, max := stats.Bounds(xs)
	return Of(min), Of(max)
}

// Mean returns the mean of the valid values in vs, or Invalid if
// there are none.
func Mean(vs []Value) Value {
	xs := valid(vs)
	if len(xs) == 0 {
		return Invalid
	}
	return Of(stats.Mean(xs))
}

// Sum returns the sum of the valid values in vs and how many there
// were.
func Sum(vs []Value) (Value, int) {
	var sum float64
	n := 0
	for _, v := range vs {
		if v.valid {
			sum += v.x
			n++
		}
	}
	return Of(sum), n
}

// ParseInt parses the leading base-10 integer of s, after skipping
// leading white space. Trailing garbage is ignored, so "1000ms"
// parses as 1000. If s has no leading integer, ParseInt returns
// Invalid.
func ParseInt(s string) Value {
	s = strings.TrimSpace(s)
	n := 0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}
	digits := n
	for n < len(s) && '0' <= s[n] && s[n] <= '9' {
		n++
	}
	if n == digits {
		return Invalid
	}
	i, err := strconv.ParseInt(s[:n], 10, 64)
	if err != nil {
		// Out of range. Fall back to a float approximation.
		f, err := strconv.ParseFloat(s[:n], 64)
		if err != nil {
			return Invalid
		}
		return Of(f)
	}
	return OfInt(i)
}

// ParseFloat parses the leading decimal floating-point number of s,
// after skipping leading white space. Like ParseInt, trailing
// garbage is ignored. "Infinity" with an optional sign is accepted.
func ParseFloat(s string) Value {
	s = strings.TrimSpace(s)
	n := 0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}
	if strings.HasPrefix(s[n:], "Infinity") {
		if s[0] == '-' {
			return Of(math.Inf(-1))
		}
		return Of(math.Inf(1))
	}
	mant := 0
	for n < len(s) && '0' <= s[n] && s[n] <= '9' {
		n++
		mant++
	}
	if n < len(s) && s[n] == '.' {
		n++
		for n < len(s) && '0' <= s[n] && s[n] <= '9' {
			n++
			mant++
		}
	}
	if mant == 0 {
		return Invalid
	}
	// Only consume an exponent if it has digits.
	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		e := n + 1
		if e < len(s) && (s[e] == '+' || s[e] == '-') {
			e++
		}
		d := e
		for e < len(s) && '0' <= s[e] && s[e] <= '9' {
			e++
		}
		if e > d {
			n = e
		}
	}
	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil && f == 0 {
		return Invalid
	}
	// Out-of-range values come back as ±Inf with an error, which
	// is the right answer here.
	return Of(f)
}
