// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2,
// both of which can be found in the LICENSE file.

// Package fixed implements the 24.8 signed fixed-point arithmetic used
// throughout the hinting pipeline. One unit is 1/256 of an em-unit.
// All hinting math stays in this representation so that results are
// deterministic across platforms; float64 is used only at the edges,
// for reporting and for the one or two places (square roots, arctangents)
// where the original engine itself drops to floating point.
package fixed

import (
	"fmt"
	"math"

	imagefixed "golang.org/x/image/math/fixed"
)

// Int is a 24.8 signed fixed-point number.
type Int int32

const (
	// Shift is the number of fractional bits.
	Shift = 8
	// One is the fixed-point representation of 1.0.
	One Int = 1 << Shift
	// Two is the fixed-point representation of 2.0.
	Two Int = 2 << Shift
	// Half is the fixed-point representation of 0.5.
	Half Int = One / 2
	// Quarter is the fixed-point representation of 0.25.
	Quarter Int = One / 4
)

// FromInt converts an integer number of em-units to Int.
func FromInt(i int) Int { return Int(i) * One }

// FromFloat64 converts a float64, rounding to the nearest 1/256 unit.
func FromFloat64(f float64) Int { return Int(math.Round(f * float64(One))) }

// ToFloat64 converts x to a float64, for reporting only.
func (x Int) ToFloat64() float64 { return float64(x) / float64(One) }

// Trunc returns the integer part of x, truncating toward zero.
func (x Int) Trunc() int32 { return int32(x) / int32(One) }

// Frac returns the fractional part of x in [0, One).
func (x Int) Frac() Int { return x & (One - 1) }

// Round rounds x to the nearest integer number of units, ties away from
// zero (matching the source's "(x+128)>>8 for positive, symmetric for
// negative" convention).
func (x Int) Round() Int {
	if x >= 0 {
		return (x + Half) &^ (One - 1)
	}
	return -((-x + Half) &^ (One - 1))
}

// HalfRound implements FHalfRnd: round to the nearest unit, ties toward
// positive infinity. Used by the bounding-box helpers, which must match
// the source's asymmetric tie-break exactly so bbox edges stay stable.
func (x Int) HalfRound() Int {
	return (x + Half) &^ (One - 1)
}

// DebugRound implements the source's legacy DEBUG_ROUND macro: it drops
// the fraction (Trunc) and then rounds down to an even multiple of a
// unit, so 3 and 3.9 both give 2 and -3 gives -4. This reproduces output
// from an earlier 24.7 fixed-point era of the engine; nothing in the
// hinting pipeline calls it (see DESIGN.md).
func (x Int) DebugRound() Int {
	u := x.Trunc()
	if u >= 0 {
		return FromInt(int(2 * (u / 2)))
	}
	return FromInt(int(2 * ((u - 1) / 2)))
}

// Mul multiplies two fixed-point numbers using a 64-bit intermediate to
// avoid overflow; pair evaluation multiplies up to four coordinate
// deltas together so this guard is load-bearing, not decorative.
func Mul(a, b Int) Int {
	return Int((int64(a) * int64(b)) >> Shift)
}

// Div divides a by b using a 64-bit intermediate.
func Div(a, b Int) Int {
	if b == 0 {
		return 0
	}
	return Int((int64(a) << Shift) / int64(b))
}

// Abs returns the absolute value of x.
func (x Int) Abs() Int {
	if x < 0 {
		return -x
	}
	return x
}

// String returns a human-readable representation, e.g. "1:064".
func (x Int) String() string {
	i, f := x/One, x%One
	if f < 0 {
		f = -f
	}
	return fmt.Sprintf("%d:%03d", int32(i), int32(f))
}

// int266Shift is the number of fractional bits Int26_6 carries fewer
// than Int (8 - 6).
const int266Shift = Shift - 6

// To266 converts a 24.8 value to x/image's 26.6 representation, for
// handing coordinates to reporting and ecosystem tooling built around
// that type. This is a unit conversion only (8 fractional bits to 6),
// not a hinting operation; nothing in the pipeline itself uses Int26_6.
func (x Int) To266() imagefixed.Int26_6 {
	return imagefixed.Int26_6(int64(x) >> int266Shift)
}

// From266 converts an x/image Int26_6 value to Int.
func From266(x imagefixed.Int26_6) Int {
	return Int(int64(x) << int266Shift)
}

// Point is a two-dimensional point or vector in 24.8 fixed point.
type Point struct {
	X, Y Int
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Len returns the Euclidean length of the vector p.
func (p Point) Len() Int {
	x, y := float64(p.X), float64(p.Y)
	return Int(math.Sqrt(x*x + y*y))
}

// Norm returns the vector p normalized to the given length, or the zero
// Point if p is degenerate.
func (p Point) Norm(length Int) Point {
	d := p.Len()
	if d == 0 {
		return Point{}
	}
	return Point{
		X: Int(int64(p.X) * int64(length) / int64(d)),
		Y: Int(int64(p.Y) * int64(length) / int64(d)),
	}
}
