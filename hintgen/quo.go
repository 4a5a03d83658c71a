package hintgen

import "github.com/appleboy/psautohint/fixed"

// Theta is the slope tolerance for VertQuo/HorizQuo's "how vertical
// (or horizontal) is this chord" measurement. Grounded on ac.c's
// InitData STARTUP case: gTheta = .38.
const Theta = 0.38

// interpolate linearly interpolates y for x between (x0,y0) and
// (x1,y1). Grounded on head.c's Interpolate.
func interpolate(x, x0, y0, x1, y1 float64) float64 {
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// hvness maps a slope ratio q to a "how aligned with the axis" score
// in [0, FixOne], via the same piecewise-linear curve as head.c's
// HVness: FixOne means exactly aligned, 0 means not aligned at all,
// intermediate values mean "almost". Grounded on head.c's HVness.
func hvness(q float64) fixed.Int {
	var r float64
	switch {
	case q < 0.25:
		r = interpolate(q, 1.0, 0.0, .841, .25)
	case q < 0.5:
		r = interpolate(q, .841, .25, .707, .5)
	case q < 1:
		r = interpolate(q, .707, .5, .5, 1.0)
	case q < 2:
		r = interpolate(q, .5, 1.0, .25, 2.0)
	case q < 4:
		r = interpolate(q, .25, 2.0, 0.0, 4.0)
	default:
		r = 0
	}
	return fixed.FromFloat64(r)
}

// VertQuo reports how close the chord (xk,yk)-(xl,yl) is to exactly
// vertical: FixOne for exactly vertical, 0 for exactly horizontal,
// intermediate fixed.Int values otherwise. Grounded on head.c's
// VertQuo.
func VertQuo(xk, yk, xl, yl fixed.Int) fixed.Int {
	xabs := (xk - xl).Abs()
	if xabs == 0 {
		return fixed.One
	}
	yabs := (yk - yl).Abs()
	if yabs == 0 {
		return 0
	}
	rx, ry := xabs.ToFloat64(), yabs.ToFloat64()
	q := (rx * rx) / (Theta * ry)
	return hvness(q)
}

// HorizQuo is VertQuo's horizontal-axis mirror. Grounded on head.c's
// HorzQuo.
func HorizQuo(xk, yk, xl, yl fixed.Int) fixed.Int {
	yabs := (yk - yl).Abs()
	if yabs == 0 {
		return fixed.One
	}
	xabs := (xk - xl).Abs()
	if xabs == 0 {
		return 0
	}
	rx, ry := xabs.ToFloat64(), yabs.ToFloat64()
	q := (ry * ry) / (Theta * rx)
	return hvness(q)
}

// AdjDist scales a distance d by a quotient q in [0, FixOne], passing
// it through unchanged when q is exactly FixOne. Grounded on gen.c's
// AdjDist.
func AdjDist(d, q fixed.Int) fixed.Int {
	if q == fixed.One {
		return d
	}
	return fixed.Mul(d, q)
}
