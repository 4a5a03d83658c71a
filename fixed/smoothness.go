package fixed

import "math"

// atanDeg returns atan2(a, b) in fixed-point degrees, normalized to
// [0, 360). Grounded on check.c's ATan: the source itself computes this
// in float32, since it is used only for a diagnostic angle comparison,
// not for hinting arithmetic.
func atanDeg(a, b Int) Int {
	deg := math.Atan2(a.ToFloat64(), b.ToFloat64()) * (180 / math.Pi)
	for deg < 0 {
		deg += 360
	}
	return FromFloat64(deg)
}

// MakeColinear projects (tx,ty) onto the line through (x0,y0)-(x1,y1),
// returning the point on that line nearest to (tx,ty). Grounded on
// check.c's MakeColinear.
func MakeColinear(tx, ty, x0, y0, x1, y1 Int) (Int, Int) {
	dx, dy := x1-x0, y1-y0
	switch {
	case dx == 0 && dy == 0:
		return tx, ty
	case dx == 0:
		return x0, ty
	case dy == 0:
		return tx, y0
	}
	rdx, rdy := dx.ToFloat64(), dy.ToFloat64()
	rx0, ry0 := x0.ToFloat64(), y0.ToFloat64()
	rx, ry := tx.ToFloat64(), ty.ToFloat64()
	dxdy := rdx * rdy
	dxsq := rdx * rdx
	dysq := rdy * rdy
	dsq := dxsq + dysq
	xi := (rx*dxsq + rx0*dysq + (ry-ry0)*dxdy) / dsq
	yi := ry0 + ((xi-rx0)*rdy)/rdx
	return FromFloat64(xi), FromFloat64(yi)
}

// SmoothnessAngle returns the angle in fixed-point degrees (0..180)
// between the incident vectors (x0,y0)->(x1,y1) and (x1,y1)->(x2,y2) at
// a path junction. Grounded on check.c's CheckSmoothness.
func SmoothnessAngle(x0, y0, x1, y1, x2, y2 Int) Int {
	dx, dy := x0-x1, y0-y1
	if dx == 0 && dy == 0 {
		return 0
	}
	at0 := atanDeg(dx, dy)
	dx, dy = x1-x2, y1-y2
	if dx == 0 && dy == 0 {
		return 0
	}
	at1 := atanDeg(dx, dy)
	diff := at0 - at1
	if diff < 0 {
		diff = -diff
	}
	if diff >= FromInt(180) {
		diff = FromInt(360) - diff
	}
	return diff
}

// IsSmooth reports whether the junction (x0,y0)-(x1,y1)-(x2,y2) is smooth:
// the incident angle is 0, or it is at most 30 degrees and the middle
// point sits within 4 units of the line through the two neighbors once
// snapped. An angle over 30 degrees is a corner and is not smooth. Also
// returns the measured angle (for the ">150 degrees, clip it" sharp-corner
// diagnostic).
func IsSmooth(x0, y0, x1, y1, x2, y2 Int) (smooth bool, angle Int) {
	angle = SmoothnessAngle(x0, y0, x1, y1, x2, y2)
	if angle == 0 {
		return true, angle
	}
	if angle > FromInt(30) {
		return false, angle
	}
	sx, sy := MakeColinear(x1, y1, x0, y0, x2, y2)
	sx, sy = sx.HalfRound(), sy.HalfRound()
	return (sx - x1).Abs() < FromInt(4) && (sy - y1).Abs() < FromInt(4), angle
}
