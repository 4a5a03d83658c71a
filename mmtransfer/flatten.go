package mmtransfer

import "github.com/appleboy/psautohint/fixed"

// inflectionSamples is how finely a curve is subdivided while hunting
// for a flat spot. The source's flat.c recursively subdivides to a
// device-pixel flatness tolerance; this port trades that adaptive
// scheme for a fixed sample count, which is simpler and sufficient at
// font-unit precision for the modest curves hint elements use.
const inflectionSamples = 32

// evalCubic evaluates one axis of a cubic Bezier at parameter t/n via De
// Casteljau's algorithm, working in int64 so the repeated products
// don't overflow fixed.Int's int32 representation.
func evalCubic(p0, p1, p2, p3 fixed.Int, t, n int) fixed.Int {
	it := n - t
	lerp := func(a, b fixed.Int) fixed.Int {
		return fixed.Int((int64(a)*int64(it) + int64(b)*int64(t)) / int64(n))
	}
	ab, bc, cd := lerp(p0, p1), lerp(p1, p2), lerp(p2, p3)
	abc, bcd := lerp(ab, bc), lerp(bc, cd)
	return lerp(abc, bcd)
}

// inflectionPoint looks for the first point, strictly inside the
// curve, where the relevant axis stops moving monotonically — an
// S-curve's flat spot — and reports the other axis's value there.
// Grounded on check.c's GetInflectionPoint/chkDT/chkYDIR family, which
// walks a flattened curve tracking a direction state machine and
// records the midpoint of any flat run; this is a direct, non-adaptive
// simplification of that walk: sample the curve, find the first sign
// change in the monitored axis's direction, and return the other
// axis's value at that sample.
func inflectionPoint(p0, p1, p2, p3 fixed.Point, vert bool) (fixed.Int, bool) {
	monitor := func(p fixed.Point) fixed.Int { return p.Y }
	report := func(p fixed.Point) fixed.Int { return p.X }
	if vert {
		monitor = func(p fixed.Point) fixed.Int { return p.X }
		report = func(p fixed.Point) fixed.Int { return p.Y }
	}

	prevM := monitor(p0)
	dir := 0 // 0 = undetermined, 1 = increasing, -1 = decreasing
	for t := 1; t <= inflectionSamples; t++ {
		pt := fixed.Point{
			X: evalCubic(p0.X, p1.X, p2.X, p3.X, t, inflectionSamples),
			Y: evalCubic(p0.Y, p1.Y, p2.Y, p3.Y, t, inflectionSamples),
		}
		m := monitor(pt)
		switch {
		case m > prevM:
			if dir == -1 {
				return report(pt), true
			}
			dir = 1
		case m < prevM:
			if dir == 1 {
				return report(pt), true
			}
			dir = -1
		}
		prevM = m
	}
	return 0, false
}

// relativePosition is the fallback used when neither the curve-bbox
// extremum nor an inflection point resolves cleanly: it places the
// hint at the same fractional position between the other master's
// endpoints that it held between the source master's endpoints.
// Grounded on charpath.c's GetRelativePosition.
func relativePosition(sourceStart, sourceEnd, otherStart, otherEnd, sourceValue fixed.Int) fixed.Int {
	if sourceEnd == sourceStart {
		return sourceValue - sourceStart + otherStart
	}
	rel := fixed.Div(sourceValue-sourceStart, sourceEnd-sourceStart)
	return fixed.Mul(otherEnd-otherStart, rel) + otherStart
}
