package hintgen

import "github.com/appleboy/psautohint/fixed"

// BendTan is the tangent-ratio threshold (in parts per 1000) used by
// TestTan to decide whether a near-straight run is still "flat enough"
// to bridge across when looking for a bend partner two elements away.
// Grounded on ac.c's InitData STARTUP case: gBendTan = 577.
const BendTan = 577

// BendLength is the width of a synthetic bend segment, in font units.
// Grounded on ac.c's InitData STARTUP case: gBendLength = PSDist(2).
var BendLength = fixed.FromInt(2)

// testBend reports whether (x0,y0)->(x1,y1)->(x2,y2) turns sharply
// enough (subtends an angle of 135 degrees or less) to be worth a
// synthetic bend segment. Grounded on gen.c's TestBend: cos^2(angle) <=
// 0.5 iff the angle is at least 45 degrees from straight, i.e. at most
// 135 degrees of bend.
func testBend(x0, y0, x1, y1, x2, y2 fixed.Int) bool {
	dx1, dy1 := (x1 - x0).ToFloat64(), (y1 - y0).ToFloat64()
	dx2, dy2 := (x2 - x1).ToFloat64(), (y2 - y1).ToFloat64()
	dot := dx1*dx2 + dy1*dy2
	lenSqProd := (dx1*dx1 + dy1*dy1) * (dx2*dx2 + dy2*dy2)
	if lenSqProd == 0 {
		return false
	}
	return (dot*dot)/lenSqProd <= 0.5
}

// isCCW reports whether (x0,y0)->(x1,y1)->(x2,y2) turns counterclockwise
// in glyph space. Grounded on gen.c's IsCCW.
func isCCW(x0, y0, x1, y1, x2, y2 fixed.Int) bool {
	dx0 := (x1 - x0).Round()
	dy0 := -(y1 - y0).Round()
	dx1 := (x2 - x1).Round()
	dy1 := -(y2 - y1).Round()
	return fixed.Mul(dx0, dy1) >= fixed.Mul(dx1, dy0)
}

// testTan reports whether d1 is steep relative to d2 by more than the
// BendTan ratio: a near-flat run shouldn't count as continuing a bend.
// Grounded on gen.c's TestTan macro.
func testTan(d1, d2 fixed.Int) bool {
	return d1.Abs().ToFloat64()*1000 > d2.Abs().ToFloat64()*BendTan
}

func prodLt0(a, b fixed.Int) bool { return (a < 0 && b > 0) || (a > 0 && b < 0) }
func prodGe0(a, b fixed.Int) bool { return !prodLt0(a, b) }
