package mmtransfer

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
)

// pointTolerance is how close a recorded coordinate must be to a
// candidate endpoint/average/bbox value to count as a match. Grounded
// on charpath.c's GetPointType, which accepts exact equality or
// nearlyequal_ within FixOne.
var pointTolerance = fixed.One

func nearlyEqual(a, b fixed.Int) bool {
	d := a - b
	return d.Abs() <= pointTolerance
}

// axisValues returns an element's chord endpoints on the axis a hint
// code cares about: Y for a horizontal stem ('b'/'v'), X for a
// vertical one ('y'/'m').
func axisValues(path *glyphpath.Path, elt int, vert bool) (start, end fixed.Int) {
	x0, y0, x1, y1 := path.EndPoints(elt)
	if vert {
		return x0, x1
	}
	return y0, y1
}

// classifyKind reports which kind of point on elt produced value,
// trying start, end, average, curve-bbox extremum and finally falling
// back to Flatten. Grounded on charpath.c's GetPointType, minus its
// retry-at-the-next-element search: this port already knows exactly
// which element the value came from (glyphpath's segment-to-element
// attachment makes that explicit, where the original had to rediscover
// it from a bare coordinate), so there is nothing to retry.
func classifyKind(path *glyphpath.Path, elt int, vert bool, value fixed.Int) EndpointKind {
	if elt == glyphpath.None {
		return Ghost
	}
	start, end := axisValues(path, elt, vert)
	avg := (start + end) / 2

	switch {
	case nearlyEqual(value, start):
		return Start
	case nearlyEqual(value, end):
		return End
	case nearlyEqual(value, avg):
		return Avg
	}

	if path.At(elt).Kind == glyphpath.Curve {
		if v, ok := curveBBoxValue(path, elt, vert); ok && nearlyEqual(value, v) {
			return CurveBBoxKind
		}
	}
	return Flatten
}

// curveBBoxValue reports the curve's bounding-box extremum on the
// relevant axis, but only when a control point actually pushes the
// curve beyond its own endpoint span (matching charpath.c's CurveBBox,
// which otherwise declines so the caller falls through to Flatten).
func curveBBoxValue(path *glyphpath.Path, elt int, vert bool) (fixed.Int, bool) {
	e := path.At(elt)
	x0, y0, x1, y1 := path.EndPoints(elt)

	start, end := y0, y1
	c1, c2 := e.Y1, e.Y2
	if vert {
		start, end = x0, x1
		c1, c2 = e.X1, e.X2
	}
	lo, hi := start, end
	if lo > hi {
		lo, hi = hi, lo
	}
	if !(c1-hi >= fixed.One || c2-hi >= fixed.One || c1-lo <= fixed.One || c2-lo <= fixed.One) {
		return 0, false
	}

	box := glyphpath.FindCurveBBox(
		fixed.Point{X: x0, Y: y0},
		fixed.Point{X: e.X1, Y: e.Y1},
		fixed.Point{X: e.X2, Y: e.Y2},
		fixed.Point{X: x1, Y: y1},
	)
	bmin, bmax := box.YMin, box.YMax
	if vert {
		bmin, bmax = box.XMin, box.XMax
	}
	if !(bmax > hi || lo > bmin) {
		return 0, false
	}
	if lo-bmin > bmax-hi {
		return bmin, true
	}
	return bmax, true
}
