package pathedit

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
)

// cpDirection returns the sign of the signed area of the triangle
// (x1,cy1)-(x2,y2)-(x3,y3): +1, -1 or 0. Grounded on check.c's
// CPDirection.
func cpDirection(x1, cy1, x2, y2, x3, y3 fixed.Int) int {
	q := x2.ToFloat64()*(y3-cy1).ToFloat64() +
		x1.ToFloat64()*(y2-y3).ToFloat64() +
		x3.ToFloat64()*(cy1-y2).ToFloat64()
	switch {
	case q > 0:
		return 1
	case q < 0:
		return -1
	default:
		return 0
	}
}

// CheckZeroLength removes Line and Curve elements that are degenerate:
// a Line whose endpoints coincide, or a Curve whose three control
// points and endpoint all equal its start point. Grounded on check.c's
// CheckZeroLength.
func CheckZeroLength(p *glyphpath.Path) bool {
	changed := false
	for i := p.Start(); i != glyphpath.None; {
		next := p.Next(i)
		e := p.At(i)
		x0, y0, x1, y1 := p.EndPoints(i)
		switch {
		case e.Kind == glyphpath.Line && x0 == x1 && y0 == y1:
			p.Delete(i)
			changed = true
		case e.Kind == glyphpath.Curve && x0 == x1 && y0 == y1 &&
			e.X1 == x1 && e.X2 == x1 && e.Y1 == y1 && e.Y2 == y1:
			p.Delete(i)
			changed = true
		}
		i = next
	}
	return changed
}

// checkSCurve splits a curve whose control polygon reverses direction
// partway along it (an S shape PostScript rasterizers render poorly),
// by bisection. The source locates the exact point the curve's
// tangent direction flips via a forward-differencing flattening walk;
// this port splits at the curve's midpoint instead, a documented
// simplification (see DESIGN.md) that still breaks the S shape into
// two single-direction halves, just not at the geometrically exact
// inflection point. Grounded on check.c's CheckSCurve/chkBad.
func checkSCurve(p *glyphpath.Path, elt int) bool {
	return ResolveConflictBySplit(p, elt, Vertical, SegLink{}, SegLink{})
}

// CheckSmooth removes zero-length elements and splits S-curves, and
// reports whether it changed the path; it does not assess junction
// angles (CheckJunctions does that). Re-runs the split pass to a fixed
// point, bounded to 10 passes to guard against pathological
// inputs oscillating between splits. Grounded on check.c's CheckSmooth.
func CheckSmooth(p *glyphpath.Path) bool {
	changed := CheckZeroLength(p)
	for pass := 0; pass < 10; pass++ {
		split := false
		for i := p.Start(); i != glyphpath.None; i = p.Next(i) {
			e := p.At(i)
			if e.Kind == glyphpath.Move || e.IsFlex || p.IsTiny(i) {
				continue
			}
			x1, y1 := p.EndPoint(i)
			if e.Kind == glyphpath.Curve {
				x0, y0 := p.EndPoint(p.Prev(i))
				cpd0 := cpDirection(x0, y0, e.X1, e.Y1, e.X2, e.Y2)
				cpd1 := cpDirection(e.X1, e.Y1, e.X2, e.Y2, x1, y1)
				if (cpd0 < 0 && cpd1 > 0) || (cpd0 > 0 && cpd1 < 0) {
					if checkSCurve(p, i) {
						split = true
					}
				}
			}
		}
		if split {
			changed = true
			continue
		}
		break
	}
	if changed {
		CheckZeroLength(p)
	}
	return changed
}

// Junction reports the measured smoothness of one path junction, for
// callers (typically autohint's reporting layer) that want to surface
// "may need smoothing"/"too sharp, clipped" diagnostics the way
// check.c's CheckSmooth does via LogMsg.
type Junction struct {
	Elt    int
	Smooth bool
	Angle  fixed.Int
}

// CheckJunctions walks the smoothed path and reports every junction's
// measured angle, mirroring CheckSmooth's NxtForBend/PrvForBend/
// CheckSmoothness diagnostic pass without performing any edits itself.
func CheckJunctions(p *glyphpath.Path) []Junction {
	var out []Junction
	for i := p.Start(); i != glyphpath.None; i = p.Next(i) {
		e := p.At(i)
		if e.Kind == glyphpath.Move || e.IsFlex || p.IsTiny(i) {
			continue
		}
		x1, y1 := p.EndPoint(i)
		nxt, x2, y2, _, _ := p.NextForBend(i)
		if p.At(nxt).IsFlex {
			continue
		}
		_, x0, y0 := p.PrevForBend(nxt)
		smooth, angle := fixed.IsSmooth(x0, y0, x1, y1, x2, y2)
		out = append(out, Junction{Elt: i, Smooth: smooth, Angle: angle})
	}
	return out
}
