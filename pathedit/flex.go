package pathedit

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/fontinfo"
	"github.com/appleboy/psautohint/glyphpath"
)

// flexCand is the maximum base-coordinate difference a flex candidate
// pair may show before it's rejected outright. Grounded on ac.c's
// InitData STARTUP case (gFlexCand = PSDist(4)).
var flexCand = fixed.FromInt(4)

// maxFlex is the minimum width/height a flex candidate's span must
// reach. Grounded on ac.h's MAXFLEX (PSDist(20)).
var maxFlex = fixed.FromInt(20)

// lengthRatioCutoff is 0.33 squared: the two curves forming a flex
// candidate must be within an approximate 1:3 length ratio or better.
// Grounded on misc.c's LENGTHRATIOCUTOFF.
const lengthRatioCutoff = 0.11

func prodLt0F(a, b fixed.Int) bool { return prodLt0(a, b) }

// flexSubpathNext walks forward skipping tiny elements, stopping at
// the path's end, a Close, or the first non-tiny element. Distinct
// from glyphpath's NextForBend, which wraps around a subpath instead
// of stopping at its Close. Grounded on misc.c's static GetSubpathNext.
func flexSubpathNext(p *glyphpath.Path, i int) int {
	for {
		i = p.Next(i)
		if i == glyphpath.None {
			return i
		}
		if p.At(i).Kind == glyphpath.Close {
			return i
		}
		if !p.IsTiny(i) {
			return i
		}
	}
}

// flexSubpathPrev is flexSubpathNext's mirror. A Move redirects to the
// Close ending the same subpath, since the two share an endpoint and
// IsTiny needs a chord to measure. Grounded on misc.c's static
// GetSubpathPrev.
func flexSubpathPrev(p *glyphpath.Path, i int) int {
	for {
		i = p.Prev(i)
		if i == glyphpath.None {
			return i
		}
		if p.At(i).Kind == glyphpath.Move {
			i = p.GetClosedBy(i)
		}
		if !p.IsTiny(i) {
			return i
		}
	}
}

// addAutoFlexProp marks e and e.next as a flex pair along the given
// axis, unless the curve pair is already linear on that axis (adding
// flex to a linear curve pair would be a no-op at best). Grounded on
// misc.c's AddAutoFlexProp.
func addAutoFlexProp(p *glyphpath.Path, e, n int, yflag bool) bool {
	e0, e1 := p.At(e), p.At(n)
	if yflag && e0.Y3 == e1.Y1 && e1.Y1 == e1.Y2 && e1.Y2 == e1.Y3 {
		return false
	}
	if !yflag && e0.X3 == e1.X1 && e1.X1 == e1.X2 && e1.X2 == e1.X3 {
		return false
	}
	e0.YFlex, e1.YFlex = yflag, yflag
	e0.IsFlex, e1.IsFlex = true, true
	return true
}

func lengthRatio(x0, y0, x1, y1, x2, y2 fixed.Int) float64 {
	dx, dy := (x1 - x0).ToFloat64(), (y1 - y0).ToFloat64()
	d0sq := dx*dx + dy*dy
	dx, dy = (x2 - x1).ToFloat64(), (y2 - y1).ToFloat64()
	d1sq := dx*dx + dy*dy
	if d0sq > d1sq {
		if d0sq == 0 {
			return 0
		}
		return d1sq / d0sq
	}
	if d1sq == 0 {
		return 0
	}
	return d0sq / d1sq
}

// tryYFlex tests whether the curve e, followed by curve n, forms a
// valid y-axis flex candidate, and installs it via addAutoFlexProp
// when it does. Grounded on misc.c's TryYFlex.
func tryYFlex(p *glyphpath.Path, fi *fontinfo.FontInfo, e, n int, x0, y0, x1, y1 fixed.Int) bool {
	x2, y2 := p.EndPoint(n)
	if (y0 - y2).Abs() > flexCand {
		return false
	}
	dx := (x0 - x2).Abs()
	if dx < maxFlex {
		return false
	}
	if dx < 3*(y0-y2).Abs() {
		return false
	}
	if prodLt0F(y1-y0, y1-y2) {
		return false
	}
	if lengthRatio(x0, y0, x1, y1, x2, y2) < lengthRatioCutoff {
		return false
	}
	if fi != nil && fi.FlexStrict {
		q := flexSubpathNext(p, n)
		if q == glyphpath.None {
			return false
		}
		x3, y3 := p.EndPoint(q)
		if prodLt0F(y3-y2, y1-y2) {
			return false
		}
		prv := flexSubpathPrev(p, e)
		if prv == glyphpath.None {
			return false
		}
		x4, y4 := p.EndPoint(p.Prev(prv))
		if prodLt0F(y4-y0, y1-y0) {
			return false
		}
		top := x0 > x1
		dwn := y1 > y0
		if top != dwn {
			return false
		}
	}
	if n != p.Next(e) {
		return false
	}
	if y0 != y2 {
		return false
	}
	return addAutoFlexProp(p, e, n, true)
}

// tryXFlex is tryYFlex's x-axis mirror. Grounded on misc.c's TryXFlex.
func tryXFlex(p *glyphpath.Path, fi *fontinfo.FontInfo, e, n int, x0, y0, x1, y1 fixed.Int) bool {
	x2, y2 := p.EndPoint(n)
	if (y0 - y2).Abs() > flexCand {
		return false
	}
	dy := (x0 - x2).Abs()
	if dy < maxFlex {
		return false
	}
	// dy and the right-hand side are the same quantity here, so this
	// rejects any non-trivial candidate; that is what the source does
	// too (TryXFlex's width/height check compares x0-x2 against
	// itself rather than y0-y2), preserved rather than corrected.
	if dy < 3*(x0-x2).Abs() {
		return false
	}
	if prodLt0F(x1-x0, x1-x2) {
		return false
	}
	if lengthRatio(x0, y0, x1, y1, x2, y2) < lengthRatioCutoff {
		return false
	}
	if fi != nil && fi.FlexStrict {
		q := flexSubpathNext(p, n)
		if q == glyphpath.None {
			return false
		}
		x3, y3 := p.EndPoint(q)
		if prodLt0F(x3-x2, x1-x2) {
			return false
		}
		prv := flexSubpathPrev(p, e)
		if prv == glyphpath.None {
			return false
		}
		x4, y4 := p.EndPoint(p.Prev(prv))
		if prodLt0F(x4-x0, x1-x0) {
			return false
		}
		lft := y0 < y2
		if (lft && x0 > x1) || (!lft && x0 < x1) {
			return false
		}
	}
	if n != p.Next(e) {
		return false
	}
	if x0 != x2 {
		return false
	}
	return addAutoFlexProp(p, e, n, false)
}

// AutoAddFlex scans the path for adjacent curve pairs that qualify as
// a flex hint (a near-flat S shape PostScript can render as a single
// flex operator instead of two curves) and marks each qualifying pair.
// Reports whether any pair was added. Grounded on misc.c's
// AutoAddFlex.
func AutoAddFlex(p *glyphpath.Path, fi *fontinfo.FontInfo) bool {
	changed := false
	for i := p.Start(); i != glyphpath.None; i = p.Next(i) {
		e := p.At(i)
		if e.Kind != glyphpath.Curve || e.IsFlex {
			continue
		}
		n := flexSubpathNext(p, i)
		if n == glyphpath.None || p.At(n).Kind != glyphpath.Curve {
			continue
		}
		x0, y0, x1, y1 := p.EndPoints(i)
		if (y0 - y1).Abs() <= maxFlex {
			if tryYFlex(p, fi, i, n, x0, y0, x1, y1) {
				changed = true
			}
		}
		if (x0 - x1).Abs() <= maxFlex {
			if tryXFlex(p, fi, i, n, x0, y0, x1, y1) {
				changed = true
			}
		}
	}
	return changed
}
