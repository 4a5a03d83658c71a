package hintgen

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
)

// CPPercent is the percentage distance along a curve's chord used to
// project a control-point-relative stem edge (CPFrom/CPTo). Grounded
// on ac.c's InitData STARTUP case: gCPpercent = 40.
const CPPercent = 40

// cpFrom projects the point 100-CPPercent of the way from cp2 toward
// cp3, expressed as cp2 plus a scaled delta. Grounded on gen.c's
// CPFrom (cpFrom = 100-gCPpercent).
func cpFrom(cp2, cp3 fixed.Int) fixed.Int {
	cpFromPct := fixed.Int(100 - CPPercent)
	val := fixed.Int(int64(2) * int64(fixed.Mul(cp3-cp2, cpFromPct)) / 200)
	return val + cp2
}

// cpTo projects the point CPPercent of the way from cp0 toward cp1.
// Grounded on gen.c's CPTo.
func cpTo(cp0, cp1 fixed.Int) fixed.Int {
	cpToPct := fixed.Int(CPPercent)
	val := fixed.Int(int64(2) * int64(fixed.Mul(cp1-cp0, cpToPct)) / 200)
	return val + cp0
}

// Generate scans the path and returns its four candidate segment
// lists. Grounded on gen.c's GenVPts/GenHPts and their shared
// CompactList/RemExtraBends post-processing.
func Generate(p *glyphpath.Path) *Lists {
	l := &Lists{}
	genAxis(p, l, true)
	genAxis(p, l, false)
	compactAndDedupe(l, true)
	compactAndDedupe(l, false)
	return l
}

// genAxis runs one axis's scan: vertical (stem-left/right) when
// vertical is true, horizontal (stem-bot/top) otherwise. The two
// scans are structurally identical with x/y swapped, so this single
// generic pass replaces gen.c's separately written GenVPts/GenHPts.
func genAxis(p *glyphpath.Path, l *Lists, vertical bool) {
	add := l.addVSegment
	quo := VertQuo
	if !vertical {
		add = l.addHSegment
		quo = HorizQuo
	}

	for i := p.Start(); i != glyphpath.None; i = p.Next(i) {
		e := p.At(i)
		switch e.Kind {
		case glyphpath.Move, glyphpath.Close:
			continue
		case glyphpath.Line:
			if p.IsTiny(i) {
				continue
			}
			x0, y0, x1, y1 := p.EndPoints(i)
			if p.At(i).IsFlex {
				continue
			}
			genLineSegment(p, i, x0, y0, x1, y1, vertical, quo, add)
		case glyphpath.Curve:
			if e.IsFlex {
				continue
			}
			x0, y0, x1, y1 := p.EndPoints(i)
			genCurveSegment(p, i, x0, y0, x1, y1, vertical, quo, add)
		}
	}
}

func primarySecondary(x, y fixed.Int, vertical bool) (primary, secondary fixed.Int) {
	if vertical {
		return x, y
	}
	return y, x
}

type addFunc func(from, to, loc fixed.Int, elt, elt2 int, hasElt, hasElt2 bool, typ Type, bonus fixed.Int)

func genLineSegment(p *glyphpath.Path, i int, x0, y0, x1, y1 fixed.Int, vertical bool, quo func(a, b, c, d fixed.Int) fixed.Int, add addFunc) {
	p0, s0 := primarySecondary(x0, y0, vertical)
	p1, s1 := primarySecondary(x1, y1, vertical)
	q := quo(x0, y0, x1, y1)
	if q > 0 {
		if p0 == p1 {
			add(s0, s1, p0, p.Prev(i), i, p.Prev(i) != glyphpath.None, true, Line, 0)
			return
		}
		if q < fixed.Quarter {
			q = fixed.Quarter
		}
		dist := fixed.Mul(fixed.Half, AdjDist(s1-s0, q))
		avg := fixed.Mul(fixed.Half, s0+s1)
		loc := fixed.Mul(fixed.Half, p0+p1)
		add(avg-dist, avg+dist, loc, i, 0, true, false, Line, 0)
		return
	}
	genBendSegments(p, i, x0, y0, x1, y1, vertical, add)
}

func genCurveSegment(p *glyphpath.Path, i int, x0, y0, x1, y1 fixed.Int, vertical bool, quo func(a, b, c, d fixed.Int) fixed.Int, add addFunc) {
	e := p.At(i)
	px1, py1, px2, py2 := e.X1, e.Y1, e.X2, e.Y2

	if q := quo(px1, py1, x0, y0); q > 0 {
		p0, s0 := primarySecondary(x0, y0, vertical)
		_, sp1 := primarySecondary(px1, py1, vertical)
		dist := AdjDist(cpTo(s0, sp1)-s0, q)
		lo, hi := s0, s0+dist
		if lo > hi {
			lo, hi = hi, lo
		}
		add(lo, hi, p0, p.Prev(i), i, p.Prev(i) != glyphpath.None, true, Curve, 0)
	}
	if q := quo(px2, py2, x1, y1); q > 0 {
		p1, s1 := primarySecondary(x1, y1, vertical)
		_, sp2 := primarySecondary(px2, py2, vertical)
		dist := AdjDist(s1-cpFrom(sp2, s1), q)
		lo, hi := s1-dist, s1
		if lo > hi {
			lo, hi = hi, lo
		}
		add(lo, hi, p1, i, 0, true, false, Curve, 0)
	}
	genCurveBBoxSegment(p, i, x0, y0, x1, y1, vertical, add)
}

// curveBBoxMargin is the amount a curve's bounding box must extend past
// its chord (the endpoint-to-endpoint span on the primary axis) before
// the bulge is considered worth a stem edge of its own, rather than
// noise in the endpoint-derived segments above.
var curveBBoxMargin = fixed.FromInt(2)

// genCurveBBoxSegment emits a third segment anchored at the curve's
// bounding-box extremum on the primary axis, for curves whose middle
// bulges past both endpoints by more than curveBBoxMargin — a stem
// edge the two endpoint-derived segments above never see, since both
// are anchored at an endpoint rather than the bulge itself. Grounded on
// gen.c's GenVPts/GenHPts sCURVE branch (guarded by FindCurveBBox), and
// mirrored by mmtransfer/classify.go's curveBBoxValue.
func genCurveBBoxSegment(p *glyphpath.Path, i int, x0, y0, x1, y1 fixed.Int, vertical bool, add addFunc) {
	e := p.At(i)
	p0, _ := primarySecondary(x0, y0, vertical)
	p1, _ := primarySecondary(x1, y1, vertical)
	lo, hi := p0, p1
	if lo > hi {
		lo, hi = hi, lo
	}

	box := glyphpath.FindCurveBBox(
		fixed.Point{X: x0, Y: y0},
		fixed.Point{X: e.X1, Y: e.Y1},
		fixed.Point{X: e.X2, Y: e.Y2},
		fixed.Point{X: x1, Y: y1},
	)
	bmin, bmax := box.XMin, box.XMax
	smin, smax := box.YMin, box.YMax
	if !vertical {
		bmin, bmax = box.YMin, box.YMax
		smin, smax = box.XMin, box.XMax
	}

	belowLo := lo - bmin
	aboveHi := bmax - hi
	if belowLo <= curveBBoxMargin && aboveHi <= curveBBoxMargin {
		return
	}
	loc := bmax
	if belowLo > aboveHi {
		loc = bmin
	}
	add(smin, smax, loc, i, 0, true, false, Curve, 0)
}

// genBendSegments synthesizes a small segment straddling a junction
// whose two incident chords are not aligned with the scan axis but
// together form a sharp enough bend to hint, per TestBend/TestTan/
// IsCCW. This condenses gen.c's DoHBendsNxt/DoHBendsPrv/DoVBendsNxt/
// DoVBendsPrv (which are pairwise mirror images of one another across
// axis and direction) into one generic pass.
func genBendSegments(p *glyphpath.Path, i int, x0, y0, x1, y1 fixed.Int, vertical bool, add addFunc) {
	if x0 == x1 && !vertical {
		return
	}
	if y0 == y1 && vertical {
		return
	}
	_, nx, ny, _, _ := p.NextForBend(i)
	if !testBend(x0, y0, x1, y1, nx, ny) {
		return
	}
	p1, s1 := primarySecondary(x1, y1, vertical)
	delta := fixed.Mul(fixed.Half, BendLength)
	if isCCW(x0, y0, x1, y1, nx, ny) {
		delta = -delta
	}
	add(s1-delta, s1+delta, p1, i, 0, true, false, Bend, 0)
}

// compactAndDedupe merges overlapping same-location segments within a
// list and discards a spurious bend segment wherever a longer, more
// confident real segment already covers the same span. Grounded on
// gen.c's CompactList and RemExtraBends.
func compactAndDedupe(l *Lists, vertical bool) {
	var a, b *[]*Segment
	if vertical {
		a, b = &l.Left, &l.Right
	} else {
		a, b = &l.Bot, &l.Top
	}
	*a = compactList(*a)
	*b = compactList(*b)
	removeExtraBends(a, b)
}

func compactList(list []*Segment) []*Segment {
	out := make([]*Segment, 0, len(list))
	for _, s := range list {
		merged := false
		for _, o := range out {
			if o.Loc != s.Loc {
				continue
			}
			if s.Max >= o.Min && s.Min <= o.Max {
				if (o.Max - o.Min).Abs() >= (s.Max - s.Min).Abs() {
					o.Min = min(o.Min, s.Min)
					o.Max = max(o.Max, s.Max)
					if s.Bonus > o.Bonus {
						o.Bonus = s.Bonus
					}
				} else {
					s.Min = min(o.Min, s.Min)
					s.Max = max(o.Max, s.Max)
					if o.Bonus > s.Bonus {
						s.Bonus = o.Bonus
					}
					*o = *s
				}
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, s)
		}
	}
	return out
}

func removeExtraBends(a, b *[]*Segment) {
	filter := func(keep []*Segment, other []*Segment) []*Segment {
		out := keep[:0:0]
		for _, s := range keep {
			drop := false
			if s.Type == Bend {
				for _, o := range other {
					if o.Loc == s.Loc && o.Type != Bend && o.Type != Ghost &&
						o.Min < s.Max && o.Max > s.Min &&
						(o.Max-o.Min) > (s.Max-s.Min)*3 {
						drop = true
						break
					}
				}
			}
			if !drop {
				out = append(out, s)
			}
		}
		return out
	}
	*a = filter(*a, *b)
	*b = filter(*b, *a)
}

func min(a, b fixed.Int) fixed.Int {
	if a < b {
		return a
	}
	return b
}

func max(a, b fixed.Int) fixed.Int {
	if a > b {
		return a
	}
	return b
}
