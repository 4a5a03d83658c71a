package glyphpath

import "github.com/appleboy/psautohint/fixed"

// BBox is an axis-aligned bounding box in 24.8 fixed-point units.
type BBox struct {
	XMin, YMin, XMax, YMax fixed.Int
}

// boxTracker accumulates a bbox plus the element that produced each
// extremum, mirroring bbox.c's FPBBoxPt/xmin,ymin,... statics.
type boxTracker struct {
	box                    BBox
	exmn, exmx, eymn, eymx int
}

func newBoxTracker() *boxTracker {
	big := fixed.FromInt(10000)
	return &boxTracker{box: BBox{XMin: big, YMin: big, XMax: -big, YMax: -big}}
}

func (t *boxTracker) point(elt int, x, y fixed.Int) {
	if x < t.box.XMin {
		t.box.XMin, t.exmn = x, elt
	}
	if x > t.box.XMax {
		t.box.XMax, t.exmx = x, elt
	}
	if y < t.box.YMin {
		t.box.YMin, t.eymn = y, elt
	}
	if y > t.box.YMax {
		t.box.YMax, t.eymx = y, elt
	}
}

func (t *boxTracker) finish() BBox {
	return BBox{
		XMin: t.box.XMin.HalfRound(),
		YMin: t.box.YMin.HalfRound(),
		XMax: t.box.XMax.HalfRound(),
		YMax: t.box.YMax.HalfRound(),
	}
}

func (p *Path) walkBBox(t *boxTracker, from, to int) {
	c0x, c0y := fixed.Int(0), fixed.Int(0)
	first := true
	for i := from; ; i = p.elems[i].next {
		e := &p.elems[i]
		switch e.Kind {
		case Move, Line:
			t.point(i, e.X, e.Y)
			c0x, c0y = e.X, e.Y
			first = false
		case Curve:
			if first {
				c0x, c0y = p.EndPoint(p.elems[i].prev)
			}
			p0 := fixed.Point{X: c0x, Y: c0y}
			p1 := fixed.Point{X: e.X1, Y: e.Y1}
			p2 := fixed.Point{X: e.X2, Y: e.Y2}
			p3 := fixed.Point{X: e.X3, Y: e.Y3}
			fixed.FlattenCubic(p0, p1, p2, p3, fixed.One, func(pt fixed.Point) {
				t.point(i, pt.X, pt.Y)
			})
			c0x, c0y = e.X3, e.Y3
			first = false
		case Close:
			// no contribution of its own
		}
		if i == to || e.next == None {
			break
		}
	}
}

// FindPathBBox returns the bounding box of the entire path. Grounded on
// bbox.c's FindPathBBox.
func (p *Path) FindPathBBox() BBox {
	box, _ := p.FindPathBBoxElts()
	return box
}

// BBoxElts names the path element that produced each of a bbox's four
// extrema, mirroring bbox.c's static pxmn/pxmx/pymn/pymx.
type BBoxElts struct {
	XMin, XMax, YMin, YMax int
}

// FindPathBBoxElts is FindPathBBox plus the element that produced each
// extremum, used by the bounding-box hint fallback to anchor its
// synthetic segments the way AddBBoxHV does.
func (p *Path) FindPathBBoxElts() (BBox, BBoxElts) {
	if p.start == None {
		return BBox{}, BBoxElts{None, None, None, None}
	}
	t := newBoxTracker()
	p.walkBBox(t, p.start, p.end)
	return t.finish(), BBoxElts{t.exmn, t.exmx, t.eymn, t.eymx}
}

// FindSubpathBBox returns the bounding box of the subpath containing i.
// Grounded on bbox.c's FindSubpathBBox.
func (p *Path) FindSubpathBBox(i int) BBox {
	box, _ := p.FindSubpathBBoxElts(i)
	return box
}

// FindSubpathBBoxElts is FindSubpathBBox plus the element that produced
// each extremum.
func (p *Path) FindSubpathBBoxElts(i int) (BBox, BBoxElts) {
	if i == None {
		return BBox{}, BBoxElts{None, None, None, None}
	}
	start := i
	if p.elems[i].Kind != Move {
		start = p.GetDest(i)
	}
	end := p.GetClosedBy(start)
	t := newBoxTracker()
	p.walkBBox(t, start, end)
	return t.finish(), BBoxElts{t.exmn, t.exmx, t.eymn, t.eymx}
}

// FindCurveBBox returns the bounding box of a single cubic curve.
// Grounded on bbox.c's FindCurveBBox.
func FindCurveBBox(p0, p1, p2, p3 fixed.Point) BBox {
	t := newBoxTracker()
	t.point(None, p0.X, p0.Y)
	fixed.FlattenCubic(p0, p1, p2, p3, fixed.One, func(pt fixed.Point) {
		t.point(None, pt.X, pt.Y)
	})
	return t.finish()
}

// CheckBBoxes reports whether e1 and e2 are in the same subpath, or one
// subpath's bbox is contained within the other's. Used throughout the
// evaluator and pruner to reject pairing edges from unrelated contours.
// Grounded on bbox.c's CheckBBoxes.
func (p *Path) CheckBBoxes(e1, e2 int) bool {
	d1, d2 := p.GetDest(e1), p.GetDest(e2)
	if d1 == d2 {
		return true
	}
	b1 := p.FindSubpathBBox(d1)
	b2 := p.FindSubpathBBox(d2)
	contains := func(a, b BBox) bool {
		return a.XMin <= b.XMin && b.XMax <= a.XMax && a.YMin <= b.YMin && b.YMax <= a.YMax
	}
	return contains(b1, b2) || contains(b2, b1)
}
