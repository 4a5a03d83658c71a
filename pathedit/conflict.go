package pathedit

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
)

// Axis selects which of an element's two endpoint coordinates a
// conflict check measures against: Vertical uses x, Horizontal uses y.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// SegLink pairs a candidate segment with the scored value that was
// chosen for it, the unit ResolveConflict and ResolveConflictBySplit
// operate on. Grounded on auto.c's SegLnkLst/HintSeg/HintVal trio,
// flattened into one struct since this port has no separate SegLnkLst
// allocation.
type SegLink struct {
	Seg *hintgen.Segment
	Val *hinteval.Value
}

func axisLoc(axis Axis, x, y fixed.Int) fixed.Int {
	if axis == Horizontal {
		return y
	}
	return x
}

// okToRemLnk reports whether dropping a link at loc is safe. Grounded
// on auto.c's OkToRemLnk macro, simplified: the source also spares a
// horizontal link sitting in an alignment-zone band from removal
// (InBlueBand against gTopBands/gBotBands), which needs font metrics
// ResolveConflict's signature doesn't carry; this port keeps the axis
// and spc checks and drops the band carve-out (see DESIGN.md).
func okToRemLnk(axis Axis, spc fixed.Int) bool {
	return axis != Horizontal || spc == 0
}

// removeElementLink deletes the SegRef in e's per-axis list (HSegs for
// Horizontal, VSegs for Vertical) whose Seg matches seg.
func removeElementLink(e *glyphpath.Element, axis Axis, seg *hintgen.Segment) {
	list := &e.VSegs
	if axis == Horizontal {
		list = &e.HSegs
	}
	out := (*list)[:0]
	for _, ref := range *list {
		if s, ok := ref.Seg.(*hintgen.Segment); ok && s == seg {
			continue
		}
		out = append(out, ref)
	}
	*list = out
}

// ResolveConflict decides which of an element's two conflicting hint
// links to keep, following the same cascade of heuristics pick.c's
// caller (auto.c's CheckHintSegs) applies before ever resorting to a
// curve split: drop the weaker of two low-value links, drop a link
// that isn't tangent to the element's own direction, drop a link whose
// removal keeps the subpath's bend consistent with its neighbors, and
// finally prefer the link that matches the chosen value's own
// endpoints. Removes the losing link from elt's axis list and reports
// whether a link was removed. Grounded on auto.c's TryResolveConflict
// (the RemDupLnks prefiltering step is the caller's responsibility,
// matching the list already being deduplicated by the time it reaches
// here).
func ResolveConflict(path *glyphpath.Path, elt int, axis Axis, linkA, linkB SegLink) bool {
	e := path.At(elt)
	var x0, y0, x1, y1 fixed.Int
	switch e.Kind {
	case glyphpath.Move:
		x0, y0, x1, y1 = path.EndPoints(path.GetClosedBy(elt))
	case glyphpath.Curve:
		x0, y0, x1, y1 = e.X1, e.Y1, e.X3, e.Y3
	default:
		x0, y0, x1, y1 = path.EndPoints(elt)
	}
	loc1 := axisLoc(axis, x0, y0)
	loc2 := axisLoc(axis, x1, y1)

	a, b := linkA, linkB
	lc1, lc2 := a.Seg.Loc, b.Seg.Loc
	switch {
	case lc1 == loc1 || lc2 == loc2:
		// already aligned, keep as is
	case (lc1 - loc1).Abs() > (lc1-loc2).Abs() || (lc2-loc2).Abs() > (lc2-loc1).Abs():
		a, b = b, a
	}

	val1, val2 := a.Val, b.Val
	fifty := fixed.FromInt(50)
	if val1.Val < fifty && okToRemLnk(axis, val1.Spc) {
		removeElementLink(e, axis, a.Seg)
		return true
	}
	if val2.Val < fifty && val1.Val > val2.Val*20 && okToRemLnk(axis, val2.Spc) {
		removeElementLink(e, axis, b.Seg)
		return true
	}

	tangent := hintgen.VertQuo(x0, y0, x1, y1) > 0
	if axis == Horizontal {
		tangent = hintgen.HorizQuo(x0, y0, x1, y1) > 0
	}
	if e.Kind != glyphpath.Curve || (tangent && okToRemLnk(axis, val1.Spc)) {
		removeElementLink(e, axis, a.Seg)
		return true
	}

	px0, py0, _, _ := path.EndPoints(path.SubpathPrev(elt))
	loc0 := axisLoc(axis, px0, py0)
	if prodLt0(loc2-loc1, loc0-loc1) {
		removeElementLink(e, axis, a.Seg)
		return true
	}

	nx1, ny1 := path.EndPoint(path.SubpathNext(elt))
	loc3 := axisLoc(axis, nx1, ny1)
	if prodLt0(loc3-loc2, loc1-loc2) {
		removeElementLink(e, axis, b.Seg)
		return true
	}

	if (loc2 == val2.Loc1 || loc2 == val2.Loc2) && loc1 != val1.Loc1 && loc1 != val1.Loc2 {
		removeElementLink(e, axis, a.Seg)
		return true
	}
	if (loc1 == val1.Loc1 || loc1 == val1.Loc2) && loc2 != val2.Loc1 && loc2 != val2.Loc2 {
		removeElementLink(e, axis, b.Seg)
		return true
	}

	return ResolveConflictBySplit(path, elt, axis, linkA, linkB)
}

func prodLt0(f0, f1 fixed.Int) bool {
	return (f0 < 0 && f1 > 0) || (f0 > 0 && f1 < 0)
}

// ResolveConflictBySplit splits a curve element in two by de Casteljau
// bisection, so linkA's segment can hint the first half and linkB's
// the second. Fails silently (returns false) when elt isn't a plain
// curve, or is a flex curve: splitting a flex candidate would corrupt
// the flex pairing. Grounded on auto.c's ResolveConflictBySplit.
func ResolveConflictBySplit(path *glyphpath.Path, elt int, axis Axis, linkA, linkB SegLink) bool {
	e := path.At(elt)
	if e.Kind != glyphpath.Curve || e.IsFlex {
		return false
	}

	x0, y0 := path.EndPoint(path.Prev(elt))
	x1, y1, x2, y2, x3, y3 := e.X1, e.Y1, e.X2, e.Y2, e.X3, e.Y3

	mid := func(a, b fixed.Int) fixed.Int { return (a + b) / 2 }
	ax1, ay1 := mid(x0, x1), mid(y0, y1)
	axy := mid(x1, x2)
	ayy := mid(y1, y2)
	bx2, by2 := mid(x2, x3), mid(y2, y3)
	ax2, ay2 := mid(ax1, axy), mid(ay1, ayy)
	bx1, by1 := mid(axy, bx2), mid(ayy, by2)
	midX, midY := mid(ax2, bx1), mid(ay2, by1)

	e.X1, e.Y1 = ax1, ay1
	e.X2, e.Y2 = ax2, ay2
	e.X3, e.Y3 = midX, midY

	newIdx := path.InsertCurveAfter(elt, bx1, by1, bx2, by2, x3, y3)
	newE := path.At(newIdx)

	// A link with no segment (the path-editing pass calling this
	// before any hints exist yet) just clears the list, matching the
	// source passing NULL lnk1/lnk2 to reset e->Hs/e->Vs.
	linkList := func(l SegLink) []glyphpath.SegRef {
		if l.Seg == nil {
			return nil
		}
		return []glyphpath.SegRef{{Seg: l.Seg}}
	}
	if axis == Horizontal {
		e.HSegs = linkList(linkA)
		newE.HSegs = linkList(linkB)
	} else {
		e.VSegs = linkList(linkA)
		newE.VSegs = linkList(linkB)
	}
	return true
}
