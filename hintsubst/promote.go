package hintsubst

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
)

// minHintElementLength is the chord length below which RemShortHints
// strips an element's candidate lists rather than let it drive a hint
// substitution decision. Grounded on ac.c's InitData STARTUP case:
// gMinHintElementLength = PSDist(12).
var minHintElementLength = fixed.FromInt(12)

// prodist bounds how far ProHints will walk an element's hint list
// backward over empty predecessors. Grounded on auto.c's PRODIST.
var prodist = fixed.FromInt(100)

// proHints copies elt's axis list backward over any immediately
// preceding elements that have no list of their own on that axis and
// whose own coordinate on that axis stays within prodist of loc,
// stopping at the first predecessor that already has a list. Grounded
// on auto.c's ProHints. The loop-guard (capped at path length) is not
// present in the source, which relies on GetSubPathPrv always
// terminating at a MOVETO; it is added here as a defensive backstop
// consistent with this port's other bounded walks (e.g. GetDest).
func proHints(path *glyphpath.Path, elt int, vert bool, loc fixed.Int) {
	e := path.At(elt)
	lst := segList(e, vert)
	if lst == nil {
		return
	}
	if (vert && e.VCopy) || (!vert && e.HCopy) {
		return
	}
	prv := elt
	for guard := path.Len() + 1; guard > 0; guard-- {
		prv = path.SubpathPrev(prv)
		pe := path.At(prv)
		if segList(pe, vert) != nil {
			return
		}
		cx, cy := path.EndPoint(prv)
		d := cy - loc
		if vert {
			d = cx - loc
		}
		if d.Abs() > prodist {
			return
		}
		setSegList(pe, vert, lst)
		if vert {
			pe.VCopy = true
		} else {
			pe.HCopy = true
		}
	}
}

// promoteHints runs proHints for both axes at every element. Grounded
// on auto.c's PromoteHints.
func promoteHints(path *glyphpath.Path) {
	for e := path.Start(); e != glyphpath.None; e = path.Next(e) {
		x, y := path.EndPoint(e)
		proHints(path, e, false, y)
		proHints(path, e, true, x)
	}
}

// remPromotedHints undoes promoteHints's borrowed lists once
// CheckElmntHintSegs and the testing pass are done with them.
// Grounded on auto.c's RemPromotedHints.
func remPromotedHints(path *glyphpath.Path) {
	for e := path.Start(); e != glyphpath.None; e = path.Next(e) {
		el := path.At(e)
		if el.HCopy {
			el.HSegs = nil
			el.HCopy = false
		}
		if el.VCopy {
			el.VSegs = nil
			el.VCopy = false
		}
	}
}

// remShortHints strips both axis lists from any element whose chord
// from the previous element is shorter than minHintElementLength on
// both axes: an element that short must not drive a hint-set change.
// Grounded on auto.c's RemShortHints, including its quirk of measuring
// the very first element's chord from the origin rather than skipping
// it.
func remShortHints(path *glyphpath.Path) {
	var cx, cy fixed.Int
	for e := path.Start(); e != glyphpath.None; e = path.Next(e) {
		ex, ey := path.EndPoint(e)
		if (cx-ex).Abs() < minHintElementLength && (cy-ey).Abs() < minHintElementLength {
			el := path.At(e)
			el.HSegs = nil
			el.VSegs = nil
		}
		cx, cy = ex, ey
	}
}
