package hintpick

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
)

// bboxFallbackVal is the fixed weight AddBBoxHV assigns its synthetic
// pair: not competitive against any real stem, just present as a last
// resort. Grounded on bbox.c's AddBBoxHV (vVal = 100).
const bboxFallbackVal = fixed.Int(100)

// overlaps reports whether [lo, hi] overlaps any already-picked pair's
// span on the given axis, matching bbox.c's CheckValOverlaps.
func overlaps(lo, hi fixed.Int, picks []Pair) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, p := range picks {
		plo, phi := loSpan(p.Value)
		if plo <= hi && lo <= phi {
			return true
		}
	}
	return false
}

// AddBBoxFallback installs a whole-path or per-subpath bounding-box
// edge pair as a last-resort hint when nothing survived picking on
// this axis, skipping if an already-picked pair already covers that
// span. Grounded on bbox.c's AddBBoxHV. It returns the fallback pairs
// installed (one per subpath when perSubpath is true, else at most
// one), which the caller should append to its picked set.
func AddBBoxFallback(p *glyphpath.Path, axis Axis, perSubpath bool, existing []Pair) []Pair {
	var out []Pair
	subpaths := []int{p.Start()}
	if perSubpath {
		subpaths = subpathStarts(p)
	}

	for _, start := range subpaths {
		var box glyphpath.BBox
		var elts glyphpath.BBoxElts
		if perSubpath {
			box, elts = p.FindSubpathBBoxElts(start)
		} else {
			box, elts = p.FindPathBBoxElts()
		}

		if axis == Vertical {
			if overlaps(box.XMin, box.XMax, existing) || overlaps(box.XMin, box.XMax, out) {
				continue
			}
			seg1 := &hintgen.Segment{Loc: box.XMin, Elt: elts.XMin, HasElt: true, Type: hintgen.Line, Min: box.YMin, Max: box.YMax}
			seg2 := &hintgen.Segment{Loc: box.XMax, Elt: elts.XMax, HasElt: true, Type: hintgen.Line, Min: box.YMin, Max: box.YMax}
			out = append(out, Pair{&hinteval.Value{
				Loc1: box.XMin, Loc2: box.XMax, Val: bboxFallbackVal,
				Seg1: seg1, Seg2: seg2,
			}})
		} else {
			if overlaps(box.YMin, box.YMax, existing) || overlaps(box.YMin, box.YMax, out) {
				continue
			}
			seg1 := &hintgen.Segment{Loc: box.YMax, Elt: elts.YMax, HasElt: true, Type: hintgen.Line, Min: box.XMin, Max: box.XMax}
			seg2 := &hintgen.Segment{Loc: box.YMin, Elt: elts.YMin, HasElt: true, Type: hintgen.Line, Min: box.XMin, Max: box.XMax}
			out = append(out, Pair{&hinteval.Value{
				// bot is > top because of the font's descending-y internal
				// convention the rest of this package's H values follow.
				Loc1: box.YMax, Loc2: box.YMin, Val: bboxFallbackVal,
				Seg1: seg1, Seg2: seg2,
			}})
		}
		if !perSubpath {
			break
		}
	}
	return out
}

// subpathStarts returns the Move element starting each subpath.
func subpathStarts(p *glyphpath.Path) []int {
	var starts []int
	for _, sp := range p.Subpaths() {
		starts = append(starts, sp.Start)
	}
	return starts
}
