// Package hintprune filters and merges the candidate stem values
// hinteval produces: discarding values a stronger overlapping value
// makes redundant, merging near-duplicate stem edges, and removing
// flares (spurious hints at a brief serif-like bump). Grounded on
// merge.c and auto.c's RemFlares/CompareValues.
package hintprune

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
)

// closeMargin widens the band a close-elements walk tests against.
// Grounded on merge.c's CLSMRG = PSDist(20).
var closeMargin = fixed.FromInt(20)

// closeElements reports whether the path can be walked from e1 to e2,
// forward along the subpath, without any element's relevant-axis
// endpoint straying outside [loc1, loc2] (expanded by closeMargin).
// Grounded on merge.c's CloseElements.
func closeElements(p *glyphpath.Path, e1, e2 int, loc1, loc2 fixed.Int, vert bool) bool {
	if e1 == e2 {
		return true
	}
	if loc1 < loc2 {
		if loc2-loc1 > 5*closeMargin {
			return false
		}
		loc1 -= closeMargin
		loc2 += closeMargin
	} else {
		if loc1-loc2 > 5*closeMargin {
			return false
		}
		loc1, loc2 = loc2-closeMargin, loc1+closeMargin
	}

	e := e1
	guard := p.Len() + 1
	for {
		if e == e2 {
			return true
		}
		x, y := p.EndPoint(e)
		v := y
		if vert {
			v = x
		}
		if v > loc2 || v < loc1 {
			return false
		}
		if p.At(e).Kind == glyphpath.Close {
			e = p.GetDest(e)
		} else {
			e = p.Next(e)
		}
		if e == glyphpath.None || e == e1 {
			return false
		}
		guard--
		if guard <= 0 {
			return false
		}
	}
}

// CloseSegs reports whether the path elements behind s1 and s2 are
// "close" in outline order — walkable from either end to the other
// without leaving the band their locations define. Grounded on merge.c's
// CloseSegs.
func CloseSegs(p *glyphpath.Path, s1, s2 *hintgen.Segment, vert bool) bool {
	if s1 == nil || s2 == nil {
		return false
	}
	if s1 == s2 {
		return true
	}
	e1, ok1 := s1.BBoxElt()
	e2, ok2 := s2.BBoxElt()
	if !ok1 || !ok2 {
		return true
	}
	return closeElements(p, e1, e2, s1.Loc, s2.Loc, vert) ||
		closeElements(p, e2, e1, s2.Loc, s1.Loc, vert)
}
