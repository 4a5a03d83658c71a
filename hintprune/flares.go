package hintprune

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hinteval"
)

// MaxFlare bounds how far apart two candidate flare segments' locations
// may be. Grounded on ac.c's InitData STARTUP case: gMaxFlare =
// PSDist(10).
var MaxFlare = fixed.FromInt(10)

// isFlare reports whether every element from e to n (exclusive of n,
// walked forward along the subpath) stays within MaxFlare of loc on
// the off-axis coordinate: the two candidate segments bracket a short,
// flat run rather than a real stem. Grounded on auto.c's IsFlare.
func isFlare(p *glyphpath.Path, loc fixed.Int, e, n int, horizontal bool) bool {
	guard := p.Len() + 1
	for e != n {
		x, y := p.EndPoint(e)
		v := x
		if horizontal {
			v = y
		}
		if (v - loc).Abs() > MaxFlare {
			return false
		}
		e = p.SubpathNext(e)
		guard--
		if guard <= 0 {
			return false
		}
	}
	return true
}

// RemoveFlares demotes the weaker of two adjacent, similarly-located
// stem values whose bracketed run is a flare rather than a real stem
// edge: a short serif-like bump that would otherwise compete with the
// real stem for a hint slot. This is a value-list-level simplification
// of auto.c's RemFlares, which instead walks per-element Hs/Vs link
// lists built during generation; this module tracks segment-to-element
// association directly through hintgen.Segment.BBoxElt() instead of
// maintaining that parallel link structure, so it demotes (prunes) a
// losing Value wholesale rather than splicing one link out of a
// shared element (see DESIGN.md). Grounded on auto.c's RemFlares.
func RemoveFlares(p *glyphpath.Path, vals []*hinteval.Value, vert bool) {
	horizontal := !vert

	for i, vi := range vals {
		if vi.Pruned {
			continue
		}
		ei, oki := vi.Seg1.BBoxElt()
		if !oki {
			continue
		}
		for j, vn := range vals {
			if i == j || vn.Pruned {
				continue
			}
			en, okn := vn.Seg1.BBoxElt()
			if !okn || ei == en {
				continue
			}
			if !adjacentInSubpath(p, ei, en) {
				continue
			}
			diff := vi.Seg1.Loc - vn.Seg1.Loc
			if diff.Abs() > MaxFlare {
				continue
			}
			if !isFlare(p, vi.Seg1.Loc, ei, en, horizontal) {
				continue
			}
			if diff == 0 {
				continue
			}
			if CompareValues(vi, vn, SpcBonus, 0) {
				if vn.Spc == 0 && vn.Val < fixed.FromInt(1000) {
					vn.Pruned = true
				}
			} else if vi.Spc == 0 && vi.Val < fixed.FromInt(1000) {
				vi.Pruned = true
			}
		}
	}
}

// SpcBonus is the factor CompareValues uses when weighing a
// flare candidate against its neighbor. Grounded on ac.h's spcBonus.
const SpcBonus = 1000

// adjacentInSubpath reports whether n is reachable forward from e
// within one subpath traversal (bounded by the path length), i.e. e
// precedes n in outline order on the same subpath.
func adjacentInSubpath(p *glyphpath.Path, e, n int) bool {
	guard := p.Len() + 1
	i := e
	for {
		if i == n {
			return true
		}
		i = p.SubpathNext(i)
		guard--
		if guard <= 0 || i == e {
			return false
		}
	}
}
