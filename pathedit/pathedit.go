// Package pathedit performs the structural cleanup and local shape
// edits that must happen to a glyph outline before (and sometimes
// during) hinting: trimming malformed trailing elements, collapsing
// degenerate double-closepaths, detecting flex candidates, splitting
// S-curves, and resolving conflicting hint assignments once hints
// exist. Grounded on misc.c and check.c in full, plus auto.c's
// conflict-resolution cascade.
package pathedit

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
)

// PreCheck trims the path into a shape CheckForHint structural
// validation can accept: trailing Move elements with nothing after
// them are deleted, and a Close immediately followed by another Close
// (a degenerate empty subpath) is collapsed. Reports whether any edit
// was made. Grounded on misc.c's PreCheckForHinting.
func PreCheck(path *glyphpath.Path) bool {
	changed := false

	for path.End() != glyphpath.None && path.At(path.End()).Kind == glyphpath.Move {
		path.Delete(path.End())
		changed = true
	}

	for i := path.Start(); i != glyphpath.None; {
		e := path.At(i)
		if e.Kind != glyphpath.Close {
			i = path.Next(i)
			continue
		}
		if i == path.End() {
			break
		}
		next := path.Next(i)
		switch path.At(next).Kind {
		case glyphpath.Move:
			i = next
		case glyphpath.Close:
			path.Delete(next)
			changed = true
			// re-examine i; its next has changed
		default:
			i = path.Next(i)
		}
	}

	return changed
}

// ValidStructure reports whether the path is a well-formed sequence of
// Move...Close subpaths: every subpath starts with a Move and has a
// matching Close, with nothing else interleaved at the top level.
// Grounded on misc.c's static CheckForHint.
func ValidStructure(path *glyphpath.Path) bool {
	i := path.Start()
	for i != glyphpath.None {
		if path.At(i).Kind != glyphpath.Move {
			return false
		}
		closedBy := path.GetClosedBy(i)
		if path.At(closedBy).Kind != glyphpath.Close {
			return false
		}
		i = path.Next(closedBy)
	}
	return true
}

// LinearCurveToLine replaces a Curve element whose control points lie
// on the straight line between its endpoints with an equivalent Line,
// a simplification the hint generator's segment classification (and
// the flex detector's linearity test) already assume is available.
// Grounded on the exact-collinearity idiom shared by misc.c's
// AddAutoFlexProp and gen.c's VertQuo/HorizQuo==One handling,
// generalized here to an arbitrary direction via fixed.MakeColinear.
func LinearCurveToLine(path *glyphpath.Path, elt int) bool {
	e := path.At(elt)
	if e.Kind != glyphpath.Curve {
		return false
	}
	x0, y0 := path.EndPoint(path.Prev(elt))
	x1, y1 := e.X3, e.Y3
	const tol = fixed.Int(2)
	for _, cp := range [][2]fixed.Int{{e.X1, e.Y1}, {e.X2, e.Y2}} {
		sx, sy := fixed.MakeColinear(cp[0], cp[1], x0, y0, x1, y1)
		if (sx-cp[0]).Abs() > tol || (sy-cp[1]).Abs() > tol {
			return false
		}
	}
	e.Kind = glyphpath.Line
	e.X, e.Y = x1, y1
	e.X1, e.Y1, e.X2, e.Y2, e.X3, e.Y3 = 0, 0, 0, 0, 0, 0
	return true
}

// CheckForDuplicateSubpaths reports whether two subpaths occupy the
// same footprint: same element count and, walking in lockstep from
// each Move, identical coordinates throughout. Such a pair is either
// an authoring mistake (a glyph with a subpath pasted twice) or a
// deliberate overlap the rest of the pipeline can't hint sensibly, so
// the caller is expected to drop one and log the overlap point.
// Grounded on spec.md's description of the source's duplicate-subpath
// guard in its glyph-validation pass (no single named function in
// check.c corresponds 1:1; this follows the same "compare subpaths
// elementwise" approach check.c's CheckForDups takes for duplicate
// *hint*, not path, detection).
func CheckForDuplicateSubpaths(path *glyphpath.Path) (dup bool, at fixed.Point) {
	subs := path.Subpaths()
	for i := 0; i < len(subs); i++ {
		for j := i + 1; j < len(subs); j++ {
			if same, pt := subpathsIdentical(path, subs[i], subs[j]); same {
				return true, pt
			}
		}
	}
	return false, fixed.Point{}
}

func coordsEqual(ea, eb *glyphpath.Element) bool {
	return ea.X == eb.X && ea.Y == eb.Y &&
		ea.X1 == eb.X1 && ea.Y1 == eb.Y1 &&
		ea.X2 == eb.X2 && ea.Y2 == eb.Y2 &&
		ea.X3 == eb.X3 && ea.Y3 == eb.Y3
}

func subpathsIdentical(path *glyphpath.Path, a, b glyphpath.Subpath) (bool, fixed.Point) {
	ai, bi := a.Start, b.Start
	for {
		ea, eb := path.At(ai), path.At(bi)
		if ea.Kind != eb.Kind || !coordsEqual(ea, eb) {
			return false, fixed.Point{}
		}
		if ai == a.End {
			break
		}
		ai, bi = path.Next(ai), path.Next(bi)
		if bi == glyphpath.None {
			return false, fixed.Point{}
		}
	}
	if bi != b.End {
		return false, fixed.Point{}
	}
	x, y := path.EndPoint(a.Start)
	return true, fixed.Point{X: x, Y: y}
}

// CheckPathBBoxSanity reports whether the path's bounding box is
// plausible: non-empty (the path isn't a single degenerate point) and
// no wider or taller than a generously large glyph, 16384 units on a
// side. A glyph failing this check is almost certainly the result of
// a coordinate overflow or a parser desync upstream, not a legitimate
// (if unusual) design. Grounded on bbox.c's FindPathBBox, used as a
// final sanity gate the way control.c guards against garbage paths
// before committing CPU to hinting them.
func CheckPathBBoxSanity(path *glyphpath.Path) bool {
	box := path.FindPathBBox()
	if box.XMin >= box.XMax || box.YMin >= box.YMax {
		return false
	}
	maxSpan := fixed.FromInt(16384)
	return box.XMax-box.XMin <= maxSpan && box.YMax-box.YMin <= maxSpan
}
