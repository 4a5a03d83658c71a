package hintsubst

import (
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
	"github.com/appleboy/psautohint/pathedit"
)

// checkHintSegs reports whether elt's axis list (HSegs for vert=false,
// VSegs for vert=true) contains a segment whose best value conflicts
// with any later segment in the same list; when it does, it tries to
// resolve the conflict and, failing that, drops the whole list.
// Grounded on auto.c's CheckHintSegs. A resolved conflict re-runs the
// same check, matching the source's self-recursive retry; either way a
// conflict was found, so the report is true.
func checkHintSegs(path *glyphpath.Path, elt int, vert bool, best map[*hintgen.Segment]*hinteval.Value) bool {
	e := path.At(elt)
	list := segList(e, vert)
	for i := 0; i+1 < len(list); i++ {
		seg := segOf(list[i])
		val := best[seg]
		if val == nil {
			continue
		}
		if testHintLst(list[i+1:], best, []*hinteval.Value{val}, vert) == conflict {
			if tryResolveConflict(path, elt, vert, best) {
				checkHintSegs(path, elt, vert, best)
				return true
			}
			setSegList(e, vert, nil)
			return true
		}
	}
	return false
}

// tryResolveConflict dedups elt's axis list and, if at least two
// segments remain, hands the first pair to pathedit.ResolveConflict
// (the port of auto.c's own conflict-resolution cascade) regardless of
// which pair checkHintSegs actually found conflicting — matching
// TryResolveConflict, which always re-reads the list's head after
// deduping rather than tracking the specific conflicting pair.
func tryResolveConflict(path *glyphpath.Path, elt int, vert bool, best map[*hintgen.Segment]*hinteval.Value) bool {
	e := path.At(elt)
	list := removeDupLinks(segList(e, vert))
	setSegList(e, vert, list)
	if len(list) < 2 {
		return false
	}
	seg1, seg2 := segOf(list[0]), segOf(list[1])
	axis := pathedit.Horizontal
	if vert {
		axis = pathedit.Vertical
	}
	linkA := pathedit.SegLink{Seg: seg1, Val: best[seg1]}
	linkB := pathedit.SegLink{Seg: seg2, Val: best[seg2]}
	return pathedit.ResolveConflict(path, elt, axis, linkA, linkB)
}

// CheckElmntHintSegs walks the whole path resolving, element by
// element, any conflicting candidate segments left over from picking.
// The horizontal list is checked first; the vertical list is only
// checked when the horizontal one had nothing to resolve, matching
// auto.c's CheckElmntHintSegs exactly.
func CheckElmntHintSegs(path *glyphpath.Path, hBest, vBest map[*hintgen.Segment]*hinteval.Value) {
	for e := path.Start(); e != glyphpath.None; e = path.Next(e) {
		if !checkHintSegs(path, e, false, hBest) {
			checkHintSegs(path, e, true, vBest)
		}
	}
}

// hintLstsClash reports whether any segment in lst1 conflicts, on its
// own best value, with anything in lst2. Grounded on auto.c's
// HintLstsClash.
func hintLstsClash(lst1, lst2 []glyphpath.SegRef, best map[*hintgen.Segment]*hinteval.Value, vert bool) bool {
	for _, ref := range lst1 {
		val := best[segOf(ref)]
		if val == nil {
			continue
		}
		if testHintLst(lst2, best, []*hinteval.Value{val}, vert) == conflict {
			return true
		}
	}
	return false
}

// bestFromLsts returns the single highest-scoring segment across lst1
// and lst2 (lst2 examined first, matching the source's iteration
// order), reporting false if neither list has a scored segment.
// Grounded on auto.c's BestFromLsts.
func bestFromLsts(lst1, lst2 []glyphpath.SegRef, best map[*hintgen.Segment]*hinteval.Value) (glyphpath.SegRef, bool) {
	var bst glyphpath.SegRef
	found := false
	var bstVal hinteval.Value
	for _, lst := range [2][]glyphpath.SegRef{lst2, lst1} {
		for _, ref := range lst {
			val := best[segOf(ref)]
			if val != nil && (!found || val.Val > bstVal.Val) {
				bst, bstVal, found = ref, *val, true
			}
		}
	}
	return bst, found
}

// hintsClash checks whether e's and p's lists clash on either axis; if
// one does, both elements' lists on that axis are collapsed down to a
// single best segment (or cleared, if no scored segment survives).
// Grounded on auto.c's HintsClash, called when a short Move subpath
// borrows its hinting context from the element before it.
func hintsClash(path *glyphpath.Path, e, p int, hLst, vLst, phLst, pvLst *[]glyphpath.SegRef, hBest, vBest map[*hintgen.Segment]*hinteval.Value) bool {
	clash := false
	if hintLstsClash(*hLst, *phLst, hBest, false) {
		clash = true
		var newLst []glyphpath.SegRef
		if ref, ok := bestFromLsts(*hLst, *phLst, hBest); ok {
			newLst = []glyphpath.SegRef{ref}
		}
		setSegList(path.At(e), false, newLst)
		setSegList(path.At(p), false, newLst)
		*hLst, *phLst = newLst, newLst
	}
	if hintLstsClash(*vLst, *pvLst, vBest, true) {
		clash = true
		var newLst []glyphpath.SegRef
		if ref, ok := bestFromLsts(*vLst, *pvLst, vBest); ok {
			newLst = []glyphpath.SegRef{ref}
		}
		setSegList(path.At(e), true, newLst)
		setSegList(path.At(p), true, newLst)
		*vLst, *pvLst = newLst, newLst
	}
	return clash
}
