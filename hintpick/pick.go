// Package hintpick selects a compatible, non-overlapping set of stem
// hints from the candidate values hinteval scores and hintprune
// narrows down. Grounded on pick.c in full.
package hintpick

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/fontinfo"
	"github.com/appleboy/psautohint/hinteval"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hintprune"
)

// Axis selects which of a value's two loc fields pairs with which list
// of segments when picking hints.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// Tuning constants grounded on ac.c's InitData STARTUP case.
var (
	BandMargin = fixed.FromInt(30)
	PruneA     = fixed.FromInt(50)
	PruneB     = hinteval.PruneValue
	PruneC     = fixed.FromInt(100)
	PruneD     = fixed.One
)

// Pair is a selected, non-overlapping stem hint. It is the *hinteval.Value
// that won a round of picking, exposed under its own name since picked
// and merely-candidate values play different roles downstream.
type Pair struct {
	*hinteval.Value
}

// ltPruneB reports whether val is so small PruneB only saves it when
// nothing else is competing. Grounded on pick.c's LtPruneB macro.
func ltPruneB(val fixed.Int) bool {
	return val < fixed.One && int64(val)<<10 < int64(PruneB)
}

// considerPicking reports whether a candidate of the given (spc, val)
// is worth picking at all, given whether anything has been picked yet
// and the value of the last pick. Grounded on pick.c's ConsiderPicking;
// colorList is represented here as the havePicked bool.
func considerPicking(spc, val fixed.Int, havePicked bool, prevBestVal fixed.Int) bool {
	if spc > 0 {
		return true
	}
	if !havePicked {
		return val >= PruneD
	}
	if val > PruneA {
		return true
	}
	if ltPruneB(val) {
		return false
	}
	const limit = int64(1) << 40
	if int64(val)*int64(PruneC)/int64(fixed.One) < limit {
		return int64(prevBestVal) <= int64(val)*int64(PruneC)/int64(fixed.One)
	}
	return int64(prevBestVal)*int64(fixed.One)/int64(PruneC) <= int64(val)
}

// loSpan returns a value's loc range regardless of which axis
// convention (Loc1<Loc2 for vertical, Loc1>Loc2 for horizontal) put the
// larger coordinate first.
func loSpan(v *hinteval.Value) (lo, hi fixed.Int) {
	if v.Loc1 <= v.Loc2 {
		return v.Loc1, v.Loc2
	}
	return v.Loc2, v.Loc1
}

// collapsedSpan is loSpan with a ghost pair's width collapsed to zero,
// anchored at its non-ghost segment's loc, matching pick.c's "ghost
// bands are given 0 width" adjustment in PickHVals.
func collapsedSpan(v *hinteval.Value) (lo, hi fixed.Int) {
	lo, hi = loSpan(v)
	if !v.Ghost {
		return lo, hi
	}
	if v.Seg1.Type == hintgen.Ghost {
		return hi, hi
	}
	return lo, lo
}

// pick runs the greedy selection loop shared by the vertical and
// horizontal axes: repeatedly take the best remaining candidate whose
// span, expanded by BandMargin, doesn't overlap any already-picked
// span, until no candidate clears considerPicking. Grounded on pick.c's
// PickVVals/PickHVals.
func pick(vals []*hinteval.Value, substitute func(best *hinteval.Value, remaining []*hinteval.Value) *hinteval.Value) []Pair {
	remaining := make([]*hinteval.Value, len(vals))
	copy(remaining, vals)

	var picked []Pair
	var prevBestVal fixed.Int
	for {
		var best *hinteval.Value
		var bestVal fixed.Int
		for _, cand := range remaining {
			if (best == nil || hintprune.CompareValues(cand, best, hintprune.SpcBonus, 0)) &&
				considerPicking(cand.Spc, cand.Val, len(picked) > 0, prevBestVal) {
				best = cand
				bestVal = cand.Val
			}
		}
		if best == nil {
			break
		}
		if substitute != nil {
			if sub := substitute(best, remaining); sub != nil {
				best = sub
			}
		}
		prevBestVal = bestVal
		picked = append(picked, Pair{best})

		lo, hi := collapsedSpan(best)
		lo -= BandMargin
		hi += BandMargin
		var next []*hinteval.Value
		for _, cand := range remaining {
			if cand == best {
				continue
			}
			clo, chi := collapsedSpan(cand)
			if clo <= hi && chi >= lo {
				continue // overlaps the picked band, reject
			}
			next = append(next, cand)
		}
		remaining = next
	}
	return picked
}

// Pick greedily selects a compatible, non-overlapping set of stem
// hints from vals, preferring higher priority (Spc) then higher weight
// (Val), per the shared CompareValues comparator. For the horizontal
// axis, a picked value sitting on a ghost segment is substituted for
// the best real value FindBestHVals precomputed for that segment, when
// one exists and still survives in the candidate set (pick.c's sLnk
// substitution, here BestForSeg). Grounded on pick.c's
// PickVVals/PickHVals.
func Pick(vals []*hinteval.Value, axis Axis, fi *fontinfo.FontInfo) []Pair {
	if axis == Vertical {
		return pick(vals, nil)
	}

	best := BestForSegs(vals, fi)
	// Mirror pick.c's PickHVals exactly: whichever side is the ghost
	// segment, the substitute candidate is looked up via Seg2's
	// precomputed best (the source reads seg2->sLnk in both branches).
	substitute := func(b *hinteval.Value, remaining []*hinteval.Value) *hinteval.Value {
		ghost := (b.Seg1 != nil && b.Seg1.Type == hintgen.Ghost) ||
			(b.Seg2 != nil && b.Seg2.Type == hintgen.Ghost)
		if !ghost || b.Seg2 == nil {
			return nil
		}
		sub, ok := best[b.Seg2]
		if !ok || sub == b {
			return nil
		}
		for _, cand := range remaining {
			if cand == sub {
				return sub
			}
		}
		return nil
	}
	return pick(vals, substitute)
}
