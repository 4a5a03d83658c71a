package hintsubst

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
	"github.com/appleboy/psautohint/hintpick"
)

// findClosestVal returns the candidate in list whose span contains
// loc, or failing that the candidate whose span is nearest to loc.
// Grounded on auto.c's FindClosestVal.
func findClosestVal(list []*hinteval.Value, loc fixed.Int) *hinteval.Value {
	var best *hinteval.Value
	dist := fixed.FromInt(10000)
	for _, v := range list {
		bot, top := v.Loc1, v.Loc2
		if bot > top {
			bot, top = top, bot
		}
		if loc >= bot && loc <= top {
			return v
		}
		var d fixed.Int
		if loc < bot {
			d = bot - loc
		} else {
			d = loc - top
		}
		if d < dist {
			dist, best = d, v
		}
	}
	return best
}

// appendPoint emits v as a HintPoint tagged code into the current
// bucket. It prefers v.Best (the value hintprune's merge pass decided
// should stand in for v's bounding segments, eval.c's vBst) over v
// itself when choosing which segments' elements to record. Grounded on
// control.c's AddHPair/AddVPair, minus their bez-emission ghost-width
// sentinel encoding (-20/-21), which is an artifact of that text
// format and out of scope here: Ghost is carried as a plain flag
// instead.
func (pl *Planner) appendPoint(code byte, v *hinteval.Value) {
	loc1, loc2 := v.Loc1, v.Loc2
	best := v.Best
	if best == nil {
		best = v
	}
	elt1, elt2 := glyphpath.None, glyphpath.None
	if best.Seg1 != nil {
		if i, ok := best.Seg1.BBoxElt(); ok {
			elt1 = i
		}
	}
	if best.Seg2 != nil {
		if i, ok := best.Seg2.BBoxElt(); ok {
			elt2 = i
		}
	}
	if loc2 < loc1 {
		loc1, loc2 = loc2, loc1
		elt1, elt2 = elt2, elt1
	}
	if v.Ghost {
		if v.Seg1 != nil && v.Seg1.Type == hintgen.Ghost {
			loc1, elt2 = loc2, glyphpath.None
		} else {
			loc2, elt1 = loc1, glyphpath.None
		}
	}
	pt := HintPoint{Code: code, Loc1: loc1, Loc2: loc2, Elt1: elt1, Elt2: elt2, Ghost: v.Ghost}
	pl.sets[pl.currentBucket] = append(pl.sets[pl.currentBucket], pt)
}

// cpyHint installs the primary-list candidate closest to e's own
// coordinate as a single emitted point, without adding it to the
// active list. Grounded on auto.c's CpyHHint/CpyVHint.
func (pl *Planner) cpyHint(path *glyphpath.Path, e int, candidates []*hinteval.Value, vert bool) {
	x, y := path.EndPoint(e)
	loc, code := y, byte('b')
	if vert {
		loc, code = x, 'y'
	}
	if best := findClosestVal(candidates, loc); best != nil {
		pl.appendPoint(code, best)
	}
}

// hCode and vCode are the codes used when seeding the main hint set
// (bucket 0) from the picked primary values: 'v'/'m' when that axis is
// forced to rely solely on its main hints, 'b'/'y' otherwise. Grounded
// on control.c's AddHPair(sLst, gUseH ? 'v' : 'b')-style seeding of the
// glyph's initial color list.
func (pl *Planner) hCode() byte {
	if pl.UseH {
		return 'v'
	}
	return 'b'
}

func (pl *Planner) vCode() byte {
	if pl.UseV {
		return 'm'
	}
	return 'y'
}

// addHHinting adds v to the active horizontal hint list and emits it,
// unless it's already active. Emission always uses 'b': AutoHSeg in
// the source never branches on gUseH, only SetHHints's caller guards
// the forced-axis case. Grounded on auto.c's AddHHinting/AutoHSeg.
func (pl *Planner) addHHinting(v *hinteval.Value) {
	if pl.UseH || containsVal(pl.hActive, v) {
		return
	}
	pl.hActive = append(pl.hActive, v)
	pl.appendPoint('b', v)
}

func (pl *Planner) addVHinting(v *hinteval.Value) {
	if pl.UseV || containsVal(pl.vActive, v) {
		return
	}
	pl.vActive = append(pl.vActive, v)
	pl.appendPoint('y', v)
}

// addHintLst resolves each segment reference in list to its
// best-scoring value and installs it via addHHinting/addVHinting.
// Grounded on auto.c's AddHintLst.
func (pl *Planner) addHintLst(list []glyphpath.SegRef, vert bool, best map[*hintgen.Segment]*hinteval.Value) {
	for _, ref := range list {
		v := best[segOf(ref)]
		if v == nil {
			continue
		}
		if vert {
			pl.addVHinting(v)
		} else {
			pl.addHHinting(v)
		}
	}
}

// addIfNeed installs list on the given axis only when the axis isn't
// forced to its main hints and cnt reports "addable" (1). Grounded on
// auto.c's AddIfNeedH/AddIfNeedV macros.
func (pl *Planner) addIfNeed(cnt int, list []glyphpath.SegRef, vert bool, best map[*hintgen.Segment]*hinteval.Value) {
	use := pl.UseH
	if vert {
		use = pl.UseV
	}
	if !use && cnt == addable {
		pl.addHintLst(list, vert, best)
	}
}

// setHHints replaces the active horizontal list outright, emitting
// every value in it. Grounded on auto.c's SetHHints.
func (pl *Planner) setHHints(list []*hinteval.Value) {
	if pl.UseH {
		return
	}
	pl.hActive = list
	for _, v := range list {
		pl.appendPoint('b', v)
	}
}

func (pl *Planner) setVHints(list []*hinteval.Value) {
	if pl.UseV {
		return
	}
	pl.vActive = list
	for _, v := range list {
		pl.appendPoint('y', v)
	}
}

// copyMain copies bucket 0's code-tagged points forward into the
// bucket that's just been opened, so a glyph's forced-main axis stays
// represented in every hint set. Grounded on control.c's
// CopyMainH/CopyMainV (via CopyClrFromLst).
func (pl *Planner) copyMain(code byte) {
	for _, pt := range pl.sets[0] {
		if pt.Code == code {
			pl.sets[pl.currentBucket] = append(pl.sets[pl.currentBucket], pt)
		}
	}
}

// mergeFromMain copies bucket 0's code-tagged points into the bucket
// that's about to close out, without duplicating a point already
// there. The literal body of auto.c's MergeFromMainHints isn't present
// in the retrieved source (only its ac.h declaration and call sites
// survive); this reconstructs its evident purpose from those call
// sites and from CopyClrFromLst's sibling logic: for glyphs with few
// enough subpaths (mergeMain), every hint-set boundary also folds the
// glyph's primary hints back in, so short, simple glyphs never drift
// far from their main hinting.
func (pl *Planner) mergeFromMain(code byte) {
	if pl.currentBucket == 0 {
		return
	}
	seen := make(map[[2]fixed.Int]bool)
	for _, pt := range pl.sets[pl.currentBucket] {
		if pt.Code == code {
			seen[[2]fixed.Int{pt.Loc1, pt.Loc2}] = true
		}
	}
	for _, pt := range pl.sets[0] {
		if pt.Code != code {
			continue
		}
		key := [2]fixed.Int{pt.Loc1, pt.Loc2}
		if seen[key] {
			continue
		}
		seen[key] = true
		pl.sets[pl.currentBucket] = append(pl.sets[pl.currentBucket], pt)
	}
}

// carryIfNeed looks for a previously active value, now dropped, whose
// span (expanded by half the band margin, capped at 20 units) still
// brackets loc, and re-adds the first one that would test as addable
// against the new active list. Grounded on auto.c's CarryIfNeed.
func (pl *Planner) carryIfNeed(loc fixed.Int, vert bool, prev []*hinteval.Value, best map[*hintgen.Segment]*hinteval.Value) {
	if (vert && pl.UseV) || (!vert && pl.UseH) {
		return
	}
	half := hintMarginFor()
	active := &pl.hActive
	add := pl.addHHinting
	if vert {
		active = &pl.vActive
		add = pl.addVHinting
	}
	for _, h := range prev {
		seg := h.Seg1
		if h.Ghost && seg != nil && seg.Type == hintgen.Ghost {
			seg = h.Seg2
		}
		if seg == nil {
			continue
		}
		lo, hi := h.Loc1, h.Loc2
		if lo > hi {
			lo, hi = hi, lo
		}
		lo -= half
		hi += half
		if loc <= lo || loc >= hi {
			continue
		}
		saved := best[seg]
		best[seg] = h
		ok := testHint(seg, best, *active, vert) == addable
		best[seg] = saved
		if ok {
			add(h)
			break
		}
	}
}

func hintMarginFor() fixed.Int {
	half := hintpick.BandMargin / 2
	cap20 := fixed.FromInt(20)
	if half > cap20 {
		return cap20
	}
	return half
}
