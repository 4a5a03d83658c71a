package hintpick

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/fontinfo"
	"github.com/appleboy/psautohint/hinteval"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hintprune"
)

// sixteenth is the minimum weight a segment's best value needs to be
// worth keeping at all. Grounded on pick.c's FixSixteenth (1/16 in its
// Fixed format).
var sixteenth = fixed.FromFloat64(1.0 / 16.0)

// considerValForSeg reports whether val is an acceptable candidate for
// a segment at loc: always accepted if it carries priority, or if loc
// sits in an alignment zone; otherwise rejected if it's a weak,
// unprioritized value. Serif-band suppression (pick.c's InSerifBand) is
// not implemented: it depends on per-glyph serif-geometry tables this
// module's FontInfo does not model, so that rejection branch is always
// skipped here (see DESIGN.md). Grounded on pick.c's ConsiderValForSeg.
func considerValForSeg(val *hinteval.Value, loc fixed.Int, bands []fontinfo.Band, fuzz fixed.Int) bool {
	if val.Spc > 0 {
		return true
	}
	if fontinfo.InBlueBand(loc, bands, fuzz) {
		return true
	}
	return !ltPruneB(val.Val)
}

// maxMergeDist mirrors merge.c's gMaxMerge (PSDist(2)), reused here as
// pick.c's FndBstVal does to decide whether a value is "at" a segment.
var maxMergeDist = fixed.FromInt(2)

// findBest scans vals for the strongest value bound to seg's side
// (Seg1 when seg1Flg, else Seg2), optionally excluding ghost values.
// A value is "bound to" seg if its own loc on that side is within
// maxMergeDist of seg's loc and its segment pointer is seg itself;
// pick.c additionally accepts path-adjacent segments via CloseSegs,
// which this simplified version omits (see DESIGN.md). Grounded on
// pick.c's FndBstVal.
func findBest(vals []*hinteval.Value, seg *hintgen.Segment, seg1Flg, excludeGhost bool, bands []fontinfo.Band, fuzz fixed.Int) *hinteval.Value {
	var best *hinteval.Value
	for _, v := range vals {
		var vseg *hintgen.Segment
		var vloc fixed.Int
		if seg1Flg {
			vseg, vloc = v.Seg1, v.Loc1
		} else {
			vseg, vloc = v.Seg2, v.Loc2
		}
		if vseg != seg || (seg.Loc-vloc).Abs() > maxMergeDist {
			continue
		}
		if excludeGhost && v.Ghost {
			continue
		}
		better := best == nil ||
			(v.Val == best.Val && v.Spc == best.Spc && v.InitVal > best.InitVal) ||
			hintprune.CompareValues(v, best, hintprune.SpcBonus, 3)
		if better && considerValForSeg(v, seg.Loc, bands, fuzz) {
			best = v
		}
	}
	return best
}

// bestForSeg picks the best value for a segment, preferring a
// non-ghost answer over a ghost one unless the ghost answer is the
// only one available or the non-ghost challenger isn't clearly
// stronger, and dropping answers too weak to matter either way.
// Grounded on pick.c's FindBestValForSeg.
func bestForSeg(vals []*hinteval.Value, seg *hintgen.Segment, seg1Flg bool, bands []fontinfo.Band, fuzz fixed.Int) *hinteval.Value {
	best := findBest(vals, seg, seg1Flg, false, bands, fuzz)
	var ghost *hinteval.Value
	if best != nil && best.Ghost {
		nonGhost := findBest(vals, seg, seg1Flg, true, bands, fuzz)
		if nonGhost != nil && nonGhost.Val >= fixed.Two {
			ghost = best
			best = nonGhost
		}
	}
	if best == nil {
		return nil
	}
	if best.Val < sixteenth && (ghost == nil || ghost.Val < sixteenth) {
		return nil
	}
	return best
}

// BestForSegs precomputes, for every segment that appears as either
// side of some value in vals, the best value bound to it: the
// substitution table Pick's horizontal pass uses in place of a ghost
// pick. Grounded on pick.c's FindBestValForSegs/FindBestHVals (the
// SetPruned/DoPrune bracketing those calls is folded into hintprune's
// own prune pass, not repeated here).
func BestForSegs(vals []*hinteval.Value, fi *fontinfo.FontInfo) map[*hintgen.Segment]*hinteval.Value {
	var botBands, topBands []fontinfo.Band
	fuzz := fixed.Int(0)
	if fi != nil {
		botBands, topBands, fuzz = fi.BotBands, fi.TopBands, fi.BlueFuzz
	}

	out := make(map[*hintgen.Segment]*hinteval.Value)
	seen := make(map[*hintgen.Segment]bool)
	for _, v := range vals {
		if v.Seg2 != nil && !seen[v.Seg2] {
			seen[v.Seg2] = true
			if b := bestForSeg(vals, v.Seg2, false, topBands, fuzz); b != nil {
				out[v.Seg2] = b
			}
		}
		if v.Seg1 != nil && !seen[v.Seg1] {
			seen[v.Seg1] = true
			if b := bestForSeg(vals, v.Seg1, true, botBands, fuzz); b != nil {
				out[v.Seg1] = b
			}
		}
	}
	return out
}
