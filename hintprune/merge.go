package hintprune

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/fontinfo"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
)

// maxMerge/maxBendMerge bound how far two stem edges may drift and
// still be considered the same stem. Grounded on ac.c's InitData
// STARTUP case: gMaxMerge = PSDist(2), gMaxBendMerge = PSDist(6).
var (
	MaxMerge     = fixed.FromInt(2)
	MaxBendMerge = fixed.FromInt(6)
)

// findBestVals groups values sharing the same (Loc1, Loc2) pair and
// points every member's Best at whichever has the highest (Spc, Val)
// in the group. Grounded on merge.c's FindBestVals.
func findBestVals(vals []*hinteval.Value) {
	for i, vL := range vals {
		if vL.Best != nil {
			continue
		}
		bV, bS := vL.Val, vL.Spc
		bstV := vL
		b, t := vL.Loc1, vL.Loc2
		vPrv := vL
		for _, vL2 := range vals[i+1:] {
			if vL2.Best != nil || vL2.Loc1 != b || vL2.Loc2 != t {
				continue
			}
			if (vL2.Spc == bS && vL2.Val > bV) || vL2.Spc > bS {
				bS, bV, bstV = vL2.Spc, vL2.Val, vL2
			}
			vL2.Best = vPrv
			vPrv = vL2
		}
		for vPrv != nil {
			next := vPrv.Best
			vPrv.Best = bstV
			vPrv = next
		}
	}
}

// replaceVals retargets every un-merged value at the old (oldB, oldT)
// pair onto the new pair, adopting newBest's weight and priority.
// Grounded on merge.c's ReplaceVals.
func replaceVals(vals []*hinteval.Value, oldB, oldT, newB, newT fixed.Int, newBest *hinteval.Value) {
	for _, vL := range vals {
		if vL.Loc1 != oldB || vL.Loc2 != oldT || vL.Merged {
			continue
		}
		vL.Loc1, vL.Loc2 = newB, newT
		vL.Val, vL.Spc = newBest.Val, newBest.Spc
		vL.Best = newBest
		vL.Merged = true
	}
}

// Merge collapses overlapping or near-duplicate stem values onto
// whichever in each cluster scores best, so hintpick sees one
// candidate per real stem rather than several slightly different
// edges of the same one. Grounded on merge.c's MergeVals; vert selects
// which axis's alignment-zone exception applies.
func Merge(p *glyphpath.Path, vals []*hinteval.Value, vert bool, fi *fontinfo.FontInfo) {
	findBestVals(vals)
	for _, v := range vals {
		v.Merged = false
	}

	var botBands, topBands []fontinfo.Band
	fuzz := fixed.Int(0)
	if fi != nil {
		botBands, topBands, fuzz = fi.BotBands, fi.TopBands, fi.BlueFuzz
	}
	inBot := func(loc fixed.Int) bool { return fontinfo.InBlueBand(loc, botBands, fuzz) }
	inTop := func(loc fixed.Int) bool { return fontinfo.InBlueBand(loc, topBands, fuzz) }

	for {
		var vL *hinteval.Value
		for _, cand := range vals {
			if cand.Merged {
				continue
			}
			if vL == nil || CompareValues(cand.Best, vL.Best, SpcFactor, 0) {
				vL = cand
			}
		}
		if vL == nil {
			break
		}
		vL.Merged = true
		ghost := vL.Ghost
		b, t := vL.Loc1, vL.Loc2
		sg1, sg2 := vL.Seg1, vL.Seg2
		bV := vL.Best
		vv, s := bV.Val, bV.Spc

		for _, vLst := range vals {
			if vLst.Merged || ghost != vLst.Ghost {
				continue
			}
			bot, top := vLst.Loc1, vLst.Loc2
			if bot == b && top == t {
				continue
			}
			bstV := vLst.Best
			val, spc := bstV.Val, bstV.Spc

			replace := false
			switch {
			case top == t && CloseSegs(p, sg2, vLst.Seg2, vert) &&
				(vert || (!inTop(t) && !inBot(bot) && !inBot(b))):
				replace = true
			case bot == b && CloseSegs(p, sg1, vLst.Seg1, vert) &&
				(vert || (!inBot(b) && !inTop(t) && !inTop(top))):
				replace = true
			case (top-t).Abs() <= MaxMerge && (bot-b).Abs() <= MaxMerge &&
				(vert || (t == top || !inTop(top))) &&
				(vert || (b == bot || !inBot(bot))):
				replace = true
			}

			if replace {
				if s == spc && val == vv && !vert {
					if inTop(t) {
						if t < top {
							replaceVals(vals, bot, top, b, t, bV)
						}
					} else if inBot(b) {
						if b > bot {
							replaceVals(vals, bot, top, b, t, bV)
						}
					}
				} else {
					replaceVals(vals, bot, top, b, t, bV)
				}
				continue
			}

			if s == spc && sg1 != nil && sg2 != nil {
				seg1, seg2 := vLst.Seg1, vLst.Seg2
				if seg1 != nil && seg2 != nil {
					if (bot-b).Abs() <= fixed.One && (top-t).Abs() <= MaxBendMerge {
						if seg2.Type == hintgen.Bend && (vert || !inTop(top)) {
							replaceVals(vals, bot, top, b, t, bV)
						}
					} else if (top-t).Abs() <= fixed.One && (bot-b).Abs() <= MaxBendMerge {
						if vv > val && seg1.Type == hintgen.Bend && (vert || !inBot(bot)) {
							replaceVals(vals, bot, top, b, t, bV)
						}
					}
				}
			}
		}
	}
}
