package hintprune

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/fontinfo"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
)

// doPrune drops every value with Pruned set, preserving order.
// Grounded on merge.c's DoPrune.
func doPrune(vals []*hinteval.Value) []*hinteval.Value {
	out := vals[:0:0]
	for _, v := range vals {
		if !v.Pruned {
			out = append(out, v)
		}
	}
	return out
}

// PruneV discards vertical stem values a stronger, span-containing
// value renders redundant. Grounded on merge.c's PruneVVals.
func PruneV(p *glyphpath.Path, vals []*hinteval.Value) []*hinteval.Value {
	for _, sLst := range vals {
		if sLst.Pruned {
			continue
		}
		otherLft, otherRht := false, false
		val := sLst.Val
		lft, rht := sLst.Loc1, sLst.Loc2
		seg1, seg2 := sLst.Seg1, sLst.Seg2

		for _, sL := range vals {
			v := sL.Val
			sg1, sg2 := sL.Seg1, sL.Seg2
			l, r := sL.Loc1, sL.Loc2
			if (l == lft && r == rht) || PruneLe(val, v) {
				continue
			}
			if rht+PruneDist >= r && lft-PruneDist <= l {
				var close bool
				if val < fixed.FromInt(100) && PruneMuchGt(val, v) {
					close = CloseSegs(p, seg1, sg1, true) || CloseSegs(p, seg2, sg2, true)
				} else {
					close = CloseSegs(p, seg1, sg1, true) && CloseSegs(p, seg2, sg2, true)
				}
				if close {
					sLst.Pruned = true
					break
				}
			}
			if seg1 == nil || seg2 == nil {
				continue
			}
			if (l - lft).Abs() < fixed.One {
				if !otherLft && PruneLt(val, v) && (l-r).Abs() < (lft-rht).Abs() &&
					CloseSegs(p, seg1, sg1, true) {
					otherLft = true
				}
				if seg2.Type == hintgen.Bend && CloseSegs(p, seg1, sg1, true) {
					sLst.Pruned = true
					break
				}
			}
			if (r - rht).Abs() < fixed.One {
				if !otherRht && PruneLt(val, v) && (l-r).Abs() < (lft-rht).Abs() &&
					CloseSegs(p, seg2, sg2, true) {
					otherRht = true
				}
				if seg1.Type == hintgen.Bend && CloseSegs(p, seg2, sg2, true) {
					sLst.Pruned = true
					break
				}
			}
			if otherLft && otherRht {
				sLst.Pruned = true
				break
			}
		}
	}
	return doPrune(vals)
}

// PruneH is PruneV's horizontal-axis mirror, additionally weighing
// alignment-zone membership. Grounded on merge.c's PruneHVals.
func PruneH(p *glyphpath.Path, vals []*hinteval.Value, fi *fontinfo.FontInfo) []*hinteval.Value {
	var botBands, topBands []fontinfo.Band
	fuzz := fixed.Int(0)
	if fi != nil {
		botBands, topBands, fuzz = fi.BotBands, fi.TopBands, fi.BlueFuzz
	}

	for _, sLst := range vals {
		otherTop, otherBot := false, false
		seg1, seg2 := sLst.Seg1, sLst.Seg2
		ghost := sLst.Ghost
		val := sLst.Val
		bot, top := sLst.Loc1, sLst.Loc2
		topInBlue := fontinfo.InBlueBand(top, topBands, fuzz)
		botInBlue := fontinfo.InBlueBand(bot, botBands, fuzz)

		for _, sL := range vals {
			if sL.Pruned {
				continue
			}
			sg1, sg2 := sL.Seg1, sL.Seg2
			v := sL.Val
			if !ghost && sL.Ghost && !PruneVeryMuchGt(val, v) {
				continue
			}
			b, t := sL.Loc1, sL.Loc2
			if t == top && b == bot {
				continue
			}

			if PruneGt(val, v) && top-PruneDist <= t && bot+PruneDist >= b {
				var close bool
				if val < fixed.FromInt(100) && PruneMuchGt(val, v) {
					close = CloseSegs(p, seg1, sg1, false) || CloseSegs(p, seg2, sg2, false)
				} else {
					close = CloseSegs(p, seg1, sg1, false) && CloseSegs(p, seg2, sg2, false)
				}
				zoneOK := val < Fix16 || ((!topInBlue || top == t) && (!botInBlue || bot == b))
				if close && zoneOK {
					sLst.Pruned = true
					break
				}
			}

			if seg1 == nil || seg2 == nil {
				continue
			}

			if (b - bot).Abs() < fixed.One {
				if PruneGt(val, v) && !topInBlue && seg2.Type == hintgen.Bend &&
					CloseSegs(p, seg1, sg1, false) {
					sLst.Pruned = true
					break
				}
				if !otherBot && PruneLt(val, v) && (t-b).Abs() < (top-bot).Abs() &&
					CloseSegs(p, seg1, sg1, false) {
					otherBot = true
				}
			}
			if (t - top).Abs() < fixed.One {
				if PruneGt(val, v) && !botInBlue && seg2.Type == hintgen.Bend &&
					CloseSegs(p, seg1, sg1, false) {
					sLst.Pruned = true
					break
				}
				if !otherTop && PruneLt(val, v) && (t-b).Abs() < (top-bot).Abs() &&
					CloseSegs(p, seg2, sg2, false) {
					otherTop = true
				}
			}
			if otherBot && otherTop {
				sLst.Pruned = true
				break
			}
		}
	}
	return doPrune(vals)
}
