package hinteval

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/fontinfo"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
)

// Reporter receives nonfatal stem near-miss diagnostics. Grounded on
// eval.c's ReportStemNearMiss plumbing; kept as a small local interface
// so hinteval has no dependency on the report package.
type Reporter interface {
	StemNearMiss(vertical bool, width, nearestWidth, loc1, loc2 fixed.Int, curved bool)
}

// vStemMiss reports a near-miss against the declared vertical stem
// widths for an overlapping left/right pair that fell just short of an
// exact match. Grounded on eval.c's VStemMiss.
func vStemMiss(rep Reporter, left, right *hintgen.Segment, vstems []fixed.Int) {
	if rep == nil || len(vstems) == 0 {
		return
	}
	dx := absInt(left.Loc - right.Loc)
	if dx < MinDist {
		return
	}
	if !(left.Max >= right.Min && left.Min <= right.Max) {
		return
	}
	w := dx
	minDiff := fixed.FromInt(1000)
	var minW fixed.Int
	for _, sw := range vstems {
		diff := absInt(sw - w)
		if diff == 0 {
			return
		}
		if diff < minDiff {
			minDiff = diff
			minW = sw
		}
	}
	if minDiff > fixed.FromInt(2) {
		return
	}
	rep.StemNearMiss(true, w, minW, left.Loc, right.Loc, left.Type == hintgen.Curve || right.Type == hintgen.Curve)
}

// hStemMiss is vStemMiss's horizontal-axis mirror. Grounded on eval.c's
// HStemMiss.
func hStemMiss(rep Reporter, bot, top *hintgen.Segment, hstems []fixed.Int) {
	if rep == nil || len(hstems) == 0 {
		return
	}
	dy := absInt(bot.Loc - top.Loc)
	if dy < MinDist {
		return
	}
	if !(top.Min <= bot.Max && top.Max >= bot.Min) {
		return
	}
	w := absInt(top.Loc - bot.Loc)
	minDiff := fixed.FromInt(1000)
	var minW fixed.Int
	for _, sw := range hstems {
		diff := absInt(sw - w)
		if diff < minDiff {
			minDiff = diff
			minW = sw
		}
		if minDiff == 0 {
			return
		}
	}
	if minDiff > fixed.FromInt(2) {
		return
	}
	rep.StemNearMiss(false, w, minW, bot.Loc, top.Loc, bot.Type == hintgen.Curve || top.Type == hintgen.Curve)
}

// EvalV scores every admissible (left, right) segment pair into a
// sorted, combined list of candidate vertical stem values. Grounded on
// eval.c's EvalV.
func EvalV(p *glyphpath.Path, l *hintgen.Lists, vstems []fixed.Int, rep Reporter) []*Value {
	bigDist := BigDist(vstems)
	var vals []*Value
	for _, left := range l.Left {
		for _, right := range l.Right {
			if left.Loc >= right.Loc {
				continue
			}
			spc, val := evalVPair(left, right, vstems, bigDist)
			vStemMiss(rep, left, right, vstems)
			vals = addVValue(vals, p, left.Loc, right.Loc, val, spc, left, right)
		}
	}
	CombineValues(vals)
	return vals
}

// EvalH scores every admissible (bot, top) segment pair, then
// synthesizes ghost-stem candidates against any bot/top segment that
// falls inside an alignment zone. Grounded on eval.c's EvalH.
func EvalH(p *glyphpath.Path, l *hintgen.Lists, hstems []fixed.Int, fi *fontinfo.FontInfo, rep Reporter) []*Value {
	bigDist := BigDist(hstems)
	fuzz := fixed.Int(0)
	if fi != nil {
		fuzz = fi.BlueFuzz
	}
	var botBands, topBands []fontinfo.Band
	if fi != nil {
		botBands, topBands = fi.BotBands, fi.TopBands
	}

	var vals []*Value
	for _, bot := range l.Bot {
		for _, top := range l.Top {
			if bot.Loc <= top.Loc {
				continue
			}
			spc, val := evalHPair(bot, top, hstems, botBands, topBands, fuzz, bigDist)
			hStemMiss(rep, bot, top, hstems)
			vals = addHValue(vals, p, bot.Loc, top.Loc, val, spc, bot, top)
		}
	}

	if len(botBands) > 0 || len(topBands) > 0 {
		for _, seg := range l.Bot {
			if !fontinfo.InBlueBand(seg.Loc, botBands, fuzz) {
				continue
			}
			ghostLoc := seg.Loc - GhostWidth
			cntr := fixed.Mul(fixed.Half, seg.Max+seg.Min)
			ghost := &hintgen.Segment{
				Type: hintgen.Ghost,
				Loc:  ghostLoc,
				Max:  cntr + fixed.Mul(fixed.Half, GhostLen),
				Min:  cntr - fixed.Mul(fixed.Half, GhostLen),
			}
			vals = addHValue(vals, p, seg.Loc, ghostLoc, fixed.FromInt(20), fixed.FromInt(2), seg, ghost)
		}
		for _, seg := range l.Top {
			if !fontinfo.InBlueBand(seg.Loc, topBands, fuzz) {
				continue
			}
			ghostLoc := seg.Loc + GhostWidth
			cntr := fixed.Mul(fixed.Half, seg.Min+seg.Max)
			ghost := &hintgen.Segment{
				Type: hintgen.Ghost,
				Loc:  ghostLoc,
				Max:  cntr + fixed.Mul(fixed.Half, GhostLen),
				Min:  cntr - fixed.Mul(fixed.Half, GhostLen),
			}
			vals = addHValue(vals, p, ghostLoc, seg.Loc, fixed.FromInt(20), fixed.FromInt(2), ghost, seg)
		}
	}

	CombineValues(vals)
	return vals
}
