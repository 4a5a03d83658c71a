// Package hinteval pairs up the segments hintgen produces into scored
// candidate stem hints (HintVal), folding in alignment-zone and
// dominant-stem-width priority bonuses. Grounded on eval.c in full.
package hinteval

import (
	"math"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/fontinfo"
	"github.com/appleboy/psautohint/hintgen"
)

// Tuning constants grounded on ac.c's InitData STARTUP case.
var (
	MinDist     = fixed.FromInt(7)
	GhostWidth  = fixed.FromInt(20)
	GhostLen    = fixed.FromInt(4)
	InitBigDist = fixed.FromInt(150) // MAXSTEMDIST
	MaxVal      = 8000000.0
	MinVal      = 1.0 / float64(fixed.One)
	PruneValue  = fixed.FromFloat64(10.24) // gPruneValue: 1024x the LePruneValue threshold
	PruneD      = fixed.One
)

// BigDist returns the "stem is implausibly wide" falloff threshold for
// an axis's dominant stems: the widest stem scaled up by 23/20,
// floored at InitBigDist. Grounded on control.c's per-glyph gHBigDist/
// gVBigDist computation.
func BigDist(stems []fixed.Int) fixed.Int {
	var widest fixed.Int
	for _, s := range stems {
		if s > widest {
			widest = s
		}
	}
	widest = fixed.Int(int64(widest) * 23 / 20)
	if widest < InitBigDist {
		return InitBigDist
	}
	return widest
}

// lePruneValue reports whether val is small enough, with no
// compensating priority, to discard outright. Grounded on eval.c's
// LePruneValue macro.
func lePruneValue(val fixed.Int) bool {
	return val < fixed.One && int64(val)<<10 <= int64(PruneValue)
}

// Value is a scored candidate stem hint between two segments. Grounded
// on eval.c's HintVal struct.
type Value struct {
	Loc1, Loc2 fixed.Int // left/bot, right/top
	Val        fixed.Int
	InitVal    fixed.Int
	Spc        fixed.Int
	Seg1, Seg2 *hintgen.Segment
	Ghost      bool

	// Pruned/Merged/Best are scratch fields used by hintprune's
	// FindBestVals/MergeVals pass (eval.c's vBst/merge/pruned).
	Pruned bool
	Merged bool
	Best   *Value
}

// adjustVal computes the weight of a candidate stem given the lengths
// of its two edges (l1, l2), the perpendicular distance between them
// (dist, already adjusted for overlap), and the raw gap (d, used for
// the big-distance falloff). Grounded on eval.c's AdjustVal.
func adjustVal(l1, l2, dist, d, bigDist fixed.Int) fixed.Int {
	if dist < fixed.Two {
		dist = fixed.Two
	}
	if l1 < fixed.Two {
		l1 = fixed.Two
	}
	if l2 < fixed.Two {
		l2 = fixed.Two
	}
	r1 := l1.ToFloat64() * l1.ToFloat64()
	r2 := l2.ToFloat64() * l2.ToFloat64()
	q := dist.ToFloat64() * dist.ToFloat64()
	v := (1000.0 * r1 * r2) / (q * q)

	if d > bigDist {
		rd := d.ToFloat64()
		qq := bigDist.ToFloat64() / rd
		if qq <= 0.5 {
			v = 0
		} else {
			qq = qq * qq
			qq = qq * qq
			qq = qq * qq
			v = v * qq
		}
	}
	if v > MaxVal {
		v = MaxVal
	} else if v > 0 && v < MinVal {
		v = MinVal
	}
	return fixed.FromFloat64(v)
}

// calcOverlapDist inflates a gap distance when two overlapping edges
// only partially overlap. Grounded on eval.c's CalcOverlapDist.
func calcOverlapDist(d, overlapLen, minLen fixed.Int) fixed.Int {
	r := d.ToFloat64()
	ro := overlapLen.ToFloat64()
	rm := minLen.ToFloat64()
	r = r * (1.0 + 0.4*(1.0-ro/rm))
	return fixed.Int(r)
}

// gapDist penalizes the distance between two non-overlapping edges.
// Grounded on eval.c's GapDist macro.
func gapDist(d fixed.Int) fixed.Int {
	df := d.ToFloat64()
	return fixed.Int(df * df / 40)
}

func absInt(a fixed.Int) fixed.Int {
	if a < 0 {
		return -a
	}
	return a
}

func minInt(a, b fixed.Int) fixed.Int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b fixed.Int) fixed.Int {
	if a > b {
		return a
	}
	return b
}

// evalVPair scores a candidate vertical stem between leftSeg and
// rightSeg. Grounded on eval.c's EvalVPair.
func evalVPair(left, right *hintgen.Segment, vstems []fixed.Int, bigDist fixed.Int) (spc, val fixed.Int) {
	dx := absInt(left.Loc - right.Loc)
	if dx < MinDist {
		return 0, 0
	}
	var dist fixed.Int
	if left.Max >= right.Min && left.Min <= right.Max {
		overlapLen := minInt(left.Max, right.Max) - maxInt(left.Min, right.Min)
		minLen := minInt(left.Max-left.Min, right.Max-right.Min)
		if minLen == overlapLen {
			dist = dx
		} else {
			dist = calcOverlapDist(dx, overlapLen, minLen)
		}
	} else {
		tdst := absInt(left.Max - right.Min)
		bdst := absInt(left.Min - right.Max)
		dy := minInt(tdst, bdst)
		dist = fixed.Int(7*int64(dx)/5) + gapDist(dy)
		if dy > dx && dx != 0 {
			dist = fixed.Int(int64(dist) * int64(dy) / int64(dx))
		}
	}
	mndist := 2 * MinDist
	dist = maxInt(dist, mndist)

	bonus := minInt(left.Bonus, right.Bonus)
	if bonus > 0 {
		spc = fixed.FromInt(2)
	}
	if fontinfo.MatchesStemWidth(dx, vstems) {
		spc += fixed.One
	}
	val = adjustVal(left.Max-left.Min, right.Max-right.Min, dist, dx, bigDist)
	return spc, val
}

// evalHPair is evalVPair's horizontal-axis mirror. Grounded on eval.c's
// EvalHPair.
func evalHPair(bot, top *hintgen.Segment, hstems []fixed.Int, botBands, topBands []fontinfo.Band, fuzz, bigDist fixed.Int) (spc, val fixed.Int) {
	dy := absInt(bot.Loc - top.Loc)
	if dy < MinDist {
		return 0, 0
	}
	inBot := fontinfo.InBlueBand(bot.Loc, botBands, fuzz)
	inTop := fontinfo.InBlueBand(top.Loc, topBands, fuzz)
	if inBot && inTop {
		return 0, 0
	}
	if inBot || inTop {
		spc = fixed.FromInt(2)
	}
	var dist fixed.Int
	if top.Min <= bot.Max && top.Max >= bot.Min {
		overlapLen := minInt(top.Max, bot.Max) - maxInt(top.Min, bot.Min)
		minLen := minInt(top.Max-top.Min, bot.Max-bot.Min)
		if minLen == overlapLen {
			dist = dy
		} else {
			dist = calcOverlapDist(dy, overlapLen, minLen)
		}
	} else {
		ldst := absInt(top.Min - bot.Max)
		rdst := absInt(top.Max - bot.Min)
		dx := minInt(ldst, rdst)
		dist = gapDist(dx) + fixed.Int(7*int64(dy)/5)
		if dx > dy && dy != 0 {
			dist = fixed.Int(int64(dist) * int64(dx) / int64(dy))
		}
	}
	mndist := 2 * MinDist
	dist = maxInt(dist, mndist)

	if fontinfo.MatchesStemWidth(dy, hstems) {
		spc += fixed.One
	}
	val = adjustVal(bot.Max-bot.Min, top.Max-top.Min, dist, dy, bigDist)
	return spc, val
}

// combVals combines two independently-plausible stem values for the
// same (loc1, loc2) pair into one, v1+v2+2*sqrt(v1*v2), reusing the
// standard library's Sqrt rather than the source's hand-rolled Newton
// iteration (an intentional deviation the original spec's Open
// Questions sanction: see DESIGN.md). Grounded on eval.c's CombVals.
func combVals(v1, v2 fixed.Int) fixed.Int {
	r1, r2 := v1.ToFloat64(), v2.ToFloat64()
	v := r1 + r2 + 2*math.Sqrt(r1*r2)
	if v > MaxVal {
		v = MaxVal
	} else if v > 0 && v < MinVal {
		v = MinVal
	}
	return fixed.FromFloat64(v)
}
