package hintpick

import "github.com/appleboy/psautohint/fixed"

// counterTolerance is the width/spacing equality tolerance UseCounter
// requires: 5/100 of a unit. Grounded on control.c's UseCounter
// (th = FixInt(5) / 100).
var counterTolerance = fixed.FromInt(5) / 100

// counterNearMissTolerance is the looser tolerance under which a
// failed counter-hint attempt is still worth a diagnostic. Grounded on
// control.c's UseCounter (FixInt(3)).
var counterNearMissTolerance = fixed.FromInt(3)

// CounterReporter receives a diagnostic when a glyph nearly qualified
// for counter hinting but didn't. Grounded on control.c's LogMsg calls
// in UseCounter.
type CounterReporter interface {
	CounterNearMiss(vertical bool)
}

// UseCounter implements the three-stem counter-hinting branch: picks
// must already have at least 3 members, the three earliest-picked
// (picks[:3], the strongest survivors of pick's greedy loop) must be
// clearly stronger than the fourth pick, if any, and those
// three stems' widths and center-to-center spacing must each agree to
// within counterTolerance. On success it returns just those three,
// trimmed from the rest; on failure it returns (nil, false) so the
// caller keeps using Pick's original result. Grounded on control.c's
// UseCounter.
func UseCounter(picks []Pair, vertical bool, rep CounterReporter) ([]Pair, bool) {
	if len(picks) < 3 {
		return nil, false
	}

	var prevBestVal fixed.Int
	if len(picks) > 3 {
		prevBestVal = picks[3].Val
	}
	bestVal := picks[2].Val
	three := picks[:3]

	if prevBestVal > fixed.FromInt(1000) || bestVal < prevBestVal*10 {
		return nil, false
	}

	type locDelta struct {
		loc, delta fixed.Int
	}
	entries := make([]locDelta, 3)
	for i, p := range three {
		lo, hi := p.Loc1, p.Loc2
		delta := hi - lo
		loc := lo + fixed.Mul(fixed.Half, delta)
		entries[i] = locDelta{loc, delta}
	}
	// insertion-sort the 3 entries ascending by loc
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && entries[j].loc < entries[j-1].loc; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	minE, midE, maxE := entries[0], entries[1], entries[2]

	widthOK := absFixed(minE.delta-maxE.delta) < counterTolerance
	spaceOK := absFixed((maxE.loc-midE.loc)-(midE.loc-minE.loc)) < counterTolerance
	if widthOK && spaceOK {
		out := make([]Pair, len(three))
		copy(out, three)
		return out, true
	}

	if rep != nil &&
		absFixed(minE.delta-maxE.delta) < counterNearMissTolerance &&
		absFixed((maxE.loc-midE.loc)-(midE.loc-minE.loc)) < counterNearMissTolerance {
		rep.CounterNearMiss(vertical)
	}
	return nil, false
}

func absFixed(v fixed.Int) fixed.Int {
	if v < 0 {
		return -v
	}
	return v
}
