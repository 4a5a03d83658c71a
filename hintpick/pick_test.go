package hintpick

import (
	"testing"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
)

func seg(loc fixed.Int) *hintgen.Segment {
	return &hintgen.Segment{Loc: loc, Min: 0, Max: fixed.FromInt(100)}
}

func TestPickVSelectsStrongestNonOverlapping(t *testing.T) {
	strong := &hinteval.Value{Loc1: 0, Loc2: fixed.FromInt(100), Val: fixed.FromInt(1000), Spc: fixed.One, Seg1: seg(0), Seg2: seg(fixed.FromInt(100))}
	overlapping := &hinteval.Value{Loc1: fixed.FromInt(10), Loc2: fixed.FromInt(90), Val: fixed.FromInt(500), Spc: fixed.One, Seg1: seg(fixed.FromInt(10)), Seg2: seg(fixed.FromInt(90))}
	disjoint := &hinteval.Value{Loc1: fixed.FromInt(200), Loc2: fixed.FromInt(300), Val: fixed.FromInt(900), Spc: fixed.One, Seg1: seg(fixed.FromInt(200)), Seg2: seg(fixed.FromInt(300))}

	picks := Pick([]*hinteval.Value{strong, overlapping, disjoint}, Vertical, nil)
	if len(picks) != 2 {
		t.Fatalf("expected 2 non-overlapping picks, got %d", len(picks))
	}
	for _, p := range picks {
		if p.Value == overlapping {
			t.Error("expected the overlapping, weaker candidate to be rejected")
		}
	}
}

func TestPickVEmptyInput(t *testing.T) {
	if picks := Pick(nil, Vertical, nil); len(picks) != 0 {
		t.Errorf("expected no picks from empty input, got %d", len(picks))
	}
}

func TestConsiderPickingRequiresPruneDWithoutPriority(t *testing.T) {
	if considerPicking(0, PruneD-1, false, 0) {
		t.Error("expected a sub-PruneD, zero-priority first candidate to be rejected")
	}
	if !considerPicking(0, PruneD, false, 0) {
		t.Error("expected a candidate exactly at PruneD to be accepted")
	}
	if !considerPicking(fixed.One, 0, false, 0) {
		t.Error("expected any candidate with positive priority to be accepted")
	}
}

func TestAddBBoxFallbackSkipsWhenOverlapping(t *testing.T) {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(50), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(50), fixed.FromInt(0))
	p.AppendClose()

	existing := []Pair{{&hinteval.Value{Loc1: fixed.FromInt(-10), Loc2: fixed.FromInt(60)}}}
	out := AddBBoxFallback(p, Vertical, false, existing)
	if len(out) != 0 {
		t.Errorf("expected bbox fallback to be skipped due to overlap, got %d pairs", len(out))
	}
}

func TestAddBBoxFallbackInstallsWhenClear(t *testing.T) {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(50), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(50), fixed.FromInt(0))
	p.AppendClose()

	out := AddBBoxFallback(p, Vertical, false, nil)
	if len(out) != 1 {
		t.Fatalf("expected one fallback pair, got %d", len(out))
	}
	if out[0].Loc1 != 0 || out[0].Loc2 != fixed.FromInt(50) {
		t.Errorf("expected fallback pair to span the path's x extent, got %v/%v", out[0].Loc1, out[0].Loc2)
	}
}

func TestUseCounterRequiresThreeStems(t *testing.T) {
	if _, ok := UseCounter(nil, true, nil); ok {
		t.Error("expected UseCounter to fail with no picks")
	}
	one := []Pair{{&hinteval.Value{Loc1: 0, Loc2: fixed.FromInt(10), Val: fixed.FromInt(500)}}}
	if _, ok := UseCounter(one, true, nil); ok {
		t.Error("expected UseCounter to fail with fewer than 3 picks")
	}
}

func TestUseCounterAcceptsEvenlySpacedEqualWidthStems(t *testing.T) {
	mk := func(lo, hi, val fixed.Int) Pair {
		return Pair{&hinteval.Value{Loc1: lo, Loc2: hi, Val: val}}
	}
	picks := []Pair{
		mk(0, fixed.FromInt(20), fixed.FromInt(2000)),
		mk(fixed.FromInt(100), fixed.FromInt(120), fixed.FromInt(2000)),
		mk(fixed.FromInt(200), fixed.FromInt(220), fixed.FromInt(2000)),
	}
	out, ok := UseCounter(picks, true, nil)
	if !ok {
		t.Fatal("expected evenly-spaced equal-width stems to qualify for counter hinting")
	}
	if len(out) != 3 {
		t.Errorf("expected exactly 3 counter-hinted stems, got %d", len(out))
	}
}

func TestUseCounterRejectsUnevenSpacing(t *testing.T) {
	mk := func(lo, hi, val fixed.Int) Pair {
		return Pair{&hinteval.Value{Loc1: lo, Loc2: hi, Val: val}}
	}
	picks := []Pair{
		mk(0, fixed.FromInt(20), fixed.FromInt(2000)),
		mk(fixed.FromInt(100), fixed.FromInt(120), fixed.FromInt(2000)),
		mk(fixed.FromInt(500), fixed.FromInt(520), fixed.FromInt(2000)),
	}
	if _, ok := UseCounter(picks, true, nil); ok {
		t.Error("expected unevenly-spaced stems to be rejected")
	}
}
