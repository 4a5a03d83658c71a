package hintprune

import (
	"testing"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
)

func buildSquarePath() *glyphpath.Path {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(50), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(50), fixed.FromInt(0))
	p.AppendClose()
	return p
}

func TestPruneLtGtSymmetry(t *testing.T) {
	small := fixed.FromInt(1)
	big := fixed.FromInt(10)
	if !PruneLt(small, big) {
		t.Error("expected a much smaller val to be PruneLt the bigger one")
	}
	if !PruneGt(small, big) {
		t.Error("expected the bigger v to be PruneGt relative to small val")
	}
}

func TestPruneLeExact(t *testing.T) {
	v := fixed.FromInt(10)
	if !PruneLe(v, v*PruneFactor) {
		t.Error("expected PruneLe true at the factor boundary")
	}
}

func TestCloseSegsSameSegment(t *testing.T) {
	p := buildSquarePath()
	s := &hintgen.Segment{Loc: fixed.FromInt(0), Elt: p.Start(), HasElt: true}
	if !CloseSegs(p, s, s, true) {
		t.Error("a segment should be close to itself")
	}
}

func TestCloseSegsNilIsNotClose(t *testing.T) {
	p := buildSquarePath()
	s := &hintgen.Segment{Loc: 0, Elt: p.Start(), HasElt: true}
	if CloseSegs(p, nil, s, true) {
		t.Error("a nil segment should never be close")
	}
}

func TestPruneVDropsRedundantNarrowerValue(t *testing.T) {
	p := buildSquarePath()
	start := p.Start()
	left := &hintgen.Segment{Loc: 0, Min: 0, Max: fixed.FromInt(100), Elt: start, HasElt: true}
	right := &hintgen.Segment{Loc: fixed.FromInt(50), Min: 0, Max: fixed.FromInt(100), Elt: start, HasElt: true}
	strong := &hinteval.Value{Loc1: 0, Loc2: fixed.FromInt(50), Val: fixed.FromInt(1000), Seg1: left, Seg2: right}
	weak := &hinteval.Value{Loc1: fixed.FromInt(1), Loc2: fixed.FromInt(49), Val: fixed.FromInt(1), Seg1: left, Seg2: right}
	out := PruneV(p, []*hinteval.Value{strong, weak})
	for _, v := range out {
		if v == weak {
			t.Error("expected the much weaker contained value to be pruned")
		}
	}
}

func TestCompareValuesPrefersPriority(t *testing.T) {
	withSpc := &hinteval.Value{Val: fixed.FromInt(1), Spc: fixed.FromInt(2)}
	withoutSpc := &hinteval.Value{Val: fixed.FromInt(1000), Spc: 0}
	if !CompareValues(withSpc, withoutSpc, PruneFactor, 0) {
		t.Error("expected a priority value with factor-adjusted weight to still win")
	}
}

func TestMergeCollapsesNearDuplicates(t *testing.T) {
	p := buildSquarePath()
	start := p.Start()
	s1 := &hintgen.Segment{Loc: 0, Elt: start, HasElt: true}
	s2 := &hintgen.Segment{Loc: fixed.FromInt(50), Elt: start, HasElt: true}
	a := &hinteval.Value{Loc1: 0, Loc2: fixed.FromInt(50), Val: fixed.FromInt(100), Seg1: s1, Seg2: s2}
	b := &hinteval.Value{Loc1: fixed.FromInt(1), Loc2: fixed.FromInt(51), Val: fixed.FromInt(50), Seg1: s1, Seg2: s2}
	vals := []*hinteval.Value{a, b}
	Merge(p, vals, true, nil)
	if !a.Merged || !b.Merged {
		t.Error("expected both values to be marked merged after processing")
	}
}
