package pathedit

import (
	"testing"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
)

func TestResolveConflictDropsWeakerLink(t *testing.T) {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	line := p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(0))
	p.AppendClose()

	segA := &hintgen.Segment{Loc: fixed.FromInt(0)}
	segB := &hintgen.Segment{Loc: fixed.FromInt(2)}
	linkA := SegLink{Seg: segA, Val: &hinteval.Value{Val: fixed.FromInt(10), Loc1: 0, Loc2: fixed.FromInt(100)}}
	linkB := SegLink{Seg: segB, Val: &hinteval.Value{Val: fixed.FromInt(900), Loc1: fixed.FromInt(2), Loc2: fixed.FromInt(100)}}
	p.At(line).VSegs = []glyphpath.SegRef{{Seg: segA}, {Seg: segB}}

	if !ResolveConflict(p, line, Vertical, linkA, linkB) {
		t.Fatal("expected the conflict to be resolved")
	}
	remaining := p.At(line).VSegs
	if len(remaining) != 1 {
		t.Fatalf("expected exactly one link to remain, got %d", len(remaining))
	}
	if s, ok := remaining[0].Seg.(*hintgen.Segment); !ok || s != segB {
		t.Error("expected the weak (low-value) link to be the one removed")
	}
}

func TestResolveConflictBySplitRejectsFlexCurve(t *testing.T) {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	c := p.AppendCurve(
		fixed.FromInt(10), fixed.FromInt(30),
		fixed.FromInt(30), fixed.FromInt(30),
		fixed.FromInt(40), fixed.FromInt(0),
	)
	p.At(c).IsFlex = true
	p.AppendClose()

	if ResolveConflictBySplit(p, c, Vertical, SegLink{}, SegLink{}) {
		t.Error("expected a flex curve to refuse splitting")
	}
}

func TestResolveConflictBySplitBisectsCurve(t *testing.T) {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	c := p.AppendCurve(
		fixed.FromInt(10), fixed.FromInt(30),
		fixed.FromInt(30), fixed.FromInt(30),
		fixed.FromInt(40), fixed.FromInt(0),
	)
	p.AppendClose()

	segA := &hintgen.Segment{Loc: fixed.FromInt(1)}
	segB := &hintgen.Segment{Loc: fixed.FromInt(2)}
	ok := ResolveConflictBySplit(p, c, Vertical, SegLink{Seg: segA}, SegLink{Seg: segB})
	if !ok {
		t.Fatal("expected the curve to split")
	}
	first := p.At(c)
	second := p.At(p.Next(c))
	if first.X3 == fixed.FromInt(40) && first.Y3 == 0 {
		t.Error("expected the first half to end at the new joint, not the original endpoint")
	}
	if second.X3 != fixed.FromInt(40) || second.Y3 != 0 {
		t.Errorf("expected second half to end at the original curve's endpoint, got %v,%v", second.X3, second.Y3)
	}
	if len(first.VSegs) != 1 || len(second.VSegs) != 1 {
		t.Errorf("expected each half to carry exactly one link, got %d/%d", len(first.VSegs), len(second.VSegs))
	}
}
