package hintsubst

import (
	"testing"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
)

func TestCheckHintSegsResolvesConflictByDroppingWeakLink(t *testing.T) {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	line := p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(0))
	p.AppendClose()

	strong := seg(0)
	weak := seg(fixed.FromInt(2))
	p.At(line).VSegs = refs(strong, weak)

	best := map[*hintgen.Segment]*hinteval.Value{
		strong: {Val: fixed.FromInt(900), Loc1: 0, Loc2: fixed.FromInt(100)},
		weak:   {Val: fixed.FromInt(10), Loc1: fixed.FromInt(2), Loc2: fixed.FromInt(100)},
	}

	best[weak].Loc1, best[weak].Loc2 = fixed.FromInt(1), fixed.FromInt(50)

	changed := checkHintSegs(p, line, true, best)
	if !changed {
		t.Fatal("expected a conflict to be detected and resolved")
	}
	remaining := p.At(line).VSegs
	if len(remaining) != 1 {
		t.Fatalf("expected exactly one surviving link, got %d", len(remaining))
	}
	if segOf(remaining[0]) != strong {
		t.Error("expected the low-value link to be the one dropped")
	}
}

func TestCheckHintSegsNoOpWithoutConflict(t *testing.T) {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	line := p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendClose()

	s := seg(0)
	p.At(line).VSegs = refs(s)
	best := map[*hintgen.Segment]*hinteval.Value{s: {Loc1: 0, Loc2: fixed.FromInt(100)}}

	if checkHintSegs(p, line, true, best) {
		t.Error("expected a single-segment list never to report a conflict")
	}
}

func TestHintsClashCollapsesToSingleBestSegment(t *testing.T) {
	p := glyphpath.New()
	m := p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(0))
	p.AppendClose()

	strong := seg(0)
	weak := seg(fixed.FromInt(2))
	valStrong := &hinteval.Value{Val: fixed.FromInt(900), Loc1: 0, Loc2: fixed.FromInt(100)}
	valWeak := &hinteval.Value{Val: fixed.FromInt(10), Loc1: fixed.FromInt(1), Loc2: fixed.FromInt(50)}
	best := map[*hintgen.Segment]*hinteval.Value{strong: valStrong, weak: valWeak}

	vLst := refs(strong)
	pvLst := refs(weak)
	var hLst, phLst []glyphpath.SegRef

	clash := hintsClash(p, m, m, &hLst, &vLst, &phLst, &pvLst, best, best)
	if !clash {
		t.Fatal("expected overlapping vertical bands to clash")
	}
	if len(vLst) != 1 || len(pvLst) != 1 {
		t.Fatalf("expected both lists collapsed to one entry, got %d/%d", len(vLst), len(pvLst))
	}
	if segOf(vLst[0]) != strong {
		t.Error("expected the higher-scoring segment to be kept")
	}
}
