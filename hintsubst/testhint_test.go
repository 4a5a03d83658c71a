package hintsubst

import (
	"testing"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
)

func seg(loc fixed.Int) *hintgen.Segment {
	return &hintgen.Segment{Loc: loc}
}

func refs(segs ...*hintgen.Segment) []glyphpath.SegRef {
	out := make([]glyphpath.SegRef, len(segs))
	for i, s := range segs {
		out[i] = glyphpath.SegRef{Seg: s}
	}
	return out
}

func TestTestHintReportsAlreadyWithNoBestValue(t *testing.T) {
	s := seg(fixed.FromInt(10))
	if got := testHint(s, map[*hintgen.Segment]*hinteval.Value{}, nil, false); got != already {
		t.Errorf("expected already for an unscored segment, got %d", got)
	}
	if got := testHint(nil, map[*hintgen.Segment]*hinteval.Value{}, nil, false); got != already {
		t.Errorf("expected already for a nil segment, got %d", got)
	}
}

func TestTestHintAddableAgainstEmptyActiveList(t *testing.T) {
	s := seg(0)
	v := &hinteval.Value{Loc1: 0, Loc2: fixed.FromInt(100)}
	best := map[*hintgen.Segment]*hinteval.Value{s: v}
	if got := testHint(s, best, nil, false); got != addable {
		t.Errorf("expected addable against an empty active list, got %d", got)
	}
}

func TestTestHintAlreadyWhenSpanMatchesActive(t *testing.T) {
	s := seg(0)
	v := &hinteval.Value{Loc1: 0, Loc2: fixed.FromInt(100)}
	best := map[*hintgen.Segment]*hinteval.Value{s: v}
	if got := testHint(s, best, []*hinteval.Value{v}, false); got != already {
		t.Errorf("expected already once v is itself active, got %d", got)
	}
}

func TestTestHintConflictsWithOverlappingBand(t *testing.T) {
	s := seg(fixed.FromInt(5))
	v := &hinteval.Value{Loc1: fixed.FromInt(100), Loc2: fixed.FromInt(5)}
	active := &hinteval.Value{Loc1: fixed.FromInt(110), Loc2: fixed.FromInt(20)}
	best := map[*hintgen.Segment]*hinteval.Value{s: v}
	if got := testHint(s, best, []*hinteval.Value{active}, false); got != conflict {
		t.Errorf("expected a conflict between overlapping horizontal bands, got %d", got)
	}
}

func TestTestHintLstReportsFirstConflict(t *testing.T) {
	sA := seg(0)
	sB := seg(fixed.FromInt(5))
	vA := &hinteval.Value{Loc1: fixed.FromInt(100), Loc2: 0}
	vB := &hinteval.Value{Loc1: fixed.FromInt(100), Loc2: fixed.FromInt(5)}
	best := map[*hintgen.Segment]*hinteval.Value{sA: vA, sB: vB}
	active := &hinteval.Value{Loc1: fixed.FromInt(110), Loc2: fixed.FromInt(20)}

	list := refs(sA, sB)
	if got := testHintLst(list, best, []*hinteval.Value{active}, false); got != conflict {
		t.Errorf("expected the list to report a conflict, got %d", got)
	}
}
