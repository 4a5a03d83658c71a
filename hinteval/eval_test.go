package hinteval

import (
	"testing"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/fontinfo"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
)

func buildStemPath() *glyphpath.Path {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(50), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(50), fixed.FromInt(0))
	p.AppendClose()
	return p
}

func TestEvalVProducesValueForStem(t *testing.T) {
	p := buildStemPath()
	l := hintgen.Generate(p)
	vals := EvalV(p, l, nil, nil)
	if len(vals) == 0 {
		t.Fatal("expected at least one vertical stem value from a rectangular stem")
	}
	for _, v := range vals {
		if v.Loc2 <= v.Loc1 {
			t.Errorf("expected Loc1 < Loc2 for a vertical value, got %v, %v", v.Loc1, v.Loc2)
		}
	}
}

func TestEvalHProducesValueForStem(t *testing.T) {
	p := buildStemPath()
	l := hintgen.Generate(p)
	vals := EvalH(p, l, nil, nil, nil)
	if len(vals) == 0 {
		t.Fatal("expected at least one horizontal stem value from a rectangular stem")
	}
}

func TestEvalHSynthesizesGhostInBlueBand(t *testing.T) {
	p := buildStemPath()
	l := hintgen.Generate(p)
	fi := &fontinfo.FontInfo{
		BotBands: []fontinfo.Band{{Lo: fixed.FromInt(-10), Hi: fixed.FromInt(0)}},
		TopBands: []fontinfo.Band{{Lo: fixed.FromInt(100), Hi: fixed.FromInt(110)}},
	}
	vals := EvalH(p, l, nil, fi, nil)
	ghostFound := false
	for _, v := range vals {
		if v.Ghost {
			ghostFound = true
		}
	}
	if !ghostFound {
		t.Error("expected a ghost value when a segment falls inside both alignment zones")
	}
}

func TestCombineValuesMergesSameLocPair(t *testing.T) {
	s1 := &hintgen.Segment{Loc: 0, Min: 0, Max: fixed.FromInt(10)}
	s2 := &hintgen.Segment{Loc: fixed.FromInt(50), Min: 0, Max: fixed.FromInt(10)}
	vals := []*Value{
		{Loc1: 0, Loc2: fixed.FromInt(50), Val: fixed.FromInt(2), Seg1: s1, Seg2: s2},
		{Loc1: 0, Loc2: fixed.FromInt(50), Val: fixed.FromInt(3), Seg1: s1, Seg2: s2},
	}
	CombineValues(vals)
	if vals[0].Val != vals[1].Val {
		t.Errorf("expected combined values to match, got %v and %v", vals[0].Val, vals[1].Val)
	}
	if vals[0].Val <= fixed.FromInt(3) {
		t.Errorf("expected combined value to exceed the larger input, got %v", vals[0].Val)
	}
}

func TestAddVValueRejectsZeroVal(t *testing.T) {
	p := buildStemPath()
	vals := addVValue(nil, p, 0, fixed.FromInt(50), 0, 0, nil, nil)
	if len(vals) != 0 {
		t.Error("expected a zero value to be rejected")
	}
}
