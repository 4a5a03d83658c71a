package pathedit

import (
	"testing"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
)

func buildFlexCandidate() *glyphpath.Path {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendCurve(
		fixed.FromInt(3), fixed.FromInt(3),
		fixed.FromInt(7), fixed.FromInt(7),
		fixed.FromInt(10), fixed.FromInt(10),
	)
	p.AppendCurve(
		fixed.FromInt(15), fixed.FromInt(5),
		fixed.FromInt(25), fixed.FromInt(-3),
		fixed.FromInt(30), fixed.FromInt(0),
	)
	p.AppendClose()
	return p
}

func TestAutoAddFlexInstallsPairOnQualifyingCurves(t *testing.T) {
	p := buildFlexCandidate()
	if !AutoAddFlex(p, nil) {
		t.Fatal("expected a flex pair to be installed")
	}
	c1 := p.At(p.Next(p.Start()))
	c2 := p.At(p.Next(p.Next(p.Start())))
	if !c1.IsFlex || !c2.IsFlex {
		t.Errorf("expected both curves flagged IsFlex, got %v/%v", c1.IsFlex, c2.IsFlex)
	}
	if !c1.YFlex || !c2.YFlex {
		t.Errorf("expected YFlex set on a y-axis flex candidate")
	}
}

func TestAutoAddFlexSkipsTooNarrowCandidate(t *testing.T) {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendCurve(
		fixed.FromInt(1), fixed.FromInt(1),
		fixed.FromInt(2), fixed.FromInt(2),
		fixed.FromInt(3), fixed.FromInt(3),
	)
	p.AppendCurve(
		fixed.FromInt(4), fixed.FromInt(1),
		fixed.FromInt(5), fixed.FromInt(-1),
		fixed.FromInt(6), fixed.FromInt(0),
	)
	p.AppendClose()
	if AutoAddFlex(p, nil) {
		t.Error("expected too-narrow candidate to be rejected")
	}
}
