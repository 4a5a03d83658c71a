package hintgen

import (
	"testing"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
)

func buildStem() *glyphpath.Path {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(50), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(50), fixed.FromInt(0))
	p.AppendClose()
	return p
}

func TestGenerateProducesVerticalSegments(t *testing.T) {
	p := buildStem()
	l := Generate(p)
	if len(l.Left) == 0 && len(l.Right) == 0 {
		t.Fatal("expected at least one vertical segment from a rectangular stem")
	}
}

func TestGenerateProducesHorizontalSegments(t *testing.T) {
	p := buildStem()
	l := Generate(p)
	if len(l.Bot) == 0 && len(l.Top) == 0 {
		t.Fatal("expected at least one horizontal segment from a rectangular stem")
	}
}

func TestVertQuoExactlyVertical(t *testing.T) {
	q := VertQuo(fixed.FromInt(10), fixed.FromInt(0), fixed.FromInt(10), fixed.FromInt(100))
	if q != fixed.One {
		t.Errorf("VertQuo of a vertical chord = %v, want FixOne", q)
	}
}

func TestVertQuoExactlyHorizontal(t *testing.T) {
	q := VertQuo(fixed.FromInt(0), fixed.FromInt(10), fixed.FromInt(100), fixed.FromInt(10))
	if q != 0 {
		t.Errorf("VertQuo of a horizontal chord = %v, want 0", q)
	}
}

func TestHorizQuoExactlyHorizontal(t *testing.T) {
	q := HorizQuo(fixed.FromInt(0), fixed.FromInt(10), fixed.FromInt(100), fixed.FromInt(10))
	if q != fixed.One {
		t.Errorf("HorizQuo of a horizontal chord = %v, want FixOne", q)
	}
}

// buildBulgingCurve is a single closed curve whose two endpoints share
// x=0 (a vertical chord with zero width) while its control points pull
// the curve far to the right, so the curve's bbox extends well past
// that chord on the vertical (x) axis.
func buildBulgingCurve() *glyphpath.Path {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendCurve(
		fixed.FromInt(60), fixed.FromInt(30),
		fixed.FromInt(60), fixed.FromInt(70),
		fixed.FromInt(0), fixed.FromInt(100),
	)
	p.AppendClose()
	return p
}

func TestGenerateEmitsBBoxExtremumSegmentForBulgingCurve(t *testing.T) {
	p := buildBulgingCurve()
	l := Generate(p)

	var found *Segment
	for _, s := range append(append([]*Segment{}, l.Left...), l.Right...) {
		if s.Type == Curve && s.Loc > curveBBoxMargin {
			found = s
			break
		}
	}
	if found == nil {
		t.Fatal("expected a bbox-extremum vertical segment anchored away from the chord (x=0) for a curve bulging past it")
	}
}

func TestSegmentListsSortedByLoc(t *testing.T) {
	l := &Lists{}
	l.addVSegment(fixed.FromInt(0), fixed.FromInt(10), fixed.FromInt(5), 0, 0, false, false, Line, 0)
	l.addVSegment(fixed.FromInt(0), fixed.FromInt(10), fixed.FromInt(2), 0, 0, false, false, Line, 0)
	l.addVSegment(fixed.FromInt(0), fixed.FromInt(10), fixed.FromInt(8), 0, 0, false, false, Line, 0)
	for i := 1; i < len(l.Right); i++ {
		if l.Right[i-1].Loc > l.Right[i].Loc {
			t.Errorf("Right list not sorted ascending by Loc: %v", l.Right)
		}
	}
}
