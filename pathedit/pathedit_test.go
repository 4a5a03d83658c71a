package pathedit

import (
	"testing"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
)

func buildSquare() *glyphpath.Path {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendClose()
	return p
}

func TestPreCheckTrimsTrailingMove(t *testing.T) {
	p := buildSquare()
	p.AppendMove(fixed.FromInt(5), fixed.FromInt(5))
	if !PreCheck(p) {
		t.Fatal("expected PreCheck to report a change")
	}
	if p.At(p.End()).Kind != glyphpath.Close {
		t.Errorf("expected trailing Move to be trimmed, path ends in %v", p.At(p.End()).Kind)
	}
}

func TestPreCheckCollapsesDoubleClose(t *testing.T) {
	p := buildSquare()
	p.AppendClose()
	if !PreCheck(p) {
		t.Fatal("expected PreCheck to report a change")
	}
	if !ValidStructure(p) {
		t.Error("expected path to be well-formed after collapsing the double close")
	}
}

func TestPreCheckNoOpOnWellFormedPath(t *testing.T) {
	p := buildSquare()
	if PreCheck(p) {
		t.Error("expected no changes on an already well-formed path")
	}
}

func TestValidStructureAcceptsSquare(t *testing.T) {
	if !ValidStructure(buildSquare()) {
		t.Error("expected a single Move...Close subpath to be valid")
	}
}

func TestCheckForDuplicateSubpathsDetectsCopy(t *testing.T) {
	p := buildSquare()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendClose()

	dup, _ := CheckForDuplicateSubpaths(p)
	if !dup {
		t.Error("expected the pasted-twice subpath to be detected")
	}
}

func TestCheckForDuplicateSubpathsAcceptsDistinctSubpaths(t *testing.T) {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendClose()

	p.AppendMove(fixed.FromInt(20), fixed.FromInt(20))
	p.AppendLine(fixed.FromInt(40), fixed.FromInt(20))
	p.AppendLine(fixed.FromInt(40), fixed.FromInt(40))
	p.AppendLine(fixed.FromInt(20), fixed.FromInt(40))
	p.AppendClose()

	if dup, _ := CheckForDuplicateSubpaths(p); dup {
		t.Error("expected distinct subpaths not to be flagged")
	}
}

func TestCheckPathBBoxSanityAcceptsSquare(t *testing.T) {
	if !CheckPathBBoxSanity(buildSquare()) {
		t.Error("expected a normal square glyph to pass bbox sanity")
	}
}

func TestCheckPathBBoxSanityRejectsDegeneratePoint(t *testing.T) {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendClose()
	if CheckPathBBoxSanity(p) {
		t.Error("expected a single-point path to fail bbox sanity")
	}
}

func TestLinearCurveToLineConvertsCollinearControls(t *testing.T) {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	c := p.AppendCurve(
		fixed.FromInt(10), fixed.FromInt(10),
		fixed.FromInt(20), fixed.FromInt(20),
		fixed.FromInt(30), fixed.FromInt(30),
	)
	if !LinearCurveToLine(p, c) {
		t.Fatal("expected a collinear curve to convert to a line")
	}
	if p.At(c).Kind != glyphpath.Line {
		t.Errorf("expected element to become a Line, got %v", p.At(c).Kind)
	}
}

func TestLinearCurveToLineRejectsCurvedControl(t *testing.T) {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	c := p.AppendCurve(
		fixed.FromInt(0), fixed.FromInt(30),
		fixed.FromInt(30), fixed.FromInt(30),
		fixed.FromInt(30), fixed.FromInt(0),
	)
	if LinearCurveToLine(p, c) {
		t.Error("expected a genuinely curved control polygon to be rejected")
	}
}
