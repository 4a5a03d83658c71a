package mmtransfer

import (
	"errors"
	"testing"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintsubst"
)

func buildSquare() *glyphpath.Path {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(0))
	p.AppendClose()
	return p
}

func TestTransferRoundTripsExactlyOnIdenticalPath(t *testing.T) {
	p := buildSquare()
	line := p.Next(p.Start())

	sets := [][]hintsubst.HintPoint{{
		{Code: 'b', Loc1: 0, Loc2: fixed.FromInt(100), Elt1: line, Elt2: line},
	}}

	refs := RecordReferences(p, sets)
	out, err := Transfer(p, p, refs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || len(out[0]) != 1 {
		t.Fatalf("expected one bucket with one point, got %v", out)
	}
	got := out[0][0]
	want := sets[0][0]
	if got.Loc1 != want.Loc1 || got.Loc2 != want.Loc2 || got.Code != want.Code {
		t.Errorf("round trip on an identical path changed the point: got %+v, want %+v", got, want)
	}
}

func TestTransferHandlesGhostSide(t *testing.T) {
	p := buildSquare()
	line := p.Next(p.Start())

	sets := [][]hintsubst.HintPoint{{
		{Code: 'y', Loc1: 0, Loc2: 0, Elt1: glyphpath.None, Elt2: line, Ghost: true},
	}}

	refs := RecordReferences(p, sets)
	out, err := Transfer(p, p, refs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out[0][0]
	if !got.Ghost || got.Loc1 != got.Loc2 {
		t.Errorf("expected a collapsed ghost pair, got %+v", got)
	}
	if got.Loc1 != 0 {
		t.Errorf("expected the ghost value to match the real side's start point, got %v", got.Loc1)
	}
}

func TestReconcileTopologyPromotesLineToMatchCurve(t *testing.T) {
	a := glyphpath.New()
	a.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	la := a.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	a.AppendClose()

	b := glyphpath.New()
	b.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	b.AppendCurve(fixed.FromInt(0), fixed.FromInt(33), fixed.FromInt(0), fixed.FromInt(67), fixed.FromInt(0), fixed.FromInt(100))
	b.AppendClose()

	if err := reconcileTopology(a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.At(la).Kind != glyphpath.Curve {
		t.Error("expected the Line element to be promoted to a Curve")
	}
}

func TestReconcileTopologyRejectsStructuralMismatch(t *testing.T) {
	a := glyphpath.New()
	a.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	a.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	a.AppendClose()

	b := glyphpath.New()
	b.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	b.AppendMove(fixed.FromInt(0), fixed.FromInt(100))
	b.AppendClose()

	err := reconcileTopology(a, b)
	if !errors.Is(err, ErrTopologyMismatch) {
		t.Errorf("expected ErrTopologyMismatch, got %v", err)
	}
}
