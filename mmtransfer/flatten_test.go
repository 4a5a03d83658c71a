package mmtransfer

import (
	"testing"

	"github.com/appleboy/psautohint/fixed"
)

func TestInflectionPointFindsReversalInSCurve(t *testing.T) {
	p0 := fixed.Point{X: 0, Y: 0}
	p1 := fixed.Point{X: fixed.FromInt(50), Y: fixed.FromInt(100)}
	p2 := fixed.Point{X: fixed.FromInt(50), Y: fixed.FromInt(-100)}
	p3 := fixed.Point{X: fixed.FromInt(100), Y: 0}

	if _, ok := inflectionPoint(p0, p1, p2, p3, false); !ok {
		t.Error("expected an S-curve to report a Y-direction reversal")
	}
}

func TestInflectionPointDeclinesOnMonotonicCurve(t *testing.T) {
	p0 := fixed.Point{X: 0, Y: 0}
	p1 := fixed.Point{X: fixed.FromInt(33), Y: fixed.FromInt(33)}
	p2 := fixed.Point{X: fixed.FromInt(67), Y: fixed.FromInt(67)}
	p3 := fixed.Point{X: fixed.FromInt(100), Y: fixed.FromInt(100)}

	if _, ok := inflectionPoint(p0, p1, p2, p3, false); ok {
		t.Error("expected a monotonic curve to report no reversal")
	}
}

func TestRelativePositionScalesBetweenEndpoints(t *testing.T) {
	got := relativePosition(0, fixed.FromInt(100), fixed.FromInt(200), fixed.FromInt(400), fixed.FromInt(25))
	want := fixed.FromInt(250)
	if got != want {
		t.Errorf("relativePosition = %v, want %v", got, want)
	}
}

func TestRelativePositionFallsBackWhenSourceSpanIsZero(t *testing.T) {
	got := relativePosition(fixed.FromInt(10), fixed.FromInt(10), fixed.FromInt(200), fixed.FromInt(400), fixed.FromInt(15))
	want := fixed.FromInt(205)
	if got != want {
		t.Errorf("relativePosition with zero source span = %v, want %v", got, want)
	}
}
