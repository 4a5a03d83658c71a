package mmtransfer

import (
	"errors"
	"fmt"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintsubst"
)

// ErrTopologyMismatch reports that two masters' paths don't line up
// element-for-element closely enough to transfer hints between them.
// Grounded on charpath.c's "Malformed path list" abort in ChangetoCurve
// and its callers.
var ErrTopologyMismatch = errors.New("mmtransfer: path topology mismatch")

// RecordReferences captures, for every HintPoint in every bucket of a
// fully hinted source master, which element and point-type each side
// of the pair came from, so the same point can be re-evaluated on a
// different master's path. Grounded on charpath.c's WriteHints walk
// that feeds GetPointType for every hint element.
func RecordReferences(path *glyphpath.Path, sets [][]hintsubst.HintPoint) [][]HintReference {
	out := make([][]HintReference, len(sets))
	for i, set := range sets {
		refs := make([]HintReference, len(set))
		for j, pt := range set {
			vert := pt.Code == 'y' || pt.Code == 'm'
			refs[j] = HintReference{
				Code:  pt.Code,
				Side1: recordSide(path, pt.Elt1, vert, pt.Loc1),
				Side2: recordSide(path, pt.Elt2, vert, pt.Loc2),
			}
		}
		out[i] = refs
	}
	return out
}

func recordSide(path *glyphpath.Path, elt int, vert bool, value fixed.Int) Reference {
	if elt == glyphpath.None {
		return Reference{ElementIndex: glyphpath.None, Kind: Ghost, SourceValue: value}
	}
	start, end := axisValues(path, elt, vert)
	return Reference{
		ElementIndex: elt,
		Kind:         classifyKind(path, elt, vert, value),
		SourceStart:  start,
		SourceEnd:    end,
		SourceValue:  value,
	}
}

// Transfer re-evaluates refs against otherPath, first reconciling the
// two paths' element-type sequences (promoting a Line to a Curve by
// the 1/3 rule when only one side bent into a curve) and aborting with
// ErrTopologyMismatch on any inconsistency beyond that. Grounded on
// spec.md 4.J and charpath.c's InsertHint.
func Transfer(sourcePath, otherPath *glyphpath.Path, refs [][]HintReference) ([][]hintsubst.HintPoint, error) {
	if err := reconcileTopology(sourcePath, otherPath); err != nil {
		return nil, err
	}

	out := make([][]hintsubst.HintPoint, len(refs))
	for i, set := range refs {
		pts := make([]hintsubst.HintPoint, len(set))
		for j, r := range set {
			pts[j] = synthesizePoint(otherPath, r)
		}
		out[i] = pts
	}
	return out, nil
}

func synthesizePoint(path *glyphpath.Path, r HintReference) hintsubst.HintPoint {
	vert := r.Code == 'y' || r.Code == 'm'

	if r.Side1.Kind == Ghost {
		v := synthesizeSide(path, r.Side2, vert)
		return hintsubst.HintPoint{Code: r.Code, Loc1: v, Loc2: v, Elt1: glyphpath.None, Elt2: r.Side2.ElementIndex, Ghost: true}
	}
	if r.Side2.Kind == Ghost {
		v := synthesizeSide(path, r.Side1, vert)
		return hintsubst.HintPoint{Code: r.Code, Loc1: v, Loc2: v, Elt1: r.Side1.ElementIndex, Elt2: glyphpath.None, Ghost: true}
	}

	loc1 := synthesizeSide(path, r.Side1, vert)
	loc2 := synthesizeSide(path, r.Side2, vert)
	elt1, elt2 := r.Side1.ElementIndex, r.Side2.ElementIndex
	if loc2 < loc1 {
		loc1, loc2 = loc2, loc1
		elt1, elt2 = elt2, elt1
	}
	return hintsubst.HintPoint{Code: r.Code, Loc1: loc1, Loc2: loc2, Elt1: elt1, Elt2: elt2}
}

// synthesizeSide re-evaluates one Reference's point type against
// path's own coordinates. Grounded on charpath.c's InsertHint, case by
// case over STARTPT/ENDPT/AVERAGE/CURVEBBOX/FLATTEN.
func synthesizeSide(path *glyphpath.Path, r Reference, vert bool) fixed.Int {
	start, end := axisValues(path, r.ElementIndex, vert)

	switch r.Kind {
	case Start:
		return start
	case End:
		return end
	case Avg:
		return (start + end) / 2
	case CurveBBoxKind:
		if v, ok := curveBBoxValue(path, r.ElementIndex, vert); ok {
			return v
		}
		return relativePosition(r.SourceStart, r.SourceEnd, start, end, r.SourceValue)
	case Flatten:
		e := path.At(r.ElementIndex)
		x0, y0, x1, y1 := path.EndPoints(r.ElementIndex)
		if e.Kind == glyphpath.Curve {
			report, ok := inflectionPoint(
				fixed.Point{X: x0, Y: y0},
				fixed.Point{X: e.X1, Y: e.Y1},
				fixed.Point{X: e.X2, Y: e.Y2},
				fixed.Point{X: x1, Y: y1},
				vert,
			)
			if ok {
				return report
			}
		}
		return relativePosition(r.SourceStart, r.SourceEnd, start, end, r.SourceValue)
	default:
		return relativePosition(r.SourceStart, r.SourceEnd, start, end, r.SourceValue)
	}
}

// reconcileTopology walks both paths in lockstep, promoting a lone
// Line to a Curve (via the 1/3 rule) wherever the other master bent
// the same element into a curve, and aborting on any mismatch that
// promotion can't paper over: a different element count, a Move/Close
// out of step with the other path, or two curves where only one
// should be.
func reconcileTopology(a, b *glyphpath.Path) error {
	ea, eb := a.Start(), b.Start()
	for ea != glyphpath.None && eb != glyphpath.None {
		ka, kb := a.At(ea).Kind, b.At(eb).Kind
		switch {
		case ka == kb:
			// already aligned
		case ka == glyphpath.Line && kb == glyphpath.Curve:
			promoteToCurve(a, ea)
		case ka == glyphpath.Curve && kb == glyphpath.Line:
			promoteToCurve(b, eb)
		default:
			return fmt.Errorf("%w: element %d is %v in one master and %v in the other", ErrTopologyMismatch, ea, ka, kb)
		}
		ea, eb = a.Next(ea), b.Next(eb)
	}
	if ea != glyphpath.None || eb != glyphpath.None {
		return fmt.Errorf("%w: masters have different element counts", ErrTopologyMismatch)
	}
	return nil
}

// promoteToCurve turns a Line element into a Curve with the same
// endpoint, placing its control points a third and two-thirds of the
// way along the original chord. Grounded on spec.md 4.J step 1 and
// charpath.c's ChangetoCurve. The element is mutated in place, keeping
// its index stable so Reference.ElementIndex stays valid.
func promoteToCurve(path *glyphpath.Path, elt int) {
	x0, y0, x1, y1 := path.EndPoints(elt)
	e := path.At(elt)
	e.Kind = glyphpath.Curve
	e.X1 = x0 + (x1-x0)/3
	e.Y1 = y0 + (y1-y0)/3
	e.X2 = x0 + 2*(x1-x0)/3
	e.Y2 = y0 + 2*(y1-y0)/3
	e.X3, e.Y3 = x1, y1
}
