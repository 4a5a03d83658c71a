// Package hintgen derives candidate stem-hint segments from a glyph
// path. A segment is a run of a path element that lies (exactly or
// nearly) along one axis: a vertical segment anchored at an x location
// spanning a y range, or a horizontal segment anchored at a y location
// spanning an x range. Segments are the raw material the evaluator
// (hinteval) pairs up into candidate stem hints. Grounded on gen.c.
package hintgen

import "github.com/appleboy/psautohint/fixed"

// Type classifies how a segment was derived.
type Type int

const (
	Line Type = iota
	Curve
	Bend
	Ghost
)

// Segment is a candidate stem edge: a run along Loc (x for a vertical
// segment, y for a horizontal one) spanning [Min, Max] on the other
// axis. Elt/Elt2 are the glyphpath element indices it was derived
// from, used later to test subpath adjacency (glyphpath.CheckBBoxes)
// and to drive hint placement. Bonus is a glyph-type-dependent score
// boost (e.g. sol/eol characters); it is folded into evaluation as a
// tie-breaking spc contribution. Grounded on gen.c's HintSeg struct.
type Segment struct {
	Loc      fixed.Int
	Min, Max fixed.Int
	Type     Type
	Bonus    fixed.Int
	Elt      int
	Elt2     int
	HasElt   bool
	HasElt2  bool
}

// BBoxElt returns the path element this segment's bounding-box checks
// should use, preferring Elt2 (mirroring AddSegment's e2-overrides-e1
// rule, since the call sites here almost always supply the adjacency
// pair in that order) and falling back to Elt.
func (s *Segment) BBoxElt() (int, bool) {
	if s.HasElt2 {
		return s.Elt2, true
	}
	if s.HasElt {
		return s.Elt, true
	}
	return 0, false
}

// Lists holds the four segment runs the generator produces: Left/Right
// for vertical stems, Bot/Top for horizontal stems. Each run is kept
// sorted ascending by Loc, mirroring gen.c's gSegLists[0..3] linked
// lists (0=left,1=right,2=bot,3=top).
type Lists struct {
	Left, Right []*Segment
	Bot, Top    []*Segment
}

func insertSorted(list []*Segment, s *Segment) []*Segment {
	i := 0
	for i < len(list) && list[i].Loc < s.Loc {
		i++
	}
	out := make([]*Segment, 0, len(list)+1)
	out = append(out, list[:i]...)
	out = append(out, s)
	out = append(out, list[i:]...)
	return out
}

// addVSegment records a candidate vertical segment, placing it in the
// Left list if from>to (as seen in device space) or Right otherwise,
// matching AddSegment's lftLstNm/rghtLstNm convention for axis 1/0.
func (l *Lists) addVSegment(from, to, loc fixed.Int, elt, elt2 int, hasElt, hasElt2 bool, typ Type, bonus fixed.Int) {
	s := &Segment{Type: typ, Bonus: bonus, Elt: elt, Elt2: elt2, HasElt: hasElt, HasElt2: hasElt2, Loc: loc}
	if from > to {
		s.Max, s.Min = from, to
		l.Left = insertSorted(l.Left, s)
	} else {
		s.Max, s.Min = to, from
		l.Right = insertSorted(l.Right, s)
	}
}

// addHSegment is addVSegment's horizontal-axis counterpart: Bot/Top in
// place of Left/Right, matching AddSegment's lftLstNm=2 (bot),
// rghtLstNm=3 (top).
func (l *Lists) addHSegment(from, to, loc fixed.Int, elt, elt2 int, hasElt, hasElt2 bool, typ Type, bonus fixed.Int) {
	s := &Segment{Type: typ, Bonus: bonus, Elt: elt, Elt2: elt2, HasElt: hasElt, HasElt2: hasElt2, Loc: loc}
	if from > to {
		s.Max, s.Min = from, to
		l.Bot = insertSorted(l.Bot, s)
	} else {
		s.Max, s.Min = to, from
		l.Top = insertSorted(l.Top, s)
	}
}
