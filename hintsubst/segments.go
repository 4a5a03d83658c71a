package hintsubst

import (
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
)

// segOf type-asserts a SegRef back to its concrete segment. Every
// SegRef this package sees was produced by component D (hintgen), the
// only producer of glyphpath.SegRef values.
func segOf(ref glyphpath.SegRef) *hintgen.Segment {
	s, _ := ref.Seg.(*hintgen.Segment)
	return s
}

// attachSegments populates each referenced element's HSegs/VSegs with
// the segments that back vals, deduplicated by pointer identity. The
// original engine attaches a segment to its element the moment
// AddSegment creates it (gen.c); this port defers the attachment to
// this single pass once the candidate value lists are final, since
// hintsubst is the first stage that needs the per-element segment
// lists at all.
func attachSegments(path *glyphpath.Path, vals []*hinteval.Value, vert bool) {
	seen := make(map[*hintgen.Segment]bool)
	attach := func(seg *hintgen.Segment) {
		if seg == nil || seen[seg] {
			return
		}
		seen[seg] = true
		ref := glyphpath.SegRef{Seg: seg}
		if seg.HasElt {
			appendSegRef(path, seg.Elt, vert, ref)
		}
		if seg.HasElt2 && seg.Elt2 != seg.Elt {
			appendSegRef(path, seg.Elt2, vert, ref)
		}
	}
	for _, v := range vals {
		attach(v.Seg1)
		attach(v.Seg2)
	}
}

func appendSegRef(path *glyphpath.Path, elt int, vert bool, ref glyphpath.SegRef) {
	e := path.At(elt)
	if vert {
		e.VSegs = append(e.VSegs, ref)
	} else {
		e.HSegs = append(e.HSegs, ref)
	}
}

func segList(e *glyphpath.Element, vert bool) []glyphpath.SegRef {
	if vert {
		return e.VSegs
	}
	return e.HSegs
}

func setSegList(e *glyphpath.Element, vert bool, list []glyphpath.SegRef) {
	if vert {
		e.VSegs = list
	} else {
		e.HSegs = list
	}
}

// removeDupLinks drops later entries in list that name a segment
// already present earlier, keeping the first occurrence. Grounded on
// auto.c's RemDupLnks, the prefiltering pass CheckHintSegs runs on an
// element's link list before testing it for conflicts.
func removeDupLinks(list []glyphpath.SegRef) []glyphpath.SegRef {
	out := list[:0:0]
	seen := make(map[*hintgen.Segment]bool, len(list))
	for _, ref := range list {
		seg := segOf(ref)
		if seg != nil && seen[seg] {
			continue
		}
		if seg != nil {
			seen[seg] = true
		}
		out = append(out, ref)
	}
	return out
}
