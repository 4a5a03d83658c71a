// Package hintsubst decides, element by element, when the glyph's main
// stem hints stop applying and a fresh "hint set" must take over, then
// emits the resulting buckets of hint points. Grounded on auto.c's
// AutoExtraHints pipeline in full.
package hintsubst

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/hinteval"
)

// HintPoint is one emitted stem hint: a pair of coordinates on a single
// axis (Loc1 <= Loc2) tagged with the character code the emitter uses
// to distinguish a normal horizontal stem ('b') from a normal vertical
// one ('y'), and their main-hints-only counterparts ('v' and 'm'
// respectively, used when an axis is forced to rely solely on its main
// hint set). Elt1/Elt2 name the path elements the winning segments
// came from, glyphpath.None when that side is a ghost with no real
// segment. Grounded on control.c's AddHPair/AddVPair/AddColorPoint.
type HintPoint struct {
	Code       byte
	Loc1, Loc2 fixed.Int
	Elt1, Elt2 int
	Ghost      bool
}

// HintSet is one numbered hint-set bucket. Bucket 0 is the glyph's
// main, always-on set; every other bucket holds the hints that took
// over starting at the path element that opened it (that element's
// NewHints field names the bucket). Grounded on write.c's
// gPtLstArray[e->newhints] indexing.
type HintSet struct {
	Points []HintPoint
}

// codeOrder ranks hint codes for the deterministic finalize sort:
// 'b' < 'y' < 'v' < 'm'.
var codeOrder = map[byte]int{'b': 0, 'y': 1, 'v': 2, 'm': 3}

// Planner walks a path once its candidate hints have been picked,
// deciding where the active hint set must change and emitting the
// resulting hint-set buckets. A Planner is single-use: call Plan once
// per glyph. Grounded on auto.c's gHHinting/gVHinting/gPtLstArray
// globals, folded into instance fields so nothing leaks across glyphs.
type Planner struct {
	sets          [][]HintPoint
	currentBucket int

	hActive []*hinteval.Value
	vActive []*hinteval.Value

	mergeMain bool

	// UseH and UseV force an axis to rely solely on its main hint set,
	// skipping per-element resubstitution entirely. Grounded on
	// auto.c's gUseH/gUseV, which the source derives from whether the
	// axis has any stems at all anywhere in the glyph; this port
	// leaves that decision to the caller rather than inferring it.
	UseH, UseV bool

	// MoveToNewHints mirrors AutoExtraHints's movetoNewHints argument:
	// when true (the default), every Move element unconditionally
	// opens a fresh hint set rather than only on an actual conflict.
	MoveToNewHints bool
}

// NewPlanner returns a Planner ready for one glyph's Plan call.
func NewPlanner() *Planner {
	return &Planner{MoveToNewHints: true}
}

func containsVal(list []*hinteval.Value, v *hinteval.Value) bool {
	for _, c := range list {
		if c == v {
			return true
		}
	}
	return false
}

func cloneVals(list []*hinteval.Value) []*hinteval.Value {
	return append([]*hinteval.Value(nil), list...)
}
