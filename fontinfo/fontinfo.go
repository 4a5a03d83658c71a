// Package fontinfo models the per-font hinting parameters that drive
// alignment-zone and stem-width decisions: blue zones (bands), dominant
// stem widths, counter-hinted glyph lists and the handful of boolean
// switches the original engine read out of a fontinfo text file.
// Reading that text file is a Non-goal of this module (callers build a
// FontInfo value directly, or use ParseFontInfo for the one textual
// format worth keeping for interoperability with existing tooling);
// what matters here is the parameter set and the handful of small
// predicates (InBlueBand, MatchesStemWidth) the hinting pipeline
// queries at every turn. Grounded on fontinfo.c's ReadFontInfo and
// ac.h's field declarations.
package fontinfo

import "github.com/appleboy/psautohint/fixed"

// MaxStems is the maximum number of stem-snap/dominant-stem entries per
// axis. Grounded on ac.h's MAXSTEMS.
const MaxStems = 20

// MaxBlues is the maximum number of alignment-zone edges per axis (top
// or bottom). Grounded on ac.h's MAXBLUES.
const MaxBlues = 20

// Band is one alignment zone: [Lo, Hi] in font units, where Hi is
// the zone's overshoot edge and Lo its baseline edge (or vice versa,
// depending on whether it is a top or bottom zone). Bands are stored
// flattened in pairs in the original engine's gTopBands/gBotBands
// arrays; here each pair is a Band value.
type Band struct {
	Lo, Hi fixed.Int
}

// FontInfo holds the hinting-relevant subset of a font's parameters.
// It plays the role of the original engine's battery of gXxx globals
// (ac.h) and is the one configuration object the rest of the pipeline
// depends on, in the spirit of the teacher's raster.Rasterizer holding
// its own tunables as struct fields rather than package globals.
type FontInfo struct {
	// TopBands and BotBands are the font's alignment zones, grounded on
	// fontinfo.c's CapHeight/LcHeight/AscenderHeight/.../BaselineYCoord
	// construction into gTopBands/gBotBands.
	TopBands []Band
	BotBands []Band

	// HStems and VStems are the dominant/snap stem widths, ascending
	// and unique (ParseIntStems's contract). Populated from StemSnapH/V,
	// falling back to DominantH/V when no snap values are given.
	HStems []fixed.Int
	VStems []fixed.Int

	// BlueFuzz widens every blue-band comparison by this many units in
	// each direction so near misses still count as "in the zone".
	BlueFuzz fixed.Int

	// FlexOK enables flex-candidate detection; FlexStrict additionally
	// requires the flex candidate's curves to be convex (see pathedit).
	FlexOK     bool
	FlexStrict bool

	// VCounterChars and HCounterChars list glyph names that receive
	// counter-hinting (hinting that favors equal counter widths over
	// exact stem alignment) in addition to the engine's built-in lists.
	VCounterChars []string
	HCounterChars []string
}

// defaultVHintList and defaultHHintList are glyphs counter-hinted by
// default, independent of any fontinfo entry. Grounded on charprop.c's
// gVHintList/gHHintList initializers.
var (
	defaultVHintList = []string{"m", "M", "T", "ellipsis"}
	defaultHHintList = []string{"element", "equivalence", "notelement", "divide"}
)

// IsVCounterGlyph reports whether name is hinted via vertical counters,
// either by the engine's built-in list or the font's VCounterChars.
func (fi *FontInfo) IsVCounterGlyph(name string) bool {
	return inList(name, defaultVHintList) || inList(name, fi.VCounterChars)
}

// IsHCounterGlyph is the horizontal-axis analogue of IsVCounterGlyph.
func (fi *FontInfo) IsHCounterGlyph(name string) bool {
	return inList(name, defaultHHintList) || inList(name, fi.HCounterChars)
}

func inList(name string, list []string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}

// InBlueBand reports whether loc falls within one of the given bands,
// widened by fuzz in each direction. Grounded on gen.c's InBlueBand.
// The original negates loc before comparing because the engine's
// internal y-axis runs opposite the font's; this module keeps
// coordinates in the font's own orientation, so no negation is needed.
func InBlueBand(loc fixed.Int, bands []Band, fuzz fixed.Int) bool {
	for _, b := range bands {
		if b.Lo-fuzz <= loc && loc <= b.Hi+fuzz {
			return true
		}
	}
	return false
}

// NearMissBand returns the band that loc falls within the fuzz
// tolerance of, and true, or the zero Band and false if none matches.
// It applies the same test as InBlueBand but also returns the matching
// band, for diagnostics: it identifies
// which zone a near-miss coordinate is being snapped toward.
func NearMissBand(loc fixed.Int, bands []Band, fuzz fixed.Int) (Band, bool) {
	for _, b := range bands {
		if b.Lo-fuzz <= loc && loc <= b.Hi+fuzz {
			return b, true
		}
	}
	return Band{}, false
}

// MatchesStemWidth reports whether w equals one of the font's dominant
// or stem-snap widths on the given axis list. Grounded on eval.c's
// EvalHPair/EvalVPair loops comparing a candidate width against
// gHStems/gVStems to award the spc priority bonus.
func MatchesStemWidth(w fixed.Int, stems []fixed.Int) bool {
	for _, sw := range stems {
		if w == sw {
			return true
		}
	}
	return false
}
