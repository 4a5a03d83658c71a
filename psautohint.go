// Package psautohint re-exports the small set of types a typical
// caller needs, so code driving the hinting engine doesn't also need
// to import the autohint/fontinfo/hintsubst/report packages directly.
// Grounded on the teacher's freetype.go, which re-exports
// truetype.Parse as ParseFont for the same reason.
package psautohint

import (
	"github.com/appleboy/psautohint/autohint"
	"github.com/appleboy/psautohint/bez"
	"github.com/appleboy/psautohint/fontinfo"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintsubst"
	"github.com/appleboy/psautohint/report"
)

// Context drives one glyph's hinting pass. See autohint.Context.
type Context = autohint.Context

// Options configures a Context's behavior. See autohint.Options.
type Options = autohint.Options

// Result holds the finalized hint-set buckets a Hint call produced.
// See autohint.Result.
type Result = autohint.Result

// FontInfo holds the hinting-relevant subset of a font's parameters.
// See fontinfo.FontInfo.
type FontInfo = fontinfo.FontInfo

// Band is one alignment zone. See fontinfo.Band.
type Band = fontinfo.Band

// HintSet is one numbered hint-set bucket. See hintsubst.HintSet.
type HintSet = hintsubst.HintSet

// HintPoint is one emitted stem hint. See hintsubst.HintPoint.
type HintPoint = hintsubst.HintPoint

// Observer receives hinting diagnostics. See report.Observer.
type Observer = report.Observer

// NewContext builds a Context ready to hint glyphs against fi under
// opts, reporting through obs. See autohint.NewContext.
func NewContext(fi *FontInfo, opts Options, obs Observer) *Context {
	return autohint.NewContext(fi, opts, obs)
}

// ParseBez parses a bez-format glyph outline. See bez.Parse.
func ParseBez(data string) (*glyphpath.Path, error) {
	return bez.Parse(data)
}

// EmitBez renders a Path back to bez text. See bez.EmitPath.
func EmitBez(p *glyphpath.Path) string {
	return bez.EmitPath(p)
}

// EmitHintedBez renders a Path together with its computed hint sets.
// See bez.EmitHinted.
func EmitHintedBez(p *glyphpath.Path, sets [][]HintPoint) string {
	return bez.EmitHinted(p, sets)
}

// ParseFontInfo parses a fontinfo text blob. See fontinfo.ParseFontInfo.
func ParseFontInfo(data string) (*FontInfo, error) {
	return fontinfo.ParseFontInfo(data)
}
