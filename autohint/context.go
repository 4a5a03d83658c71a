// Package autohint orchestrates the whole hinting pipeline — segment
// generation, pair evaluation, pruning/merging, picking, path editing
// and hint substitution — into the single entry point a caller drives
// per glyph. Grounded on control.c's AutoColorGlyph/AddColorsInnerLoop/
// InitAll and the teacher's Hinter-as-Context pattern in
// freetype/truetype/hint.go.
package autohint

import (
	"github.com/appleboy/psautohint/fontinfo"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
	"github.com/appleboy/psautohint/report"
)

// Context holds everything one glyph's hinting pass needs, replacing
// the original engine's battery of process globals (arena, segment
// lists, picked hints, callback pointers) with fields on a struct
// passed by pointer, the way freetype/truetype/hint.go's Hinter holds
// graphicsState/stack/store/points/ends. A Context is reusable across
// glyphs (Hint resets its own scratch fields at the top of every call)
// but is not safe for concurrent use by multiple goroutines; a caller
// hinting glyphs in parallel gives each goroutine its own Context.
type Context struct {
	Path     *glyphpath.Path
	FontInfo *fontinfo.FontInfo
	Options  Options
	Observer report.Observer

	name               string
	segs               *hintgen.Lists
	hVals, vVals       []*hinteval.Value
	hPrimary, vPrimary []*hinteval.Value
	retries            int
}

// NewContext builds a Context ready to hint glyphs against fi under
// opts, reporting through obs. A nil obs is replaced with
// report.NopObserver{}.
func NewContext(fi *fontinfo.FontInfo, opts Options, obs report.Observer) *Context {
	if obs == nil {
		obs = report.NopObserver{}
	}
	return &Context{FontInfo: fi, Options: opts, Observer: obs}
}

// Name sets the glyph name attached to every report the next Hint call
// produces. Optional; the zero value ("") is reported as-is.
func (c *Context) Name(name string) *Context {
	c.name = name
	return c
}

func (c *Context) reporter() reporterAdapter {
	return reporterAdapter{obs: c.Observer, name: c.name}
}
