package autohint

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/fontinfo"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
	"github.com/appleboy/psautohint/hintpick"
	"github.com/appleboy/psautohint/hintprune"
	"github.com/appleboy/psautohint/hintsubst"
	"github.com/appleboy/psautohint/pathedit"
)

// Hint runs the pipeline against path to completion: structural edit
// → segment generation → pair evaluation → prune/merge → pick → bbox
// fallback → hint substitution planning. The loop is the one
// transcribed from spec.md §4.K: PreCheck → (if FlexOK) AutoAddFlex →
// CheckSmooth → generate → evaluate → prune/merge → pick → install a
// bbox-derived stem on whichever axis picked nothing (hintpick.
// AddBBoxFallback, so a glyph with no admissible stem pairs on an axis
// still ships with an edge hint there instead of none) → plan
// substitution → if a structural
// edit fired during this attempt, reset scratch state and retry
// (bounded at Options.MaxRetries, default 2) → else return the
// finalized hint sets. Only PreCheck/AutoAddFlex/CheckSmooth — the
// edits named explicitly in spec.md §4.K's loop — count toward the
// retry trigger; conflict-resolution edits the planner makes internally
// (pathedit.ResolveConflict, reached via hintsubst.CheckElmntHintSegs)
// are scoped to the substitution pass and do not themselves restart
// the outer loop, since by the time they run the pass has already
// finished generating and evaluating segments against the pre-edit
// path, and the planner's own conflict resolution already converges
// within that single pass.
func (c *Context) Hint(path *glyphpath.Path) (*Result, error) {
	c.Path = path
	c.retries = 0

	for {
		changed := false
		if c.Options.AllowEdit {
			if pathedit.PreCheck(path) {
				changed = true
			}
			if c.Options.flexOK(c.FontInfo) {
				if pathedit.AutoAddFlex(path, c.FontInfo) {
					changed = true
				}
			}
			if pathedit.CheckSmooth(path) {
				changed = true
			}
		}

		if path.Start() == glyphpath.None {
			return &Result{Sets: [][]hintsubst.HintPoint{nil}}, nil
		}

		c.segs = hintgen.Generate(path)

		rep := c.reporter()
		c.hVals = hinteval.EvalH(path, c.segs, c.hstems(), c.FontInfo, rep)
		c.vVals = hinteval.EvalV(path, c.segs, c.vstems(), rep)

		c.hVals = hintprune.PruneH(path, c.hVals, c.FontInfo)
		hintprune.Merge(path, c.hVals, false, c.FontInfo)

		c.vVals = hintprune.PruneV(path, c.vVals)
		hintprune.Merge(path, c.vVals, true, c.FontInfo)

		hPicks := hintpick.Pick(c.hVals, hintpick.Horizontal, c.FontInfo)
		vPicks := hintpick.Pick(c.vVals, hintpick.Vertical, c.FontInfo)

		if len(hPicks) == 0 {
			hPicks = append(hPicks, hintpick.AddBBoxFallback(path, hintpick.Horizontal, false, hPicks)...)
		}
		if len(vPicks) == 0 {
			vPicks = append(vPicks, hintpick.AddBBoxFallback(path, hintpick.Vertical, false, vPicks)...)
		}

		fi := c.FontInfo
		if fi == nil {
			fi = &fontinfo.FontInfo{}
		}
		if fi.IsHCounterGlyph(c.name) {
			if triad, ok := hintpick.UseCounter(hPicks, false, rep); ok {
				hPicks = triad
			}
		}
		if fi.IsVCounterGlyph(c.name) {
			if triad, ok := hintpick.UseCounter(vPicks, true, rep); ok {
				vPicks = triad
			}
		}

		c.hPrimary = pairsToValues(hPicks)
		c.vPrimary = pairsToValues(vPicks)

		sets, err := c.plan(path)
		if err != nil {
			return nil, err
		}

		if !changed {
			return &Result{Sets: sets}, nil
		}
		if c.retries >= c.Options.maxRetries() {
			return &Result{Sets: sets}, nil
		}
		c.retries++
		c.Observer.Retry(c.name, c.retries)
	}
}

// plan builds the finalized hint-set buckets. When Options.AllowHintSub
// is false, it feeds the planner nil candidate-value lists instead of
// c.hVals/c.vVals: with nothing attached to any element, Plan's
// element walk never finds a conflict to open a new bucket on, so it
// degenerates to exactly the main set (bucket 0) the primary picks
// already seeded — without duplicating Planner's unexported
// bookkeeping here.
func (c *Context) plan(path *glyphpath.Path) ([][]hintsubst.HintPoint, error) {
	pl := hintsubst.NewPlanner()
	hVals, vVals := c.hVals, c.vVals
	if !c.Options.AllowHintSub {
		hVals, vVals = nil, nil
	}
	return pl.Plan(path, hVals, vVals, c.hPrimary, c.vPrimary, c.FontInfo)
}

func (c *Context) hstems() []fixed.Int {
	if c.FontInfo == nil {
		return nil
	}
	return c.FontInfo.HStems
}

func (c *Context) vstems() []fixed.Int {
	if c.FontInfo == nil {
		return nil
	}
	return c.FontInfo.VStems
}

func pairsToValues(picks []hintpick.Pair) []*hinteval.Value {
	out := make([]*hinteval.Value, len(picks))
	for i, p := range picks {
		out[i] = p.Value
	}
	return out
}
