package hintsubst

import (
	"sort"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/fontinfo"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
	"github.com/appleboy/psautohint/hintpick"
	"github.com/appleboy/psautohint/hintprune"
)

// getHintLsts reports an element's candidate list on each axis
// together with how it tests against that axis's currently active
// hints (already/conflict/addable). Grounded on auto.c's GetHintLsts.
func (pl *Planner) getHintLsts(path *glyphpath.Path, e int, hBest, vBest map[*hintgen.Segment]*hinteval.Value) (hLst, vLst []glyphpath.SegRef, h, v int) {
	if pl.UseH {
		h = already
	} else {
		hLst = path.At(e).HSegs
		if hLst == nil {
			h = already
		} else {
			h = testHintLst(hLst, hBest, pl.hActive, false)
		}
	}
	if pl.UseV {
		v = already
	} else {
		vLst = path.At(e).VSegs
		if vLst == nil {
			v = already
		} else {
			v = testHintLst(vLst, vBest, pl.vActive, true)
		}
	}
	return
}

// reHintBounds seeds an axis's active list, when empty, from the
// single closest primary candidate, and optionally folds bucket 0's
// hints into the bucket about to close out. Grounded on auto.c's
// ReHintBounds.
func (pl *Planner) reHintBounds(path *glyphpath.Path, e int, primaryH, primaryV []*hinteval.Value) {
	if !pl.UseH {
		if len(pl.hActive) == 0 {
			pl.cpyHint(path, e, primaryH, false)
		}
		if pl.mergeMain {
			pl.mergeFromMain('b')
		}
	}
	if !pl.UseV {
		if len(pl.vActive) == 0 {
			pl.cpyHint(path, e, primaryV, true)
		}
		if pl.mergeMain {
			pl.mergeFromMain('y')
		}
	}
}

// xtraHints opens a fresh hint-set bucket and records it on e, the
// port of auto.c's XtraHints (whose body, like MergeFromMainHints's,
// isn't present in the retrieved source — only its ac.h declaration
// and call sites survive). Its call sites leave no ambiguity about
// what it must do: allocate the next numbered hint set and point e at
// it, matching write.c's later indexing by e->newhints.
func (pl *Planner) xtraHints(e *glyphpath.Element) {
	pl.sets = append(pl.sets, nil)
	pl.currentBucket = len(pl.sets) - 1
	e.NewHints = pl.currentBucket
}

// startNewHinting opens a new hint set at e, seeds it from the main
// set when an axis is forced to rely on it, clears both active lists,
// and installs hLst/vLst as the new starting point. Grounded on
// auto.c's StartNewHinting.
func (pl *Planner) startNewHinting(path *glyphpath.Path, e int, hLst, vLst []glyphpath.SegRef, primaryH, primaryV []*hinteval.Value, hBest, vBest map[*hintgen.Segment]*hinteval.Value) {
	pl.reHintBounds(path, e, primaryH, primaryV)
	pl.xtraHints(path.At(e))
	if pl.UseV {
		pl.copyMain('m')
	}
	if pl.UseH {
		pl.copyMain('v')
	}
	pl.hActive, pl.vActive = nil, nil
	if !pl.UseH {
		pl.addHintLst(hLst, false, hBest)
	}
	if !pl.UseV {
		pl.addHintLst(vLst, true, vBest)
	}
}

func isOkTst(h, v int) bool { return h != conflict && v != conflict }
func isInTst(h, v int) bool { return h == already && v == already }

// Plan walks path once its candidate hints (hVals, vVals) and its
// picked main hint sets (primaryH, primaryV) are known, deciding where
// the main hint set must give way to a substituted one and returning
// the resulting buckets of hint points; bucket 0 is always the main
// set. Grounded on auto.c's AutoExtraHints, including the flare,
// conflict, promotion and short-element passes it runs first.
func (pl *Planner) Plan(path *glyphpath.Path, hVals, vVals, primaryH, primaryV []*hinteval.Value, fi *fontinfo.FontInfo) ([][]HintPoint, error) {
	pl.sets = [][]HintPoint{nil}
	pl.currentBucket = 0
	pl.hActive = cloneVals(primaryH)
	pl.vActive = cloneVals(primaryV)
	for _, v := range primaryH {
		pl.appendPoint(pl.hCode(), v)
	}
	for _, v := range primaryV {
		pl.appendPoint(pl.vCode(), v)
	}

	if path.Start() == glyphpath.None {
		return pl.sets, nil
	}

	attachSegments(path, hVals, false)
	attachSegments(path, vVals, true)

	hBest := hintpick.BestForSegs(hVals, fi)
	vBest := hintpick.BestForSegs(vVals, fi)

	pl.mergeMain = path.CountSubpaths() <= 5

	hintprune.RemoveFlares(path, hVals, false)
	hintprune.RemoveFlares(path, vVals, true)

	CheckElmntHintSegs(path, hBest, vBest)
	promoteHints(path)
	remShortHints(path)

	p := glyphpath.None
	tst := isOkTst
	newHints := true
	var mtH, mtV []*hinteval.Value

	for e := path.Start(); e != glyphpath.None; e = path.Next(e) {
		etype := path.At(e).Kind
		if pl.MoveToNewHints && etype == glyphpath.Move {
			pl.startNewHinting(path, e, nil, nil, primaryH, primaryV, hBest, vBest)
			tst = isOkTst
		}
		if newHints && e == p {
			pl.startNewHinting(path, e, nil, nil, primaryH, primaryV, hBest, vBest)
			pl.setHHints(mtH)
			pl.setVHints(mtV)
			tst = isInTst
		}

		hLst, vLst, h, v := pl.getHintLsts(path, e, hBest, vBest)

		if etype == glyphpath.Move && path.IsShort(path.GetClosedBy(e)) {
			cp := path.GetClosedBy(e)
			p = path.Prev(cp)
			phLst, pvLst, ph, pv := pl.getHintLsts(path, p, hBest, vBest)
			if hintsClash(path, e, p, &hLst, &vLst, &phLst, &pvLst, hBest, vBest) {
				hLst, vLst, h, v = pl.getHintLsts(path, e, hBest, vBest)
				phLst, pvLst, ph, pv = pl.getHintLsts(path, p, hBest, vBest)
			}
			if !tst(ph, pv) || !tst(h, v) {
				pl.startNewHinting(path, e, hLst, vLst, primaryH, primaryV, hBest, vBest)
				tst = isOkTst
				ph, pv = addable, addable
			} else {
				pl.addIfNeed(h, hLst, false, hBest)
				pl.addIfNeed(v, vLst, true, vBest)
			}
			pl.addIfNeed(ph, phLst, false, hBest)
			pl.addIfNeed(pv, pvLst, true, vBest)
			newHints = false
		} else if !tst(h, v) {
			if etype == glyphpath.Close {
				e = path.Prev(e)
				hLst, vLst, h, v = pl.getHintLsts(path, e, hBest, vBest)
			}
			prevH := cloneVals(pl.hActive)
			prevV := cloneVals(pl.vActive)
			if !newHints {
				newHints = true
				mtV = cloneVals(prevV)
				mtH = cloneVals(prevH)
			}
			pl.startNewHinting(path, e, hLst, vLst, primaryH, primaryV, hBest, vBest)
			tst = isOkTst

			var x, y fixed.Int
			if path.At(e).Kind == glyphpath.Curve {
				x, y = path.At(e).X1, path.At(e).Y1
			} else {
				x, y = path.EndPoint(e)
			}
			pl.carryIfNeed(y, false, prevH, hBest)
			pl.carryIfNeed(x, true, prevV, vBest)
		} else {
			pl.addIfNeed(h, hLst, false, hBest)
			pl.addIfNeed(v, vLst, true, vBest)
		}
	}

	pl.reHintBounds(path, path.End(), primaryH, primaryV)
	remPromotedHints(path)

	pl.finalize()
	return pl.sets, nil
}

func (pl *Planner) finalize() {
	for _, set := range pl.sets {
		sort.SliceStable(set, func(i, j int) bool {
			ci, cj := codeOrder[set[i].Code], codeOrder[set[j].Code]
			if ci != cj {
				return ci < cj
			}
			return set[i].Loc1 < set[j].Loc1
		})
	}
}
