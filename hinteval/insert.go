package hinteval

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
)

// insertVValue inserts item into vals, kept sorted ascending by
// (Loc1, Loc2), matching the position the source's linked-list walk in
// InsertVValue would find. Grounded on eval.c's InsertVValue.
func insertVValue(vals []*Value, item *Value) []*Value {
	i := 0
	for i < len(vals) && vals[i].Loc1 < item.Loc1 {
		i++
	}
	for i < len(vals) && vals[i].Loc1 == item.Loc1 && vals[i].Loc2 < item.Loc2 {
		i++
	}
	vals = append(vals, nil)
	copy(vals[i+1:], vals[i:])
	vals[i] = item
	return vals
}

// insertHValue inserts item into vals, kept sorted ascending by
// (Loc2, Loc1) as the source's InsertHValue does, additionally pruning
// a ghost pair made redundant by a stronger non-ghost pair sharing the
// same (bot, top) and one endpoint segment.
func insertHValue(vals []*Value, item *Value) []*Value {
	i := 0
	for i < len(vals) && vals[i].Loc2 < item.Loc2 {
		i++
	}
	for i < len(vals) && vals[i].Loc2 == item.Loc2 && vals[i].Loc1 < item.Loc1 {
		i++
	}
	if item.Ghost {
		for j := i; j < len(vals) && vals[j].Loc2 == item.Loc2 && vals[j].Loc1 == item.Loc1; j++ {
			v := vals[j]
			if !v.Ghost && (v.Seg1 == item.Seg1 || v.Seg2 == item.Seg2) && v.Val > item.Val {
				return vals
			}
		}
	}
	vals = append(vals, nil)
	copy(vals[i+1:], vals[i:])
	vals[i] = item
	return vals
}

// addVValue filters and inserts a candidate vertical stem value.
// Grounded on eval.c's AddVValue.
func addVValue(vals []*Value, p *glyphpath.Path, lft, rght, val, spc fixed.Int, lSeg, rSeg *hintgen.Segment) []*Value {
	if val == 0 {
		return vals
	}
	if lePruneValue(val) && spc <= 0 {
		return vals
	}
	if lSeg != nil && rSeg != nil && lSeg.Type == hintgen.Bend && rSeg.Type == hintgen.Bend {
		return vals
	}
	if val <= PruneD && spc <= 0 && lSeg != nil && rSeg != nil {
		le, lok := lSeg.BBoxElt()
		re, rok := rSeg.BBoxElt()
		if lSeg.Type == hintgen.Bend || rSeg.Type == hintgen.Bend ||
			!lok || !rok || !p.CheckBBoxes(le, re) {
			return vals
		}
	}
	if rSeg == nil {
		return vals
	}
	return insertVValue(vals, &Value{
		Loc1: lft, Loc2: rght, Val: val, InitVal: val, Spc: spc,
		Seg1: lSeg, Seg2: rSeg,
	})
}

// addHValue filters and inserts a candidate horizontal stem value.
// Grounded on eval.c's AddHValue.
func addHValue(vals []*Value, p *glyphpath.Path, bot, top, val, spc fixed.Int, bSeg, tSeg *hintgen.Segment) []*Value {
	if val == 0 {
		return vals
	}
	if lePruneValue(val) && spc <= 0 {
		return vals
	}
	if bSeg.Type == hintgen.Bend && tSeg.Type == hintgen.Bend {
		return vals
	}
	ghost := bSeg.Type == hintgen.Ghost || tSeg.Type == hintgen.Ghost
	if !ghost && val <= PruneD && spc <= 0 {
		be, bok := bSeg.BBoxElt()
		te, tok := tSeg.BBoxElt()
		if bSeg.Type == hintgen.Bend || tSeg.Type == hintgen.Bend ||
			!bok || !tok || !p.CheckBBoxes(be, te) {
			return vals
		}
	}
	return insertHValue(vals, &Value{
		Loc1: bot, Loc2: top, Val: val, InitVal: val, Spc: spc,
		Seg1: bSeg, Seg2: tSeg, Ghost: ghost,
	})
}

// CombineValues folds consecutive values sharing the same (Loc1, Loc2)
// pair into one, propagating the combined weight to every value in the
// run (a ghost pair's value simply overrides rather than combines, per
// the source). Grounded on eval.c's CombineValues.
func CombineValues(vals []*Value) {
	i := 0
	for i < len(vals) {
		loc1, loc2 := vals[i].Loc1, vals[i].Loc2
		val := vals[i].Val
		j := i + 1
		matched := false
		for j < len(vals) && vals[j].Loc1 == loc1 && vals[j].Loc2 == loc2 {
			if vals[j].Ghost {
				val = vals[j].Val
			} else {
				val = combVals(val, vals[j].Val)
			}
			matched = true
			j++
		}
		if matched {
			for k := i; k < j; k++ {
				vals[k].Val = val
			}
		}
		i = j
	}
}
