package hintsubst

import (
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintgen"
	"github.com/appleboy/psautohint/hinteval"
	"github.com/appleboy/psautohint/hintpick"
)

// Results a hint test against an active list can report. Grounded on
// auto.c's TestHint/TestHintLst: "-1 means already in hintList; 0
// means conflicts; 1 means ok to add".
const (
	already  = -1
	conflict = 0
	addable  = 1
)

// testHint reports how s's best-scoring value relates to the values
// already active on its axis. When doLst is false, hintList is probed
// only as a single candidate rather than walked as a whole (matching
// the source's doLst=false calls, which pass a lone HintVal rather
// than the genuine active-list head); since this port represents both
// cases as a plain Go slice there is no aliasing hazard to guard
// against, so doLst only changes which slice the caller passes in.
func testHint(s *hintgen.Segment, best map[*hintgen.Segment]*hinteval.Value, hintList []*hinteval.Value, vert bool) int {
	if s == nil {
		return already
	}
	v := best[s]
	loc := s.Loc
	if v == nil {
		return already
	}
	top, bot := v.Loc2, v.Loc1
	if v.Ghost {
		if v.Seg1 != nil && v.Seg1.Type == hintgen.Ghost {
			bot = top
		} else {
			top = bot
		}
	}

	if len(hintList) > 100 {
		return conflict
	}

	if v.Ghost {
		var loc1 bool
		if (loc - top).Abs() < (loc - bot).Abs() {
			loc1, loc = false, top
		} else {
			loc1, loc = true, bot
		}
		for _, c := range hintList {
			cloc := c.Loc2
			if loc1 {
				cloc = c.Loc1
			}
			if cloc == loc {
				return already
			}
		}
	}

	if vert {
		top += hintpick.BandMargin
		bot -= hintpick.BandMargin
	} else {
		top -= hintpick.BandMargin
		bot += hintpick.BandMargin
	}

	for _, c := range hintList {
		cTop, cBot := c.Loc2, c.Loc1
		if v.Loc1 == cBot && v.Loc2 == cTop {
			return already
		}
		if c.Ghost {
			if c.Seg1 != nil && c.Seg1.Type == hintgen.Ghost {
				cBot = cTop
			} else {
				cTop = cBot
			}
		}
		if (vert && cBot <= top && cTop >= bot) || (!vert && cBot >= top && cTop <= bot) {
			return conflict
		}
	}
	return addable
}

// testHintLst folds testHint over every segment referenced by list,
// preferring a conflict the moment one appears and otherwise reporting
// addable if anything in list could be added. Grounded on auto.c's
// TestHintLst.
func testHintLst(list []glyphpath.SegRef, best map[*hintgen.Segment]*hinteval.Value, hintList []*hinteval.Value, vert bool) int {
	result := already
	for _, ref := range list {
		i := testHint(segOf(ref), best, hintList, vert)
		if i == conflict {
			return conflict
		}
		if i == addable {
			result = addable
		}
	}
	return result
}
