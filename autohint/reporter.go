package autohint

import (
	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/report"
)

// reporterAdapter narrows a report.Observer down to the small
// interfaces hinteval and hintpick each declare locally (so those
// packages stay free of a dependency on report), stamping every call
// with the glyph name the Context is currently hinting.
type reporterAdapter struct {
	obs  report.Observer
	name string
}

func (r reporterAdapter) StemNearMiss(vertical bool, width, nearestWidth, loc1, loc2 fixed.Int, curved bool) {
	r.obs.StemNearMiss(r.name, vertical, width, nearestWidth, loc1, loc2, curved)
}

func (r reporterAdapter) CounterNearMiss(vertical bool) {
	r.obs.CounterNearMiss(r.name, vertical)
}
