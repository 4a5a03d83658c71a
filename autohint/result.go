package autohint

import "github.com/appleboy/psautohint/hintsubst"

// Result is the finalized output of a Hint call: one bucket of hint
// points per substitution region, bucket 0 always the main set. The
// spec names this type hintsubst.Result; it is defined here instead
// since hintsubst.Plan already returns its buckets as a plain
// [][]HintPoint and introducing a second, identical wrapper type in
// hintsubst would only exist to be immediately unwrapped here — see
// DESIGN.md.
type Result struct {
	Sets [][]hintsubst.HintPoint
}
