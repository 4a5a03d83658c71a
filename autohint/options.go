package autohint

import "github.com/appleboy/psautohint/fontinfo"

// Options carries the small set of per-call knobs the orchestrator
// reads, the way the teacher's Context exposes plain setter-backed
// fields rather than a builder. Every field's zero value is chosen to
// be the conservative, nothing-extra-happens default (Go's
// zero-value-useful idiom); where that diverges from the original
// engine's own default behavior (which ran edits and substitution
// unconditionally), the field's doc comment says so and DESIGN.md
// records the decision.
type Options struct {
	// AllowEdit permits PreCheck, AutoAddFlex and CheckSmooth to mutate
	// the path before hinting. Zero value (false) keeps the path
	// byte-for-byte as given — the "path-preservation" testable
	// property — which also means the retry loop can never fire since
	// nothing it watches for can change. Set true to match the
	// original engine's always-edit default.
	AllowEdit bool

	// AllowHintSub permits the hint substitution planner to open
	// additional hint-set buckets beyond the main set. Zero value
	// (false) emits only the main set (bucket 0) with no substitution
	// buckets. Set true to match the original engine's default.
	AllowHintSub bool

	// FlexOK overrides FontInfo.FlexOK when non-nil. A nil value (the
	// zero value) defers to the font's own setting.
	FlexOK *bool

	// MaxRetries bounds how many times Hint restarts after a
	// structural edit. Non-positive (including the zero value) means
	// "use the default of 2", matching spec.md §4.K/§5; to hint
	// without ever retrying, there is no separate sentinel — set
	// AllowEdit false instead, since with editing disabled no retry
	// condition can ever fire.
	MaxRetries int

	// ScalingHints marks that the caller intends to scale the emitted
	// hint coordinates against a different em-square than the one the
	// path was authored in (e.g. a multiple-master interpolated
	// instance). Actual coordinate scaling is an out-of-scope,
	// caller-side concern (bez/font-info text I/O and unit conversion
	// are both Non-goals); this flag exists purely so a caller can
	// record that intent on the Context it built, and is otherwise a
	// pass-through Hint does not act on.
	ScalingHints bool
}

// defaultMaxRetries is spec.md §4.K/§5's restart budget.
const defaultMaxRetries = 2

func (o Options) maxRetries() int {
	if o.MaxRetries > 0 {
		return o.MaxRetries
	}
	return defaultMaxRetries
}

func (o Options) flexOK(fi *fontinfo.FontInfo) bool {
	if o.FlexOK != nil {
		return *o.FlexOK
	}
	return fi != nil && fi.FlexOK
}
