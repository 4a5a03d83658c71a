// Package report defines the callback surface the hinting pipeline uses
// to tell a caller about nonfatal diagnostics and retries, replacing the
// original engine's function-pointer-table global with a plain
// interface. Grounded on spec.md §6/§9's callback-based reporting
// design and the teacher's own silent-core convention (freetype's core
// packages never log; only example/ and cmd/ do).
package report

import "github.com/appleboy/psautohint/fixed"

// Level classifies a Message report. Grounded on spec.md §6's
// report(message, level) callback.
type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Observer receives every diagnostic the hinting pipeline produces.
// Implementations are free to buffer, ignore, or forward; the pipeline
// calls into an Observer synchronously from whichever goroutine is
// driving a given glyph, so an Observer shared across concurrent calls
// must be safe for that (see NopObserver and SliceObserver below; both
// are safe, the former trivially, the latter only when used from a
// single goroutine per glyph — see its doc comment).
type Observer interface {
	// Message delivers a free-text diagnostic at the given level.
	Message(level Level, text string)

	// StemNearMiss reports a vertical or horizontal stem pair that
	// fell just short of matching a declared dominant/snap width.
	// Grounded on eval.c's VStemMiss/HStemMiss and spec.md §6's
	// report_v_stem/report_h_stem (generalized: name identifies the
	// glyph or context the pipeline is currently hinting).
	StemNearMiss(name string, vertical bool, width, nearestWidth, loc1, loc2 fixed.Int, curved bool)

	// ZoneNearMiss reports a coordinate that fell just outside an
	// alignment band. Grounded on spec.md §6's report_char_zone/
	// report_stem_zone.
	ZoneNearMiss(name string, top, bot fixed.Int)

	// CounterNearMiss reports a glyph that nearly qualified for
	// three-stem counter hinting but didn't. Grounded on control.c's
	// UseCounter LogMsg calls.
	CounterNearMiss(name string, vertical bool)

	// Retry fires just before the orchestrator restarts a glyph after
	// a structural edit, so a caller buffering reports can discard the
	// stale batch from the attempt that is being abandoned. Grounded
	// on spec.md §6's report_retry().
	Retry(name string, attempt int)
}

// NopObserver discards every report. The zero value is ready to use.
type NopObserver struct{}

func (NopObserver) Message(Level, string)                                            {}
func (NopObserver) StemNearMiss(string, bool, fixed.Int, fixed.Int, fixed.Int, fixed.Int, bool) {}
func (NopObserver) ZoneNearMiss(string, fixed.Int, fixed.Int)                         {}
func (NopObserver) CounterNearMiss(string, bool)                                      {}
func (NopObserver) Retry(string, int)                                                 {}
