package report

import "github.com/appleboy/psautohint/fixed"

// Entry is one buffered report. Which fields are populated depends on
// Kind; unused fields hold their zero value.
type Entry struct {
	Kind EntryKind

	// Message
	Level Level
	Text  string

	// StemNearMiss / ZoneNearMiss / CounterNearMiss
	Name                       string
	Vertical                   bool
	Width, NearestWidth        fixed.Int
	Loc1, Loc2                 fixed.Int
	Curved                     bool
	Top, Bot                   fixed.Int

	// Retry
	Attempt int
}

// EntryKind identifies which Observer method produced an Entry.
type EntryKind int

const (
	MessageEntry EntryKind = iota
	StemNearMissEntry
	ZoneNearMissEntry
	CounterNearMissEntry
	RetryEntry
)

// SliceObserver buffers every report in order, for tests that want to
// assert on exactly what the pipeline reported. Not safe for concurrent
// use by multiple goroutines; a caller hinting glyphs in parallel wants
// one SliceObserver per goroutine. Grounded on spec.md §1.2's
// "buffers every report in a slice, for tests" requirement.
type SliceObserver struct {
	Entries []Entry
}

func (o *SliceObserver) Message(level Level, text string) {
	o.Entries = append(o.Entries, Entry{Kind: MessageEntry, Level: level, Text: text})
}

func (o *SliceObserver) StemNearMiss(name string, vertical bool, width, nearestWidth, loc1, loc2 fixed.Int, curved bool) {
	o.Entries = append(o.Entries, Entry{
		Kind: StemNearMissEntry, Name: name, Vertical: vertical,
		Width: width, NearestWidth: nearestWidth, Loc1: loc1, Loc2: loc2, Curved: curved,
	})
}

func (o *SliceObserver) ZoneNearMiss(name string, top, bot fixed.Int) {
	o.Entries = append(o.Entries, Entry{Kind: ZoneNearMissEntry, Name: name, Top: top, Bot: bot})
}

func (o *SliceObserver) CounterNearMiss(name string, vertical bool) {
	o.Entries = append(o.Entries, Entry{Kind: CounterNearMissEntry, Name: name, Vertical: vertical})
}

func (o *SliceObserver) Retry(name string, attempt int) {
	o.Entries = append(o.Entries, Entry{Kind: RetryEntry, Name: name, Attempt: attempt})
}

// Reset discards every buffered Entry, for reuse across glyphs within a
// single test.
func (o *SliceObserver) Reset() {
	o.Entries = o.Entries[:0]
}
