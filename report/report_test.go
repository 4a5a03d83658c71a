package report

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/appleboy/psautohint/fixed"
)

func TestNopObserverDiscardsEverything(t *testing.T) {
	var o NopObserver
	o.Message(Warning, "ignored")
	o.StemNearMiss("a", true, fixed.FromInt(1), fixed.FromInt(2), 0, fixed.FromInt(10), false)
	o.ZoneNearMiss("a", fixed.FromInt(1), 0)
	o.CounterNearMiss("a", false)
	o.Retry("a", 1)
}

func TestSliceObserverBuffersInOrder(t *testing.T) {
	var o SliceObserver
	o.Message(Info, "first")
	o.Retry("glyph", 1)
	o.StemNearMiss("glyph", true, fixed.FromInt(90), fixed.FromInt(88), 0, fixed.FromInt(100), false)

	if len(o.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(o.Entries))
	}
	if o.Entries[0].Kind != MessageEntry || o.Entries[0].Text != "first" {
		t.Errorf("entry 0 = %+v, want a MessageEntry", o.Entries[0])
	}
	if o.Entries[1].Kind != RetryEntry || o.Entries[1].Attempt != 1 {
		t.Errorf("entry 1 = %+v, want RetryEntry with attempt 1", o.Entries[1])
	}
	if o.Entries[2].Kind != StemNearMissEntry || o.Entries[2].Name != "glyph" {
		t.Errorf("entry 2 = %+v, want StemNearMissEntry for glyph", o.Entries[2])
	}
}

func TestSliceObserverReset(t *testing.T) {
	var o SliceObserver
	o.Message(Debug, "x")
	o.Reset()
	if len(o.Entries) != 0 {
		t.Errorf("expected empty after Reset, got %d entries", len(o.Entries))
	}
}

func TestLogObserverWritesThroughLogger(t *testing.T) {
	var buf bytes.Buffer
	o := NewLogObserver(log.New(&buf, "", 0))

	o.Message(Error, "something broke")
	o.ZoneNearMiss("A", fixed.FromInt(700), fixed.FromInt(690))
	o.CounterNearMiss("m", true)
	o.Retry("A", 2)

	out := buf.String()
	for _, want := range []string{"something broke", "zone near miss", "v-counter near miss", "retrying (attempt 2)"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q, got %q", want, out)
		}
	}
}

func TestLogObserverDefaultsToStdLogger(t *testing.T) {
	o := NewLogObserver(nil)
	if o.Logger == nil {
		t.Fatal("expected a non-nil default logger")
	}
}
