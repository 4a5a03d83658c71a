package report

import (
	"log"

	"github.com/appleboy/psautohint/fixed"
)

// LogObserver writes every report to a stdlib *log.Logger, rendering
// fixed-point coordinates as 26.6 point units via fixed.Int.To266 the
// way other tooling in this ecosystem displays them. This is the one
// place in the module that reaches for the log package, matching where
// the teacher itself draws the line: its core packages never log, and
// only example/ and cmd/ wrappers do.
type LogObserver struct {
	Logger *log.Logger
}

// NewLogObserver wraps l, or the stdlib default logger if l is nil.
func NewLogObserver(l *log.Logger) *LogObserver {
	if l == nil {
		l = log.Default()
	}
	return &LogObserver{Logger: l}
}

func (o *LogObserver) Message(level Level, text string) {
	o.Logger.Printf("[%s] %s", level, text)
}

func (o *LogObserver) StemNearMiss(name string, vertical bool, width, nearestWidth, loc1, loc2 fixed.Int, curved bool) {
	axis := "h"
	if vertical {
		axis = "v"
	}
	o.Logger.Printf("%s: %s-stem near miss: width=%v nearest=%v loc=[%v,%v] curved=%t",
		name, axis, width.To266(), nearestWidth.To266(), loc1.To266(), loc2.To266(), curved)
}

func (o *LogObserver) ZoneNearMiss(name string, top, bot fixed.Int) {
	o.Logger.Printf("%s: zone near miss: top=%v bot=%v", name, top.To266(), bot.To266())
}

func (o *LogObserver) CounterNearMiss(name string, vertical bool) {
	axis := "h"
	if vertical {
		axis = "v"
	}
	o.Logger.Printf("%s: %s-counter near miss", name, axis)
}

func (o *LogObserver) Retry(name string, attempt int) {
	o.Logger.Printf("%s: retrying (attempt %d)", name, attempt)
}
