package bez

import (
	"fmt"
	"strings"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintsubst"
)

// EmitPath renders a Path back to bez text using only the
// absolute operators (mt/dt/ct/cp): grounded on write.c's numeric
// conventions (wrtxa's integer-vs-two-decimal split) but deliberately
// skips write.c's relative-operator shorthand selection (hmt/vmt/rmt/
// hdt/vdt/rdt/vhct/hvct), since round-tripping and readability only
// need one canonical spelling, not the smallest one the original
// writer chose for file size.
func EmitPath(p *glyphpath.Path) string {
	var b strings.Builder
	if p == nil || p.Start() == glyphpath.None {
		return ""
	}
	for i := p.Start(); ; i = p.Next(i) {
		e := p.At(i)
		switch e.Kind {
		case glyphpath.Move:
			fmt.Fprintf(&b, "%s %s mt\n", num(e.X), num(e.Y))
		case glyphpath.Line:
			fmt.Fprintf(&b, "%s %s dt\n", num(e.X), num(e.Y))
		case glyphpath.Curve:
			fmt.Fprintf(&b, "%s %s %s %s %s %s ct\n",
				num(e.X1), num(e.Y1), num(e.X2), num(e.Y2), num(e.X3), num(e.Y3))
		case glyphpath.Close:
			b.WriteString("cp\n")
		}
		if i == p.End() {
			break
		}
	}
	return b.String()
}

// EmitHinted renders a Path the same way EmitPath does, then appends,
// for each non-empty bucket of sets, a "% hintset N" comment line
// followed by one "% <code> <loc1> <loc2>" comment line per hint point,
// with a blank line before every bucket after the first (multiple
// buckets mean substitution produced more than the main set). Empty
// buckets are skipped. This is a readability-first rendering of the computed hints,
// not an attempt to match write.c's rb/ry/rv/rm in-line splice
// positions — splicing replacement hints back into the exact
// element they apply to is a file-size optimization the original
// writer does for the benefit of the PostScript interpreter's own
// hint-replacement machinery, which this module's callers don't need:
// a caller that wants hints applied to specific elements already has
// them as structured HintPoint values and doesn't need to re-parse bez
// text to get them back.
func EmitHinted(p *glyphpath.Path, sets [][]hintsubst.HintPoint) string {
	var b strings.Builder
	b.WriteString(EmitPath(p))
	for i, set := range sets {
		if len(set) == 0 {
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%% hintset %d\n", i)
		for _, hp := range set {
			fmt.Fprintf(&b, "%% %c %s %s\n", hp.Code, num(hp.Loc1), num(hp.Loc2))
		}
	}
	return b.String()
}

// num formats a fixed.Int the way write.c's wrtxa does: an exact
// integer prints with no fractional part, anything else prints with
// two decimal digits (24.8 can't represent more than ~2.3 significant
// decimal digits of fraction anyway).
func num(x fixed.Int) string {
	if x.Frac() == 0 {
		return fmt.Sprintf("%d", x.Trunc())
	}
	return fmt.Sprintf("%.2f", x.ToFloat64())
}
