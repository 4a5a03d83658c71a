// Package bez is a thin, hand-written lexer/pretty-printer for the
// "bez" curve-and-line glyph format: parsing and emission involve no
// algorithmic depth (spec.md §1 explicitly scopes them out of the core
// hinting engine) but are implemented here, grounded on read.c/write.c's
// token set, so the CLI and round-trip tests have something to call.
// Only the geometry-bearing operators are modeled; the font's own
// multiple-hint-replacement operators in an already-hinted bez (rb/ry/
// rv/rm) are accepted on input (and ignored, since their effect is the
// very thing this module computes) but never required on output —
// hinted output is emitted separately by EmitHinted.
package bez

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
)

// ErrMalformed reports a bez token stream that doesn't parse: an
// unknown operator, or an operator invoked with too few operands on
// the stack. Grounded on read.c's "badFile"/stack-underflow paths,
// which it treats as a ParseFail kind (spec.md §7).
var ErrMalformed = errors.New("bez: malformed input")

// Parse reads a bez token stream into a Path. Only the geometry
// operators are interpreted: {r,h,v,}mt (moveto), {r,h,v,}dt (lineto),
// {r,v,h}ct (curveto, including the vh/hv single-tangent-implied
// forms), cp (closepath). sc, ed and id are accepted and skipped as
// structural markers; rb/ry/rv/rm (hint replacements) are accepted and
// skipped, each consuming two operands, matching read.c's DoName "r"
// case (Pop2). Grounded on read.c's PopPCd/RDmtlt/RDcurveto/Rct family.
func Parse(data string) (*glyphpath.Path, error) {
	toks := strings.Fields(data)
	p := glyphpath.New()
	var stack []fixed.Int
	var curX, curY fixed.Int

	push := func(v fixed.Int) { stack = append(stack, v) }
	pop := func() (fixed.Int, error) {
		if len(stack) == 0 {
			return 0, fmt.Errorf("%w: operand stack underflow", ErrMalformed)
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, nil
	}
	popPair := func() (x, y fixed.Int, err error) {
		if y, err = pop(); err != nil {
			return
		}
		if x, err = pop(); err != nil {
			return
		}
		return
	}

	for _, tok := range toks {
		if n, err := strconv.ParseFloat(tok, 64); err == nil {
			push(fixed.FromFloat64(n))
			continue
		}

		switch tok {
		case "sc", "ed", "newcolors", "beginsubr", "endsubr":
			stack = stack[:0]
		case "id":
			if _, err := pop(); err != nil {
				return nil, err
			}
		case "rb", "ry", "rv", "rm":
			if _, _, err := popPair(); err != nil {
				return nil, err
			}

		case "mt":
			x, y, err := popPair()
			if err != nil {
				return nil, err
			}
			curX, curY = x, y
			p.AppendMove(curX, curY)
		case "rmt":
			dx, dy, err := popPair()
			if err != nil {
				return nil, err
			}
			curX, curY = curX+dx, curY+dy
			p.AppendMove(curX, curY)
		case "hmt":
			dx, err := pop()
			if err != nil {
				return nil, err
			}
			curX += dx
			p.AppendMove(curX, curY)
		case "vmt":
			dy, err := pop()
			if err != nil {
				return nil, err
			}
			curY += dy
			p.AppendMove(curX, curY)

		case "dt":
			x, y, err := popPair()
			if err != nil {
				return nil, err
			}
			curX, curY = x, y
			p.AppendLine(curX, curY)
		case "rdt":
			dx, dy, err := popPair()
			if err != nil {
				return nil, err
			}
			curX, curY = curX+dx, curY+dy
			p.AppendLine(curX, curY)
		case "hdt":
			dx, err := pop()
			if err != nil {
				return nil, err
			}
			curX += dx
			p.AppendLine(curX, curY)
		case "vdt":
			dy, err := pop()
			if err != nil {
				return nil, err
			}
			curY += dy
			p.AppendLine(curX, curY)

		case "ct":
			// Same stack-vs-reading-order inversion as rct: the first
			// pop lands on the third control point.
			x3, y3, err := popPair()
			if err != nil {
				return nil, err
			}
			x2, y2, err := popPair()
			if err != nil {
				return nil, err
			}
			x1, y1, err := popPair()
			if err != nil {
				return nil, err
			}
			curX, curY = x3, y3
			p.AppendCurve(x1, y1, x2, y2, x3, y3)
		case "rct":
			// Operands read left to right as d1, d2, d3, but the
			// stack pops them top-first, so the first pop lands on
			// d3 and the last on d1 (mirrors read.c's psRCT, which
			// fills c3 before c2 before c1 from the same stack).
			d3x, d3y, err := popPair()
			if err != nil {
				return nil, err
			}
			d2x, d2y, err := popPair()
			if err != nil {
				return nil, err
			}
			d1x, d1y, err := popPair()
			if err != nil {
				return nil, err
			}
			x1, y1 := curX+d1x, curY+d1y
			x2, y2 := x1+d2x, y1+d2y
			x3, y3 := x2+d3x, y2+d3y
			curX, curY = x3, y3
			p.AppendCurve(x1, y1, x2, y2, x3, y3)
		case "vhct":
			// First control point moves vertically only, last moves
			// horizontally only; the middle point is a full (dx,dy).
			// Operand order on the stack mirrors rct: the three deltas
			// are pushed in the order they're consumed, so the first
			// one popped belongs to the last control point and the
			// last one popped is the first control point's dy.
			d3x, err := pop()
			if err != nil {
				return nil, err
			}
			d2x, d2y, err := popPair()
			if err != nil {
				return nil, err
			}
			d1y, err := pop()
			if err != nil {
				return nil, err
			}
			x1, y1 := curX, curY+d1y
			x2, y2 := x1+d2x, y1+d2y
			x3, y3 := x2+d3x, y2
			curX, curY = x3, y3
			p.AppendCurve(x1, y1, x2, y2, x3, y3)
		case "hvct":
			// Mirror of vhct: first control point moves horizontally
			// only, last moves vertically only.
			d3y, err := pop()
			if err != nil {
				return nil, err
			}
			d2x, d2y, err := popPair()
			if err != nil {
				return nil, err
			}
			d1x, err := pop()
			if err != nil {
				return nil, err
			}
			x1, y1 := curX+d1x, curY
			x2, y2 := x1+d2x, y1+d2y
			x3, y3 := x2, y2+d3y
			curX, curY = x3, y3
			p.AppendCurve(x1, y1, x2, y2, x3, y3)

		case "cp":
			p.AppendClose()

		default:
			return nil, fmt.Errorf("%w: unknown operator %q", ErrMalformed, tok)
		}
	}
	return p, nil
}
