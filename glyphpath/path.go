// Package glyphpath models a single glyph outline as an indexed arena of
// path elements, replacing the original engine's raw-pointer doubly
// linked list (spec §9: "an indexed arena of PathElement, with links as
// indices"). Structurally it plays the role the teacher's truetype
// package gives its point slices (freetype/truetype/glyph.go's
// GlyphBuf), generalized from flat coordinate arrays to a richer
// element type carrying curve control points and hinting side-channels.
package glyphpath

import "github.com/appleboy/psautohint/fixed"

// Kind identifies what a path element represents.
type Kind int

const (
	Move Kind = iota
	Line
	Curve
	Close
)

// None is the sentinel index meaning "no such element".
const None = -1

// SegRef is a non-owning reference to a segment generated from this
// element (component D owns the actual Segment values).
type SegRef struct {
	// Seg is an opaque handle into hintgen.SegLists; stored as an
	// interface{} to avoid an import cycle between glyphpath and
	// hintgen (glyphpath is lower in the dependency graph). Concrete
	// users type-assert to *hintgen.Segment.
	Seg any
}

// Element is one node of the glyph outline: a Move, Line, Curve or
// Close. Move/Line carry a single endpoint (X, Y); Curve carries three
// absolute coordinates (X1,Y1),(X2,Y2),(X3,Y3) with the implicit start
// being the previous element's end point.
type Element struct {
	Kind Kind

	X, Y           fixed.Int
	X1, Y1         fixed.Int
	X2, Y2         fixed.Int
	X3, Y3         fixed.Int

	IsFlex       bool
	YFlex        bool
	HCopy, VCopy bool
	NewHints     int // 0 = no hint-set change at this element

	Count int // scratch slot used by the path editor and the shuffler

	HSegs, VSegs []SegRef

	prev, next int
}

// Path owns the arena of Elements for one glyph outline.
type Path struct {
	elems      []Element
	start, end int
}

// New returns an empty Path.
func New() *Path {
	return &Path{start: None, end: None}
}

// Len returns the number of elements currently in the path (including
// deleted slots that have not been compacted away... there are none:
// Delete physically unlinks and the slot is simply unreachable).
func (p *Path) Len() int { return len(p.elems) }

// Start returns the index of the first element, or None if empty.
func (p *Path) Start() int { return p.start }

// End returns the index of the last element, or None if empty.
func (p *Path) End() int { return p.end }

// At returns a pointer to the element at index i for in-place mutation.
func (p *Path) At(i int) *Element { return &p.elems[i] }

// Next returns the index following i, or None.
func (p *Path) Next(i int) int {
	if i == None {
		return None
	}
	return p.elems[i].next
}

// Prev returns the index preceding i, or None.
func (p *Path) Prev(i int) int {
	if i == None {
		return None
	}
	return p.elems[i].prev
}

func (p *Path) append(e Element) int {
	e.prev, e.next = p.end, None
	idx := len(p.elems)
	p.elems = append(p.elems, e)
	if p.end != None {
		p.elems[p.end].next = idx
	} else {
		p.start = idx
	}
	p.end = idx
	return idx
}

// AppendMove appends a Move element at (x, y).
func (p *Path) AppendMove(x, y fixed.Int) int {
	return p.append(Element{Kind: Move, X: x, Y: y})
}

// AppendLine appends a Line element ending at (x, y).
func (p *Path) AppendLine(x, y fixed.Int) int {
	return p.append(Element{Kind: Line, X: x, Y: y})
}

// AppendCurve appends a Curve element with the given three absolute
// control/end coordinates.
func (p *Path) AppendCurve(x1, y1, x2, y2, x3, y3 fixed.Int) int {
	return p.append(Element{Kind: Curve, X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3})
}

// AppendClose appends a Close element.
func (p *Path) AppendClose() int {
	return p.append(Element{Kind: Close})
}

// Delete unlinks element i from the path. Grounded on check.c's Delete.
func (p *Path) Delete(i int) {
	e := &p.elems[i]
	if e.next != None {
		p.elems[e.next].prev = e.prev
	} else {
		p.end = e.prev
	}
	if e.prev != None {
		p.elems[e.prev].next = e.next
	} else {
		p.start = e.next
	}
}

// InsertCurveAfter splices a new Curve element in immediately after i,
// used by the path editor's conflict-resolving curve split. Returns
// the new element's index.
func (p *Path) InsertCurveAfter(i int, x1, y1, x2, y2, x3, y3 fixed.Int) int {
	e := &p.elems[i]
	idx := len(p.elems)
	p.elems = append(p.elems, Element{
		Kind: Curve,
		X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3,
		prev: i, next: e.next,
	})
	e = &p.elems[i]
	if e.next != None {
		p.elems[e.next].prev = idx
	} else {
		p.end = idx
	}
	e.next = idx
	return idx
}

// EndPoint returns the effective (x, y) endpoint of element i: the
// Move/Line point, or a Curve's third control point. A Close has no
// endpoint of its own; callers wanting "the point this subpath closes
// at" should use GetDest(i) first.
func (p *Path) EndPoint(i int) (x, y fixed.Int) {
	e := &p.elems[i]
	switch e.Kind {
	case Curve:
		return e.X3, e.Y3
	default:
		return e.X, e.Y
	}
}

// EndPoints returns the start point (the previous element's end point,
// or the Move's point for a Move) and end point of element i.
func (p *Path) EndPoints(i int) (x0, y0, x1, y1 fixed.Int) {
	e := &p.elems[i]
	if e.prev != None {
		x0, y0 = p.EndPoint(e.prev)
	} else {
		x0, y0 = p.EndPoint(i)
	}
	x1, y1 = p.EndPoint(i)
	return
}

// GetDest walks backward from i to the Move that starts this subpath.
// Grounded on ac.h's GetDest / misc.c's loop-detection requirement
// (spec §4.B): after at most Len() steps without finding a Move, the
// path is malformed and GetDest returns the last element visited rather
// than looping forever.
func (p *Path) GetDest(i int) int {
	guard := len(p.elems) + 1
	for p.elems[i].Kind != Move {
		prev := p.elems[i].prev
		if prev == None {
			return i
		}
		i = prev
		guard--
		if guard <= 0 {
			return i
		}
	}
	return i
}

// GetClosedBy walks forward from i to the Close that ends this subpath.
func (p *Path) GetClosedBy(i int) int {
	guard := len(p.elems) + 1
	for p.elems[i].Kind != Close {
		next := p.elems[i].next
		if next == None {
			return i
		}
		i = next
		guard--
		if guard <= 0 {
			return i
		}
	}
	return i
}

// IsTiny reports whether element i's chord is smaller than 2 units on
// both axes. Grounded on spec §4.B.
func (p *Path) IsTiny(i int) bool {
	x0, y0, x1, y1 := p.EndPoints(i)
	return (x1 - x0).Abs() < fixed.FromInt(2) && (y1 - y0).Abs() < fixed.FromInt(2)
}

// IsShort reports whether element i's chord has weighted Chebyshev
// length below 6 units: max(|dx|, |dy|) < 6u. Grounded on spec §4.B.
func (p *Path) IsShort(i int) bool {
	x0, y0, x1, y1 := p.EndPoints(i)
	dx, dy := (x1 - x0).Abs(), (y1 - y0).Abs()
	m := dx
	if dy > m {
		m = dy
	}
	return m < fixed.FromInt(6)
}

// subpathNext returns the next element in path order, wrapping a Close
// back to the Move it closes so bend-skipping logic can stay on the
// same subpath (ac.h's GetSubPathNxt equivalent).
func (p *Path) subpathNext(i int) int {
	if p.elems[i].Kind == Close {
		return p.GetDest(i)
	}
	return p.elems[i].next
}

// SubpathNext is the exported form of subpathNext, used by callers
// outside this package that need to walk a subpath the same way
// NextForBend does (e.g. hintprune's adjacency test).
func (p *Path) SubpathNext(i int) int { return p.subpathNext(i) }

// SubpathPrev is the exported form of subpathPrev, wrapping a Move back
// to the Close that ends its subpath (ac.h's GetSubPathPrv equivalent).
func (p *Path) SubpathPrev(i int) int { return p.subpathPrev(i) }

func (p *Path) subpathPrev(i int) int {
	if p.elems[i].Kind == Move {
		i = p.GetClosedBy(i)
	}
	return p.elems[i].prev
}

// NextForBend walks forward from i, skipping tiny elements, stopping at
// the first non-tiny one (or wrapping once around the subpath). Returns
// the landing element's coordinates for the two points needed by a bend
// test. Detects an all-tiny subpath (infinite loop) by remembering the
// first Move crossed; on a second crossing it returns i itself. Grounded
// on ac.h's NxtForBend / spec §4.B.
func (p *Path) NextForBend(i int) (landing int, x, y, xPrev, yPrev fixed.Int) {
	start := i
	firstMove := None
	n := p.subpathNext(i)
	for n != start {
		if p.elems[n].Kind == Move {
			if firstMove == n {
				landing = i
				x, y = p.EndPoint(landing)
				xPrev, yPrev = p.EndPoint(i)
				return
			}
			if firstMove == None {
				firstMove = n
			}
		}
		if !p.IsTiny(n) || n == start {
			break
		}
		n = p.subpathNext(n)
	}
	x, y = p.EndPoint(n)
	xPrev, yPrev = p.EndPoint(p.subpathPrev(n))
	return n, x, y, xPrev, yPrev
}

// PrevForBend is the mirror of NextForBend, walking backward.
func (p *Path) PrevForBend(i int) (landing int, x, y fixed.Int) {
	start := i
	n := p.subpathPrev(i)
	guard := len(p.elems) + 1
	for n != start && p.IsTiny(n) {
		n = p.subpathPrev(n)
		guard--
		if guard <= 0 {
			break
		}
	}
	x, y = p.EndPoint(n)
	return n, x, y
}

// MoveSubpathToEnd relocates the subpath containing i to the end of the
// path's element order, used by the path editor's conflict resolution.
// Grounded on check.c's MoveSubpathToEnd.
func (p *Path) MoveSubpathToEnd(i int) {
	subEnd := i
	if p.elems[i].Kind != Close {
		subEnd = p.GetClosedBy(i)
	}
	subStart := p.GetDest(subEnd)
	if subEnd == p.end {
		return
	}
	subNext := p.elems[subEnd].next
	if subStart == p.start {
		p.start = subNext
		p.elems[subNext].prev = None
	} else {
		subPrev := p.elems[subStart].prev
		p.elems[subPrev].next = subNext
		p.elems[subNext].prev = subPrev
	}
	p.elems[p.end].next = subStart
	p.elems[subStart].prev = p.end
	p.elems[subEnd].next = None
	p.end = subEnd
}

// CPKind identifies which coordinate of an element RMovePoint nudges.
type CPKind int

const (
	CPStart CPKind = iota
	CPCurve1
	CPCurve2
	CPEnd
)

// RMovePoint nudges the given control point of element i by (dx, dy).
// Grounded on check.c's RMovePoint.
func (p *Path) RMovePoint(dx, dy fixed.Int, which CPKind, i int) {
	if which == CPStart {
		i = p.elems[i].prev
		which = CPEnd
	}
	e := &p.elems[i]
	switch which {
	case CPEnd:
		if e.Kind == Close {
			i = p.GetDest(i)
			e = &p.elems[i]
		}
		if e.Kind == Curve {
			e.X3 += dx
			e.Y3 += dy
		} else {
			e.X += dx
			e.Y += dy
		}
	case CPCurve1:
		e.X1 += dx
		e.Y1 += dy
	case CPCurve2:
		e.X2 += dx
		e.Y2 += dy
	}
}

// Subpath is a (start, end) index pair: the Move and Close bracketing
// one subpath.
type Subpath struct {
	Start, End int
}

// Subpaths returns all subpaths in path order.
func (p *Path) Subpaths() []Subpath {
	var subs []Subpath
	i := p.start
	for i != None {
		if p.elems[i].Kind == Move {
			subs = append(subs, Subpath{Start: i, End: p.GetClosedBy(i)})
		}
		i = p.elems[i].next
	}
	return subs
}

// CountSubpaths returns the number of Move...Close subpaths.
func (p *Path) CountSubpaths() int {
	n := 0
	for i := p.start; i != None; i = p.elems[i].next {
		if p.elems[i].Kind == Move {
			n++
		}
	}
	return n
}
