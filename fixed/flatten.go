package fixed

// FlattenCubic recursively subdivides the cubic Bezier p0 p1 p2 p3 and
// reports each flattened endpoint to emit, in path order, finishing with
// p3 itself. It splits in half whenever the control polygon's bounding
// box exceeds 256 units along either axis, then within a leaf run an
// adaptive bisection gated by a colinearity test against epsilon units,
// capped at 6 splits deep. Grounded on FltnCurve/FFltnCurve/FMiniFltn.
func FlattenCubic(p0, p1, p2, p3 Point, epsilon Int, emit func(Point)) {
	flattenCubic(p0, p1, p2, p3, epsilon, 6, emit)
}

func bbox(p0, p1, p2, p3 Point) (llx, lly, urx, ury Int) {
	llx, urx = p0.X, p0.X
	for _, c := range [...]Int{p1.X, p2.X, p3.X} {
		if c < llx {
			llx = c
		} else if c > urx {
			urx = c
		}
	}
	lly, ury = p0.Y, p0.Y
	for _, c := range [...]Int{p1.Y, p2.Y, p3.Y} {
		if c < lly {
			lly = c
		} else if c > ury {
			ury = c
		}
	}
	return
}

func midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// bezDiv splits the cubic a0 a1 a2 a3 at its midpoint via de Casteljau's
// algorithm into (a0 a1 a2 a3) and (b0 b1 b2 b3), each covering half.
func bezDiv(a0, a1, a2, a3 Point) (l0, l1, l2, l3, r0, r1, r2, r3 Point) {
	ab := midpoint(a0, a1)
	bc := midpoint(a1, a2)
	cd := midpoint(a2, a3)
	abbc := midpoint(ab, bc)
	bccd := midpoint(bc, cd)
	m := midpoint(abbc, bccd)
	return a0, ab, abbc, m, m, bccd, cd, a3
}

func flattenCubic(p0, p1, p2, p3 Point, epsilon Int, limit int, emit func(Point)) {
	if p0 == p1 && p2 == p3 {
		emit(p3)
		return
	}
	if limit <= 0 {
		emit(p3)
		return
	}
	llx, lly, urx, ury := bbox(p0, p1, p2, p3)
	if urx-llx >= FromInt(256) || ury-lly >= FromInt(256) {
		l0, l1, l2, l3, r0, r1, r2, r3 := bezDiv(p0, p1, p2, p3)
		flattenCubic(l0, l1, l2, l3, epsilon, limit-1, emit)
		flattenCubic(r0, r1, r2, r3, epsilon, limit-1, emit)
		return
	}
	flattenLeaf(p0, p1, p2, p3, epsilon, emit)
}

// flattenLeaf implements FMiniFltn: an iterative bisection, at most 6
// levels deep, that stops splitting a sub-curve once its two control
// points lie within epsilon of the chord between its endpoints.
func flattenLeaf(p0, p1, p2, p3 Point, epsilon Int, emit func(Point)) {
	if epsilon < 16 {
		epsilon = 16
	}
	type frame struct{ a0, a1, a2, a3 Point }
	stack := make([]frame, 0, 8)
	stack = append(stack, frame{p0, p1, p2, p3})
	const maxDepth = 6
	for len(stack) > 0 {
		depth := len(stack)
		top := stack[len(stack)-1]
		if depth >= maxDepth || isFlat(top.a0, top.a1, top.a2, top.a3, epsilon) {
			emit(top.a3)
			stack = stack[:len(stack)-1]
			continue
		}
		l0, l1, l2, l3, r0, r1, r2, r3 := bezDiv(top.a0, top.a1, top.a2, top.a3)
		stack[len(stack)-1] = frame{r0, r1, r2, r3}
		stack = append(stack, frame{l0, l1, l2, l3})
	}
}

func isFlat(a0, a1, a2, a3 Point, epsilon Int) bool {
	x, y := a0.X, a0.Y
	eqa := a3.Y - y
	eqb := x - a3.X
	if eqa == 0 && eqb == 0 {
		return true
	}
	eps := eqa
	if eqb.Abs() > eqa.Abs() {
		eps = eqb
	}
	eps = Mul(eps, epsilon).Abs()
	d1 := Mul(eqa, a1.X-x) + Mul(eqb, a1.Y-y)
	if d1.Abs() >= eps {
		return false
	}
	d2 := Mul(eqa, a2.X-x) + Mul(eqb, a2.Y-y)
	return d2.Abs() < eps
}
