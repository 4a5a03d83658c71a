package fixed

import "testing"

func TestFlattenCubicStraightLine(t *testing.T) {
	p0 := Point{X: FromInt(0), Y: FromInt(0)}
	p1 := Point{X: FromInt(10), Y: FromInt(0)}
	p2 := Point{X: FromInt(20), Y: FromInt(0)}
	p3 := Point{X: FromInt(30), Y: FromInt(0)}

	var pts []Point
	FlattenCubic(p0, p1, p2, p3, One, func(pt Point) {
		pts = append(pts, pt)
	})

	if len(pts) == 0 {
		t.Fatal("expected at least one emitted point")
	}
	last := pts[len(pts)-1]
	if last != p3 {
		t.Errorf("last emitted point = %v, want %v", last, p3)
	}
	for _, pt := range pts {
		if pt.Y != 0 {
			t.Errorf("emitted point %v has nonzero Y on a straight horizontal curve", pt)
		}
	}
}

func TestFlattenCubicDegenerateLine(t *testing.T) {
	p0 := Point{X: FromInt(5), Y: FromInt(5)}
	p3 := Point{X: FromInt(5), Y: FromInt(5)}
	n := 0
	FlattenCubic(p0, p0, p3, p3, One, func(pt Point) { n++ })
	if n != 1 {
		t.Errorf("degenerate curve emitted %d points, want 1", n)
	}
}

func TestFlattenCubicSplitsLargeBBox(t *testing.T) {
	p0 := Point{X: FromInt(0), Y: FromInt(0)}
	p1 := Point{X: FromInt(0), Y: FromInt(1000)}
	p2 := Point{X: FromInt(1000), Y: FromInt(1000)}
	p3 := Point{X: FromInt(1000), Y: FromInt(0)}

	var pts []Point
	FlattenCubic(p0, p1, p2, p3, One, func(pt Point) {
		pts = append(pts, pt)
	})
	if len(pts) < 4 {
		t.Errorf("large-bbox curve emitted only %d points, expected several", len(pts))
	}
	if pts[len(pts)-1] != p3 {
		t.Errorf("last emitted point = %v, want %v", pts[len(pts)-1], p3)
	}
}
