package polygon

import (
	"testing"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/piecewise"
	"github.com/npillmayer/curves/segment"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func triangle() *Polygon {
	return NullPolygon().Knot(curves.P(0, 0)).Knot(curves.P(1, 3)).Knot(curves.P(3, 0)).Cycle()
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := triangle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	if !pg.IsCycle() {
		t.Fail()
	}
}

func TestBuilderPanics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mustPanic(t, func() {
		NullPolygon().Knot(curves.P(0, 0)).Knot(curves.P(1, 1)).Cycle()
	})
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(curves.P(0, 5), curves.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	// corners get normalized, knots run counterclockwise
	if !box.Pt(0).Equal(curves.P(0, 1)) || !box.Pt(2).Equal(curves.P(4, 5)) {
		t.Errorf("Expected normalized corners, got %s", AsString(box))
	}
}

func TestPtWrapsAround(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := triangle()
	if !pg.Pt(-1).Equal(curves.P(3, 0)) {
		t.Errorf("Expected Pt(-1) to be the last knot, got %v", pg.Pt(-1))
	}
	if !pg.Pt(3).Equal(pg.Pt(0)) {
		t.Errorf("Expected Pt(3) to wrap to the first knot, got %v", pg.Pt(3))
	}
}

func TestAsStringSnapshots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if got, want := AsString(triangle()), "(0,0) -- (1,3) -- (3,0) -- cycle"; got != want {
		t.Fatalf("cycle AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestArea(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(curves.P(0, 5), curves.P(4, 1))
	if a := box.Area(); !curves.Is0(a - 16) {
		t.Errorf("Expected box area 16, got %g", a)
	}
	// the triangle's knots run clockwise, so its area is negative
	if a := triangle().Area(); !curves.Is0(a + 4.5) {
		t.Errorf("Expected triangle area -4.5, got %g", a)
	}
}

func TestBoundingBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ll, ur := triangle().BoundingBox()
	if !ll.Equal(curves.P(0, 0)) || !ur.Equal(curves.P(3, 3)) {
		t.Errorf("Expected bounding box (0,0)/(3,3), got %v/%v", ll, ur)
	}
}

func TestTransformed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(curves.P(0, 0), curves.P(4, 4))
	scaled := box.Transformed(curves.Scaling(2, 3))
	if a := scaled.Area(); !curves.Is0(a - 96) {
		t.Errorf("Expected scaled area 96, got %g", a)
	}
	moved := box.Transformed(curves.Translation(curves.P(10, -10)))
	if a := moved.Area(); !curves.Is0(a - 16) {
		t.Errorf("Expected translation to keep the area, got %g", a)
	}
	if !moved.Pt(0).Equal(curves.P(10, -10)) {
		t.Errorf("Expected moved corner (10,-10), got %v", moved.Pt(0))
	}
}

func TestFromPathOpen(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := piecewise.NullPath[curves.Pair]().
		Knot(0, curves.P(0, 0)).Line().
		Knot(1, curves.P(1, 0)).Line().
		Knot(2, curves.P(1, 1)).End()
	pg, err := FromPath(c, 10, 0.01)
	if err != nil {
		t.Fatalf("flattening path failed: %v", err)
	}
	if pg.N() != 3 || pg.IsCycle() {
		t.Errorf("Expected an open 3-knot polygon, got %s", AsString(pg))
	}
}

func TestFromPathCycle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := piecewise.NullPath[curves.Pair]().
		Knot(0, curves.P(0, 0)).Line().
		Knot(1, curves.P(3, 0)).Line().
		Knot(2, curves.P(0, 3)).Line().
		Knot(3, curves.P(0, 0)).End()
	pg, err := FromPath(c, 10, 0.01)
	if err != nil {
		t.Fatalf("flattening path failed: %v", err)
	}
	if pg.N() != 3 || !pg.IsCycle() {
		t.Errorf("Expected a cyclic 3-knot polygon, got %s", AsString(pg))
	}
	if a := pg.Area(); !curves.Is0(a - 4.5) {
		t.Errorf("Expected area 4.5, got %g", a)
	}
}

func TestFromSegments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	arc := segment.Arc{
		P1:     curves.P(1, 0),
		P2:     curves.P(0, 1),
		Radius: curves.P(1, 1),
	}.MustResolve()
	pg, err := FromSegments(10, 0.01, arc)
	if err != nil {
		t.Fatalf("flattening arc failed: %v", err)
	}
	if pg.N() < 4 {
		t.Errorf("Expected the arc to flatten to several chords, got %d", pg.N())
	}
	if !pg.Pt(0).Equal(curves.P(1, 0)) || !pg.Pt(-1).Equal(curves.P(0, 1)) {
		t.Errorf("Expected polygon to start and end on the arc's endpoints")
	}
	ll, ur := pg.BoundingBox()
	if ll.X() < -curves.Epsilon || ll.Y() < -curves.Epsilon || ur.X() > 1+curves.Epsilon || ur.Y() > 1+curves.Epsilon {
		t.Errorf("Expected chords inside the unit quarter, got %v/%v", ll, ur)
	}
}
