package segment

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestArcQuarterCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Arc{
		P1:     curves.P(1, 0),
		P2:     curves.P(0, 1),
		Radius: curves.P(1, 1),
	}
	g, err := a.Resolve()
	if err != nil {
		t.Fatalf("resolving quarter circle failed: %v", err)
	}
	approxPair(t, g.Center, curves.Origin, 0.0002)
	if math.Abs(g.Sweep-math.Pi/2) > 0.0002 {
		t.Errorf("Expected sweep of a quarter circle, is %g", g.Sweep)
	}
	approxPair(t, g.Point(0), a.P1, 0.0002)
	approxPair(t, g.Point(1), a.P2, 0.0002)
	l, err := g.Length(0, 1, 16, 0.0001)
	if err != nil {
		t.Fatalf("arc length failed: %v", err)
	}
	if math.Abs(l-math.Pi/2) > 0.01 {
		t.Errorf("Expected arc length π/2, is %g", l)
	}
}

func TestArcFlags(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	small := Arc{P1: curves.P(1, 0), P2: curves.P(0, 1), Radius: curves.P(1, 1)}
	cw := small
	cw.Clockwise = true
	g := cw.MustResolve()
	approxPair(t, g.Center, curves.P(1, 1), 0.0002)
	if math.Abs(g.Sweep+math.Pi/2) > 0.0002 {
		t.Errorf("Expected clockwise quarter sweep, is %g", g.Sweep)
	}
	big := small
	big.LargeArc = true
	g = big.MustResolve()
	if math.Abs(g.Sweep-3*math.Pi/2) > 0.0002 {
		t.Errorf("Expected three-quarter sweep, is %g", g.Sweep)
	}
}

func TestArcEndpointsForAllFlags(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, largeArc := range []bool{false, true} {
		for _, clockwise := range []bool{false, true} {
			a := Arc{
				P1:        curves.P(1, 2),
				P2:        curves.P(4, 3),
				Radius:    curves.P(3, 2),
				Rotation:  30 * curves.Deg2Rad,
				LargeArc:  largeArc,
				Clockwise: clockwise,
			}
			g, err := a.Resolve()
			if err != nil {
				t.Fatalf("resolving arc (%v,%v) failed: %v", largeArc, clockwise, err)
			}
			approxPair(t, g.Point(0), a.P1, 0.0002)
			approxPair(t, g.Point(1), a.P2, 0.0002)
			if largeArc != (math.Abs(g.Sweep) > math.Pi) {
				t.Errorf("Expected large-arc flag %v to match sweep %g", largeArc, g.Sweep)
			}
			if clockwise != (g.Sweep < 0) {
				t.Errorf("Expected direction flag %v to match sweep %g", clockwise, g.Sweep)
			}
		}
	}
}

func TestArcRadiusCorrection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Arc{
		P1:     curves.P(0, 0),
		P2:     curves.P(10, 0),
		Radius: curves.P(1, 1),
	}
	g := a.MustResolve()
	if !curves.Is0(g.Radius.X()-5) || !curves.Is0(g.Radius.Y()-5) {
		t.Errorf("Expected radii scaled up to (5,5), are %v", g.Radius)
	}
	approxPair(t, g.Point(0), a.P1, 0.0002)
	approxPair(t, g.Point(1), a.P2, 0.0002)
	if math.Abs(math.Abs(g.Sweep)-math.Pi) > 0.0002 {
		t.Errorf("Expected a semicircle after correction, sweep is %g", g.Sweep)
	}
}

func TestArcDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dot := Arc{P1: curves.P(3, 3), P2: curves.P(3, 3), Radius: curves.P(2, 2)}
	g := dot.MustResolve()
	if g.Sweep != 0 {
		t.Errorf("Expected coincident endpoints to resolve to zero sweep, is %g", g.Sweep)
	}
	approxPair(t, g.Point(0.7), curves.P(3, 3), 0.0002)
	pts, err := g.Flatten(nil, 10, 0.001)
	if err != nil || len(pts) != 0 {
		t.Errorf("Expected zero-sweep arc to flatten to nothing, got %d points (%v)", len(pts), err)
	}

	full := dot
	full.LargeArc = true
	g = full.MustResolve()
	approxPair(t, g.Point(0), curves.P(3, 3), 0.0002)
	approxPair(t, g.Point(1), curves.P(3, 3), 0.0002)
	l, err := g.Length(0, 1, 16, 0.0001)
	if err != nil {
		t.Fatalf("full ellipse length failed: %v", err)
	}
	if math.Abs(l-4*math.Pi) > 0.05 {
		t.Errorf("Expected circumference 4π, is %g", l)
	}
}

func TestArcRejectsRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	bad := Arc{P1: curves.P(0, 0), P2: curves.P(1, 1), Radius: curves.P(0, 1)}
	if _, err := bad.Resolve(); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("Expected zero radius to be rejected, got %v", err)
	}
	mustPanic(t, func() {
		bad.MustResolve()
	})
}

func TestArcTangentMatchesFiniteDifferences(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Arc{
		P1:       curves.P(1, 0),
		P2:       curves.P(0, 2),
		Radius:   curves.P(2, 3),
		Rotation: 15 * curves.Deg2Rad,
	}
	g := a.MustResolve()
	const h = 0.0001
	for _, u := range []float64{0.1, 0.5, 0.9} {
		want := derivApprox(g, u, h)
		got := g.Tangent(u)
		if got.Minus(want).Magnitude() > 0.001 {
			t.Errorf("tangent at %g is %v, finite differences say %v", u, got, want)
		}
	}
}
