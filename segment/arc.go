package segment

import (
	"fmt"
	"math"

	"github.com/npillmayer/curves"
)

// Arc describes an elliptical arc from P1 to P2 in endpoint form: the
// ellipse radii, a rotation of the ellipse's x-axis, and two flags
// selecting one of the four candidate arcs through both points. This is
// the parameterization known from SVG path data.
//
// An Arc is a plain descriptor. Call Resolve to obtain an evaluable
// geometry in center form.
type Arc struct {
	P1, P2    curves.Pair
	Radius    curves.Pair // rx and ry, both positive
	Rotation  float64     // rotation of the ellipse's x-axis, in radians
	LargeArc  bool        // select the pair of arcs spanning more than half the ellipse
	Clockwise bool        // sweep in the negative angular direction
}

// ArcGeometry is a resolved arc in center form: center, corrected
// radii, rotation and the angle range. It satisfies Curve over pairs;
// Point(0) reproduces the descriptor's P1 and Point(1) its P2.
type ArcGeometry struct {
	Center   curves.Pair
	Radius   curves.Pair
	Rotation float64
	Start    float64 // start angle on the unit ellipse, in radians
	Sweep    float64 // signed angular extent, in radians
}

// Resolve validates the descriptor and derives its center form:
// radii too small to span the chord are scaled up uniformly, then the
// center and the signed sweep matching the flags are constructed.
//
// A degenerate arc with coincident endpoints resolves to a zero sweep,
// or to a full ellipse when LargeArc is set.
func (a Arc) Resolve() (ArcGeometry, error) {
	rx, ry := a.Radius.X(), a.Radius.Y()
	if rx <= 0 || ry <= 0 {
		return ArcGeometry{}, fmt.Errorf("%w: got (%g,%g)", ErrInvalidRadius, rx, ry)
	}
	rot := curves.Rotation(a.Rotation)
	if a.P1.Equal(a.P2) {
		g := ArcGeometry{
			Center:   a.P1.Minus(rot.Transform(curves.P(rx, 0))),
			Radius:   curves.P(rx, ry),
			Rotation: a.Rotation,
		}
		if a.LargeArc {
			g.Sweep = 2 * math.Pi
			if a.Clockwise {
				g.Sweep = -g.Sweep
			}
		}
		return g, nil
	}
	// switch to the ellipse's own frame
	q := curves.Rotation(-a.Rotation).Transform(a.P1.Minus(a.P2).Scaled(0.5))
	x1, y1 := q.F()

	// scale up radii which cannot span the chord
	lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
		tracer().Debugf("arc radii scaled by %g to (%g,%g)", s, rx, ry)
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	if num < 0 {
		num = 0
	}
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	cf := math.Sqrt(num / den)
	if a.LargeArc != a.Clockwise {
		cf = -cf
	}
	cq := curves.P(cf*rx*y1/ry, -cf*ry*x1/rx)
	mid := curves.P((a.P1.X()+a.P2.X())/2, (a.P1.Y()+a.P2.Y())/2)
	center := rot.Transform(cq).Shifted(mid)

	theta1 := math.Atan2((y1-cq.Y())/ry, (x1-cq.X())/rx)
	theta2 := math.Atan2((-y1-cq.Y())/ry, (-x1-cq.X())/rx)
	sweep := theta2 - theta1
	if a.Clockwise && sweep > 0 {
		sweep -= 2 * math.Pi
	} else if !a.Clockwise && sweep < 0 {
		sweep += 2 * math.Pi
	}
	g := ArcGeometry{
		Center:   center,
		Radius:   curves.P(rx, ry),
		Rotation: a.Rotation,
		Start:    theta1,
		Sweep:    sweep,
	}
	tracer().Debugf("arc resolved to center %v, angles %g + %g", g.Center, g.Start, g.Sweep)
	return g, nil
}

// MustResolve is a convenience function wrapping Resolve. It panics on
// an invalid descriptor.
func (a Arc) MustResolve() ArcGeometry {
	g, err := a.Resolve()
	if err != nil {
		panic(err)
	}
	return g
}

// Point evaluates the arc at u.
func (g ArcGeometry) Point(u float64) curves.Pair {
	theta := g.Start + u*g.Sweep
	e := curves.P(g.Radius.X()*math.Cos(theta), g.Radius.Y()*math.Sin(theta))
	return g.Center.Shifted(curves.Rotation(g.Rotation).Transform(e))
}

// Tangent evaluates the derivative with respect to u.
func (g ArcGeometry) Tangent(u float64) curves.Pair {
	theta := g.Start + u*g.Sweep
	e := curves.P(-g.Radius.X()*math.Sin(theta), g.Radius.Y()*math.Cos(theta)).Scaled(g.Sweep)
	return curves.Rotation(g.Rotation).Transform(e)
}

// Length approximates the arc length of the parameter range [start,end].
func (g ArcGeometry) Length(start, end float64, maxIterations int, tolerance float64) (float64, error) {
	return Length[curves.Pair](g, start, end, maxIterations, tolerance)
}

// Flatten appends a tolerance-bounded polyline to dst.
func (g ArcGeometry) Flatten(dst []curves.Pair, maxIterations int, tolerance float64) ([]curves.Pair, error) {
	return Flatten[curves.Pair](g, dst, maxIterations, tolerance)
}
