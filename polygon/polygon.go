/*
Package polygon implements simple planar polygons: construction knot by
knot, approximation of piecewise curves by polygons, and boolean set
operations (union, intersection, difference) between polygons.

Boolean operations rely on a port of the polygon clipping algorithm by
F. Martínez, A.J. Rueda and F.R. Feito (2009).

Usage

Polygons are either built directly,

	pg := polygon.NullPolygon().Knot(curves.P(0,0)).Knot(curves.P(1,3)).Knot(curves.P(3,0)).Cycle()

or derived from a piecewise curve, with every span flattened to chords
within a given tolerance:

	pg, err := polygon.FromPath(path, 10, 0.01)

Caveats

Boolean operations treat every polygon as closed; an open polygon
contributes its implied closing edge.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/segment"
	"github.com/npillmayer/schuko/tracing"
)

// L writes to trace with key 'curves.polygon'
func L() tracing.Trace {
	return tracing.Select("curves.polygon")
}

// Polygon is a planar polygon: knots joined by straight lines. A
// polygon is either cyclic or open; open polygons arise from
// flattening non-returning curves.
type Polygon struct {
	points []curves.Pair
	closed bool
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Pt returns knot i. The index wraps around, so Pt(-1) is the last
// knot. An empty polygon has no knots to return and yields NaN.
func (pg *Polygon) Pt(i int) curves.Pair {
	n := len(pg.points)
	if n == 0 {
		return curves.P(math.NaN(), math.NaN())
	}
	i = ((i % n) + n) % n
	return pg.points[i]
}

// IsCycle is a predicate: is the polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.closed
}

// === Construction ==========================================================

// PolygonBuilder constructs a polygon knot by knot. Use NullPolygon to
// start one.
type PolygonBuilder struct {
	pg Polygon
}

// NullPolygon creates an empty polygon builder.
func NullPolygon() *PolygonBuilder {
	return &PolygonBuilder{}
}

// Knot appends a knot to the polygon under construction.
func (b *PolygonBuilder) Knot(p curves.Pair) *PolygonBuilder {
	b.pg.points = append(b.pg.points, p)
	return b
}

// Cycle closes the polygon and returns it. Closing needs at least
// 3 knots, otherwise Cycle panics.
func (b *PolygonBuilder) Cycle() *Polygon {
	if len(b.pg.points) < 3 {
		panic("cannot close polygon with fewer than 3 knots")
	}
	b.pg.closed = true
	return &b.pg
}

// Box returns the rectangle spanned by two opposite corners as a
// 4-knot cyclic polygon. Knots run counterclockwise from the lower
// left corner.
func Box(p1, p2 curves.Pair) *Polygon {
	llx, urx := math.Min(p1.X(), p2.X()), math.Max(p1.X(), p2.X())
	lly, ury := math.Min(p1.Y(), p2.Y()), math.Max(p1.Y(), p2.Y())
	return &Polygon{
		points: []curves.Pair{
			curves.P(llx, lly), curves.P(urx, lly),
			curves.P(urx, ury), curves.P(llx, ury),
		},
		closed: true,
	}
}

// FromPath approximates a curve by a polygon, flattening every span to
// chords within the given tolerance. Any curve satisfying the segment
// contract will do, piecewise paths included. A curve returning to its
// first point yields a cyclic polygon.
func FromPath(path segment.Curve[curves.Pair], maxIterations int, tolerance float64) (*Polygon, error) {
	pts, err := path.Flatten(nil, maxIterations, tolerance)
	if err != nil {
		return nil, err
	}
	return fromPairs(pts), nil
}

// FromSegments approximates a chain of curve segments by a single
// polygon. Segments are flattened in the order given; the caller is
// responsible for their endpoints lining up.
func FromSegments(maxIterations int, tolerance float64, segs ...segment.Curve[curves.Pair]) (*Polygon, error) {
	var pts []curves.Pair
	var err error
	for _, seg := range segs {
		pts, err = seg.Flatten(pts, maxIterations, tolerance)
		if err != nil {
			return nil, err
		}
	}
	return fromPairs(pts), nil
}

// fromPairs builds a polygon from a stream of chord endpoints,
// dropping the repeated point where two chords join. A terminal point
// equal to the first knot closes the polygon.
func fromPairs(pts []curves.Pair) *Polygon {
	pg := &Polygon{}
	for _, p := range pts {
		if n := len(pg.points); n > 0 && pg.points[n-1].Equal(p) {
			continue
		}
		pg.points = append(pg.points, p)
	}
	if n := len(pg.points); n > 3 && pg.points[0].Equal(pg.points[n-1]) {
		pg.points = pg.points[:n-1]
		pg.closed = true
		L().Debugf("polygon closes onto its first knot, %d knots", len(pg.points))
	}
	return pg
}

// === Properties ============================================================

// Area returns the signed area of the polygon, positive for
// counterclockwise knot order. Open polygons contribute their implied
// closing edge.
func (pg *Polygon) Area() float64 {
	n := len(pg.points)
	if n < 3 {
		return 0
	}
	a := 0.0
	for i := 0; i < n; i++ {
		p, q := pg.points[i], pg.points[(i+1)%n]
		a += p.X()*q.Y() - q.X()*p.Y()
	}
	return a / 2
}

// BoundingBox returns the corners of the axis-aligned bounding box as
// (lower left, upper right).
func (pg *Polygon) BoundingBox() (curves.Pair, curves.Pair) {
	if len(pg.points) == 0 {
		return curves.P(math.NaN(), math.NaN()), curves.P(math.NaN(), math.NaN())
	}
	llx, lly := pg.points[0].F()
	urx, ury := llx, lly
	for _, p := range pg.points[1:] {
		llx = math.Min(llx, p.X())
		lly = math.Min(lly, p.Y())
		urx = math.Max(urx, p.X())
		ury = math.Max(ury, p.Y())
	}
	return curves.P(llx, lly), curves.P(urx, ury)
}

// Transformed returns a copy of the polygon with every knot mapped
// through an affine transform.
func (pg *Polygon) Transformed(t curves.AT) *Polygon {
	out := &Polygon{points: make([]curves.Pair, len(pg.points)), closed: pg.closed}
	for i, p := range pg.points {
		out.points[i] = t.Transform(p)
	}
	return out
}

// AsString returns a polygon as a one-line (debugging) string, close
// to MetaFont's syntax for straight-line joins.
//
// Example, a triangle:
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var s string
	for i, p := range pg.points {
		if i > 0 {
			s += " -- "
		}
		s += fmt.Sprintf("%s", p)
	}
	if pg.closed {
		s += " -- cycle"
	}
	return s
}
