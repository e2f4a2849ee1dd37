package polygon

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/curves"
)

// clipPolygon converts a polygon to the clipping library's
// representation, a single contour.
func (pg *Polygon) clipPolygon() polyclip.Polygon {
	contour := make(polyclip.Contour, len(pg.points))
	for i, p := range pg.points {
		contour[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return polyclip.Polygon{contour}
}

// construct runs a boolean set operation on two polygons. The result
// may consist of several disjoint contours; each one becomes a cyclic
// polygon of its own.
func construct(op polyclip.Op, a, b *Polygon) []*Polygon {
	result := a.clipPolygon().Construct(op, b.clipPolygon())
	L().Debugf("boolean operation on %d and %d knots gave %d contours",
		a.N(), b.N(), len(result))
	out := make([]*Polygon, 0, len(result))
	for _, contour := range result {
		pg := &Polygon{points: make([]curves.Pair, len(contour)), closed: true}
		for i, pt := range contour {
			pg.points[i] = curves.P(pt.X, pt.Y)
		}
		out = append(out, pg)
	}
	return out
}

// Union returns the union of two polygons, one polygon per resulting
// contour.
func (pg *Polygon) Union(other *Polygon) []*Polygon {
	return construct(polyclip.UNION, pg, other)
}

// Intersection returns the intersection of two polygons. Disjoint
// polygons yield an empty result.
func (pg *Polygon) Intersection(other *Polygon) []*Polygon {
	return construct(polyclip.INTERSECTION, pg, other)
}

// Difference returns the parts of pg not covered by other.
func (pg *Polygon) Difference(other *Polygon) []*Polygon {
	return construct(polyclip.DIFFERENCE, pg, other)
}

// Xor returns the symmetric difference of two polygons.
func (pg *Polygon) Xor(other *Polygon) []*Polygon {
	return construct(polyclip.XOR, pg, other)
}
