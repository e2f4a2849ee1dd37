package segment

import "github.com/npillmayer/curves"

// Bezier is a cubic Bézier segment: endpoints P1 and P2, shaped by the
// control points C1 and C2.
type Bezier[T curves.Vec[T]] struct {
	P1, C1, C2, P2 T
}

// Point evaluates the Bernstein form at u.
func (b Bezier[T]) Point(u float64) T {
	v := 1 - u
	pt := b.P1.Scaled(v * v * v)
	pt = pt.Shifted(b.C1.Scaled(3 * v * v * u))
	pt = pt.Shifted(b.C2.Scaled(3 * v * u * u))
	return pt.Shifted(b.P2.Scaled(u * u * u))
}

// Tangent evaluates the hodograph at u.
func (b Bezier[T]) Tangent(u float64) T {
	v := 1 - u
	tan := b.C1.Minus(b.P1).Scaled(3 * v * v)
	tan = tan.Shifted(b.C2.Minus(b.C1).Scaled(6 * v * u))
	return tan.Shifted(b.P2.Minus(b.C2).Scaled(3 * u * u))
}

// Length approximates the arc length of the parameter range [start,end].
func (b Bezier[T]) Length(start, end float64, maxIterations int, tolerance float64) (float64, error) {
	return Length[T](b, start, end, maxIterations, tolerance)
}

// Flatten appends a tolerance-bounded polyline to dst.
func (b Bezier[T]) Flatten(dst []T, maxIterations int, tolerance float64) ([]T, error) {
	return Flatten[T](b, dst, maxIterations, tolerance)
}

// Hermite is a cubic Hermite segment: endpoints P1 and P2 with the
// outgoing tangent T1 at P1 and the incoming tangent T2 at P2.
type Hermite[T curves.Vec[T]] struct {
	P1, T1, T2, P2 T
}

// Point evaluates the Hermite basis at u.
func (h Hermite[T]) Point(u float64) T {
	u2 := u * u
	u3 := u2 * u
	pt := h.P1.Scaled(2*u3 - 3*u2 + 1)
	pt = pt.Shifted(h.T1.Scaled(u3 - 2*u2 + u))
	pt = pt.Shifted(h.P2.Scaled(-2*u3 + 3*u2))
	return pt.Shifted(h.T2.Scaled(u3 - u2))
}

// Tangent evaluates the derivative of the Hermite basis at u.
func (h Hermite[T]) Tangent(u float64) T {
	u2 := u * u
	tan := h.P1.Scaled(6*u2 - 6*u)
	tan = tan.Shifted(h.T1.Scaled(3*u2 - 4*u + 1))
	tan = tan.Shifted(h.P2.Scaled(-6*u2 + 6*u))
	return tan.Shifted(h.T2.Scaled(3*u2 - 2*u))
}

// Length approximates the arc length of the parameter range [start,end].
func (h Hermite[T]) Length(start, end float64, maxIterations int, tolerance float64) (float64, error) {
	return Length[T](h, start, end, maxIterations, tolerance)
}

// Flatten appends a tolerance-bounded polyline to dst.
func (h Hermite[T]) Flatten(dst []T, maxIterations int, tolerance float64) ([]T, error) {
	return Flatten[T](h, dst, maxIterations, tolerance)
}

// CatmullRom is a uniform Catmull-Rom segment running from P1 to P2,
// with P0 and P3 as the neighbor points shaping the tangents. The curve
// interpolates P1 and P2.
type CatmullRom[T curves.Vec[T]] struct {
	P0, P1, P2, P3 T
}

// coefficients of the cubic in power form, times 2
func (cr CatmullRom[T]) coefficients() (T, T, T) {
	c1 := cr.P2.Minus(cr.P0)
	c2 := cr.P0.Scaled(2).Minus(cr.P1.Scaled(5)).Shifted(cr.P2.Scaled(4)).Minus(cr.P3)
	c3 := cr.P1.Scaled(3).Minus(cr.P0).Minus(cr.P2.Scaled(3)).Shifted(cr.P3)
	return c1, c2, c3
}

// Point evaluates the Catmull-Rom cubic at u.
func (cr CatmullRom[T]) Point(u float64) T {
	c1, c2, c3 := cr.coefficients()
	pt := cr.P1.Scaled(2)
	pt = pt.Shifted(c1.Scaled(u))
	pt = pt.Shifted(c2.Scaled(u * u))
	pt = pt.Shifted(c3.Scaled(u * u * u))
	return pt.Scaled(0.5)
}

// Tangent evaluates the derivative of the cubic at u.
func (cr CatmullRom[T]) Tangent(u float64) T {
	c1, c2, c3 := cr.coefficients()
	tan := c1
	tan = tan.Shifted(c2.Scaled(2 * u))
	tan = tan.Shifted(c3.Scaled(3 * u * u))
	return tan.Scaled(0.5)
}

// Length approximates the arc length of the parameter range [start,end].
func (cr CatmullRom[T]) Length(start, end float64, maxIterations int, tolerance float64) (float64, error) {
	return Length[T](cr, start, end, maxIterations, tolerance)
}

// Flatten appends a tolerance-bounded polyline to dst.
func (cr CatmullRom[T]) Flatten(dst []T, maxIterations int, tolerance float64) ([]T, error) {
	return Flatten[T](cr, dst, maxIterations, tolerance)
}

// Cardinal is a cardinal segment from P1 to P2: a Catmull-Rom
// generalized by a tension parameter. Tension 0 reproduces CatmullRom,
// tension 1 pulls the tangents to zero and the spline taut.
type Cardinal[T curves.Vec[T]] struct {
	P0, P1, P2, P3 T
	Tension        float64
}

// hermite expresses the cardinal segment over the Hermite basis with
// tension-scaled neighbor tangents.
func (cd Cardinal[T]) hermite() Hermite[T] {
	k := (1 - cd.Tension) / 2
	return Hermite[T]{
		P1: cd.P1,
		T1: cd.P2.Minus(cd.P0).Scaled(k),
		T2: cd.P3.Minus(cd.P1).Scaled(k),
		P2: cd.P2,
	}
}

// Point evaluates the cardinal segment at u.
func (cd Cardinal[T]) Point(u float64) T {
	return cd.hermite().Point(u)
}

// Tangent evaluates the derivative at u.
func (cd Cardinal[T]) Tangent(u float64) T {
	return cd.hermite().Tangent(u)
}

// Length approximates the arc length of the parameter range [start,end].
func (cd Cardinal[T]) Length(start, end float64, maxIterations int, tolerance float64) (float64, error) {
	return Length[T](cd, start, end, maxIterations, tolerance)
}

// Flatten appends a tolerance-bounded polyline to dst.
func (cd Cardinal[T]) Flatten(dst []T, maxIterations int, tolerance float64) ([]T, error) {
	return Flatten[T](cd, dst, maxIterations, tolerance)
}

// BSpline is one span of a uniform cubic B-spline over the control
// points P0 to P3. The span approximates its control polygon; it does
// not in general pass through any control point.
type BSpline[T curves.Vec[T]] struct {
	P0, P1, P2, P3 T
}

// Point evaluates the uniform cubic B-spline basis at u.
func (bs BSpline[T]) Point(u float64) T {
	v := 1 - u
	u2 := u * u
	u3 := u2 * u
	pt := bs.P0.Scaled(v * v * v / 6)
	pt = pt.Shifted(bs.P1.Scaled((3*u3 - 6*u2 + 4) / 6))
	pt = pt.Shifted(bs.P2.Scaled((-3*u3 + 3*u2 + 3*u + 1) / 6))
	return pt.Shifted(bs.P3.Scaled(u3 / 6))
}

// Tangent evaluates the derivative of the basis at u.
func (bs BSpline[T]) Tangent(u float64) T {
	v := 1 - u
	tan := bs.P0.Scaled(-v * v / 2)
	tan = tan.Shifted(bs.P1.Scaled((3*u*u - 4*u) / 2))
	tan = tan.Shifted(bs.P2.Scaled((-3*u*u + 2*u + 1) / 2))
	return tan.Shifted(bs.P3.Scaled(u * u / 2))
}

// Length approximates the arc length of the parameter range [start,end].
func (bs BSpline[T]) Length(start, end float64, maxIterations int, tolerance float64) (float64, error) {
	return Length[T](bs, start, end, maxIterations, tolerance)
}

// Flatten appends a tolerance-bounded polyline to dst.
func (bs BSpline[T]) Flatten(dst []T, maxIterations int, tolerance float64) ([]T, error) {
	return Flatten[T](bs, dst, maxIterations, tolerance)
}
