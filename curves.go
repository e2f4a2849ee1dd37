/*
Package curves implements points in one, two and three dimensions,
affine transformations, and the shared arithmetic for piecewise curves.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curves

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curves'
func tracer() tracing.Trace {
	return tracing.Select("curves")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// === Point Capability ======================================================

// Vec is the arithmetic contract shared by all point types: vector
// addition and subtraction, scaling, and Euclidean magnitude. Scalar,
// Pair and Triple each satisfy Vec of themselves, so curve algorithms
// written against Vec serve 1D, 2D and 3D points alike.
type Vec[T any] interface {
	Shifted(T) T
	Minus(T) T
	Scaled(float64) T
	Magnitude() float64
}

// === Scalar Data Type ======================================================

// Scalar is a point in 1D space: a plain number carrying the Vec
// capability.
type Scalar float64

// S is a quick notation for contructing a scalar from a float.
func S(x float64) Scalar {
	return Scalar(x)
}

// Pretty Stringer for scalars.
func (s Scalar) String() string {
	return fmt.Sprintf("(%g)", float64(s))
}

// Shifted returns a new scalar translated by t.
func (s Scalar) Shifted(t Scalar) Scalar {
	return s + t
}

// Minus returns a new scalar translated by -t.
func (s Scalar) Minus(t Scalar) Scalar {
	return s - t
}

// Scaled returns a new scalar scaled by factor a.
func (s Scalar) Scaled(a float64) Scalar {
	return Scalar(float64(s) * a)
}

// Magnitude returns the absolute value of s.
func (s Scalar) Magnitude() float64 {
	return math.Abs(float64(s))
}

// === Pair Data Type ========================================================

// Pair is an interface for pairs / 2D-points
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	px := real(p.C())
	py := imag(p.C())
	return px, py
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	p = P(Zap(p.X()), Zap(p.Y()))
	return p
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a).Zap()
}

// XScaled returns a new pair x-scaled by factor a.
func (p Pair) XScaled(a float64) Pair {
	return P(p.X()*a, p.Y()).Zap()
}

// YScaled returns a new pair y-scaled by factor a.
func (p Pair) YScaled(a float64) Pair {
	return P(p.X(), p.Y()*a).Zap()
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	T := Translation(v)
	return T.Transform(p).Zap()
}

// Minus returns a new pair translated by -v.
func (p Pair) Minus(v Pair) Pair {
	return p.Shifted(-v)
}

// Magnitude returns the Euclidean norm of p.
func (p Pair) Magnitude() float64 {
	return cmplx.Abs(p.C())
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	T := Rotation(theta)
	return T.Transform(p).Zap()
}

// Rotatedaround returns a new pair rotated around v by theta (counterclockwise).
func (p Pair) Rotatedaround(v Pair, theta float64) Pair {
	return p.Shifted(-v).Rotated(theta).Shifted(v).Zap()
}

// === Triple Data Type ======================================================

// Triple is a point in 3D space.
type Triple [3]float64

// P3 is a quick notation for contructing a triple from floats.
func P3(x, y, z float64) Triple {
	return Triple{x, y, z}
}

// Pretty Stringer for triples.
func (v Triple) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v[0], v[1], v[2])
}

// X is the x-part of a triple.
func (v Triple) X() float64 {
	return v[0]
}

// Y is the y-part of a triple.
func (v Triple) Y() float64 {
	return v[1]
}

// Z is the z-part of a triple.
func (v Triple) Z() float64 {
	return v[2]
}

// Zap rounds all three parts to Epsilon.
func (v Triple) Zap() Triple {
	return P3(Zap(v[0]), Zap(v[1]), Zap(v[2]))
}

// Equal compares two triples.
func (v Triple) Equal(w Triple) bool {
	return Is0(v[0]-w[0]) && Is0(v[1]-w[1]) && Is0(v[2]-w[2])
}

// Shifted returns a new triple translated by w.
func (v Triple) Shifted(w Triple) Triple {
	return P3(v[0]+w[0], v[1]+w[1], v[2]+w[2])
}

// Minus returns a new triple translated by -w.
func (v Triple) Minus(w Triple) Triple {
	return P3(v[0]-w[0], v[1]-w[1], v[2]-w[2])
}

// Scaled returns a new triple scaled by factor a.
func (v Triple) Scaled(a float64) Triple {
	return P3(v[0]*a, v[1]*a, v[2]*a)
}

// Magnitude returns the Euclidean norm of v.
func (v Triple) Magnitude() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
