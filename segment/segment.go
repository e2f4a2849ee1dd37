/*
Package segment implements parameterized curve segments, the primitive
pieces between two control points of a piecewise curve: straight lines,
steps, cubic Bézier, Hermite, Catmull-Rom, cardinal and B-spline spans,
and elliptical arcs.

All segment types satisfy interface Curve: a point function over
u ∈ [0,1], its tangent, adaptive arc length and tolerance-bounded
flattening to a polyline. Segments are plain values without identity,
meant to be constructed on the fly, evaluated and discarded.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package segment

import (
	"errors"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curves.segment'
func tracer() tracing.Trace {
	return tracing.Select("curves.segment")
}

// ErrInvalidTolerance flags a non-positive tolerance argument to Length
// or Flatten.
var ErrInvalidTolerance = errors.New("tolerance must be positive")

// ErrInvalidRadius flags an arc radius with a non-positive component.
var ErrInvalidRadius = errors.New("arc radius components must be positive")

// Curve is the contract shared by all segment types: a parameterized
// curve c(u) with u running from 0 to 1.
//
// Tangent is the derivative with respect to u; it is not normalized to
// arc length. Length and Flatten refine recursively, bounded by an
// iteration budget and a tolerance. A non-positive tolerance is
// rejected with ErrInvalidTolerance.
type Curve[T curves.Vec[T]] interface {
	Point(u float64) T
	Tangent(u float64) T
	Length(start, end float64, maxIterations int, tolerance float64) (float64, error)
	Flatten(dst []T, maxIterations int, tolerance float64) ([]T, error)
}
