// Package piecewise implements curves assembled from heterogeneous
// interpolation spans: paths through points in 1D, 2D or 3D, and
// function curves y = f(x).
/*

A piecewise curve is an ordered list of keys. Every key pins the curve
to a point at a parameter position and tags the span towards the next
key with an interpolation: linear, stepped, cubic Bézier, Hermite,
Catmull-Rom or B-spline. Keys is thus all the data there is; spans are
constructed on the fly during evaluation. The relevant literature for
the spline families is:

   A Class of Local Interpolating Splines -- Edwin Catmull, Raphael Rom
   Computer Aided Geometric Design, Academic Press 1974, pp 317-326

   A Practical Guide to Splines -- Carl de Boor
   Springer 1978 (for the uniform cubic B-spline basis)

Outside the key range a curve follows its loop policies: clamping to
the boundary key, linear extrapolation along the boundary tangent,
cyclic repetition with or without an accumulating offset, or
oscillating playback.

Usage

Clients usually assemble a curve with a kind of builder pattern
(package qualifiers omitted for clarity and brevity):

   p := NullPath[curves.Pair]().
       Knot(0, P(0,0)).Line().
       Knot(5, P(5,3)).Curve().
       Knot(10, P(10,0)).
       Looping(LoopConstant, LoopOscillate).End()

A built path evaluates at any parameter:

   pt := p.Point(7.5)
   dir := p.Tangent(7.5)

Function curves use the x-coordinate of their keys as the curve
parameter, so they always answer the question "what is y at x":

   f := NullFunction().Knot(0,0).Curve().Knot(5,3).Curve().Knot(10,0).End()
   y := f.Point(2.5).Y()

Caveats

(1) Keys have to be sorted ascending by parameter. Evaluation does not
check this and an unsorted curve produces undefined numbers. Call Sort
after out-of-order insertion.

(2) A function curve requires spans whose x-spline is monotonic.
Spans violating this yield NaN for queries the inversion cannot reach.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package piecewise

import (
	"fmt"
	"strings"

	"github.com/npillmayer/curves"
)

// AsString returns a path's knot sequence as a one-line (debugging)
// string, joint tags included.
//
// Example, a three-knot path:
//
//	(0,0) -linear- (5,3) -catmull-rom- (10,0)
func AsString[T curves.Vec[T]](c *Path[T]) string {
	var sb strings.Builder
	for i := 0; i < c.Len(); i++ {
		if i > 0 {
			sb.WriteString(fmt.Sprintf(" -%s- ", c.Key(i-1).Interpolation))
		}
		sb.WriteString(fmt.Sprintf("%v", c.Key(i).Point))
	}
	return sb.String()
}
