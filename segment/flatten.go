package segment

import (
	"fmt"
	"math"

	"github.com/npillmayer/curves"
)

// Length approximates the arc length of c over the parameter range
// [start,end] by recursive bisection. A sub-range is accepted as soon
// as the sum of its half chords agrees with its own chord within
// tolerance, or when the iteration budget is exhausted.
func Length[T curves.Vec[T]](c Curve[T], start, end float64, maxIterations int, tolerance float64) (float64, error) {
	if tolerance <= 0 {
		return 0, fmt.Errorf("%w: %g", ErrInvalidTolerance, tolerance)
	}
	return subLength(c, start, end, c.Point(start), c.Point(end), 0, maxIterations, tolerance), nil
}

func subLength[T curves.Vec[T]](c Curve[T], t0, t1 float64, p0, p1 T, iteration, maxIterations int, tolerance float64) float64 {
	chord := p1.Minus(p0).Magnitude()
	if iteration >= maxIterations {
		return chord
	}
	tm := (t0 + t1) / 2
	pm := c.Point(tm)
	left := pm.Minus(p0).Magnitude()
	right := p1.Minus(pm).Magnitude()
	if left+right-chord < tolerance {
		return left + right
	}
	return subLength(c, t0, tm, p0, pm, iteration+1, maxIterations, tolerance) +
		subLength(c, tm, t1, pm, p1, iteration+1, maxIterations, tolerance)
}

// Flatten approximates c over [0,1] by a polyline whose chords deviate
// from the curve's arc length by less than tolerance, appending the
// result to dst. The output comes as point pairs: every emitted chord
// repeats its shared endpoint, so several curves can flatten into one
// destination slice without losing chord boundaries.
//
// A curve of zero length emits nothing; a curve shorter than the
// tolerance emits the single chord from Point(0) to Point(1).
func Flatten[T curves.Vec[T]](c Curve[T], dst []T, maxIterations int, tolerance float64) ([]T, error) {
	if tolerance <= 0 {
		return dst, fmt.Errorf("%w: %g", ErrInvalidTolerance, tolerance)
	}
	total, err := c.Length(0, 1, maxIterations, tolerance)
	if err != nil {
		return dst, err
	}
	if curves.Is0(total) {
		return dst, nil
	}
	p0, p1 := c.Point(0), c.Point(1)
	if total < tolerance {
		return append(dst, p0, p1), nil
	}
	return subFlatten(c, dst, 0, 1, p0, p1, 0, total, 0, maxIterations, tolerance), nil
}

func subFlatten[T curves.Vec[T]](c Curve[T], dst []T, t0, t1 float64, p0, p1 T, len0, len1 float64, iteration, maxIterations int, tolerance float64) []T {
	chord := p1.Minus(p0).Magnitude()
	if iteration >= maxIterations || math.Abs((len1-len0)-chord) < tolerance {
		return append(dst, p0, p1)
	}
	tm := (t0 + t1) / 2
	pm := c.Point(tm)
	lenM := len0 + subLength(c, t0, tm, p0, pm, 0, maxIterations, tolerance)
	dst = subFlatten(c, dst, t0, tm, p0, pm, len0, lenM, iteration+1, maxIterations, tolerance)
	return subFlatten(c, dst, tm, t1, pm, p1, lenM, len1, iteration+1, maxIterations, tolerance)
}
