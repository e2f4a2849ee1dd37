package piecewise

import "github.com/npillmayer/curves"

// Key is one control point of a piecewise curve: a parameter position,
// the point itself, optional tangent data, and the interpolation tag
// for the span towards the next key.
//
// The meaning of TangentIn and TangentOut depends on the
// interpolation: for Hermite spans they are true tangents, for Bezier
// spans additional control points, and for all other spans they are
// ignored. TangentOut shapes the span leaving this key, TangentIn the
// span arriving at it.
type Key[T curves.Vec[T]] struct {
	Param         float64       `json:"param"`
	Point         T             `json:"point"`
	TangentIn     T             `json:"tangentIn"`
	TangentOut    T             `json:"tangentOut"`
	Interpolation Interpolation `json:"interpolation"`
}

// Knot creates a key for a point at a parameter position, with the
// interpolation towards the next key left at Linear.
func Knot[T curves.Vec[T]](param float64, p T) *Key[T] {
	return &Key[T]{Param: param, Point: p}
}
