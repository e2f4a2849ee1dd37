package segment

import (
	"fmt"
	"math"

	"github.com/npillmayer/curves"
)

// lerp is the linear blend between a and b.
func lerp[T curves.Vec[T]](a, b T, u float64) T {
	return a.Shifted(b.Minus(a).Scaled(u))
}

// Line is the straight segment from P1 to P2.
type Line[T curves.Vec[T]] struct {
	P1, P2 T
}

// Point returns the position at u.
func (ln Line[T]) Point(u float64) T {
	return lerp(ln.P1, ln.P2, u)
}

// Tangent is constant for a line.
func (ln Line[T]) Tangent(u float64) T {
	return ln.P2.Minus(ln.P1)
}

// Length returns the exact length of the parameter range [start,end].
func (ln Line[T]) Length(start, end float64, maxIterations int, tolerance float64) (float64, error) {
	if tolerance <= 0 {
		return 0, fmt.Errorf("%w: %g", ErrInvalidTolerance, tolerance)
	}
	return ln.P2.Minus(ln.P1).Magnitude() * math.Abs(end-start), nil
}

// Flatten appends the single chord P1,P2 to dst.
func (ln Line[T]) Flatten(dst []T, maxIterations int, tolerance float64) ([]T, error) {
	return Flatten[T](ln, dst, maxIterations, tolerance)
}

// StepAlign selects where a step segment jumps from P1 to P2.
type StepAlign int

// Alignments for step segments.
const (
	StepLeft     StepAlign = iota // jump immediately after u = 0
	StepCentered                  // jump at u = 0.5
	StepRight                     // jump at u = 1
)

// Step is a discontinuous segment: it holds the value P1 and jumps to
// P2 at a threshold given by Align.
type Step[T curves.Vec[T]] struct {
	P1, P2 T
	Align  StepAlign
}

// Point returns P1 before the jump threshold, P2 at and after it.
func (st Step[T]) Point(u float64) T {
	switch st.Align {
	case StepCentered:
		if u < 0.5 {
			return st.P1
		}
	case StepRight:
		if u < 1 {
			return st.P1
		}
	default:
		if u <= 0 {
			return st.P1
		}
	}
	return st.P2
}

// Tangent of a step is the zero vector. The jump has no direction.
func (st Step[T]) Tangent(u float64) T {
	var zero T
	return zero
}

// Length of a step is zero.
func (st Step[T]) Length(start, end float64, maxIterations int, tolerance float64) (float64, error) {
	if tolerance <= 0 {
		return 0, fmt.Errorf("%w: %g", ErrInvalidTolerance, tolerance)
	}
	return 0, nil
}

// Flatten emits nothing: a step contributes no drawable chord.
func (st Step[T]) Flatten(dst []T, maxIterations int, tolerance float64) ([]T, error) {
	return Flatten[T](st, dst, maxIterations, tolerance)
}
