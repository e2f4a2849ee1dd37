package piecewise

import (
	"fmt"
	"math"
	"sort"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/segment"
)

// Path is a piecewise curve through points of type T: an ordered
// sequence of keys, plus loop policies for query parameters outside
// the key range. Each key's interpolation tag selects the segment type
// towards the next key, so a single path may mix linear, stepped and
// cubic spans.
//
// Keys are assumed to be sorted ascending by parameter. Evaluation
// never checks this; evaluating an unsorted path yields undefined
// numeric results. Use Sort after out-of-order insertion, or Validate
// as an explicit diagnostic.
//
// A Path satisfies the segment Curve contract over its own parameter
// range, so paths nest wherever single segments do.
type Path[T curves.Vec[T]] struct {
	PreLoop    Loop
	PostLoop   Loop
	SmoothEnds bool
	keys       []*Key[T]
}

// Add appends keys to the path. Nil keys are rejected.
func (c *Path[T]) Add(keys ...*Key[T]) error {
	for _, k := range keys {
		if k == nil {
			return ErrNilKey
		}
	}
	c.keys = append(c.keys, keys...)
	return nil
}

// Insert inserts a key at position i, shifting later keys up.
func (c *Path[T]) Insert(i int, k *Key[T]) error {
	if k == nil {
		return ErrNilKey
	}
	c.keys = append(c.keys, nil)
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = k
	return nil
}

// RemoveAt removes the key at position i.
func (c *Path[T]) RemoveAt(i int) {
	c.keys = append(c.keys[:i], c.keys[i+1:]...)
}

// Len returns the number of keys.
func (c *Path[T]) Len() int {
	return len(c.keys)
}

// Key returns the key at position i.
func (c *Path[T]) Key(i int) *Key[T] {
	return c.keys[i]
}

// Sort orders the keys ascending by parameter. Sorting is stable: keys
// sharing a parameter keep their insertion order.
func (c *Path[T]) Sort() {
	sort.SliceStable(c.keys, func(i, j int) bool {
		return c.keys[i].Param < c.keys[j].Param
	})
}

// Validate reports broken key data: NaN or infinite coordinates, or
// keys out of ascending order. Evaluation never validates implicitly.
func (c *Path[T]) Validate() error {
	for i, k := range c.keys {
		m := k.Point.Magnitude()
		if math.IsNaN(m) || math.IsInf(m, 0) || math.IsNaN(k.Param) || math.IsInf(k.Param, 0) {
			return fmt.Errorf("%w: key %d", ErrInvalidKey, i)
		}
	}
	for i := 1; i < len(c.keys); i++ {
		if c.keys[i].Param < c.keys[i-1].Param {
			return fmt.Errorf("%w: key %d precedes key %d", ErrUnsortedKeys, i, i-1)
		}
	}
	return nil
}

// KeyIndex returns the index of the key with the largest parameter not
// exceeding param: -1 before the first key, Len()-1 at and after the
// last. Keys must be sorted.
func (c *Path[T]) KeyIndex(param float64) int {
	lo, hi := 0, len(c.keys)-1
	idx := -1
	for lo <= hi {
		mid := (lo + hi) / 2
		if c.keys[mid].Param <= param {
			idx = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return idx
}

func (c *Path[T]) curveStart() float64 {
	return c.keys[0].Param
}

func (c *Path[T]) curveEnd() float64 {
	return c.keys[len(c.keys)-1].Param
}

// LoopParameter maps a raw query parameter into the key range
// according to the loop policies. Parameters inside the range, and any
// parameter under a Linear policy, are returned unchanged; Linear
// extrapolation itself is the evaluator's business.
func (c *Path[T]) LoopParameter(param float64) float64 {
	if len(c.keys) <= 1 {
		return param
	}
	start, end := c.curveStart(), c.curveEnd()
	length := end - start
	if param < start {
		switch c.PreLoop {
		case LoopConstant:
			return start
		case LoopCycle, LoopCycleOffset:
			if curves.Is0(length) {
				return start
			}
			n := math.Floor((param - start) / length)
			return param - n*length
		case LoopOscillate:
			if curves.Is0(length) {
				return start
			}
			d := start - param
			k := math.Floor(d / length)
			r := d - k*length
			if isEven(k) {
				return start + r
			}
			return end - r
		}
	} else if param > end {
		switch c.PostLoop {
		case LoopConstant:
			return end
		case LoopCycle, LoopCycleOffset:
			if curves.Is0(length) {
				return end
			}
			n := math.Floor((param - start) / length)
			return param - n*length
		case LoopOscillate:
			if curves.Is0(length) {
				return end
			}
			d := param - end
			k := math.Floor(d / length)
			r := d - k*length
			if isEven(k) {
				return end - r
			}
			return start + r
		}
	}
	return param
}

func isEven(k float64) bool {
	return math.Mod(k, 2) == 0
}

// IsInMirroredOscillation is a predicate: does param fall into a
// reversed pass of an oscillating loop? Derivatives flip their sign
// there.
func (c *Path[T]) IsInMirroredOscillation(param float64) bool {
	if len(c.keys) <= 1 {
		return false
	}
	start, end := c.curveStart(), c.curveEnd()
	length := end - start
	if curves.Is0(length) {
		return false
	}
	if param < start && c.PreLoop == LoopOscillate {
		return isEven(math.Floor((start - param) / length))
	}
	if param > end && c.PostLoop == LoopOscillate {
		return isEven(math.Floor((param - end) / length))
	}
	return false
}

// cycleOffset returns the accumulated point offset for CycleOffset
// looping: the number of whole periods times the difference between
// last and first key point. Zero unless the matching policy is
// CycleOffset and param lies outside the key range.
func (c *Path[T]) cycleOffset(param float64) T {
	var zero T
	n := len(c.keys)
	if n < 2 {
		return zero
	}
	start, end := c.curveStart(), c.curveEnd()
	length := end - start
	if curves.Is0(length) {
		return zero
	}
	if (param < start && c.PreLoop == LoopCycleOffset) || (param > end && c.PostLoop == LoopCycleOffset) {
		periods := math.Floor((param - start) / length)
		return c.keys[n-1].Point.Minus(c.keys[0].Point).Scaled(periods)
	}
	return zero
}

// neighborBefore synthesizes the point preceding the first key, for
// segment types that need a neighbor on each side. The default mirrors
// the second key through the first; with SmoothEnds set, the pre-loop
// policy picks a variant that keeps the boundary smooth.
func (c *Path[T]) neighborBefore(ip Interpolation) T {
	n := len(c.keys)
	p0 := c.keys[0].Point
	p1 := c.keys[1].Point
	if c.SmoothEnds {
		switch c.PreLoop {
		case LoopConstant:
			if ip == CatmullRom {
				return p0
			}
		case LoopCycle, LoopCycleOffset:
			return c.keys[n-2].Point.Shifted(p0.Minus(c.keys[n-1].Point))
		case LoopOscillate:
			return p1
		}
	}
	return p0.Scaled(2).Minus(p1)
}

// neighborAfter synthesizes the point following the last key. The
// counterpart of neighborBefore.
func (c *Path[T]) neighborAfter(ip Interpolation) T {
	n := len(c.keys)
	pl := c.keys[n-1].Point
	pk := c.keys[n-2].Point
	if c.SmoothEnds {
		switch c.PostLoop {
		case LoopConstant:
			if ip == CatmullRom {
				return pl
			}
		case LoopCycle, LoopCycleOffset:
			return c.keys[1].Point.Shifted(pl.Minus(c.keys[0].Point))
		case LoopOscillate:
			return pk
		}
	}
	return pl.Scaled(2).Minus(pk)
}

// pointBefore is the key point at idx-1, real or synthesized.
func (c *Path[T]) pointBefore(idx int, ip Interpolation) T {
	if idx > 0 {
		return c.keys[idx-1].Point
	}
	return c.neighborBefore(ip)
}

// pointAfter is the key point at idx+2, real or synthesized.
func (c *Path[T]) pointAfter(idx int, ip Interpolation) T {
	if idx+2 < len(c.keys) {
		return c.keys[idx+2].Point
	}
	return c.neighborAfter(ip)
}

// segmentFor builds the segment spanning keys idx and idx+1. The
// interpolation tag of the first key selects the segment type.
func (c *Path[T]) segmentFor(idx int) segment.Curve[T] {
	k0 := c.keys[idx]
	k1 := c.keys[idx+1]
	switch k0.Interpolation {
	case Linear:
		return segment.Line[T]{P1: k0.Point, P2: k1.Point}
	case StepLeft:
		return segment.Step[T]{P1: k0.Point, P2: k1.Point, Align: segment.StepLeft}
	case StepCentered:
		return segment.Step[T]{P1: k0.Point, P2: k1.Point, Align: segment.StepCentered}
	case StepRight:
		return segment.Step[T]{P1: k0.Point, P2: k1.Point, Align: segment.StepRight}
	case Bezier:
		return segment.Bezier[T]{P1: k0.Point, C1: k0.TangentOut, C2: k1.TangentIn, P2: k1.Point}
	case Hermite:
		return segment.Hermite[T]{P1: k0.Point, T1: k0.TangentOut, T2: k1.TangentIn, P2: k1.Point}
	case BSpline:
		return segment.BSpline[T]{
			P0: c.pointBefore(idx, BSpline), P1: k0.Point,
			P2: k1.Point, P3: c.pointAfter(idx, BSpline),
		}
	case CatmullRom:
		return segment.CatmullRom[T]{
			P0: c.pointBefore(idx, CatmullRom), P1: k0.Point,
			P2: k1.Point, P3: c.pointAfter(idx, CatmullRom),
		}
	}
	tracer().Errorf("unknown interpolation tag %d, falling back to linear", k0.Interpolation)
	return segment.Line[T]{P1: k0.Point, P2: k1.Point}
}

// nanPoint is the sentinel for queries with no defined result.
func nanPoint[T curves.Vec[T]]() T {
	var zero T
	return zero.Scaled(math.NaN())
}

// Point evaluates the path at the given parameter. A path without keys
// yields the NaN sentinel point.
func (c *Path[T]) Point(param float64) T {
	n := len(c.keys)
	if n == 0 {
		return nanPoint[T]()
	}
	if n == 1 {
		return c.singleKeyPoint(param)
	}
	start, end := c.curveStart(), c.curveEnd()
	looped := c.LoopParameter(param)
	if looped < start && c.PreLoop == LoopLinear {
		return c.keys[0].Point.Shifted(c.Tangent(start).Scaled(looped - start))
	}
	if looped > end && c.PostLoop == LoopLinear {
		return c.keys[n-1].Point.Shifted(c.Tangent(end).Scaled(looped - end))
	}
	offset := c.cycleOffset(param)
	if looped == end {
		// at the exact end the final span is degenerate, except for
		// B-splines, which do not reach their nominal endpoint
		if c.keys[n-2].Interpolation != BSpline {
			return c.keys[n-1].Point.Shifted(offset)
		}
		return c.segmentFor(n - 2).Point(1).Shifted(offset)
	}
	idx := c.KeyIndex(looped)
	if idx < 0 {
		idx = 0
	} else if idx >= n-1 {
		idx = n - 2
	}
	k0, k1 := c.keys[idx], c.keys[idx+1]
	span := k1.Param - k0.Param
	u := 0.0
	if !curves.Is0(span) {
		u = (looped - k0.Param) / span
	}
	return c.segmentFor(idx).Point(u).Shifted(offset)
}

func (c *Path[T]) singleKeyPoint(param float64) T {
	k := c.keys[0]
	if param > k.Param && c.PostLoop == LoopLinear {
		return k.Point.Shifted(k.TangentOut.Scaled(param - k.Param))
	}
	if param < k.Param && c.PreLoop == LoopLinear {
		return k.Point.Shifted(k.TangentIn.Scaled(param - k.Param))
	}
	return k.Point
}

// Tangent evaluates the first derivative with respect to the path
// parameter. Outside the key range the derivative follows the loop
// policy: zero under Constant, the boundary derivative under Linear,
// and the looped-back derivative otherwise, sign-flipped on mirrored
// oscillation passes.
func (c *Path[T]) Tangent(param float64) T {
	n := len(c.keys)
	if n == 0 {
		return nanPoint[T]()
	}
	if n == 1 {
		return c.singleKeyTangent(param)
	}
	var zero T
	start, end := c.curveStart(), c.curveEnd()
	if (param < start && c.PreLoop == LoopConstant) || (param > end && c.PostLoop == LoopConstant) {
		return zero
	}
	looped := c.LoopParameter(param)
	mirrored := c.IsInMirroredOscillation(param)
	if looped < start {
		looped = start
	} else if looped > end {
		looped = end
	}
	idx := c.KeyIndex(looped)
	if idx < 0 {
		idx = 0
	} else if idx >= n-1 {
		idx = n - 2
	}
	k0, k1 := c.keys[idx], c.keys[idx+1]
	span := k1.Param - k0.Param
	if curves.Is0(span) {
		return zero
	}
	u := (looped - k0.Param) / span
	tan := c.segmentFor(idx).Tangent(u).Scaled(1 / span)
	if mirrored {
		tan = tan.Scaled(-1)
	}
	return tan
}

func (c *Path[T]) singleKeyTangent(param float64) T {
	k := c.keys[0]
	if param > k.Param && c.PostLoop == LoopLinear {
		return k.TangentOut
	}
	if param < k.Param && c.PreLoop == LoopLinear {
		return k.TangentIn
	}
	var zero T
	return zero
}

// Length approximates the arc length of the path between two
// parameters of the key range.
func (c *Path[T]) Length(start, end float64, maxIterations int, tolerance float64) (float64, error) {
	return segment.Length[T](c, start, end, maxIterations, tolerance)
}

// Flatten appends a tolerance-bounded polyline for every span of the
// path to dst. The output comes as point pairs, with adjoining spans
// repeating their shared point; step spans contribute nothing.
func (c *Path[T]) Flatten(dst []T, maxIterations int, tolerance float64) ([]T, error) {
	if tolerance <= 0 {
		return dst, fmt.Errorf("%w: %g", segment.ErrInvalidTolerance, tolerance)
	}
	var err error
	for i := 0; i+1 < len(c.keys); i++ {
		dst, err = c.segmentFor(i).Flatten(dst, maxIterations, tolerance)
		if err != nil {
			return dst, err
		}
	}
	return dst, nil
}
