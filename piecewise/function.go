package piecewise

import (
	"math"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/segment"
)

// maxInversionIterations bounds the Newton iteration inverting a
// span's x-spline per query.
const maxInversionIterations = 20

// Function is a piecewise function curve y = f(x): a 2D curve whose
// keys use their x-coordinate as the curve parameter. Evaluation
// splits each span into independent 1D splines for x and y, solves the
// x-spline for the u reproducing the queried x, and feeds that u to
// the y-spline. Point and Tangent are total functions of x; Length and
// Flatten carry no meaning for a function graph and are rejected with
// ErrNotSupported.
//
// Keys whose x-spline is not monotonic make f ill-defined; a query
// that cannot be inverted yields a NaN y as sentinel.
type Function struct {
	Path[curves.Pair]
}

// BUG(norbert@pillmayer.com): Inversion close to B-spline span boundaries relies on
// retrying the neighbor spans; for extreme key spacing the retry can still
// miss and report NaN. The initial guess should be tightened before the
// retry window is widened.

// Add appends keys, locking each key's parameter to its point's
// x-coordinate.
func (f *Function) Add(keys ...*Key[curves.Pair]) error {
	for _, k := range keys {
		if k == nil {
			return ErrNilKey
		}
		k.Param = k.Point.X()
	}
	return f.Path.Add(keys...)
}

// Insert inserts a key at position i, locking its parameter to the
// point's x-coordinate.
func (f *Function) Insert(i int, k *Key[curves.Pair]) error {
	if k == nil {
		return ErrNilKey
	}
	k.Param = k.Point.X()
	return f.Path.Insert(i, k)
}

// Point returns (x, f(x)). The x-component always echoes the query;
// only the y-component is subject to looping and offsets.
func (f *Function) Point(x float64) curves.Pair {
	n := f.Len()
	if n == 0 {
		return curves.P(x, math.NaN())
	}
	if n == 1 {
		return f.singleKeyValue(x)
	}
	start, end := f.curveStart(), f.curveEnd()
	looped := f.LoopParameter(x)
	if looped < start && f.PreLoop == LoopLinear {
		return curves.P(x, f.keys[0].Point.Y()+f.boundarySlope(true)*(looped-start))
	}
	if looped > end && f.PostLoop == LoopLinear {
		return curves.P(x, f.keys[n-1].Point.Y()+f.boundarySlope(false)*(looped-end))
	}
	offset := f.verticalOffset(x)
	if looped == end && f.keys[n-2].Interpolation != BSpline {
		return curves.P(x, f.keys[n-1].Point.Y()+offset)
	}
	idx := f.KeyIndex(looped)
	if idx < 0 {
		idx = 0
	} else if idx >= n-1 {
		idx = n - 2
	}
	y := f.spanValueAt(idx, looped)
	if math.IsNaN(y) && f.keys[idx].Interpolation == BSpline {
		y = f.retryNeighborSpans(idx, looped, f.spanValueAt)
	}
	return curves.P(x, y+offset)
}

// Tangent returns the derivative of f at x as a 2D vector in the
// curve's parameter domain. On mirrored oscillation passes the
// y-component flips its sign.
func (f *Function) Tangent(x float64) curves.Pair {
	n := f.Len()
	if n == 0 {
		return curves.P(math.NaN(), math.NaN())
	}
	if n == 1 {
		return f.singleKeyDerivative(x)
	}
	start, end := f.curveStart(), f.curveEnd()
	if (x < start && f.PreLoop == LoopConstant) || (x > end && f.PostLoop == LoopConstant) {
		return curves.P(1, 0)
	}
	if x < start && f.PreLoop == LoopLinear {
		return curves.P(1, f.boundarySlope(true))
	}
	if x > end && f.PostLoop == LoopLinear {
		return curves.P(1, f.boundarySlope(false))
	}
	looped := f.LoopParameter(x)
	idx := f.KeyIndex(looped)
	if idx < 0 {
		idx = 0
	} else if idx >= n-1 {
		idx = n - 2
	}
	xt, yt := f.spanTangentAt(idx, looped)
	if math.IsNaN(yt) && f.keys[idx].Interpolation == BSpline {
		yt = f.retryNeighborSpans(idx, looped, func(i int, x float64) float64 {
			var yr float64
			xt, yr = f.spanTangentAt(i, x)
			return yr
		})
	}
	if f.IsInMirroredOscillation(x) {
		yt = -yt
	}
	return curves.P(xt, yt)
}

// retryNeighborSpans re-solves x against the left, then the right
// neighbor span. B-spline spans do not reach their nominal endpoints,
// so an x near a span boundary may belong to a neighbor.
func (f *Function) retryNeighborSpans(idx int, x float64, solve func(int, float64) float64) float64 {
	y := math.NaN()
	if idx > 0 {
		tracer().Debugf("inversion failed for span %d, retrying left neighbor", idx)
		y = solve(idx-1, x)
	}
	if math.IsNaN(y) && idx+2 < f.Len() {
		tracer().Debugf("inversion failed for span %d, retrying right neighbor", idx)
		y = solve(idx+1, x)
	}
	return y
}

// spanValueAt solves span idx for the u reproducing x and evaluates
// the span's y-spline there. NaN when the inversion fails.
func (f *Function) spanValueAt(idx int, x float64) float64 {
	xs, ys := f.splinePair(idx)
	u := f.solveU(xs, idx, x)
	if math.IsNaN(u) {
		return math.NaN()
	}
	return float64(ys.Point(u))
}

// spanTangentAt solves span idx for u at x and returns the per-axis
// derivatives, rescaled from span-local u to the curve parameter.
// Step spans are flat almost everywhere, so they report a unit x-speed
// with zero slope.
func (f *Function) spanTangentAt(idx int, x float64) (float64, float64) {
	if f.keys[idx].Interpolation.IsStep() {
		return 1, 0
	}
	xs, ys := f.splinePair(idx)
	u := f.solveU(xs, idx, x)
	if math.IsNaN(u) {
		return math.NaN(), math.NaN()
	}
	span := f.keys[idx+1].Param - f.keys[idx].Param
	if curves.Is0(span) {
		return 0, 0
	}
	return float64(xs.Tangent(u)) / span, float64(ys.Tangent(u)) / span
}

// solveU finds the u with xs(u) = x. Linear and step spans have a
// closed form; everything else runs a bounded Newton iteration seeded
// with the chord ratio. NaN signals non-convergence.
func (f *Function) solveU(xs segment.Curve[curves.Scalar], idx int, x float64) float64 {
	k0, k1 := f.keys[idx], f.keys[idx+1]
	span := k1.Param - k0.Param
	if k0.Interpolation == Linear || k0.Interpolation.IsStep() {
		if curves.Is0(span) {
			return 0
		}
		return (x - k0.Param) / span
	}
	u := 0.5
	if !curves.Is0(span) {
		u = math.Min(math.Max((x-k0.Param)/span, 0), 1)
	}
	for i := 0; i < maxInversionIterations; i++ {
		fx := float64(xs.Point(u)) - x
		if math.Abs(fx) < curves.Epsilon {
			return u
		}
		dx := float64(xs.Tangent(u))
		if curves.Is0(dx) {
			break
		}
		u -= fx / dx
	}
	tracer().Debugf("inversion of span %d gave up near x = %g", idx, x)
	return math.NaN()
}

// splinePair decomposes span idx into independent 1D splines for the x
// and y axes, sharing the same u.
func (f *Function) splinePair(idx int) (segment.Curve[curves.Scalar], segment.Curve[curves.Scalar]) {
	k0, k1 := f.keys[idx], f.keys[idx+1]
	x0, y0 := k0.Point.F()
	x1, y1 := k1.Point.F()
	switch k0.Interpolation {
	case StepLeft:
		return segment.Step[curves.Scalar]{P1: curves.S(x0), P2: curves.S(x1), Align: segment.StepLeft},
			segment.Step[curves.Scalar]{P1: curves.S(y0), P2: curves.S(y1), Align: segment.StepLeft}
	case StepCentered:
		return segment.Step[curves.Scalar]{P1: curves.S(x0), P2: curves.S(x1), Align: segment.StepCentered},
			segment.Step[curves.Scalar]{P1: curves.S(y0), P2: curves.S(y1), Align: segment.StepCentered}
	case StepRight:
		return segment.Step[curves.Scalar]{P1: curves.S(x0), P2: curves.S(x1), Align: segment.StepRight},
			segment.Step[curves.Scalar]{P1: curves.S(y0), P2: curves.S(y1), Align: segment.StepRight}
	case Bezier:
		return segment.Bezier[curves.Scalar]{
				P1: curves.S(x0), C1: curves.S(k0.TangentOut.X()),
				C2: curves.S(k1.TangentIn.X()), P2: curves.S(x1),
			}, segment.Bezier[curves.Scalar]{
				P1: curves.S(y0), C1: curves.S(k0.TangentOut.Y()),
				C2: curves.S(k1.TangentIn.Y()), P2: curves.S(y1),
			}
	case Hermite:
		return segment.Hermite[curves.Scalar]{
				P1: curves.S(x0), T1: curves.S(k0.TangentOut.X()),
				T2: curves.S(k1.TangentIn.X()), P2: curves.S(x1),
			}, segment.Hermite[curves.Scalar]{
				P1: curves.S(y0), T1: curves.S(k0.TangentOut.Y()),
				T2: curves.S(k1.TangentIn.Y()), P2: curves.S(y1),
			}
	case BSpline:
		b := f.fnPointBefore(idx, BSpline)
		a := f.fnPointAfter(idx, BSpline)
		return segment.BSpline[curves.Scalar]{
				P0: curves.S(b.X()), P1: curves.S(x0),
				P2: curves.S(x1), P3: curves.S(a.X()),
			}, segment.BSpline[curves.Scalar]{
				P0: curves.S(b.Y()), P1: curves.S(y0),
				P2: curves.S(y1), P3: curves.S(a.Y()),
			}
	case CatmullRom:
		b := f.fnPointBefore(idx, CatmullRom)
		a := f.fnPointAfter(idx, CatmullRom)
		return segment.CatmullRom[curves.Scalar]{
				P0: curves.S(b.X()), P1: curves.S(x0),
				P2: curves.S(x1), P3: curves.S(a.X()),
			}, segment.CatmullRom[curves.Scalar]{
				P0: curves.S(b.Y()), P1: curves.S(y0),
				P2: curves.S(y1), P3: curves.S(a.Y()),
			}
	}
	return segment.Line[curves.Scalar]{P1: curves.S(x0), P2: curves.S(x1)},
		segment.Line[curves.Scalar]{P1: curves.S(y0), P2: curves.S(y1)}
}

// fnPointBefore returns the key point at idx-1, or a synthesized
// neighbor before the first key. Synthesized neighbors always mirror
// the x-spacing so that x keeps ascending; the y-component follows the
// smooth-ends policy variants.
func (f *Function) fnPointBefore(idx int, ip Interpolation) curves.Pair {
	if idx > 0 {
		return f.keys[idx-1].Point
	}
	n := f.Len()
	p0 := f.keys[0].Point
	p1 := f.keys[1].Point
	if f.SmoothEnds {
		switch f.PreLoop {
		case LoopConstant:
			if ip == CatmullRom {
				return curves.P(2*p0.X()-p1.X(), p0.Y())
			}
		case LoopCycle, LoopCycleOffset:
			pk := f.keys[n-2].Point
			pl := f.keys[n-1].Point
			return curves.P(p0.X()-(pl.X()-pk.X()), pk.Y()+p0.Y()-pl.Y())
		case LoopOscillate:
			return curves.P(2*p0.X()-p1.X(), p1.Y())
		}
	}
	return curves.P(2*p0.X()-p1.X(), 2*p0.Y()-p1.Y())
}

// fnPointAfter returns the key point at idx+2, or a synthesized
// neighbor after the last key. The counterpart of fnPointBefore.
func (f *Function) fnPointAfter(idx int, ip Interpolation) curves.Pair {
	n := f.Len()
	if idx+2 < n {
		return f.keys[idx+2].Point
	}
	pl := f.keys[n-1].Point
	pk := f.keys[n-2].Point
	if f.SmoothEnds {
		switch f.PostLoop {
		case LoopConstant:
			if ip == CatmullRom {
				return curves.P(2*pl.X()-pk.X(), pl.Y())
			}
		case LoopCycle, LoopCycleOffset:
			p0 := f.keys[0].Point
			p1 := f.keys[1].Point
			return curves.P(pl.X()+(p1.X()-p0.X()), p1.Y()+pl.Y()-p0.Y())
		case LoopOscillate:
			return curves.P(2*pl.X()-pk.X(), pk.Y())
		}
	}
	return curves.P(2*pl.X()-pk.X(), 2*pl.Y()-pk.Y())
}

// verticalOffset is the CycleOffset contribution to y: whole periods
// times the y-difference between last and first key. Zero unless the
// query x lies outside the range under a CycleOffset policy.
func (f *Function) verticalOffset(x float64) float64 {
	n := f.Len()
	if n < 2 {
		return 0
	}
	start, end := f.curveStart(), f.curveEnd()
	length := end - start
	if curves.Is0(length) {
		return 0
	}
	if (x < start && f.PreLoop == LoopCycleOffset) || (x > end && f.PostLoop == LoopCycleOffset) {
		periods := math.Floor((x - start) / length)
		return periods * (f.keys[n-1].Point.Y() - f.keys[0].Point.Y())
	}
	return 0
}

// boundarySlope derives dy/dx at the first or last key, for Linear
// extrapolation. Bezier and Hermite boundary spans have a closed form;
// other span types evaluate their splines at the terminal u. A
// near-vertical tangent degrades to slope 0.
func (f *Function) boundarySlope(pre bool) float64 {
	n := f.Len()
	var xt, yt float64
	if pre {
		k := f.keys[0]
		switch k.Interpolation {
		case Bezier:
			xt, yt = k.TangentOut.Minus(k.Point).F()
		case Hermite:
			xt, yt = k.TangentOut.F()
		default:
			xs, ys := f.splinePair(0)
			xt, yt = float64(xs.Tangent(0)), float64(ys.Tangent(0))
		}
	} else {
		k := f.keys[n-1]
		switch f.keys[n-2].Interpolation {
		case Bezier:
			xt, yt = k.Point.Minus(k.TangentIn).F()
		case Hermite:
			xt, yt = k.TangentIn.F()
		default:
			xs, ys := f.splinePair(n - 2)
			xt, yt = float64(xs.Tangent(1)), float64(ys.Tangent(1))
		}
	}
	return slopeOf(curves.P(xt, yt))
}

// slopeOf converts a tangent vector to dy/dx, guarding near-vertical
// tangents.
func slopeOf(tangent curves.Pair) float64 {
	if math.Abs(tangent.X()) < curves.Epsilon {
		return 0
	}
	return tangent.Y() / tangent.X()
}

func (f *Function) singleKeyValue(x float64) curves.Pair {
	k := f.keys[0]
	if x > k.Param && f.PostLoop == LoopLinear {
		return curves.P(x, k.Point.Y()+slopeOf(k.TangentOut)*(x-k.Param))
	}
	if x < k.Param && f.PreLoop == LoopLinear {
		return curves.P(x, k.Point.Y()+slopeOf(k.TangentIn)*(x-k.Param))
	}
	return curves.P(x, k.Point.Y())
}

func (f *Function) singleKeyDerivative(x float64) curves.Pair {
	k := f.keys[0]
	if x > k.Param && f.PostLoop == LoopLinear {
		return curves.P(1, slopeOf(k.TangentOut))
	}
	if x < k.Param && f.PreLoop == LoopLinear {
		return curves.P(1, slopeOf(k.TangentIn))
	}
	return curves.P(1, 0)
}

// Length is not supported: a function graph is not a geometric curve
// to measure.
func (f *Function) Length(start, end float64, maxIterations int, tolerance float64) (float64, error) {
	return 0, ErrNotSupported
}

// Flatten is not supported for function curves.
func (f *Function) Flatten(dst []curves.Pair, maxIterations int, tolerance float64) ([]curves.Pair, error) {
	return dst, ErrNotSupported
}
