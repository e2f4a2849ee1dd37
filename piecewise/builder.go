package piecewise

import "github.com/npillmayer/curves"

// PathBuilder assembles a path with a fluent call chain: add knots,
// shape the joints between them, finish with End.
//
//	p := NullPath[curves.Pair]().
//	    Knot(0, curves.P(0, 0)).Line().
//	    Knot(5, curves.P(5, 3)).Curve().
//	    Knot(10, curves.P(10, 0)).End()
//
// A joint call applies to the span leaving the most recent knot and
// panics when no knot exists yet.
type PathBuilder[T curves.Vec[T]] struct {
	path       *Path[T]
	pendingIn  T
	hasPending bool
}

// NullPath creates an empty path builder, to be extended by subsequent
// builder calls.
func NullPath[T curves.Vec[T]]() *PathBuilder[T] {
	return &PathBuilder[T]{path: &Path[T]{}}
}

// Knot adds a point at a parameter position. Part of builder
// functionality.
func (b *PathBuilder[T]) Knot(param float64, p T) *PathBuilder[T] {
	k := &Key[T]{Param: param, Point: p}
	if b.hasPending {
		k.TangentIn = b.pendingIn
		b.hasPending = false
	}
	b.path.keys = append(b.path.keys, k)
	return b
}

func (b *PathBuilder[T]) joint(ip Interpolation, what string) *Key[T] {
	if b.path.Len() == 0 {
		panic("cannot add " + what + " to empty path")
	}
	k := b.path.keys[b.path.Len()-1]
	k.Interpolation = ip
	return k
}

// Line joins the last knot to the next one with a straight line. Part
// of builder functionality.
func (b *PathBuilder[T]) Line() *PathBuilder[T] {
	b.joint(Linear, "line")
	return b
}

// Step joins the last knot to the next one with a discontinuous jump.
// The align tag must be one of the step variants. Part of builder
// functionality.
func (b *PathBuilder[T]) Step(align Interpolation) *PathBuilder[T] {
	if !align.IsStep() {
		panic("step joint needs a step alignment tag")
	}
	b.joint(align, "step")
	return b
}

// Curve joins the last knot to the next one with a Catmull-Rom span.
// Part of builder functionality.
func (b *PathBuilder[T]) Curve() *PathBuilder[T] {
	b.joint(CatmullRom, "curve")
	return b
}

// BSpline joins the last knot to the next one with an approximating
// B-spline span. Part of builder functionality.
func (b *PathBuilder[T]) BSpline() *PathBuilder[T] {
	b.joint(BSpline, "b-spline")
	return b
}

// Bezier joins the last knot to the next one with a cubic Bézier
// span: c1 extends the last knot, c2 leads into the next one. Part of
// builder functionality.
func (b *PathBuilder[T]) Bezier(c1, c2 T) *PathBuilder[T] {
	b.joint(Bezier, "bezier").TangentOut = c1
	b.pendingIn = c2
	b.hasPending = true
	return b
}

// Hermite joins the last knot to the next one with a Hermite span,
// given the outgoing and the incoming tangent. Part of builder
// functionality.
func (b *PathBuilder[T]) Hermite(t1, t2 T) *PathBuilder[T] {
	b.joint(Hermite, "hermite").TangentOut = t1
	b.pendingIn = t2
	b.hasPending = true
	return b
}

// Looping sets the pre- and post-loop policies.
func (b *PathBuilder[T]) Looping(pre, post Loop) *PathBuilder[T] {
	b.path.PreLoop = pre
	b.path.PostLoop = post
	return b
}

// SmoothEnds lets boundary spans synthesize their missing neighbors
// smoothly, per loop policy.
func (b *PathBuilder[T]) SmoothEnds() *PathBuilder[T] {
	b.path.SmoothEnds = true
	return b
}

// End finishes building and returns the path. Knots entered out of
// parameter order still need an explicit Sort.
func (b *PathBuilder[T]) End() *Path[T] {
	return b.path
}

// FunctionBuilder assembles a function curve y = f(x) with a fluent
// call chain, each knot given by its x and y value.
type FunctionBuilder struct {
	pb *PathBuilder[curves.Pair]
}

// NullFunction creates an empty function-curve builder, to be extended
// by subsequent builder calls.
func NullFunction() *FunctionBuilder {
	return &FunctionBuilder{pb: NullPath[curves.Pair]()}
}

// Knot adds a point (x,y). Part of builder functionality.
func (b *FunctionBuilder) Knot(x, y float64) *FunctionBuilder {
	b.pb.Knot(x, curves.P(x, y))
	return b
}

// Line joins the last knot to the next one with a straight line. Part
// of builder functionality.
func (b *FunctionBuilder) Line() *FunctionBuilder {
	b.pb.Line()
	return b
}

// Step joins the last knot to the next one with a discontinuous jump.
// Part of builder functionality.
func (b *FunctionBuilder) Step(align Interpolation) *FunctionBuilder {
	b.pb.Step(align)
	return b
}

// Curve joins the last knot to the next one with a Catmull-Rom span.
// Part of builder functionality.
func (b *FunctionBuilder) Curve() *FunctionBuilder {
	b.pb.Curve()
	return b
}

// BSpline joins the last knot to the next one with an approximating
// B-spline span. Part of builder functionality.
func (b *FunctionBuilder) BSpline() *FunctionBuilder {
	b.pb.BSpline()
	return b
}

// Bezier joins the last knot to the next one with a cubic Bézier span.
// Part of builder functionality.
func (b *FunctionBuilder) Bezier(c1, c2 curves.Pair) *FunctionBuilder {
	b.pb.Bezier(c1, c2)
	return b
}

// Hermite joins the last knot to the next one with a Hermite span.
// Part of builder functionality.
func (b *FunctionBuilder) Hermite(t1, t2 curves.Pair) *FunctionBuilder {
	b.pb.Hermite(t1, t2)
	return b
}

// Looping sets the pre- and post-loop policies.
func (b *FunctionBuilder) Looping(pre, post Loop) *FunctionBuilder {
	b.pb.Looping(pre, post)
	return b
}

// SmoothEnds lets boundary spans synthesize their missing neighbors
// smoothly, per loop policy.
func (b *FunctionBuilder) SmoothEnds() *FunctionBuilder {
	b.pb.SmoothEnds()
	return b
}

// End finishes building and returns the function curve.
func (b *FunctionBuilder) End() *Function {
	f := &Function{Path: *b.pb.End()}
	for _, k := range f.keys {
		k.Param = k.Point.X()
	}
	return f
}
