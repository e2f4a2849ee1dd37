package segment

import (
	"math"
	"testing"

	"github.com/npillmayer/curves"
)

// every segment flavor has to satisfy the Curve contract
var (
	_ Curve[curves.Pair]   = Line[curves.Pair]{}
	_ Curve[curves.Pair]   = Step[curves.Pair]{}
	_ Curve[curves.Pair]   = Bezier[curves.Pair]{}
	_ Curve[curves.Pair]   = Hermite[curves.Pair]{}
	_ Curve[curves.Pair]   = CatmullRom[curves.Pair]{}
	_ Curve[curves.Pair]   = Cardinal[curves.Pair]{}
	_ Curve[curves.Pair]   = BSpline[curves.Pair]{}
	_ Curve[curves.Pair]   = ArcGeometry{}
	_ Curve[curves.Scalar] = Line[curves.Scalar]{}
	_ Curve[curves.Triple] = CatmullRom[curves.Triple]{}
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func approxPair(t *testing.T, got, want curves.Pair, eps float64) {
	t.Helper()
	if math.Abs(got.X()-want.X()) > eps || math.Abs(got.Y()-want.Y()) > eps {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// derivApprox estimates c'(u) by central differences.
func derivApprox(c Curve[curves.Pair], u, h float64) curves.Pair {
	a, b := c.Point(u-h), c.Point(u+h)
	return curves.P((b.X()-a.X())/(2*h), (b.Y()-a.Y())/(2*h))
}
