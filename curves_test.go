package curves

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
}

func TestScalarBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := S(3).Minus(S(5))
	if s != S(-2) {
		t.Errorf("Expected 3 - 5 to be -2, is %v", s)
	}
	if s.Magnitude() != 2 {
		t.Errorf("Expected |3 - 5| to be 2, is %g", s.Magnitude())
	}
	if S(4).Shifted(S(-4)).Scaled(7) != S(0) {
		t.Errorf("Expected scaled zero to remain zero")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
}

func TestPairVectorArithmetic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := P(4, 6).Minus(P(1, 2))
	if !d.Equal(P(3, 4)) {
		t.Errorf("Expected difference to be (3,4), is %v", d)
	}
	if !Is0(d.Magnitude() - 5) {
		t.Errorf("Expected |(3,4)| to be 5, is %g", d.Magnitude())
	}
}

func TestTripleBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := P3(1, 2, 3).Shifted(P3(1, 1, 1))
	if !v.Equal(P3(2, 3, 4)) {
		t.Errorf("Expected sum to be (2,3,4), is %v", v)
	}
	w := P3(2, 3, 6).Minus(P3(0, 0, 0))
	if !Is0(w.Magnitude() - 7) {
		t.Errorf("Expected |(2,3,6)| to be 7, is %g", w.Magnitude())
	}
	if !P3(1, 2, 3).Scaled(2).Equal(P3(2, 4, 6)) {
		t.Errorf("Expected scaling to double all parts")
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestScaling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := Scaling(2, 3).Transform(P(1, 1))
	if !q.Equal(P(2, 3)) {
		t.Errorf("Expected (1,1) scaled by (2,3) to be (2,3), is %v", q)
	}
}

func TestCombine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	T := Translation(P(1, 0)).Combine(Rotation(90 * Deg2Rad))
	q := T.Transform(P(1, 0)).Zap()
	if !q.Equal(P(0, 2)) {
		t.Errorf("Expected translate-then-rotate to yield (0,2), is %v", q)
	}
}

func TestPairJSON(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b, err := json.Marshal(P(1.5, -2))
	if err != nil {
		t.Fatalf("marshalling pair failed: %v", err)
	}
	if string(b) != "[1.5,-2]" {
		t.Errorf("Expected pair to travel as [1.5,-2], is %s", b)
	}
	var p Pair
	if err := json.Unmarshal(b, &p); err != nil {
		t.Fatalf("unmarshalling pair failed: %v", err)
	}
	if !p.Equal(P(1.5, -2)) {
		t.Errorf("Expected pair to survive a JSON round trip, is %v", p)
	}
}
