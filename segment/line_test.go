package segment

import (
	"errors"
	"testing"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLineBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ln := Line[curves.Pair]{P1: curves.P(0, 0), P2: curves.P(10, 10)}
	if !ln.Point(0).Equal(curves.P(0, 0)) || !ln.Point(1).Equal(curves.P(10, 10)) {
		t.Errorf("Expected line to interpolate its endpoints, does not")
	}
	if !ln.Point(0.5).Equal(curves.P(5, 5)) {
		t.Errorf("Expected line midpoint to be (5,5), is %v", ln.Point(0.5))
	}
	if !ln.Tangent(0.3).Equal(curves.P(10, 10)) {
		t.Errorf("Expected constant tangent (10,10), is %v", ln.Tangent(0.3))
	}
}

func TestLineLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ln := Line[curves.Pair]{P1: curves.P(0, 0), P2: curves.P(3, 4)}
	l, err := ln.Length(0, 1, 10, 0.001)
	if err != nil {
		t.Fatalf("length of line failed: %v", err)
	}
	if !curves.Is0(l - 5) {
		t.Errorf("Expected length 5, is %g", l)
	}
	half, _ := ln.Length(0.25, 0.75, 10, 0.001)
	if !curves.Is0(half - 2.5) {
		t.Errorf("Expected half-range length 2.5, is %g", half)
	}
}

func TestLineRejectsTolerance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ln := Line[curves.Pair]{P1: curves.P(0, 0), P2: curves.P(1, 1)}
	if _, err := ln.Length(0, 1, 10, 0); !errors.Is(err, ErrInvalidTolerance) {
		t.Errorf("Expected zero tolerance to be rejected, got %v", err)
	}
	if _, err := ln.Flatten(nil, 10, -0.5); !errors.Is(err, ErrInvalidTolerance) {
		t.Errorf("Expected negative tolerance to be rejected, got %v", err)
	}
}

func TestStepAlignments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	left := Step[curves.Scalar]{P1: curves.S(1), P2: curves.S(2), Align: StepLeft}
	if left.Point(0) != curves.S(1) || left.Point(0.0001) != curves.S(2) {
		t.Errorf("Expected left-aligned step to jump right after 0")
	}
	center := Step[curves.Scalar]{P1: curves.S(1), P2: curves.S(2), Align: StepCentered}
	if center.Point(0.49) != curves.S(1) || center.Point(0.5) != curves.S(2) {
		t.Errorf("Expected centered step to jump at 0.5")
	}
	right := Step[curves.Scalar]{P1: curves.S(1), P2: curves.S(2), Align: StepRight}
	if right.Point(0.999) != curves.S(1) || right.Point(1) != curves.S(2) {
		t.Errorf("Expected right-aligned step to jump at 1")
	}
}

func TestStepHasNoExtent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	st := Step[curves.Pair]{P1: curves.P(0, 0), P2: curves.P(4, 4), Align: StepCentered}
	if !st.Tangent(0.5).Equal(curves.Origin) {
		t.Errorf("Expected step tangent to be the zero vector")
	}
	l, err := st.Length(0, 1, 10, 0.001)
	if err != nil || l != 0 {
		t.Errorf("Expected step length 0, is %g (%v)", l, err)
	}
	pts, err := st.Flatten(nil, 10, 0.001)
	if err != nil {
		t.Fatalf("flattening step failed: %v", err)
	}
	if len(pts) != 0 {
		t.Errorf("Expected step to flatten to nothing, got %d points", len(pts))
	}
}
