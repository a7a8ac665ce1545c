package splines

import (
	"errors"
	"math"
	"testing"
)

func TestBezierCurve(t *testing.T) {
	pts := []Vector3{V3(0, 0, 0), V3(1, 2, 0), V3(3, 2, 0), V3(4, 0, 0)}
	bez, err := NewBezierCurve(pts)
	if err != nil {
		t.Fatal(err)
	}

	if got := bez.Degree(); got != 3 {
		t.Errorf("Degree() = %d, want 3", got)
	}

	diff(t, pts[0], bez.Point(0))
	diff(t, pts[3], bez.Point(1))
	diff(t, V3(2, 1.5, 0), bez.Point(0.5), approx(1e-12))

	samples := bez.Sample(0.25)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(samples) != len(want) {
		t.Fatalf("got %d samples, want %d", len(samples), len(want))
	}
	for i, s := range samples {
		diff(t, want[i], s.U)
		diff(t, bez.Point(want[i]), s.Pt)
	}

	diff(t, samples, bez.Sample(0.25, WithParallel(3)))
}

func TestBezierCurveBasis(t *testing.T) {
	bez, _ := NewBezierCurve([]Vector3{V3(0, 0, 0), V3(1, 0, 0), V3(2, 0, 0)})

	diff(t, 0.25, bez.Basis(0, 0.5))
	diff(t, 0.5, bez.Basis(1, 0.5))
	diff(t, 0.25, bez.Basis(2, 0.5))

	expectPanic(t, "Basis(3)", func() { bez.Basis(3, 0.5) })
}

func TestBezierCurveErrors(t *testing.T) {
	if _, err := NewBezierCurve(nil); !errors.Is(err, ErrNoControlPoints) {
		t.Errorf("got %v, want ErrNoControlPoints", err)
	}

	bez, _ := NewBezierCurve([]Vector3{V3(0, 0, 0), V3(1, 1, 1)})
	if err := bez.SetControlPoints([]Vector3{V3(0, 0, 0)}); !errors.Is(err, ErrControlPointCount) {
		t.Errorf("got %v, want ErrControlPointCount", err)
	}
	if err := bez.SetControlPoints([]Vector3{V3(0, 0, 0), V3(math.NaN(), 2, 2)}); !errors.Is(err, ErrNonFinite) {
		t.Errorf("got %v, want ErrNonFinite", err)
	}
	if _, err := NewBezierCurve([]Vector3{V3(math.Inf(1), 0, 0)}); !errors.Is(err, ErrNonFinite) {
		t.Errorf("got %v, want ErrNonFinite", err)
	}
	if err := bez.SetControlPoints([]Vector3{V3(0, 0, 0), V3(2, 2, 2)}); err != nil {
		t.Fatal(err)
	}
	diff(t, V3(1, 1, 1), bez.Point(0.5))
}

func TestBezierCurveSampleClosedEnd(t *testing.T) {
	pts := []Vector3{V3(0, 0, 0), V3(1, 2, 0), V3(3, 2, 0), V3(4, 0, 0)}
	bez, _ := NewBezierCurve(pts)

	open := bez.Sample(0.3)
	if len(open) != 4 {
		t.Fatalf("got %d samples, want 4", len(open))
	}
	diff(t, 0.9, open[3].U, approx(1e-12))

	closed := bez.Sample(0.3, WithClosedEnd())
	if len(closed) != 5 {
		t.Fatalf("got %d samples, want 5", len(closed))
	}
	diff(t, CurvePoint{1, pts[3]}, closed[4], approx(1e-12))
	diff(t, open, closed[:4])

	// a step landing on 1 is not doubled
	diff(t, bez.Sample(0.25), bez.Sample(0.25, WithClosedEnd()))
}

func TestBezierCurveDegreeZero(t *testing.T) {
	bez, _ := NewBezierCurve([]Vector3{V3(3, 4, 5)})
	for _, s := range bez.Sample(0.5) {
		diff(t, V3(3, 4, 5), s.Pt)
	}
}
