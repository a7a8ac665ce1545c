package splines

import (
	"errors"
	"math"
	"testing"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

var (
	demoKnots   = []float64{0, 0, 0, 0, 1, 2, 3, 3, 3, 3}
	demoWeights = []float64{1, 1, 5, 1, 6, 1}
)

func TestNewCurveErrors(t *testing.T) {
	pts := demoPoints()

	tests := []struct {
		name    string
		degree  int
		pts     []Vector3
		weights []float64
		knots   []float64
		want    error
	}{
		{"no points", 3, nil, nil, nil, ErrNoControlPoints},
		{"too few points", 3, pts[:3], nil, nil, ErrTooFewControlPoints},
		{"eight knots", 3, pts, nil, []float64{0, 1, 2, 3, 4, 5, 6, 7}, ErrKnotCount},
		{"eleven knots", 3, pts, nil, make([]float64, 11), ErrKnotCount},
		{"decreasing knots", 3, pts, nil, []float64{0, 1, 2, 3, 5, 4, 6, 7, 8}, ErrKnotOrder},
		{"five weights", 3, pts, []float64{1, 1, 1, 1, 1}, nil, ErrWeightCount},
		{"nan knot", 3, pts, nil, []float64{0, 0, 0, 0, math.NaN(), 2, 3, 3, 3, 3}, ErrNonFinite},
		{"infinite knots", 3, pts, nil, []float64{0, 0, 0, 0, 1, 2, 3, 3, math.Inf(1), math.Inf(1)}, ErrNonFinite},
		{"nan weight", 3, pts, []float64{1, 1, math.NaN(), 1, 1, 1}, nil, ErrNonFinite},
		{"infinite weight", 3, pts, []float64{1, 1, 1, math.Inf(-1), 1, 1}, nil, ErrNonFinite},
		{"infinite point", 3, withPoint(pts, 4, V3(math.Inf(1), 0, 0)), nil, nil, ErrNonFinite},
	}

	for _, tt := range tests {
		crv, err := NewCurve(tt.degree, tt.pts, tt.weights, tt.knots)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got error %v, want %v", tt.name, err, tt.want)
		}
		if crv != nil {
			t.Errorf("%s: got a curve along with the error", tt.name)
		}
	}
}

func TestNewCurveKnotLengths(t *testing.T) {
	pts := demoPoints()

	// both the implied-final-knot layout and the full layout are accepted
	for _, knots := range [][]float64{
		{0, 1, 2, 3, 4, 5, 6, 7, 8},
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		demoKnots,
	} {
		if _, err := NewCurve(3, pts, nil, knots); err != nil {
			t.Errorf("NewCurve with %d knots: %v", len(knots), err)
		}
	}
}

func TestNewCurveNegativeDegree(t *testing.T) {
	expectPanic(t, "NewCurve(-1)", func() {
		NewCurve(-1, demoPoints(), nil, nil)
	})
}

func TestCurveDefaults(t *testing.T) {
	crv := mustCurve(t, 3, demoPoints(), nil, nil)

	diff(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}, crv.Knots())
	diff(t, []float64{1, 1, 1, 1, 1, 1}, crv.Weights())
	diff(t, Black, crv.Color())

	min, max := crv.Domain()
	if min != 3 || max != 6 {
		t.Errorf("Domain() = (%g, %g), want (3, 6)", min, max)
	}
}

func TestCurveCopiesInput(t *testing.T) {
	pts := demoPoints()
	knots := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	crv := mustCurve(t, 3, pts, nil, knots)

	pts[0] = V3(-1, -1, -1)
	knots[0] = -10
	diff(t, demoPoints(), crv.ControlPoints())
	diff(t, 0.0, crv.Knots()[0])

	got := crv.ControlPoints()
	got[1] = V3(0, 0, 0)
	diff(t, demoPoints(), crv.ControlPoints())
}

func TestCurveExplicitDefaultsMatchOmitted(t *testing.T) {
	implicit := mustCurve(t, 3, demoPoints(), nil, nil)
	explicit := mustCurve(t, 3, demoPoints(), []float64{1, 1, 1, 1, 1, 1}, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8})

	diff(t, implicit.Sample(0.1), explicit.Sample(0.1))
}

func TestCurveUnitWeightsMatchNonRational(t *testing.T) {
	for _, knots := range [][]float64{nil, demoKnots} {
		plain := mustCurve(t, 3, demoPoints(), nil, knots)
		weighted := mustCurve(t, 3, demoPoints(), []float64{1, 1, 1, 1, 1, 1}, knots)

		diff(t, plain.Sample(0.05), weighted.Sample(0.05))
	}
}

func TestCurveLinearMidpoint(t *testing.T) {
	p0, p1 := V3(0, 0, 0), V3(2, 4, 0)
	crv := mustCurve(t, 1, []Vector3{p0, p1}, nil, []float64{0, 0, 1, 1})

	if got, ok := crv.Point(0.5); !ok || got != V3(1, 2, 0) {
		t.Errorf("Point(0.5) = %v, %v, want (1, 2, 0), true", got, ok)
	}
	if got, ok := crv.Point(0); !ok || got != p0 {
		t.Errorf("Point(0) = %v, %v, want %v, true", got, ok, p0)
	}

	// the half-open basis vanishes at the end of a clamped domain
	if _, ok := crv.Point(1); ok {
		t.Error("Point(1) should be degenerate without WithClosedEnd")
	}
	if got, ok := crv.Point(1, WithClosedEnd()); !ok || got != p1 {
		t.Errorf("Point(1, WithClosedEnd()) = %v, %v, want %v, true", got, ok, p1)
	}
}

func TestCurveSampleUniformCubic(t *testing.T) {
	pts := demoPoints()
	crv := mustCurve(t, 3, pts, nil, nil)

	samples := crv.Sample(0.1)
	// segments [3,4], [4,5] and [5,6], eleven parameters each
	if len(samples) != 33 {
		t.Fatalf("got %d samples, want 33", len(samples))
	}

	first, last := samples[0], samples[len(samples)-1]
	diff(t, 3.0, first.U)
	diff(t, 6.0, last.U)

	// (P0 + 4 P1 + P2) / 6 and (P3 + 4 P4 + P5) / 6
	diff(t, V3(1300.0/6, 1300.0/6, 0), first.Pt, approx(1e-9))
	diff(t, V3(3800.0/6, 1700.0/6, 0), last.Pt, approx(1e-9))

	if first.Pt[0] < 200 || first.Pt[0] > 400 {
		t.Errorf("curve starts at %v, want x between 200 and 400", first.Pt)
	}

	nearest := 0
	for i := range pts {
		if vec3.Distance(&pts[i], &last.Pt) < vec3.Distance(&pts[nearest], &last.Pt) {
			nearest = i
		}
	}
	if nearest != 4 {
		t.Errorf("curve ends at %v, nearest control point is %v, want %v", last.Pt, pts[nearest], pts[4])
	}

	// the derivative of a uniform cubic is a convex combination of the
	// control polygon edges
	var maxEdge float64
	for i := 1; i < len(pts); i++ {
		maxEdge = math.Max(maxEdge, vec3.Distance(&pts[i-1], &pts[i]))
	}
	if got, bound := samples.MaxStep(), 0.1*maxEdge+1e-9; got > bound {
		t.Errorf("MaxStep() = %g, want at most %g", got, bound)
	}
}

func TestCurveSampleKeepsSeams(t *testing.T) {
	samples := mustCurve(t, 3, demoPoints(), nil, nil).Sample(0.1)

	for _, k := range []int{10, 21} {
		a, b := samples[k], samples[k+1]
		if a.U != b.U {
			t.Errorf("samples %d and %d have parameters %g and %g, want a repeated knot", k, k+1, a.U, b.U)
		}
		diff(t, a.Pt, b.Pt, approx(1e-9))
	}
}

func TestCurveSampleSkipsDegenerate(t *testing.T) {
	pts := []Vector3{V3(1, 1, 0), V3(2, 0, 0), V3(3, 1, 0)}
	crv := mustCurve(t, 1, pts, []float64{1, 0, 0}, nil)

	// only u in [1, 2) of the first segment has a nonzero weight sum, and
	// every such point is P0
	samples := crv.Sample(0.5)
	want := SampledCurve{{1, pts[0]}, {1.5, pts[0]}}
	diff(t, want, samples)

	if got := mustCurve(t, 1, pts, []float64{0, 0, 0}, nil).Sample(0.5); got.Len() != 0 {
		t.Errorf("all-zero weights gave %d samples, want none", got.Len())
	}
}

func TestCurveSampleClosedEnd(t *testing.T) {
	pts := demoPoints()
	crv := mustCurve(t, 3, pts, nil, demoKnots)

	open := crv.Sample(0.1)
	if len(open) != 32 {
		t.Errorf("got %d samples, want 32", len(open))
	}
	if u := open[len(open)-1].U; u >= 3 {
		t.Errorf("last open sample at u=%g, want below the domain end", u)
	}
	diff(t, pts[0], open[0].Pt, approx(1e-9))

	closed := crv.Sample(0.1, WithClosedEnd())
	if len(closed) != 33 {
		t.Fatalf("got %d samples, want 33", len(closed))
	}
	diff(t, CurvePoint{3, pts[5]}, closed[len(closed)-1], approx(1e-9))
	diff(t, open, closed[:len(closed)-1])
}

func TestCurveSampleClosedEndUnevenStep(t *testing.T) {
	pts := demoPoints()
	crv := mustCurve(t, 3, pts, nil, demoKnots)

	// 0.3 does not divide the last span [2, 3]
	open := crv.Sample(0.3)
	if u := open[len(open)-1].U; u >= 3 {
		t.Errorf("last open sample at u=%g, want below the domain end", u)
	}

	closed := crv.Sample(0.3, WithClosedEnd())
	diff(t, CurvePoint{3, pts[5]}, closed[len(closed)-1], approx(1e-9))
	diff(t, 2.9, closed[len(closed)-2].U, approx(1e-9))
}

func TestCurveSampleParallel(t *testing.T) {
	for _, knots := range [][]float64{nil, demoKnots} {
		crv := mustCurve(t, 3, demoPoints(), demoWeights, knots)
		for _, workers := range []int{0, 2, 3, 16} {
			diff(t, crv.Sample(0.01, WithClosedEnd()), crv.Sample(0.01, WithClosedEnd(), WithParallel(workers)))
		}
	}
}

func TestCurveWeightsPullTowardsPoint(t *testing.T) {
	pts := demoPoints()
	plain := mustCurve(t, 3, pts, nil, nil)
	weighted := mustCurve(t, 3, pts, demoWeights, nil)

	a, _ := plain.Point(4)
	b, _ := weighted.Point(4)

	// (P1 + 20 P2 + P3) / 22
	diff(t, V3(8700.0/22, 4600.0/22, 0), b, approx(1e-9))
	if vec3.Distance(&b, &pts[2]) >= vec3.Distance(&a, &pts[2]) {
		t.Errorf("weighted point %v is not closer to %v than %v", b, pts[2], a)
	}
}

func TestCurveSampleBadStep(t *testing.T) {
	crv := mustCurve(t, 3, demoPoints(), nil, nil)
	for _, step := range []float64{0, -0.1, math.NaN()} {
		expectPanic(t, "Sample", func() { crv.Sample(step) })
	}

	// a tiny step would walk 1e20 parameters per span
	expectPanic(t, "Sample(1e-20)", func() { crv.Sample(1e-20) })
}

func TestCurveBasis(t *testing.T) {
	crv := mustCurve(t, 3, demoPoints(), nil, nil)

	diff(t, 1.0/6, crv.Basis(0, 3), approx(1e-9))
	diff(t, 4.0/6, crv.Basis(1, 3), approx(1e-9))
	diff(t, 0.0, crv.Basis(3, 3))

	expectPanic(t, "Basis(6)", func() { crv.Basis(6, 3) })
}

func TestCurveSetters(t *testing.T) {
	crv := mustCurve(t, 3, demoPoints(), nil, nil)

	if err := crv.SetKnots([]float64{0, 1, 2}); !errors.Is(err, ErrKnotCount) {
		t.Errorf("SetKnots: got %v, want ErrKnotCount", err)
	}
	if err := crv.SetKnots([]float64{0, 1, 2, 3, 4, 5, 6, 8, 7}); !errors.Is(err, ErrKnotOrder) {
		t.Errorf("SetKnots: got %v, want ErrKnotOrder", err)
	}
	diff(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}, crv.Knots())

	if err := crv.SetWeights([]float64{1}); !errors.Is(err, ErrWeightCount) {
		t.Errorf("SetWeights: got %v, want ErrWeightCount", err)
	}
	if err := crv.SetControlPoints(demoPoints()[:5]); !errors.Is(err, ErrControlPointCount) {
		t.Errorf("SetControlPoints: got %v, want ErrControlPointCount", err)
	}
	if err := crv.SetControlPoints(withPoint(demoPoints(), 0, V3(0, math.NaN(), 0))); !errors.Is(err, ErrNonFinite) {
		t.Errorf("SetControlPoints: got %v, want ErrNonFinite", err)
	}
	if err := crv.SetKnots([]float64{0, 1, 2, 3, 4, 5, 6, 7, math.Inf(1)}); !errors.Is(err, ErrNonFinite) {
		t.Errorf("SetKnots: got %v, want ErrNonFinite", err)
	}

	if err := crv.SetKnots(demoKnots); err != nil {
		t.Fatal(err)
	}
	if err := crv.SetWeights(demoWeights); err != nil {
		t.Fatal(err)
	}
	diff(t, mustCurve(t, 3, demoPoints(), demoWeights, demoKnots).Sample(0.1), crv.Sample(0.1))

	moved := demoPoints()
	for i := range moved {
		moved[i][2] = 1
	}
	if err := crv.SetControlPoints(moved); err != nil {
		t.Fatal(err)
	}
	for _, s := range crv.Sample(0.1) {
		diff(t, 1.0, s.Pt[2], approx(1e-9))
	}

	blue := RGBA{B: 0.9, A: 1}
	crv.SetColor(blue)
	diff(t, blue, crv.Color())
}

func TestCurveTransform(t *testing.T) {
	crv := mustCurve(t, 3, demoPoints(), demoWeights, demoKnots)
	crv.SetColor(White)

	ident := crv.Transform(&mat4.Ident)
	diff(t, crv.Sample(0.1), ident.Sample(0.1))
	diff(t, White, ident.Color())

	scale := mat4.T{
		{2, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 2, 0},
		{0, 0, 0, 1},
	}
	scaled := crv.Transform(&scale).Sample(0.1)
	orig := crv.Sample(0.1)
	for i := range orig {
		diff(t, orig[i].Pt.Scaled(2), scaled[i].Pt, approx(1e-9))
	}
}

func TestCurveBounds(t *testing.T) {
	crv := mustCurve(t, 3, demoPoints(), nil, nil)
	bb := crv.Bounds()

	diff(t, V3(100, 100, 0), bb.Min)
	diff(t, V3(700, 400, 0), bb.Max)

	samples := crv.Sample(0.05)
	for i := range samples {
		if !bb.Contains(&samples[i].Pt, -1) {
			t.Errorf("sample %v lies outside the control polygon bounds", samples[i])
		}
	}
	if sb := samples.Bounds(); sb.IsEmpty() || !bb.Contains(&sb.Min, 0) || !bb.Contains(&sb.Max, 0) {
		t.Errorf("sample bounds %v not inside %v", sb, bb)
	}
}
