package splines

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}

func mustCurve(t *testing.T, degree int, pts []Vector3, weights, knots []float64) *Curve {
	t.Helper()
	crv, err := NewCurve(degree, pts, weights, knots)
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	return crv
}

func demoPoints() []Vector3 {
	return []Vector3{
		V3(100, 300, 0),
		V3(200, 200, 0),
		V3(400, 200, 0),
		V3(500, 400, 0),
		V3(700, 300, 0),
		V3(500, 100, 0),
	}
}

// withPoint returns a copy of pts with pts[i] replaced.
func withPoint(pts []Vector3, i int, p Vector3) []Vector3 {
	out := append([]Vector3(nil), pts...)
	out[i] = p
	return out
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
