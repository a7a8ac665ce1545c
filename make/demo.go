package make

import (
	splines "github.com/schardong/Splines"
	"github.com/ungerik/go3d/float64/vec3"
)

// DemoDegree is the degree of every demo curve.
const DemoDegree = 3

// DemoControlPoints are the six points shared by the demo curves, in pixel
// coordinates with the origin at the bottom left.
func DemoControlPoints() []vec3.T {
	return []vec3.T{
		{100, 300, 0},
		{200, 200, 0},
		{400, 200, 0},
		{500, 400, 0},
		{700, 300, 0},
		{500, 100, 0},
	}
}

var (
	demoKnots   = []float64{0, 0, 0, 0, 1, 2, 3, 3, 3, 3}
	demoWeights = []float64{1, 1, 5, 1, 6, 1}
)

// Generate the demo scene
//
// **returns**
// + in order: a standard B-spline (red), a non-uniform one with clamped knots
//   (black), a rational one (green), and a NURBS curve with both (blue)
func DemoCurves() ([]*splines.Curve, error) {
	pts := DemoControlPoints()

	variants := []struct {
		knots   []float64
		weights []float64
		color   splines.RGBA
	}{
		{nil, nil, splines.RGBA{R: 1, A: 1}},
		{demoKnots, nil, splines.RGBA{A: 1}},
		{nil, demoWeights, splines.RGBA{G: 0.7, A: 1}},
		{demoKnots, demoWeights, splines.RGBA{B: 0.9, A: 1}},
	}

	curves := make([]*splines.Curve, 0, len(variants))
	for _, v := range variants {
		curve, err := splines.NewCurve(DemoDegree, pts, v.weights, v.knots)
		if err != nil {
			return nil, err
		}

		curve.SetColor(v.color)
		curves = append(curves, curve)
	}

	return curves, nil
}
