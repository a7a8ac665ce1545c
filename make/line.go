package make

import (
	splines "github.com/schardong/Splines"
	"github.com/ungerik/go3d/float64/vec3"
)

func Line(first, last *vec3.T) (*splines.Curve, error) {
	return Polyline([]vec3.T{*first, *last})
}

// Generate the control points, weights, and knots of a polyline curve
//
// **params**
// + array of points in curve
//
// **returns**
// + a degree 1 curve parameterized by chord length on [0, 1]
//
// Points that all coincide fall back to a uniform parameterization.
func Polyline(pts []vec3.T) (*splines.Curve, error) {
	if len(pts) < 2 {
		return splines.NewCurve(1, pts, nil, nil)
	}

	knots := make([]float64, len(pts)+1)

	var lsum float64
	for i := 0; i < len(pts)-1; i++ {
		lsum += vec3.Distance(&pts[i], &pts[i+1])
		knots[i+2] = lsum
	}

	if lsum == 0 {
		for i := 2; i < len(knots); i++ {
			knots[i] = float64(i - 1)
		}
		lsum = float64(len(pts) - 1)
	}

	// normalize the knot array
	for i := range knots {
		knots[i] /= lsum
	}

	return splines.NewCurve(1, pts, nil, knots)
}
