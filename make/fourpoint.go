package make

import (
	"errors"
	"fmt"

	splines "github.com/schardong/Splines"
	"github.com/ungerik/go3d/float64/vec3"
)

var ErrDegree = errors.New("make: degree must be at least 1")

// Generate a flat patch spanned by 4 points
//
// **params**
// + first point in counter-clockwise form
// + second point in counter-clockwise form
// + third point in counter-clockwise form
// + forth point in counter-clockwise form
// + degree in both directions, at least 1
//
// **returns**
// + the bilinear patch as a clamped surface of the given degree, with u
//   running from the p3-p2 edge to the p4-p1 edge and v from the p3-p4 edge
//   to the p2-p1 edge
func FourPointSurface(p1, p2, p3, p4 *vec3.T, degree int) (*splines.Surface, error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrDegree, degree)
	}

	n := float64(degree)
	pts := make([][]vec3.T, degree+1)
	for i := range pts {
		u := float64(i) / n
		from := vec3.Interpolate(p3, p4, u)
		to := vec3.Interpolate(p2, p1, u)

		pts[i] = make([]vec3.T, degree+1)
		for j := range pts[i] {
			pts[i][j] = vec3.Interpolate(&from, &to, float64(j)/n)
		}
	}

	knots := clampedKnots(degree)
	return splines.NewSurface(degree, degree, pts, nil, knots, knots)
}
