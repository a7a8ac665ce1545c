package make

import (
	splines "github.com/schardong/Splines"
	"github.com/ungerik/go3d/float64/vec3"
)

// Generate an extruded surface
//
// **params**
// + axis of the extrusion
// + length of the extrusion
// + the profile curve
//
// **returns**
// + a surface quadratic in u, from the profile moved by length along the
//   axis (u = 0) back to the profile itself (u = 1), and following the
//   profile in v
func ExtrudedSurface(axis *vec3.T, length float64, profile *splines.Curve) (*splines.Surface, error) {
	section := profile.ControlPoints()
	weights := profile.Weights()

	offsets := []float64{length, length / 2, 0}
	pts := make([][]vec3.T, len(offsets))
	ws := make([][]float64, len(offsets))

	for i, offset := range offsets {
		shift := axis.Scaled(offset)

		pts[i] = make([]vec3.T, len(section))
		for j := range section {
			pts[i][j] = vec3.Add(&section[j], &shift)
		}
		ws[i] = weights
	}

	return splines.NewSurface(2, profile.Degree(), pts, ws, clampedKnots(2), profile.Knots())
}

// Generate a cylinder
//
// **params**
// + normalized axis of cylinder
// + xaxis in plane of cylinder
// + position of base of cylinder
// + height from base to top
// + radius of the cylinder
func CylindricalSurface(axis, xaxis *vec3.T, base *vec3.T, height, radius float64) (*splines.Surface, error) {
	yaxis := vec3.Cross(axis, xaxis)
	circ, err := Circle(base, xaxis, &yaxis, radius)
	if err != nil {
		return nil, err
	}

	return ExtrudedSurface(axis, height, circ)
}
