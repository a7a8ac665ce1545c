package splines

import (
	. "github.com/schardong/Splines/internal"

	"github.com/ungerik/go3d/float64/vec3"
)

// Find the closest point on a segment
//
// **params**
// + point to project
// + first point of segment
// + second point of segment
// + first param of segment
// + second param of segment
//
// **returns**
// + the closest point and its parameter, interpolated linearly along the segment
func segmentClosestPoint(pt, segpt0, segpt1 *Vector3, u0, u1 float64) CurvePoint {
	dif := vec3.Sub(segpt1, segpt0)
	l := dif.Length()

	if l < Epsilon {
		return CurvePoint{u0, *segpt0}
	}

	o := segpt0
	r := dif.Normalize()
	o2pt := vec3.Sub(pt, o)
	do2ptr := vec3.Dot(&o2pt, r)

	if do2ptr < 0 {
		return CurvePoint{u0, *segpt0}
	} else if do2ptr > l {
		return CurvePoint{u1, *segpt1}
	}

	return CurvePoint{
		u0 + (u1-u0)*do2ptr/l,
		vec3.Add(o, r.Scale(do2ptr)),
	}
}

// ClosestPoint returns the point of the sampled polyline nearest to p, with
// its parameter interpolated between the neighbouring samples. It returns
// false for an empty sampling.
func (this SampledCurve) ClosestPoint(p Vector3) (CurvePoint, bool) {
	switch len(this) {
	case 0:
		return CurvePoint{}, false
	case 1:
		return this[0], true
	}

	var best CurvePoint
	min := -1.0

	for i := 0; i+1 < len(this); i++ {
		proj := segmentClosestPoint(&p, &this[i].Pt, &this[i+1].Pt, this[i].U, this[i+1].U)
		if d := vec3.SquareDistance(&p, &proj.Pt); min < 0 || d < min {
			min = d
			best = proj
		}
	}

	return best, true
}
