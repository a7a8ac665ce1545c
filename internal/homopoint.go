package internal

import "github.com/ungerik/go3d/float64/vec3"

// HomoPoint is a point in homogeneous space, (w*p, w). Summing scaled
// HomoPoints accumulates both the weighted numerator and the normalizing
// sum of a rational blend.
type HomoPoint struct {
	Vec3 vec3.T
	W    float64
}

func (this *HomoPoint) Add(pt *HomoPoint) *HomoPoint {
	this.Vec3.Add(&pt.Vec3)
	this.W += pt.W

	return this
}

func (this *HomoPoint) Scale(scale float64) *HomoPoint {
	this.Vec3.Scale(scale)
	this.W *= scale

	return this
}

func Homogenized(pt vec3.T, w float64) HomoPoint {
	return HomoPoint{pt.Scaled(w), w}
}

// IsDegenerate reports whether the normalizing sum is zero, in which case
// the point has no Euclidean equivalent.
func (this *HomoPoint) IsDegenerate() bool {
	return this.W == 0
}

// Dehomogenize a point
//
// **params**
// + a point represented by (wi*pi, wi)
//
// **returns**
// + the point pi, each component divided by the weight
func (this *HomoPoint) Dehomogenized() vec3.T {
	return vec3.T{
		this.Vec3[0] / this.W,
		this.Vec3[1] / this.W,
		this.Vec3[2] / this.W,
	}
}
