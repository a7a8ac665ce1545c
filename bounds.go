package splines

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

const BoundingBoxTolerance = 1e-4

// BoundingBox is an axis-aligned box. The zero value is empty and ready to
// use.
type BoundingBox struct {
	Min, Max    Vector3
	initialized bool
}

// Adds a point to the bounding box, expanding the bounding box if the point is outside of it.
// If the bounding box is empty, it becomes the single point.
//
// **returns**
// + This BoundingBox for chaining
func (this *BoundingBox) Add(point *Vector3) *BoundingBox {
	if !this.initialized {
		this.Min, this.Max = *point, *point
		this.initialized = true

		return this
	}

	for i, val := range point {
		if val > this.Max[i] {
			this.Max[i] = val
		}
		if val < this.Min[i] {
			this.Min[i] = val
		}
	}

	return this
}

func (this *BoundingBox) AddRange(points []Vector3) *BoundingBox {
	for i := range points {
		this.Add(&points[i])
	}

	return this
}

func (this *BoundingBox) IsEmpty() bool {
	return !this.initialized
}

// Determines if point is contained in the bounding box
//
// **params**
// + the point
// + the tolerance, or a negative value for BoundingBoxTolerance
//
// **returns**
// + true if the point lies inside the box grown by the tolerance
func (this *BoundingBox) Contains(point *Vector3, tol float64) bool {
	if !this.initialized {
		return false
	}

	if tol < 0 {
		tol = BoundingBoxTolerance
	}

	for i, val := range point {
		if val < this.Min[i]-tol || val > this.Max[i]+tol {
			return false
		}
	}

	return true
}

// Get length of given axis.
//
// **params**
// + Index of axis to inspect (between 0 and 2)
//
// **returns**
// + Length of the given axis.  If axis is out of bounds, returns 0.
func (this *BoundingBox) AxisLength(i int) float64 {
	if !this.initialized || i < 0 || i > len(this.Min)-1 {
		return 0
	}
	return math.Abs(this.Min[i] - this.Max[i])
}

// LongestAxis returns the index of the longest axis.
func (this *BoundingBox) LongestAxis() int {
	id, max := 0, 0.0

	for i := range this.Min {
		l := this.AxisLength(i)
		if l > max {
			max = l
			id = i
		}
	}

	return id
}

func (this *BoundingBox) Center() Vector3 {
	return vec3.Interpolate(&this.Min, &this.Max, 0.5)
}
