package splines

import (
	"fmt"
	"math"

	. "github.com/schardong/Splines/internal"

	"github.com/ungerik/go3d/float64/mat4"
)

// Curve is a non-uniform rational B-spline curve. With the default knots and
// weights it is a uniform, non-rational B-spline.
type Curve struct {
	// degree of curve
	degree int

	// slice of control points
	controlPoints []Vector3

	// slice of nondecreasing knot values
	knots KnotVec

	// one weight per control point
	weights []float64

	color RGBA
}

// Create a B-spline curve
//
// **params**
// + integer degree of the curve, panics if negative
// + control points, at least degree + 1 of them
// + one weight per control point, or nil for all 1.0
// + nondecreasing knot values, or nil for 0, 1, ..., len(controlPoints)+degree-1
//
// **returns**
// + the curve, or an error wrapping one of the construction errors
//
// A knot vector holds either len(controlPoints)+degree values, in which case
// the final knot is taken to repeat the last given one, or
// len(controlPoints)+degree+1 values. The slices are copied.
func NewCurve(degree int, controlPoints []Vector3, weights []float64, knots []float64) (*Curve, error) {
	if degree < 0 {
		panic(fmt.Sprintf("splines: negative curve degree %d", degree))
	}

	this := &Curve{
		degree:        degree,
		controlPoints: append([]Vector3(nil), controlPoints...),
		color:         Black,
	}

	if weights == nil {
		this.weights = unitWeights(len(controlPoints))
	} else {
		this.weights = append([]float64(nil), weights...)
	}

	if knots == nil {
		this.knots = UniformKnots(len(controlPoints) + degree)
	} else {
		this.knots = KnotVec(knots).Clone()
	}

	if err := this.check(); err != nil {
		return nil, err
	}

	return this, nil
}

func (this *Curve) Degree() int {
	return this.degree
}

func (this *Curve) ControlPoints() []Vector3 {
	return append([]Vector3(nil), this.controlPoints...)
}

func (this *Curve) Weights() []float64 {
	return append([]float64(nil), this.weights...)
}

func (this *Curve) Knots() []float64 {
	return []float64(this.knots.Clone())
}

func (this *Curve) Color() RGBA {
	return this.color
}

func (this *Curve) SetColor(color RGBA) {
	this.color = color
}

// SetKnots replaces the whole knot vector. On error the curve is unchanged.
func (this *Curve) SetKnots(knots []float64) error {
	kv := KnotVec(knots).Clone()
	if err := checkKnots(kv, len(this.controlPoints), this.degree); err != nil {
		return err
	}

	this.knots = kv
	return nil
}

// SetWeights replaces all weights. On error the curve is unchanged.
func (this *Curve) SetWeights(weights []float64) error {
	if err := checkWeights(weights, len(this.controlPoints)); err != nil {
		return err
	}

	this.weights = append([]float64(nil), weights...)
	return nil
}

// SetControlPoints replaces all control points. The count must not change,
// since knots and weights are sized after it.
func (this *Curve) SetControlPoints(controlPoints []Vector3) error {
	if len(controlPoints) != len(this.controlPoints) {
		return fmt.Errorf("%w: got %d, want %d", ErrControlPointCount, len(controlPoints), len(this.controlPoints))
	}
	if err := checkPoints(controlPoints); err != nil {
		return err
	}

	this.controlPoints = append([]Vector3(nil), controlPoints...)
	return nil
}

// Determine the valid domain of the curve
//
// **returns**
// + knots[degree] and knots[m+1], m being the index of the last control point
func (this *Curve) Domain() (min, max float64) {
	m := len(this.controlPoints) - 1
	min = this.knots[this.degree]
	max = this.knots.At(m + 1)
	return
}

// Basis evaluates the basis function of control point i at u.
func (this *Curve) Basis(i int, u float64) float64 {
	return BSplineBasis(i, this.degree, u, this.knots)
}

// Compute a point on the curve
//
// **params**
// + parameter on the curve at which the point is to be evaluated
// + WithClosedEnd to include the end of a clamped domain
//
// **returns**
// + the point, and false if the normalizing sum at u is zero
func (this *Curve) Point(u float64, opts ...SampleOption) (Vector3, bool) {
	o := newSampleOptions(opts)
	m := len(this.controlPoints) - 1
	segment := this.knots.Span(this.degree, m, u)

	return this.point(segment, u, o)
}

func (this *Curve) point(segment int, u float64, o *sampleOptions) (Vector3, bool) {
	pt, ok := this.blend(segment, u, -1)
	if ok || !o.closedEnd {
		return pt, ok
	}

	_, end := this.Domain()
	last := closedSpan(this.knots, this.degree, len(this.controlPoints)-1, segment, u, end)
	if last < 0 {
		return pt, ok
	}

	return this.blend(last, u, last)
}

// blend accumulates the rational sum of the degree+1 control points
// influencing the segment. closed selects a span evaluated as closed on the
// right, -1 for none.
func (this *Curve) blend(segment int, u float64, closed int) (Vector3, bool) {
	var acc HomoPoint

	for i := segment - this.degree; i <= segment; i++ {
		b := BSplineBasisClosed(i, this.degree, u, this.knots, closed)
		hp := Homogenized(this.controlPoints[i], this.weights[i])
		acc.Add(hp.Scale(b))
	}

	if acc.IsDegenerate() {
		return Vector3{}, false
	}

	return acc.Dehomogenized(), true
}

// Sample the curve at a fixed parameter step
//
// **params**
// + parameter increment, panics unless positive
// + sampling options
//
// **returns**
// + the samples, segment by segment in increasing parameter order
//
// Each segment s, from degree to m, is walked from knots[s] to knots[s+1]
// inclusive, so parameters on interior knots appear twice. Parameters with a
// zero normalizing sum are skipped. With WithClosedEnd the walk always ends on
// the domain end.
func (this *Curve) Sample(step float64, opts ...SampleOption) SampledCurve {
	checkStep(step)
	o := newSampleOptions(opts)

	var jobs []sampleJob
	last := len(this.controlPoints) - 1
	for segment := this.degree; segment <= last; segment++ {
		us := params(this.knots[segment], this.knots.At(segment+1), step)
		if o.closedEnd && segment == last {
			us = closeParams(us, this.knots.At(segment+1))
		}

		for _, u := range us {
			jobs = append(jobs, sampleJob{segment, u})
		}
	}

	return evaluate(jobs, o.workers, func(job sampleJob) (Vector3, bool) {
		return this.point(job.segment, job.u, o)
	})
}

// Transform returns a copy of the curve with every control point multiplied
// by mat. Knots, weights and colour are kept.
func (this *Curve) Transform(mat *mat4.T) *Curve {
	pts := make([]Vector3, len(this.controlPoints))
	for i := range pts {
		pts[i] = mat.MulVec3(&this.controlPoints[i])
	}

	return &Curve{
		degree:        this.degree,
		controlPoints: pts,
		knots:         this.knots.Clone(),
		weights:       append([]float64(nil), this.weights...),
		color:         this.color,
	}
}

// Bounds returns the bounding box of the control polygon, which contains the
// curve whenever all weights are positive.
func (this *Curve) Bounds() *BoundingBox {
	return new(BoundingBox).AddRange(this.controlPoints)
}

// Validate the curve
//
// **returns**
// + nil, or an error wrapping one of the construction errors
func (this *Curve) check() error {
	if len(this.controlPoints) == 0 {
		return ErrNoControlPoints
	}

	if len(this.controlPoints) < this.degree+1 {
		return fmt.Errorf("%w: degree %d needs %d, got %d",
			ErrTooFewControlPoints, this.degree, this.degree+1, len(this.controlPoints))
	}

	if err := checkPoints(this.controlPoints); err != nil {
		return err
	}

	if err := checkKnots(this.knots, len(this.controlPoints), this.degree); err != nil {
		return err
	}

	return checkWeights(this.weights, len(this.controlPoints))
}

func checkKnots(knots KnotVec, numPoints, degree int) error {
	want := numPoints + degree
	if len(knots) != want && len(knots) != want+1 {
		return fmt.Errorf("%w: got %d, want %d or %d for %d control points of degree %d",
			ErrKnotCount, len(knots), want, want+1, numPoints, degree)
	}

	for i, knot := range knots {
		if math.IsNaN(knot) || math.IsInf(knot, 0) {
			return fmt.Errorf("%w: knot %d is %g", ErrNonFinite, i, knot)
		}
	}

	if !knots.IsNonDecreasing() {
		return fmt.Errorf("%w: %v", ErrKnotOrder, []float64(knots))
	}

	return nil
}

func checkWeights(weights []float64, numPoints int) error {
	if len(weights) != numPoints {
		return fmt.Errorf("%w: got %d, want %d", ErrWeightCount, len(weights), numPoints)
	}

	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: weight %d is %g", ErrNonFinite, i, w)
		}
	}

	return nil
}

func checkPoints(pts []Vector3) error {
	for i := range pts {
		for _, c := range pts[i] {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("%w: control point %d is %v", ErrNonFinite, i, pts[i])
			}
		}
	}

	return nil
}

func unitWeights(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}

	return weights
}
