package splines

import (
	"fmt"

	. "github.com/schardong/Splines/internal"
)

// BezierCurve is a non-rational Bézier curve on the parameter interval
// [0, 1]. Its degree is one less than the number of control points.
type BezierCurve struct {
	controlPoints []Vector3
	color         RGBA
}

func NewBezierCurve(controlPoints []Vector3) (*BezierCurve, error) {
	if len(controlPoints) == 0 {
		return nil, ErrNoControlPoints
	}
	if err := checkPoints(controlPoints); err != nil {
		return nil, err
	}

	return &BezierCurve{
		controlPoints: append([]Vector3(nil), controlPoints...),
		color:         Black,
	}, nil
}

func (this *BezierCurve) Degree() int {
	return len(this.controlPoints) - 1
}

func (this *BezierCurve) ControlPoints() []Vector3 {
	return append([]Vector3(nil), this.controlPoints...)
}

func (this *BezierCurve) Color() RGBA {
	return this.color
}

func (this *BezierCurve) SetColor(color RGBA) {
	this.color = color
}

// SetControlPoints replaces all control points, keeping the degree.
func (this *BezierCurve) SetControlPoints(controlPoints []Vector3) error {
	if len(controlPoints) != len(this.controlPoints) {
		return fmt.Errorf("%w: got %d, want %d", ErrControlPointCount, len(controlPoints), len(this.controlPoints))
	}
	if err := checkPoints(controlPoints); err != nil {
		return err
	}

	this.controlPoints = append([]Vector3(nil), controlPoints...)
	return nil
}

// Basis evaluates the Bernstein polynomial of control point i at u.
func (this *BezierCurve) Basis(i int, u float64) float64 {
	return Bernstein(i, this.Degree(), u)
}

// Point evaluates the curve at u.
func (this *BezierCurve) Point(u float64) Vector3 {
	var pt Vector3
	degree := this.Degree()

	for i := 0; i <= degree; i++ {
		scaled := this.controlPoints[i].Scaled(Bernstein(i, degree, u))
		pt.Add(&scaled)
	}

	return pt
}

// Sample the curve from u = 0 to u = 1 inclusive at a fixed step. Bernstein
// blends never vanish, so every parameter yields a point. WithClosedEnd adds
// u = 1 when the step does not land on it.
func (this *BezierCurve) Sample(step float64, opts ...SampleOption) SampledCurve {
	checkStep(step)
	o := newSampleOptions(opts)

	us := params(0, 1, step)
	if o.closedEnd {
		us = closeParams(us, 1)
	}
	jobs := make([]sampleJob, len(us))
	for k, u := range us {
		jobs[k] = sampleJob{0, u}
	}

	return evaluate(jobs, o.workers, func(job sampleJob) (Vector3, bool) {
		return this.Point(job.u), true
	})
}

func (this *BezierCurve) Bounds() *BoundingBox {
	return new(BoundingBox).AddRange(this.controlPoints)
}
