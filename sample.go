package splines

import (
	"fmt"
	"math"
	"sync"

	. "github.com/schardong/Splines/internal"

	"github.com/ungerik/go3d/float64/vec3"
)

type (
	CurvePoint struct {
		U  float64
		Pt Vector3
	}
)

// SampledCurve is an ordered sequence of curve samples. It is rebuilt on
// every call to Sample and never updated in place.
type SampledCurve []CurvePoint

// Shape is what a renderer needs from a curve.
type Shape interface {
	ControlPoints() []Vector3
	Color() RGBA
	Sample(step float64, opts ...SampleOption) SampledCurve
}

var (
	_ Shape = (*Curve)(nil)
	_ Shape = (*BezierCurve)(nil)
)

type SampleOption func(*sampleOptions)

type sampleOptions struct {
	closedEnd bool
	workers   int
}

func newSampleOptions(opts []SampleOption) *sampleOptions {
	o := &sampleOptions{workers: 1}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithClosedEnd makes the end of the parameter domain evaluate with the last
// non-empty knot span closed on the right, and adds that end to the walk when
// the step does not land on it. Without it a clamped curve skips its final
// parameter, whose half-open basis functions all vanish.
func WithClosedEnd() SampleOption {
	return func(o *sampleOptions) {
		o.closedEnd = true
	}
}

// WithParallel spreads the evaluation over the given number of goroutines.
// The output is identical to a sequential run.
func WithParallel(workers int) SampleOption {
	return func(o *sampleOptions) {
		if workers > 1 {
			o.workers = workers
		}
	}
}

func checkStep(step float64) {
	if !(step > 0) {
		panic(fmt.Sprintf("splines: sampling step must be positive, got %g", step))
	}
}

// MaxSpanSamples bounds the number of parameters walked over one knot span.
// A step that would exceed it panics.
const MaxSpanSamples = 1 << 24

// params returns start, start+step, ... up to end. The last value snaps to
// end when it lands on it within rounding, so both ends of a span divisible
// by step are included.
func params(start, end, step float64) []float64 {
	count := math.Floor((end-start)/step + Epsilon)
	if count > MaxSpanSamples {
		panic(fmt.Sprintf("splines: step %g walks more than %d samples over [%g, %g]", step, MaxSpanSamples, start, end))
	}

	var n int
	if count > 0 {
		n = int(count)
	}

	us := make([]float64, n+1)
	for k := range us {
		us[k] = start + float64(k)*step
	}

	if last := us[n]; last > end || end-last <= step*Epsilon {
		us[n] = end
	}

	return us
}

// closeParams appends end to a walk that stops short of it.
func closeParams(us []float64, end float64) []float64 {
	if us[len(us)-1] < end {
		return append(us, end)
	}

	return us
}

// closedSpan returns the span to evaluate closed on the right for parameter
// t, or -1 unless t is the domain end and every basis function of the segment
// vanishes there.
func closedSpan(knots KnotVec, degree, high, segment int, t, end float64) int {
	if t != end {
		return -1
	}

	for i := segment - degree; i <= segment; i++ {
		if BSplineBasis(i, degree, t, knots) != 0 {
			return -1
		}
	}

	return knots.LastSpan(degree, high)
}

type sampleJob struct {
	segment int
	u       float64
}

// evaluate runs eval for every job, optionally on several goroutines, and
// keeps the non-degenerate results in job order.
func evaluate(jobs []sampleJob, workers int, eval func(job sampleJob) (Vector3, bool)) SampledCurve {
	pts := make([]Vector3, len(jobs))
	ok := make([]bool, len(jobs))

	if workers <= 1 || len(jobs) < 2 {
		for k, job := range jobs {
			pts[k], ok[k] = eval(job)
		}
	} else {
		chunk := (len(jobs) + workers - 1) / workers

		var wg sync.WaitGroup
		for lo := 0; lo < len(jobs); lo += chunk {
			hi := min(lo+chunk, len(jobs))

			wg.Add(1)
			go func() {
				defer wg.Done()
				for k := lo; k < hi; k++ {
					pts[k], ok[k] = eval(jobs[k])
				}
			}()
		}
		wg.Wait()
	}

	samples := make(SampledCurve, 0, len(jobs))
	for k, job := range jobs {
		if !ok[k] {
			Logger().Debug("splines: skipping degenerate sample", "segment", job.segment, "u", job.u)
			continue
		}

		samples = append(samples, CurvePoint{job.u, pts[k]})
	}

	return samples
}

func (this SampledCurve) Len() int {
	return len(this)
}

func (this SampledCurve) Points() []Vector3 {
	pts := make([]Vector3, len(this))
	for i, s := range this {
		pts[i] = s.Pt
	}

	return pts
}

// Length returns the length of the polyline through the samples.
func (this SampledCurve) Length() float64 {
	var length float64
	for i := 1; i < len(this); i++ {
		length += vec3.Distance(&this[i-1].Pt, &this[i].Pt)
	}

	return length
}

// MaxStep returns the largest distance between two consecutive samples.
func (this SampledCurve) MaxStep() float64 {
	var max float64
	for i := 1; i < len(this); i++ {
		if d := vec3.Distance(&this[i-1].Pt, &this[i].Pt); d > max {
			max = d
		}
	}

	return max
}

func (this SampledCurve) Bounds() *BoundingBox {
	bb := new(BoundingBox)
	for i := range this {
		bb.Add(&this[i].Pt)
	}

	return bb
}
