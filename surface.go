package splines

import (
	"fmt"
	"sync"

	. "github.com/schardong/Splines/internal"

	"github.com/ungerik/go3d/float64/mat4"
)

type UV [2]float64

type SurfacePoint struct {
	UV    UV
	Point Vector3
}

// SampledSurface holds one row of samples per u parameter, each row ordered
// by v. Degenerate samples are left out, so rows may differ in length.
type SampledSurface [][]SurfacePoint

// Surface is a tensor-product rational B-spline surface.
type Surface struct {
	// integer degree of surface in u direction
	degreeU int

	// integer degree of surface in v direction
	degreeV int

	// 2d array of control points, the u direction runs down the rows and the
	// v direction along each row
	controlPoints [][]Vector3

	// one weight per control point, same shape as controlPoints
	weights [][]float64

	// array of nondecreasing knot values in u direction
	knotsU KnotVec

	// array of nondecreasing knot values in v direction
	knotsV KnotVec

	color RGBA
}

// Create a tensor-product surface
//
// **params**
// + degree in u (rows), panics if negative
// + degree in v (columns), panics if negative
// + rectangular grid of control points
// + weights of the same shape, or nil for all 1.0
// + u knots, or nil for 0, 1, ..., rows+degreeU-1
// + v knots, or nil for 0, 1, ..., cols+degreeV-1
//
// **returns**
// + the surface, or an error wrapping one of the construction errors
//
// Each knot vector follows the same length rule as NewCurve for its axis.
func NewSurface(degreeU, degreeV int, controlPoints [][]Vector3, weights [][]float64, knotsU, knotsV []float64) (*Surface, error) {
	if degreeU < 0 || degreeV < 0 {
		panic(fmt.Sprintf("splines: negative surface degree (%d, %d)", degreeU, degreeV))
	}

	this := &Surface{
		degreeU:       degreeU,
		degreeV:       degreeV,
		controlPoints: cloneGrid(controlPoints),
		color:         Black,
	}

	var rows, cols int
	rows = len(controlPoints)
	if rows > 0 {
		cols = len(controlPoints[0])
	}

	if weights == nil {
		this.weights = make([][]float64, rows)
		for i := range this.weights {
			this.weights[i] = unitWeights(cols)
		}
	} else {
		this.weights = cloneGrid(weights)
	}

	if knotsU == nil {
		this.knotsU = UniformKnots(rows + degreeU)
	} else {
		this.knotsU = KnotVec(knotsU).Clone()
	}

	if knotsV == nil {
		this.knotsV = UniformKnots(cols + degreeV)
	} else {
		this.knotsV = KnotVec(knotsV).Clone()
	}

	if err := this.check(); err != nil {
		return nil, err
	}

	return this, nil
}

func cloneGrid[T any](grid [][]T) [][]T {
	clone := make([][]T, len(grid))
	for i := range clone {
		clone[i] = append([]T(nil), grid[i]...)
	}

	return clone
}

func (this *Surface) DegreeU() int {
	return this.degreeU
}

func (this *Surface) DegreeV() int {
	return this.degreeV
}

func (this *Surface) ControlPoints() [][]Vector3 {
	return cloneGrid(this.controlPoints)
}

func (this *Surface) Weights() [][]float64 {
	return cloneGrid(this.weights)
}

func (this *Surface) KnotsU() []float64 {
	return []float64(this.knotsU.Clone())
}

func (this *Surface) KnotsV() []float64 {
	return []float64(this.knotsV.Clone())
}

func (this *Surface) Color() RGBA {
	return this.color
}

func (this *Surface) SetColor(color RGBA) {
	this.color = color
}

// SetKnots replaces the knot vector of one direction, v when useV is set.
func (this *Surface) SetKnots(knots []float64, useV bool) error {
	kv := KnotVec(knots).Clone()

	if useV {
		if err := checkKnots(kv, len(this.controlPoints[0]), this.degreeV); err != nil {
			return err
		}
		this.knotsV = kv
		return nil
	}

	if err := checkKnots(kv, len(this.controlPoints), this.degreeU); err != nil {
		return err
	}
	this.knotsU = kv
	return nil
}

// SetWeights replaces the whole weight grid.
func (this *Surface) SetWeights(weights [][]float64) error {
	if err := checkWeightGrid(weights, this.controlPoints); err != nil {
		return err
	}

	this.weights = cloneGrid(weights)
	return nil
}

func (this *Surface) DomainU() (min, max float64) {
	min = this.knotsU[this.degreeU]
	max = this.knotsU.At(len(this.controlPoints))
	return
}

func (this *Surface) DomainV() (min, max float64) {
	min = this.knotsV[this.degreeV]
	max = this.knotsV.At(len(this.controlPoints[0]))
	return
}

// Compute a point on the surface
//
// **params**
// + u and v parameters
// + WithClosedEnd to include the end of a clamped domain
//
// **returns**
// + the point, and false if the normalizing sum at (u, v) is zero
func (this *Surface) Point(uv UV, opts ...SampleOption) (Vector3, bool) {
	o := newSampleOptions(opts)
	segmentU := this.knotsU.Span(this.degreeU, len(this.controlPoints)-1, uv[0])
	segmentV := this.knotsV.Span(this.degreeV, len(this.controlPoints[0])-1, uv[1])

	return this.point(segmentU, segmentV, uv, o)
}

func (this *Surface) point(segmentU, segmentV int, uv UV, o *sampleOptions) (Vector3, bool) {
	pt, ok := this.blend(segmentU, segmentV, uv, -1, -1)
	if ok || !o.closedEnd {
		return pt, ok
	}

	_, endU := this.DomainU()
	_, endV := this.DomainV()
	closedU := closedSpan(this.knotsU, this.degreeU, len(this.controlPoints)-1, segmentU, uv[0], endU)
	closedV := closedSpan(this.knotsV, this.degreeV, len(this.controlPoints[0])-1, segmentV, uv[1], endV)

	if closedU < 0 && closedV < 0 {
		return pt, ok
	}

	if closedU >= 0 {
		segmentU = closedU
	}
	if closedV >= 0 {
		segmentV = closedV
	}

	return this.blend(segmentU, segmentV, uv, closedU, closedV)
}

// blend accumulates the rational sum over the (degreeU+1) x (degreeV+1)
// control points influencing the patch.
func (this *Surface) blend(segmentU, segmentV int, uv UV, closedU, closedV int) (Vector3, bool) {
	degreeU, degreeV := this.degreeU, this.degreeV

	uBasisVals := make([]float64, degreeU+1)
	for k := range uBasisVals {
		uBasisVals[k] = BSplineBasisClosed(segmentU-degreeU+k, degreeU, uv[0], this.knotsU, closedU)
	}

	vBasisVals := make([]float64, degreeV+1)
	for l := range vBasisVals {
		vBasisVals[l] = BSplineBasisClosed(segmentV-degreeV+l, degreeV, uv[1], this.knotsV, closedV)
	}

	var position HomoPoint
	for k, bu := range uBasisVals {
		i := segmentU - degreeU + k

		for l, bv := range vBasisVals {
			j := segmentV - degreeV + l

			hp := Homogenized(this.controlPoints[i][j], this.weights[i][j])
			position.Add(hp.Scale(bu * bv))
		}
	}

	if position.IsDegenerate() {
		return Vector3{}, false
	}

	return position.Dehomogenized(), true
}

// Sample the surface on a parameter grid
//
// **params**
// + parameter increment in both directions, panics unless positive
// + sampling options
//
// **returns**
// + one row per u parameter
//
// The u parameters walk segments degreeU..m of the u knots, and within each
// row the v parameters walk segments degreeV..n of the v knots, both in the
// manner of Curve.Sample, seams included. A row left empty by degenerate
// samples is dropped.
func (this *Surface) Sample(step float64, opts ...SampleOption) SampledSurface {
	checkStep(step)
	o := newSampleOptions(opts)

	type param struct {
		segment int
		t       float64
	}

	walk := func(knots KnotVec, degree, last int) []param {
		var ps []param
		for segment := degree; segment <= last; segment++ {
			ts := params(knots[segment], knots.At(segment+1), step)
			if o.closedEnd && segment == last {
				ts = closeParams(ts, knots.At(segment+1))
			}

			for _, t := range ts {
				ps = append(ps, param{segment, t})
			}
		}
		return ps
	}

	us := walk(this.knotsU, this.degreeU, len(this.controlPoints)-1)
	vs := walk(this.knotsV, this.degreeV, len(this.controlPoints[0])-1)

	rows := make(SampledSurface, len(us))
	sampleRow := func(r int) {
		u := us[r]
		row := make([]SurfacePoint, 0, len(vs))

		for _, v := range vs {
			uv := UV{u.t, v.t}
			pt, ok := this.point(u.segment, v.segment, uv, o)
			if !ok {
				Logger().Debug("splines: skipping degenerate surface sample", "u", uv[0], "v", uv[1])
				continue
			}

			row = append(row, SurfacePoint{uv, pt})
		}

		rows[r] = row
	}

	if o.workers > 1 {
		var wg sync.WaitGroup
		sem := make(chan struct{}, o.workers)

		for r := range rows {
			wg.Add(1)
			sem <- struct{}{}
			go func() {
				defer func() {
					<-sem
					wg.Done()
				}()
				sampleRow(r)
			}()
		}
		wg.Wait()
	} else {
		for r := range rows {
			sampleRow(r)
		}
	}

	result := rows[:0]
	for _, row := range rows {
		if len(row) > 0 {
			result = append(result, row)
		}
	}

	return result
}

// Transform returns a copy of the surface with every control point
// multiplied by mat.
func (this *Surface) Transform(mat *mat4.T) *Surface {
	pts := cloneGrid(this.controlPoints)
	for i := range pts {
		for j := range pts[i] {
			pts[i][j] = mat.MulVec3(&pts[i][j])
		}
	}

	return &Surface{
		degreeU:       this.degreeU,
		degreeV:       this.degreeV,
		controlPoints: pts,
		weights:       cloneGrid(this.weights),
		knotsU:        this.knotsU.Clone(),
		knotsV:        this.knotsV.Clone(),
		color:         this.color,
	}
}

func (this *Surface) Bounds() *BoundingBox {
	bb := new(BoundingBox)
	for _, row := range this.controlPoints {
		bb.AddRange(row)
	}

	return bb
}

// Validate the surface
//
// **returns**
// + nil, or an error wrapping one of the construction errors
func (this *Surface) check() error {
	if len(this.controlPoints) == 0 || len(this.controlPoints[0]) == 0 {
		return ErrNoControlPoints
	}

	cols := len(this.controlPoints[0])
	for i, row := range this.controlPoints {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d points, row 0 has %d", ErrGridShape, i, len(row), cols)
		}
	}

	if len(this.controlPoints) < this.degreeU+1 || cols < this.degreeV+1 {
		return fmt.Errorf("%w: degrees (%d, %d) need a %dx%d grid, got %dx%d",
			ErrTooFewControlPoints, this.degreeU, this.degreeV,
			this.degreeU+1, this.degreeV+1, len(this.controlPoints), cols)
	}

	for i, row := range this.controlPoints {
		if err := checkPoints(row); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	if err := checkKnots(this.knotsU, len(this.controlPoints), this.degreeU); err != nil {
		return fmt.Errorf("knotsU: %w", err)
	}
	if err := checkKnots(this.knotsV, cols, this.degreeV); err != nil {
		return fmt.Errorf("knotsV: %w", err)
	}

	return checkWeightGrid(this.weights, this.controlPoints)
}

func checkWeightGrid(weights [][]float64, controlPoints [][]Vector3) error {
	if len(weights) != len(controlPoints) {
		return fmt.Errorf("%w: got %d rows, want %d", ErrWeightCount, len(weights), len(controlPoints))
	}

	for i := range weights {
		if err := checkWeights(weights[i], len(controlPoints[i])); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	return nil
}
