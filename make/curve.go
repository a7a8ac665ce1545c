package make

import (
	"math"

	splines "github.com/schardong/Splines"
	"github.com/ungerik/go3d/float64/vec3"
)

// Generate the control points, weights, and knots of an arbitrary arc
// (Corresponds to Algorithm A7.1 from Piegl & Tiller)
//
// **params**
// + the center of the arc
// + the xaxis of the arc
// + orthogonal yaxis of the arc
// + radius of the arc
// + start angle of the arc, between 0 and 2pi
// + end angle of the arc, between 0 and 2pi, greater than the start angle
//
// **returns**
// + a rational quadratic curve
func Arc(center *vec3.T, xaxis, yaxis *vec3.T, radius float64, startAngle, endAngle float64) (*splines.Curve, error) {
	xaxisScaled, yaxisScaled := xaxis.Scaled(radius), yaxis.Scaled(radius)
	return EllipseArc(center, &xaxisScaled, &yaxisScaled, startAngle, endAngle)
}

// Create a circle
//
// **params**
// + the center of the circle
// + the xaxis
// + the perpendicular yaxis
// + Radius of the circle
func Circle(center *vec3.T, xaxis, yaxis *vec3.T, radius float64) (*splines.Curve, error) {
	return Arc(center, xaxis, yaxis, radius, 0, 2*math.Pi)
}

func Ellipse(center *vec3.T, xaxis, yaxis *vec3.T) (*splines.Curve, error) {
	return EllipseArc(center, xaxis, yaxis, 0, 2*math.Pi)
}

// Generate the control points, weights, and knots of an elliptical arc
//
// **params**
// + the center
// + the scaled x axis
// + the scaled y axis
// + start angle of the ellipse arc, between 0 and 2pi, where 0 points at the xaxis
// + end angle of the arc, between 0 and 2pi, greater than the start angle
//
// **returns**
// + a rational quadratic curve on the domain [0, 1]
//
// The arc is split into at most four pieces of equal angle. The middle
// control point of a piece lies on the bisecting direction at 1/cos(half
// angle) times the radius, with that cosine as its weight.
func EllipseArc(center *vec3.T, xaxis, yaxis *vec3.T, startAngle, endAngle float64) (*splines.Curve, error) {
	// if the end angle is less than the start angle, do a circle
	if endAngle < startAngle {
		endAngle = 2.0*math.Pi + startAngle
	}

	theta := endAngle - startAngle

	// how many arcs?
	var numArcs int
	if theta <= math.Pi/2 {
		numArcs = 1
	} else {
		if theta <= math.Pi {
			numArcs = 2
		} else if theta <= 3*math.Pi/2 {
			numArcs = 3
		} else {
			numArcs = 4
		}
	}

	dtheta := theta / float64(numArcs)
	w1 := math.Cos(dtheta / 2)

	onEllipse := func(angle, scale float64) vec3.T {
		xCompon := xaxis.Scaled(scale * math.Cos(angle))
		yCompon := yaxis.Scaled(scale * math.Sin(angle))
		offset := vec3.Add(&xCompon, &yCompon)
		return vec3.Add(center, &offset)
	}

	controlPoints := make([]vec3.T, 2*numArcs+1)
	weights := make([]float64, 2*numArcs+1)
	knots := make([]float64, 2*numArcs+4)

	controlPoints[0] = onEllipse(startAngle, 1)
	weights[0] = 1

	angle := startAngle
	for i := 1; i <= numArcs; i++ {
		index := 2 * (i - 1)
		angle += dtheta

		controlPoints[index+1] = onEllipse(angle-dtheta/2, 1/w1)
		weights[index+1] = w1

		controlPoints[index+2] = onEllipse(angle, 1)
		weights[index+2] = 1
	}

	j := 2*numArcs + 1

	for i := 0; i < 3; i++ {
		knots[i] = 0.0
		knots[i+j] = 1.0
	}

	// interior knots are doubled so every piece ends on a control point
	for i := 1; i < numArcs; i++ {
		knots[2*i+1] = float64(i) / float64(numArcs)
		knots[2*i+2] = float64(i) / float64(numArcs)
	}

	return splines.NewCurve(2, controlPoints, weights, knots)
}

// generate the control points, weights, and knots for a bezier curve of any degree
//
// **params**
// + the control points, degree + 1 of them
//
// **returns**
// + a B-spline curve with clamped knots tracing the same Bézier curve on [0, 1]
func BezierCurve(controlPoints []vec3.T) (*splines.Curve, error) {
	if len(controlPoints) == 0 {
		return nil, splines.ErrNoControlPoints
	}

	degree := len(controlPoints) - 1
	return splines.NewCurve(degree, controlPoints, nil, clampedKnots(degree))
}

// clampedKnots returns degree+1 zeros followed by degree+1 ones.
func clampedKnots(degree int) []float64 {
	knots := make([]float64, 2*degree+2)
	for i := degree + 1; i < len(knots); i++ {
		knots[i] = 1
	}

	return knots
}
