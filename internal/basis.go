package internal

import (
	"fmt"
	"math"
)

// Evaluate the B-spline basis function of control point i (Cox-de Boor)
//
// **params**
// + index of the control point
// + integer degree of the function
// + parameter
// + array of nondecreasing knot values
//
// **returns**
// + the influence of control point i at u
//
// The degree zero functions are the indicators of the half-open spans
// [knots[i], knots[i+1]), so the right end of the last span evaluates to zero.
// Panics on a negative degree or when i+degree is past the last knot.
func BSplineBasis(i, degree int, u float64, knots KnotVec) float64 {
	knots.checkIndex(i, degree)
	return bsplineBasis(i, degree, u, knots, -1)
}

// BSplineBasisClosed is BSplineBasis with span last treated as closed on the
// right, which lets the end of a clamped domain evaluate to its final control
// point.
func BSplineBasisClosed(i, degree int, u float64, knots KnotVec, last int) float64 {
	knots.checkIndex(i, degree)
	return bsplineBasis(i, degree, u, knots, last)
}

func bsplineBasis(i, degree int, u float64, knots KnotVec, closed int) float64 {
	if degree == 0 {
		lo, hi := knots[i], knots.At(i+1)
		if lo <= u && (u < hi || (i == closed && u <= hi)) {
			return 1
		}
		return 0
	}

	var f, g float64
	if d := knots[i+degree] - knots[i]; d != 0 {
		f = (u - knots[i]) / d
	}
	if d := knots.At(i+degree+1) - knots[i+1]; d != 0 {
		g = (knots.At(i+degree+1) - u) / d
	}

	return f*bsplineBasis(i, degree-1, u, knots, closed) + g*bsplineBasis(i+1, degree-1, u, knots, closed)
}

// Evaluate the Bernstein polynomial used as the Bézier basis
//
// **params**
// + index of the control point, between 0 and degree
// + integer degree of the curve
// + parameter in [0, 1]
//
// **returns**
// + C(degree, i) * u^i * (1-u)^(degree-i)
func Bernstein(i, degree int, u float64) float64 {
	if degree < 0 || i < 0 || i > degree {
		panic(fmt.Sprintf("splines: bernstein index %d out of range for degree %d", i, degree))
	}

	return Binomial(degree, i) * math.Pow(u, float64(i)) * math.Pow(1-u, float64(degree-i))
}
