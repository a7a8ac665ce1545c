package splines

import "errors"

// Construction errors. Constructors and setters wrap them with details, so
// compare with errors.Is.
var (
	ErrNoControlPoints     = errors.New("splines: no control points")
	ErrTooFewControlPoints = errors.New("splines: fewer control points than degree + 1")
	ErrControlPointCount   = errors.New("splines: control point count changed")
	ErrKnotCount           = errors.New("splines: wrong number of knots")
	ErrKnotOrder           = errors.New("splines: knots must be nondecreasing")
	ErrWeightCount         = errors.New("splines: wrong number of weights")
	ErrNonFinite           = errors.New("splines: NaN or infinite value")
	ErrGridShape           = errors.New("splines: control grid is not rectangular")
)
