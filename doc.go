// Package splines evaluates Bézier curves, B-spline and rational B-spline
// (NURBS) curves, and tensor-product surfaces, producing dense point
// sequences for display or further geometric processing.
//
// A curve is built from a degree, control points and, optionally, a knot
// vector and weights:
//
//	crv, err := splines.NewCurve(3, pts, nil, nil) // uniform knots, unit weights
//	samples := crv.Sample(0.1)
//
// Sampling walks every curve segment from knots[degree] to knots[m+1]
// (m being the index of the last control point) at a fixed parameter step,
// including both ends of each segment. Parameters whose normalizing sum is
// zero produce no point.
//
// The package never draws anything. See the render package for a raster
// renderer and cmd/splines for a command line front end.
package splines
