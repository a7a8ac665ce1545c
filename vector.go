package splines

import "github.com/ungerik/go3d/float64/vec3"

// Vector3 is a point or vector in 3D space. Values compare with == component
// by component, without tolerance.
type Vector3 = vec3.T

func V3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}
