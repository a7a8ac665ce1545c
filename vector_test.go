package splines

import (
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

func TestVector3Arithmetic(t *testing.T) {
	a, b := V3(1, 2, 3), V3(4, 5, 6)

	diff(t, V3(5, 7, 9), vec3.Add(&a, &b))
	diff(t, V3(3, 3, 3), vec3.Sub(&b, &a))
	diff(t, V3(2, 4, 6), a.Scaled(2))

	if got := vec3.Dot(&a, &b); got != 32 {
		t.Errorf("Dot = %g, want 32", got)
	}
	diff(t, V3(-3, 6, -3), vec3.Cross(&a, &b))

	c := V3(3, 4, 0)
	if got := c.Length(); got != 5 {
		t.Errorf("Length = %g, want 5", got)
	}
}

func TestVector3Equality(t *testing.T) {
	if V3(1, 2, 3) != (Vector3{1, 2, 3}) {
		t.Error("equal vectors compare unequal")
	}
	if V3(1, 2, 3) == V3(1, 2, 3.0000001) {
		t.Error("equality must not use a tolerance")
	}
}
