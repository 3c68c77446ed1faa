package mesh

import (
	"testing"

	"github.com/nilsaker/geolab/pkg/vec3"
)

func TestTriangleArea(t *testing.T) {
	tri := Triangle{
		A: vec3.New(0, 0, 0),
		B: vec3.New(1, 0, 0),
		C: vec3.New(0, 1, 0),
	}
	if got := tri.Area(); got != 0.5 {
		t.Errorf("Area() = %v, want 0.5", got)
	}
}

func TestCotangentAtRightAngle(t *testing.T) {
	p := vec3.New(0, 0, 0)
	q := vec3.New(1, 0, 0)
	r := vec3.New(0, 1, 0)
	if got := CotangentAt(p, q, r); got != 0 {
		t.Errorf("CotangentAt() = %v, want 0 at a right angle", got)
	}
}

func TestCotangentAtDegenerate(t *testing.T) {
	p := vec3.New(0, 0, 0)
	q := vec3.New(1, 0, 0)
	r := vec3.New(2, 0, 0)
	if got := CotangentAt(p, q, r); got != 0 {
		t.Errorf("CotangentAt() = %v, want 0 for a degenerate triangle", got)
	}
}
