package normalize

import (
	"math"
	"testing"

	"github.com/nilsaker/geolab/pkg/mesh"
	"github.com/nilsaker/geolab/pkg/vec3"
)

func TestComputeAndApply(t *testing.T) {
	verts := []vec3.Vec3{
		vec3.New(0, 0, 0),
		vec3.New(4, 2, 0),
	}
	m := mesh.New(verts, nil)
	tr := Compute(m)

	if tr.Centre != vec3.New(2, 1, 0) {
		t.Errorf("Centre failed: got %v", tr.Centre)
	}
	expectedScale := 2.0 / 4.0
	if math.Abs(tr.Scale-expectedScale) > 1e-10 {
		t.Errorf("Scale failed: expected %v, got %v", expectedScale, tr.Scale)
	}

	p := tr.Apply(vec3.New(4, 2, 0))
	if math.Abs(p.X-1) > 1e-10 || math.Abs(p.Y-0.5) > 1e-10 {
		t.Errorf("Apply failed: got %v", p)
	}
}

func TestComputeDegenerate(t *testing.T) {
	verts := []vec3.Vec3{vec3.New(1, 1, 1), vec3.New(1, 1, 1)}
	m := mesh.New(verts, nil)
	tr := Compute(m)
	if tr.Scale != 1.0 {
		t.Errorf("degenerate mesh should get Scale=1, got %v", tr.Scale)
	}
}

func TestLengthScale(t *testing.T) {
	tr := Transform{Scale: 0.5}
	if math.Abs(tr.LengthScale()-2.0) > 1e-10 {
		t.Errorf("LengthScale failed: got %v", tr.LengthScale())
	}
}
