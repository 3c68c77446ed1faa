// Package normalize implements the centre/scale transform shared by
// the analytic and heat solvers (spec §4.4).
package normalize

import (
	"math"

	"github.com/nilsaker/geolab/pkg/mesh"
	"github.com/nilsaker/geolab/pkg/vec3"
)

// Transform is a centre/scale pair: p' = (p - Centre) * Scale.
type Transform struct {
	Centre vec3.Vec3
	Scale  float64
}

// Compute derives a Transform from a mesh's bounding box: Centre is
// the bounding-box midpoint, and Scale maps the largest extent to 2
// units (so the mesh fits in [-1, 1] along its longest axis). A
// degenerate (zero-extent) mesh gets Scale = 1.
func Compute(m *mesh.Mesh) Transform {
	bbox := m.BoundingBox()
	size := bbox.Size()
	maxExtent := math.Max(size.X, math.Max(size.Y, size.Z))

	scale := 1.0
	if maxExtent > 1e-12 {
		scale = 2.0 / maxExtent
	}
	return Transform{Centre: bbox.Center(), Scale: scale}
}

// Apply maps a point from original to normalised space.
func (t Transform) Apply(p vec3.Vec3) vec3.Vec3 {
	return p.Sub(t.Centre).Mul(t.Scale)
}

// ApplyAll maps every vertex in verts into normalised space.
func (t Transform) ApplyAll(verts []vec3.Vec3) []vec3.Vec3 {
	out := make([]vec3.Vec3, len(verts))
	for i, v := range verts {
		out[i] = t.Apply(v)
	}
	return out
}

// LengthScale returns the factor that converts a length measured in
// normalised space back to the mesh's original units.
func (t Transform) LengthScale() float64 {
	if t.Scale > 1e-12 {
		return 1.0 / t.Scale
	}
	return 1.0
}
