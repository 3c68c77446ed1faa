package mesh

import "github.com/nilsaker/geolab/pkg/vec3"

// Triangle is a face's three vertex positions, used by the heat
// solver for area and cotangent-weight assembly.
type Triangle struct {
	A, B, C vec3.Vec3
}

// TriangleAt returns the Triangle formed by face f's vertices.
func (m *Mesh) TriangleAt(f Face) Triangle {
	return Triangle{A: m.Vertices[f[0]], B: m.Vertices[f[1]], C: m.Vertices[f[2]]}
}

// Normal returns the (unnormalized) cross-product normal of the
// triangle; its length is twice the triangle's area.
func (t Triangle) Normal() vec3.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// Area returns the surface area of the triangle.
func (t Triangle) Area() float64 {
	return t.Normal().Length() / 2.0
}

// CotangentAt returns the cotangent of the interior angle at vertex p
// of the triangle (p, q, r), computed as dot/|cross| of the two edges
// from p. Degenerate (zero-area) configurations return 0.
func CotangentAt(p, q, r vec3.Vec3) float64 {
	u := q.Sub(p)
	v := r.Sub(p)
	cross := u.Cross(v)
	denom := cross.Length()
	if denom <= 1e-12 {
		return 0
	}
	return u.Dot(v) / denom
}
