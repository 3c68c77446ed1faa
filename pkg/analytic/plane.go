// Package analytic implements the closed-form and numeric geodesics
// of spec §4.6-§4.7: plane, great-circle sphere, and (via pkg/surface)
// torus and saddle.
package analytic

import (
	"github.com/nilsaker/geolab/pkg/result"
	"github.com/nilsaker/geolab/pkg/vec3"
)

const planeSamples = 64

// Plane returns the straight-line segment between p1 and p2, sampled
// at planeSamples points.
func Plane(p1, p2 vec3.Vec3) result.Curve {
	points := make([][3]float64, planeSamples)
	for i := 0; i < planeSamples; i++ {
		t := float64(i) / float64(planeSamples-1)
		p := vec3.Lerp(p1, p2, t)
		points[i] = [3]float64{p.X, p.Y, p.Z}
	}
	return result.NewCurve("plane_straight_line", points)
}
