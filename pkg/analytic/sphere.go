package analytic

import (
	"math"

	"github.com/nilsaker/geolab/pkg/result"
	"github.com/nilsaker/geolab/pkg/vec3"
)

const (
	sphereSamples          = 128
	sphereIdenticalEpsilon = 1e-8
	sphereAntipodalEpsilon = 1e-5
)

// Sphere returns the great-circle arc between p1 and p2 on the sphere
// whose radius is the mean distance of p1, p2 from the origin.
// Near-identical points degenerate to a zero-length point cloud; near-
// antipodal points use an arbitrary perpendicular axis to pick one of
// the infinitely many connecting great circles (spec §4.6).
func Sphere(p1, p2 vec3.Vec3) result.Curve {
	r1, r2 := p1.Length(), p2.Length()
	r := math.Max(r1, r2)
	if r1 > 1e-12 && r2 > 1e-12 {
		r = 0.5 * (r1 + r2)
	}

	a := p1.Normalize()
	b := p2.Normalize()
	if r1 <= 1e-12 {
		a = vec3.New(0, 0, 1)
	}
	if r2 <= 1e-12 {
		b = vec3.New(0, 0, 1)
	}

	dot := vec3.Clamp(a.Dot(b), -1, 1)
	theta := math.Acos(dot)

	if theta <= sphereIdenticalEpsilon {
		points := make([][3]float64, sphereSamples)
		p := a.Mul(r)
		for i := range points {
			points[i] = [3]float64{p.X, p.Y, p.Z}
		}
		return result.NewCurve("sphere_great_circle", points)
	}

	if math.Pi-theta <= sphereAntipodalEpsilon {
		return sphereAntipodalArc(a, r)
	}

	sinTheta := math.Sin(theta)
	points := make([][3]float64, sphereSamples)
	for i := 0; i < sphereSamples; i++ {
		t := float64(i) / float64(sphereSamples-1)
		var u vec3.Vec3
		if sinTheta <= 1e-6 || math.IsInf(sinTheta, 0) || math.IsNaN(sinTheta) {
			u = vec3.Lerp(a, b, t).Normalize()
		} else {
			w1 := math.Sin((1-t)*theta) / sinTheta
			w2 := math.Sin(t*theta) / sinTheta
			u = a.Mul(w1).Add(b.Mul(w2))
		}
		p := u.Mul(r)
		points[i] = [3]float64{p.X, p.Y, p.Z}
	}
	return result.NewCurve("sphere_great_circle", points)
}

// sphereAntipodalArc samples a half-great-circle from a to -a using an
// arbitrary axis orthogonal to a.
func sphereAntipodalArc(a vec3.Vec3, r float64) result.Curve {
	ref := vec3.New(1, 0, 0)
	if math.Abs(a.X) >= 0.9 {
		ref = vec3.New(0, 1, 0)
	}
	u := a.Cross(ref).Normalize()
	if u.Length() <= 1e-8 {
		ref = vec3.New(0, 0, 1)
		u = a.Cross(ref).Normalize()
	}

	points := make([][3]float64, sphereSamples)
	for i := 0; i < sphereSamples; i++ {
		t := float64(i) / float64(sphereSamples-1)
		ang := math.Pi * t
		p := a.Mul(math.Cos(ang)).Add(u.Mul(math.Sin(ang))).Mul(r)
		points[i] = [3]float64{p.X, p.Y, p.Z}
	}
	return result.NewCurve("sphere_great_circle", points)
}
