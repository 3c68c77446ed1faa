package analytic

import (
	"math"

	"github.com/nilsaker/geolab/pkg/result"
	"github.com/nilsaker/geolab/pkg/surface"
	"github.com/nilsaker/geolab/pkg/vec3"
)

const torusSamples = 160

// TorusParams is a torus fitted to a point cloud by averaging radial
// distances about its bounding-box centre (spec §4.7). Degenerate fits fall back
// to a unit torus with a minor radius of 0.25.
type TorusParams struct {
	Center      vec3.Vec3
	MajorRadius float64
	MinorRadius float64
}

// EstimateTorusParams fits a torus to verts. The center is the
// midpoint of verts' bounding box; the major radius is the mean
// planar distance from the center axis, and the minor radius is the
// mean residual distance from the major circle.
func EstimateTorusParams(verts []vec3.Vec3) TorusParams {
	var out TorusParams
	if len(verts) == 0 {
		out.MajorRadius, out.MinorRadius = 1.0, 0.25
		return out
	}

	minV, maxV := verts[0], verts[0]
	for _, v := range verts {
		minV = minV.Min(v)
		maxV = maxV.Max(v)
	}
	out.Center = minV.Add(maxV).Mul(0.5)

	var sumR float64
	var countR int
	for _, v := range verts {
		dx, dy := v.X-out.Center.X, v.Y-out.Center.Y
		rho := math.Hypot(dx, dy)
		if !math.IsNaN(rho) && !math.IsInf(rho, 0) {
			sumR += rho
			countR++
		}
	}
	if countR > 0 {
		out.MajorRadius = sumR / float64(countR)
	}

	var sumr float64
	var countr int
	for _, v := range verts {
		dx, dy, dz := v.X-out.Center.X, v.Y-out.Center.Y, v.Z-out.Center.Z
		rho := math.Hypot(dx, dy)
		rr := math.Hypot(rho-out.MajorRadius, dz)
		if !math.IsNaN(rr) && !math.IsInf(rr, 0) {
			sumr += rr
			countr++
		}
	}
	if countr > 0 {
		out.MinorRadius = sumr / float64(countr)
	}

	if math.IsNaN(out.MajorRadius) || math.IsInf(out.MajorRadius, 0) || out.MajorRadius <= 1e-6 {
		out.MajorRadius = 1.0
	}
	if math.IsNaN(out.MinorRadius) || math.IsInf(out.MinorRadius, 0) || out.MinorRadius <= 1e-6 {
		out.MinorRadius = 0.25
	}
	return out
}

func (t TorusParams) toUV(p vec3.Vec3) (u, v float64) {
	x, y, z := p.X-t.Center.X, p.Y-t.Center.Y, p.Z-t.Center.Z
	u = math.Atan2(y, x)
	rho := math.Hypot(x, y)
	v = math.Atan2(z, rho-t.MajorRadius)
	return u, v
}

func (t TorusParams) eval(u, v float64) vec3.Vec3 {
	cu, su := math.Cos(u), math.Sin(u)
	cv, sv := math.Cos(v), math.Sin(v)
	r := t.MajorRadius + t.MinorRadius*cv
	return vec3.New(
		r*cu+t.Center.X,
		r*su+t.Center.Y,
		t.MinorRadius*sv+t.Center.Z,
	)
}

// wrapDelta returns a + the signed remainder of (b-a) modulo 2pi, i.e.
// b rewound to the branch of the angle closest to a.
func wrapDelta(a, b float64) float64 {
	const twoPi = 2 * math.Pi
	delta := math.Remainder(b-a, twoPi)
	return a + delta
}

// Torus returns the approximate geodesic between p1 and p2 on the
// torus fitted to verts, solved by shooting in (u, v) parameter space
// and falling back to linear parameter interpolation if the shot does
// not converge (spec §4.7).
func Torus(p1, p2 vec3.Vec3, verts []vec3.Vec3) result.Curve {
	return TorusWithShooting(p1, p2, verts, surface.ShootingPerturbation, surface.ShootingTolerance, surface.ShootingMaxIters)
}

// TorusWithShooting is Torus with the underlying shooting-method
// perturbation, tolerance and iteration cap taken from the caller.
func TorusWithShooting(p1, p2 vec3.Vec3, verts []vec3.Vec3, perturbation, tolerance float64, maxIters int) result.Curve {
	t := EstimateTorusParams(verts)
	surf := surface.SurfaceFunc(t.eval)

	u1, v1 := t.toUV(p1)
	u2raw, v2raw := t.toUV(p2)
	u2 := wrapDelta(u1, u2raw)
	v2 := wrapDelta(v1, v2raw)

	du0, dv0, ok := surface.ShootWithParams(surf, u1, v1, u2, v2, perturbation, tolerance, maxIters)

	var points [][3]float64
	if ok {
		states := surface.Integrate(surf, surface.State{U: u1, V: v1, Du: du0, Dv: dv0}, torusSamples-1)
		points = make([][3]float64, len(states))
		for i, st := range states {
			p := t.eval(st.U, st.V)
			points[i] = [3]float64{p.X, p.Y, p.Z}
		}
	}

	if !ok || len(points) < 2 {
		points = make([][3]float64, torusSamples)
		for i := 0; i < torusSamples; i++ {
			tt := float64(i) / float64(torusSamples-1)
			u := u1 + (u2-u1)*tt
			v := v1 + (v2-v1)*tt
			p := t.eval(u, v)
			points[i] = [3]float64{p.X, p.Y, p.Z}
		}
	}

	if len(points) > 0 {
		points[0] = [3]float64{p1.X, p1.Y, p1.Z}
		points[len(points)-1] = [3]float64{p2.X, p2.Y, p2.Z}
	}

	return result.NewCurve("torus_geodesic", points)
}
