package analytic

import (
	"math"

	"github.com/nilsaker/geolab/pkg/result"
	"github.com/nilsaker/geolab/pkg/surface"
	"github.com/nilsaker/geolab/pkg/vec3"
)

const saddleSamples = 160

// SaddleParams is a hyperbolic-paraboloid z = a*(x^2 - y^2) fitted to
// a point cloud by linear least squares (spec §4.7).
type SaddleParams struct {
	Center vec3.Vec3
	A      float64
}

// EstimateSaddleParams fits a saddle to verts. The center is the
// midpoint of verts' bounding box; A minimizes the squared residual
// of z - a*(x^2-y^2) in closed form. A degenerate fit (near-zero
// denominator) falls back to A = 0.5.
func EstimateSaddleParams(verts []vec3.Vec3) SaddleParams {
	var out SaddleParams
	if len(verts) == 0 {
		out.A = 0.5
		return out
	}

	minV, maxV := verts[0], verts[0]
	for _, v := range verts {
		minV = minV.Min(v)
		maxV = maxV.Max(v)
	}
	out.Center = minV.Add(maxV).Mul(0.5)

	var num, den float64
	for _, v := range verts {
		x, y, z := v.X-out.Center.X, v.Y-out.Center.Y, v.Z-out.Center.Z
		txy := x*x - y*y
		if !math.IsNaN(txy) && !math.IsInf(txy, 0) && !math.IsNaN(z) {
			num += txy * z
			den += txy * txy
		}
	}
	if den > 1e-12 {
		out.A = num / den
	} else {
		out.A = 0.5
	}
	if math.IsNaN(out.A) || math.IsInf(out.A, 0) {
		out.A = 0.5
	}
	return out
}

func (s SaddleParams) eval(u, v float64) vec3.Vec3 {
	z := s.Center.Z + s.A*(u*u-v*v)
	return vec3.New(u+s.Center.X, v+s.Center.Y, z)
}

// Saddle returns the approximate geodesic between p1 and p2 on the
// saddle fitted to verts, solved by shooting in (u, v) parameter
// space with the same linear-interpolation fallback as Torus.
func Saddle(p1, p2 vec3.Vec3, verts []vec3.Vec3) result.Curve {
	return SaddleWithShooting(p1, p2, verts, surface.ShootingPerturbation, surface.ShootingTolerance, surface.ShootingMaxIters)
}

// SaddleWithShooting is Saddle with the underlying shooting-method
// perturbation, tolerance and iteration cap taken from the caller.
func SaddleWithShooting(p1, p2 vec3.Vec3, verts []vec3.Vec3, perturbation, tolerance float64, maxIters int) result.Curve {
	s := EstimateSaddleParams(verts)
	surf := surface.SurfaceFunc(s.eval)

	u1, v1 := p1.X-s.Center.X, p1.Y-s.Center.Y
	u2, v2 := p2.X-s.Center.X, p2.Y-s.Center.Y

	du0, dv0, ok := surface.ShootWithParams(surf, u1, v1, u2, v2, perturbation, tolerance, maxIters)

	var points [][3]float64
	if ok {
		states := surface.Integrate(surf, surface.State{U: u1, V: v1, Du: du0, Dv: dv0}, saddleSamples-1)
		points = make([][3]float64, len(states))
		for i, st := range states {
			p := s.eval(st.U, st.V)
			points[i] = [3]float64{p.X, p.Y, p.Z}
		}
	}

	if !ok || len(points) < 2 {
		points = make([][3]float64, saddleSamples)
		for i := 0; i < saddleSamples; i++ {
			t := float64(i) / float64(saddleSamples-1)
			u := u1 + (u2-u1)*t
			v := v1 + (v2-v1)*t
			p := s.eval(u, v)
			points[i] = [3]float64{p.X, p.Y, p.Z}
		}
	}

	if len(points) > 0 {
		points[0] = [3]float64{p1.X, p1.Y, p1.Z}
		points[len(points)-1] = [3]float64{p2.X, p2.Y, p2.Z}
	}

	return result.NewCurve("saddle_geodesic", points)
}
