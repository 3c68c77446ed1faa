// Package surface implements the parametric-surface framework of
// spec §4.5: a numerical metric tensor and Christoffel symbols over
// any Surface, an RK4 geodesic integrator, and a Newton-shooting
// boundary-value solver used by pkg/analytic's torus and saddle
// geodesics.
package surface

import (
	"math"

	"github.com/nilsaker/geolab/pkg/vec3"
)

// Numeric step sizes from spec §9 — part of the contract, not tuning
// knobs left to taste. Overridable defaults live in internal/config.
const (
	MetricStep          = 1e-4
	ShootingPerturbation = 1e-3
	ShootingTolerance    = 1e-3
	ShootingMaxIters     = 8
	metricDetEpsilon     = 1e-12
	jacobianDetEpsilon   = 1e-10
)

// Surface maps parameter-space coordinates (u, v) to a point in
// Cartesian 3-space.
type Surface interface {
	Eval(u, v float64) vec3.Vec3
}

// SurfaceFunc adapts a plain function to the Surface interface.
type SurfaceFunc func(u, v float64) vec3.Vec3

// Eval implements Surface.
func (f SurfaceFunc) Eval(u, v float64) vec3.Vec3 { return f(u, v) }

// Metric is the 2x2 first fundamental form at a point, plus its
// (possibly identity-substituted) inverse.
type Metric struct {
	G00, G01, G11       float64
	Inv00, Inv01, Inv11 float64
}

// ComputeMetric evaluates the metric tensor at (u, v) by forward
// differencing with step MetricStep. If the determinant is too small
// to invert reliably, the identity inverse is substituted and
// integration continues (spec §4.5).
func ComputeMetric(s Surface, u, v float64) Metric {
	const h = MetricStep
	r := s.Eval(u, v)
	ru := s.Eval(u+h, v).Sub(r).Mul(1.0 / h)
	rv := s.Eval(u, v+h).Sub(r).Mul(1.0 / h)

	m := Metric{
		G00: ru.Dot(ru),
		G01: ru.Dot(rv),
		G11: rv.Dot(rv),
	}

	det := m.G00*m.G11 - m.G01*m.G01
	if math.Abs(det) > metricDetEpsilon {
		m.Inv00 = m.G11 / det
		m.Inv01 = -m.G01 / det
		m.Inv11 = m.G00 / det
	} else {
		m.Inv00, m.Inv01, m.Inv11 = 1.0, 0.0, 1.0
	}
	return m
}

// Christoffel holds the Christoffel symbols of the second kind at a
// point, indexed as Gamma^k_{ij} with k, i, j in {u, v}.
type Christoffel struct {
	Uuu, Uuv, Uvv float64 // Gamma^u_{uu}, Gamma^u_{uv}, Gamma^u_{vv}
	Vuu, Vuv, Vvv float64 // Gamma^v_{uu}, Gamma^v_{uv}, Gamma^v_{vv}
}

// ComputeChristoffel evaluates the Christoffel symbols at (u, v) from
// first differences of the metric components.
func ComputeChristoffel(s Surface, u, v float64) Christoffel {
	const h = MetricStep
	m := ComputeMetric(s, u, v)
	mu := ComputeMetric(s, u+h, v)
	mv := ComputeMetric(s, u, v+h)

	g00u := (mu.G00 - m.G00) / h
	g01u := (mu.G01 - m.G01) / h
	g11u := (mu.G11 - m.G11) / h
	g00v := (mv.G00 - m.G00) / h
	g01v := (mv.G01 - m.G01) / h
	g11v := (mv.G11 - m.G11) / h

	inv00, inv01, inv11 := m.Inv00, m.Inv01, m.Inv11

	return Christoffel{
		Uuu: 0.5 * (inv00*g00u + inv01*(2*g01u-g00v)),
		Uuv: 0.5 * (inv00*g00v + inv01*g11u),
		Uvv: 0.5 * (inv00*(2*g01v-g11u) + inv01*g11v),
		Vuu: 0.5 * (inv01*g00u + inv11*(2*g01u-g00v)),
		Vuv: 0.5 * (inv01*g00v + inv11*g11u),
		Vvv: 0.5 * (inv01*(2*g01v-g11u) + inv11*g11v),
	}
}

// State is a point on the geodesic ODE's phase space: position (u, v)
// and velocity (Du, Dv).
type State struct {
	U, V, Du, Dv float64
}

func rhs(s Surface, st State) State {
	c := ComputeChristoffel(s, st.U, st.V)
	return State{
		U:  st.Du,
		V:  st.Dv,
		Du: -(c.Uuu*st.Du*st.Du + 2*c.Uuv*st.Du*st.Dv + c.Uvv*st.Dv*st.Dv),
		Dv: -(c.Vuu*st.Du*st.Du + 2*c.Vuv*st.Du*st.Dv + c.Vvv*st.Dv*st.Dv),
	}
}

func addScaled(a, b State, h float64) State {
	return State{
		U:  a.U + h*b.U,
		V:  a.V + h*b.V,
		Du: a.Du + h*b.Du,
		Dv: a.Dv + h*b.Dv,
	}
}

// RK4Step advances the geodesic state by one classical Runge-Kutta
// step of size h.
func RK4Step(s Surface, st State, h float64) State {
	k1 := rhs(s, st)
	k2 := rhs(s, addScaled(st, k1, h/2))
	k3 := rhs(s, addScaled(st, k2, h/2))
	k4 := rhs(s, addScaled(st, k3, h))

	return State{
		U:  st.U + (h/6)*(k1.U+2*k2.U+2*k3.U+k4.U),
		V:  st.V + (h/6)*(k1.V+2*k2.V+2*k3.V+k4.V),
		Du: st.Du + (h/6)*(k1.Du+2*k2.Du+2*k3.Du+k4.Du),
		Dv: st.Dv + (h/6)*(k1.Dv+2*k2.Dv+2*k3.Dv+k4.Dv),
	}
}

// Integrate runs steps RK4 steps from start, scaling the step size so
// that one unit of integration time spans the whole trajectory
// (spec §4.5). It returns all steps+1 states, including start.
func Integrate(s Surface, start State, steps int) []State {
	if steps < 1 {
		steps = 1
	}
	h := 1.0 / float64(steps)
	out := make([]State, steps+1)
	out[0] = start
	st := start
	for i := 0; i < steps; i++ {
		st = RK4Step(s, st, h)
		out[i+1] = st
	}
	return out
}

// ShootingSteps is the trajectory resolution used while searching for
// the initial velocity in Shoot.
const ShootingSteps = 160

// Shoot solves the geodesic boundary-value problem from (u0, v0) to
// (u1, v1) by Newton iteration on the initial velocity, seeded at the
// straight displacement. It reports whether it converged within
// ShootingMaxIters iterations to within ShootingTolerance.
func Shoot(s Surface, u0, v0, u1, v1 float64) (du0, dv0 float64, ok bool) {
	return ShootWithParams(s, u0, v0, u1, v1, ShootingPerturbation, ShootingTolerance, ShootingMaxIters)
}

// ShootWithParams is Shoot with the perturbation, convergence
// tolerance and iteration cap taken from the caller instead of the
// package defaults, so internal/config can override the numeric
// contract's shooting knobs without this package depending on it.
func ShootWithParams(s Surface, u0, v0, u1, v1, perturbation, tolerance float64, maxIters int) (du0, dv0 float64, ok bool) {
	du0, dv0 = u1-u0, v1-v0

	for iter := 0; iter < maxIters; iter++ {
		start := State{U: u0, V: v0, Du: du0, Dv: dv0}
		end := Integrate(s, start, ShootingSteps)[ShootingSteps]
		errU := end.U - u1
		errV := end.V - v1
		if math.Hypot(errU, errV) < tolerance {
			return du0, dv0, true
		}

		eps := perturbation
		endU := Integrate(s, State{U: u0, V: v0, Du: du0 + eps, Dv: dv0}, ShootingSteps)[ShootingSteps]
		endV := Integrate(s, State{U: u0, V: v0, Du: du0, Dv: dv0 + eps}, ShootingSteps)[ShootingSteps]

		a00 := (endU.U - end.U) / eps
		a01 := (endV.U - end.U) / eps
		a10 := (endU.V - end.V) / eps
		a11 := (endV.V - end.V) / eps

		det := a00*a11 - a01*a10
		if math.Abs(det) < jacobianDetEpsilon {
			break
		}

		du0 += (-errU*a11 + errV*a01) / det
		dv0 += (errU*a10 - errV*a00) / det
	}
	return du0, dv0, false
}
