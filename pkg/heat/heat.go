// Package heat implements the Crane-Weischedel-Wardetzky heat method
// (spec §4.8): diffuse a heat impulse from the source vertex, take
// the normalized negative gradient as a unit vector field, solve a
// constrained Poisson problem for the field's potential, and extract
// the geodesic by greedy descent on that potential.
package heat

import (
	"fmt"
	"math"

	"github.com/nilsaker/geolab/internal/errs"
	"github.com/nilsaker/geolab/pkg/graph"
	"github.com/nilsaker/geolab/pkg/mesh"
	"github.com/nilsaker/geolab/pkg/result"
)

const (
	heatMaxIter    = 600
	heatTol        = 1e-6
	poissonMaxIter = 1000
	poissonTol     = 1e-6

	pathMargin       = 1e-9
	plateauTolerance = 1e-6
	maxPathMultiple  = 3

	minAreaEpsilon = 1e-12
	minMassEpsilon = 1e-12
)

type laplacian struct {
	weights   []map[int]float64
	neighbors [][]int
	mass      []float64
}

// assemble builds the lumped mass vector and cotangent-weighted
// Laplacian of m, skipping faces whose area does not exceed
// areaEpsilon.
func assemble(m *mesh.Mesh, areaEpsilon float64) laplacian {
	n := m.VertexCount()
	l := laplacian{
		weights:   make([]map[int]float64, n),
		neighbors: make([][]int, n),
		mass:      make([]float64, n),
	}
	for i := range l.weights {
		l.weights[i] = make(map[int]float64)
	}

	for _, f := range m.Faces {
		i, j, k := f[0], f[1], f[2]
		tri := m.TriangleAt(f)
		area := tri.Area()
		if area <= areaEpsilon {
			continue
		}
		l.mass[i] += area / 3
		l.mass[j] += area / 3
		l.mass[k] += area / 3

		cotI := mesh.CotangentAt(tri.A, tri.B, tri.C)
		cotJ := mesh.CotangentAt(tri.B, tri.C, tri.A)
		cotK := mesh.CotangentAt(tri.C, tri.A, tri.B)

		l.weights[i][j] += 0.5 * cotK
		l.weights[j][i] += 0.5 * cotK
		l.weights[j][k] += 0.5 * cotI
		l.weights[k][j] += 0.5 * cotI
		l.weights[k][i] += 0.5 * cotJ
		l.weights[i][k] += 0.5 * cotJ
	}

	for i := range l.neighbors {
		l.neighbors[i] = make([]int, 0, len(l.weights[i]))
		for nb := range l.weights[i] {
			l.neighbors[i] = append(l.neighbors[i], nb)
		}
	}
	return l
}

func (l laplacian) applyL(x, out []float64) {
	for i := range out {
		var sum float64
		for nb, w := range l.weights[i] {
			sum += w * (x[i] - x[nb])
		}
		out[i] = sum
	}
}

func (l laplacian) meanEdgeLength(m *mesh.Mesh) float64 {
	var sum float64
	var count int
	for _, f := range m.Faces {
		tri := m.TriangleAt(f)
		sum += tri.A.Distance(tri.B) + tri.B.Distance(tri.C) + tri.C.Distance(tri.A)
		count += 3
	}
	if count == 0 {
		return 1
	}
	return sum / float64(count)
}

// Params overrides the conjugate-gradient iteration caps and
// tolerances, the descent/plateau-escape margins, and the degenerate-
// face area threshold used by Geodesic; the zero value of Params is
// never valid, use DefaultParams.
type Params struct {
	HeatMaxIters    int
	HeatTolerance   float64
	PoissonMaxIters int
	PoissonTol      float64

	DescentMargin    float64
	PlateauTolerance float64
	AreaEpsilon      float64
}

// DefaultParams matches the fixed numeric contract: 600 CG iterations
// at 1e-6 for heat diffusion, 1000 at 1e-6 for the Poisson solve, and
// the package's path-extraction/area-degeneracy defaults.
func DefaultParams() Params {
	return Params{
		HeatMaxIters:    heatMaxIter,
		HeatTolerance:   heatTol,
		PoissonMaxIters: poissonMaxIter,
		PoissonTol:      poissonTol,

		DescentMargin:    pathMargin,
		PlateauTolerance: plateauTolerance,
		AreaEpsilon:      minAreaEpsilon,
	}
}

// Geodesic computes the heat-method approximate geodesic between
// startID and endID on m's surface, using the default CG parameters.
func Geodesic(m *mesh.Mesh, startID, endID int) (result.Curve, error) {
	return GeodesicWithParams(m, startID, endID, DefaultParams())
}

// GeodesicWithParams is Geodesic with the CG iteration caps and
// tolerances taken from p instead of the package defaults, so
// internal/config can override the numeric contract's solver knobs
// without this package depending on it.
func GeodesicWithParams(m *mesh.Mesh, startID, endID int, p Params) (result.Curve, error) {
	n := m.VertexCount()
	if n == 0 {
		return result.Curve{}, errs.ErrEmptyMesh
	}
	if startID < 0 || startID >= n || endID < 0 || endID >= n {
		return result.Curve{}, fmt.Errorf("%w: start=%d end=%d vertices=%d", errs.ErrInvalidIndex, startID, endID, n)
	}

	l := assemble(m, p.AreaEpsilon)
	if l.mass[startID] <= minMassEpsilon {
		return result.Curve{}, fmt.Errorf("%w: source vertex has no incident area", errs.ErrDegenerateTopology)
	}

	h := l.meanEdgeLength(m)
	t := h * h

	applyHeat := func(x, out []float64) {
		lx := make([]float64, n)
		l.applyL(x, lx)
		for i := range out {
			out[i] = l.mass[i]*x[i] - t*lx[i]
		}
	}

	b := make([]float64, n)
	b[startID] = l.mass[startID]
	u := make([]float64, n)
	conjugateGradient(applyHeat, b, u, p.HeatMaxIters, p.HeatTolerance)

	div := computeDivergence(m, l, u, p.AreaEpsilon)

	applyConstrained := func(x, out []float64) {
		lx := make([]float64, n)
		l.applyL(x, lx)
		copy(out, lx)
		out[startID] = x[startID]
	}

	rhs := make([]float64, n)
	copy(rhs, div)
	rhs[startID] = 0
	phi := make([]float64, n)
	conjugateGradient(applyConstrained, rhs, phi, p.PoissonMaxIters, p.PoissonTol)

	minPhi := math.Inf(1)
	for _, v := range phi {
		minPhi = math.Min(minPhi, v)
	}
	for i := range phi {
		phi[i] -= minPhi
	}

	path := extractPath(l, phi, startID, endID, p.DescentMargin, p.PlateauTolerance)
	if path == nil {
		fallback, err := graph.ShortestPath(m, startID, endID)
		if err != nil || !fallback.Reachable {
			return result.Curve{}, fmt.Errorf("%w: heat descent and dijkstra fallback both failed to reach the source", errs.ErrDegenerateTopology)
		}
		path = fallback.Path
	}

	points := make([][3]float64, len(path))
	for i, idx := range path {
		p := m.Vertex(idx)
		points[i] = [3]float64{p.X, p.Y, p.Z}
	}
	return result.NewCurve("heat_geodesic", points), nil
}

// computeDivergence builds the per-face unit vector field X pointing
// against the heat gradient, then accumulates its cotangent-weighted
// divergence onto each vertex. Faces and gradients at or below
// areaEpsilon are skipped as degenerate.
func computeDivergence(m *mesh.Mesh, l laplacian, u []float64, areaEpsilon float64) []float64 {
	n := m.VertexCount()
	div := make([]float64, n)

	for _, f := range m.Faces {
		i, j, k := f[0], f[1], f[2]
		tri := m.TriangleAt(f)
		nrm := tri.Normal()
		area2 := nrm.Length()
		if area2 <= areaEpsilon {
			continue
		}

		gradI := nrm.Cross(tri.C.Sub(tri.B)).Mul(1 / area2)
		gradJ := nrm.Cross(tri.A.Sub(tri.C)).Mul(1 / area2)
		gradK := nrm.Cross(tri.B.Sub(tri.A)).Mul(1 / area2)

		gradU := gradI.Mul(u[i]).Add(gradJ.Mul(u[j])).Add(gradK.Mul(u[k]))
		gradLen := gradU.Length()
		if gradLen <= areaEpsilon {
			continue
		}
		x := gradU.Mul(-1 / gradLen)

		cotI := mesh.CotangentAt(tri.A, tri.B, tri.C)
		cotJ := mesh.CotangentAt(tri.B, tri.C, tri.A)
		cotK := mesh.CotangentAt(tri.C, tri.A, tri.B)

		div[i] += 0.5 * (cotJ*tri.C.Sub(tri.A).Dot(x) + cotK*tri.B.Sub(tri.A).Dot(x))
		div[j] += 0.5 * (cotK*tri.A.Sub(tri.B).Dot(x) + cotI*tri.C.Sub(tri.B).Dot(x))
		div[k] += 0.5 * (cotI*tri.B.Sub(tri.C).Dot(x) + cotJ*tri.A.Sub(tri.C).Dot(x))
	}
	return div
}

// extractPath walks from endID to startID by always stepping to the
// neighbour with the smallest phi, allowing a bounded non-decreasing
// step (within plateauTolerance) to escape plateaus once no neighbour
// improves on the current vertex by more than descentMargin. It
// returns nil (rather than a path that fails to reach startID) so
// callers can fall back to Dijkstra.
func extractPath(l laplacian, phi []float64, startID, endID int, descentMargin, plateauTolerance float64) []int {
	n := len(phi)
	visited := make([]bool, n)
	path := []int{endID}
	current := endID
	visited[current] = true

	for step := 0; step < n*maxPathMultiple && current != startID; step++ {
		best := -1
		bestVal := phi[current]
		for _, nb := range l.neighbors[current] {
			if phi[nb]+descentMargin < bestVal {
				bestVal = phi[nb]
				best = nb
			}
		}
		if best == -1 {
			for _, nb := range l.neighbors[current] {
				if !visited[nb] && phi[nb] < bestVal+plateauTolerance {
					bestVal = phi[nb]
					best = nb
				}
			}
		}
		if best == -1 {
			break
		}
		path = append(path, best)
		current = best
		visited[current] = true
	}

	if current != startID {
		return nil
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
