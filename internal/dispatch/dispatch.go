// Package dispatch chooses and runs the solver named by a (mode,
// model path) pair, per §4.10: Dijkstra by default, Heat regardless
// of name when mode is "heat", and a name-sniffing choice among the
// analytic surfaces (falling back to Heat, then to unsupported) when
// mode is "analytics".
package dispatch

import (
	"path/filepath"
	"strings"

	"github.com/nilsaker/geolab/internal/config"
	"github.com/nilsaker/geolab/internal/normalize"
	"github.com/nilsaker/geolab/pkg/analytic"
	"github.com/nilsaker/geolab/pkg/graph"
	"github.com/nilsaker/geolab/pkg/heat"
	"github.com/nilsaker/geolab/pkg/mesh"
	"github.com/nilsaker/geolab/pkg/result"
)

// RunDijkstra executes the edge-graph shortest path solver and builds
// its wire-schema result.
func RunDijkstra(m *mesh.Mesh, inputFileName string, startID, endID int) (result.Dijkstra, error) {
	r, err := graph.ShortestPath(m, startID, endID)
	if err != nil {
		return result.Dijkstra{}, err
	}
	return result.Dijkstra{
		InputFileName: inputFileName,
		Reachable:     r.Reachable,
		TotalDistance: result.TotalDistancePtr(r.Reachable, r.TotalDistance),
		Path:          r.Path,
		AllDistances:  r.AllDistances,
	}, nil
}

// RunAnalytics dispatches to the analytic surface named by basename
// (plane/sphere/torus/donut/saddle), falling back to the Heat Method
// on any other mesh with faces, and to "unsupported" otherwise.
func RunAnalytics(m *mesh.Mesh, inputFileName string, startID, endID int, cfg config.Tuning) result.Analytics {
	out := result.Analytics{InputFileName: inputFileName, StartID: startID, EndID: endID}

	if m.Empty() {
		out.Error = "No vertices loaded from OBJ"
		return out
	}
	if startID < 0 || endID < 0 || startID >= m.VertexCount() || endID >= m.VertexCount() {
		out.Error = "startId/endId out of range"
		return out
	}

	t := normalize.Compute(m)
	p1 := t.Apply(m.Vertex(startID))
	p2 := t.Apply(m.Vertex(endID))
	lengthScale := t.LengthScale()
	normVerts := t.ApplyAll(m.Vertices)

	name := strings.ToLower(filepath.Base(inputFileName))

	switch surfaceName(name) {
	case "plane":
		out.SurfaceType = "plane"
		c := analytic.Plane(p1, p2)
		c.Length *= lengthScale
		out.Curves = []result.Curve{c}
		return out
	case "sphere":
		out.SurfaceType = "sphere"
		c := analytic.Sphere(p1, p2)
		c.Length *= lengthScale
		out.Curves = []result.Curve{c}
		return out
	case "torus":
		out.SurfaceType = "torus"
		c := analytic.TorusWithShooting(p1, p2, normVerts, cfg.ShootingPerturbation, cfg.ShootingTolerance, cfg.ShootingMaxIters)
		c.Length *= lengthScale
		out.Curves = []result.Curve{c}
		return out
	case "saddle":
		out.SurfaceType = "saddle"
		c := analytic.SaddleWithShooting(p1, p2, normVerts, cfg.ShootingPerturbation, cfg.ShootingTolerance, cfg.ShootingMaxIters)
		c.Length *= lengthScale
		out.Curves = []result.Curve{c}
		return out
	}

	if m.FaceCount() > 0 {
		out.SurfaceType = "mesh"
		normMesh := mesh.New(normVerts, m.Faces)
		heatParams := heat.Params{
			HeatMaxIters: cfg.HeatMaxIters, HeatTolerance: cfg.HeatTolerance,
			PoissonMaxIters: cfg.PoissonMaxIters, PoissonTol: cfg.PoissonTol,
			DescentMargin: cfg.DescentMargin, PlateauTolerance: cfg.PlateauTolerance,
			AreaEpsilon: cfg.AreaEpsilon,
		}
		c, err := heat.GeodesicWithParams(normMesh, startID, endID, heatParams)
		if err != nil {
			out.Error = "Heat method failed to produce a path"
			return out
		}
		c.Length *= lengthScale
		out.Curves = []result.Curve{c}
		return out
	}

	out.SurfaceType = "unsupported"
	out.Error = "Analytics currently supports plane.obj, sphere.obj, donut.obj, saddle.obj, or heat method on triangle meshes"
	return out
}

// RunHeat always runs the Heat Method, regardless of the model name.
func RunHeat(m *mesh.Mesh, inputFileName string, startID, endID int, cfg config.Tuning) result.Analytics {
	out := result.Analytics{InputFileName: inputFileName, StartID: startID, EndID: endID, SurfaceType: "mesh"}

	if m.Empty() {
		out.Error = "No vertices loaded from OBJ"
		return out
	}
	if m.FaceCount() == 0 {
		out.Error = "No faces loaded from OBJ"
		return out
	}
	if startID < 0 || endID < 0 || startID >= m.VertexCount() || endID >= m.VertexCount() {
		out.Error = "startId/endId out of range"
		return out
	}

	t := normalize.Compute(m)
	lengthScale := t.LengthScale()
	normMesh := mesh.New(t.ApplyAll(m.Vertices), m.Faces)

	heatParams := heat.Params{
		HeatMaxIters: cfg.HeatMaxIters, HeatTolerance: cfg.HeatTolerance,
		PoissonMaxIters: cfg.PoissonMaxIters, PoissonTol: cfg.PoissonTol,
		DescentMargin: cfg.DescentMargin, PlateauTolerance: cfg.PlateauTolerance,
		AreaEpsilon: cfg.AreaEpsilon,
	}
	c, err := heat.GeodesicWithParams(normMesh, startID, endID, heatParams)
	if err != nil {
		out.Error = "Heat method failed to produce a path"
		return out
	}
	c.Length *= lengthScale
	out.Curves = []result.Curve{c}
	return out
}

func surfaceName(basename string) string {
	switch {
	case strings.Contains(basename, "plane"):
		return "plane"
	case strings.Contains(basename, "sphere"):
		return "sphere"
	case strings.Contains(basename, "torus"), strings.Contains(basename, "donut"):
		return "torus"
	case strings.Contains(basename, "saddle"):
		return "saddle"
	default:
		return ""
	}
}
