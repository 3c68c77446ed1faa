// Package result defines the two wire schemas emitted by geolab (spec
// §6) and the JSON serialiser that writes them.
package result

import "math"

// Curve is an ordered polyline approximating a geodesic, together
// with its chord-length sum.
type Curve struct {
	Name   string      `json:"name"`
	Length float64     `json:"length"`
	Points [][3]float64 `json:"points"`
}

// NewCurve builds a Curve from a name and a sequence of points,
// computing Length as the sum of consecutive chord lengths.
func NewCurve(name string, points [][3]float64) Curve {
	c := Curve{Name: name, Points: points}
	for i := 1; i < len(points); i++ {
		c.Length += chordLength(points[i-1], points[i])
	}
	return c
}

func chordLength(a, b [3]float64) float64 {
	dx, dy, dz := b[0]-a[0], b[1]-a[1], b[2]-a[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Dijkstra is the edge-graph shortest-path result schema.
type Dijkstra struct {
	InputFileName string            `json:"inputFileName"`
	Reachable     bool              `json:"reachable"`
	TotalDistance *float64          `json:"totalDistance"`
	Path          []int             `json:"path"`
	AllDistances  []float64         `json:"allDistances"`
}

// Analytics is the analytic/heat result schema. Error is empty on
// success and non-empty iff Curves is empty.
type Analytics struct {
	InputFileName string  `json:"inputFileName"`
	StartID       int     `json:"startId"`
	EndID         int     `json:"endId"`
	SurfaceType   string  `json:"surfaceType"`
	Error         string  `json:"error"`
	Curves        []Curve `json:"curves"`
}
