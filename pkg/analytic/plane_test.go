package analytic

import (
	"testing"

	"github.com/nilsaker/geolab/pkg/vec3"
	"github.com/stretchr/testify/assert"
)

func TestPlaneLengthMatchesEuclideanDistance(t *testing.T) {
	p1 := vec3.New(0, 0, 0)
	p2 := vec3.New(3, 4, 0)
	c := Plane(p1, p2)
	assert.InDelta(t, 5.0, c.Length, 1e-9)
	assert.Equal(t, "plane_straight_line", c.Name)
	assert.Len(t, c.Points, planeSamples)
}

func TestPlaneEndpoints(t *testing.T) {
	p1 := vec3.New(1, 2, 3)
	p2 := vec3.New(4, 5, 6)
	c := Plane(p1, p2)
	assert.Equal(t, [3]float64{p1.X, p1.Y, p1.Z}, c.Points[0])
	assert.Equal(t, [3]float64{p2.X, p2.Y, p2.Z}, c.Points[len(c.Points)-1])
}

func TestPlaneSamePoint(t *testing.T) {
	p := vec3.New(1, 1, 1)
	c := Plane(p, p)
	assert.InDelta(t, 0, c.Length, 1e-12)
}
