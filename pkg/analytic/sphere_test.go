package analytic

import (
	"math"
	"testing"

	"github.com/nilsaker/geolab/pkg/vec3"
	"github.com/stretchr/testify/assert"
)

func TestSphereQuarterArcLength(t *testing.T) {
	p1 := vec3.New(1, 0, 0)
	p2 := vec3.New(0, 1, 0)
	c := Sphere(p1, p2)
	assert.InDelta(t, math.Pi/2, c.Length, 1e-3)
	assert.Equal(t, "sphere_great_circle", c.Name)
	assert.Len(t, c.Points, sphereSamples)
}

func TestSphereEndpointsMatchInput(t *testing.T) {
	p1 := vec3.New(2, 0, 0)
	p2 := vec3.New(0, 2, 0)
	c := Sphere(p1, p2)
	first := c.Points[0]
	last := c.Points[len(c.Points)-1]
	assert.InDelta(t, p1.X, first[0], 1e-6)
	assert.InDelta(t, p1.Y, first[1], 1e-6)
	assert.InDelta(t, p2.X, last[0], 1e-6)
	assert.InDelta(t, p2.Y, last[1], 1e-6)
}

func TestSphereIdenticalPoints(t *testing.T) {
	p := vec3.New(1, 0, 0)
	c := Sphere(p, p)
	assert.InDelta(t, 0, c.Length, 1e-9)
}

func TestSphereAntipodal(t *testing.T) {
	p1 := vec3.New(1, 0, 0)
	p2 := vec3.New(-1, 0, 0)
	c := Sphere(p1, p2)
	assert.InDelta(t, math.Pi, c.Length, 1e-2)
}

func TestSphereNearAntipodalStaysFinite(t *testing.T) {
	p1 := vec3.New(1, 0, 0)
	theta := math.Pi - 1e-6
	p2 := vec3.New(math.Cos(theta), math.Sin(theta), 0)
	c := Sphere(p1, p2)
	for _, p := range c.Points {
		assert.False(t, math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsNaN(p[2]))
	}
}

func TestSphereUsesMeanRadius(t *testing.T) {
	p1 := vec3.New(1, 0, 0)
	p2 := vec3.New(0, 3, 0)
	c := Sphere(p1, p2)
	for _, p := range c.Points {
		r := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		assert.InDelta(t, 2.0, r, 1e-3)
	}
}
