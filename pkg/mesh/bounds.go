package mesh

import (
	"math"

	"github.com/nilsaker/geolab/pkg/vec3"
)

// BoundingBox is an axis-aligned bounding box.
type BoundingBox struct {
	Min vec3.Vec3
	Max vec3.Vec3
}

// NewBoundingBox creates an empty bounding box ready for Extend calls.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: vec3.New(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64),
		Max: vec3.New(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64),
	}
}

// Extend expands the bounding box to include point, ignoring
// non-finite coordinates per spec.
func (b *BoundingBox) Extend(point vec3.Vec3) {
	if !point.Finite() {
		return
	}
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Size returns the dimensions of the bounding box.
func (b BoundingBox) Size() vec3.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the bounding box.
func (b BoundingBox) Center() vec3.Vec3 {
	return vec3.New(
		(b.Min.X+b.Max.X)/2.0,
		(b.Min.Y+b.Max.Y)/2.0,
		(b.Min.Z+b.Max.Z)/2.0,
	)
}
