package geometry

import (
	"math"

	"github.com/kmorris/pathtracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3     // A point on the plane
	Normal   core.Vec3     // Normal vector (normalized on construction)
	Material core.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects the plane within tValid
func (p *Plane) Hit(ray core.Ray, tValid core.Interval) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane counts as a miss, not an error
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !tValid.Surrounds(t) {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, p.Normal)

	return hit, true
}

// BoundingBox returns a bounding box for this plane
func (p *Plane) BoundingBox() core.AABB {
	const largeValue = 1e6
	const epsilon = 0.001 // Small thickness to avoid a zero-width box

	// Axis-aligned planes get a thin slab for better BVH splits
	switch {
	case math.Abs(p.Normal.X) > 1-1e-9:
		return core.NewAABB(
			core.NewVec3(p.Point.X-epsilon, -largeValue, -largeValue),
			core.NewVec3(p.Point.X+epsilon, largeValue, largeValue),
		)
	case math.Abs(p.Normal.Y) > 1-1e-9:
		return core.NewAABB(
			core.NewVec3(-largeValue, p.Point.Y-epsilon, -largeValue),
			core.NewVec3(largeValue, p.Point.Y+epsilon, largeValue),
		)
	case math.Abs(p.Normal.Z) > 1-1e-9:
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, p.Point.Z-epsilon),
			core.NewVec3(largeValue, largeValue, p.Point.Z+epsilon),
		)
	default:
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, -largeValue),
			core.NewVec3(largeValue, largeValue, largeValue),
		)
	}
}
