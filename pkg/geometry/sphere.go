package geometry

import (
	"math"

	"github.com/kmorris/pathtracer/pkg/core"
)

// Sphere represents a sphere surface
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects the sphere within tValid
func (s *Sphere) Hit(ray core.Ray, tValid core.Interval) (*core.HitRecord, bool) {
	// Quadratic equation coefficients for |O + tD - C|² = r²
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Prefer the closer root, fall back to the farther one
	root := (-halfB - sqrtD) / a
	if !tValid.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !tValid.Surrounds(root) {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
