package geometry

import (
	"math"

	"github.com/kmorris/pathtracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3     // One corner of the quad
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Normal vector (computed from U × V)
	Material core.Material // Material of the quad
	d        float64       // Plane equation constant: normal · corner
	w        core.Vec3     // Cached vector for planar coordinate solves
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		d:        normal.Dot(corner),
		w:        normal.Multiply(1.0 / normal.Dot(cross)),
	}
}

// Hit tests if a ray intersects the quad within tValid
func (q *Quad) Hit(ray core.Ray, tValid core.Interval) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the supporting plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denominator
	if !tValid.Surrounds(t) {
		return nil, false
	}

	hitPoint := ray.At(t)

	// Solve planar coordinates in the (U, V) basis and check [0,1]² bounds
	hitVector := hitPoint.Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	box := core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)

	// Pad flat axes so the box never collapses to zero width
	const epsilon = 0.001
	pad := core.NewVec3(epsilon, epsilon, epsilon)
	return core.NewAABB(box.Min.Subtract(pad), box.Max.Add(pad))
}
