package core

import "math/rand"

// Hittable is implemented by anything a ray can intersect. Hit must only
// report intersections whose t parameter lies strictly inside tValid; the
// open lower bound is what keeps bounce rays from re-hitting their origin.
type Hittable interface {
	Hit(ray Ray, tValid Interval) (*HitRecord, bool)
}

// Material decides how an incoming ray scatters at a surface hit.
// Returning false means the ray was absorbed and the path terminates.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emit() Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation applied to light along the scattered ray
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always facing against the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the geometric outward normal faced the ray
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
