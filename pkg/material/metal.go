package material

import (
	"math/rand"

	"github.com/kmorris/pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material, clamping fuzzness to [0, 1]
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Perturb the mirror direction by the fuzz radius
	if m.Fuzzness > 0 {
		perturbation := core.RandomInUnitSphere(random).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation)
	}

	scattered := core.NewRay(hit.Point, reflected)

	// A perturbed direction pointing into the surface is absorbed; this
	// is what darkens grazing reflections at high fuzz values.
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
