package material

import (
	"math"
	"math/rand"

	"github.com/kmorris/pathtracer/pkg/core"
)

// Mix represents a material that probabilistically chooses between a diffuse
// and a specular sub-material. Each scatter event delegates wholly to one of
// the two; results are never blended.
type Mix struct {
	Diffuse       core.Material
	Specular      core.Material
	DiffuseWeight float64 // Probability of choosing the diffuse sub-material
}

// NewMix creates a new mix material, clamping the weight to [0, 1]
func NewMix(diffuse, specular core.Material, diffuseWeight float64) *Mix {
	diffuseWeight = math.Max(0.0, math.Min(diffuseWeight, 1.0))

	return &Mix{
		Diffuse:       diffuse,
		Specular:      specular,
		DiffuseWeight: diffuseWeight,
	}
}

// Scatter implements the Material interface for mix material
func (m *Mix) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	if random.Float64() < m.DiffuseWeight {
		return m.Diffuse.Scatter(rayIn, hit, random)
	}
	return m.Specular.Scatter(rayIn, hit, random)
}
