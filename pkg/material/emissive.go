package material

import (
	"math/rand"

	"github.com/kmorris/pathtracer/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter implements the Material interface for emissive materials.
// Lights never scatter; they absorb incoming rays and only emit.
func (e *Emissive) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns the emitted light for this material
func (e *Emissive) Emit() core.Vec3 {
	return e.Emission
}
