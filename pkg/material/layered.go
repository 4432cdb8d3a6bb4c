package material

import (
	"math/rand"

	"github.com/kmorris/pathtracer/pkg/core"
)

// Layered represents a coating material over a base material, such as a
// dielectric clear-coat on lacquered wood. The outer layer's scatter law is
// consulted first; only when it absorbs does the inner layer get a chance.
type Layered struct {
	Outer core.Material // Coating layer
	Inner core.Material // Base layer
}

// NewLayered creates a new layered material
func NewLayered(outer, inner core.Material) *Layered {
	return &Layered{
		Outer: outer,
		Inner: inner,
	}
}

// Scatter implements the Material interface for layered scattering
func (l *Layered) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	if result, scatters := l.Outer.Scatter(rayIn, hit, random); scatters {
		return result, true
	}
	return l.Inner.Scatter(rayIn, hit, random)
}
