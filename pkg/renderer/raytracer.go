package renderer

import (
	"math"
	"math/rand"
	"time"

	"github.com/kmorris/pathtracer/pkg/core"
)

// tHitRange bounds valid intersections; the epsilon lower bound keeps
// bounce rays from re-hitting the surface they scattered from.
var tHitRange = core.NewInterval(0.001, math.Inf(1))

// intensity clamps radiance channels before byte quantization
var intensity = core.NewInterval(0, 1)

// RenderRegion renders every pixel of the region into the framebuffer and
// returns this region's statistics. It runs to completion once started and
// touches only pixels inside the region bounds, which is what lets regions
// render concurrently on one shared buffer.
func (c *Camera) RenderRegion(frame *Framebuffer, region Region, world core.Hittable, random *rand.Rand) RenderStats {
	start := time.Now()
	stats := RenderStats{}

	bounds := region.Bounds
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			accum := core.Vec3{}
			for sample := 0; sample < c.config.SamplesPerPixel; sample++ {
				ray := c.GetRay(i, j, random)
				accum = accum.Add(c.rayColor(ray, world, random, c.config.MaxDepth, &stats))
			}
			r, g, b := c.toneMap(accum)
			frame.SetRGB(i, j, r, g, b)
			stats.PixelsRendered++
		}
	}

	stats.Elapsed = time.Since(start)
	return stats
}

// rayColor recursively evaluates path radiance for a single ray
func (c *Camera) rayColor(ray core.Ray, world core.Hittable, random *rand.Rand, depth int, stats *RenderStats) core.Vec3 {
	// Depth exhaustion loses the remaining energy; that bias is accepted
	if depth <= 0 {
		return core.Vec3{}
	}
	stats.RaysTraced++

	hit, isHit := world.Hit(ray, tHitRange)
	if !isHit {
		return c.backgroundGradient(ray)
	}

	emitted := emittedLight(hit.Material)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		// Absorption terminates the path; only emission survives
		return emitted
	}

	bounce := c.rayColor(scatter.Scattered, world, random, depth-1, stats)
	return emitted.Add(scatter.Attenuation.MultiplyVec(bounce))
}

// emittedLight returns the material's emission, black for non-emissive materials
func emittedLight(material core.Material) core.Vec3 {
	if emitter, isEmissive := material.(core.Emitter); isEmissive {
		return emitter.Emit()
	}
	return core.Vec3{}
}

// backgroundGradient returns a vertical gradient color based on ray direction
func (c *Camera) backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return c.config.BackgroundDown.Multiply(1.0 - t).
		Add(c.config.BackgroundTop.Multiply(t))
}

// toneMap averages accumulated samples, applies gamma-2 correction and
// quantizes to output bytes
func (c *Camera) toneMap(accum core.Vec3) (r, g, b uint8) {
	avg := accum.Multiply(1.0 / float64(c.config.SamplesPerPixel))
	corrected := avg.GammaCorrect(2.0)

	r = uint8(255 * intensity.Clamp(corrected.X))
	g = uint8(255 * intensity.Clamp(corrected.Y))
	b = uint8(255 * intensity.Clamp(corrected.Z))
	return r, g, b
}
