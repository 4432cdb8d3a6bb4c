package renderer

import (
	"math"
	"math/rand"

	"github.com/kmorris/pathtracer/pkg/core"
)

// CameraConfig holds everything needed to build a camera and drive sampling
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up vector
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens aperture diameter (0 = pinhole)
	FocusDistance float64   // Distance to the focus plane (0 = distance to LookAt)

	Width           int       // Image width in pixels
	Height          int       // Image height in pixels
	SamplesPerPixel int       // Rays per pixel
	MaxDepth        int       // Maximum ray bounce depth
	BackgroundTop   core.Vec3 // Background gradient color at the top
	BackgroundDown  core.Vec3 // Background gradient color at the bottom
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            90,
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		BackgroundTop:   core.NewVec3(0.5, 0.7, 1.0),
		BackgroundDown:  core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Camera generates primary rays and integrates radiance for pixels.
// It is immutable after construction and safe to share across workers;
// all randomness comes from the *rand.Rand each caller passes in.
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal camera basis
	lensRadius      float64
}

// NewCamera creates a thin-lens camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)

	aspectRatio := float64(config.Width) / float64(config.Height)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := viewportHeight * aspectRatio

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		config:          config,
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates a primary ray through pixel (i, j) with anti-aliasing
// jitter inside the pixel footprint and, for non-zero apertures, a random
// lens offset retargeted at the focus plane. Pixel row 0 is the top row.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	s := (float64(i) + random.Float64()) / float64(c.config.Width)
	t := 1.0 - (float64(j)+random.Float64())/float64(c.config.Height)

	origin := c.origin
	var offset core.Vec3
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
		origin = origin.Add(offset)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(origin, direction)
}
