// Package scene defines the plain-data scene description format and the
// builder that turns it into the immutable object graph the renderer
// consumes. Descriptions come from YAML files or the built-in scenes.
package scene

import "github.com/kmorris/pathtracer/pkg/core"

// Vec is a serializable [x, y, z] triple
type Vec [3]float64

// Vec3 converts to the renderer's vector type
func (v Vec) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// Description is the root of a scene file
type Description struct {
	Camera    CameraDesc     `yaml:"camera"`
	Materials []MaterialDesc `yaml:"materials"`
	Objects   []ObjectDesc   `yaml:"objects"`
}

// CameraDesc holds camera and sampling settings
type CameraDesc struct {
	LookFrom      Vec     `yaml:"look_from"`
	LookAt        Vec     `yaml:"look_at"`
	Up            Vec     `yaml:"up"`
	VFov          float64 `yaml:"vfov"`
	Aperture      float64 `yaml:"aperture"`
	FocusDistance float64 `yaml:"focus_distance"`

	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Samples  int `yaml:"samples"`
	MaxDepth int `yaml:"max_depth"`

	// Background overrides the default sky gradient when present
	Background *BackgroundDesc `yaml:"background"`
}

// BackgroundDesc holds the vertical background gradient colors
type BackgroundDesc struct {
	Top    Vec `yaml:"top"`
	Bottom Vec `yaml:"bottom"`
}

// MaterialDesc describes one material. Type selects the variant and decides
// which of the remaining fields apply. Sub-material references (mix, layered)
// must name materials defined earlier in the list.
type MaterialDesc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // lambertian, metal, dielectric, light, mix, layered

	Albedo   Vec     `yaml:"albedo"`   // lambertian, metal
	Fuzz     float64 `yaml:"fuzz"`     // metal
	IOR      float64 `yaml:"ior"`      // dielectric
	Emission Vec     `yaml:"emission"` // light

	Diffuse  string  `yaml:"diffuse"`  // mix: diffuse sub-material name
	Specular string  `yaml:"specular"` // mix: specular sub-material name
	Weight   float64 `yaml:"weight"`   // mix: probability of the diffuse branch

	Outer string `yaml:"outer"` // layered: coating material name
	Inner string `yaml:"inner"` // layered: base material name
}

// ObjectDesc describes one primitive. Type selects the variant.
type ObjectDesc struct {
	Type     string `yaml:"type"` // sphere, plane, quad
	Material string `yaml:"material"`

	Center Vec     `yaml:"center"` // sphere
	Radius float64 `yaml:"radius"` // sphere

	Point  Vec `yaml:"point"`  // plane
	Normal Vec `yaml:"normal"` // plane

	Corner Vec `yaml:"corner"` // quad
	U      Vec `yaml:"u"`      // quad edge vector
	V      Vec `yaml:"v"`      // quad edge vector
}
