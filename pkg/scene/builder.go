package scene

import (
	"fmt"

	"github.com/kmorris/pathtracer/pkg/core"
	"github.com/kmorris/pathtracer/pkg/geometry"
	"github.com/kmorris/pathtracer/pkg/material"
	"github.com/kmorris/pathtracer/pkg/renderer"
)

// Scene is the built, immutable render input: the root of the hittable
// graph plus the camera configuration. Nothing in it mutates during a
// render, which is what lets workers share it without locks.
type Scene struct {
	World  core.Hittable
	Camera renderer.CameraConfig
}

// BuildError reports a malformed scene description. It is always fatal and
// surfaced before rendering begins.
type BuildError struct {
	Element string // "material", "object" or "camera"
	Name    string // Material name or object index
	Reason  string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("scene build: %s %q: %s", e.Element, e.Name, e.Reason)
}

// Objects above this count get a BVH root instead of a flat list
const bvhThreshold = 16

// Build validates the description and constructs the immutable scene graph
func Build(desc *Description) (*Scene, error) {
	materials, err := buildMaterials(desc.Materials)
	if err != nil {
		return nil, err
	}

	shapes, err := buildObjects(desc.Objects, materials)
	if err != nil {
		return nil, err
	}

	camera, err := buildCamera(desc.Camera)
	if err != nil {
		return nil, err
	}

	var world core.Hittable
	if len(shapes) > bvhThreshold {
		world = geometry.NewBVH(shapes)
	} else {
		list := geometry.NewList()
		for _, s := range shapes {
			list.Add(s)
		}
		world = list
	}

	return &Scene{World: world, Camera: camera}, nil
}

// buildMaterials constructs materials in declaration order so that mix and
// layered references resolve against already-built entries
func buildMaterials(descs []MaterialDesc) (map[string]core.Material, error) {
	materials := make(map[string]core.Material, len(descs))

	for _, d := range descs {
		if d.Name == "" {
			return nil, &BuildError{Element: "material", Name: d.Type, Reason: "missing name"}
		}
		if _, exists := materials[d.Name]; exists {
			return nil, &BuildError{Element: "material", Name: d.Name, Reason: "duplicate name"}
		}

		built, err := buildMaterial(d, materials)
		if err != nil {
			return nil, err
		}
		materials[d.Name] = built
	}

	return materials, nil
}

func buildMaterial(d MaterialDesc, materials map[string]core.Material) (core.Material, error) {
	switch d.Type {
	case "lambertian":
		if hasNegative(d.Albedo) {
			return nil, &BuildError{Element: "material", Name: d.Name, Reason: "albedo components must be non-negative"}
		}
		return material.NewLambertian(d.Albedo.Vec3()), nil

	case "metal":
		if hasNegative(d.Albedo) {
			return nil, &BuildError{Element: "material", Name: d.Name, Reason: "albedo components must be non-negative"}
		}
		return material.NewMetal(d.Albedo.Vec3(), d.Fuzz), nil

	case "dielectric":
		if d.IOR <= 0 {
			return nil, &BuildError{Element: "material", Name: d.Name, Reason: "dielectric requires a positive ior"}
		}
		return material.NewDielectric(d.IOR), nil

	case "light":
		if hasNegative(d.Emission) {
			return nil, &BuildError{Element: "material", Name: d.Name, Reason: "emission components must be non-negative"}
		}
		return material.NewEmissive(d.Emission.Vec3()), nil

	case "mix":
		diffuse, err := lookupMaterial(materials, d.Name, d.Diffuse)
		if err != nil {
			return nil, err
		}
		specular, err := lookupMaterial(materials, d.Name, d.Specular)
		if err != nil {
			return nil, err
		}
		return material.NewMix(diffuse, specular, d.Weight), nil

	case "layered":
		outer, err := lookupMaterial(materials, d.Name, d.Outer)
		if err != nil {
			return nil, err
		}
		inner, err := lookupMaterial(materials, d.Name, d.Inner)
		if err != nil {
			return nil, err
		}
		return material.NewLayered(outer, inner), nil

	default:
		return nil, &BuildError{Element: "material", Name: d.Name, Reason: fmt.Sprintf("unknown type %q", d.Type)}
	}
}

// hasNegative reports whether any component is negative. Negative colors
// would turn into NaN under gamma correction, so they are rejected here.
func hasNegative(v Vec) bool {
	return v[0] < 0 || v[1] < 0 || v[2] < 0
}

func lookupMaterial(materials map[string]core.Material, owner, ref string) (core.Material, error) {
	if ref == "" {
		return nil, &BuildError{Element: "material", Name: owner, Reason: "missing sub-material reference"}
	}
	m, ok := materials[ref]
	if !ok {
		return nil, &BuildError{Element: "material", Name: owner, Reason: fmt.Sprintf("references undefined material %q", ref)}
	}
	return m, nil
}

func buildObjects(descs []ObjectDesc, materials map[string]core.Material) ([]geometry.Bounded, error) {
	shapes := make([]geometry.Bounded, 0, len(descs))

	for i, d := range descs {
		name := fmt.Sprintf("#%d", i)

		mat, ok := materials[d.Material]
		if !ok {
			return nil, &BuildError{Element: "object", Name: name, Reason: fmt.Sprintf("references undefined material %q", d.Material)}
		}

		switch d.Type {
		case "sphere":
			if d.Radius <= 0 {
				return nil, &BuildError{Element: "object", Name: name, Reason: "sphere requires a positive radius"}
			}
			shapes = append(shapes, geometry.NewSphere(d.Center.Vec3(), d.Radius, mat))

		case "plane":
			if d.Normal.Vec3().NearZero() {
				return nil, &BuildError{Element: "object", Name: name, Reason: "plane normal must be non-zero"}
			}
			shapes = append(shapes, geometry.NewPlane(d.Point.Vec3(), d.Normal.Vec3(), mat))

		case "quad":
			if d.U.Vec3().Cross(d.V.Vec3()).NearZero() {
				return nil, &BuildError{Element: "object", Name: name, Reason: "quad edge vectors must not be degenerate"}
			}
			shapes = append(shapes, geometry.NewQuad(d.Corner.Vec3(), d.U.Vec3(), d.V.Vec3(), mat))

		default:
			return nil, &BuildError{Element: "object", Name: name, Reason: fmt.Sprintf("unknown type %q", d.Type)}
		}
	}

	return shapes, nil
}

func buildCamera(d CameraDesc) (renderer.CameraConfig, error) {
	config := renderer.DefaultCameraConfig()

	// Both look vectors zero means the block was omitted; keep the
	// default view rather than degenerating to look_from == look_at
	if !d.LookFrom.Vec3().NearZero() || !d.LookAt.Vec3().NearZero() {
		config.LookFrom = d.LookFrom.Vec3()
		config.LookAt = d.LookAt.Vec3()
	}
	if up := d.Up.Vec3(); !up.NearZero() {
		config.Up = up
	}
	if d.VFov > 0 {
		config.VFov = d.VFov
	}
	config.Aperture = d.Aperture
	config.FocusDistance = d.FocusDistance

	if d.Width > 0 {
		config.Width = d.Width
	}
	if d.Height > 0 {
		config.Height = d.Height
	}
	if d.Samples > 0 {
		config.SamplesPerPixel = d.Samples
	}
	if d.MaxDepth > 0 {
		config.MaxDepth = d.MaxDepth
	}

	if d.Background != nil {
		config.BackgroundTop = d.Background.Top.Vec3()
		config.BackgroundDown = d.Background.Bottom.Vec3()
	}

	if config.LookFrom.Subtract(config.LookAt).NearZero() {
		return config, &BuildError{Element: "camera", Name: "look_at", Reason: "look_from and look_at must differ"}
	}

	return config, nil
}
