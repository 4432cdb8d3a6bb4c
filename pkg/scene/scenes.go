package scene

// Default returns the default showcase description: a ground plane with a
// diffuse, a metal, a glass, a mixed and a clear-coated sphere under a sky
// gradient, plus a small emissive sphere acting as a lamp.
func Default() *Description {
	return &Description{
		Camera: CameraDesc{
			LookFrom:      Vec{0, 1.2, 3},
			LookAt:        Vec{0, 0.5, -1},
			Up:            Vec{0, 1, 0},
			VFov:          40,
			Aperture:      0.02,
			FocusDistance: 0, // Auto: distance from look_from to look_at
			Width:         400,
			Height:        225,
			Samples:       100,
			MaxDepth:      50,
			Background: &BackgroundDesc{
				Top:    Vec{0.5, 0.7, 1.0},
				Bottom: Vec{1.0, 1.0, 1.0},
			},
		},
		Materials: []MaterialDesc{
			{Name: "ground", Type: "lambertian", Albedo: Vec{0.5, 0.5, 0.5}},
			{Name: "matte-red", Type: "lambertian", Albedo: Vec{0.7, 0.2, 0.2}},
			{Name: "steel", Type: "metal", Albedo: Vec{0.8, 0.8, 0.9}, Fuzz: 0.05},
			{Name: "brushed-gold", Type: "metal", Albedo: Vec{0.9, 0.7, 0.3}, Fuzz: 0.4},
			{Name: "glass", Type: "dielectric", IOR: 1.5},
			{Name: "lamp", Type: "light", Emission: Vec{6, 6, 5}},
			{Name: "satin", Type: "mix", Diffuse: "matte-red", Specular: "steel", Weight: 0.7},
			{Name: "lacquer", Type: "layered", Outer: "glass", Inner: "matte-red"},
		},
		Objects: []ObjectDesc{
			{Type: "plane", Material: "ground", Point: Vec{0, 0, 0}, Normal: Vec{0, 1, 0}},
			{Type: "sphere", Material: "matte-red", Center: Vec{-1.1, 0.5, -1}, Radius: 0.5},
			{Type: "sphere", Material: "steel", Center: Vec{0, 0.5, -1}, Radius: 0.5},
			{Type: "sphere", Material: "glass", Center: Vec{1.1, 0.5, -1}, Radius: 0.5},
			{Type: "sphere", Material: "satin", Center: Vec{-0.55, 0.25, -0.2}, Radius: 0.25},
			{Type: "sphere", Material: "lacquer", Center: Vec{0.55, 0.25, -0.2}, Radius: 0.25},
			{Type: "sphere", Material: "lamp", Center: Vec{0, 2.5, 0}, Radius: 0.4},
		},
	}
}

// CornellBox returns a Cornell box description: quad walls, two spheres and
// an area light in the ceiling, rendered against a black background.
func CornellBox() *Description {
	return &Description{
		Camera: CameraDesc{
			LookFrom: Vec{278, 278, -800},
			LookAt:   Vec{278, 278, 0},
			Up:       Vec{0, 1, 0},
			VFov:     40,
			Width:    400,
			Height:   400,
			Samples:  200,
			MaxDepth: 50,
			Background: &BackgroundDesc{
				Top:    Vec{0, 0, 0},
				Bottom: Vec{0, 0, 0},
			},
		},
		Materials: []MaterialDesc{
			{Name: "white", Type: "lambertian", Albedo: Vec{0.73, 0.73, 0.73}},
			{Name: "red", Type: "lambertian", Albedo: Vec{0.65, 0.05, 0.05}},
			{Name: "green", Type: "lambertian", Albedo: Vec{0.12, 0.45, 0.15}},
			{Name: "mirror", Type: "metal", Albedo: Vec{0.95, 0.95, 0.95}, Fuzz: 0},
			{Name: "glass", Type: "dielectric", IOR: 1.5},
			{Name: "ceiling-light", Type: "light", Emission: Vec{15, 15, 15}},
		},
		Objects: []ObjectDesc{
			// Walls
			{Type: "quad", Material: "green", Corner: Vec{555, 0, 0}, U: Vec{0, 555, 0}, V: Vec{0, 0, 555}},
			{Type: "quad", Material: "red", Corner: Vec{0, 0, 0}, U: Vec{0, 555, 0}, V: Vec{0, 0, 555}},
			{Type: "quad", Material: "white", Corner: Vec{0, 0, 0}, U: Vec{555, 0, 0}, V: Vec{0, 0, 555}},
			{Type: "quad", Material: "white", Corner: Vec{0, 555, 0}, U: Vec{555, 0, 0}, V: Vec{0, 0, 555}},
			{Type: "quad", Material: "white", Corner: Vec{0, 0, 555}, U: Vec{555, 0, 0}, V: Vec{0, 555, 0}},
			// Ceiling light
			{Type: "quad", Material: "ceiling-light", Corner: Vec{213, 554, 227}, U: Vec{130, 0, 0}, V: Vec{0, 0, 105}},
			// Contents
			{Type: "sphere", Material: "glass", Center: Vec{185, 90, 150}, Radius: 90},
			{Type: "sphere", Material: "mirror", Center: Vec{370, 90, 350}, Radius: 90},
		},
	}
}

// Builtin returns the built-in description with the given name, or nil
func Builtin(name string) *Description {
	switch name {
	case "default":
		return Default()
	case "cornell":
		return CornellBox()
	default:
		return nil
	}
}
