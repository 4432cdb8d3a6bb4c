package scene

import "testing"

func TestBuiltinScenesBuild(t *testing.T) {
	for _, name := range []string{"default", "cornell"} {
		t.Run(name, func(t *testing.T) {
			desc := Builtin(name)
			if desc == nil {
				t.Fatalf("Builtin(%q) = nil", name)
			}
			scene, err := Build(desc)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if scene.World == nil {
				t.Fatal("nil world")
			}
			if scene.Camera.Width <= 0 || scene.Camera.Height <= 0 {
				t.Errorf("camera size = %dx%d", scene.Camera.Width, scene.Camera.Height)
			}
		})
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	if desc := Builtin("nope"); desc != nil {
		t.Errorf("Builtin(\"nope\") = %+v, want nil", desc)
	}
}

func TestCornellBox_IsEnclosed(t *testing.T) {
	desc := CornellBox()

	quads := 0
	for _, obj := range desc.Objects {
		if obj.Type == "quad" {
			quads++
		}
	}
	// Five walls plus the ceiling light
	if quads < 6 {
		t.Errorf("cornell box has %d quads, want at least 6", quads)
	}

	hasLight := false
	for _, m := range desc.Materials {
		if m.Type == "light" {
			hasLight = true
		}
	}
	if !hasLight {
		t.Error("cornell box has no emissive material")
	}

	// A closed box renders against a black background
	bg := desc.Camera.Background
	if bg == nil || bg.Top != (Vec{}) || bg.Bottom != (Vec{}) {
		t.Errorf("background = %+v, want explicit black", bg)
	}
}
