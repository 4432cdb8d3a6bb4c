package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestRun_BuiltinSceneToPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")

	err := run(zap.NewNop(), "default", out, 2, 1, 4, 8, 8)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Errorf("output is not a PNG (%d bytes)", len(data))
	}
}

func TestRun_PPMOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.ppm")

	err := run(zap.NewNop(), "cornell", out, 2, 1, 2, 4, 4)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "P6\n4 4\n255\n") {
		t.Errorf("unexpected PPM header: %q", data[:min(len(data), 16)])
	}
	if len(data) != len("P6\n4 4\n255\n")+4*4*3 {
		t.Errorf("PPM length = %d", len(data))
	}
}

func TestRun_YAMLSceneFile(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	sceneYAML := `
camera:
  look_from: [0, 0, 2]
  look_at: [0, 0, 0]
  width: 4
  height: 4
  samples: 1
materials:
  - name: matte
    type: lambertian
    albedo: [0.5, 0.5, 0.5]
objects:
  - type: sphere
    material: matte
    center: [0, 0, 0]
    radius: 0.5
`
	if err := os.WriteFile(scenePath, []byte(sceneYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "nested", "out.png")
	if err := run(zap.NewNop(), scenePath, out, 1, 0, 0, 0, 0); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestRun_UnknownScene(t *testing.T) {
	err := run(zap.NewNop(), "no-such-scene", filepath.Join(t.TempDir(), "x.png"), 1, 1, 1, 4, 4)
	if err == nil {
		t.Fatal("expected error for unknown scene")
	}
	if !strings.Contains(err.Error(), "no-such-scene") {
		t.Errorf("error %q does not name the scene", err)
	}
}
