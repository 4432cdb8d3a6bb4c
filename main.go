package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kmorris/pathtracer/pkg/logger"
	"github.com/kmorris/pathtracer/pkg/renderer"
	"github.com/kmorris/pathtracer/pkg/scene"
)

func main() {
	sceneFlag := flag.String("scene", "default", "Built-in scene name ('default', 'cornell') or path to a YAML scene file")
	output := flag.String("out", "render.png", "Output image path (.png or .ppm)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene setting)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene setting)")
	width := flag.Int("width", 0, "Image width (0 = scene setting)")
	height := flag.Int("height", 0, "Image height (0 = scene setting)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "Optional log file path (rotated)")
	flag.Parse()

	log := logger.New(*logLevel, *logFile)
	defer log.Sync()

	if err := run(log, *sceneFlag, *output, *workers, *samples, *depth, *width, *height); err != nil {
		log.Fatal("render failed", zap.Error(err))
	}
}

func run(log *zap.Logger, sceneName, output string, workers, samples, depth, width, height int) error {
	desc, err := loadDescription(sceneName)
	if err != nil {
		return err
	}

	// CLI overrides win over the scene file
	if samples > 0 {
		desc.Camera.Samples = samples
	}
	if depth > 0 {
		desc.Camera.MaxDepth = depth
	}
	if width > 0 {
		desc.Camera.Width = width
	}
	if height > 0 {
		desc.Camera.Height = height
	}

	built, err := scene.Build(desc)
	if err != nil {
		return err
	}

	result, err := renderer.NewRenderer(built.World, built.Camera, log).Render(workers)
	if err != nil {
		return err
	}

	if err := writeImage(output, result); err != nil {
		return err
	}

	log.Info("image written",
		zap.String("path", output),
		zap.Int64("rays", result.Stats.RaysTraced),
		zap.Duration("elapsed", result.Elapsed),
	)
	return nil
}

func loadDescription(name string) (*scene.Description, error) {
	if desc := scene.Builtin(name); desc != nil {
		return desc, nil
	}
	if _, err := os.Stat(name); err == nil {
		return scene.LoadFile(name)
	}
	return nil, fmt.Errorf("unknown scene %q: not a built-in name or readable file", name)
}

func writeImage(path string, result *renderer.RenderResult) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if strings.HasSuffix(strings.ToLower(path), ".ppm") {
		return result.Frame.WritePPM(file)
	}
	return png.Encode(file, result.Frame.ToRGBA())
}
