package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML scene description
func Parse(data []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &desc, nil
}

// LoadFile reads and decodes a YAML scene file
func LoadFile(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	desc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	return desc, nil
}

// BuildFile loads, parses and builds a scene in one step
func BuildFile(path string) (*Scene, error) {
	desc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(desc)
}
