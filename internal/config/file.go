package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File mirrors the settings that can be overridden from a YAML file.
// Zero values leave the current setting alone.
type File struct {
	BelowWorld       BelowWorldPolicy `yaml:"below_world"`
	TraversalWorkers int              `yaml:"traversal_workers"`
	SlowTraversalMs  int              `yaml:"slow_traversal_ms"`
}

// Load reads a settings file from path.
func Load(path string) (File, error) {
	var f File
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	return Parse(raw)
}

// Parse decodes YAML settings.
func Parse(raw []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("config yaml: %w", err)
	}
	return f, nil
}

// Apply pushes the non-zero fields of f into the global settings.
func (f File) Apply() {
	if f.BelowWorld != "" {
		SetBelowWorldPolicy(f.BelowWorld)
	}
	if f.TraversalWorkers != 0 {
		SetTraversalWorkers(f.TraversalWorkers)
	}
	if f.SlowTraversalMs != 0 {
		SetSlowTraversal(time.Duration(f.SlowTraversalMs) * time.Millisecond)
	}
}
