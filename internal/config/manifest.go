package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the manifest looked up when no -c flag is given.
const DefaultFilename = "optionalstruct.yaml"

// Manifest is the derivation manifest: which package to analyze, which
// record types to derive partial schemas for, and under which tag set
// guards are evaluated.
type Manifest struct {
	// Version of the manifest format.
	Version string `yaml:"version"`
	// Package is the Go package pattern to load, e.g. "./store".
	Package string `yaml:"package"`
	// Output is the generated file name, written into the package
	// directory.
	Output string `yaml:"output"`
	// Tags is the active build tag set for guard evaluation.
	Tags []string `yaml:"tags"`
	// Derive lists the record types to process.
	Derive []Derivation `yaml:"derive"`
}

// Derivation configures one record type.
type Derivation struct {
	// Type is the base struct type name.
	Type string `yaml:"type"`
	// Name overrides the partial type name. Default "Optional" + Type.
	Name string `yaml:"name"`
	// Wrap overrides the default-wrap policy. Default true.
	Wrap *bool `yaml:"wrap"`
}

// LoadFile loads and parses a manifest from the given path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Manifest and applies defaults.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	err := yaml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&m)

	return &m, nil
}

func applyDefaults(m *Manifest) {
	if m.Version == "" {
		m.Version = "1"
	}

	if m.Output == "" {
		m.Output = "optional_gen.go"
	}

	for i := range m.Derive {
		d := &m.Derive[i]
		if d.Name == "" && d.Type != "" {
			d.Name = "Optional" + d.Type
		}
	}
}
