package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry describes one plugin in the manifest.
type Entry struct {
	// Identifier is the unique plugin name. Required.
	Identifier string `yaml:"identifier" json:"identifier"`
	// Factory names the catalog constructor to use. Defaults to the
	// identifier.
	Factory string `yaml:"factory,omitempty" json:"factory,omitempty"`
	// Tags are extra lookup keys.
	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	// Source overrides the diagnostic source. Defaults to "manifest".
	Source string `yaml:"source,omitempty" json:"source,omitempty"`
	// Enabled toggles the entry. Defaults to true.
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`
}

// FactoryName returns the catalog key for this entry.
func (e Entry) FactoryName() string {
	if e.Factory != "" {
		return e.Factory
	}
	return e.Identifier
}

// IsEnabled reports whether the entry should be registered.
func (e Entry) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

// Manifest enumerates the plugins one capability family loads.
type Manifest struct {
	// Family is informational; loaders do not enforce it.
	Family string `yaml:"family,omitempty" json:"family,omitempty"`
	// Plugins lists entries in registration (and therefore
	// precedence) order.
	Plugins []Entry `yaml:"plugins" json:"plugins"`
}

// ParseManifest decodes a YAML manifest and validates its entries.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse plugin manifest: %w", err)
	}
	for i, e := range m.Plugins {
		if e.Identifier == "" {
			return nil, fmt.Errorf("plugin manifest entry %d: identifier is required", i)
		}
	}
	return &m, nil
}
