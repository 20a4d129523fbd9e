// Package config implements manifest-based plugin discovery: a YAML
// manifest enumerates identifier→factory pairs, a Catalog maps factory
// names to code-registered constructors, and a Loader turns both into
// chain registrations.
//
// The manifest is one discovery mechanism among several; it stays
// swappable because everything funnels through Chain.Register. Loading
// order in the manifest is registration order, so the file also pins
// resolution precedence.
//
// Usage:
//
//	catalog := config.NewCatalog[cuisine.Chef]()
//	catalog.Register("fry", func(ctx context.Context) (cuisine.Chef, error) { ... })
//
//	loader := config.NewLoader(catalog).
//	    WithManifestPath("plugins.yaml").
//	    WithEnvPrefix("PLUGINFLOW")
//	err := loader.Populate(manager.Chain())
//
// Priority for the manifest path: explicit path → <PREFIX>_MANIFEST
// environment variable.
package config
