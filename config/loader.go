package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/BaSui01/pluginflow/plugin"
)

// Loader reads a plugin manifest and registers its entries on a chain,
// resolving factory names through a Catalog.
//
// Path priority: explicit WithManifestPath → <PREFIX>_MANIFEST env var.
type Loader[T any] struct {
	catalog   *Catalog[T]
	path      string
	envPrefix string
	strict    bool
	logger    *zap.Logger
}

// NewLoader creates a loader over the given catalog.
func NewLoader[T any](catalog *Catalog[T]) *Loader[T] {
	return &Loader[T]{
		catalog: catalog,
		logger:  zap.NewNop(),
	}
}

// WithManifestPath sets the manifest file path.
func (l *Loader[T]) WithManifestPath(path string) *Loader[T] {
	l.path = path
	return l
}

// WithEnvPrefix enables the <PREFIX>_MANIFEST environment override for
// the manifest path.
func (l *Loader[T]) WithEnvPrefix(prefix string) *Loader[T] {
	l.envPrefix = prefix
	return l
}

// WithStrict makes unknown factory names fail the load instead of
// being skipped with a warning.
func (l *Loader[T]) WithStrict() *Loader[T] {
	l.strict = true
	return l
}

// WithLogger sets a custom zap logger.
func (l *Loader[T]) WithLogger(logger *zap.Logger) *Loader[T] {
	l.logger = logger
	return l
}

// Load reads and parses the manifest without registering anything.
func (l *Loader[T]) Load() (*Manifest, error) {
	path := l.resolvePath()
	if path == "" {
		return nil, fmt.Errorf("no manifest path configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin manifest %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	l.logger.Info("plugin manifest loaded",
		zap.String("path", path),
		zap.Int("entries", len(m.Plugins)))
	return m, nil
}

// Populate loads the manifest and registers every enabled entry on the
// chain, in manifest order. Entries naming an unknown factory are
// skipped with a warning, or fail the whole load in strict mode.
// Duplicate handling follows the chain's own policy.
func (l *Loader[T]) Populate(chain *plugin.Chain[T]) error {
	m, err := l.Load()
	if err != nil {
		return err
	}
	return l.Apply(m, chain)
}

// Apply registers the entries of an already-parsed manifest.
func (l *Loader[T]) Apply(m *Manifest, chain *plugin.Chain[T]) error {
	for _, entry := range m.Plugins {
		if !entry.IsEnabled() {
			l.logger.Debug("manifest entry disabled, skipping",
				zap.String("identifier", entry.Identifier))
			continue
		}
		factory, ok := l.catalog.Lookup(entry.FactoryName())
		if !ok {
			if l.strict {
				return errUnknownFactory(entry)
			}
			l.logger.Warn("skipping manifest entry: unknown factory",
				zap.String("identifier", entry.Identifier),
				zap.String("factory", entry.FactoryName()))
			continue
		}
		source := entry.Source
		if source == "" {
			source = "manifest"
		}
		info := plugin.NewInfo(entry.Identifier, factory,
			plugin.WithTags(entry.Tags...),
			plugin.WithSource(source))
		if err := chain.Register(info); err != nil {
			return fmt.Errorf("failed to register manifest entry %q: %w", entry.Identifier, err)
		}
		l.logger.Info("plugin registered from manifest",
			zap.String("identifier", entry.Identifier),
			zap.String("factory", entry.FactoryName()))
	}
	return nil
}

// resolvePath picks the manifest path from the explicit setting or the
// environment override.
func (l *Loader[T]) resolvePath() string {
	if l.path != "" {
		return l.path
	}
	if l.envPrefix != "" {
		return os.Getenv(l.envPrefix + "_MANIFEST")
	}
	return ""
}
