// Package pluginflow provides a top-level convenience entry point for
// building plugin managers with minimal boilerplate.
//
// Usage:
//
//	import "github.com/BaSui01/pluginflow"
//
//	m, err := pluginflow.New(pluginflow.WithBuiltinChefs())
//	m, err := pluginflow.New(pluginflow.WithManifest("plugins.yaml"))
//
// This is a thin wrapper around [quick.New]; both produce identical
// results. Use this package when you prefer the shorter import path.
// The generic core lives in [plugin]; the chef specialization in
// [cuisine].
package pluginflow

import (
	"github.com/BaSui01/pluginflow/cuisine"
	"github.com/BaSui01/pluginflow/quick"
)

// Option configures the manager created by [New].
type Option = quick.Option

// New creates a [cuisine.Manager] with minimal configuration.
func New(opts ...Option) (*cuisine.Manager, error) {
	return quick.New(opts...)
}

// Re-export quick shortcuts so callers never need to import quick/.

// WithChef registers a chef descriptor on the new manager.
var WithChef = quick.WithChef

// WithBuiltinChefs registers the boost, fry, and bake chefs.
var WithBuiltinChefs = quick.WithBuiltinChefs

// WithManifest loads chefs from a YAML manifest.
var WithManifest = quick.WithManifest

// WithCatalog overrides the factory catalog used for manifest entries.
var WithCatalog = quick.WithCatalog

// WithLogger sets a custom zap logger.
var WithLogger = quick.WithLogger

// WithReuse enables instance reuse on the manager.
var WithReuse = quick.WithReuse

// WithMetrics attaches a Prometheus collector under the namespace.
var WithMetrics = quick.WithMetrics

// WithRejectDuplicates makes duplicate identifiers a registration error.
var WithRejectDuplicates = quick.WithRejectDuplicates

// WithoutContributed ignores the package-level contribution chain.
var WithoutContributed = quick.WithoutContributed
