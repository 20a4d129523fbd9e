// Package quick provides a convenience entry point for building a
// fully populated chef manager with minimal boilerplate. It delegates
// to cuisine, config, and the chefs sub-packages internally.
//
// Usage:
//
//	import "github.com/BaSui01/pluginflow/quick"
//
//	m, err := quick.New(quick.WithBuiltinChefs())
//	m, err := quick.New(quick.WithManifest("plugins.yaml"))
//	m, err := quick.New(quick.WithChef(myInfo), quick.WithReuse())
package quick

import (
	"go.uber.org/zap"

	"github.com/BaSui01/pluginflow/chefs/bake"
	"github.com/BaSui01/pluginflow/chefs/boost"
	"github.com/BaSui01/pluginflow/chefs/fry"
	"github.com/BaSui01/pluginflow/config"
	"github.com/BaSui01/pluginflow/cuisine"
	"github.com/BaSui01/pluginflow/plugin"
)

// Option configures the manager created by New.
type Option func(*options)

type options struct {
	logger       *zap.Logger
	infos        []*plugin.Info[cuisine.Chef]
	manifestPath string
	catalog      *config.Catalog[cuisine.Chef]
	cuisineOpts  []cuisine.Option
	builtins     bool
}

// WithChef registers a chef descriptor on the new manager. Repeatable;
// registration order is precedence order.
func WithChef(info *plugin.Info[cuisine.Chef]) Option {
	return func(o *options) { o.infos = append(o.infos, info) }
}

// WithBuiltinChefs registers the boost, fry, and bake chefs with
// default configurations, in that order.
func WithBuiltinChefs() Option {
	return func(o *options) { o.builtins = true }
}

// WithManifest loads additional chefs from a YAML manifest. Factory
// names resolve through the catalog set by WithCatalog, or the default
// catalog of built-in chefs.
func WithManifest(path string) Option {
	return func(o *options) { o.manifestPath = path }
}

// WithCatalog overrides the factory catalog used for manifest entries.
func WithCatalog(catalog *config.Catalog[cuisine.Chef]) Option {
	return func(o *options) { o.catalog = catalog }
}

// WithLogger sets a custom zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithReuse enables instance reuse on the manager.
func WithReuse() Option {
	return func(o *options) { o.cuisineOpts = append(o.cuisineOpts, cuisine.WithReuse()) }
}

// WithMetrics attaches a Prometheus collector under the namespace.
func WithMetrics(namespace string) Option {
	return func(o *options) { o.cuisineOpts = append(o.cuisineOpts, cuisine.WithMetrics(namespace)) }
}

// WithRejectDuplicates makes duplicate identifiers a registration
// error instead of being shadowed.
func WithRejectDuplicates() Option {
	return func(o *options) {
		o.cuisineOpts = append(o.cuisineOpts, cuisine.WithDuplicatePolicy(plugin.PolicyReject))
	}
}

// WithoutContributed ignores the package-level contribution chain.
func WithoutContributed() Option {
	return func(o *options) { o.cuisineOpts = append(o.cuisineOpts, cuisine.WithoutContributed()) }
}

// DefaultCatalog returns a catalog holding the built-in chef factories
// (boost, fry, bake) with default configurations.
func DefaultCatalog(logger *zap.Logger) *config.Catalog[cuisine.Chef] {
	catalog := config.NewCatalog[cuisine.Chef]()
	catalog.Register(boost.Identifier, boost.Info(boost.Config{}, logger).Instantiate)
	catalog.Register(fry.Identifier, fry.Info(fry.Config{}, logger).Instantiate)
	catalog.Register(bake.Identifier, bake.Info(bake.Config{}, logger).Instantiate)
	return catalog
}

// New builds a chef manager: explicit chefs first, then built-ins if
// requested, then manifest entries. Precedence follows that order.
func New(opts ...Option) (*cuisine.Manager, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	cuisineOpts := append([]cuisine.Option{cuisine.WithLogger(o.logger)}, o.cuisineOpts...)
	m := cuisine.NewManager(cuisineOpts...)

	for _, info := range o.infos {
		if err := m.Register(info); err != nil {
			return nil, err
		}
	}

	if o.builtins {
		for _, info := range []*plugin.Info[cuisine.Chef]{
			boost.Info(boost.Config{}, o.logger),
			fry.Info(fry.Config{}, o.logger),
			bake.Info(bake.Config{}, o.logger),
		} {
			if err := m.Register(info); err != nil {
				return nil, err
			}
		}
	}

	if o.manifestPath != "" {
		catalog := o.catalog
		if catalog == nil {
			catalog = DefaultCatalog(o.logger)
		}
		loader := config.NewLoader(catalog).
			WithManifestPath(o.manifestPath).
			WithLogger(o.logger)
		if err := loader.Populate(m.Chain()); err != nil {
			return nil, err
		}
	}

	return m, nil
}
