package cuisine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BaSui01/pluginflow/plugin"
)

// contributed is the package-level contribution chain. Chef packages
// register descriptors here at process startup (an explicit call, not
// an init side effect) and every manager links it in unless built with
// WithoutContributed. Tests that need isolation opt out.
var contributed = plugin.NewChain[Chef](Family + "-contrib")

// Contribute registers a chef descriptor on the package-level chain so
// managers constructed later pick it up.
func Contribute(info *plugin.Info[Chef]) error {
	return contributed.Register(info)
}

// ContributedChain returns the package-level contribution chain.
func ContributedChain() *plugin.Chain[Chef] {
	return contributed
}

// Manager selects among registered Chef implementations. It wraps a
// generic plugin.Manager and adds the cuisine-specific surface:
// AChef, Unavailable, and the domain not-found message.
type Manager struct {
	core *plugin.Manager[Chef]
}

// Option configures a cuisine Manager.
type Option func(*options)

type options struct {
	core            []plugin.ManagerOption[Chef]
	skipContributed bool
}

// WithLogger sets a custom zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.core = append(o.core, plugin.WithLogger[Chef](logger)) }
}

// WithReuse enables instance reuse: each chef is instantiated once and
// shared between callers.
func WithReuse() Option {
	return func(o *options) { o.core = append(o.core, plugin.WithReuse[Chef]()) }
}

// WithMetrics attaches a Prometheus collector under the namespace.
func WithMetrics(namespace string) Option {
	return func(o *options) { o.core = append(o.core, plugin.WithMetrics[Chef](namespace)) }
}

// WithDuplicatePolicy sets the duplicate policy of the manager's chain.
func WithDuplicatePolicy(p plugin.DuplicatePolicy) Option {
	return func(o *options) { o.core = append(o.core, plugin.WithDuplicatePolicy[Chef](p)) }
}

// WithoutContributed builds a manager that ignores the package-level
// contribution chain. Use this for isolated managers in tests.
func WithoutContributed() Option {
	return func(o *options) { o.skipContributed = true }
}

// NewManager creates a chef manager. Unless WithoutContributed is
// given, the package-level contribution chain is linked at
// construction time. Precedence stays strictly chronological:
// contributions made before the manager existed come first, direct
// registrations made afterwards come after, and on conflicting
// identifiers the first registration wins.
func NewManager(opts ...Option) *Manager {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	coreOpts := append([]plugin.ManagerOption[Chef]{
		plugin.WithNotFoundErr[Chef](notFoundErr),
	}, o.core...)
	m := &Manager{core: plugin.NewManager[Chef](Family, coreOpts...)}
	if !o.skipContributed {
		m.core.Chain().AddSource(contributed)
	}
	return m
}

// Register adds a chef descriptor to the manager's own chain.
func (m *Manager) Register(info *plugin.Info[Chef]) error {
	return m.core.Register(info)
}

// Get returns the chef registered under key.
func (m *Manager) Get(ctx context.Context, key string) (Chef, error) {
	return m.core.Get(ctx, key)
}

// AChef returns some registered chef: the first by chain precedence,
// which is registration order. The choice is deterministic and covered
// by tests. Fails with NO_PLUGIN_AVAILABLE when no chef is registered.
func (m *Manager) AChef(ctx context.Context) (Chef, error) {
	return m.core.First(ctx)
}

// List enumerates registered chef identifiers in precedence order.
func (m *Manager) List() []string {
	return m.core.List()
}

// Has reports whether key resolves to a registered chef.
func (m *Manager) Has(key string) bool {
	return m.core.Has(key)
}

// Len returns the number of distinct registered chefs.
func (m *Manager) Len() int {
	return m.core.Len()
}

// Chain exposes the manager's descriptor chain for composition.
func (m *Manager) Chain() *plugin.Chain[Chef] {
	return m.core.Chain()
}

// Unavailable is the explicit failure path: it deterministically
// returns the domain error for "no chef available for key". Callers
// use it when they need the failure without attempting resolution.
func (m *Manager) Unavailable(key string) error {
	msg := "no chef registered"
	if key != "" {
		msg = fmt.Sprintf("no chef is found for %q", key)
	}
	return plugin.NewError(plugin.ErrNoPluginAvailable, msg).
		WithFamily(Family).WithKey(key)
}

// notFoundErr gives unresolvable lookups a cuisine-flavored message
// while keeping the PLUGIN_NOT_FOUND code callers test against.
func notFoundErr(family, key string) error {
	return plugin.NewError(plugin.ErrPluginNotFound,
		fmt.Sprintf("no chef is found for %q", key)).
		WithFamily(family).WithKey(key)
}
