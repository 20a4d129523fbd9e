package plugin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/BaSui01/pluginflow/internal/metrics"
)

const instrumentationName = "github.com/BaSui01/pluginflow/plugin"

// Manager is the generic resolution engine for one capability family.
// It owns its Chain, resolves identifiers through it, and instantiates
// (or reuses) the matching implementation.
//
// A manager is intended to live for the process duration: construct it
// once per family, register plugins at startup, then share it freely.
// Resolution after registration is safe for concurrent use.
type Manager[T any] struct {
	family  string
	chain   *Chain[T]
	logger  *zap.Logger
	tracer  trace.Tracer
	metrics *metrics.Collector

	// notFound lets a specialization surface a domain error for
	// unresolvable keys instead of the generic PLUGIN_NOT_FOUND.
	notFound func(family, key string) error

	reuse   bool
	cacheMu sync.RWMutex
	cache   map[string]T
	group   singleflight.Group
}

// ManagerOption configures a Manager.
type ManagerOption[T any] func(*managerOptions[T])

type managerOptions[T any] struct {
	chain            *Chain[T]
	logger           *zap.Logger
	tracer           trace.Tracer
	metrics          *metrics.Collector
	metricsNamespace string
	notFound         func(family, key string) error
	reuse            bool
	policy           DuplicatePolicy
}

// WithChain injects a pre-built chain, typically one that already links
// package-level contribution sources. Without it the manager creates
// its own empty chain.
func WithChain[T any](chain *Chain[T]) ManagerOption[T] {
	return func(o *managerOptions[T]) { o.chain = chain }
}

// WithLogger sets a custom zap logger. Defaults to a nop logger.
func WithLogger[T any](logger *zap.Logger) ManagerOption[T] {
	return func(o *managerOptions[T]) { o.logger = logger }
}

// WithTracer overrides the OpenTelemetry tracer used for resolution
// spans. Defaults to the globally registered tracer provider.
func WithTracer[T any](tracer trace.Tracer) ManagerOption[T] {
	return func(o *managerOptions[T]) { o.tracer = tracer }
}

// WithCollector attaches a metrics collector recording registrations,
// resolutions, instantiations, and cache traffic. Collectors may be
// shared between managers; metrics carry a family label.
func WithCollector[T any](c *metrics.Collector) ManagerOption[T] {
	return func(o *managerOptions[T]) { o.metrics = c }
}

// WithMetrics creates and attaches a Prometheus collector under the
// given namespace. Metric names register once per process, so each
// call needs a distinct namespace; use WithCollector to share one.
func WithMetrics[T any](namespace string) ManagerOption[T] {
	return func(o *managerOptions[T]) { o.metricsNamespace = namespace }
}

// WithNotFoundErr overrides the error returned for unresolvable keys.
func WithNotFoundErr[T any](fn func(family, key string) error) ManagerOption[T] {
	return func(o *managerOptions[T]) { o.notFound = fn }
}

// WithReuse enables the instance cache: each identifier is
// instantiated at most once and the instance is returned to every
// caller. Concurrent first requests are deduplicated.
func WithReuse[T any]() ManagerOption[T] {
	return func(o *managerOptions[T]) { o.reuse = true }
}

// WithDuplicatePolicy sets the duplicate policy of the manager-owned
// chain. Ignored when a chain is injected via WithChain.
func WithDuplicatePolicy[T any](p DuplicatePolicy) ManagerOption[T] {
	return func(o *managerOptions[T]) { o.policy = p }
}

// NewManager creates a manager for the named capability family.
func NewManager[T any](family string, opts ...ManagerOption[T]) *Manager[T] {
	o := managerOptions[T]{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(instrumentationName)
	}
	if o.metrics == nil && o.metricsNamespace != "" {
		o.metrics = metrics.NewCollector(o.metricsNamespace, o.logger)
	}
	chain := o.chain
	if chain == nil {
		chain = NewChain[T](family, WithPolicy(o.policy), WithChainLogger(o.logger))
	}
	return &Manager[T]{
		family:   family,
		chain:    chain,
		logger:   o.logger.With(zap.String("family", family)),
		tracer:   o.tracer,
		metrics:  o.metrics,
		notFound: o.notFound,
		reuse:    o.reuse,
		cache:    make(map[string]T),
	}
}

// Family returns the capability family name.
func (m *Manager[T]) Family() string { return m.family }

// Chain returns the manager's descriptor chain.
func (m *Manager[T]) Chain() *Chain[T] { return m.chain }

// Register adds a descriptor to the manager's chain.
func (m *Manager[T]) Register(info *Info[T]) error {
	if err := m.chain.Register(info); err != nil {
		return err
	}
	if m.metrics != nil {
		m.metrics.RecordRegistration(m.family)
	}
	m.logger.Info("plugin registered",
		zap.String("identifier", info.Identifier()),
		zap.String("source", info.Source()))
	return nil
}

// Get resolves key through the chain and returns a live instance.
// Fails with PLUGIN_NOT_FOUND (or the configured not-found error) when
// the key is unresolvable, and INSTANTIATION_FAILED when the factory
// fails or returns an invalid instance.
func (m *Manager[T]) Get(ctx context.Context, key string) (T, error) {
	ctx, span := m.tracer.Start(ctx, "plugin.get", trace.WithAttributes(
		attribute.String("plugin.family", m.family),
		attribute.String("plugin.key", key),
	))
	defer span.End()

	var zero T
	info, err := m.chain.Resolve(key)
	if err != nil {
		if m.metrics != nil {
			m.metrics.RecordResolution(m.family, metrics.OutcomeMiss)
		}
		if m.notFound != nil {
			err = m.notFound(m.family, key)
		}
		span.SetStatus(codes.Error, err.Error())
		m.logger.Debug("plugin not found", zap.String("key", key))
		return zero, err
	}
	if m.metrics != nil {
		m.metrics.RecordResolution(m.family, metrics.OutcomeHit)
	}
	span.SetAttributes(attribute.String("plugin.identifier", info.Identifier()))

	inst, err := m.instantiate(ctx, info)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return zero, err
	}
	return inst, nil
}

// First returns the first registered implementation by chain
// precedence. Which implementation that is depends only on
// registration order; the choice is deterministic and covered by
// tests. Fails with NO_PLUGIN_AVAILABLE on an empty chain.
func (m *Manager[T]) First(ctx context.Context) (T, error) {
	var zero T
	for info := range m.chain.All() {
		return m.instantiate(ctx, info)
	}
	return zero, NewError(ErrNoPluginAvailable,
		fmt.Sprintf("no %s plugin registered", m.family)).WithFamily(m.family)
}

// List enumerates all resolvable identifiers in chain precedence
// order, each exactly once.
func (m *Manager[T]) List() []string {
	return m.chain.Identifiers()
}

// Has reports whether key resolves to a registered plugin.
func (m *Manager[T]) Has(key string) bool {
	_, err := m.chain.Resolve(key)
	return err == nil
}

// Len returns the number of distinct registered identifiers.
func (m *Manager[T]) Len() int {
	return m.chain.Len()
}

// instantiate constructs an instance for info, consulting the instance
// cache when reuse is enabled. Concurrent first instantiation of the
// same identifier runs the factory exactly once.
func (m *Manager[T]) instantiate(ctx context.Context, info *Info[T]) (T, error) {
	var zero T
	if !m.reuse {
		return m.construct(ctx, info)
	}

	id := info.Identifier()
	m.cacheMu.RLock()
	inst, ok := m.cache[id]
	m.cacheMu.RUnlock()
	if ok {
		if m.metrics != nil {
			m.metrics.RecordCacheHit(m.family)
		}
		return inst, nil
	}
	if m.metrics != nil {
		m.metrics.RecordCacheMiss(m.family)
	}

	v, err, _ := m.group.Do(id, func() (any, error) {
		m.cacheMu.RLock()
		cached, hit := m.cache[id]
		m.cacheMu.RUnlock()
		if hit {
			return cached, nil
		}
		built, err := m.construct(ctx, info)
		if err != nil {
			return nil, err
		}
		m.cacheMu.Lock()
		m.cache[id] = built
		m.cacheMu.Unlock()
		return built, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// construct runs the factory with instrumentation.
func (m *Manager[T]) construct(ctx context.Context, info *Info[T]) (T, error) {
	start := time.Now()
	inst, err := info.Instantiate(ctx)
	if m.metrics != nil {
		m.metrics.RecordInstantiation(m.family, info.Identifier(), time.Since(start), err == nil)
	}
	if err != nil {
		m.logger.Warn("plugin instantiation failed",
			zap.String("identifier", info.Identifier()),
			zap.Error(err))
		return inst, err
	}
	m.logger.Debug("plugin instantiated",
		zap.String("identifier", info.Identifier()),
		zap.Duration("took", time.Since(start)))
	return inst, nil
}
