package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Resolution outcomes.
const (
	OutcomeHit  = "hit"
	OutcomeMiss = "miss"
)

// Collector records registry metrics.
type Collector struct {
	registrationsTotal    *prometheus.CounterVec
	resolutionsTotal      *prometheus.CounterVec
	instantiationsTotal   *prometheus.CounterVec
	instantiationDuration *prometheus.HistogramVec

	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec

	logger *zap.Logger
}

// NewCollector creates a metrics collector. Metric names are prefixed
// with namespace; all metrics register on the default registry via
// promauto, so use one collector (and namespace) per process.
func NewCollector(namespace string, logger *zap.Logger) *Collector {
	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.registrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plugin_registrations_total",
			Help:      "Total number of plugin registrations",
		},
		[]string{"family"},
	)

	c.resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plugin_resolutions_total",
			Help:      "Total number of identifier resolutions",
		},
		[]string{"family", "outcome"},
	)

	c.instantiationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plugin_instantiations_total",
			Help:      "Total number of plugin instantiations",
		},
		[]string{"family", "identifier", "status"},
	)

	c.instantiationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plugin_instantiation_duration_seconds",
			Help:      "Plugin factory duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"family", "identifier"},
	)

	c.cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plugin_cache_hits_total",
			Help:      "Instance cache hits",
		},
		[]string{"family"},
	)

	c.cacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plugin_cache_misses_total",
			Help:      "Instance cache misses",
		},
		[]string{"family"},
	)

	c.logger.Debug("metrics collector initialized", zap.String("namespace", namespace))
	return c
}

// RecordRegistration counts one plugin registration.
func (c *Collector) RecordRegistration(family string) {
	c.registrationsTotal.WithLabelValues(family).Inc()
}

// RecordResolution counts one identifier lookup with its outcome.
func (c *Collector) RecordResolution(family, outcome string) {
	c.resolutionsTotal.WithLabelValues(family, outcome).Inc()
}

// RecordInstantiation counts one factory invocation and its duration.
func (c *Collector) RecordInstantiation(family, identifier string, took time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	c.instantiationsTotal.WithLabelValues(family, identifier, status).Inc()
	c.instantiationDuration.WithLabelValues(family, identifier).Observe(took.Seconds())
}

// RecordCacheHit counts one instance-cache hit.
func (c *Collector) RecordCacheHit(family string) {
	c.cacheHits.WithLabelValues(family).Inc()
}

// RecordCacheMiss counts one instance-cache miss.
func (c *Collector) RecordCacheMiss(family string) {
	c.cacheMisses.WithLabelValues(family).Inc()
}
