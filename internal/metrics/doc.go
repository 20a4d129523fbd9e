// Package metrics provides Prometheus-based metrics collection for the
// plugin registry: registrations, resolutions, instantiations, and
// instance-cache traffic, grouped by capability family.
//
// The Collector uses promauto with a namespace per process, so wiring
// it into a manager is a one-line option; callers expose the default
// registry however they already do.
//
// This package is internal and should not be imported by external
// projects.
package metrics
