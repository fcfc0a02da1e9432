// Package metrics provides Prometheus metrics for the relay.
//
// Metrics are registered against a dedicated registry and exposed through
// the promhttp handler returned by Collector.Handler. All recording methods
// are safe to call on a nil receiver, so callers can wire metrics
// unconditionally and disable them via configuration.
package metrics
