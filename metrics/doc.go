// Package metrics exposes a Logger's pipeline counters as Prometheus
// metrics via a custom collector, so a host daemon can scrape drop
// and transmission rates without the core knowing about telemetry.
package metrics
