package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/ringlog/logger"
)

// Collector reads a Logger's stats snapshot on every scrape and emits
// const metrics. It implements prometheus.Collector.
type Collector struct {
	log *logger.Logger

	enqueued       *prometheus.Desc
	dropped        *prometheus.Desc
	transmitted    *prometheus.Desc
	transmitFailed *prometheus.Desc
	queueDepth     *prometheus.Desc
	queueCapacity  *prometheus.Desc
}

// NewCollector creates a collector for the given logger. Register it
// with a prometheus.Registerer to expose the metrics.
func NewCollector(l *logger.Logger) *Collector {
	return &Collector{
		log: l,
		enqueued: prometheus.NewDesc(
			"ringlog_enqueued_total",
			"Log lines accepted into the ring buffer",
			nil, nil,
		),
		dropped: prometheus.NewDesc(
			"ringlog_dropped_total",
			"Log lines that never reached the medium, by reason",
			[]string{"reason"}, nil,
		),
		transmitted: prometheus.NewDesc(
			"ringlog_transmitted_total",
			"Log lines successfully handed to the transmission medium",
			nil, nil,
		),
		transmitFailed: prometheus.NewDesc(
			"ringlog_transmit_failures_total",
			"Send attempts the transmission medium reported as failed",
			nil, nil,
		),
		queueDepth: prometheus.NewDesc(
			"ringlog_queue_depth",
			"Entries currently queued in the ring buffer",
			nil, nil,
		),
		queueCapacity: prometheus.NewDesc(
			"ringlog_queue_capacity",
			"Total ring buffer slots",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.enqueued
	ch <- c.dropped
	ch <- c.transmitted
	ch <- c.transmitFailed
	ch <- c.queueDepth
	ch <- c.queueCapacity
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.log.Stats()

	ch <- prometheus.MustNewConstMetric(c.enqueued, prometheus.CounterValue, float64(snap.Enqueued))
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(snap.Filtered), "filtered")
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(snap.DroppedFull), "queue_full")
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(snap.RetryLost), "retry_lost")
	ch <- prometheus.MustNewConstMetric(c.transmitted, prometheus.CounterValue, float64(snap.Transmitted))
	ch <- prometheus.MustNewConstMetric(c.transmitFailed, prometheus.CounterValue, float64(snap.TransmitFailed))
	ch <- prometheus.MustNewConstMetric(c.queueDepth, prometheus.GaugeValue, float64(c.log.Count()))
	ch <- prometheus.MustNewConstMetric(c.queueCapacity, prometheus.GaugeValue, float64(c.log.Capacity()))
}
