// Package observability exports conversion metrics to Prometheus.
package observability

import (
	"errors"
	"time"

	"github.com/hupe1980/numlit"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements numlit.MetricsCollector on top of
// client_golang.
type PrometheusCollector struct {
	parses       *prometheus.CounterVec
	parseLatency *prometheus.HistogramVec
	batches      prometheus.Counter
	batchItems   *prometheus.CounterVec
	batchLatency prometheus.Histogram
}

var _ numlit.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates the collector and registers its metrics
// with reg. A nil reg registers with prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &PrometheusCollector{
		parses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "numlit",
			Name:      "parses_total",
			Help:      "Conversions by entry point and outcome.",
		}, []string{"func", "result"}),
		parseLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "numlit",
			Name:      "parse_duration_seconds",
			Help:      "Latency of single conversions.",
			Buckets:   prometheus.ExponentialBuckets(25e-9, 4, 8),
		}, []string{"func"}),
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "numlit",
			Name:      "batches_total",
			Help:      "Batches converted.",
		}),
		batchItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "numlit",
			Name:      "batch_literals_total",
			Help:      "Literals converted in batches by outcome.",
		}, []string{"result"}),
		batchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "numlit",
			Name:      "batch_duration_seconds",
			Help:      "Latency of batch conversions.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	for _, col := range []prometheus.Collector{c.parses, c.parseLatency, c.batches, c.batchItems, c.batchLatency} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordParse implements numlit.MetricsCollector.
func (c *PrometheusCollector) RecordParse(fn string, duration time.Duration, err error) {
	c.parses.WithLabelValues(fn, result(err)).Inc()
	c.parseLatency.WithLabelValues(fn).Observe(duration.Seconds())
}

// RecordBatch implements numlit.MetricsCollector.
func (c *PrometheusCollector) RecordBatch(count, failed int, duration time.Duration) {
	c.batches.Inc()
	c.batchItems.WithLabelValues("ok").Add(float64(count - failed))
	c.batchItems.WithLabelValues("failed").Add(float64(failed))
	c.batchLatency.Observe(duration.Seconds())
}

// result maps an error to a low-cardinality label: "ok" or the cause kind.
func result(err error) string {
	if err == nil {
		return "ok"
	}
	var nerr *numlit.NumError
	if errors.As(err, &nerr) && nerr.Cause != nil {
		return nerr.Kind().String()
	}
	return "other"
}
