package numlit

import (
	"errors"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting conversion metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see the observability package).
type MetricsCollector interface {
	// RecordParse is called after each ParseInt/ParseUint on a Parser
	// configured with this collector. fn is "ParseInt" or "ParseUint",
	// err is nil on success and a *NumError otherwise.
	RecordParse(fn string, duration time.Duration, err error)

	// RecordBatch is called after a batch of literals was converted.
	// count is the number of literals, failed the number that did not convert.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordParse(string, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	ParseCount      atomic.Int64
	ParseErrors     atomic.Int64
	SyntaxErrors    atomic.Int64
	RangeErrors     atomic.Int64
	ParseTotalNanos atomic.Int64
	BatchCount      atomic.Int64
	BatchItems      atomic.Int64
	BatchFailed     atomic.Int64
}

// RecordParse implements MetricsCollector.
func (b *BasicMetricsCollector) RecordParse(_ string, duration time.Duration, err error) {
	b.ParseCount.Add(1)
	b.ParseTotalNanos.Add(duration.Nanoseconds())
	if err == nil {
		return
	}
	b.ParseErrors.Add(1)
	switch {
	case errors.Is(err, ErrSyntax):
		b.SyntaxErrors.Add(1)
	case errors.Is(err, ErrRange):
		b.RangeErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, _ time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ParseCount:    b.ParseCount.Load(),
		ParseErrors:   b.ParseErrors.Load(),
		SyntaxErrors:  b.SyntaxErrors.Load(),
		RangeErrors:   b.RangeErrors.Load(),
		ParseAvgNanos: b.getAvgParseNanos(),
		BatchCount:    b.BatchCount.Load(),
		BatchItems:    b.BatchItems.Load(),
		BatchFailed:   b.BatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgParseNanos() int64 {
	count := b.ParseCount.Load()
	if count == 0 {
		return 0
	}
	return b.ParseTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ParseCount    int64
	ParseErrors   int64
	SyntaxErrors  int64
	RangeErrors   int64
	ParseAvgNanos int64
	BatchCount    int64
	BatchItems    int64
	BatchFailed   int64
}
