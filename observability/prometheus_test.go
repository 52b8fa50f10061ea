package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/hupe1980/numlit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector_Parse(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	p, err := numlit.NewParser(numlit.WithMetricsCollector(c))
	require.NoError(t, err)

	_, _ = p.ParseInt("1", 10, 64)
	_, _ = p.ParseInt("2", 10, 64)
	_, _ = p.ParseInt("x", 10, 64)
	_, _ = p.ParseUint("256", 10, 8)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.parses.WithLabelValues("ParseInt", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.parses.WithLabelValues("ParseInt", "invalid_syntax")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.parses.WithLabelValues("ParseUint", "out_of_range_unsigned")))

	families, err := reg.Gather()
	require.NoError(t, err)

	hist := findMetric(t, families, "numlit_parse_duration_seconds", "ParseInt")
	assert.Equal(t, uint64(3), hist.GetHistogram().GetSampleCount())
}

func TestPrometheusCollector_Batch(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	c.RecordBatch(10, 3, 5*time.Millisecond)
	c.RecordBatch(5, 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.batches))
	assert.Equal(t, 12.0, testutil.ToFloat64(c.batchItems.WithLabelValues("ok")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.batchItems.WithLabelValues("failed")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.batchLatency))
}

func TestPrometheusCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	_, err = NewPrometheusCollector(reg)
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)
}

func TestResultLabel(t *testing.T) {
	assert.Equal(t, "ok", result(nil))
	assert.Equal(t, "other", result(errors.New("boom")))

	_, err := numlit.ParseInt("1", 1, 64)
	assert.Equal(t, "invalid_base", result(err))
}

func findMetric(t *testing.T, families []*dto.MetricFamily, name, fn string) *dto.Metric {
	t.Helper()
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "func" && lp.GetValue() == fn {
					return m
				}
			}
		}
	}
	t.Fatalf("metric %s{func=%q} not found", name, fn)
	return nil
}
