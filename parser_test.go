package numlit

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParser(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)
	assert.Equal(t, NativeBitSize, p.NativeBitSize())

	p, err = NewParser(WithNativeBitSize(32))
	require.NoError(t, err)
	assert.Equal(t, 32, p.NativeBitSize())

	for _, bits := range []int{0, 8, 16, 63, 128} {
		_, err = NewParser(WithNativeBitSize(bits))
		var target *ErrInvalidNativeBitSize
		require.ErrorAs(t, err, &target, "bits=%d", bits)
		assert.Equal(t, bits, target.BitSize)
	}
}

func TestParserNative32(t *testing.T) {
	p, err := NewParser(WithNativeBitSize(32))
	require.NoError(t, err)

	for _, tt := range parseInt32Tests {
		got, err := p.ParseInt(tt.in, 10, 0)
		checkInt(t, "ParseInt", tt, got, err)
	}
	for _, tt := range parseUint32Tests {
		got, err := p.ParseUint(tt.in, 10, 0)
		checkUint(t, "ParseUint", tt, got, err)
	}

	// Explicit widths are unaffected.
	v, err := p.ParseInt("4294967296", 10, 64)
	require.NoError(t, err)
	assert.Equal(t, int64(4294967296), v)

	u, err := p.ParseUint("4294967296", 10, 0)
	assert.ErrorIs(t, err, ErrRange)
	assert.Equal(t, uint64(math.MaxUint32), u)
}

func TestParserMetrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	p, err := NewParser(WithMetricsCollector(metrics))
	require.NoError(t, err)

	_, err = p.ParseInt("42", 10, 64)
	require.NoError(t, err)
	_, err = p.ParseUint("0x_ff", 0, 8)
	require.NoError(t, err)
	_, err = p.ParseInt("4_2", 10, 64)
	require.Error(t, err)
	_, err = p.ParseUint("256", 10, 8)
	require.Error(t, err)
	_, err = p.ParseUint("1", 40, 8)
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(5), stats.ParseCount)
	assert.Equal(t, int64(3), stats.ParseErrors)
	assert.Equal(t, int64(1), stats.SyntaxErrors)
	assert.Equal(t, int64(1), stats.RangeErrors)
	assert.GreaterOrEqual(t, stats.ParseAvgNanos, int64(0))
}

func TestParserNilErrorIsUntyped(t *testing.T) {
	p, err := NewParser(WithMetricsCollector(NoopMetricsCollector{}))
	require.NoError(t, err)

	_, err = p.ParseInt("1", 10, 64)
	assert.True(t, err == nil)

	_, err = ParseUint("1", 10, 64)
	assert.True(t, err == nil)
}

func TestParserConcurrent(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	p, err := NewParser(WithMetricsCollector(metrics))
	require.NoError(t, err)

	const workers, iterations = 8, 500

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				v, err := p.ParseInt("-0x7f", 0, 8)
				assert.NoError(t, err)
				assert.Equal(t, int64(-127), v)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, int64(workers*iterations), metrics.GetStats().ParseCount)
}

func TestBasicMetricsCollectorBatch(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	metrics.RecordBatch(10, 2, 0)
	metrics.RecordBatch(5, 0, 0)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.BatchCount)
	assert.Equal(t, int64(15), stats.BatchItems)
	assert.Equal(t, int64(2), stats.BatchFailed)
	assert.Equal(t, int64(0), stats.ParseAvgNanos)
}
