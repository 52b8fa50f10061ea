package numlit

type options struct {
	nativeBitSize    int
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		nativeBitSize: NativeBitSize,
	}
}

// Option configures a Parser.
type Option func(*options)

// WithNativeBitSize sets the width that a bit size of 0 resolves to.
//
// Only 32 and 64 are accepted; NewParser rejects anything else with
// *ErrInvalidNativeBitSize. The default is NativeBitSize.
//
// Example:
//
//	p, _ := numlit.NewParser(numlit.WithNativeBitSize(32))
//	_, err := p.ParseInt("4294967296", 10, 0) // out of range for 32 bits
func WithNativeBitSize(bits int) Option {
	return func(o *options) {
		o.nativeBitSize = bits
	}
}

// WithMetricsCollector configures a collector that observes every call.
// Pass nil to disable collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &numlit.BasicMetricsCollector{}
//	p, _ := numlit.NewParser(numlit.WithMetricsCollector(metrics))
//	// ... parse ...
//	stats := metrics.GetStats()
//	fmt.Printf("parses: %d, syntax errors: %d\n", stats.ParseCount, stats.SyntaxErrors)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}
