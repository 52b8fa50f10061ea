package batch

import (
	"runtime"

	"github.com/hupe1980/numlit"
)

// DefaultChunkSize is the number of literals a single goroutine converts.
const DefaultChunkSize = 256

// Options configures a batch conversion.
type Options struct {
	// Base is passed to every conversion. Default 0 (prefix-detected).
	Base int

	// BitSize is passed to every conversion. Default 0 (native width).
	BitSize int

	// Concurrency bounds the number of goroutines. Default GOMAXPROCS.
	Concurrency int

	// ChunkSize is the number of literals per unit of work.
	// Default DefaultChunkSize.
	ChunkSize int

	// Parser performs the conversions. Default is a Parser with the
	// package defaults.
	Parser *numlit.Parser

	// Logger receives one debug record per failure and a batch summary.
	// Default NoopLogger.
	Logger *numlit.Logger

	// Metrics receives one RecordBatch call per batch.
	// Default NoopMetricsCollector.
	Metrics numlit.MetricsCollector
}

func defaultOptions() Options {
	return Options{
		Concurrency: runtime.GOMAXPROCS(0),
		ChunkSize:   DefaultChunkSize,
	}
}

func buildOptions(optFns []func(*Options)) (Options, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.Logger == nil {
		opts.Logger = numlit.NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = numlit.NoopMetricsCollector{}
	}
	if opts.Parser == nil {
		p, err := numlit.NewParser()
		if err != nil {
			return Options{}, err
		}
		opts.Parser = p
	}
	return opts, nil
}
