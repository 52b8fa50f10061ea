// Command numlit converts integer literals given on the command line or
// stored in local files, S3 or MinIO, and prints a report.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/hupe1980/numlit"
	"github.com/hupe1980/numlit/batch"
	"github.com/hupe1980/numlit/codec"
	"github.com/hupe1980/numlit/config"
	"github.com/hupe1980/numlit/internal/resource"
	"github.com/hupe1980/numlit/observability"
	"github.com/hupe1980/numlit/scan"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const version = "numlit 0.1.0"

const usage = `numlit converts integer literals.

Usage:
  numlit parse [options] [--] <literal>...
  numlit scan [options] [--] <uri>...
  numlit -h | --help
  numlit --version

Arguments:
  <literal>  An integer literal such as 42, -0x_7f or 0b1010.
  <uri>      A file path, file://path, s3://bucket/key or minio://bucket/key.
             Names ending in .zst or .lz4 are decompressed.

Options:
  -h --help              Show this screen.
  --version              Show version.
  -b --base=<n>          Radix, 0 (from prefix) or 2 to 36.
  --bits=<n>             Result width, 0 (native) to 64.
  -u --unsigned          Reject signs and use the unsigned range.
  -c --config=<path>     YAML configuration file.
  -o --out=<uri>         Write the report to <uri> instead of stdout.
  -f --format=<name>     Report codec: json, go-json or go-json-indent.
  --metrics-addr=<addr>  Serve Prometheus metrics on <addr> while running.
  --log-level=<level>    debug, info, warn or error.
  --log-format=<format>  text or json.
`

// errFailures signals that at least one literal or target failed.
var errFailures = errors.New("some literals did not convert")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}
	err := run(ctx, parser, os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, errFailures):
		os.Exit(1)
	default:
		log.Printf("numlit: %v", err)
		os.Exit(2)
	}
}

func run(ctx context.Context, p *docopt.Parser, argv []string, stdout io.Writer) error {
	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	format, ok := codec.ByName(cfg.Scan.Format)
	if !ok {
		return fmt.Errorf("unknown format %q", cfg.Scan.Format)
	}

	logger := newLogger(cfg)

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewPrometheusCollector(reg)
	if err != nil {
		return err
	}
	if cfg.Metrics.Addr != "" {
		shutdown := serveMetrics(cfg.Metrics.Addr, reg, logger)
		defer shutdown()
	}

	parser, err := numlit.NewParser(
		numlit.WithNativeBitSize(cfg.Parse.NativeBitSize),
		numlit.WithMetricsCollector(metrics),
	)
	if err != nil {
		return err
	}

	batchOpts := func(o *batch.Options) {
		o.Base = cfg.Parse.Base
		o.BitSize = cfg.Parse.BitSize
		o.Parser = parser
		o.Logger = logger
		o.Metrics = metrics
		if cfg.Scan.Concurrency > 0 {
			o.Concurrency = cfg.Scan.Concurrency
		}
		if cfg.Scan.ChunkSize > 0 {
			o.ChunkSize = cfg.Scan.ChunkSize
		}
	}

	st := newStores(cfg)

	var (
		out    any
		failed bool
	)

	switch {
	case isSet(opts, "parse"):
		literals, _ := opts["<literal>"].([]string)
		rep, err := parseLiterals(ctx, literals, cfg.Parse.Unsigned, batchOpts)
		if err != nil {
			return err
		}
		out, failed = rep, rep.Failed > 0
	case isSet(opts, "scan"):
		uris, _ := opts["<uri>"].([]string)
		targets, err := st.targets(ctx, uris)
		if err != nil {
			return err
		}

		sc := scan.New(func(o *scan.Options) {
			o.Unsigned = cfg.Parse.Unsigned
			o.Batch = []func(*batch.Options){batchOpts}
			o.Logger = logger
			o.Limits = resource.Config{
				MaxConcurrentReads: cfg.Scan.MaxConcurrentReads,
				MemoryLimitBytes:   cfg.Scan.MemoryLimitBytes,
				IOLimitBytesPerSec: cfg.Scan.IOLimitBytesPerSec,
			}
		})

		outcomes, err := sc.Scan(ctx, targets)
		if err != nil {
			return err
		}
		res := newScanOutput(outcomes)
		out, failed = res, res.Summary.Failed > 0 || len(res.Errors) > 0
	}

	data, err := format.Marshal(out)
	if err != nil {
		return err
	}

	if dst, _ := opts["--out"].(string); dst != "" {
		if err := st.put(ctx, dst, data); err != nil {
			return err
		}
		logger.InfoContext(ctx, "report written", "out", dst, "format", format.Name(), "bytes", len(data))
	} else {
		if _, err := stdout.Write(append(data, '\n')); err != nil {
			return err
		}
	}

	if failed {
		return errFailures
	}
	return nil
}

func parseLiterals(ctx context.Context, literals []string, unsigned bool, batchOpts func(*batch.Options)) (*batch.Report, error) {
	if unsigned {
		res, err := batch.ParseUints(ctx, literals, batchOpts)
		if err != nil {
			return nil, err
		}
		return batch.NewReport("", res), nil
	}

	res, err := batch.ParseInts(ctx, literals, batchOpts)
	if err != nil {
		return nil, err
	}
	return batch.NewReport("", res), nil
}

type scanError struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

type scanOutput struct {
	Reports []*batch.Report `json:"reports"`
	Errors  []scanError     `json:"errors,omitempty"`
	Summary *batch.Report   `json:"summary"`
}

func newScanOutput(outcomes []scan.Outcome) *scanOutput {
	out := &scanOutput{
		Reports: make([]*batch.Report, 0, len(outcomes)),
		Summary: scan.Summarize("", outcomes),
	}
	// Per-target values are already in Reports.
	out.Summary.Values = nil

	for _, o := range outcomes {
		if o.Err != nil {
			out.Errors = append(out.Errors, scanError{Source: o.Source, Error: o.Err.Error()})
			continue
		}
		out.Reports = append(out.Reports, o.Report)
	}
	return out
}

func newLogger(cfg config.Config) *numlit.Logger {
	if cfg.Log.Format == "json" {
		return numlit.NewJSONLogger(cfg.LogLevel())
	}
	return numlit.NewTextLogger(cfg.LogLevel())
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *numlit.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
