// Package scan converts the literals stored in blobs.
//
// A Scanner reads each Target through its blobstore.Store, bounded by an
// internal resource controller, converts the literals with the batch
// package and returns one batch.Report per target.
package scan

import (
	"context"
	"fmt"
	"slices"

	"github.com/hupe1980/numlit"
	"github.com/hupe1980/numlit/batch"
	"github.com/hupe1980/numlit/blobstore"
	"github.com/hupe1980/numlit/internal/resource"
	"golang.org/x/sync/errgroup"
)

// Target names one blob to scan.
type Target struct {
	// Store holds the blob.
	Store blobstore.Store
	// Name is the blob name within Store.
	Name string
	// Source labels the target in reports and logs. Defaults to Name.
	Source string
}

func (t Target) source() string {
	if t.Source != "" {
		return t.Source
	}
	return t.Name
}

// Outcome is the result of scanning one target. Exactly one of Report
// and Err is set.
type Outcome struct {
	Source string
	Report *batch.Report
	Err    error
}

// Options configures a Scanner.
type Options struct {
	// Unsigned selects ParseUint instead of ParseInt.
	Unsigned bool

	// Batch configures conversion of each target's literals. The batch
	// Logger is always replaced by Logger scoped to the target.
	Batch []func(*batch.Options)

	// Limits bounds concurrent reads, memory and IO throughput.
	Limits resource.Config

	// Logger receives one record per target. Default NoopLogger.
	Logger *numlit.Logger
}

// Scanner scans targets. It is safe for concurrent use.
type Scanner struct {
	opts Options
	rc   *resource.Controller
}

// New creates a Scanner.
func New(optFns ...func(o *Options)) *Scanner {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = numlit.NoopLogger()
	}

	return &Scanner{
		opts: opts,
		rc:   resource.NewController(opts.Limits),
	}
}

// Scan scans all targets concurrently. Outcomes are in target order.
// A failing target does not stop the others; the returned error is non-nil
// only when ctx is done.
func (s *Scanner) Scan(ctx context.Context, targets []Target) ([]Outcome, error) {
	outcomes := make([]Outcome, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(int(s.rc.Config().MaxConcurrentReads))

	for i, t := range targets {
		g.Go(func() error {
			rep, err := s.ScanOne(gctx, t)
			outcomes[i] = Outcome{Source: t.source(), Report: rep, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// literalOverhead approximates the heap bytes one literal costs beyond its
// text: the string header, the value and error slots of the batch result
// and the decimal value of the report.
const literalOverhead = 64

// ScanOne scans a single target.
//
// The target's memory reservation grows as the blob is read, decompressed
// and split, and is held until the report is built.
func (s *Scanner) ScanOne(ctx context.Context, t Target) (*batch.Report, error) {
	src := t.source()
	logger := s.opts.Logger.WithSource(src)

	mem := &reservation{rc: s.rc, logger: logger}
	defer mem.release()

	literals, err := s.read(ctx, t, mem)
	if err != nil {
		logger.LogScan(ctx, err)
		return nil, err
	}
	logger.WithCount(len(literals)).LogScan(ctx, nil)

	batchOpts := append(slices.Clone(s.opts.Batch), func(o *batch.Options) {
		o.Logger = logger
	})

	if s.opts.Unsigned {
		res, err := batch.ParseUints(ctx, literals, batchOpts...)
		if err != nil {
			return nil, err
		}
		return batch.NewReport(src, res), nil
	}

	res, err := batch.ParseInts(ctx, literals, batchOpts...)
	if err != nil {
		return nil, err
	}
	return batch.NewReport(src, res), nil
}

func (s *Scanner) read(ctx context.Context, t Target, mem *reservation) ([]string, error) {
	if !s.rc.TryAcquireRead() {
		mem.logger.DebugContext(ctx, "waiting for read slot")
		if err := s.rc.AcquireRead(ctx); err != nil {
			return nil, err
		}
	}
	defer s.rc.ReleaseRead()

	b, err := t.Store.Open(ctx, t.Name)
	if err != nil {
		return nil, fmt.Errorf("scan: open %s: %w", t.source(), err)
	}
	defer b.Close()

	size := b.Size()
	if err := mem.growTo(ctx, size); err != nil {
		return nil, err
	}
	if err := s.rc.WaitIO(ctx, size); err != nil {
		return nil, err
	}

	raw, err := blobstore.ReadAll(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("scan: read %s: %w", t.source(), err)
	}

	comp := blobstore.CompressionFor(t.Name)
	data, err := blobstore.Decompress(comp, raw)
	if err != nil {
		return nil, fmt.Errorf("scan: decode %s: %w", t.source(), err)
	}
	if comp != blobstore.CompressionNone {
		if err := mem.growTo(ctx, size+int64(len(data))); err != nil {
			return nil, err
		}
	}

	literals := blobstore.SplitLiterals(data)
	if err := mem.growTo(ctx, mem.held+literalBytes(literals)); err != nil {
		return nil, err
	}
	return literals, nil
}

func literalBytes(literals []string) int64 {
	n := int64(len(literals)) * literalOverhead
	for _, l := range literals {
		n += int64(len(l))
	}
	return n
}

// reservation is the memory one target holds on the controller.
type reservation struct {
	rc     *resource.Controller
	logger *numlit.Logger
	held   int64
}

func (r *reservation) growTo(ctx context.Context, want int64) error {
	if r.rc.TryGrowMemory(r.held, want) {
		r.held = max(r.held, want)
		return nil
	}

	r.logger.DebugContext(ctx, "waiting for memory", "held", r.held, "want", want)
	if err := r.rc.GrowMemory(ctx, r.held, want); err != nil {
		// GrowMemory gave the held bytes back.
		r.held = 0
		return err
	}
	r.held = want
	return nil
}

func (r *reservation) release() {
	r.rc.ReleaseMemory(r.held)
	r.held = 0
}

// Summarize merges the reports of all successful outcomes into one report
// labeled source. Failed targets are skipped.
func Summarize(source string, outcomes []Outcome) *batch.Report {
	sum := &batch.Report{Source: source, Values: []string{}}
	for _, o := range outcomes {
		if o.Report != nil {
			sum.Merge(o.Report)
		}
	}
	return sum
}
