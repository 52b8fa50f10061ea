package batch

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/numlit"
	"github.com/hupe1980/numlit/internal/conv"
	"golang.org/x/sync/errgroup"
)

// Integer is the set of result types a batch produces.
type Integer interface {
	~int64 | ~uint64
}

// Result holds the outcome of a batch conversion.
//
// Values, Errors and the input slice have the same length. For a failed
// index Values holds what the conversion returned (0, or the clamped bound
// on a range failure) and Errors holds the reason.
type Result[T Integer] struct {
	Values []T
	Errors []*numlit.NumError
	Failed *roaring.Bitmap
}

// Len returns the number of converted literals.
func (r *Result[T]) Len() int {
	return len(r.Values)
}

// FailedCount returns the number of literals that did not convert.
func (r *Result[T]) FailedCount() int {
	return int(r.Failed.GetCardinality())
}

// OK reports whether every literal converted.
func (r *Result[T]) OK() bool {
	return r.Failed.IsEmpty()
}

// Failures iterates the failed indices in ascending order.
func (r *Result[T]) Failures() iter.Seq2[int, *numlit.NumError] {
	return func(yield func(int, *numlit.NumError) bool) {
		it := r.Failed.Iterator()
		for it.HasNext() {
			i := int(it.Next())
			if !yield(i, r.Errors[i]) {
				return
			}
		}
	}
}

// Err joins all failures into one error, or returns nil.
func (r *Result[T]) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, 0, r.FailedCount())
	for _, nerr := range r.Failures() {
		errs = append(errs, nerr)
	}
	return errors.Join(errs...)
}

// ParseInts converts every literal with Parser.ParseInt.
//
// The returned error is non-nil only when ctx is done before all literals
// were converted or the input has more than 2^32 entries.
func ParseInts(ctx context.Context, literals []string, optFns ...func(*Options)) (*Result[int64], error) {
	opts, err := buildOptions(optFns)
	if err != nil {
		return nil, err
	}
	return run(ctx, literals, opts, func(s string) (int64, error) {
		return opts.Parser.ParseInt(s, opts.Base, opts.BitSize)
	})
}

// ParseUints converts every literal with Parser.ParseUint.
//
// Errors are as for ParseInts.
func ParseUints(ctx context.Context, literals []string, optFns ...func(*Options)) (*Result[uint64], error) {
	opts, err := buildOptions(optFns)
	if err != nil {
		return nil, err
	}
	return run(ctx, literals, opts, func(s string) (uint64, error) {
		return opts.Parser.ParseUint(s, opts.Base, opts.BitSize)
	})
}

func run[T Integer](ctx context.Context, literals []string, opts Options, parse func(string) (T, error)) (*Result[T], error) {
	// Failed indices are stored as uint32.
	if _, err := conv.IntToUint32(len(literals)); err != nil {
		return nil, fmt.Errorf("batch: too many literals: %w", err)
	}

	start := time.Now()

	res := &Result[T]{
		Values: make([]T, len(literals)),
		Errors: make([]*numlit.NumError, len(literals)),
		Failed: roaring.New(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for lo := 0; lo < len(literals); lo += opts.ChunkSize {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+opts.ChunkSize, len(literals))

		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				v, err := parse(literals[i])
				res.Values[i] = v
				if err != nil {
					var nerr *numlit.NumError
					if !errors.As(err, &nerr) {
						return err
					}
					res.Errors[i] = nerr
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, nerr := range res.Errors {
		if nerr != nil {
			res.Failed.Add(uint32(i)) // nolint gosec
			opts.Logger.LogFailure(ctx, i, nerr)
		}
	}

	failed := res.FailedCount()
	opts.Metrics.RecordBatch(len(literals), failed, time.Since(start))
	opts.Logger.LogBatch(ctx, len(literals), failed)

	return res, nil
}
