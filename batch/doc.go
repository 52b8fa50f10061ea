// Package batch converts many literals at once.
//
// Work is split into chunks that run on a bounded number of goroutines.
// Failures never stop a batch: each index gets either a value or the
// *numlit.NumError that explains it, and a roaring bitmap records which
// indices failed. Only context cancellation aborts a batch early.
//
//	res, err := batch.ParseInts(ctx, lines, func(o *batch.Options) {
//	    o.Base = 0
//	    o.BitSize = 32
//	})
//	for i, nerr := range res.Failures() {
//	    log.Printf("line %d: %v", i+1, nerr)
//	}
package batch
