// Package resource bounds the resources a scan may use at once.
//
// The Controller governs three things:
//
//   - Reads: how many blobs are open concurrently (semaphore)
//   - Memory: how many blob bytes are held in memory at once (weighted semaphore)
//   - IO: how many bytes per second are pulled from storage (token bucket)
//
// # Usage
//
//	rc := resource.NewController(resource.Config{
//	    MaxConcurrentReads: 8,
//	    MemoryLimitBytes:   256 << 20,
//	    IOLimitBytesPerSec: 64 << 20,
//	})
//
//	if err := rc.AcquireRead(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseRead()
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully: they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
