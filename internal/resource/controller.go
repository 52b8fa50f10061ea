package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxConcurrentReads is the maximum number of blobs read at once.
	// If 0, defaults to 1.
	MaxConcurrentReads int64

	// MemoryLimitBytes bounds the blob bytes held in memory at once.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// IOLimitBytesPerSec is the maximum read throughput.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages scan resources (reads, memory, IO).
type Controller struct {
	cfg Config

	readSem *semaphore.Weighted

	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	ioLimiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentReads <= 0 {
		cfg.MaxConcurrentReads = 1
	}

	c := &Controller{
		cfg:     cfg,
		readSem: semaphore.NewWeighted(cfg.MaxConcurrentReads),
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), burst(cfg.IOLimitBytesPerSec))
	}

	return c
}

func burst(limit int64) int {
	const maxBurst = 1 << 30
	if limit > maxBurst {
		return maxBurst
	}
	return int(limit)
}

// Config returns the effective limits.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// AcquireRead reserves a read slot, blocking until one is free or ctx is done.
func (c *Controller) AcquireRead(ctx context.Context) error {
	if c == nil {
		return ctx.Err()
	}
	return c.readSem.Acquire(ctx, 1)
}

// TryAcquireRead reserves a read slot without blocking.
func (c *Controller) TryAcquireRead() bool {
	if c == nil {
		return true
	}
	return c.readSem.TryAcquire(1)
}

// ReleaseRead releases a read slot.
func (c *Controller) ReleaseRead() {
	if c == nil {
		return
	}
	c.readSem.Release(1)
}

// memWeight clamps a request to the limit so that a single blob larger
// than the limit can still be processed, alone.
func (c *Controller) memWeight(bytes int64) int64 {
	if c.cfg.MemoryLimitBytes > 0 && bytes > c.cfg.MemoryLimitBytes {
		return c.cfg.MemoryLimitBytes
	}
	return bytes
}

// GrowMemory grows a reservation of held bytes to want bytes, blocking
// while the limit would be exceeded. A new reservation has held 0. It is
// a no-op when want <= held. Reservations above the limit take the whole
// limit.
//
// When the growth is not available at once, the held bytes are returned
// before blocking, so that callers growing in steps cannot deadlock each
// other. If ctx is done meanwhile the whole reservation is gone and the
// caller holds nothing.
func (c *Controller) GrowMemory(ctx context.Context, held, want int64) error {
	if c == nil || want <= held {
		return nil
	}
	if c.TryGrowMemory(held, want) {
		return nil
	}

	c.ReleaseMemory(held)
	if err := c.memSem.Acquire(ctx, c.memWeight(want)); err != nil {
		return err
	}
	c.memUsed.Add(want)
	return nil
}

// TryGrowMemory grows a reservation of held bytes to want bytes without
// blocking. On false the reservation is unchanged.
func (c *Controller) TryGrowMemory(held, want int64) bool {
	if c == nil || want <= held {
		return true
	}

	if c.memSem != nil {
		delta := c.memWeight(want) - c.memWeight(held)
		if delta > 0 && !c.memSem.TryAcquire(delta) {
			return false
		}
	}

	c.memUsed.Add(want - held)
	return true
}

// ReleaseMemory releases memory reserved with the same byte count.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	// Usage drops before the capacity is handed on, so it never counts
	// a reservation twice.
	c.memUsed.Add(-bytes)
	if c.memSem != nil {
		c.memSem.Release(c.memWeight(bytes))
	}
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// WaitIO waits until the IO limit allows reading bytes. Large requests are
// split into burst-sized waits.
func (c *Controller) WaitIO(ctx context.Context, bytes int64) error {
	if c == nil || c.ioLimiter == nil {
		return ctx.Err()
	}

	b := int64(c.ioLimiter.Burst())
	for bytes > 0 {
		n := min(bytes, b)
		if err := c.ioLimiter.WaitN(ctx, int(n)); err != nil {
			return err
		}
		bytes -= n
	}
	return nil
}
