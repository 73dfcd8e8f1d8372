package ratelimiter

import (
	"sync"
	"time"
)

// FixedDelay enforces a minimum pause between consecutive calls. It suits
// APIs that document a per-request courtesy delay rather than a quota.
// Safe for concurrent use; one instance may be shared across requests.
type FixedDelay struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewFixedDelay creates a FixedDelay with the given minimum gap between calls.
func NewFixedDelay(interval time.Duration) *FixedDelay {
	return &FixedDelay{interval: interval}
}

// WaitIfNeeded sleeps until at least the configured interval has passed since
// the previous call. The first call never waits.
func (d *FixedDelay) WaitIfNeeded() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.last.IsZero() {
		if sleep := d.interval - time.Since(d.last); sleep > 0 {
			time.Sleep(sleep)
		}
	}
	d.last = time.Now()
}
