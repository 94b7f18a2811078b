package services

import (
	"sync"
	"sync/atomic"
	"time"
)

// FetchGuard stamps each fetch with a generation number so that a response
// arriving after a newer fetch was issued is discarded instead of
// overwriting fresher state.
type FetchGuard struct {
	gen atomic.Uint64
}

// Next issues a new generation, invalidating all earlier ones.
func (g *FetchGuard) Next() uint64 {
	return g.gen.Add(1)
}

// Latest reports whether gen is still the most recently issued generation.
func (g *FetchGuard) Latest(gen uint64) bool {
	return g.gen.Load() == gen
}

// Debouncer runs at most one pending function per interval. Each Trigger
// resets the timer, so only the last call within a burst fires.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
}

func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
