// Package cartstore implements the client-side cart store: the ledger,
// the product hydrator and the persistence scheduler.
package cartstore

import (
	"sync"
	"time"

	"go.trai.ch/shopfront/internal/core/domain"
)

// Debouncer coalesces bursts of ledger mutations into a single snapshot
// write. Each Schedule call replaces the pending snapshot and restarts the
// delay timer, so the write that eventually fires always carries the most
// recent ledger state (last write wins).
type Debouncer struct {
	mu       sync.Mutex
	pending  []domain.CartLine
	dirty    bool
	timer    *time.Timer
	window   time.Duration
	callback func(lines []domain.CartLine)

	// writes carries one slot per armed timer, released when the timer is
	// stopped or its write completes. Flush waits on it so a write that
	// fired concurrently is on disk before Flush returns.
	writes sync.WaitGroup
}

// NewDebouncer creates a new debouncer with the given delay window and
// write callback.
func NewDebouncer(window time.Duration, callback func(lines []domain.CartLine)) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Schedule records the given snapshot as the pending write and restarts
// the delay timer. Intermediate snapshots scheduled within the window are
// never written.
func (d *Debouncer) Schedule(lines []domain.CartLine) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = lines
	d.dirty = true

	if d.timer != nil && d.timer.Stop() {
		// The stopped timer never fires, so its slot retires here.
		d.writes.Done()
	}
	d.writes.Add(1)
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the delay window expires.
func (d *Debouncer) fire() {
	defer d.writes.Done()

	d.mu.Lock()

	// Protects against a race with Flush.
	if !d.dirty {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	lines := d.pending
	d.pending = nil
	d.dirty = false
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		d.callback(lines)
	}
}

// Flush immediately writes any pending snapshot. It blocks until the
// callback completes, making it suitable for graceful shutdown where the
// write must finish before the process exits.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil && d.timer.Stop() {
		d.timer = nil
		d.writes.Done()
	}

	if !d.dirty {
		d.mu.Unlock()
		// The timer may have consumed the snapshot and still be writing
		// it on its own goroutine.
		d.writes.Wait()
		return
	}

	lines := d.pending
	d.pending = nil
	d.dirty = false
	d.mu.Unlock()

	if d.callback != nil {
		d.callback(lines)
	}
}
