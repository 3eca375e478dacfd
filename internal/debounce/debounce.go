// Package debounce coalesces bursts of triggers into a single delayed run:
// each call to Trigger restarts the wait, and the function fires once after
// a quiescent period.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	fn    func()
	timer *time.Timer
}

func New(wait time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		wait: wait,
		fn:   fn,
	}
}

// Trigger schedules the function to run after the wait period, cancelling
// any pending run first.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, d.fn)
}

// Stop cancels a pending run, if any. It reports whether a run was pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}

// Flush runs the function immediately if a run is pending.
func (d *Debouncer) Flush() {
	if d.Stop() {
		d.fn()
	}
}
