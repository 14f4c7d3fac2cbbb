package loader

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of write notifications into a single callback
type Debouncer interface {
	Trigger()
	Stop()
}

// debouncer implements the Debouncer interface
type debouncer struct {
	duration time.Duration
	callback func(events int)
	timer    *time.Timer
	events   int
	mu       sync.Mutex
	stopped  bool
}

// NewDebouncer creates a Debouncer that calls callback with the number of
// coalesced events once no new event arrived for duration
func NewDebouncer(duration time.Duration, callback func(events int)) Debouncer {
	return &debouncer{
		duration: duration,
		callback: callback,
	}
}

// Trigger records an event and restarts the quiet period
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.events++

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.duration, d.fire)
}

// Stop cancels any pending callback; later triggers are ignored
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.events = 0
}

func (d *debouncer) fire() {
	d.mu.Lock()

	if d.stopped || d.events == 0 {
		d.mu.Unlock()
		return
	}

	events := d.events
	d.events = 0
	d.timer = nil

	d.mu.Unlock()

	d.callback(events)
}
