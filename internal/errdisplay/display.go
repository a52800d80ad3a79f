// Package errdisplay holds the transient form-error state: one message at a
// time, an optional highlighted field, and a timer that clears both after a
// fixed interval. Setting a new error rearms the timer.
package errdisplay

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/validation"
)

// DefaultDuration is how long an error stays visible unless the Display was
// constructed with an explicit duration.
const DefaultDuration = 3 * time.Second

type Display struct {
	mu       sync.Mutex
	duration time.Duration
	timer    *time.Timer
	// generation invalidates a pending timer callback after SetError,
	// ClearErrors or Close raced with it.
	generation uint64
	closed     bool

	message string
	fields  map[validation.Field]bool
}

func New(duration time.Duration) *Display {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Display{
		duration: duration,
		fields:   make(map[validation.Field]bool),
	}
}

// SetError replaces the current message, highlights the given field (none
// when empty) and arms the auto-clear timer. A pending timer is cancelled
// first, so the newest error always gets the full display interval.
func (d *Display) SetError(message string, field validation.Field) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.stopTimerLocked()
	d.resetLocked()

	d.message = message
	if field != validation.FieldNone {
		d.fields[field] = true
	}

	if message == "" {
		return
	}

	gen := d.generation
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.closed || d.generation != gen {
			return
		}
		d.resetLocked()
		d.timer = nil
	})
}

// ClearErrors wipes the message and field flags and cancels the pending
// timer.
func (d *Display) ClearErrors() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopTimerLocked()
	d.resetLocked()
}

// Close cancels the pending timer for good; the Display ignores further
// SetError calls. Call it on component teardown so a stale timer cannot act
// afterwards.
func (d *Display) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopTimerLocked()
	d.resetLocked()
	d.closed = true
}

// Current returns the visible message and a copy of the field flags.
func (d *Display) Current() (string, map[validation.Field]bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fields := make(map[validation.Field]bool, len(d.fields))
	for k, v := range d.fields {
		fields[k] = v
	}
	return d.message, fields
}

// HasError reports whether a message is currently visible.
func (d *Display) HasError() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.message != ""
}

func (d *Display) stopTimerLocked() {
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Display) resetLocked() {
	d.message = ""
	for k := range d.fields {
		delete(d.fields, k)
	}
}
