package fsm

import (
	"sync"
	"time"
)

// TimerManager owns at most one pending one-shot timer. Starting a new
// timer replaces the previous one; a callback that fires after Cancel or
// after a newer Start finds its generation stale and does nothing.
type TimerManager struct {
	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
}

// Start schedules fn to run after d on its own goroutine, cancelling any
// previously scheduled timer.
func (t *TimerManager) Start(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		stale := t.gen != gen
		t.mu.Unlock()
		if stale {
			return
		}
		fn()
	})
}

// Cancel stops the pending timer, if any. Safe to call repeatedly.
func (t *TimerManager) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
}
