package practice

import (
	"sync"
	"time"
)

// Timer runs at most one scheduled task at a time. Scheduling a new task
// cancels the previous one.
type Timer struct {
	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// Schedule arms fn to run after d, replacing any pending task.
func (t *Timer) Schedule(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.seq++
	seq := t.seq
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		if t.seq != seq {
			// Replaced or stopped after firing began.
			t.mu.Unlock()
			return
		}
		t.timer = nil
		t.mu.Unlock()
		fn()
	})
}

// Stop cancels the pending task, if any.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.seq++
}

// Pending reports whether a task is armed and has not yet fired.
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}
