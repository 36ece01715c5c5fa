package game

// timer is a single pending callback.
type timer struct {
	remaining float64
	fn        func()
}

// Timers is a scheduler driven by simulated time. Callbacks registered
// with After fire exactly once, during the Advance call in which their
// delay elapses. Callbacks may schedule further timers; those start
// counting from the next Advance.
type Timers struct {
	pending []timer
}

// NewTimers creates an empty timer set.
func NewTimers() *Timers {
	return &Timers{}
}

// After schedules fn to run once delay simulated seconds have passed.
// A nil fn is ignored. A non-positive delay fires on the next Advance.
func (t *Timers) After(delay float64, fn func()) {
	if fn == nil {
		return
	}
	t.pending = append(t.pending, timer{remaining: delay, fn: fn})
}

// Advance moves simulated time forward by dt and fires every timer
// that comes due, in the order they were scheduled. Due timers are
// removed before their callbacks run, so a callback scheduling a new
// timer never sees it fire in the same call.
func (t *Timers) Advance(dt float64) {
	var due []func()
	kept := t.pending[:0]
	for _, tm := range t.pending {
		tm.remaining -= dt
		if tm.remaining <= 0 {
			due = append(due, tm.fn)
		} else {
			kept = append(kept, tm)
		}
	}
	t.pending = kept

	for _, fn := range due {
		fn()
	}
}

// Pending reports how many timers are still waiting to fire.
func (t *Timers) Pending() int {
	return len(t.pending)
}

// Reset discards all pending timers without firing them.
func (t *Timers) Reset() {
	t.pending = t.pending[:0]
}
