package positioning

import "time"

// DefaultThrottle is the minimum spacing between committed recomputes.
const DefaultThrottle = 16 * time.Millisecond

// throttle admits at most one recompute per window. Events inside the
// window are dropped, not deferred: there is no trailing-edge flush.
type throttle struct {
	window time.Duration
	now    func() time.Time
	last   time.Time
	primed bool
}

func newThrottle(window time.Duration, now func() time.Time) *throttle {
	if window <= 0 {
		window = DefaultThrottle
	}
	if now == nil {
		now = time.Now
	}
	return &throttle{window: window, now: now}
}

// allow reports whether a recompute may run now.
func (t *throttle) allow() bool {
	if !t.primed {
		return true
	}
	return t.now().Sub(t.last) >= t.window
}

// commit records a recompute at the current time.
func (t *throttle) commit() {
	t.last = t.now()
	t.primed = true
}

func (t *throttle) reset() {
	t.last = time.Time{}
	t.primed = false
}
