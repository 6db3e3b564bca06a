package engine

import "time"

// Clock is a virtual, manually advanced clock. Timers scheduled on it fire
// synchronously inside Advance, one at a time, in deadline order.
type Clock struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
}

// Timer is a cancellable callback scheduled on a Clock.
type Timer struct {
	clock  *Clock
	when   time.Duration
	period time.Duration // zero for one-shot timers
	seq    uint64
	fn     func()
	active bool
}

// NewClock returns a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the time elapsed on the clock.
func (c *Clock) Now() time.Duration {
	return c.now
}

// AfterFunc schedules fn to run once, d from now.
func (c *Clock) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	return c.add(c.now+d, 0, fn)
}

// Every schedules fn to run every period, first one period from now.
// Non-positive periods are raised to one millisecond.
func (c *Clock) Every(period time.Duration, fn func()) *Timer {
	if period <= 0 {
		period = time.Millisecond
	}
	return c.add(c.now+period, period, fn)
}

func (c *Clock) add(when, period time.Duration, fn func()) *Timer {
	c.seq++
	t := &Timer{clock: c, when: when, period: period, seq: c.seq, fn: fn, active: true}
	c.timers = append(c.timers, t)
	return t
}

// Pending returns the number of scheduled timers.
func (c *Clock) Pending() int {
	return len(c.timers)
}

// Advance moves the clock forward by d, firing every timer that falls due.
// Callbacks may stop or schedule timers; new timers that fall due within
// the same advance fire too.
func (c *Clock) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := c.now + d

	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.now = next.when
		if next.period > 0 {
			next.when += next.period
		} else {
			c.remove(next)
		}
		next.fn()
	}

	c.now = target
}

// nextDue returns the earliest timer due at or before target.
// Ties go to the timer scheduled first.
func (c *Clock) nextDue(target time.Duration) *Timer {
	var best *Timer
	for _, t := range c.timers {
		if t.when > target {
			continue
		}
		if best == nil || t.when < best.when || (t.when == best.when && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (c *Clock) remove(t *Timer) {
	t.active = false
	for idx, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:idx], c.timers[idx+1:]...)
			return
		}
	}
}

// Stop cancels the timer. It reports whether the timer was still scheduled.
// Stopping a nil or already stopped timer is a no-op.
func (t *Timer) Stop() bool {
	if t == nil || !t.active {
		return false
	}
	t.clock.remove(t)
	return true
}

// Active reports whether the timer is still scheduled.
func (t *Timer) Active() bool {
	return t != nil && t.active
}

// Period returns the repeat period, or zero for a one-shot timer.
func (t *Timer) Period() time.Duration {
	if t == nil {
		return 0
	}
	return t.period
}
