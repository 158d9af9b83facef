package clock

import "time"

// Timer is a cancellable, resettable delayed callback.
type Timer interface {
	// Reset re-arms the timer to fire after d, cancelling any pending fire.
	Reset(d time.Duration)

	// Stop cancels the timer. Safe to call on an already-fired timer.
	Stop()
}

// Clock provides an abstraction for time operations to enable deterministic testing.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc schedules fn to run after d and returns a Timer controlling it.
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn on a real time.Timer.
func (c *RealClock) AfterFunc(d time.Duration, fn func()) Timer {
	return &realTimer{t: time.AfterFunc(d, fn)}
}

type realTimer struct {
	t *time.Timer
}

func (r *realTimer) Reset(d time.Duration) {
	r.t.Reset(d)
}

func (r *realTimer) Stop() {
	r.t.Stop()
}

// FakeClock implements Clock with a fixed time for testing. Timers scheduled
// on a FakeClock fire synchronously when Advance moves past their deadline.
type FakeClock struct {
	current time.Time
	timers  []*fakeTimer
}

// NewFakeClock creates a new FakeClock with the given time.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the fixed time.
func (c *FakeClock) Now() time.Time {
	return c.current
}

// Set updates the fixed time without firing timers.
func (c *FakeClock) Set(t time.Time) {
	c.current = t
}

// AfterFunc registers fn to fire when the fake time advances past d.
func (c *FakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	ft := &fakeTimer{clock: c, deadline: c.current.Add(d), fn: fn}
	c.timers = append(c.timers, ft)
	return ft
}

// Advance moves the fixed time forward by the given duration, firing any
// armed timers whose deadline has been reached.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
	for _, ft := range c.timers {
		if !ft.stopped && !ft.fired && !ft.deadline.After(c.current) {
			ft.fired = true
			ft.fn()
		}
	}
}

type fakeTimer struct {
	clock    *FakeClock
	deadline time.Time
	fn       func()
	stopped  bool
	fired    bool
}

func (f *fakeTimer) Reset(d time.Duration) {
	f.deadline = f.clock.current.Add(d)
	f.stopped = false
	f.fired = false
}

func (f *fakeTimer) Stop() {
	f.stopped = true
}
