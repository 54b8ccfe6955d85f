package clock

import (
	"sync"
	"time"
)

// Interval is the tick period of a Countdown.
const Interval = time.Second

// Countdown emits one tick per second from an initial value down to zero.
// At most one countdown run is active per Countdown; Start cancels the
// previous run.
type Countdown struct {
	sched Scheduler

	mu       sync.Mutex
	gen      uint64
	active   bool
	initial  int
	elapsed  int
	pending  Stopper
	onTick   func(remaining int)
	onExpire func()
}

// NewCountdown returns an idle Countdown driven by sched, which must not be nil.
func NewCountdown(sched Scheduler) *Countdown {
	return &Countdown{sched: sched}
}

// Start begins a countdown from initial. onTick receives initial-elapsed for
// every second while that value is positive; onExpire runs once when it
// reaches zero. Either callback may be nil.
func (c *Countdown) Start(initial int, onTick func(remaining int), onExpire func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.active = true
	c.initial = initial
	c.elapsed = 0
	c.onTick = onTick
	c.onExpire = onExpire
	c.scheduleLocked()
}

// Cancel stops the countdown. It is safe to call at any time, repeatedly.
func (c *Countdown) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

// Active reports whether a countdown is running.
func (c *Countdown) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Countdown) cancelLocked() {
	c.gen++
	c.active = false
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.onTick = nil
	c.onExpire = nil
}

func (c *Countdown) scheduleLocked() {
	gen := c.gen
	c.pending = c.sched.AfterFunc(Interval, func() { c.fire(gen) })
}

func (c *Countdown) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.active {
		c.mu.Unlock()
		return
	}
	c.elapsed++
	remaining := c.initial - c.elapsed
	if remaining <= 0 {
		onExpire := c.onExpire
		c.active = false
		c.pending = nil
		c.onTick = nil
		c.onExpire = nil
		c.mu.Unlock()
		if onExpire != nil {
			onExpire()
		}
		return
	}
	onTick := c.onTick
	c.scheduleLocked()
	c.mu.Unlock()
	if onTick != nil {
		onTick(remaining)
	}
}
