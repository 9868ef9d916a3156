package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/clock"
)

// FakeClock is a manually advanced clock. Timers due during Advance run
// synchronously on the caller's goroutine.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	timers  []*fakeTimer
	tickers []*fakeTicker
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) NewTicker(d time.Duration) clock.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTicker{
		clock:  c,
		period: d,
		next:   c.now.Add(d),
		ch:     make(chan time.Time, 1),
	}
	c.tickers = append(c.tickers, t)
	return t
}

func (c *FakeClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{clock: c, at: c.now.Add(d), fn: f}
	c.timers = append(c.timers, t)
	return t
}

// PendingTimers returns the number of timers that have not fired or been stopped.
func (c *FakeClock) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves the clock forward, firing due timers in deadline order and
// delivering at most one pending tick per ticker.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		sort.SliceStable(c.timers, func(i, j int) bool {
			return c.timers[i].at.Before(c.timers[j].at)
		})
		if len(c.timers) == 0 || c.timers[0].at.After(target) {
			c.now = target
			tickers := append([]*fakeTicker(nil), c.tickers...)
			c.mu.Unlock()
			for _, t := range tickers {
				t.fire(target)
			}
			return
		}

		next := c.timers[0]
		c.timers = c.timers[1:]
		if next.at.After(c.now) {
			c.now = next.at
		}
		c.mu.Unlock()

		next.fn()
	}
}

func (c *FakeClock) removeTimer(t *fakeTimer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, pending := range c.timers {
		if pending == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}

func (c *FakeClock) removeTicker(t *fakeTicker) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, pending := range c.tickers {
		if pending == t {
			c.tickers = append(c.tickers[:i], c.tickers[i+1:]...)
			return
		}
	}
}

type fakeTimer struct {
	clock *FakeClock
	at    time.Time
	fn    func()
}

func (t *fakeTimer) Stop() bool {
	return t.clock.removeTimer(t)
}

type fakeTicker struct {
	clock  *FakeClock
	period time.Duration
	mu     sync.Mutex
	next   time.Time
	ch     chan time.Time
}

func (t *fakeTicker) C() <-chan time.Time {
	return t.ch
}

func (t *fakeTicker) Stop() {
	t.clock.removeTicker(t)
}

func (t *fakeTicker) fire(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if now.Before(t.next) {
		return
	}
	for !t.next.After(now) {
		t.next = t.next.Add(t.period)
	}

	select {
	case t.ch <- now:
	default:
	}
}
