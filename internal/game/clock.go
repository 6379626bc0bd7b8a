package game

import (
	"sync"
	"time"
)

// Clock is the engine's only source of wall time.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FakeClock only moves when told to.
type FakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{t: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// questDay keys the daily quest board. Days roll over at UTC midnight.
func questDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// awayFor is the time elapsed since a save, capped at limit. A zero save
// time or a clock that went backwards yields zero.
func awayFor(saved, now time.Time, limit time.Duration) time.Duration {
	if saved.IsZero() || !now.After(saved) {
		return 0
	}
	d := now.Sub(saved)
	if limit > 0 && d > limit {
		d = limit
	}
	return d
}
