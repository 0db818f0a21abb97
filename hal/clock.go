package hal

import (
	"sync"
	"time"
)

// wallClock counts microseconds since it was created.
type wallClock struct {
	start time.Time
}

func newWallClock() *wallClock { return &wallClock{start: time.Now()} }

func (c *wallClock) NowMicros() uint64 {
	return uint64(time.Since(c.start).Microseconds())
}

// stepClock is a manually advanced clock for runners that simulate time.
type stepClock struct {
	mu  sync.Mutex
	now uint64
}

func (c *stepClock) NowMicros() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += uint64(d.Microseconds())
}
