package kernel

import (
	"sync/atomic"
	"time"
)

// System is the cooperative control loop: one step per tick, then a fixed sleep.
type System struct {
	ticks atomic.Uint64
	delay time.Duration
	sleep func(time.Duration)
}

// NewSystem creates a loop that sleeps delay between steps.
func NewSystem(delay time.Duration) *System {
	return &System{delay: delay, sleep: time.Sleep}
}

// Ticks returns how many steps have completed.
func (s *System) Ticks() uint64 {
	return s.ticks.Load()
}

// Delay is the sleep between steps.
func (s *System) Delay() time.Duration { return s.delay }

// Step runs one tick.
func (s *System) Step(step func() error) error {
	err := step()
	s.ticks.Add(1)
	return err
}

// Run steps forever, or until a step fails.
func (s *System) Run(step func() error) error {
	for {
		if err := s.Step(step); err != nil {
			return err
		}
		if s.delay > 0 {
			s.sleep(s.delay)
		}
	}
}
