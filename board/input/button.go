// Package input debounces button edges and turns them into spawns and view changes.
//
// A Button is fed from the edge handler (interrupt context on hardware). The
// Controller runs on the control loop and is the only writer of the view.
package input

import (
	"sync/atomic"

	"galton/kernel"
)

// Edge is the direction of a level change on an active-low button.
//
// It mirrors hal.Edge. board/ packages stay free of hal so they build and
// test without the host runners' ebiten and bubbletea deps; app translates.
type Edge uint8

const (
	// EdgeFall is a press.
	EdgeFall Edge = iota + 1
	// EdgeRise is a release.
	EdgeRise
)

func (e Edge) String() string {
	switch e {
	case EdgeFall:
		return "fall"
	case EdgeRise:
		return "rise"
	default:
		return "unknown"
	}
}

// Button latches debounced presses for one physical button.
//
// Edge is safe to call from interrupt context: it only touches atomics.
type Button struct {
	debounce uint64

	pressed  kernel.Slot
	held     atomic.Bool
	last     atomic.Uint64
	accepted atomic.Bool
}

// NewButton returns a button that ignores presses closer than debounceMicros
// to the previously accepted press.
func NewButton(debounceMicros uint64) *Button {
	return &Button{debounce: debounceMicros}
}

// Edge records a raw edge at the given monotonic time.
func (b *Button) Edge(e Edge, atMicros uint64) {
	switch e {
	case EdgeFall:
		if b.accepted.Load() && atMicros-b.last.Load() <= b.debounce {
			return
		}
		b.last.Store(atMicros)
		b.accepted.Store(true)
		b.held.Store(true)
		b.pressed.Post(atMicros)
	case EdgeRise:
		b.held.Store(false)
	}
}

// TakePress consumes a pending press.
func (b *Button) TakePress() bool {
	_, ok := b.pressed.Take()
	return ok
}

// Held reports whether the button is down.
func (b *Button) Held() bool {
	return b.held.Load()
}
