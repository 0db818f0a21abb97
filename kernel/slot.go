package kernel

import "sync/atomic"

const slotFull = 1 << 63

// Slot is a single-entry, overwrite-on-post mailbox.
//
// It is written from interrupt context and drained by the control loop:
// no allocations, no locks. A posted value is delivered to at most one Take.
// Values must fit in 63 bits.
type Slot struct {
	_ [0]func() // prevent accidental copying.
	v atomic.Uint64
}

// Post stores v, replacing any value not yet taken.
func (s *Slot) Post(v uint64) {
	s.v.Store(v&^slotFull | slotFull)
}

// Take removes and returns the pending value, if any.
func (s *Slot) Take() (uint64, bool) {
	x := s.v.Swap(0)
	if x&slotFull == 0 {
		return 0, false
	}
	return x &^ slotFull, true
}

// Pending reports whether a value is waiting without consuming it.
func (s *Slot) Pending() bool {
	return s.v.Load()&slotFull != 0
}
