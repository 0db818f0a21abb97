package hal

import (
	"sync"
	"time"
)

// Raw joystick range of the board's 12-bit ADC after calibration.
const (
	JoystickRawMin    uint16 = 12
	JoystickRawMax    uint16 = 4076
	JoystickRawCenter uint16 = (JoystickRawMin + JoystickRawMax) / 2
)

const buttonCount = int(ButtonB) + 1

// virtualButtons turns button levels into edges for the registered handler.
//
// Set may be called from any goroutine; the handler sees edges in order.
type virtualButtons struct {
	mu      sync.Mutex
	clock   Clock
	handler EdgeHandler
	down    [buttonCount]bool
}

func newVirtualButtons(clock Clock) *virtualButtons {
	return &virtualButtons{clock: clock}
}

func (b *virtualButtons) SetEdgeHandler(h EdgeHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handler = h
}

// Set moves btn to the given level. Only level changes produce an edge.
func (b *virtualButtons) Set(btn Button, down bool) {
	if int(btn) <= 0 || int(btn) >= buttonCount {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.down[btn] == down {
		return
	}
	b.down[btn] = down
	if b.handler == nil {
		return
	}
	e := EdgeRise
	if down {
		e = EdgeFall
	}
	b.handler(btn, e, b.clock.NowMicros())
}

func (b *virtualButtons) Down(btn Button) bool {
	if int(btn) <= 0 || int(btn) >= buttonCount {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.down[btn]
}

// signal is a periodic square wave used to drive a button without a user.
type signal struct {
	period uint64
	high   uint64
}

func newSignal(period, high time.Duration) signal {
	if period <= 0 {
		period = 1 * time.Second
	}
	if high < 0 {
		high = 0
	}
	if high > period {
		high = period
	}
	return signal{
		period: uint64(period.Microseconds()),
		high:   uint64(high.Microseconds()),
	}
}

func (s signal) level(atMicros uint64) bool {
	if s.period == 0 {
		return false
	}
	return atMicros%s.period < s.high
}

// stickRaw maps keyboard stick input to a raw joystick sample.
func stickRaw(left, right, half bool) uint16 {
	if left == right {
		return JoystickRawCenter
	}
	if left {
		if half {
			return JoystickRawCenter - (JoystickRawCenter-JoystickRawMin)/2
		}
		return JoystickRawMin
	}
	if half {
		return JoystickRawCenter + (JoystickRawMax-JoystickRawCenter)/2
	}
	return JoystickRawMax
}
