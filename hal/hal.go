package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatMonoVLSB is 1bpp in 8-row pages: byte x+page*width holds
	// rows page*8..page*8+7 of column x, least significant bit on top.
	PixelFormatMonoVLSB PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Present flushes the whole buffer (every column, every page).
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	Buffer() []byte
	Clear()
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Button names a physical push button on the board.
type Button uint8

const (
	ButtonA Button = iota + 1
	ButtonB
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	default:
		return "?"
	}
}

// Edge is a level change on an active-low button.
type Edge uint8

const (
	// EdgeFall is a press.
	EdgeFall Edge = iota + 1
	// EdgeRise is a release.
	EdgeRise
)

// EdgeHandler receives button edges. On hardware it runs in interrupt
// context: it must not block or allocate.
type EdgeHandler func(b Button, e Edge, atMicros uint64)

// Buttons delivers edge events for the board's push buttons.
type Buttons interface {
	SetEdgeHandler(h EdgeHandler)
}

// Analog is one ADC channel, in raw converter units.
type Analog interface {
	ReadRaw() uint16
}

// Clock is a monotonic microsecond counter.
type Clock interface {
	NowMicros() uint64
}

// HAL provides the only contact point between the board and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	Buttons() Buttons
	Joystick() Analog
	Clock() Clock
	// Entropy returns an unpredictable value for seeding the simulation.
	Entropy() uint32
}
