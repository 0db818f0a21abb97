//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Host display size, matching the SSD1306 on the board.
const (
	hostWidth  = 128
	hostHeight = 64
)

// StepFunc runs one loop iteration.
type StepFunc func() error

// Starter builds the application on h and returns its loop step.
type Starter func(h HAL) (StepFunc, error)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	// TickPeriod is the loop delay; one step runs per ebiten tick.
	TickPeriod time.Duration
	// Scale multiplies the window size.
	Scale int
}

// ticksPerSecond is the window tick rate for a loop delay. Ebiten cannot
// tick slower than once a second.
func ticksPerSecond(period time.Duration) int {
	if period <= 0 {
		return 1
	}
	return max(1, int(time.Second/period))
}

type hostHAL struct {
	logger  *hostLogger
	led     *hostLED
	fb      *hostFramebuffer
	buttons *virtualButtons
	stick   *hostJoystick
	clock   Clock
}

// New returns a host HAL implementation backed by the wall clock.
func New() (HAL, error) {
	return newHost(os.Stdout, newWallClock()), nil
}

func newHost(w io.Writer, clock Clock) *hostHAL {
	logger := &hostLogger{w: w}
	return &hostHAL{
		logger:  logger,
		led:     &hostLED{logger: logger},
		fb:      newHostFramebuffer(hostWidth, hostHeight),
		buttons: newVirtualButtons(clock),
		stick:   newHostJoystick(),
		clock:   clock,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Buttons() Buttons { return h.buttons }
func (h *hostHAL) Joystick() Analog { return h.stick }
func (h *hostHAL) Clock() Clock     { return h.clock }

// Entropy comes from the runtime-seeded generator, so headless runs on the
// step clock still get a fresh seed.
func (h *hostHAL) Entropy() uint32 { return rand.Uint32() }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on {
		return
	}
	l.on = true
	l.logger.WriteLineString("led: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.on {
		return
	}
	l.on = false
	l.logger.WriteLineString("led: LOW")
}

type hostJoystick struct {
	raw atomic.Uint32
}

func newHostJoystick() *hostJoystick {
	j := &hostJoystick{}
	j.set(JoystickRawCenter)
	return j
}

func (j *hostJoystick) ReadRaw() uint16 { return uint16(j.raw.Load()) }

func (j *hostJoystick) set(raw uint16) {
	if raw < JoystickRawMin {
		raw = JoystickRawMin
	}
	if raw > JoystickRawMax {
		raw = JoystickRawMax
	}
	j.raw.Store(uint32(raw))
}
