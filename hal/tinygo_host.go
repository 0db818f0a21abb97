//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"runtime"
	"time"
)

type tinyGoHostHAL struct {
	logger  *tinyGoHostLogger
	led     *tinyGoHostLED
	fb      *MonoFramebuffer
	buttons *virtualButtons
	stick   tinyGoHostStick
	clock   Clock
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU
// pin mapping: nothing presses the buttons and the stick stays centered.
func New() (HAL, error) {
	l := &tinyGoHostLogger{}
	clock := newWallClock()
	return &tinyGoHostHAL{
		logger:  l,
		led:     &tinyGoHostLED{logger: l},
		fb:      NewMonoFramebuffer(128, 64, nil),
		buttons: newVirtualButtons(clock),
		clock:   clock,
	}, nil
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) LED() LED         { return h.led }
func (h *tinyGoHostHAL) Display() Display { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Buttons() Buttons { return h.buttons }
func (h *tinyGoHostHAL) Joystick() Analog { return h.stick }
func (h *tinyGoHostHAL) Clock() Clock     { return h.clock }

func (h *tinyGoHostHAL) Entropy() uint32 {
	ns := uint64(time.Now().UnixNano())
	return uint32(ns) ^ uint32(ns>>32)
}

type tinyGoHostDisplay struct {
	fb Framebuffer
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoHostStick struct{}

func (tinyGoHostStick) ReadRaw() uint16 { return JoystickRawCenter }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostLED struct {
	on     bool
	logger *tinyGoHostLogger
}

func (l *tinyGoHostLED) High() {
	l.on = true
	l.logger.WriteLineString(fmt.Sprintf("led: HIGH (tinygo/%s)", runtime.GOOS))
}

func (l *tinyGoHostLED) Low() {
	l.on = false
	l.logger.WriteLineString(fmt.Sprintf("led: LOW (tinygo/%s)", runtime.GOOS))
}
