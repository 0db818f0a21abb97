//go:build tinygo

package app

import (
	"time"

	"galton/board/config"
	"galton/hal"
)

// Run brings up the board and runs the control loop. It never returns: a
// failure is shown on the fatal screen and the LED blinks.
func Run(newHAL func() (hal.HAL, error), cfg config.Config) {
	h, err := newHAL()
	if err != nil {
		halt(h, err)
	}

	s, err := New(h, cfg)
	if err != nil {
		halt(h, err)
	}

	halt(h, s.loop.Run(s.guardedTick))
}

func halt(h hal.HAL, err error) {
	ShowFatal(h, err)

	var led hal.LED
	if h != nil {
		led = h.LED()
	}
	if led == nil {
		select {}
	}
	for {
		led.High()
		time.Sleep(200 * time.Millisecond)
		led.Low()
		time.Sleep(200 * time.Millisecond)
	}
}
